package votes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cols  = []string{"market_id", "voter", "side", "weight", "stake", "claimed", "cast_at"}
	voter = ethcommon.HexToAddress("0x5555555555555555555555555555555555555555")
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sample() *models.Vote {
	var w fhe.Handle
	w[0], w[31] = 9, byte(fhe.TypeUint64)
	return &models.Vote{
		MarketID: "m1",
		Voter:    voter,
		Side:     models.OutcomeYes,
		Weight:   w,
		Stake:    uint256.NewInt(1000),
		CastAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	v := sample()

	mock.ExpectExec(`INSERT INTO votes \(market_id, voter, side, weight, stake, claimed, cast_at\)`).
		WithArgs("m1", voter, v.Side, v.Weight, "1000", false, v.CastAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), v))

	mock.ExpectExec(`INSERT INTO votes`).WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Create(context.Background(), v), common.ErrorAlreadyExists)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := sample()

	mock.ExpectQuery(`FROM votes WHERE market_id = \$1 AND voter = \$2`).
		WithArgs("m1", voter).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("m1", voter.Bytes(), int64(models.OutcomeYes), want.Weight[:], "1000", false, want.CastAt))

	got, err := repo.Get(context.Background(), "m1", voter)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("vote mismatch (-want +got):\n%s", diff)
	}

	mock.ExpectQuery(`FROM votes`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "m1", voter)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMarkClaimed(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE votes SET claimed = TRUE WHERE market_id = \$1 AND voter = \$2 AND NOT claimed`).
		WithArgs("m1", voter).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkClaimed(context.Background(), "m1", voter))

	mock.ExpectExec(`UPDATE votes SET claimed`).
		WithArgs("m1", voter).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.MarkClaimed(context.Background(), "m1", voter), common.ErrorAlreadyExists)

	mock.ExpectExec(`UPDATE votes SET claimed`).WillReturnError(errors.New("db is down"))
	assert.Error(t, repo.MarkClaimed(context.Background(), "m1", voter))
}

func TestListByMarket(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	v := sample()
	other := ethcommon.HexToAddress("0x6666666666666666666666666666666666666666")

	rows := sqlmock.NewRows(cols).
		AddRow("m1", voter.Bytes(), int64(models.OutcomeYes), v.Weight[:], "1000", false, v.CastAt).
		AddRow("m1", other.Bytes(), int64(models.OutcomeNo), v.Weight[:], "1000", true, v.CastAt)
	mock.ExpectQuery(`FROM votes WHERE market_id = \$1 ORDER BY cast_at, voter`).
		WithArgs("m1").
		WillReturnRows(rows)

	got, err := repo.ListByMarket(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, other, got[1].Voter)
	assert.True(t, got[1].Claimed)
	assert.Equal(t, models.OutcomeNo, got[1].Side)
}
