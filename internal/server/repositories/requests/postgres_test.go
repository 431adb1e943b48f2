package requests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cols      = []string{"id", "kind", "proposal_id", "market_id", "requester", "handles", "created_at", "completed", "timed_out", "finalized_at"}
	requester = ethcommon.HexToAddress("0x7777777777777777777777777777777777777777")
	created   = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func twoHandles() []fhe.Handle {
	var a, b fhe.Handle
	a[0], a[31] = 1, byte(fhe.TypeUint64)
	b[0], b[31] = 2, byte(fhe.TypeUint64)
	return []fhe.Handle{a, b}
}

func TestPackHandles(t *testing.T) {
	hs := twoHandles()
	packed := packHandles(hs)
	require.Len(t, packed, 64)

	back, err := unpackHandles(packed)
	require.NoError(t, err)
	assert.Equal(t, hs, back)

	_, err = unpackHandles(packed[:40])
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	r := &models.DecryptionRequest{
		ID:        1,
		Target:    models.TallyTarget("m1"),
		Requester: requester,
		Handles:   twoHandles(),
		CreatedAt: created,
	}

	mock.ExpectExec(`INSERT INTO decryption_requests`).
		WithArgs(uint64(1), models.KindTally, uint64(0), "m1", requester, packHandles(r.Handles), created, false, false, sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := &models.DecryptionRequest{
		ID:          2,
		Target:      models.ProposalTarget(5),
		Requester:   requester,
		Handles:     twoHandles(),
		CreatedAt:   created,
		Completed:   true,
		FinalizedAt: created.Add(time.Minute),
	}

	mock.ExpectQuery(`FROM decryption_requests WHERE id = \$1`).
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(2), int64(models.KindProposal), int64(5), "",
			requester.Bytes(), packHandles(want.Handles), created, true, false, created.Add(time.Minute)))

	got, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}

	mock.ExpectQuery(`FROM decryption_requests`).WithArgs(uint64(3)).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), 3)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFinalize_OnlyOnce(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	r := &models.DecryptionRequest{ID: 4, TimedOut: true, FinalizedAt: created}

	mock.ExpectExec(`UPDATE decryption_requests SET completed = \$2, timed_out = \$3, finalized_at = \$4\s+WHERE id = \$1 AND NOT completed AND NOT timed_out`).
		WithArgs(uint64(4), false, true, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Finalize(context.Background(), r))

	mock.ExpectExec(`UPDATE decryption_requests`).
		WithArgs(uint64(4), false, true, created).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Finalize(context.Background(), r), common.ErrorAlreadyExists)
}

func TestListOpen(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM decryption_requests WHERE NOT completed AND NOT timed_out ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), int64(models.KindTally), int64(0), "m1", requester.Bytes(), packHandles(twoHandles()), created, false, false, nil).
			AddRow(int64(3), int64(models.KindProposal), int64(2), "", requester.Bytes(), packHandles(twoHandles()), created, false, false, nil))

	got, err := repo.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.TallyTarget("m1"), got[0].Target)
	assert.Equal(t, models.ProposalTarget(2), got[1].Target)
	assert.True(t, got[1].FinalizedAt.IsZero())
}
