package settings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT vote_stake, creation_fee, fees_collected, season, season_started_at, updated_at\s+FROM settings WHERE id = 1`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_stake", "creation_fee", "fees_collected", "season", "season_started_at", "updated_at"}).
			AddRow("10000000000000000", "1000000000000000", "2000000000000000", int64(3), ts, ts))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	want := &models.Settings{
		VoteStake:       uint256.NewInt(10_000_000_000_000_000),
		CreationFee:     uint256.NewInt(1_000_000_000_000_000),
		FeesCollected:   uint256.NewInt(2_000_000_000_000_000),
		Season:          3,
		SeasonStartedAt: ts,
		UpdatedAt:       ts,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_NotInitialized(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM settings`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSave(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &models.Settings{
		VoteStake:       uint256.NewInt(5),
		CreationFee:     uint256.NewInt(1),
		FeesCollected:   uint256.NewInt(0),
		Season:          1,
		SeasonStartedAt: ts,
		UpdatedAt:       ts,
	}

	mock.ExpectExec(`INSERT INTO settings .* ON CONFLICT \(id\)\s+DO UPDATE SET`).
		WithArgs("5", "1", "0", uint64(1), ts, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Save(context.Background(), s))

	mock.ExpectExec(`INSERT INTO settings`).WillReturnError(errors.New("db is down"))
	assert.Error(t, repo.Save(context.Background(), s))
}
