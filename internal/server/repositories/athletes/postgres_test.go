package athletes

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "team_id", "name", "position", "wallet", "salary", "bonus",
	"contract_start", "contract_end", "active", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sample(id uint64) *models.Athlete {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var salary, bonus fhe.Handle
	salary[0], salary[31] = byte(id), byte(fhe.TypeUint32)
	bonus[1], bonus[31] = byte(id), byte(fhe.TypeUint32)
	return &models.Athlete{
		ID:            id,
		TeamID:        1,
		Name:          "Player",
		Position:      "PG",
		Wallet:        ethcommon.HexToAddress("0x2222222222222222222222222222222222222222"),
		Salary:        salary,
		Bonus:         bonus,
		ContractStart: start,
		ContractEnd:   start.AddDate(0, 0, 360),
		Active:        true,
		CreatedAt:     start,
		UpdatedAt:     start,
	}
}

func row(rows *sqlmock.Rows, a *models.Athlete) *sqlmock.Rows {
	return rows.AddRow(int64(a.ID), int64(a.TeamID), a.Name, a.Position, a.Wallet.Bytes(), a.Salary[:], a.Bonus[:],
		a.ContractStart, a.ContractEnd, a.Active, a.CreatedAt, a.UpdatedAt)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sample(3)

	mock.ExpectExec(`INSERT INTO athletes \(id, team_id, name`).
		WithArgs(a.ID, a.TeamID, a.Name, a.Position, a.Wallet, a.Salary, a.Bonus,
			a.ContractStart, a.ContractEnd, a.Active, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT INTO athletes`).WillReturnError(errors.New("db is down"))

	err := repo.Create(context.Background(), sample(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := sample(3)

	mock.ExpectQuery(`SELECT id, team_id, .* FROM athletes WHERE id = \$1`).
		WithArgs(uint64(3)).
		WillReturnRows(row(sqlmock.NewRows(cols), want))

	got, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("athlete mismatch (-want +got):\n%s", diff)
	}

	mock.ExpectQuery(`FROM athletes WHERE id`).WithArgs(uint64(4)).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), 4)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sample(3)
	a.Active = false

	mock.ExpectExec(`UPDATE athletes SET name = \$2`).
		WithArgs(a.ID, a.Name, a.Position, a.Wallet, a.Salary, a.Bonus,
			a.ContractStart, a.ContractEnd, false, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), a))

	mock.ExpectExec(`UPDATE athletes`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), a), common.ErrorNotFound)
}

func TestListByTeam_OrderedByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a1, a2 := sample(1), sample(2)

	rows := row(row(sqlmock.NewRows(cols), a1), a2)
	mock.ExpectQuery(`FROM athletes WHERE team_id = \$1 ORDER BY id`).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByTeam(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(2), got[1].ID)
}

func TestListExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM athletes WHERE active AND contract_end <= \$1 ORDER BY id`).
		WithArgs(cutoff).
		WillReturnRows(row(sqlmock.NewRows(cols), sample(5)))

	got, err := repo.ListExpired(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(5), got[0].ID)
}

func TestList_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM athletes WHERE team_id`).WillReturnError(errors.New("boom"))
	_, err := repo.ListByTeam(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select athletes")

	bad := sqlmock.NewRows(cols).
		AddRow(int64(1), int64(1), "x", "y", []byte{1}, []byte{1}, []byte{1}, time.Now(), time.Now(), true, time.Now(), time.Now())
	mock.ExpectQuery(`FROM athletes WHERE team_id`).WillReturnRows(bad)
	_, err = repo.ListByTeam(context.Background(), 1)
	assert.Error(t, err, "short wallet must fail to scan")

	rowErr := row(sqlmock.NewRows(cols), sample(1)).RowError(0, errors.New("row failed"))
	mock.ExpectQuery(`FROM athletes WHERE team_id`).WillReturnRows(rowErr)
	_, err = repo.ListByTeam(context.Background(), 1)
	assert.Error(t, err)
}
