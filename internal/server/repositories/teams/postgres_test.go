package teams

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
	"github.com/jackc/pgx/v5/pgconn"
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

func sampleTeam() *models.Team {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var salaryCap, payroll fhe.Handle
	salaryCap[0], salaryCap[31] = 1, byte(fhe.TypeUint64)
	payroll[0], payroll[31] = 2, byte(fhe.TypeUint64)
	return &models.Team{
		ID:        1,
		Name:      "Lakers",
		Manager:   ethcommon.HexToAddress("0x1111111111111111111111111111111111111111"),
		SalaryCap: salaryCap,
		Payroll:   payroll,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	team := sampleTeam()

	mock.ExpectExec(`INSERT INTO teams`).
		WithArgs(team.ID, team.Name, team.Manager, team.SalaryCap, team.Payroll, true, team.CreatedAt, team.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), team))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO teams`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), sampleTeam())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := sampleTeam()

	rows := sqlmock.NewRows([]string{"id", "name", "manager", "salary_cap", "payroll", "active", "created_at", "updated_at"}).
		AddRow(int64(1), want.Name, want.Manager.Bytes(), want.SalaryCap[:], want.Payroll[:], true, want.CreatedAt, want.UpdatedAt)
	mock.ExpectQuery(`SELECT id, name, manager, salary_cap, payroll, active, created_at, updated_at\s+FROM teams WHERE id = \$1`).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("team mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM teams WHERE id`).
		WithArgs(uint64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	team := sampleTeam()

	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
		errText string
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "db error", execErr: errors.New("db is down"), errText: "db error: db is down"},
		{name: "rows error", result: sqlmock.NewErrorResult(errors.New("rows-err")), errText: "rows affected error"},
		{name: "too many", result: sqlmock.NewResult(0, 2), errText: "unexpected rows affected: 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			exp := mock.ExpectExec(`UPDATE teams SET name = \$2, manager = \$3, salary_cap = \$4, payroll = \$5, active = \$6, updated_at = \$7\s+WHERE id = \$1`).
				WithArgs(team.ID, team.Name, team.Manager, team.SalaryCap, team.Payroll, team.Active, team.UpdatedAt)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Update(context.Background(), team)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
