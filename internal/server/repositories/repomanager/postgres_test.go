package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/athletes"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/markets"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/proposals"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/requests"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/settings"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/teams"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/votes"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ RepositoryManager = (*PostgresRepositoryManager)(nil)
	_ RepositoryManager = (*InMemoryRepositoryManager)(nil)
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager(db)
	assert.IsType(t, &counters.PostgresRepository{}, m.Counters(db))
	assert.IsType(t, &teams.PostgresRepository{}, m.Teams(db))
	assert.IsType(t, &athletes.PostgresRepository{}, m.Athletes(db))
	assert.IsType(t, &proposals.PostgresRepository{}, m.Proposals(db))
	assert.IsType(t, &markets.PostgresRepository{}, m.Markets(db))
	assert.IsType(t, &votes.PostgresRepository{}, m.Votes(db))
	assert.IsType(t, &requests.PostgresRepository{}, m.Requests(db))
	assert.IsType(t, &settings.PostgresRepository{}, m.Settings(db))
	assert.Equal(t, dbx.DBTX(db), m.Conn())
}

func TestWithTx_CommitsAndRollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer db.Close()
	m := NewPostgresRepositoryManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		assert.NotNil(t, tx)
		return nil
	}))

	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("boom")
	err := m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager(db)
	require.NoError(t, m.RunMigrations(context.Background()))
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager(db)
	err := m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestClose(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectClose()
	require.NoError(t, NewPostgresRepositoryManager(db).Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
