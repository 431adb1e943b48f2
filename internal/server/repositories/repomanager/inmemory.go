package repomanager

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/athletes"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/markets"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/proposals"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/requests"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/settings"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/teams"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/votes"
)

// InMemoryRepositoryManager keeps everything in a memstore.Store. The
// DBTX handles it passes around are nil; its repositories ignore them.
type InMemoryRepositoryManager struct {
	store *memstore.Store
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{store: memstore.New()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Conn() dbx.DBTX { return nil }

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn dbx.TxFunc) error {
	return m.store.WithTx(ctx, func(ctx context.Context) error {
		return fn(ctx, nil)
	})
}

func (m *InMemoryRepositoryManager) Counters(dbx.DBTX) counters.Repository { return m.store.Counters() }

func (m *InMemoryRepositoryManager) Teams(dbx.DBTX) teams.Repository { return m.store.Teams() }

func (m *InMemoryRepositoryManager) Athletes(dbx.DBTX) athletes.Repository { return m.store.Athletes() }

func (m *InMemoryRepositoryManager) Proposals(dbx.DBTX) proposals.Repository {
	return m.store.Proposals()
}

func (m *InMemoryRepositoryManager) Markets(dbx.DBTX) markets.Repository { return m.store.Markets() }

func (m *InMemoryRepositoryManager) Votes(dbx.DBTX) votes.Repository { return m.store.Votes() }

func (m *InMemoryRepositoryManager) Requests(dbx.DBTX) requests.Repository { return m.store.Requests() }

func (m *InMemoryRepositoryManager) Settings(dbx.DBTX) settings.Repository { return m.store.Settings() }

func (m *InMemoryRepositoryManager) Close() error { return nil }
