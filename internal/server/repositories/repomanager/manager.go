// Package repomanager vends the ledger repositories bound to a backing
// store and runs units of work against it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/athletes"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/markets"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/proposals"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/requests"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/settings"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/teams"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/votes"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// WithTx runs fn atomically. Repositories obtained from the handle
	// passed to fn see and stage fn's writes.
	WithTx(ctx context.Context, fn dbx.TxFunc) error
	// Conn is the non-transactional handle for reads.
	Conn() dbx.DBTX
	Counters(db dbx.DBTX) counters.Repository
	Teams(db dbx.DBTX) teams.Repository
	Athletes(db dbx.DBTX) athletes.Repository
	Proposals(db dbx.DBTX) proposals.Repository
	Markets(db dbx.DBTX) markets.Repository
	Votes(db dbx.DBTX) votes.Repository
	Requests(db dbx.DBTX) requests.Repository
	Settings(db dbx.DBTX) settings.Repository
	Close() error
}
