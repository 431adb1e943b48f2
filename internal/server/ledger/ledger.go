// Package ledger is the confidential ledger: the team and athlete registry,
// compensation proposals, belief markets, and the decryption request
// lifecycle that connects them to the gateway.
//
// Every mutating operation runs under one writer lock inside a storage
// transaction, so checks and the writes that depend on them never
// interleave with another operation. Events are published and oracle
// requests submitted only after the transaction commits.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/gateway"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/athletes"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/markets"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/proposals"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/requests"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/settings"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/teams"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/votes"
	"github.com/dmitrijs2005/blindledger/internal/timex"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Month is the unit of contract and proposal durations.
const Month = 30 * 24 * time.Hour

type Config struct {
	// Owner administers the ledger.
	Owner             ethcommon.Address
	DecryptionTimeout time.Duration
	ProposalValidity  time.Duration
	// RevealGrace is how long after expiry a market creator has to request
	// the reveal before voters may take their stakes back.
	RevealGrace       time.Duration
	MinMarketDuration time.Duration
	MaxMarketDuration time.Duration
	MaxVoteWeight     uint64

	// Initial market parameters, used until SetMarketParams is called.
	VoteStake   *uint256.Int
	CreationFee *uint256.Int
}

func DefaultConfig() Config {
	return Config{
		DecryptionTimeout: time.Hour,
		ProposalValidity:  Month,
		RevealGrace:       72 * time.Hour,
		MinMarketDuration: 10 * time.Minute,
		MaxMarketDuration: Month,
		MaxVoteWeight:     100,
		VoteStake:         uint256.NewInt(10_000_000_000_000_000),
		CreationFee:       uint256.NewInt(1_000_000_000_000_000),
	}
}

// ProofVerifier authenticates oracle callbacks. gateway.Verifier is the
// production implementation.
type ProofVerifier interface {
	Verify(requestID uint64, handles []fhe.Handle, cleartext, proof []byte) error
}

// Deps are the ledger's collaborators. Clock, Events, Metrics and Logger
// may be nil.
type Deps struct {
	Repos     repomanager.RepositoryManager
	Engine    fhe.Engine
	Decryptor fhe.Decryptor
	Verifier  ProofVerifier
	Oracle    gateway.Oracle
	Clock     timex.Clock
	Events    events.Sink
	Metrics   *metrics.Metrics
	Logger    logging.Logger
}

type Ledger struct {
	mu sync.Mutex

	cfg       Config
	repos     repomanager.RepositoryManager
	engine    fhe.Engine
	decryptor fhe.Decryptor
	verifier  ProofVerifier
	oracle    gateway.Oracle
	clock     timex.Clock
	sink      events.Sink
	metrics   *metrics.Metrics
	logger    logging.Logger
}

func New(cfg Config, d Deps) (*Ledger, error) {
	if d.Repos == nil || d.Engine == nil || d.Decryptor == nil || d.Verifier == nil || d.Oracle == nil {
		return nil, errors.New("ledger: repositories, engine, decryptor, verifier and oracle are required")
	}
	if cfg.Owner == (ethcommon.Address{}) {
		return nil, errors.Wrap(common.ErrInvalidInput, "ledger owner is the zero address")
	}
	if cfg.VoteStake == nil || cfg.VoteStake.IsZero() {
		return nil, errors.Wrap(common.ErrInvalidInput, "vote stake must be positive")
	}
	if cfg.CreationFee == nil {
		cfg.CreationFee = new(uint256.Int)
	}
	if cfg.MinMarketDuration > cfg.MaxMarketDuration {
		return nil, errors.Wrapf(common.ErrInvalidInput, "market duration bounds %s > %s", cfg.MinMarketDuration, cfg.MaxMarketDuration)
	}
	if d.Clock == nil {
		d.Clock = timex.System()
	}
	if d.Events == nil {
		d.Events = events.Multi{}
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	return &Ledger{
		cfg:       cfg,
		repos:     d.Repos,
		engine:    d.Engine,
		decryptor: d.Decryptor,
		verifier:  d.Verifier,
		oracle:    d.Oracle,
		clock:     d.Clock,
		sink:      d.Events,
		metrics:   d.Metrics,
		logger:    d.Logger.With("module", "ledger"),
	}, nil
}

func (l *Ledger) Config() Config { return l.cfg }

// Init stores the initial settings row if there is none yet.
func (l *Ledger) Init(ctx context.Context) error {
	return l.exec(ctx, "init", func(ctx context.Context, a *action) error {
		_, err := a.settingsRepo().Get(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return a.settingsRepo().Save(ctx, l.defaultSettings(a.now))
	})
}

func (l *Ledger) defaultSettings(now time.Time) *models.Settings {
	return &models.Settings{
		VoteStake:       new(uint256.Int).Set(l.cfg.VoteStake),
		CreationFee:     new(uint256.Int).Set(l.cfg.CreationFee),
		FeesCollected:   new(uint256.Int),
		Season:          1,
		SeasonStartedAt: now,
		UpdatedAt:       now,
	}
}

// action is the context of one ledger operation: its storage handle, the
// operation time, and the side effects to release after commit.
type action struct {
	l       *Ledger
	db      dbx.DBTX
	now     time.Time
	events  []events.Event
	submits []gateway.Request
	counts  []string
}

func (a *action) emit(name string, kv ...any) {
	a.events = append(a.events, events.New(name, a.now, kv...))
}

func (a *action) count(name string) { a.counts = append(a.counts, name) }

func (a *action) counters() counters.Repository     { return a.l.repos.Counters(a.db) }
func (a *action) teams() teams.Repository           { return a.l.repos.Teams(a.db) }
func (a *action) athletes() athletes.Repository     { return a.l.repos.Athletes(a.db) }
func (a *action) proposals() proposals.Repository   { return a.l.repos.Proposals(a.db) }
func (a *action) markets() markets.Repository       { return a.l.repos.Markets(a.db) }
func (a *action) votes() votes.Repository           { return a.l.repos.Votes(a.db) }
func (a *action) requests() requests.Repository     { return a.l.repos.Requests(a.db) }
func (a *action) settingsRepo() settings.Repository { return a.l.repos.Settings(a.db) }
func (a *action) engine() fhe.Engine                { return a.l.engine }

// exec runs fn as one serialized, transactional ledger operation.
func (l *Ledger) exec(ctx context.Context, op string, fn func(ctx context.Context, a *action) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	a := &action{l: l, now: l.clock.Now()}
	err := l.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		a.db = tx
		return fn(ctx, a)
	})
	l.metrics.Observe(op, start, err)
	if err != nil {
		l.logger.Debug(ctx, "operation failed", "op", op, "error", err)
		return err
	}

	for _, name := range a.counts {
		l.metrics.Inc(name)
	}
	if len(a.events) > 0 {
		if err := l.sink.Publish(ctx, a.events); err != nil {
			l.logger.Error(ctx, "publish events", "op", op, "error", err)
		}
	}
	for _, req := range a.submits {
		// Handles become decryptable only once their request is committed. A
		// request the oracle never hears about stays open until it times out.
		if err := l.engine.AllowForDecryption(ctx, req.Handles...); err != nil {
			l.metrics.Inc(metrics.SubmitFailures)
			l.logger.Error(ctx, "allow for decryption", "request_id", req.ID, "error", err)
			continue
		}
		if err := l.oracle.Submit(ctx, req); err != nil {
			l.metrics.Inc(metrics.SubmitFailures)
			l.logger.Error(ctx, "submit decryption request", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

// view runs a read-only operation against committed state.
func (l *Ledger) view(ctx context.Context, fn func(ctx context.Context, a *action) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(ctx, &action{l: l, db: l.repos.Conn(), now: l.clock.Now()})
}

// repoErr turns a repository miss into the NotFound kind.
func repoErr(err error, format string, args ...any) error {
	if errors.Is(err, common.ErrorNotFound) {
		return errors.Wrapf(common.ErrNotFound, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}

func (a *action) loadSettings(ctx context.Context) (*models.Settings, error) {
	s, err := a.settingsRepo().Get(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return a.l.defaultSettings(a.now), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	return s, nil
}

// Settings returns the global market parameters and season.
func (l *Ledger) Settings(ctx context.Context) (*models.Settings, error) {
	var out *models.Settings
	err := l.view(ctx, func(ctx context.Context, a *action) error {
		var err error
		out, err = a.loadSettings(ctx)
		return err
	})
	return out, err
}

// UserDecrypt returns the plaintext behind h to a caller holding a read
// grant on it.
func (l *Ledger) UserDecrypt(ctx context.Context, caller ethcommon.Address, h fhe.Handle) (uint64, error) {
	return l.decryptor.UserDecrypt(ctx, h, caller)
}
