package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/gateway"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/markets"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blindledger/internal/timex"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = ethcommon.HexToAddress("0x00000000000000000000000000000000000000a1")
	manager  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000b2")
	player   = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c3")
	player2  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c4")
	stranger = ethcommon.HexToAddress("0x00000000000000000000000000000000000000d5")

	genesis = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
)

// manualOracle records submissions; tests answer them explicitly.
type manualOracle struct {
	mu   sync.Mutex
	reqs []gateway.Request
	err  error
}

func (o *manualOracle) Submit(_ context.Context, req gateway.Request) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.reqs = append(o.reqs, req)
	return nil
}

func (o *manualOracle) last(t *testing.T) gateway.Request {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.reqs, "no request submitted")
	return o.reqs[len(o.reqs)-1]
}

type harness struct {
	t       *testing.T
	ctx     context.Context
	l       *Ledger
	sim     *fhe.Simulator
	enc     *fhe.InputEncryptor
	signer  *gateway.Signer
	relayer *gateway.Relayer
	oracle  *manualOracle
	clock   *clock.Mock
	events  *events.Recorder
	metrics *metrics.Metrics
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithRepos(t, repomanager.NewInMemoryRepositoryManager())
}

func newHarnessWithRepos(t *testing.T, repos repomanager.RepositoryManager) *harness {
	t.Helper()
	key, err := fhe.DeriveNetworkKey("ledger-test")
	require.NoError(t, err)
	sim, err := fhe.OpenSimulator("", key)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sim.Close() })
	enc, err := fhe.NewInputEncryptor(key)
	require.NoError(t, err)

	signer, err := gateway.GenerateSigner()
	require.NoError(t, err)
	verifier, err := gateway.NewVerifier([]ethcommon.Address{signer.Address()}, 1)
	require.NoError(t, err)
	relayer, err := gateway.NewRelayer(sim, []*gateway.Signer{signer}, 1, 0, logging.Nop())
	require.NoError(t, err)

	h := &harness{
		t:       t,
		ctx:     context.Background(),
		sim:     sim,
		enc:     enc,
		signer:  signer,
		relayer: relayer,
		oracle:  &manualOracle{},
		clock:   timex.NewManualClock(genesis),
		events:  &events.Recorder{},
		metrics: metrics.New(),
	}
	cfg := DefaultConfig()
	cfg.Owner = owner
	h.l, err = New(cfg, Deps{
		Repos:     repos,
		Engine:    sim,
		Decryptor: sim,
		Verifier:  verifier,
		Oracle:    h.oracle,
		Clock:     h.clock,
		Events:    h.events,
		Metrics:   h.metrics,
	})
	require.NoError(t, err)
	require.NoError(t, h.l.Init(h.ctx))
	return h
}

func (h *harness) input(v uint64, typ fhe.Type, from ethcommon.Address) fhe.Input {
	h.t.Helper()
	in, err := h.enc.Encrypt(v, typ, from)
	require.NoError(h.t, err)
	return in
}

// fulfill answers the most recent oracle request through the callback.
func (h *harness) fulfill() error {
	h.t.Helper()
	req := h.oracle.last(h.t)
	clear, proof, err := h.relayer.Respond(h.ctx, req)
	require.NoError(h.t, err)
	return h.l.HandleCallback(h.ctx, req.ID, clear, proof)
}

// signed answers req with an arbitrary cleartext signed by the trusted key.
func (h *harness) signed(req gateway.Request, clear []byte) []byte {
	h.t.Helper()
	sig, err := h.signer.Sign(gateway.Digest(req.ID, req.Handles, clear))
	require.NoError(h.t, err)
	return sig
}

func (h *harness) reveal(handle fhe.Handle, as ethcommon.Address) uint64 {
	h.t.Helper()
	v, err := h.l.UserDecrypt(h.ctx, as, handle)
	require.NoError(h.t, err)
	return v
}

func (h *harness) team(salaryCap uint64) uint64 {
	h.t.Helper()
	id, err := h.l.RegisterTeam(h.ctx, owner, RegisterTeamParams{
		Name:      "Harbor City",
		Manager:   manager,
		SalaryCap: h.input(salaryCap, fhe.TypeUint64, owner),
	})
	require.NoError(h.t, err)
	return id
}

func (h *harness) athlete(teamID uint64, wallet ethcommon.Address, salary, bonus uint64, months uint32) uint64 {
	h.t.Helper()
	id, err := h.l.RegisterAthlete(h.ctx, manager, RegisterAthleteParams{
		TeamID:         teamID,
		Name:           "Player " + wallet.Hex()[38:],
		Position:       "forward",
		Wallet:         wallet,
		Salary:         h.input(salary, fhe.TypeUint32, manager),
		Bonus:          h.input(bonus, fhe.TypeUint32, manager),
		DurationMonths: months,
	})
	require.NoError(h.t, err)
	return id
}

func (h *harness) payroll(teamID uint64) uint64 {
	h.t.Helper()
	team, err := h.l.GetTeam(h.ctx, teamID)
	require.NoError(h.t, err)
	return h.reveal(team.Payroll, manager)
}

func TestNew_Validation(t *testing.T) {
	h := newHarness(t)
	deps := Deps{
		Repos:     repomanager.NewInMemoryRepositoryManager(),
		Engine:    h.sim,
		Decryptor: h.sim,
		Verifier:  &gateway.Verifier{},
		Oracle:    h.oracle,
	}

	_, err := New(DefaultConfig(), deps)
	assert.ErrorIs(t, err, common.ErrInvalidInput, "zero owner")

	cfg := DefaultConfig()
	cfg.Owner = owner
	cfg.VoteStake = uint256.NewInt(0)
	_, err = New(cfg, deps)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.Owner = owner
	_, err = New(cfg, Deps{})
	assert.Error(t, err)

	l, err := New(cfg, deps)
	require.NoError(t, err)
	assert.Equal(t, owner, l.Config().Owner)
}

func TestInit_StoresDefaultsOnce(t *testing.T) {
	h := newHarness(t)
	s, err := h.l.Settings(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Season)
	assert.Equal(t, DefaultConfig().VoteStake, s.VoteStake)
	assert.True(t, s.FeesCollected.IsZero())
	assert.Equal(t, genesis, s.SeasonStartedAt)

	require.NoError(t, h.l.SetMarketParams(h.ctx, owner, uint256.NewInt(7), uint256.NewInt(0)))
	require.NoError(t, h.l.Init(h.ctx))
	s, err = h.l.Settings(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.VoteStake.Uint64())
}

func TestExec_RollsBackOnFailure(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	before := h.events.Names()

	// the salary verifies, the bonus was encrypted for someone else
	_, err := h.l.RegisterAthlete(h.ctx, manager, RegisterAthleteParams{
		TeamID:         teamID,
		Name:           "Broken",
		Wallet:         player,
		Salary:         h.input(10, fhe.TypeUint32, manager),
		Bonus:          h.input(10, fhe.TypeUint32, stranger),
		DurationMonths: 12,
	})
	require.ErrorIs(t, err, common.ErrInvalidProof)
	assert.Equal(t, before, h.events.Names(), "no events from a failed operation")

	id := h.athlete(teamID, player, 1, 1, 12)
	assert.Equal(t, uint64(1), id, "failed registration must not consume an id")
	assert.Equal(t, int64(1), h.metrics.Snapshot()["op.register_athlete.errors"])
}

func TestUserDecrypt_RequiresGrant(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	h.athlete(teamID, player, 100, 5, 12)
	team, err := h.l.GetTeam(h.ctx, teamID)
	require.NoError(t, err)

	assert.Equal(t, uint64(105), h.reveal(team.Payroll, manager))
	assert.Equal(t, uint64(105), h.reveal(team.Payroll, owner))
	_, err = h.l.UserDecrypt(h.ctx, stranger, team.Payroll)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestOracleSubmitFailure_LeavesRequestOpen(t *testing.T) {
	h := newHarness(t)
	teamID := h.team(1000)
	athleteID := h.athlete(teamID, player, 100, 0, 12)
	pid, err := h.l.Propose(h.ctx, manager, ProposeParams{
		AthleteID: athleteID, TeamID: teamID, DurationMonths: 6,
		Salary: h.input(120, fhe.TypeUint32, manager), Bonus: h.input(0, fhe.TypeUint32, manager),
	})
	require.NoError(t, err)

	h.oracle.err = errors.New("gateway down")
	reqID, err := h.l.RequestProposalDecryption(h.ctx, player, pid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.metrics.Count(metrics.SubmitFailures))

	open, err := h.l.ListOpenRequests(h.ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, reqID, open[0].ID)

	h.clock.Add(time.Hour)
	require.NoError(t, h.l.HandleTimeout(h.ctx, stranger, reqID))
	open, err = h.l.ListOpenRequests(h.ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

// flakyRepos fails market updates while failMarkets is set.
type flakyRepos struct {
	*repomanager.InMemoryRepositoryManager
	failMarkets atomic.Bool
}

func (r *flakyRepos) Markets(db dbx.DBTX) markets.Repository {
	return flakyMarkets{Repository: r.InMemoryRepositoryManager.Markets(db), fail: &r.failMarkets}
}

type flakyMarkets struct {
	markets.Repository
	fail *atomic.Bool
}

func (m flakyMarkets) Update(ctx context.Context, mk *models.Market) error {
	if m.fail.Load() {
		return errors.New("write failed")
	}
	return m.Repository.Update(ctx, mk)
}

func TestRolledBackRequest_KeepsHandlesSealed(t *testing.T) {
	repos := &flakyRepos{InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager()}
	h := newHarnessWithRepos(t, repos)
	h.market("derby", time.Hour)
	h.vote("derby", player, models.OutcomeYes, 2)
	m, err := h.l.GetMarket(h.ctx, "derby")
	require.NoError(t, err)
	h.clock.Set(m.ExpiresAt)

	repos.failMarkets.Store(true)
	_, err = h.l.RequestTallyReveal(h.ctx, creator, "derby")
	require.Error(t, err)

	_, err = h.sim.Decrypt(h.ctx, m.YesTally)
	assert.ErrorIs(t, err, fhe.ErrNotDecryptable, "rolled back request must not unseal its handles")
	open, err := h.l.ListOpenRequests(h.ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
	h.oracle.mu.Lock()
	assert.Empty(t, h.oracle.reqs)
	h.oracle.mu.Unlock()

	repos.failMarkets.Store(false)
	reqID, err := h.l.RequestTallyReveal(h.ctx, creator, "derby")
	require.NoError(t, err)
	assert.Equal(t, reqID, h.oracle.last(t).ID)

	v, err := h.sim.Decrypt(h.ctx, m.YesTally)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)
}
