// Package memstore keeps every ledger repository in process memory. It backs
// the in-memory repository manager used by tests and by servers started
// without a database DSN.
package memstore

import (
	"bytes"
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type voteKey struct {
	market string
	voter  ethcommon.Address
}

type state struct {
	counters  map[string]uint64
	teams     map[uint64]models.Team
	athletes  map[uint64]models.Athlete
	proposals map[uint64]models.Proposal
	markets   map[string]models.Market
	votes     map[voteKey]models.Vote
	requests  map[uint64]models.DecryptionRequest
	settings  *models.Settings
}

// clone copies the maps. Stored values never alias caller memory, so a
// shallow copy of each map is a full snapshot.
func (s state) clone() state {
	out := state{
		counters:  maps.Clone(s.counters),
		teams:     maps.Clone(s.teams),
		athletes:  maps.Clone(s.athletes),
		proposals: maps.Clone(s.proposals),
		markets:   maps.Clone(s.markets),
		votes:     maps.Clone(s.votes),
		requests:  maps.Clone(s.requests),
	}
	if s.settings != nil {
		st := *s.settings
		out.settings = &st
	}
	return out
}

type Store struct {
	mu sync.Mutex
	st state
}

func New() *Store {
	return &Store{st: state{
		counters:  map[string]uint64{},
		teams:     map[uint64]models.Team{},
		athletes:  map[uint64]models.Athlete{},
		proposals: map[uint64]models.Proposal{},
		markets:   map[string]models.Market{},
		votes:     map[voteKey]models.Vote{},
		requests:  map[uint64]models.DecryptionRequest{},
	}}
}

// WithTx runs fn and rolls every repository back to its prior contents if
// fn fails or panics. Callers serialize writers themselves; concurrent
// transactions would overwrite each other's rollback.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(ctx)
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
}

func cloneInt(v *uint256.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	return new(uint256.Int).Set(v)
}

// Counters

type Counters struct{ s *Store }

func (s *Store) Counters() *Counters { return &Counters{s} }

func (r *Counters) Next(_ context.Context, name string) (uint64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.counters[name]++
	return r.s.st.counters[name], nil
}

func (r *Counters) Current(_ context.Context, name string) (uint64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.st.counters[name], nil
}

// Teams

type Teams struct{ s *Store }

func (s *Store) Teams() *Teams { return &Teams{s} }

func (r *Teams) Create(_ context.Context, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.teams[t.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.teams[t.ID] = *t
	return nil
}

func (r *Teams) Get(_ context.Context, id uint64) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.st.teams[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *Teams) Update(_ context.Context, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.teams[t.ID]; !ok {
		return common.ErrorNotFound
	}
	r.s.st.teams[t.ID] = *t
	return nil
}

// Athletes

type Athletes struct{ s *Store }

func (s *Store) Athletes() *Athletes { return &Athletes{s} }

func (r *Athletes) Create(_ context.Context, a *models.Athlete) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.athletes[a.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.athletes[a.ID] = *a
	return nil
}

func (r *Athletes) Get(_ context.Context, id uint64) (*models.Athlete, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.st.athletes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *Athletes) Update(_ context.Context, a *models.Athlete) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.athletes[a.ID]; !ok {
		return common.ErrorNotFound
	}
	r.s.st.athletes[a.ID] = *a
	return nil
}

func (r *Athletes) list(keep func(models.Athlete) bool) []*models.Athlete {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Athlete
	for _, a := range r.s.st.athletes {
		if keep(a) {
			out = append(out, &a)
		}
	}
	slices.SortFunc(out, func(x, y *models.Athlete) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

func (r *Athletes) ListByTeam(_ context.Context, teamID uint64) ([]*models.Athlete, error) {
	return r.list(func(a models.Athlete) bool { return a.TeamID == teamID }), nil
}

func (r *Athletes) ListExpired(_ context.Context, t time.Time) ([]*models.Athlete, error) {
	return r.list(func(a models.Athlete) bool { return a.Active && !a.ContractEnd.After(t) }), nil
}

// Proposals

type Proposals struct{ s *Store }

func (s *Store) Proposals() *Proposals { return &Proposals{s} }

func (r *Proposals) Create(_ context.Context, p *models.Proposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.proposals[p.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.proposals[p.ID] = *p
	return nil
}

func (r *Proposals) Get(_ context.Context, id uint64) (*models.Proposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.proposals[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *Proposals) Update(_ context.Context, p *models.Proposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.proposals[p.ID]; !ok {
		return common.ErrorNotFound
	}
	r.s.st.proposals[p.ID] = *p
	return nil
}

// Markets

type Markets struct{ s *Store }

func (s *Store) Markets() *Markets { return &Markets{s} }

func copyMarket(m models.Market) models.Market {
	m.VoteStake = cloneInt(m.VoteStake)
	m.PrizePool = cloneInt(m.PrizePool)
	m.PaidOut = cloneInt(m.PaidOut)
	return m
}

func (r *Markets) Create(_ context.Context, m *models.Market) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.markets[m.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.markets[m.ID] = copyMarket(*m)
	return nil
}

func (r *Markets) Get(_ context.Context, id string) (*models.Market, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.st.markets[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	m = copyMarket(m)
	return &m, nil
}

func (r *Markets) Update(_ context.Context, m *models.Market) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.markets[m.ID]; !ok {
		return common.ErrorNotFound
	}
	r.s.st.markets[m.ID] = copyMarket(*m)
	return nil
}

// Votes

type Votes struct{ s *Store }

func (s *Store) Votes() *Votes { return &Votes{s} }

func copyVote(v models.Vote) models.Vote {
	v.Stake = cloneInt(v.Stake)
	return v
}

func (r *Votes) Create(_ context.Context, v *models.Vote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := voteKey{v.MarketID, v.Voter}
	if _, ok := r.s.st.votes[k]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.votes[k] = copyVote(*v)
	return nil
}

func (r *Votes) Get(_ context.Context, marketID string, voter ethcommon.Address) (*models.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.st.votes[voteKey{marketID, voter}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	v = copyVote(v)
	return &v, nil
}

func (r *Votes) MarkClaimed(_ context.Context, marketID string, voter ethcommon.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := voteKey{marketID, voter}
	v, ok := r.s.st.votes[k]
	if !ok || v.Claimed {
		return common.ErrorAlreadyExists
	}
	v.Claimed = true
	r.s.st.votes[k] = v
	return nil
}

func (r *Votes) ListByMarket(_ context.Context, marketID string) ([]*models.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Vote
	for k, v := range r.s.st.votes {
		if k.market == marketID {
			v = copyVote(v)
			out = append(out, &v)
		}
	}
	slices.SortFunc(out, func(x, y *models.Vote) int {
		if c := x.CastAt.Compare(y.CastAt); c != 0 {
			return c
		}
		return bytes.Compare(x.Voter[:], y.Voter[:])
	})
	return out, nil
}

// Requests

type Requests struct{ s *Store }

func (s *Store) Requests() *Requests { return &Requests{s} }

func copyRequest(r models.DecryptionRequest) models.DecryptionRequest {
	r.Handles = slices.Clone(r.Handles)
	return r
}

func (r *Requests) Create(_ context.Context, req *models.DecryptionRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.requests[req.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.st.requests[req.ID] = copyRequest(*req)
	return nil
}

func (r *Requests) Get(_ context.Context, id uint64) (*models.DecryptionRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.st.requests[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	req = copyRequest(req)
	return &req, nil
}

func (r *Requests) Finalize(_ context.Context, req *models.DecryptionRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.st.requests[req.ID]
	if !ok {
		return common.ErrorNotFound
	}
	if stored.Finalized() {
		return common.ErrorAlreadyExists
	}
	stored.Completed = req.Completed
	stored.TimedOut = req.TimedOut
	stored.FinalizedAt = req.FinalizedAt
	r.s.st.requests[req.ID] = stored
	return nil
}

func (r *Requests) ListOpen(_ context.Context) ([]*models.DecryptionRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.DecryptionRequest
	for _, req := range r.s.st.requests {
		if !req.Finalized() {
			req = copyRequest(req)
			out = append(out, &req)
		}
	}
	slices.SortFunc(out, func(x, y *models.DecryptionRequest) int { return cmp.Compare(x.ID, y.ID) })
	return out, nil
}

// Settings

type Settings struct{ s *Store }

func (s *Store) Settings() *Settings { return &Settings{s} }

func copySettings(st models.Settings) models.Settings {
	st.VoteStake = cloneInt(st.VoteStake)
	st.CreationFee = cloneInt(st.CreationFee)
	st.FeesCollected = cloneInt(st.FeesCollected)
	return st
}

func (r *Settings) Get(_ context.Context) (*models.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.st.settings == nil {
		return nil, common.ErrorNotFound
	}
	st := copySettings(*r.s.st.settings)
	return &st, nil
}

func (r *Settings) Save(_ context.Context, st *models.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := copySettings(*st)
	r.s.st.settings = &c
	return nil
}
