package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters_StartAtOne(t *testing.T) {
	ctx := context.Background()
	c := New().Counters()

	cur, err := c.Current(ctx, "team")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cur)

	for want := uint64(1); want <= 3; want++ {
		got, err := c.Next(ctx, "team")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	other, _ := c.Next(ctx, "athlete")
	assert.Equal(t, uint64(1), other)
}

func TestTeams_StoresCopies(t *testing.T) {
	ctx := context.Background()
	r := New().Teams()
	team := &models.Team{ID: 1, Name: "A", SalaryCap: fhe.Handle{7}, Active: true}
	require.NoError(t, r.Create(ctx, team))
	assert.ErrorIs(t, r.Create(ctx, team), common.ErrorAlreadyExists)

	team.Name = "B"
	got, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, fhe.Handle{7}, got.SalaryCap)

	_, err = r.Get(ctx, 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Update(ctx, &models.Team{ID: 2}), common.ErrorNotFound)
}

func TestAthletes_Lists(t *testing.T) {
	ctx := context.Background()
	r := New().Athletes()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, a := range []*models.Athlete{
		{ID: 3, TeamID: 1, Active: true, ContractEnd: now.Add(time.Hour)},
		{ID: 1, TeamID: 1, Active: true, ContractEnd: now},
		{ID: 2, TeamID: 2, Active: true, ContractEnd: now.Add(-time.Hour)},
		{ID: 4, TeamID: 1, Active: false, ContractEnd: now.Add(-time.Hour)},
	} {
		require.NoError(t, r.Create(ctx, a))
	}

	byTeam, err := r.ListByTeam(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byTeam, 3)
	assert.Equal(t, []uint64{1, 3, 4}, []uint64{byTeam[0].ID, byTeam[1].ID, byTeam[2].ID})

	expired, err := r.ListExpired(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, uint64(1), expired[0].ID)
	assert.Equal(t, uint64(2), expired[1].ID)
}

func TestVotes_ClaimOnce(t *testing.T) {
	ctx := context.Background()
	r := New().Votes()
	voter := ethcommon.HexToAddress("0x01")
	v := &models.Vote{MarketID: "m", Voter: voter, Side: models.OutcomeYes, Stake: uint256.NewInt(5)}
	require.NoError(t, r.Create(ctx, v))
	assert.ErrorIs(t, r.Create(ctx, v), common.ErrorAlreadyExists)

	require.NoError(t, r.MarkClaimed(ctx, "m", voter))
	assert.ErrorIs(t, r.MarkClaimed(ctx, "m", voter), common.ErrorAlreadyExists)

	got, err := r.Get(ctx, "m", voter)
	require.NoError(t, err)
	assert.True(t, got.Claimed)

	list, err := r.ListByMarket(ctx, "m")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRequests_FinalizeOnce(t *testing.T) {
	ctx := context.Background()
	r := New().Requests()
	req := &models.DecryptionRequest{ID: 1, Target: models.ProposalTarget(1), Handles: []fhe.Handle{{1}}}
	require.NoError(t, r.Create(ctx, req))
	require.NoError(t, r.Create(ctx, &models.DecryptionRequest{ID: 2, Target: models.TallyTarget("m")}))

	req.Completed = true
	require.NoError(t, r.Finalize(ctx, req))

	req.Completed, req.TimedOut = false, true
	assert.ErrorIs(t, r.Finalize(ctx, req), common.ErrorAlreadyExists)

	got, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.False(t, got.TimedOut)

	open, err := r.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, uint64(2), open[0].ID)
}

func TestSettings_GetBeforeSave(t *testing.T) {
	ctx := context.Background()
	r := New().Settings()
	_, err := r.Get(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.Save(ctx, &models.Settings{VoteStake: uint256.NewInt(1), CreationFee: uint256.NewInt(0), FeesCollected: uint256.NewInt(0)}))
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.VoteStake.Uint64())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Teams().Create(ctx, &models.Team{ID: 1, Name: "before"}))

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.Counters().Next(ctx, "team"); err != nil {
			return err
		}
		if err := s.Teams().Update(ctx, &models.Team{ID: 1, Name: "after"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	team, err := s.Teams().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "before", team.Name)
	cur, _ := s.Counters().Current(ctx, "team")
	assert.Equal(t, uint64(0), cur)
}

func TestWithTx_KeepsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.Counters().Next(ctx, "team")
		return err
	}))
	cur, _ := s.Counters().Current(ctx, "team")
	assert.Equal(t, uint64(1), cur)
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := New()
	assert.Panics(t, func() {
		_ = s.WithTx(ctx, func(ctx context.Context) error {
			_, _ = s.Counters().Next(ctx, "team")
			panic("boom")
		})
	})
	cur, _ := s.Counters().Current(ctx, "team")
	assert.Equal(t, uint64(0), cur)
}
