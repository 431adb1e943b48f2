package ledger

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type proposalFixture struct {
	*harness
	teamID    uint64
	athleteID uint64
}

func newProposalFixture(t *testing.T) *proposalFixture {
	h := newHarness(t)
	teamID := h.team(10_000)
	return &proposalFixture{
		harness:   h,
		teamID:    teamID,
		athleteID: h.athlete(teamID, player, 1000, 100, 12),
	}
}

func (f *proposalFixture) propose(salary, bonus uint64, months uint32) uint64 {
	f.t.Helper()
	id, err := f.l.Propose(f.ctx, manager, ProposeParams{
		AthleteID:      f.athleteID,
		TeamID:         f.teamID,
		Salary:         f.input(salary, fhe.TypeUint32, manager),
		Bonus:          f.input(bonus, fhe.TypeUint32, manager),
		DurationMonths: months,
	})
	require.NoError(f.t, err)
	return id
}

func (f *proposalFixture) proposal(id uint64) *models.Proposal {
	f.t.Helper()
	p, err := f.l.GetProposal(f.ctx, id)
	require.NoError(f.t, err)
	return p
}

func TestPropose_Validation(t *testing.T) {
	f := newProposalFixture(t)
	other := f.team(10_000)
	outsider := f.athlete(other, player2, 1, 1, 12)

	valid := func() ProposeParams {
		return ProposeParams{
			AthleteID:      f.athleteID,
			TeamID:         f.teamID,
			Salary:         f.input(1, fhe.TypeUint32, manager),
			Bonus:          f.input(1, fhe.TypeUint32, manager),
			DurationMonths: 6,
		}
	}

	_, err := f.l.Propose(f.ctx, owner, ProposeParams{
		AthleteID: f.athleteID, TeamID: f.teamID, DurationMonths: 6,
		Salary: f.input(1, fhe.TypeUint32, owner), Bonus: f.input(1, fhe.TypeUint32, owner),
	})
	assert.ErrorIs(t, err, common.ErrUnauthorized, "only the manager proposes")

	p := valid()
	p.AthleteID = outsider
	_, err = f.l.Propose(f.ctx, manager, p)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	p = valid()
	p.DurationMonths = MaxDurationMonths + 1
	_, err = f.l.Propose(f.ctx, manager, p)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	p = valid()
	p.AthleteID = 42
	_, err = f.l.Propose(f.ctx, manager, p)
	assert.ErrorIs(t, err, common.ErrNotFound)

	id, err := f.l.Propose(f.ctx, manager, valid())
	require.NoError(t, err)
	prop := f.proposal(id)
	assert.Equal(t, models.ProposalPending, prop.Status)
	assert.Equal(t, manager, prop.Proposer)
	assert.Equal(t, genesis.Add(f.l.Config().ProposalValidity), prop.ExpiresAt)
	assert.Equal(t, uint64(1), f.reveal(prop.Salary, player), "athlete reads the offer")
}

func TestProposal_ApproveAfterReveal(t *testing.T) {
	f := newProposalFixture(t)
	id := f.propose(2000, 250, 24)

	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, player, id), common.ErrNotRevealed)

	_, err := f.l.RequestProposalDecryption(f.ctx, manager, id)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	reqID, err := f.l.RequestProposalDecryption(f.ctx, player, id)
	require.NoError(t, err)
	_, err = f.l.RequestProposalDecryption(f.ctx, player, id)
	assert.ErrorIs(t, err, common.ErrAlreadyRequested)

	req := f.oracle.last(t)
	assert.Equal(t, reqID, req.ID)
	prop := f.proposal(id)
	assert.Equal(t, []fhe.Handle{prop.Salary, prop.Bonus}, req.Handles)

	require.NoError(t, f.fulfill())
	assert.True(t, f.proposal(id).CallbackReceived)

	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, manager, id), common.ErrUnauthorized)

	f.clock.Add(time.Hour)
	require.NoError(t, f.l.ApproveProposal(f.ctx, player, id))

	prop = f.proposal(id)
	assert.Equal(t, models.ProposalApproved, prop.Status)
	ath, err := f.l.GetAthlete(f.ctx, f.athleteID)
	require.NoError(t, err)
	assert.Equal(t, prop.Salary, ath.Salary)
	assert.Equal(t, prop.Bonus, ath.Bonus)
	assert.Equal(t, f.clock.Now(), ath.ContractStart)
	assert.Equal(t, f.clock.Now().Add(24*Month), ath.ContractEnd)
	assert.Equal(t, uint64(2250), f.payroll(f.teamID))
	assert.Equal(t, uint64(2000), f.reveal(ath.Salary, manager))

	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, player, id), common.ErrAlreadyFinalized)
	assert.ErrorIs(t, f.l.RejectProposal(f.ctx, player, id), common.ErrAlreadyFinalized)

	_, ok := f.events.Last(events.ProposalApproved)
	assert.True(t, ok)
}

func TestProposal_Reject(t *testing.T) {
	f := newProposalFixture(t)
	id := f.propose(1, 1, 1)

	assert.ErrorIs(t, f.l.RejectProposal(f.ctx, manager, id), common.ErrUnauthorized)
	require.NoError(t, f.l.RejectProposal(f.ctx, player, id))

	prop := f.proposal(id)
	assert.Equal(t, models.ProposalRejected, prop.Status)
	assert.Equal(t, models.RejectDeclined, prop.Reason)
	assert.Equal(t, uint64(1100), f.payroll(f.teamID), "payroll untouched")

	_, err := f.l.RequestProposalDecryption(f.ctx, player, id)
	assert.ErrorIs(t, err, common.ErrAlreadyFinalized)
}

func TestProposal_ExpiryAndEmergencyWithdraw(t *testing.T) {
	f := newProposalFixture(t)
	id := f.propose(5000, 0, 12)

	assert.ErrorIs(t, f.l.EmergencyWithdraw(f.ctx, manager, id), common.ErrNotExpired)

	f.clock.Add(f.l.Config().ProposalValidity)

	_, err := f.l.RequestProposalDecryption(f.ctx, player, id)
	assert.ErrorIs(t, err, common.ErrExpired)
	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, player, id), common.ErrExpired)
	assert.ErrorIs(t, f.l.EmergencyWithdraw(f.ctx, stranger, id), common.ErrUnauthorized)

	require.NoError(t, f.l.EmergencyWithdraw(f.ctx, manager, id))
	prop := f.proposal(id)
	assert.Equal(t, models.ProposalRejected, prop.Status)
	assert.Equal(t, models.RejectExpired, prop.Reason)

	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, player, id), common.ErrAlreadyFinalized)
	assert.ErrorIs(t, f.l.EmergencyWithdraw(f.ctx, player, id), common.ErrAlreadyFinalized)
}

func TestProposal_ApproveRequiresActiveAthlete(t *testing.T) {
	f := newProposalFixture(t)
	id := f.propose(10, 10, 6)
	_, err := f.l.RequestProposalDecryption(f.ctx, player, id)
	require.NoError(t, err)
	require.NoError(t, f.fulfill())

	require.NoError(t, f.l.DeactivateAthlete(f.ctx, manager, f.athleteID))
	assert.ErrorIs(t, f.l.ApproveProposal(f.ctx, player, id), common.ErrInactive)
}

func TestRequestProposalDecryption_RequiresActiveParties(t *testing.T) {
	tests := []struct {
		name       string
		deactivate func(f *proposalFixture) error
	}{
		{"athlete deactivated", func(f *proposalFixture) error {
			return f.l.DeactivateAthlete(f.ctx, manager, f.athleteID)
		}},
		{"team deactivated", func(f *proposalFixture) error {
			return f.l.DeactivateTeam(f.ctx, owner, f.teamID)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProposalFixture(t)
			id := f.propose(10, 10, 6)
			require.NoError(t, tt.deactivate(f))

			_, err := f.l.RequestProposalDecryption(f.ctx, player, id)
			assert.ErrorIs(t, err, common.ErrInactive)

			assert.Zero(t, f.proposal(id).RequestID)
			open, err := f.l.ListOpenRequests(f.ctx)
			require.NoError(t, err)
			assert.Empty(t, open)
			f.oracle.mu.Lock()
			assert.Empty(t, f.oracle.reqs, "nothing submitted to the oracle")
			f.oracle.mu.Unlock()
		})
	}
}

func TestProposal_DecryptionTimeout(t *testing.T) {
	f := newProposalFixture(t)
	id := f.propose(10, 10, 6)
	reqID, err := f.l.RequestProposalDecryption(f.ctx, player, id)
	require.NoError(t, err)

	assert.ErrorIs(t, f.l.HandleTimeout(f.ctx, stranger, reqID), common.ErrNotExpired)
	f.clock.Add(f.l.Config().DecryptionTimeout - time.Second)
	assert.ErrorIs(t, f.l.HandleTimeout(f.ctx, stranger, reqID), common.ErrNotExpired)

	f.clock.Add(time.Second)
	require.NoError(t, f.l.HandleTimeout(f.ctx, stranger, reqID))

	prop := f.proposal(id)
	assert.Equal(t, models.ProposalRejected, prop.Status)
	assert.Equal(t, models.RejectTimedOut, prop.Reason)

	req, err := f.l.GetRequestStatus(f.ctx, reqID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestTimedOut, req.State())
	assert.Equal(t, f.clock.Now(), req.FinalizedAt)

	assert.ErrorIs(t, f.fulfill(), common.ErrAlreadyFinalized, "late callback")
	assert.ErrorIs(t, f.l.HandleTimeout(f.ctx, stranger, reqID), common.ErrAlreadyFinalized)
	assert.ErrorIs(t, f.l.HandleTimeout(f.ctx, stranger, 99), common.ErrNotFound)
}
