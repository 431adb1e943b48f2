package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type ProposeParams struct {
	AthleteID uint64
	TeamID    uint64
	// Salary and Bonus are Uint32 ciphertexts encrypted by the caller.
	Salary         fhe.Input
	Bonus          fhe.Input
	DurationMonths uint32
}

// Propose offers new compensation terms to an athlete of the caller's team.
// Only the team manager may propose. The proposal expires after
// ProposalValidity.
func (l *Ledger) Propose(ctx context.Context, caller ethcommon.Address, p ProposeParams) (uint64, error) {
	var id uint64
	err := l.exec(ctx, "propose", func(ctx context.Context, a *action) error {
		team, err := a.activeTeam(ctx, p.TeamID)
		if err != nil {
			return err
		}
		if caller != team.Manager {
			return errors.Wrapf(common.ErrUnauthorized, "%s does not manage team %d", caller.Hex(), team.ID)
		}
		ath, err := a.activeAthlete(ctx, p.AthleteID)
		if err != nil {
			return err
		}
		if ath.TeamID != team.ID {
			return errors.Wrapf(common.ErrInvalidInput, "athlete %d is not in team %d", ath.ID, team.ID)
		}
		if err := checkMonths(p.DurationMonths); err != nil {
			return err
		}

		salary, bonus, err := a.compensation(ctx, caller, p.Salary, p.Bonus, ath.Wallet)
		if err != nil {
			return err
		}

		if id, err = a.counters().Next(ctx, counters.Proposals); err != nil {
			return err
		}
		prop := &models.Proposal{
			ID:             id,
			AthleteID:      ath.ID,
			TeamID:         team.ID,
			Proposer:       caller,
			Salary:         salary,
			Bonus:          bonus,
			DurationMonths: p.DurationMonths,
			CreatedAt:      a.now,
			ExpiresAt:      a.now.Add(l.cfg.ProposalValidity),
			Status:         models.ProposalPending,
			UpdatedAt:      a.now,
		}
		if err := a.proposals().Create(ctx, prop); err != nil {
			return errors.Wrapf(err, "create proposal %d", id)
		}
		a.emit(events.ProposalCreated, "proposal_id", id, "athlete_id", ath.ID, "team_id", team.ID,
			"expires_at", prop.ExpiresAt.Format(time.RFC3339))
		return nil
	})
	return id, err
}

// RequestProposalDecryption asks the oracle to reveal the proposed terms.
// Only the athlete may call it, once, while the proposal is pending and
// unexpired and both the athlete and the team are active.
func (l *Ledger) RequestProposalDecryption(ctx context.Context, caller ethcommon.Address, proposalID uint64) (uint64, error) {
	var requestID uint64
	err := l.exec(ctx, "request_proposal_decryption", func(ctx context.Context, a *action) error {
		p, ath, err := a.proposalForAthlete(ctx, caller, proposalID)
		if err != nil {
			return err
		}
		if !p.Pending() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "proposal %d is %s", p.ID, p.Status)
		}
		if p.RequestID != 0 {
			return errors.Wrapf(common.ErrAlreadyRequested, "proposal %d has request %d", p.ID, p.RequestID)
		}
		if p.Expired(a.now) {
			return errors.Wrapf(common.ErrExpired, "proposal %d expired at %s", p.ID, p.ExpiresAt.Format(time.RFC3339))
		}
		if !ath.Active {
			return errors.Wrapf(common.ErrInactive, "athlete %d", ath.ID)
		}
		if _, err := a.activeTeam(ctx, p.TeamID); err != nil {
			return err
		}

		req, err := a.openRequest(ctx, models.ProposalTarget(p.ID), ath.Wallet, p.Salary, p.Bonus)
		if err != nil {
			return err
		}
		p.RequestID = req.ID
		p.UpdatedAt = a.now
		if err := a.proposals().Update(ctx, p); err != nil {
			return errors.Wrapf(err, "update proposal %d", p.ID)
		}
		requestID = req.ID
		return nil
	})
	return requestID, err
}

// ApproveProposal accepts revealed terms: the proposal's ciphertexts become
// the athlete's compensation, the contract restarts for the proposed
// duration and the payroll is recomputed. Only the athlete may approve,
// after the reveal and before expiry.
func (l *Ledger) ApproveProposal(ctx context.Context, caller ethcommon.Address, proposalID uint64) error {
	return l.exec(ctx, "approve_proposal", func(ctx context.Context, a *action) error {
		p, ath, err := a.proposalForAthlete(ctx, caller, proposalID)
		if err != nil {
			return err
		}
		if !p.Pending() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "proposal %d is %s", p.ID, p.Status)
		}
		if p.Expired(a.now) {
			return errors.Wrapf(common.ErrExpired, "proposal %d expired at %s", p.ID, p.ExpiresAt.Format(time.RFC3339))
		}
		if !p.CallbackReceived {
			return errors.Wrapf(common.ErrNotRevealed, "proposal %d", p.ID)
		}
		if !ath.Active {
			return errors.Wrapf(common.ErrInactive, "athlete %d", ath.ID)
		}
		team, err := a.activeTeam(ctx, p.TeamID)
		if err != nil {
			return err
		}

		if err := a.grant(ctx, p.Salary, team.Manager); err != nil {
			return err
		}
		if err := a.grant(ctx, p.Bonus, team.Manager); err != nil {
			return err
		}
		ath.Salary = p.Salary
		ath.Bonus = p.Bonus
		ath.ContractStart = a.now
		ath.ContractEnd = a.now.Add(time.Duration(p.DurationMonths) * Month)
		ath.UpdatedAt = a.now
		if err := a.athletes().Update(ctx, ath); err != nil {
			return errors.Wrapf(err, "update athlete %d", ath.ID)
		}

		p.Status = models.ProposalApproved
		p.UpdatedAt = a.now
		if err := a.proposals().Update(ctx, p); err != nil {
			return errors.Wrapf(err, "update proposal %d", p.ID)
		}
		a.emit(events.ProposalApproved, "proposal_id", p.ID, "athlete_id", ath.ID, "team_id", team.ID)
		a.emit(events.CompensationUpdated, "athlete_id", ath.ID, "team_id", team.ID, "by", caller.Hex(), "proposal_id", p.ID)
		return a.recomputePayroll(ctx, team)
	})
}

// RejectProposal declines a pending proposal. Only the athlete may call it.
func (l *Ledger) RejectProposal(ctx context.Context, caller ethcommon.Address, proposalID uint64) error {
	return l.exec(ctx, "reject_proposal", func(ctx context.Context, a *action) error {
		p, _, err := a.proposalForAthlete(ctx, caller, proposalID)
		if err != nil {
			return err
		}
		if !p.Pending() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "proposal %d is %s", p.ID, p.Status)
		}
		return a.rejectProposal(ctx, p, models.RejectDeclined)
	})
}

// EmergencyWithdraw closes a proposal that expired while still pending.
// The proposer and the athlete may call it.
func (l *Ledger) EmergencyWithdraw(ctx context.Context, caller ethcommon.Address, proposalID uint64) error {
	return l.exec(ctx, "emergency_withdraw", func(ctx context.Context, a *action) error {
		p, err := a.proposal(ctx, proposalID)
		if err != nil {
			return err
		}
		ath, err := a.athlete(ctx, p.AthleteID)
		if err != nil {
			return err
		}
		if caller != p.Proposer && caller != ath.Wallet {
			return errors.Wrapf(common.ErrUnauthorized, "%s is neither proposer nor athlete of proposal %d", caller.Hex(), p.ID)
		}
		if !p.Pending() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "proposal %d is %s", p.ID, p.Status)
		}
		if !p.Expired(a.now) {
			return errors.Wrapf(common.ErrNotExpired, "proposal %d expires at %s", p.ID, p.ExpiresAt.Format(time.RFC3339))
		}
		return a.rejectProposal(ctx, p, models.RejectExpired)
	})
}

// proposalForAthlete loads a proposal and its athlete and checks that caller
// is the athlete.
func (a *action) proposalForAthlete(ctx context.Context, caller ethcommon.Address, proposalID uint64) (*models.Proposal, *models.Athlete, error) {
	p, err := a.proposal(ctx, proposalID)
	if err != nil {
		return nil, nil, err
	}
	ath, err := a.athlete(ctx, p.AthleteID)
	if err != nil {
		return nil, nil, err
	}
	if caller != ath.Wallet {
		return nil, nil, errors.Wrapf(common.ErrUnauthorized, "%s is not the athlete of proposal %d", caller.Hex(), p.ID)
	}
	return p, ath, nil
}

func (a *action) rejectProposal(ctx context.Context, p *models.Proposal, reason models.RejectReason) error {
	p.Status = models.ProposalRejected
	p.Reason = reason
	p.UpdatedAt = a.now
	if err := a.proposals().Update(ctx, p); err != nil {
		return errors.Wrapf(err, "update proposal %d", p.ID)
	}
	a.emit(events.ProposalRejected, "proposal_id", p.ID, "athlete_id", p.AthleteID, "reason", reason.String())
	return nil
}

// GetProposal returns a proposal in any state.
func (l *Ledger) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	var out *models.Proposal
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.proposal(ctx, id)
		return err
	})
	return out, err
}
