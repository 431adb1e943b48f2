package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

type CreateMarketParams struct {
	ID       string
	Question string
	Duration time.Duration
	// Fee is the payment attached to the call. It must equal the current
	// creation fee.
	Fee *uint256.Int
}

// CreateMarket opens a market under a caller-chosen id. The vote stake in
// force at creation applies to the whole market.
func (l *Ledger) CreateMarket(ctx context.Context, caller ethcommon.Address, p CreateMarketParams) (*models.Market, error) {
	var out *models.Market
	err := l.exec(ctx, "create_market", func(ctx context.Context, a *action) error {
		if err := checkMarketID(p.ID); err != nil {
			return err
		}
		if err := checkText("question", p.Question, MaxQuestionLength, false); err != nil {
			return err
		}
		if p.Duration < l.cfg.MinMarketDuration || p.Duration > l.cfg.MaxMarketDuration {
			return errors.Wrapf(common.ErrInvalidInput, "duration %s outside %s..%s", p.Duration, l.cfg.MinMarketDuration, l.cfg.MaxMarketDuration)
		}
		s, err := a.loadSettings(ctx)
		if err != nil {
			return err
		}
		fee := p.Fee
		if fee == nil {
			fee = new(uint256.Int)
		}
		if !fee.Eq(s.CreationFee) {
			return errors.Wrapf(common.ErrInvalidInput, "creation fee is %s wei, got %s", s.CreationFee.Dec(), fee.Dec())
		}

		zero, err := a.engine().TrivialEncrypt(ctx, 0, fhe.TypeUint64)
		if err != nil {
			return err
		}
		m := &models.Market{
			ID:        p.ID,
			Creator:   caller,
			Question:  p.Question,
			VoteStake: new(uint256.Int).Set(s.VoteStake),
			PrizePool: new(uint256.Int),
			PaidOut:   new(uint256.Int),
			YesTally:  zero,
			NoTally:   zero,
			Status:    models.MarketOpen,
			CreatedAt: a.now,
			ExpiresAt: a.now.Add(p.Duration),
			UpdatedAt: a.now,
		}
		if err := a.markets().Create(ctx, m); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return errors.Wrapf(common.ErrInvalidInput, "market id %q is taken", p.ID)
			}
			return errors.Wrapf(err, "create market %q", p.ID)
		}

		s.FeesCollected = new(uint256.Int).Add(s.FeesCollected, fee)
		s.UpdatedAt = a.now
		if err := a.settingsRepo().Save(ctx, s); err != nil {
			return errors.Wrap(err, "save settings")
		}
		a.emit(events.MarketCreated, "market_id", m.ID, "creator", caller.Hex(),
			"vote_stake", m.VoteStake.Dec(), "expires_at", m.ExpiresAt.Format(time.RFC3339))
		out = m
		return nil
	})
	return out, err
}

type VoteParams struct {
	MarketID string
	Side     models.Outcome
	// Weight is a Uint64 ciphertext encrypted by the caller. A weight above
	// Config.MaxVoteWeight is clamped to MaxVoteWeight under encryption,
	// not rejected.
	Weight fhe.Input
	// Stake is the payment attached to the call. It must equal the
	// market's vote stake.
	Stake *uint256.Int
}

// Vote casts the caller's single vote. The side is public, the weight stays
// encrypted and is capped at MaxVoteWeight before it joins the tally.
func (l *Ledger) Vote(ctx context.Context, caller ethcommon.Address, p VoteParams) error {
	return l.exec(ctx, "vote", func(ctx context.Context, a *action) error {
		m, err := a.market(ctx, p.MarketID)
		if err != nil {
			return err
		}
		if m.Status != models.MarketOpen {
			return errors.Wrapf(common.ErrAlreadyFinalized, "market %q is %s", m.ID, m.Status)
		}
		if m.Expired(a.now) {
			return errors.Wrapf(common.ErrExpired, "market %q closed at %s", m.ID, m.ExpiresAt.Format(time.RFC3339))
		}
		if p.Side != models.OutcomeYes && p.Side != models.OutcomeNo {
			return errors.Wrapf(common.ErrInvalidInput, "side %d", p.Side)
		}
		if p.Stake == nil || !p.Stake.Eq(m.VoteStake) {
			return errors.Wrapf(common.ErrInvalidInput, "vote stake is %s wei", m.VoteStake.Dec())
		}
		if _, err := a.votes().Get(ctx, m.ID, caller); err == nil {
			return errors.Wrapf(common.ErrAlreadyVoted, "%s in market %q", caller.Hex(), m.ID)
		} else if !errors.Is(err, common.ErrorNotFound) {
			return errors.Wrap(err, "load vote")
		}

		weight, err := a.capWeight(ctx, caller, p.Weight)
		if err != nil {
			return err
		}
		if p.Side == models.OutcomeYes {
			m.YesTally, err = a.engine().Add(ctx, m.YesTally, weight)
			m.YesVoters++
		} else {
			m.NoTally, err = a.engine().Add(ctx, m.NoTally, weight)
			m.NoVoters++
		}
		if err != nil {
			return errors.Wrapf(err, "add to %s tally", p.Side)
		}
		m.PrizePool = new(uint256.Int).Add(m.PrizePool, p.Stake)
		m.UpdatedAt = a.now

		v := &models.Vote{
			MarketID: m.ID,
			Voter:    caller,
			Side:     p.Side,
			Weight:   weight,
			Stake:    new(uint256.Int).Set(p.Stake),
			CastAt:   a.now,
		}
		if err := a.votes().Create(ctx, v); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return errors.Wrapf(common.ErrAlreadyVoted, "%s in market %q", caller.Hex(), m.ID)
			}
			return errors.Wrap(err, "create vote")
		}
		if err := a.markets().Update(ctx, m); err != nil {
			return errors.Wrapf(err, "update market %q", m.ID)
		}
		a.count(metrics.VotesCast)
		a.emit(events.VoteCast, "market_id", m.ID, "voter", caller.Hex(), "side", p.Side.String())
		return nil
	})
}

// capWeight verifies a weight ciphertext and computes min(w, MaxVoteWeight)
// without decrypting it. The voter may read the result.
func (a *action) capWeight(ctx context.Context, caller ethcommon.Address, in fhe.Input) (fhe.Handle, error) {
	w, err := a.engine().VerifyInput(ctx, in, caller, fhe.TypeUint64)
	if err != nil {
		return fhe.Handle{}, errors.Wrap(err, "weight")
	}
	limit, err := a.engine().TrivialEncrypt(ctx, a.l.cfg.MaxVoteWeight, fhe.TypeUint64)
	if err != nil {
		return fhe.Handle{}, err
	}
	within, err := a.engine().Le(ctx, w, limit)
	if err != nil {
		return fhe.Handle{}, err
	}
	capped, err := a.engine().Select(ctx, within, w, limit)
	if err != nil {
		return fhe.Handle{}, err
	}
	return capped, a.grant(ctx, capped, caller)
}

// RequestTallyReveal sends both tallies to the oracle. Only the creator may
// call it, once, after the market closed and before the reveal grace
// period has run out.
func (l *Ledger) RequestTallyReveal(ctx context.Context, caller ethcommon.Address, marketID string) (uint64, error) {
	var requestID uint64
	err := l.exec(ctx, "request_tally_reveal", func(ctx context.Context, a *action) error {
		m, err := a.market(ctx, marketID)
		if err != nil {
			return err
		}
		if caller != m.Creator {
			return errors.Wrapf(common.ErrUnauthorized, "%s did not create market %q", caller.Hex(), m.ID)
		}
		switch m.Status {
		case models.MarketOpen:
		case models.MarketRevealRequested:
			return errors.Wrapf(common.ErrAlreadyRequested, "market %q has request %d", m.ID, m.RequestID)
		default:
			return errors.Wrapf(common.ErrAlreadyFinalized, "market %q is %s", m.ID, m.Status)
		}
		if !m.Expired(a.now) {
			return errors.Wrapf(common.ErrNotExpired, "market %q closes at %s", m.ID, m.ExpiresAt.Format(time.RFC3339))
		}
		if !a.now.Before(m.ExpiresAt.Add(l.cfg.RevealGrace)) {
			return errors.Wrapf(common.ErrExpired, "reveal window of market %q has passed", m.ID)
		}

		req, err := a.openRequest(ctx, models.TallyTarget(m.ID), caller, m.YesTally, m.NoTally)
		if err != nil {
			return err
		}
		m.Status = models.MarketRevealRequested
		m.RequestID = req.ID
		m.UpdatedAt = a.now
		if err := a.markets().Update(ctx, m); err != nil {
			return errors.Wrapf(err, "update market %q", m.ID)
		}
		requestID = req.ID
		return nil
	})
	return requestID, err
}

// ClaimPrize pays a winning voter an equal share of the prize pool. Integer
// division leaves any remainder in the pool.
func (l *Ledger) ClaimPrize(ctx context.Context, caller ethcommon.Address, marketID string) (*uint256.Int, error) {
	var prize *uint256.Int
	err := l.exec(ctx, "claim_prize", func(ctx context.Context, a *action) error {
		m, err := a.market(ctx, marketID)
		if err != nil {
			return err
		}
		v, err := a.vote(ctx, m.ID, caller)
		if err != nil {
			return err
		}
		switch m.Status {
		case models.MarketResolved:
		case models.MarketOpen, models.MarketRevealRequested:
			return errors.Wrapf(common.ErrNotRevealed, "market %q is %s", m.ID, m.Status)
		default:
			return errors.Wrapf(common.ErrAlreadyFinalized, "market %q is %s", m.ID, m.Status)
		}
		if m.Outcome == models.OutcomeTie {
			return errors.Wrapf(common.ErrNotWinner, "market %q ended in a tie", m.ID)
		}
		if v.Side != m.Outcome {
			return errors.Wrapf(common.ErrNotWinner, "%s voted %s, outcome is %s", caller.Hex(), v.Side, m.Outcome)
		}
		if v.Claimed {
			return errors.Wrapf(common.ErrAlreadyClaimed, "%s in market %q", caller.Hex(), m.ID)
		}

		winners := m.YesVoters
		if m.Outcome == models.OutcomeNo {
			winners = m.NoVoters
		}
		prize = new(uint256.Int).Div(m.PrizePool, uint256.NewInt(winners))
		if err := a.payout(ctx, m, caller, prize); err != nil {
			return err
		}
		a.count(metrics.PrizesClaimed)
		a.emit(events.PrizeClaimed, "market_id", m.ID, "voter", caller.Hex(), "amount", prize.Dec())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prize, nil
}

// ClaimRefund returns a voter's stake when the market cannot pay prizes: a
// tie, a failed reveal, or a reveal never requested within RevealGrace of
// expiry. The last case moves the market to Refunding.
func (l *Ledger) ClaimRefund(ctx context.Context, caller ethcommon.Address, marketID string) (*uint256.Int, error) {
	var refund *uint256.Int
	err := l.exec(ctx, "claim_refund", func(ctx context.Context, a *action) error {
		m, err := a.market(ctx, marketID)
		if err != nil {
			return err
		}
		v, err := a.vote(ctx, m.ID, caller)
		if err != nil {
			return err
		}
		if v.Claimed {
			return errors.Wrapf(common.ErrAlreadyClaimed, "%s in market %q", caller.Hex(), m.ID)
		}

		switch m.Status {
		case models.MarketFailed, models.MarketRefunding:
		case models.MarketResolved:
			if m.Outcome != models.OutcomeTie {
				return errors.Wrapf(common.ErrAlreadyFinalized, "market %q resolved %s", m.ID, m.Outcome)
			}
		case models.MarketRevealRequested:
			return errors.Wrapf(common.ErrNotRevealed, "market %q waits for request %d", m.ID, m.RequestID)
		case models.MarketOpen:
			refundable := m.ExpiresAt.Add(l.cfg.RevealGrace)
			if a.now.Before(refundable) {
				return errors.Wrapf(common.ErrNotExpired, "market %q refundable from %s", m.ID, refundable.Format(time.RFC3339))
			}
			m.Status = models.MarketRefunding
		default:
			return errors.Wrapf(common.ErrAlreadyFinalized, "market %q is %s", m.ID, m.Status)
		}

		refund = new(uint256.Int).Set(v.Stake)
		if err := a.payout(ctx, m, caller, refund); err != nil {
			return err
		}
		a.count(metrics.RefundsClaimed)
		a.emit(events.RefundClaimed, "market_id", m.ID, "voter", caller.Hex(), "amount", refund.Dec())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// payout flips the voter's claim flag and books amount against the pool.
func (a *action) payout(ctx context.Context, m *models.Market, voter ethcommon.Address, amount *uint256.Int) error {
	if err := a.votes().MarkClaimed(ctx, m.ID, voter); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return errors.Wrapf(common.ErrAlreadyClaimed, "%s in market %q", voter.Hex(), m.ID)
		}
		return errors.Wrap(err, "mark claimed")
	}
	m.PaidOut = new(uint256.Int).Add(m.PaidOut, amount)
	m.UpdatedAt = a.now
	if err := a.markets().Update(ctx, m); err != nil {
		return errors.Wrapf(err, "update market %q", m.ID)
	}
	return nil
}

// SetMarketParams changes the vote stake and creation fee for markets
// created from now on. Owner only.
func (l *Ledger) SetMarketParams(ctx context.Context, caller ethcommon.Address, voteStake, creationFee *uint256.Int) error {
	return l.exec(ctx, "set_market_params", func(ctx context.Context, a *action) error {
		if err := l.requireOwner(caller); err != nil {
			return err
		}
		if voteStake == nil || voteStake.IsZero() {
			return errors.Wrap(common.ErrInvalidInput, "vote stake must be positive")
		}
		if creationFee == nil {
			return errors.Wrap(common.ErrInvalidInput, "creation fee is required")
		}
		s, err := a.loadSettings(ctx)
		if err != nil {
			return err
		}
		s.VoteStake = new(uint256.Int).Set(voteStake)
		s.CreationFee = new(uint256.Int).Set(creationFee)
		s.UpdatedAt = a.now
		if err := a.settingsRepo().Save(ctx, s); err != nil {
			return errors.Wrap(err, "save settings")
		}
		a.emit(events.MarketParamsSet, "vote_stake", voteStake.Dec(), "creation_fee", creationFee.Dec())
		return nil
	})
}

// GetMarket returns a market. Tallies stay encrypted until resolution.
func (l *Ledger) GetMarket(ctx context.Context, id string) (*models.Market, error) {
	var out *models.Market
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.market(ctx, id)
		return err
	})
	return out, err
}

// GetVote returns the caller-visible record of one vote.
func (l *Ledger) GetVote(ctx context.Context, marketID string, voter ethcommon.Address) (*models.Vote, error) {
	var out *models.Vote
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.vote(ctx, marketID, voter)
		return err
	})
	return out, err
}
