package ledger

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/pkg/errors"
)

// HandleCallback applies an oracle answer. The request must exist and be
// open, the proof must cover the request's handles and the cleartext, and
// the cleartext must decode for the request kind; otherwise nothing
// changes. A request is completed at most once, and never after it timed
// out.
func (l *Ledger) HandleCallback(ctx context.Context, requestID uint64, cleartext, proof []byte) error {
	err := l.exec(ctx, "handle_callback", func(ctx context.Context, a *action) error {
		req, err := a.request(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Finalized() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "request %d is %s", req.ID, req.State())
		}
		if err := l.verifier.Verify(req.ID, req.Handles, cleartext, proof); err != nil {
			return errors.Wrapf(err, "request %d", req.ID)
		}

		var apply func(ctx context.Context) error
		switch req.Target.Kind {
		case models.KindProposal:
			if _, err := decodeProposal(cleartext); err != nil {
				return errors.Wrapf(err, "request %d", req.ID)
			}
			apply = func(ctx context.Context) error { return a.proposalRevealed(ctx, req) }
		case models.KindTally:
			tally, err := decodeTally(cleartext)
			if err != nil {
				return errors.Wrapf(err, "request %d", req.ID)
			}
			apply = func(ctx context.Context) error { return a.tallyRevealed(ctx, req, tally) }
		default:
			return errors.Wrapf(common.ErrMalformedPayload, "request %d has kind %d", req.ID, req.Target.Kind)
		}

		req.Completed = true
		req.FinalizedAt = a.now
		if err := a.requests().Finalize(ctx, req); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return errors.Wrapf(common.ErrAlreadyFinalized, "request %d", req.ID)
			}
			return errors.Wrapf(err, "finalize request %d", req.ID)
		}
		if err := apply(ctx); err != nil {
			return err
		}

		a.count(metrics.RequestsCompleted)
		a.emit(events.RequestCompleted, "request_id", req.ID, "kind", req.Target.Kind.String(), "success", true)
		return nil
	})
	if err != nil {
		l.metrics.Inc(metrics.CallbacksRejected)
		l.logger.Warn(ctx, "callback rejected", "request_id", requestID, "error", err)
	}
	return err
}

// proposalRevealed unlocks approval. The revealed terms are not stored;
// approval promotes the proposal's ciphertexts as they are.
func (a *action) proposalRevealed(ctx context.Context, req *models.DecryptionRequest) error {
	p, err := a.proposal(ctx, req.Target.ProposalID)
	if err != nil {
		return err
	}
	if !p.Pending() {
		a.l.logger.Info(ctx, "callback for settled proposal", "request_id", req.ID, "proposal_id", p.ID, "status", p.Status.String())
		return nil
	}
	p.CallbackReceived = true
	p.UpdatedAt = a.now
	if err := a.proposals().Update(ctx, p); err != nil {
		return errors.Wrapf(err, "update proposal %d", p.ID)
	}
	return nil
}

// tallyRevealed stores the plaintext totals and resolves the market.
func (a *action) tallyRevealed(ctx context.Context, req *models.DecryptionRequest, t tallyReveal) error {
	m, err := a.market(ctx, req.Target.MarketID)
	if err != nil {
		return err
	}
	if m.Status != models.MarketRevealRequested || m.RequestID != req.ID {
		return errors.Wrapf(common.ErrAlreadyFinalized, "market %q is %s", m.ID, m.Status)
	}
	m.RevealedYes = t.Yes
	m.RevealedNo = t.No
	m.Outcome = t.outcome()
	m.Status = models.MarketResolved
	m.UpdatedAt = a.now
	if err := a.markets().Update(ctx, m); err != nil {
		return errors.Wrapf(err, "update market %q", m.ID)
	}
	a.emit(events.MarketResolved, "market_id", m.ID, "yes", t.Yes, "no", t.No, "outcome", m.Outcome.String())
	return nil
}
