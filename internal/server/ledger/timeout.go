package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// HandleTimeout gives up on an open request once DecryptionTimeout has
// passed since it was opened. Anyone may call it; nothing calls it
// automatically. A linked pending proposal is rejected and a market
// waiting for its reveal fails, which makes its stakes refundable.
func (l *Ledger) HandleTimeout(ctx context.Context, caller ethcommon.Address, requestID uint64) error {
	return l.exec(ctx, "handle_timeout", func(ctx context.Context, a *action) error {
		req, err := a.request(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Finalized() {
			return errors.Wrapf(common.ErrAlreadyFinalized, "request %d is %s", req.ID, req.State())
		}
		deadline := req.CreatedAt.Add(l.cfg.DecryptionTimeout)
		if a.now.Before(deadline) {
			return errors.Wrapf(common.ErrNotExpired, "request %d times out at %s", req.ID, deadline.Format(time.RFC3339))
		}

		req.TimedOut = true
		req.FinalizedAt = a.now
		if err := a.requests().Finalize(ctx, req); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return errors.Wrapf(common.ErrAlreadyFinalized, "request %d", req.ID)
			}
			return errors.Wrapf(err, "finalize request %d", req.ID)
		}
		a.count(metrics.RequestsTimedOut)
		a.emit(events.RequestTimedOut, "request_id", req.ID, "kind", req.Target.Kind.String(), "by", caller.Hex())

		switch req.Target.Kind {
		case models.KindProposal:
			return a.proposalTimedOut(ctx, req)
		case models.KindTally:
			return a.tallyTimedOut(ctx, req)
		}
		return nil
	})
}

func (a *action) proposalTimedOut(ctx context.Context, req *models.DecryptionRequest) error {
	p, err := a.proposal(ctx, req.Target.ProposalID)
	if err != nil {
		return err
	}
	if !p.Pending() {
		return nil
	}
	return a.rejectProposal(ctx, p, models.RejectTimedOut)
}

func (a *action) tallyTimedOut(ctx context.Context, req *models.DecryptionRequest) error {
	m, err := a.market(ctx, req.Target.MarketID)
	if err != nil {
		return err
	}
	if m.Status != models.MarketRevealRequested {
		return nil
	}
	m.Status = models.MarketFailed
	m.UpdatedAt = a.now
	if err := a.markets().Update(ctx, m); err != nil {
		return errors.Wrapf(err, "update market %q", m.ID)
	}
	a.emit(events.MarketFailed, "market_id", m.ID, "request_id", req.ID)
	return nil
}
