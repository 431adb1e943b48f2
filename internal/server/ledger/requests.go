package ledger

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/gateway"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/counters"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// openRequest records a decryption request for target and queues it for
// the oracle. Its handles are marked for decryption after commit. Callers
// have already checked that target has no request.
func (a *action) openRequest(ctx context.Context, target models.Target, requester ethcommon.Address, handles ...fhe.Handle) (*models.DecryptionRequest, error) {
	id, err := a.counters().Next(ctx, counters.Requests)
	if err != nil {
		return nil, err
	}
	req := &models.DecryptionRequest{
		ID:        id,
		Target:    target,
		Requester: requester,
		Handles:   handles,
		CreatedAt: a.now,
	}
	if err := a.requests().Create(ctx, req); err != nil {
		return nil, errors.Wrapf(err, "create request %d", id)
	}

	a.submits = append(a.submits, gateway.Request{ID: id, Handles: handles})
	a.count(metrics.RequestsOpened)
	a.emit(events.RequestOpened, "request_id", id, "kind", target.Kind.String(), "target", targetRef(target), "requester", requester.Hex())
	return req, nil
}

func targetRef(t models.Target) any {
	if t.Kind == models.KindTally {
		return t.MarketID
	}
	return t.ProposalID
}

// GetRequestStatus returns a decryption request and its flags.
func (l *Ledger) GetRequestStatus(ctx context.Context, id uint64) (*models.DecryptionRequest, error) {
	var out *models.DecryptionRequest
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.request(ctx, id)
		return err
	})
	return out, err
}

// ListOpenRequests returns the requests still waiting for a callback or a
// timeout, oldest first.
func (l *Ledger) ListOpenRequests(ctx context.Context) ([]*models.DecryptionRequest, error) {
	var out []*models.DecryptionRequest
	err := l.view(ctx, func(ctx context.Context, a *action) (err error) {
		out, err = a.requests().ListOpen(ctx)
		return err
	})
	return out, err
}
