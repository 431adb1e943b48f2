package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/logging"
)

// ErrQueueFull is returned by Submit when the relayer is saturated.
var ErrQueueFull = errors.New("gateway: request queue full")

// Relayer is an in-process oracle. It decrypts submitted handles, signs the
// result with every configured key and delivers it to a Fulfiller.
type Relayer struct {
	decryptor fhe.Decryptor
	signers   []*Signer
	queue     chan Request
	delay     time.Duration
	logger    logging.Logger
}

func NewRelayer(d fhe.Decryptor, signers []*Signer, queueSize int, delay time.Duration, l logging.Logger) (*Relayer, error) {
	if len(signers) == 0 {
		return nil, errors.New("gateway: relayer needs at least one signer")
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Relayer{
		decryptor: d,
		signers:   signers,
		queue:     make(chan Request, queueSize),
		delay:     delay,
		logger:    l.With("module", "gateway_relayer"),
	}, nil
}

// Submit enqueues req without waiting for it to be served.
func (r *Relayer) Submit(ctx context.Context, req Request) error {
	select {
	case r.queue <- req:
		r.logger.Debug(ctx, "decryption request queued", "request_id", req.ID, "handles", len(req.Handles))
		return nil
	default:
		return ErrQueueFull
	}
}

// Respond decrypts req and produces the callback payload and its proof.
func (r *Relayer) Respond(ctx context.Context, req Request) (cleartext, proof []byte, err error) {
	values := make([]uint64, len(req.Handles))
	for i, h := range req.Handles {
		if values[i], err = r.decryptor.Decrypt(ctx, h); err != nil {
			return nil, nil, fmt.Errorf("decrypt %s: %w", h.Hex(), err)
		}
	}

	cleartext = EncodeWords(values...)
	digest := Digest(req.ID, req.Handles, cleartext)
	for _, s := range r.signers {
		sig, err := s.Sign(digest)
		if err != nil {
			return nil, nil, err
		}
		proof = append(proof, sig...)
	}
	return cleartext, proof, nil
}

// Run serves queued requests until ctx is cancelled. Failures are logged and
// the request is dropped; the ledger recovers through its timeout path.
func (r *Relayer) Run(ctx context.Context, f Fulfiller) {
	r.logger.Info(ctx, "Starting gateway relayer", "signers", len(r.signers), "delay", r.delay)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info(ctx, "Stopping gateway relayer...")
			return
		case req := <-r.queue:
			if r.delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(r.delay):
				}
			}
			r.serve(ctx, f, req)
		}
	}
}

func (r *Relayer) serve(ctx context.Context, f Fulfiller, req Request) {
	cleartext, proof, err := r.Respond(ctx, req)
	if err != nil {
		r.logger.Error(ctx, "decryption failed", "request_id", req.ID, "error", err)
		return
	}
	if err := f.HandleCallback(ctx, req.ID, cleartext, proof); err != nil {
		r.logger.Warn(ctx, "callback rejected", "request_id", req.ID, "error", err)
		return
	}
	r.logger.Info(ctx, "callback delivered", "request_id", req.ID)
}

// Mailbox is the oracle used when no relayer runs in process. It only
// records that a request is waiting; an external gateway finds it through
// the open-requests listing and answers through the fulfillment RPC.
type Mailbox struct {
	logger logging.Logger
}

func NewMailbox(l logging.Logger) *Mailbox {
	return &Mailbox{logger: l.With("module", "gateway_mailbox")}
}

func (m *Mailbox) Submit(ctx context.Context, req Request) error {
	m.logger.Info(ctx, "decryption request awaiting external gateway", "request_id", req.ID, "handles", len(req.Handles))
	return nil
}
