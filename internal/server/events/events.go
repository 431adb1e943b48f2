// Package events carries the ledger's audit events to sinks. Events are
// published after the state change that produced them has committed.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/logging"
	"github.com/google/uuid"
)

// Event names.
const (
	RequestOpened       = "RequestOpened"
	RequestCompleted    = "RequestCompleted"
	RequestTimedOut     = "RequestTimedOut"
	TeamRegistered      = "TeamRegistered"
	TeamDeactivated     = "TeamDeactivated"
	AthleteRegistered   = "AthleteRegistered"
	AthleteDeactivated  = "AthleteDeactivated"
	CompensationUpdated = "CompensationUpdated"
	PayrollRecomputed   = "PayrollRecomputed"
	ProposalCreated     = "ProposalCreated"
	ProposalApproved    = "ProposalApproved"
	ProposalRejected    = "ProposalRejected"
	MarketCreated       = "MarketCreated"
	VoteCast            = "VoteCast"
	MarketResolved      = "MarketResolved"
	MarketFailed        = "MarketFailed"
	PrizeClaimed        = "PrizeClaimed"
	RefundClaimed       = "RefundClaimed"
	SeasonStarted       = "SeasonStarted"
	MarketParamsSet     = "MarketParamsSet"
)

type Event struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Time   time.Time      `json:"time"`
	Fields map[string]any `json:"fields,omitempty"`
}

// New builds an event from alternating key/value pairs. Non-string keys
// are formatted with %v.
func New(name string, t time.Time, kv ...any) Event {
	e := Event{ID: uuid.New(), Name: name, Time: t}
	if len(kv) > 0 {
		e.Fields = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			e.Fields[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return e
}

// Sink receives the events of one committed operation, in emission order.
type Sink interface {
	Publish(ctx context.Context, batch []Event) error
}

// LogSink writes every event as one log record.
type LogSink struct {
	logger logging.Logger
}

func NewLogSink(l logging.Logger) *LogSink {
	return &LogSink{logger: l.With("module", "events")}
}

func (s *LogSink) Publish(ctx context.Context, batch []Event) error {
	for _, e := range batch {
		args := []any{"event", e.Name, "event_id", e.ID.String()}
		for k, v := range e.Fields {
			args = append(args, k, v)
		}
		s.logger.Info(ctx, "ledger event", args...)
	}
	return nil
}

// Multi fans a batch out to every sink. All sinks are tried; their errors
// are joined.
type Multi []Sink

func (m Multi) Publish(ctx context.Context, batch []Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, batch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps everything it is given. Used by tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, batch []Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, batch...)
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// Last returns the most recent event with the given name.
func (r *Recorder) Last(name string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Name == name {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
