// Package metrics holds the ledger's operational counters and timers in a
// go-metrics registry and periodically reports them to the logger.
package metrics

import (
	"context"
	"sort"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	gometrics "github.com/rcrowley/go-metrics"
)

// Metric names.
const (
	RequestsOpened    = "requests.opened"
	RequestsCompleted = "requests.completed"
	RequestsTimedOut  = "requests.timed_out"
	CallbacksRejected = "callbacks.rejected"
	SubmitFailures    = "oracle.submit_failures"
	VotesCast         = "market.votes"
	PrizesClaimed     = "market.prizes"
	RefundsClaimed    = "market.refunds"
)

type Metrics struct {
	registry gometrics.Registry
	clock    clock.Clock
}

func New() *Metrics {
	return NewWithClock(clock.New())
}

// NewWithClock is New with the clock that drives Report.
func NewWithClock(c clock.Clock) *Metrics {
	return &Metrics{registry: gometrics.NewRegistry(), clock: c}
}

func (m *Metrics) Registry() gometrics.Registry { return m.registry }

func (m *Metrics) Inc(name string) {
	gometrics.GetOrRegisterCounter(name, m.registry).Inc(1)
}

func (m *Metrics) Count(name string) int64 {
	return gometrics.GetOrRegisterCounter(name, m.registry).Count()
}

// Observe records the latency of one ledger operation and counts its
// failures under "<op>.errors".
func (m *Metrics) Observe(op string, start time.Time, err error) {
	gometrics.GetOrRegisterTimer("op."+op, m.registry).UpdateSince(start)
	if err != nil {
		gometrics.GetOrRegisterCounter("op."+op+".errors", m.registry).Inc(1)
	}
}

// Snapshot flattens counters and timer counts into name -> value.
func (m *Metrics) Snapshot() map[string]int64 {
	out := map[string]int64{}
	m.registry.Each(func(name string, i interface{}) {
		switch v := i.(type) {
		case gometrics.Counter:
			out[name] = v.Count()
		case gometrics.Timer:
			out[name] = v.Count()
		}
	})
	return out
}

// Report logs a snapshot every interval until ctx is done.
func (m *Metrics) Report(ctx context.Context, logger logging.Logger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	logger = logger.With("module", "metrics")
	t := m.clock.Ticker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.report(ctx, logger)
		}
	}
}

func (m *Metrics) report(ctx context.Context, logger logging.Logger) {
	snap := m.Snapshot()
	names := make([]string, 0, len(snap))
	for n := range snap {
		names = append(names, n)
	}
	sort.Strings(names)
	args := make([]any, 0, 2*len(names))
	for _, n := range names {
		args = append(args, n, snap[n])
	}
	logger.Info(ctx, "metrics", args...)
}
