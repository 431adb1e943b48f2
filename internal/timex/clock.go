package timex

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Clock supplies the current time. clock.Clock and *clock.Mock satisfy it.
type Clock interface {
	Now() time.Time
}

// utcClock reports another clock's time in UTC.
type utcClock struct {
	clock.Clock
}

func (c utcClock) Now() time.Time { return c.Clock.Now().UTC() }

// System returns the wall clock, read in UTC.
func System() clock.Clock { return utcClock{clock.New()} }

// NewManualClock returns a mock clock standing at start. It only moves on
// Add or Set, and fires due timers and tickers when it does.
func NewManualClock(start time.Time) *clock.Mock {
	m := clock.NewMock()
	m.Set(start)
	return m
}
