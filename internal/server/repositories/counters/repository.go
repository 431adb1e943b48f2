// Package counters allocates the ledger's monotonic ids. Id 0 is never
// handed out, so it can mean "does not exist".
package counters

import "context"

// Counter names.
const (
	Teams     = "team"
	Athletes  = "athlete"
	Proposals = "proposal"
	Requests  = "request"
)

type Repository interface {
	// Next increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (uint64, error)
	// Current returns the last value handed out, 0 if none.
	Current(ctx context.Context, name string) (uint64, error)
}
