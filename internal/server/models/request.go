package models

import (
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// RequestKind is the closed set of things a decryption request can resolve.
type RequestKind uint8

const (
	KindProposal RequestKind = iota + 1
	KindTally
)

func (k RequestKind) String() string {
	switch k {
	case KindProposal:
		return "proposal"
	case KindTally:
		return "tally"
	default:
		return "unknown"
	}
}

// Target identifies the entity a request resolves. Exactly one of ProposalID
// and MarketID is set, according to Kind.
type Target struct {
	Kind       RequestKind
	ProposalID uint64
	MarketID   string
}

func ProposalTarget(id uint64) Target { return Target{Kind: KindProposal, ProposalID: id} }

func TallyTarget(marketID string) Target { return Target{Kind: KindTally, MarketID: marketID} }

type RequestState uint8

const (
	RequestOpen RequestState = iota + 1
	RequestCompleted
	RequestTimedOut
)

func (s RequestState) String() string {
	switch s {
	case RequestOpen:
		return "open"
	case RequestCompleted:
		return "completed"
	case RequestTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// DecryptionRequest tracks one round trip to the oracle. Completed and
// TimedOut are mutually exclusive and each set at most once.
type DecryptionRequest struct {
	ID          uint64
	Target      Target
	Requester   ethcommon.Address
	Handles     []fhe.Handle
	CreatedAt   time.Time
	Completed   bool
	TimedOut    bool
	FinalizedAt time.Time
}

func (r *DecryptionRequest) State() RequestState {
	switch {
	case r.Completed:
		return RequestCompleted
	case r.TimedOut:
		return RequestTimedOut
	default:
		return RequestOpen
	}
}

func (r *DecryptionRequest) Finalized() bool { return r.Completed || r.TimedOut }
