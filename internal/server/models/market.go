package models

import (
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type MarketStatus uint8

const (
	MarketOpen MarketStatus = iota + 1
	MarketRevealRequested
	MarketResolved
	// MarketFailed is reached when the tally decryption timed out.
	MarketFailed
	// MarketRefunding is reached when nobody requested a reveal in time.
	MarketRefunding
)

func (s MarketStatus) String() string {
	switch s {
	case MarketOpen:
		return "open"
	case MarketRevealRequested:
		return "reveal_requested"
	case MarketResolved:
		return "resolved"
	case MarketFailed:
		return "failed"
	case MarketRefunding:
		return "refunding"
	default:
		return "unknown"
	}
}

type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	OutcomeYes
	OutcomeNo
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeYes:
		return "yes"
	case OutcomeNo:
		return "no"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Market is a belief market. Vote weights are only ever held as encrypted
// per-side tallies until the reveal callback stores the plaintext totals.
type Market struct {
	ID          string
	Creator     ethcommon.Address
	Question    string
	VoteStake   *uint256.Int
	PrizePool   *uint256.Int
	PaidOut     *uint256.Int
	YesVoters   uint64
	NoVoters    uint64
	YesTally    fhe.Handle
	NoTally     fhe.Handle
	Status      MarketStatus
	RequestID   uint64
	RevealedYes uint64
	RevealedNo  uint64
	Outcome     Outcome
	CreatedAt   time.Time
	ExpiresAt   time.Time
	UpdatedAt   time.Time
}

func (m *Market) Voters() uint64 { return m.YesVoters + m.NoVoters }

func (m *Market) Expired(now time.Time) bool { return !now.Before(m.ExpiresAt) }

// Vote is one address's participation in a market.
type Vote struct {
	MarketID string
	Voter    ethcommon.Address
	Side     Outcome
	Weight   fhe.Handle
	Stake    *uint256.Int
	Claimed  bool
	CastAt   time.Time
}
