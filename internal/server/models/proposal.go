package models

import (
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

type ProposalStatus uint8

const (
	ProposalPending ProposalStatus = iota + 1
	ProposalApproved
	ProposalRejected
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalPending:
		return "pending"
	case ProposalApproved:
		return "approved"
	case ProposalRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectReason tells the terminal REJECTED variants apart.
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectDeclined
	RejectTimedOut
	RejectExpired
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return ""
	case RejectDeclined:
		return "declined"
	case RejectTimedOut:
		return "decryption_timeout"
	case RejectExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Proposal is a pending change of an athlete's compensation.
type Proposal struct {
	ID               uint64
	AthleteID        uint64
	TeamID           uint64
	Proposer         ethcommon.Address
	Salary           fhe.Handle
	Bonus            fhe.Handle
	DurationMonths   uint32
	CreatedAt        time.Time
	ExpiresAt        time.Time
	Status           ProposalStatus
	Reason           RejectReason
	RequestID        uint64
	CallbackReceived bool
	UpdatedAt        time.Time
}

func (p *Proposal) Pending() bool { return p.Status == ProposalPending }

func (p *Proposal) Expired(now time.Time) bool { return !now.Before(p.ExpiresAt) }
