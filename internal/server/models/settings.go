package models

import (
	"time"

	"github.com/holiman/uint256"
)

// Settings is the singleton of global ledger parameters.
type Settings struct {
	VoteStake       *uint256.Int
	CreationFee     *uint256.Int
	FeesCollected   *uint256.Int
	Season          uint64
	SeasonStartedAt time.Time
	UpdatedAt       time.Time
}
