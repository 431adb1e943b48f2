// Package models holds the ledger's persistent records. Confidential fields
// are fhe.Handles; plaintext never appears here.
package models

import (
	"time"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Team is a salary-cap container. Payroll is the encrypted sum of the
// salaries and bonuses of its active athletes.
type Team struct {
	ID        uint64
	Name      string
	Manager   ethcommon.Address
	SalaryCap fhe.Handle
	Payroll   fhe.Handle
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Athlete is a team member with confidential compensation.
type Athlete struct {
	ID            uint64
	TeamID        uint64
	Name          string
	Position      string
	Wallet        ethcommon.Address
	Salary        fhe.Handle
	Bonus         fhe.Handle
	ContractStart time.Time
	ContractEnd   time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
