// Package votes persists per-market, per-address participation and claim flags.
package votes

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

type Repository interface {
	// Create fails with common.ErrorAlreadyExists if voter already voted.
	Create(ctx context.Context, v *models.Vote) error
	Get(ctx context.Context, marketID string, voter ethcommon.Address) (*models.Vote, error)
	// MarkClaimed flips the claim flag. It fails with common.ErrorAlreadyExists
	// if the flag was already set.
	MarkClaimed(ctx context.Context, marketID string, voter ethcommon.Address) error
	ListByMarket(ctx context.Context, marketID string) ([]*models.Vote, error)
}
