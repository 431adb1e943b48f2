// Package markets persists belief markets.
package markets

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrorAlreadyExists if the id is taken.
	Create(ctx context.Context, m *models.Market) error
	Get(ctx context.Context, id string) (*models.Market, error)
	Update(ctx context.Context, m *models.Market) error
}
