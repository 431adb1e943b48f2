// Package proposals persists compensation proposals.
package proposals

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Proposal) error
	Get(ctx context.Context, id uint64) (*models.Proposal, error)
	Update(ctx context.Context, p *models.Proposal) error
}
