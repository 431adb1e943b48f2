// Package teams persists salary-cap containers.
package teams

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, team *models.Team) error
	Get(ctx context.Context, id uint64) (*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
}
