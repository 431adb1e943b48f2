// Package athletes persists team members and their encrypted compensation.
package athletes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Athlete) error
	Get(ctx context.Context, id uint64) (*models.Athlete, error)
	Update(ctx context.Context, a *models.Athlete) error
	// ListByTeam returns every athlete of the team, active or not, by ascending id.
	ListByTeam(ctx context.Context, teamID uint64) ([]*models.Athlete, error)
	// ListExpired returns active athletes whose contract ended at or before t,
	// by ascending id.
	ListExpired(ctx context.Context, t time.Time) ([]*models.Athlete, error)
}
