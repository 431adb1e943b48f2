// Package settings persists the singleton row of global ledger parameters.
package settings

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	// Get fails with common.ErrorNotFound before the first Save.
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) error
}
