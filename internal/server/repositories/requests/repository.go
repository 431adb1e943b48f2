// Package requests persists decryption requests.
package requests

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.DecryptionRequest) error
	Get(ctx context.Context, id uint64) (*models.DecryptionRequest, error)
	// Finalize records the terminal flags of r. It only succeeds while the
	// stored request is still open, so at most one finalization ever lands;
	// otherwise it fails with common.ErrorAlreadyExists.
	Finalize(ctx context.Context, r *models.DecryptionRequest) error
	// ListOpen returns requests that are neither completed nor timed out,
	// by ascending id.
	ListOpen(ctx context.Context) ([]*models.DecryptionRequest, error)
}
