package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	"github.com/holiman/uint256"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT vote_stake, creation_fee, fees_collected, season, season_started_at, updated_at
		FROM settings WHERE id = 1
	`
	var (
		s                         models.Settings
		stake, fee, feesCollected string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&stake, &fee, &feesCollected, &s.Season, &s.SeasonStartedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if s.VoteStake, err = uint256.FromDecimal(stake); err != nil {
		return nil, fmt.Errorf("vote_stake: %w", err)
	}
	if s.CreationFee, err = uint256.FromDecimal(fee); err != nil {
		return nil, fmt.Errorf("creation_fee: %w", err)
	}
	if s.FeesCollected, err = uint256.FromDecimal(feesCollected); err != nil {
		return nil, fmt.Errorf("fees_collected: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (id, vote_stake, creation_fee, fees_collected, season, season_started_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			vote_stake = EXCLUDED.vote_stake,
			creation_fee = EXCLUDED.creation_fee,
			fees_collected = EXCLUDED.fees_collected,
			season = EXCLUDED.season,
			season_started_at = EXCLUDED.season_started_at,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		s.VoteStake.Dec(), s.CreationFee.Dec(), s.FeesCollected.Dec(), s.Season, s.SeasonStartedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
