package proposals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Proposal) error {
	query := `
		INSERT INTO proposals (id, athlete_id, team_id, proposer, salary, bonus, duration_months,
			created_at, expires_at, status, reason, request_id, callback_received, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.AthleteID, p.TeamID, p.Proposer, p.Salary, p.Bonus, p.DurationMonths,
		p.CreatedAt, p.ExpiresAt, p.Status, p.Reason, p.RequestID, p.CallbackReceived, p.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uint64) (*models.Proposal, error) {
	query := `
		SELECT id, athlete_id, team_id, proposer, salary, bonus, duration_months,
			created_at, expires_at, status, reason, request_id, callback_received, updated_at
		FROM proposals WHERE id = $1
	`
	p := &models.Proposal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.AthleteID, &p.TeamID, &p.Proposer, &p.Salary, &p.Bonus, &p.DurationMonths,
		&p.CreatedAt, &p.ExpiresAt, &p.Status, &p.Reason, &p.RequestID, &p.CallbackReceived, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Update persists the mutable part of a proposal: its state and request link.
func (r *PostgresRepository) Update(ctx context.Context, p *models.Proposal) error {
	query := `
		UPDATE proposals SET status = $2, reason = $3, request_id = $4, callback_received = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Status, p.Reason, p.RequestID, p.CallbackReceived, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
