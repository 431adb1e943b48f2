package markets

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

const columns = `id, creator, question, vote_stake, prize_pool, paid_out, yes_voters, no_voters,
	yes_tally, no_tally, status, request_id, revealed_yes, revealed_no, outcome, created_at, expires_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Market) error {
	query := `INSERT INTO markets (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Creator, m.Question, m.VoteStake.Dec(), m.PrizePool.Dec(), m.PaidOut.Dec(),
		m.YesVoters, m.NoVoters, m.YesTally, m.NoTally, m.Status, m.RequestID,
		m.RevealedYes, m.RevealedNo, m.Outcome, m.CreatedAt, m.ExpiresAt, m.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Market, error) {
	query := `SELECT ` + columns + ` FROM markets WHERE id = $1`

	var (
		m                    models.Market
		stake, pool, paidOut string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Creator, &m.Question, &stake, &pool, &paidOut, &m.YesVoters, &m.NoVoters,
		&m.YesTally, &m.NoTally, &m.Status, &m.RequestID, &m.RevealedYes, &m.RevealedNo, &m.Outcome,
		&m.CreatedAt, &m.ExpiresAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if m.VoteStake, err = uint256.FromDecimal(stake); err != nil {
		return nil, fmt.Errorf("vote_stake: %w", err)
	}
	if m.PrizePool, err = uint256.FromDecimal(pool); err != nil {
		return nil, fmt.Errorf("prize_pool: %w", err)
	}
	if m.PaidOut, err = uint256.FromDecimal(paidOut); err != nil {
		return nil, fmt.Errorf("paid_out: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Market) error {
	query := `
		UPDATE markets SET prize_pool = $2, paid_out = $3, yes_voters = $4, no_voters = $5,
			yes_tally = $6, no_tally = $7, status = $8, request_id = $9,
			revealed_yes = $10, revealed_no = $11, outcome = $12, updated_at = $13
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.PrizePool.Dec(), m.PaidOut.Dec(), m.YesVoters, m.NoVoters,
		m.YesTally, m.NoTally, m.Status, m.RequestID,
		m.RevealedYes, m.RevealedNo, m.Outcome, m.UpdatedAt)
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
