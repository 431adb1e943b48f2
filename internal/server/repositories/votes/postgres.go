package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const columns = `market_id, voter, side, weight, stake, claimed, cast_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVote(row scanner) (*models.Vote, error) {
	var (
		v     models.Vote
		stake string
	)
	if err := row.Scan(&v.MarketID, &v.Voter, &v.Side, &v.Weight, &stake, &v.Claimed, &v.CastAt); err != nil {
		return nil, err
	}
	s, err := uint256.FromDecimal(stake)
	if err != nil {
		return nil, fmt.Errorf("stake: %w", err)
	}
	v.Stake = s
	return &v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vote) error {
	query := `INSERT INTO votes (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		v.MarketID, v.Voter, v.Side, v.Weight, v.Stake.Dec(), v.Claimed, v.CastAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, marketID string, voter ethcommon.Address) (*models.Vote, error) {
	query := `SELECT ` + columns + ` FROM votes WHERE market_id = $1 AND voter = $2`

	v, err := scanVote(r.db.QueryRowContext(ctx, query, marketID, voter))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) MarkClaimed(ctx context.Context, marketID string, voter ethcommon.Address) error {
	query := `UPDATE votes SET claimed = TRUE WHERE market_id = $1 AND voter = $2 AND NOT claimed`

	res, err := r.db.ExecContext(ctx, query, marketID, voter)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *PostgresRepository) ListByMarket(ctx context.Context, marketID string) ([]*models.Vote, error) {
	query := `SELECT ` + columns + ` FROM votes WHERE market_id = $1 ORDER BY cast_at, voter`

	rows, err := r.db.QueryContext(ctx, query, marketID)
	if err != nil {
		return nil, fmt.Errorf("failed to select votes: %w", err)
	}
	defer rows.Close()

	var result []*models.Vote
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
