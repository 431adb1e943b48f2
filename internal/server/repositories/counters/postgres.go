package counters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Next(ctx context.Context, name string) (uint64, error) {
	query := `UPDATE counters SET value = value + 1 WHERE name = $1 RETURNING value`

	var v uint64
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("counter %q: %w", name, common.ErrorNotFound)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Current(ctx context.Context, name string) (uint64, error) {
	query := `SELECT value FROM counters WHERE name = $1`

	var v uint64
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("counter %q: %w", name, common.ErrorNotFound)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}
