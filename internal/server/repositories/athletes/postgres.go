package athletes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

const columns = `id, team_id, name, position, wallet, salary, bonus, contract_start, contract_end, active, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAthlete(row scanner) (*models.Athlete, error) {
	a := &models.Athlete{}
	err := row.Scan(&a.ID, &a.TeamID, &a.Name, &a.Position, &a.Wallet, &a.Salary, &a.Bonus,
		&a.ContractStart, &a.ContractEnd, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Athlete) error {
	query := `INSERT INTO athletes (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.TeamID, a.Name, a.Position, a.Wallet, a.Salary, a.Bonus,
		a.ContractStart, a.ContractEnd, a.Active, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uint64) (*models.Athlete, error) {
	query := `SELECT ` + columns + ` FROM athletes WHERE id = $1`

	a, err := scanAthlete(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.Athlete) error {
	query := `
		UPDATE athletes SET name = $2, position = $3, wallet = $4, salary = $5, bonus = $6,
			contract_start = $7, contract_end = $8, active = $9, updated_at = $10
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Position, a.Wallet, a.Salary, a.Bonus,
		a.ContractStart, a.ContractEnd, a.Active, a.UpdatedAt)
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

func (r *PostgresRepository) ListByTeam(ctx context.Context, teamID uint64) ([]*models.Athlete, error) {
	query := `SELECT ` + columns + ` FROM athletes WHERE team_id = $1 ORDER BY id`
	return r.list(ctx, query, teamID)
}

func (r *PostgresRepository) ListExpired(ctx context.Context, t time.Time) ([]*models.Athlete, error) {
	query := `SELECT ` + columns + ` FROM athletes WHERE active AND contract_end <= $1 ORDER BY id`
	return r.list(ctx, query, t)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Athlete, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select athletes: %w", err)
	}
	defer rows.Close()

	var result []*models.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
