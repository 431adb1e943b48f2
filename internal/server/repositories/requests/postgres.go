package requests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/dbx"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

const columns = `id, kind, proposal_id, market_id, requester, handles, created_at, completed, timed_out, finalized_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// packHandles stores handles back to back in one bytea.
func packHandles(hs []fhe.Handle) []byte {
	out := make([]byte, 0, len(hs)*len(fhe.Handle{}))
	for _, h := range hs {
		out = append(out, h[:]...)
	}
	return out
}

func unpackHandles(b []byte) ([]fhe.Handle, error) {
	size := len(fhe.Handle{})
	if len(b)%size != 0 {
		return nil, fmt.Errorf("handles column has %d bytes", len(b))
	}
	out := make([]fhe.Handle, len(b)/size)
	for i := range out {
		copy(out[i][:], b[i*size:])
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*models.DecryptionRequest, error) {
	var (
		r         models.DecryptionRequest
		handles   []byte
		finalized sql.NullTime
	)
	err := row.Scan(&r.ID, &r.Target.Kind, &r.Target.ProposalID, &r.Target.MarketID, &r.Requester,
		&handles, &r.CreatedAt, &r.Completed, &r.TimedOut, &finalized)
	if err != nil {
		return nil, err
	}
	if r.Handles, err = unpackHandles(handles); err != nil {
		return nil, err
	}
	if finalized.Valid {
		r.FinalizedAt = finalized.Time
	}
	return &r, nil
}

func (p *PostgresRepository) Create(ctx context.Context, r *models.DecryptionRequest) error {
	query := `INSERT INTO decryption_requests (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var finalized sql.NullTime
	if !r.FinalizedAt.IsZero() {
		finalized = sql.NullTime{Time: r.FinalizedAt, Valid: true}
	}
	_, err := p.db.ExecContext(ctx, query,
		r.ID, r.Target.Kind, r.Target.ProposalID, r.Target.MarketID, r.Requester,
		packHandles(r.Handles), r.CreatedAt, r.Completed, r.TimedOut, finalized)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *PostgresRepository) Get(ctx context.Context, id uint64) (*models.DecryptionRequest, error) {
	query := `SELECT ` + columns + ` FROM decryption_requests WHERE id = $1`

	r, err := scanRequest(p.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r, nil
}

func (p *PostgresRepository) Finalize(ctx context.Context, r *models.DecryptionRequest) error {
	query := `
		UPDATE decryption_requests SET completed = $2, timed_out = $3, finalized_at = $4
		WHERE id = $1 AND NOT completed AND NOT timed_out
	`
	res, err := p.db.ExecContext(ctx, query, r.ID, r.Completed, r.TimedOut, r.FinalizedAt)
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

func (p *PostgresRepository) ListOpen(ctx context.Context) ([]*models.DecryptionRequest, error) {
	query := `SELECT ` + columns + ` FROM decryption_requests WHERE NOT completed AND NOT timed_out ORDER BY id`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select requests: %w", err)
	}
	defer rows.Close()

	var result []*models.DecryptionRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
