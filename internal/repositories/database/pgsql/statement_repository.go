package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/finbase/finledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for balance statements.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepository {
	return &PgxStatementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StatementRepository = (*PgxStatementRepository)(nil)

// SaveAccountStatement inserts a statement. The unique constraint on
// (account_id, created_at) maps to apperrors.ErrDuplicate so the import
// engine can treat re-imported statements as skips.
func (r *PgxStatementRepository) SaveAccountStatement(ctx context.Context, stmt domain.AccountBalanceStatement) (int64, error) {
	query := `
		INSERT INTO account_balance_statements (account_id, value, created_at)
		VALUES ($1, $2, $3)
		RETURNING statement_id;
	`

	var statementID int64
	err := r.Pool.QueryRow(ctx, query, stmt.AccountID, stmt.Value, stmt.CreatedAt).Scan(&statementID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: statement for account %d at %s already exists", apperrors.ErrDuplicate, stmt.AccountID, stmt.CreatedAt.Format(time.RFC3339))
		}
		return 0, fmt.Errorf("failed to save statement for account %d: %w", stmt.AccountID, err)
	}
	return statementID, nil
}

// FindLatestAccountStatement returns the newest statement at or before asOf
// (unconstrained when asOf is nil).
func (r *PgxStatementRepository) FindLatestAccountStatement(ctx context.Context, accountID int64, asOf *time.Time) (*domain.AccountBalanceStatement, error) {
	query := `
		SELECT statement_id, account_id, value, created_at
		FROM account_balance_statements
		WHERE account_id = $1 AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var m models.AccountBalanceStatement
	err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(
		&m.StatementID,
		&m.AccountID,
		&m.Value,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest statement for account %d: %w", accountID, err)
	}
	return &domain.AccountBalanceStatement{
		StatementID: m.StatementID,
		AccountID:   m.AccountID,
		Value:       m.Value,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// SaveAssetStatement inserts a statement; (asset_id, created_at) collisions
// map to apperrors.ErrDuplicate.
func (r *PgxStatementRepository) SaveAssetStatement(ctx context.Context, stmt domain.AssetBalanceStatement) (int64, error) {
	query := `
		INSERT INTO asset_balance_statements (asset_id, value, quantity, cost, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING statement_id;
	`

	var statementID int64
	err := r.Pool.QueryRow(ctx, query, stmt.AssetID, stmt.Value, stmt.Quantity, stmt.Cost, stmt.CreatedAt).Scan(&statementID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: statement for asset %d at %s already exists", apperrors.ErrDuplicate, stmt.AssetID, stmt.CreatedAt.Format(time.RFC3339))
		}
		return 0, fmt.Errorf("failed to save statement for asset %d: %w", stmt.AssetID, err)
	}
	return statementID, nil
}

// FindLatestAssetStatement mirrors FindLatestAccountStatement for assets.
func (r *PgxStatementRepository) FindLatestAssetStatement(ctx context.Context, assetID int64, asOf *time.Time) (*domain.AssetBalanceStatement, error) {
	query := `
		SELECT statement_id, asset_id, value, quantity, cost, created_at
		FROM asset_balance_statements
		WHERE asset_id = $1 AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var m models.AssetBalanceStatement
	err := r.Pool.QueryRow(ctx, query, assetID, asOf).Scan(
		&m.StatementID,
		&m.AssetID,
		&m.Value,
		&m.Quantity,
		&m.Cost,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest statement for asset %d: %w", assetID, err)
	}
	return &domain.AssetBalanceStatement{
		StatementID: m.StatementID,
		AssetID:     m.AssetID,
		Value:       m.Value,
		Quantity:    m.Quantity,
		Cost:        m.Cost,
		CreatedAt:   m.CreatedAt,
	}, nil
}
