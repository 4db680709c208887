package repositories

import (
	"context"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
)

// StatementRepository defines persistence operations for balance statements.
// Statements are append-only; uniqueness on (owner, createdAt) is enforced by
// the database, and a violating insert surfaces as apperrors.ErrDuplicate so
// the import engine can skip it.
type StatementRepository interface {
	// SaveAccountStatement inserts a statement and returns its generated id.
	SaveAccountStatement(ctx context.Context, stmt domain.AccountBalanceStatement) (int64, error)

	// FindLatestAccountStatement returns the statement with the greatest
	// createdAt, constrained to createdAt <= asOf when asOf is non-nil.
	// Returns apperrors.ErrNotFound when the account has no statements.
	FindLatestAccountStatement(ctx context.Context, accountID int64, asOf *time.Time) (*domain.AccountBalanceStatement, error)

	// SaveAssetStatement inserts a statement and returns its generated id.
	SaveAssetStatement(ctx context.Context, stmt domain.AssetBalanceStatement) (int64, error)

	// FindLatestAssetStatement mirrors FindLatestAccountStatement for assets.
	FindLatestAssetStatement(ctx context.Context, assetID int64, asOf *time.Time) (*domain.AssetBalanceStatement, error)
}
