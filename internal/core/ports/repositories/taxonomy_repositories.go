package repositories

import (
	"context"

	"github.com/finbase/finledger/internal/core/domain"
)

// TaxonomyRepository reads the seeded account/asset types and transaction
// categories. The taxonomy is never written by the application.
type TaxonomyRepository interface {
	// FindAccountTypeByNameContains retrieves the first account type whose
	// name contains the given fragment (case-sensitive), ordered by id.
	FindAccountTypeByNameContains(ctx context.Context, fragment string) (*domain.AccountType, error)

	// FindAssetTypeByNameContains mirrors the account type lookup for assets.
	FindAssetTypeByNameContains(ctx context.Context, fragment string) (*domain.AssetType, error)

	// FindCategoryByName retrieves a transaction category by exact name.
	FindCategoryByName(ctx context.Context, name string) (*domain.TransactionCategory, error)

	// ListAccountTypes retrieves all account types.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	// ListAssetTypes retrieves all asset types.
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}
