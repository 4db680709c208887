package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/finbase/finledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxonomyRepository struct {
	BaseRepository
}

// newPgxTaxonomyRepository creates a new repository over the seeded taxonomy
// tables.
func newPgxTaxonomyRepository(pool *pgxpool.Pool) portsrepo.TaxonomyRepository {
	return &PgxTaxonomyRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxonomyRepository = (*PgxTaxonomyRepository)(nil)

// FindAccountTypeByNameContains retrieves the first account type whose name
// contains the given fragment, ordered by id.
func (r *PgxTaxonomyRepository) FindAccountTypeByNameContains(ctx context.Context, fragment string) (*domain.AccountType, error) {
	query := `
		SELECT account_type_id, name
		FROM account_types
		WHERE strpos(name, $1) > 0
		ORDER BY account_type_id
		LIMIT 1;
	`

	var m models.AccountType
	err := r.Pool.QueryRow(ctx, query, fragment).Scan(&m.AccountTypeID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type matching %q: %w", fragment, err)
	}
	return &domain.AccountType{AccountTypeID: m.AccountTypeID, Name: m.Name}, nil
}

// FindAssetTypeByNameContains mirrors the account type lookup for assets.
func (r *PgxTaxonomyRepository) FindAssetTypeByNameContains(ctx context.Context, fragment string) (*domain.AssetType, error) {
	query := `
		SELECT asset_type_id, name
		FROM asset_types
		WHERE strpos(name, $1) > 0
		ORDER BY asset_type_id
		LIMIT 1;
	`

	var m models.AssetType
	err := r.Pool.QueryRow(ctx, query, fragment).Scan(&m.AssetTypeID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset type matching %q: %w", fragment, err)
	}
	return &domain.AssetType{AssetTypeID: m.AssetTypeID, Name: m.Name}, nil
}

// FindCategoryByName retrieves a transaction category by exact name.
func (r *PgxTaxonomyRepository) FindCategoryByName(ctx context.Context, name string) (*domain.TransactionCategory, error) {
	query := `SELECT category_id, name FROM transaction_categories WHERE name = $1;`

	var m models.TransactionCategory
	err := r.Pool.QueryRow(ctx, query, name).Scan(&m.CategoryID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	return &domain.TransactionCategory{CategoryID: m.CategoryID, Name: m.Name}, nil
}

// ListAccountTypes retrieves all account types ordered by id.
func (r *PgxTaxonomyRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `SELECT account_type_id, name FROM account_types ORDER BY account_type_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	types := []domain.AccountType{}
	for rows.Next() {
		var t domain.AccountType
		if err := rows.Scan(&t.AccountTypeID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type rows: %w", err)
	}
	return types, nil
}

// ListAssetTypes retrieves all asset types ordered by id.
func (r *PgxTaxonomyRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `SELECT asset_type_id, name FROM asset_types ORDER BY asset_type_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset types: %w", err)
	}
	defer rows.Close()

	types := []domain.AssetType{}
	for rows.Next() {
		var t domain.AssetType
		if err := rows.Scan(&t.AssetTypeID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan asset type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset type rows: %w", err)
	}
	return types, nil
}
