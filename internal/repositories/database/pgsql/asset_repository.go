package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/finbase/finledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepository {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepository = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, balance_group, is_sold, symbol, is_excluded_from_net_worth, asset_type_id, created_at, updated_at`

func toDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:                m.AssetID,
		Name:                   m.Name,
		BalanceGroup:           domain.BalanceGroup(m.BalanceGroup),
		IsSold:                 m.IsSold,
		Symbol:                 m.Symbol,
		IsExcludedFromNetWorth: m.IsExcludedFromNetWorth,
		AssetTypeID:            m.AssetTypeID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func scanAsset(row pgx.Row) (domain.Asset, error) {
	var m models.Asset
	var symbol sql.NullString
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.BalanceGroup,
		&m.IsSold,
		&symbol,
		&m.IsExcludedFromNetWorth,
		&m.AssetTypeID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Asset{}, err
	}
	if symbol.Valid {
		m.Symbol = symbol.String
	}
	return toDomainAsset(m), nil
}

// SaveAsset inserts a new asset and returns its generated id.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) (int64, error) {
	query := `
		INSERT INTO assets (name, balance_group, is_sold, symbol, is_excluded_from_net_worth, asset_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING asset_id;
	`
	var symbol sql.NullString
	if asset.Symbol != "" {
		symbol = sql.NullString{String: asset.Symbol, Valid: true}
	}

	var assetID int64
	err := r.Pool.QueryRow(ctx, query,
		asset.Name,
		int16(asset.BalanceGroup),
		asset.IsSold,
		symbol,
		asset.IsExcludedFromNetWorth,
		asset.AssetTypeID,
		asset.CreatedAt,
		asset.UpdatedAt,
	).Scan(&assetID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: asset named %q already exists", apperrors.ErrDuplicate, asset.Name)
		}
		return 0, fmt.Errorf("failed to save asset %q: %w", asset.Name, err)
	}
	return assetID, nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`

	asset, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %d: %w", assetID, err)
	}
	return &asset, nil
}

// FindAssetByNameContains retrieves the first asset whose name contains the
// given fragment.
func (r *PgxAssetRepository) FindAssetByNameContains(ctx context.Context, fragment string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE strpos(name, $1) > 0
		ORDER BY asset_id
		LIMIT 1;
	`

	asset, err := scanAsset(r.Pool.QueryRow(ctx, query, fragment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset matching %q: %w", fragment, err)
	}
	return &asset, nil
}

// ListAssets retrieves every asset ordered by name.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return assets, nil
}
