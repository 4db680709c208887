package repositories

import (
	"context"

	"github.com/finbase/finledger/internal/core/domain"
)

// AssetRepository defines persistence operations for assets.
type AssetRepository interface {
	// SaveAsset persists a new asset and returns its generated id.
	// A name collision surfaces as apperrors.ErrDuplicate.
	SaveAsset(ctx context.Context, asset domain.Asset) (int64, error)

	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error)

	// FindAssetByNameContains retrieves the first asset whose name contains
	// the given fragment (case-sensitive), ordered by id.
	FindAssetByNameContains(ctx context.Context, fragment string) (*domain.Asset, error)

	// ListAssets retrieves every asset, ordered by name.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}
