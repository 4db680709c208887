package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbase/finledger/internal/apperrors"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
)

const (
	fallbackTypeName     = "Other"
	fallbackCategoryName = "Uncategorized"
)

// taxonomyService resolves type and category ids against the seeded taxonomy.
// It only reads; types and categories are never created at runtime.
type taxonomyService struct {
	BaseService
	taxonomyRepo portsrepo.TaxonomyRepository
}

// NewTaxonomyService creates a new taxonomy service.
func NewTaxonomyService(repo portsrepo.TaxonomyRepository) portssvc.TaxonomySvc {
	return &taxonomyService{taxonomyRepo: repo}
}

var _ portssvc.TaxonomySvc = (*taxonomyService)(nil)

// ResolveAccountTypeID finds the first account type whose name contains the
// given name, falling back to the "Other" type. A missing fallback means the
// seed taxonomy is absent and surfaces as apperrors.ErrConfiguration.
func (s *taxonomyService) ResolveAccountTypeID(ctx context.Context, name string) (int64, error) {
	if name != "" {
		accountType, err := s.taxonomyRepo.FindAccountTypeByNameContains(ctx, name)
		if err == nil {
			return accountType.AccountTypeID, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to look up account type %q: %w", name, err)
		}
	}

	fallback, err := s.taxonomyRepo.FindAccountTypeByNameContains(ctx, fallbackTypeName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: account type %q is missing", apperrors.ErrConfiguration, fallbackTypeName)
		}
		return 0, fmt.Errorf("failed to look up fallback account type: %w", err)
	}
	return fallback.AccountTypeID, nil
}

// ResolveAssetTypeID mirrors ResolveAccountTypeID for asset types.
func (s *taxonomyService) ResolveAssetTypeID(ctx context.Context, name string) (int64, error) {
	if name != "" {
		assetType, err := s.taxonomyRepo.FindAssetTypeByNameContains(ctx, name)
		if err == nil {
			return assetType.AssetTypeID, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to look up asset type %q: %w", name, err)
		}
	}

	fallback, err := s.taxonomyRepo.FindAssetTypeByNameContains(ctx, fallbackTypeName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: asset type %q is missing", apperrors.ErrConfiguration, fallbackTypeName)
		}
		return 0, fmt.Errorf("failed to look up fallback asset type: %w", err)
	}
	return fallback.AssetTypeID, nil
}

// ResolveCategoryID finds a transaction category by exact name, falling back
// to "Uncategorized". A missing fallback surfaces as
// apperrors.ErrConfiguration.
func (s *taxonomyService) ResolveCategoryID(ctx context.Context, name string) (int64, error) {
	if name != "" {
		category, err := s.taxonomyRepo.FindCategoryByName(ctx, name)
		if err == nil {
			return category.CategoryID, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to look up category %q: %w", name, err)
		}
	}

	fallback, err := s.taxonomyRepo.FindCategoryByName(ctx, fallbackCategoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: category %q is missing", apperrors.ErrConfiguration, fallbackCategoryName)
		}
		return 0, fmt.Errorf("failed to look up fallback category: %w", err)
	}
	return fallback.CategoryID, nil
}
