package services

import "context"

// TaxonomySvc resolves seeded type and category ids by name. Lookups are
// case-sensitive substring matches for types and exact matches for
// categories; misses fall back to the "Other" type or the "Uncategorized"
// category. A missing fallback surfaces as apperrors.ErrConfiguration, which
// callers must treat as fatal.
type TaxonomySvc interface {
	ResolveAccountTypeID(ctx context.Context, name string) (int64, error)
	ResolveAssetTypeID(ctx context.Context, name string) (int64, error)
	ResolveCategoryID(ctx context.Context, name string) (int64, error)
}
