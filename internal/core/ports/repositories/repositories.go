package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	AssetRepo       AssetRepository
	StatementRepo   StatementRepository
	TransactionRepo TransactionRepository
	TaxonomyRepo    TaxonomyRepository
}
