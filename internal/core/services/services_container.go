package services

import (
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Taxonomy = NewTaxonomyService(repos.TaxonomyRepo)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.AssetRepo, repos.StatementRepo, repos.TransactionRepo)
	container.Import = NewImportService(repos.AccountRepo, repos.AssetRepo, repos.StatementRepo, repos.TransactionRepo, container.Taxonomy)
	container.Cashflow = NewCashflowService(repos.TransactionRepo)
	container.BalanceSheet = NewBalanceSheetService(repos.AccountRepo, repos.AssetRepo, repos.TaxonomyRepo, container.Balance)

	return container
}
