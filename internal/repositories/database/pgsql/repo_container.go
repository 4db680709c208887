package pgsql

import (
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of Postgres-backed repositories
// over a shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(pool),
		AssetRepo:       newPgxAssetRepository(pool),
		StatementRepo:   newPgxStatementRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		TaxonomyRepo:    newPgxTaxonomyRepository(pool),
	}
}
