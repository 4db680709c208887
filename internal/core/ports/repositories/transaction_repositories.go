package repositories

import (
	"context"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for transactions and
// their import shadow rows.
type TransactionRepository interface {
	// SaveTransaction inserts a transaction and returns its generated id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// SaveTransactionImport inserts the shadow row recording the originally
	// imported identity of a transaction.
	SaveTransactionImport(ctx context.Context, imp domain.TransactionImport) error

	// HasTransactionImportMatch reports whether a shadow row exists for the
	// account with the given normalized description and value, dated within
	// [dayStart, dayEnd).
	HasTransactionImportMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error)

	// HasTransactionMatch mirrors HasTransactionImportMatch over the
	// transactions table itself, covering rows created outside the import
	// path.
	HasTransactionMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error)

	// SumAccountTransactions sums the value of the account's non-excluded
	// transactions, constrained to date <= asOf when asOf is non-nil. No
	// matching rows yields zero, not an error.
	SumAccountTransactions(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error)

	// ListTransactionsBetween retrieves non-excluded transactions with
	// from <= date < to, ordered by date.
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}
