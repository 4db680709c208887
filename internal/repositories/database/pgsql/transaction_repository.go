package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	"github.com/finbase/finledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Description:   m.Description,
		Date:          m.Date,
		Value:         m.Value,
		IsExcluded:    m.IsExcluded,
		IsPending:     m.IsPending,
		CategoryID:    m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// SaveTransaction inserts a transaction and returns its generated id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (account_id, description, date, value, is_excluded, is_pending, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING transaction_id;
	`

	var transactionID int64
	err := r.Pool.QueryRow(ctx, query,
		txn.AccountID,
		txn.Description,
		txn.Date,
		txn.Value,
		txn.IsExcluded,
		txn.IsPending,
		txn.CategoryID,
		txn.CreatedAt,
		txn.UpdatedAt,
	).Scan(&transactionID)

	if err != nil {
		return 0, fmt.Errorf("failed to save transaction for account %d: %w", txn.AccountID, err)
	}
	return transactionID, nil
}

// SaveTransactionImport inserts the shadow row that records the originally
// imported identity of a transaction.
func (r *PgxTransactionRepository) SaveTransactionImport(ctx context.Context, imp domain.TransactionImport) error {
	query := `
		INSERT INTO transaction_imports (transaction_id, account_id, description, date, value, category_name)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	m := models.TransactionImport{
		TransactionID: imp.TransactionID,
		AccountID:     imp.AccountID,
		Description:   imp.Description,
		Date:          imp.Date,
		Value:         imp.Value,
		CategoryName:  imp.CategoryName,
	}
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Description,
		m.Date,
		m.Value,
		m.CategoryName,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction import for transaction %d: %w", imp.TransactionID, err)
	}
	return nil
}

// HasTransactionImportMatch checks the shadow table for a row matching the
// account, normalized description and value, dated within [dayStart, dayEnd).
func (r *PgxTransactionRepository) HasTransactionImportMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM transaction_imports
			WHERE account_id = $1 AND description = $2 AND value = $3
			  AND date >= $4 AND date < $5
		);
	`
	return r.exists(ctx, query, accountID, description, value, dayStart, dayEnd)
}

// HasTransactionMatch mirrors HasTransactionImportMatch over the transactions
// table itself, catching rows created outside the import path.
func (r *PgxTransactionRepository) HasTransactionMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM transactions
			WHERE account_id = $1 AND description = $2 AND value = $3
			  AND date >= $4 AND date < $5
		);
	`
	return r.exists(ctx, query, accountID, description, value, dayStart, dayEnd)
}

func (r *PgxTransactionRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check for matching transaction: %w", err)
	}
	return found, nil
}

// SumAccountTransactions sums the account's non-excluded transaction values,
// constrained to date <= asOf when asOf is non-nil.
func (r *PgxTransactionRepository) SumAccountTransactions(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM transactions
		WHERE account_id = $1 AND is_excluded = FALSE
		  AND ($2::timestamptz IS NULL OR date <= $2);
	`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for account %d: %w", accountID, err)
	}
	return sum, nil
}

// ListTransactionsBetween retrieves non-excluded transactions with
// from <= date < to across all accounts, ordered by date.
func (r *PgxTransactionRepository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, description, date, value, is_excluded, is_pending, category_id, created_at, updated_at
		FROM transactions
		WHERE is_excluded = FALSE AND date >= $1 AND date < $2
		ORDER BY date;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions between %s and %s: %w", from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Description,
			&m.Date,
			&m.Value,
			&m.IsExcluded,
			&m.IsPending,
			&m.CategoryID,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
