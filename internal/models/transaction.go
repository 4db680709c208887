package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB-facing shape of a ledger entry. Value is signed:
// positive credit, negative debit.
type Transaction struct {
	TransactionID int64           `db:"transaction_id"`
	AccountID     int64           `db:"account_id"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	Value         decimal.Decimal `db:"value"`
	IsExcluded    bool            `db:"is_excluded"`
	IsPending     bool            `db:"is_pending"`
	CategoryID    int64           `db:"category_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// TransactionImport is the shadow row written once per imported transaction
// and never updated afterwards.
type TransactionImport struct {
	ImportID      int64           `db:"import_id"`
	TransactionID int64           `db:"transaction_id"`
	AccountID     int64           `db:"account_id"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	Value         decimal.Decimal `db:"value"`
	CategoryName  string          `db:"category_name"`
}
