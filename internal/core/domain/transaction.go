package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single signed ledger entry on an account. Value is
// positive for credits and negative for debits. Date is day-granular and
// UTC-normalized; time-of-day is discarded on the way in.
type Transaction struct {
	TransactionID int64           `json:"id"`
	AccountID     int64           `json:"accountId"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Value         decimal.Decimal `json:"value"`
	IsExcluded    bool            `json:"isExcluded"`
	IsPending     bool            `json:"isPending"`
	CategoryID    int64           `json:"categoryId"`
	AuditFields
}

// TransactionImport preserves the originally imported identity of a
// Transaction. The user may later rename or re-categorize the Transaction
// itself; duplicate detection on re-import matches against this row instead,
// keyed on (account, normalized description, UTC calendar day, value).
type TransactionImport struct {
	ImportID      int64           `json:"id"`
	TransactionID int64           `json:"transactionId"`
	AccountID     int64           `json:"accountId"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Value         decimal.Decimal `json:"value"`
	CategoryName  string          `json:"categoryName"`
}
