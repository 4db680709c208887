package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SkippedStatement echoes a payload balance statement that was dropped
// because a statement with the same (owner, createdAt) already exists.
type SkippedStatement struct {
	CreatedAt time.Time       `json:"createdAt"`
	Value     decimal.Decimal `json:"value"`
}

// SkippedTransaction echoes a payload transaction that was dropped as a
// duplicate of an already-imported one.
type SkippedTransaction struct {
	AccountID   int64           `json:"accountId"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Value       decimal.Decimal `json:"value"`
}

// ImportedStatements tracks balance statement outcomes for one import run.
type ImportedStatements struct {
	Created []int64            `json:"created"`
	Skipped []SkippedStatement `json:"skipped"`
}

// ImportedTransactions tracks transaction outcomes for one import run.
type ImportedTransactions struct {
	Created []int64              `json:"created"`
	Skipped []SkippedTransaction `json:"skipped"`
}

// ImportedAccounts summarizes the account side of a ledger-file import.
type ImportedAccounts struct {
	Created           []int64              `json:"created"`
	Updated           []int64              `json:"updated"`
	Transactions      ImportedTransactions `json:"transactions"`
	BalanceStatements ImportedStatements   `json:"balanceStatements"`
}

// ImportedAssets summarizes the asset side of a ledger-file import. Assets
// carry no transactions.
type ImportedAssets struct {
	Created           []int64            `json:"created"`
	Updated           []int64            `json:"updated"`
	BalanceStatements ImportedStatements `json:"balanceStatements"`
}

// ImportSummary is the structured result of one ledger-file import. A failed
// import still returns whatever summary accumulated before the failure;
// writes are never rolled back because re-imports are idempotent.
type ImportSummary struct {
	ImportedAccounts ImportedAccounts `json:"importedAccounts"`
	ImportedAssets   ImportedAssets   `json:"importedAssets"`
}

// NewImportSummary returns a summary with every list initialized so the JSON
// encoding is [] rather than null.
func NewImportSummary() *ImportSummary {
	return &ImportSummary{
		ImportedAccounts: ImportedAccounts{
			Created: []int64{},
			Updated: []int64{},
			Transactions: ImportedTransactions{
				Created: []int64{},
				Skipped: []SkippedTransaction{},
			},
			BalanceStatements: ImportedStatements{
				Created: []int64{},
				Skipped: []SkippedStatement{},
			},
		},
		ImportedAssets: ImportedAssets{
			Created: []int64{},
			Updated: []int64{},
			BalanceStatements: ImportedStatements{
				Created: []int64{},
				Skipped: []SkippedStatement{},
			},
		},
	}
}
