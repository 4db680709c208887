package domain

// Account represents a financial account within the ledger.
//
// An auto-calculated account derives its balance by summing its transactions;
// a manual account derives it from its latest balance statement. The account
// name is globally unique, which is what makes re-imports match instead of
// duplicating.
type Account struct {
	AccountID              int64        `json:"id"`
	Name                   string       `json:"name"`
	Institution            string       `json:"institution"` // Nullable
	BalanceGroup           BalanceGroup `json:"balanceGroup"`
	IsAutoCalculated       bool         `json:"isAutoCalculated"`
	IsClosed               bool         `json:"isClosed"`
	IsExcludedFromNetWorth bool         `json:"isExcludedFromNetWorth"`
	AccountTypeID          int64        `json:"accountTypeId"`
	AuditFields
}
