package models

import "time"

// Account is the DB-facing shape of a ledger account.
type Account struct {
	AccountID              int64     `db:"account_id"`
	Name                   string    `db:"name"`
	Institution            string    `db:"institution"` // Nullable
	BalanceGroup           int16     `db:"balance_group"`
	IsAutoCalculated       bool      `db:"is_auto_calculated"`
	IsClosed               bool      `db:"is_closed"`
	IsExcludedFromNetWorth bool      `db:"is_excluded_from_net_worth"`
	AccountTypeID          int64     `db:"account_type_id"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}
