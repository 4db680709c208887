package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalanceStatement is an append-only snapshot of an account's value.
// Uniqueness is enforced by the database on (account_id, created_at); a
// duplicate insert surfaces as apperrors.ErrDuplicate, not as an application
// check.
type AccountBalanceStatement struct {
	StatementID int64           `json:"id"`
	AccountID   int64           `json:"accountId"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AssetBalanceStatement is the asset counterpart of AccountBalanceStatement,
// optionally carrying the quantity and cost behind the value.
type AssetBalanceStatement struct {
	StatementID int64            `json:"id"`
	AssetID     int64            `json:"assetId"`
	Value       decimal.Decimal  `json:"value"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
