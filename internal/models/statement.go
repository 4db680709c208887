package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalanceStatement rows are append-only; UNIQUE(account_id, created_at)
// backs the import dedup.
type AccountBalanceStatement struct {
	StatementID int64           `db:"statement_id"`
	AccountID   int64           `db:"account_id"`
	Value       decimal.Decimal `db:"value"`
	CreatedAt   time.Time       `db:"created_at"`
}

// AssetBalanceStatement rows are append-only; UNIQUE(asset_id, created_at).
type AssetBalanceStatement struct {
	StatementID int64            `db:"statement_id"`
	AssetID     int64            `db:"asset_id"`
	Value       decimal.Decimal  `db:"value"`
	Quantity    *decimal.Decimal `db:"quantity"` // Nullable
	Cost        *decimal.Decimal `db:"cost"`     // Nullable
	CreatedAt   time.Time        `db:"created_at"`
}
