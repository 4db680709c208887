package models

import "time"

// Asset is the DB-facing shape of an asset.
type Asset struct {
	AssetID                int64     `db:"asset_id"`
	Name                   string    `db:"name"`
	BalanceGroup           int16     `db:"balance_group"`
	IsSold                 bool      `db:"is_sold"`
	Symbol                 string    `db:"symbol"` // Nullable
	IsExcludedFromNetWorth bool      `db:"is_excluded_from_net_worth"`
	AssetTypeID            int64     `db:"asset_type_id"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}
