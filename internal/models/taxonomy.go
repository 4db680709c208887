package models

// AccountType, AssetType and TransactionCategory are seed data.
type AccountType struct {
	AccountTypeID int64  `db:"account_type_id"`
	Name          string `db:"name"`
}

type AssetType struct {
	AssetTypeID int64  `db:"asset_type_id"`
	Name        string `db:"name"`
}

type TransactionCategory struct {
	CategoryID int64  `db:"category_id"`
	Name       string `db:"name"`
}
