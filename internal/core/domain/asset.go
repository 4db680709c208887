package domain

// Asset represents a holding without transaction-level detail (a vehicle, a
// security position, a collectible). Its balance always comes from the latest
// balance statement.
type Asset struct {
	AssetID                int64        `json:"id"`
	Name                   string       `json:"name"`
	BalanceGroup           BalanceGroup `json:"balanceGroup"`
	IsSold                 bool         `json:"isSold"`
	Symbol                 string       `json:"symbol"` // Nullable
	IsExcludedFromNetWorth bool         `json:"isExcludedFromNetWorth"`
	AssetTypeID            int64        `json:"assetTypeId"`
	AuditFields
}
