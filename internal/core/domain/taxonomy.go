package domain

// AccountType is part of the seeded taxonomy ("Checking", "Savings", ...).
// The seed must include a type named "Other", used as the resolver fallback.
type AccountType struct {
	AccountTypeID int64  `json:"id"`
	Name          string `json:"name"`
}

// AssetType is the asset counterpart of AccountType.
type AssetType struct {
	AssetTypeID int64  `json:"id"`
	Name        string `json:"name"`
}

// TransactionCategory is part of the seeded taxonomy. The seed must include
// a category named "Uncategorized", used as the resolver fallback.
type TransactionCategory struct {
	CategoryID int64  `json:"id"`
	Name       string `json:"name"`
}
