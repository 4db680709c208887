package domain

import "github.com/shopspring/decimal"

// BalanceSheetItem is a single account or asset with its resolved balance.
// Items flagged IsExcludedFromNetWorth still appear but do not count toward
// any total.
type BalanceSheetItem struct {
	Name                   string          `json:"name"`
	Balance                decimal.Decimal `json:"balance"`
	IsExcludedFromNetWorth bool            `json:"isExcludedFromNetWorth"`
}

// BalanceSheetTypeGroup groups items sharing a type name within a balance
// group.
type BalanceSheetTypeGroup struct {
	TypeName string             `json:"typeName"`
	Total    decimal.Decimal    `json:"total"`
	Items    []BalanceSheetItem `json:"items"`
}

// BalanceSheetBalanceGroup is one of the four top-level balance sheet
// sections. All four are always emitted, empty ones with a zero total.
type BalanceSheetBalanceGroup struct {
	BalanceGroup BalanceGroup            `json:"balanceGroup"`
	Label        string                  `json:"label"`
	Total        decimal.Decimal         `json:"total"`
	TypeGroups   []BalanceSheetTypeGroup `json:"typeGroups"`
}
