package domain

import "time"

// AuditFields holds standard timestamps for persisted entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BalanceGroup is one of the four top-level classifications used to organize
// accounts and assets on the balance sheet.
type BalanceGroup int

const (
	BalanceGroupCash BalanceGroup = iota
	BalanceGroupDebt
	BalanceGroupInvestments
	BalanceGroupOtherAssets
)

// AllBalanceGroups lists every balance group in ascending id order.
var AllBalanceGroups = []BalanceGroup{
	BalanceGroupCash,
	BalanceGroupDebt,
	BalanceGroupInvestments,
	BalanceGroupOtherAssets,
}

func (g BalanceGroup) String() string {
	switch g {
	case BalanceGroupCash:
		return "Cash"
	case BalanceGroupDebt:
		return "Debt"
	case BalanceGroupInvestments:
		return "Investments"
	case BalanceGroupOtherAssets:
		return "Other assets"
	default:
		return "Unknown"
	}
}
