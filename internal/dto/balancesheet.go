package dto

import (
	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetItemResponse is a single account or asset with its resolved
// balance.
type BalanceSheetItemResponse struct {
	Name                   string          `json:"name"`
	Balance                decimal.Decimal `json:"balance"`
	IsExcludedFromNetWorth bool            `json:"isExcludedFromNetWorth"`
}

// BalanceSheetTypeGroupResponse groups items sharing a type name.
type BalanceSheetTypeGroupResponse struct {
	TypeName string                     `json:"typeName"`
	Total    decimal.Decimal            `json:"total"`
	Items    []BalanceSheetItemResponse `json:"items"`
}

// BalanceSheetGroupResponse is one of the four top-level sections.
type BalanceSheetGroupResponse struct {
	BalanceGroup int                             `json:"balanceGroup"`
	Label        string                          `json:"label"`
	Total        decimal.Decimal                 `json:"total"`
	TypeGroups   []BalanceSheetTypeGroupResponse `json:"typeGroups"`
}

// ToBalanceSheetResponse converts the domain balance sheet groups to their
// JSON shape.
func ToBalanceSheetResponse(groups []domain.BalanceSheetBalanceGroup) []BalanceSheetGroupResponse {
	resp := make([]BalanceSheetGroupResponse, len(groups))
	for i, g := range groups {
		typeGroups := make([]BalanceSheetTypeGroupResponse, len(g.TypeGroups))
		for j, tg := range g.TypeGroups {
			items := make([]BalanceSheetItemResponse, len(tg.Items))
			for k, item := range tg.Items {
				items[k] = BalanceSheetItemResponse{
					Name:                   item.Name,
					Balance:                item.Balance,
					IsExcludedFromNetWorth: item.IsExcludedFromNetWorth,
				}
			}
			typeGroups[j] = BalanceSheetTypeGroupResponse{
				TypeName: tg.TypeName,
				Total:    tg.Total,
				Items:    items,
			}
		}
		resp[i] = BalanceSheetGroupResponse{
			BalanceGroup: int(g.BalanceGroup),
			Label:        g.Label,
			Total:        g.Total,
			TypeGroups:   typeGroups,
		}
	}
	return resp
}
