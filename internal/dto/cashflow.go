package dto

import (
	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashflowPeriodResponse is one calendar-month bucket with its chart ratio.
type CashflowPeriodResponse struct {
	PeriodStart int64           `json:"periodStart"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Surplus     decimal.Decimal `json:"surplus"`
	ChartRatio  decimal.Decimal `json:"chartRatio"`
}

// CashflowAveragesResponse mirrors domain.CashflowAverages.
type CashflowAveragesResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Surplus  decimal.Decimal `json:"surplus"`
}

// CashflowResponse is the JSON shape returned by the cashflow endpoint.
type CashflowResponse struct {
	Periods       []CashflowPeriodResponse `json:"periods"`
	PositiveRatio decimal.Decimal          `json:"positiveRatio"`
	NegativeRatio decimal.Decimal          `json:"negativeRatio"`
	Last6Months   CashflowAveragesResponse `json:"last6Months"`
	Last12Months  CashflowAveragesResponse `json:"last12Months"`
}

// ToCashflowResponse converts a domain cashflow to its JSON shape with period
// starts as epoch seconds.
func ToCashflowResponse(cashflow *domain.Cashflow) CashflowResponse {
	resp := CashflowResponse{
		Periods:       make([]CashflowPeriodResponse, len(cashflow.Periods)),
		PositiveRatio: cashflow.PositiveRatio,
		NegativeRatio: cashflow.NegativeRatio,
		Last6Months:   toAveragesResponse(cashflow.Trailing.Last6Months),
		Last12Months:  toAveragesResponse(cashflow.Trailing.Last12Months),
	}
	for i, p := range cashflow.Periods {
		resp.Periods[i] = CashflowPeriodResponse{
			PeriodStart: p.PeriodStart.Unix(),
			Income:      p.Income,
			Expenses:    p.Expenses,
			Surplus:     p.Surplus,
			ChartRatio:  p.ChartRatio,
		}
	}
	return resp
}

func toAveragesResponse(a domain.CashflowAverages) CashflowAveragesResponse {
	return CashflowAveragesResponse{
		Income:   a.Income,
		Expenses: a.Expenses,
		Surplus:  a.Surplus,
	}
}
