package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowPeriod is one calendar-month bucket of the cashflow window.
// Income is the sum of positive transaction values, Expenses the sum of
// negative ones, Surplus their sum. ChartRatio is the bucket's bar height in
// [0, 1] relative to the window's extreme surplus on the matching side.
type CashflowPeriod struct {
	PeriodStart time.Time       `json:"periodStart"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Surplus     decimal.Decimal `json:"surplus"`
	ChartRatio  decimal.Decimal `json:"chartRatio"`
}

// CashflowAverages holds average income/expenses/surplus over a slice of
// periods.
type CashflowAverages struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Surplus  decimal.Decimal `json:"surplus"`
}

// TrailingCashflow carries the two trailing averages shown next to the chart.
// Last6Months covers months 7 to 12 back, i.e. the six months before the most
// recent six. That window choice is intentional display behavior.
type TrailingCashflow struct {
	Last6Months  CashflowAverages `json:"last6Months"`
	Last12Months CashflowAverages `json:"last12Months"`
}

// Cashflow is the full aggregation result: periods oldest-first, the
// normalized ratio of the chart's positive and negative halves, and the
// trailing averages.
type Cashflow struct {
	Periods       []CashflowPeriod `json:"periods"`
	PositiveRatio decimal.Decimal  `json:"positiveRatio"`
	NegativeRatio decimal.Decimal  `json:"negativeRatio"`
	Trailing      TrailingCashflow `json:"trailing"`
}
