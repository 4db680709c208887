package accounting_test

import (
	"testing"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/finbase/finledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(date time.Time, value string) domain.Transaction {
	return domain.Transaction{Date: date, Value: dec(value)}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2024, 3, 17, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), accounting.StartOfMonth(in))

	// Non-UTC inputs normalize to UTC before truncation.
	loc := time.FixedZone("UTC+5", 5*3600)
	in = time.Date(2024, 4, 1, 2, 0, 0, 0, loc) // 2024-03-31T21:00Z
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), accounting.StartOfMonth(in))
}

func TestDayUTC(t *testing.T) {
	in := time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), accounting.DayUTC(in))
}

func TestBucketTransactionsByMonth(t *testing.T) {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100"),
		txn(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), "-40"),
		// Last day of the window's final month still lands in the final bucket.
		txn(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), "10"),
		// Outside the window on both ends.
		txn(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "999"),
		txn(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "999"),
	}

	periods := accounting.BucketTransactionsByMonth(txns, 3, windowStart)
	require.Len(t, periods, 3)

	assert.Equal(t, windowStart, periods[0].PeriodStart)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), periods[1].PeriodStart)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), periods[2].PeriodStart)

	assert.True(t, periods[0].Income.Equal(dec("100")))
	assert.True(t, periods[0].Expenses.Equal(dec("-40")))
	assert.True(t, periods[0].Surplus.Equal(dec("60")))

	assert.True(t, periods[1].Income.IsZero())
	assert.True(t, periods[1].Expenses.IsZero())
	assert.True(t, periods[1].Surplus.IsZero())

	assert.True(t, periods[2].Income.Equal(dec("10")))
	assert.True(t, periods[2].Surplus.Equal(dec("10")))
}

func TestBucketTransactionsByMonth_EmptyWindow(t *testing.T) {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periods := accounting.BucketTransactionsByMonth(nil, 13, windowStart)

	require.Len(t, periods, 13)
	for _, p := range periods {
		assert.True(t, p.Income.IsZero())
		assert.True(t, p.Expenses.IsZero())
		assert.True(t, p.Surplus.IsZero())
		assert.True(t, p.ChartRatio.IsZero())
	}
}

func TestSurplusExtremes(t *testing.T) {
	periods := []domain.CashflowPeriod{
		{Surplus: dec("300")},
		{Surplus: dec("-100")},
		{Surplus: dec("50")},
		{Surplus: dec("-20")},
	}
	highest, lowest := accounting.SurplusExtremes(periods)
	assert.True(t, highest.Equal(dec("300")))
	assert.True(t, lowest.Equal(dec("-100")))

	highest, lowest = accounting.SurplusExtremes(nil)
	assert.True(t, highest.IsZero())
	assert.True(t, lowest.IsZero())
}

func TestNormalizedSurplusRatios(t *testing.T) {
	tests := []struct {
		name     string
		highest  string
		lowest   string
		positive string
		negative string
	}{
		{"both sides zero", "0", "0", "0", "0"},
		{"only positive", "100", "0", "1", "0"},
		{"only negative", "0", "-100", "0", "1"},
		{"positive dominates", "300", "-100", "1", "0.33"},
		{"negative dominates", "100", "-300", "0.33", "1"},
		{"tie rescales both to one", "100", "-100", "1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positive, negative := accounting.NormalizedSurplusRatios(dec(tt.highest), dec(tt.lowest))
			assert.True(t, positive.Equal(dec(tt.positive)), "positive: got %s want %s", positive, tt.positive)
			assert.True(t, negative.Equal(dec(tt.negative)), "negative: got %s want %s", negative, tt.negative)
		})
	}
}

func TestPeriodChartRatio(t *testing.T) {
	highest := dec("100")
	lowest := dec("-200")

	assert.True(t, accounting.PeriodChartRatio(dec("50"), highest, lowest).Equal(dec("0.5")))
	assert.True(t, accounting.PeriodChartRatio(dec("100"), highest, lowest).Equal(dec("1")))
	assert.True(t, accounting.PeriodChartRatio(dec("-50"), highest, lowest).Equal(dec("0.25")))
	assert.True(t, accounting.PeriodChartRatio(dec("0"), highest, lowest).IsZero())

	// Zero extremes guard against division errors.
	assert.True(t, accounting.PeriodChartRatio(dec("50"), decimal.Zero, lowest).IsZero())
	assert.True(t, accounting.PeriodChartRatio(dec("-50"), highest, decimal.Zero).IsZero())
}

func TestApplyChartRatios(t *testing.T) {
	periods := []domain.CashflowPeriod{
		{Surplus: dec("300")},
		{Surplus: dec("-100")},
		{Surplus: dec("150")},
	}

	positive, negative := accounting.ApplyChartRatios(periods)

	assert.True(t, positive.Equal(dec("1")))
	assert.True(t, negative.Equal(dec("0.33")))
	assert.True(t, periods[0].ChartRatio.Equal(dec("1")))
	assert.True(t, periods[1].ChartRatio.Equal(dec("1")))
	assert.True(t, periods[2].ChartRatio.Equal(dec("0.5")))
}

func TestTrailingAverages(t *testing.T) {
	// 13 periods, surplus 0..12 oldest-first. The most recent 12 are 1..12;
	// the six months preceding the most recent six are 1..6.
	periods := make([]domain.CashflowPeriod, 13)
	for i := range periods {
		v := decimal.NewFromInt(int64(i))
		periods[i] = domain.CashflowPeriod{Income: v, Expenses: decimal.Zero, Surplus: v}
	}

	trailing := accounting.TrailingAverages(periods)

	assert.True(t, trailing.Last12Months.Surplus.Equal(dec("6.5")), "got %s", trailing.Last12Months.Surplus)
	assert.True(t, trailing.Last6Months.Surplus.Equal(dec("3.5")), "got %s", trailing.Last6Months.Surplus)
	assert.True(t, trailing.Last12Months.Income.Equal(dec("6.5")))
	assert.True(t, trailing.Last12Months.Expenses.IsZero())
}

func TestTrailingAverages_ShortWindows(t *testing.T) {
	// Six or fewer periods leave no room for the earlier six-month window.
	periods := make([]domain.CashflowPeriod, 6)
	for i := range periods {
		v := decimal.NewFromInt(int64(i + 1))
		periods[i] = domain.CashflowPeriod{Income: v, Expenses: decimal.Zero, Surplus: v}
	}

	trailing := accounting.TrailingAverages(periods)

	assert.True(t, trailing.Last12Months.Surplus.Equal(dec("3.5")))
	assert.True(t, trailing.Last6Months.Surplus.IsZero())
	assert.True(t, trailing.Last6Months.Income.IsZero())
}

func TestTrailingAverages_Empty(t *testing.T) {
	trailing := accounting.TrailingAverages(nil)

	assert.True(t, trailing.Last6Months.Surplus.IsZero())
	assert.True(t, trailing.Last12Months.Surplus.IsZero())
}
