package accounting

import (
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// StartOfMonth truncates t to the first instant of its calendar month in UTC.
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DayUTC truncates t to UTC midnight, discarding time-of-day.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// BucketTransactionsByMonth distributes transactions into periodCount
// calendar-month buckets starting at windowStart (which must be a month
// start), oldest first. A transaction lands in the bucket whose
// [periodStart, nextPeriodStart) interval contains its date, so same-day
// entries at month end fall into the final bucket. Transactions outside the
// window are ignored. ChartRatio is left zero; ApplyChartRatios fills it.
func BucketTransactionsByMonth(txns []domain.Transaction, periodCount int, windowStart time.Time) []domain.CashflowPeriod {
	periods := make([]domain.CashflowPeriod, periodCount)
	for i := range periods {
		periods[i] = domain.CashflowPeriod{
			PeriodStart: windowStart.AddDate(0, i, 0),
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Surplus:     decimal.Zero,
			ChartRatio:  decimal.Zero,
		}
	}
	windowEnd := windowStart.AddDate(0, periodCount, 0)

	for _, txn := range txns {
		date := txn.Date.UTC()
		if date.Before(windowStart) || !date.Before(windowEnd) {
			continue
		}
		idx := monthsBetween(windowStart, date)
		p := &periods[idx]
		if txn.Value.Sign() >= 0 {
			p.Income = p.Income.Add(txn.Value)
		} else {
			p.Expenses = p.Expenses.Add(txn.Value)
		}
		p.Surplus = p.Income.Add(p.Expenses)
	}
	return periods
}

// monthsBetween counts whole calendar months from the month of start to the
// month of t. start must not be after t.
func monthsBetween(start, t time.Time) int {
	return (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
}

// SurplusExtremes returns the highest positive surplus and the lowest
// negative surplus across periods, each zero when no period is on that side.
func SurplusExtremes(periods []domain.CashflowPeriod) (highest, lowest decimal.Decimal) {
	highest = decimal.Zero
	lowest = decimal.Zero
	for _, p := range periods {
		if p.Surplus.GreaterThan(highest) {
			highest = p.Surplus
		}
		if p.Surplus.LessThan(lowest) {
			lowest = p.Surplus
		}
	}
	return highest, lowest
}

// NormalizedSurplusRatios turns the window's surplus extremes into the
// relative heights of the chart's positive and negative halves. Each side's
// share of the combined magnitude is rounded to two decimals, then the larger
// side is rescaled to exactly 1 and the smaller becomes its quotient against
// the larger.
//
// Branches: both sides zero yields (0, 0); only a positive side yields
// (1, 0); only a negative side yields (0, 1); mixed yields 1 on the larger
// side.
func NormalizedSurplusRatios(highest, lowest decimal.Decimal) (positive, negative decimal.Decimal) {
	pos := highest.Abs()
	neg := lowest.Abs()
	total := pos.Add(neg)
	if total.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	positive = pos.DivRound(total, 2)
	negative = neg.DivRound(total, 2)

	if positive.GreaterThanOrEqual(negative) {
		negative = negative.DivRound(positive, 2)
		positive = one
	} else {
		positive = positive.DivRound(negative, 2)
		negative = one
	}
	return positive, negative
}

// PeriodChartRatio sizes a single period's bar against the window extreme on
// its side of the axis. A zero extreme yields 0 rather than a division error.
func PeriodChartRatio(surplus, highest, lowest decimal.Decimal) decimal.Decimal {
	if surplus.Sign() >= 0 {
		if highest.IsZero() {
			return decimal.Zero
		}
		return surplus.Abs().DivRound(highest.Abs(), 2)
	}
	if lowest.IsZero() {
		return decimal.Zero
	}
	return surplus.Abs().DivRound(lowest.Abs(), 2)
}

// ApplyChartRatios fills in every period's ChartRatio and returns the
// normalized ratios of the chart halves.
func ApplyChartRatios(periods []domain.CashflowPeriod) (positive, negative decimal.Decimal) {
	highest, lowest := SurplusExtremes(periods)
	for i := range periods {
		periods[i].ChartRatio = PeriodChartRatio(periods[i].Surplus, highest, lowest)
	}
	return NormalizedSurplusRatios(highest, lowest)
}

// TrailingAverages computes the two trailing windows over periods ordered
// oldest-first. Last12Months averages the most recent twelve periods;
// Last6Months averages months 7 to 12 back, the six months preceding the most
// recent six. Short windows shrink from the old end; an empty slice averages
// to zero.
func TrailingAverages(periods []domain.CashflowPeriod) domain.TrailingCashflow {
	n := len(periods)
	lo := n - 12
	if lo < 0 {
		lo = 0
	}
	last12 := periods[lo:]

	var first6 []domain.CashflowPeriod
	if hi := n - 6; hi > lo {
		first6 = periods[lo:hi]
	}

	return domain.TrailingCashflow{
		Last6Months:  averagePeriods(first6),
		Last12Months: averagePeriods(last12),
	}
}

func averagePeriods(periods []domain.CashflowPeriod) domain.CashflowAverages {
	if len(periods) == 0 {
		return domain.CashflowAverages{
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Surplus:  decimal.Zero,
		}
	}
	income := decimal.Zero
	expenses := decimal.Zero
	surplus := decimal.Zero
	for _, p := range periods {
		income = income.Add(p.Income)
		expenses = expenses.Add(p.Expenses)
		surplus = surplus.Add(p.Surplus)
	}
	count := decimal.NewFromInt(int64(len(periods)))
	return domain.CashflowAverages{
		Income:   income.DivRound(count, 2),
		Expenses: expenses.DivRound(count, 2),
		Surplus:  surplus.DivRound(count, 2),
	}
}
