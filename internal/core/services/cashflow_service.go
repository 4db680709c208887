package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/utils/accounting"
)

// DefaultCashflowPeriods is the default window length in calendar months.
const DefaultCashflowPeriods = 13

// cashflowService buckets non-excluded transactions into calendar-month
// periods and derives the chart ratios and trailing averages. Reads acquire
// no locks; every call re-derives from current rows.
type cashflowService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewCashflowService creates a new cashflow service.
func NewCashflowService(txnRepo portsrepo.TransactionRepository) portssvc.CashflowSvc {
	return &cashflowService{txnRepo: txnRepo}
}

var _ portssvc.CashflowSvc = (*cashflowService)(nil)

// Cashflow aggregates periodCount months ending at the end of the month
// containing referenceDate, oldest first. A window with no transactions
// yields periodCount zeroed buckets rather than an empty result.
func (s *cashflowService) Cashflow(ctx context.Context, periodCount int, referenceDate time.Time) (*domain.Cashflow, error) {
	if periodCount <= 0 {
		periodCount = DefaultCashflowPeriods
	}
	if referenceDate.IsZero() {
		referenceDate = time.Now().UTC()
	}

	// windowEnd is the first instant after the end of the reference month,
	// so same-day transactions at month end land in the final bucket.
	windowEnd := accounting.StartOfMonth(referenceDate).AddDate(0, 1, 0)
	windowStart := windowEnd.AddDate(0, -periodCount, 0)

	txns, err := s.txnRepo.ListTransactionsBetween(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for cashflow window: %w", err)
	}

	periods := accounting.BucketTransactionsByMonth(txns, periodCount, windowStart)
	positive, negative := accounting.ApplyChartRatios(periods)

	cashflow := &domain.Cashflow{
		Periods:       periods,
		PositiveRatio: positive,
		NegativeRatio: negative,
		Trailing:      accounting.TrailingAverages(periods),
	}

	s.LogDebug(ctx, "Cashflow aggregated",
		slog.Int("period_count", periodCount),
		slog.Int("transaction_count", len(txns)),
		slog.Time("window_start", windowStart),
		slog.Time("window_end", windowEnd),
	)
	return cashflow, nil
}
