package services

import (
	"context"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
)

// CashflowSvc aggregates transactions into calendar-month buckets ending at
// the end of the month containing referenceDate. periodCount <= 0 selects the
// default window of 13 months.
type CashflowSvc interface {
	Cashflow(ctx context.Context, periodCount int, referenceDate time.Time) (*domain.Cashflow, error)
}
