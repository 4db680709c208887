package services

import (
	"context"

	"github.com/finbase/finledger/internal/core/domain"
)

// BalanceSheetSvc groups resolved account and asset balances into type-groups
// within the four balance groups.
type BalanceSheetSvc interface {
	BalanceSheet(ctx context.Context) ([]domain.BalanceSheetBalanceGroup, error)
}
