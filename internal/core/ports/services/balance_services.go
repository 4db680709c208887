package services

import (
	"context"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc resolves current or as-of balances.
//
// Auto-calculated accounts sum their non-excluded transactions; manual
// accounts and all assets take the value of their latest balance statement at
// or before the query instant. Missing data resolves to zero, never an error.
type BalanceSvc interface {
	AccountBalance(ctx context.Context, account domain.Account, asOf *time.Time) (decimal.Decimal, error)
	AssetBalance(ctx context.Context, asset domain.Asset, asOf *time.Time) (decimal.Decimal, error)

	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}
