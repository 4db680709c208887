package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbase/finledger/internal/apperrors"
	"github.com/finbase/finledger/internal/core/domain"
	portsrepo "github.com/finbase/finledger/internal/core/ports/repositories"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService resolves balances in one of two modes. Auto-calculated
// accounts sum their non-excluded transactions; manual accounts and all
// assets read the latest balance statement. Picking the wrong mode would
// silently show stale or zero balances, so the mode switch lives in exactly
// one place.
type balanceService struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	assetRepo     portsrepo.AssetRepository
	statementRepo portsrepo.StatementRepository
	txnRepo       portsrepo.TransactionRepository
}

// NewBalanceService creates a new balance service.
func NewBalanceService(
	accountRepo portsrepo.AccountRepository,
	assetRepo portsrepo.AssetRepository,
	statementRepo portsrepo.StatementRepository,
	txnRepo portsrepo.TransactionRepository,
) portssvc.BalanceSvc {
	return &balanceService{
		accountRepo:   accountRepo,
		assetRepo:     assetRepo,
		statementRepo: statementRepo,
		txnRepo:       txnRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// AccountBalance resolves an account's balance at asOf (or now when nil).
func (s *balanceService) AccountBalance(ctx context.Context, account domain.Account, asOf *time.Time) (decimal.Decimal, error) {
	if account.IsAutoCalculated {
		sum, err := s.txnRepo.SumAccountTransactions(ctx, account.AccountID, asOf)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to sum transactions for account %d: %w", account.AccountID, err)
		}
		return sum, nil
	}

	stmt, err := s.statementRepo.FindLatestAccountStatement(ctx, account.AccountID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find balance statement for account %d: %w", account.AccountID, err)
	}
	return stmt.Value, nil
}

// AssetBalance resolves an asset's balance at asOf (or now when nil). Assets
// are always snapshot-based.
func (s *balanceService) AssetBalance(ctx context.Context, asset domain.Asset, asOf *time.Time) (decimal.Decimal, error) {
	stmt, err := s.statementRepo.FindLatestAssetStatement(ctx, asset.AssetID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find balance statement for asset %d: %w", asset.AssetID, err)
	}
	return stmt.Value, nil
}

func (s *balanceService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *balanceService) GetAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	return s.assetRepo.FindAssetByID(ctx, assetID)
}

func (s *balanceService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

func (s *balanceService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.assetRepo.ListAssets(ctx)
}
