package services_test

import (
	"context"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNameContains(ctx context.Context, fragment string) (*domain.Account, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) (int64, error) {
	args := m.Called(ctx, asset)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByNameContains(ctx context.Context, fragment string) (*domain.Asset, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) SaveAccountStatement(ctx context.Context, stmt domain.AccountBalanceStatement) (int64, error) {
	args := m.Called(ctx, stmt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatementRepository) FindLatestAccountStatement(ctx context.Context, accountID int64, asOf *time.Time) (*domain.AccountBalanceStatement, error) {
	args := m.Called(ctx, accountID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalanceStatement), args.Error(1)
}

func (m *MockStatementRepository) SaveAssetStatement(ctx context.Context, stmt domain.AssetBalanceStatement) (int64, error) {
	args := m.Called(ctx, stmt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatementRepository) FindLatestAssetStatement(ctx context.Context, assetID int64, asOf *time.Time) (*domain.AssetBalanceStatement, error) {
	args := m.Called(ctx, assetID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetBalanceStatement), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionImport(ctx context.Context, imp domain.TransactionImport) error {
	args := m.Called(ctx, imp)
	return args.Error(0)
}

func (m *MockTransactionRepository) HasTransactionImportMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error) {
	args := m.Called(ctx, accountID, description, value, dayStart, dayEnd)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) HasTransactionMatch(ctx context.Context, accountID int64, description string, value decimal.Decimal, dayStart, dayEnd time.Time) (bool, error) {
	args := m.Called(ctx, accountID, description, value, dayStart, dayEnd)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SumAccountTransactions(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock TaxonomyRepository ---
type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) FindAccountTypeByNameContains(ctx context.Context, fragment string) (*domain.AccountType, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockTaxonomyRepository) FindAssetTypeByNameContains(ctx context.Context, fragment string) (*domain.AssetType, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockTaxonomyRepository) FindCategoryByName(ctx context.Context, name string) (*domain.TransactionCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionCategory), args.Error(1)
}

func (m *MockTaxonomyRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

func (m *MockTaxonomyRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

// --- Mock BalanceSvc ---
type MockBalanceSvc struct {
	mock.Mock
}

func (m *MockBalanceSvc) AccountBalance(ctx context.Context, account domain.Account, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, account, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceSvc) AssetBalance(ctx context.Context, asset domain.Asset, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, asset, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceSvc) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBalanceSvc) GetAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockBalanceSvc) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBalanceSvc) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// --- Mock TaxonomySvc ---
type MockTaxonomySvc struct {
	mock.Mock
}

func (m *MockTaxonomySvc) ResolveAccountTypeID(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaxonomySvc) ResolveAssetTypeID(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaxonomySvc) ResolveCategoryID(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}
