package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbase/finledger/internal/core/domain"
	portssvc "github.com/finbase/finledger/internal/core/ports/services"
	"github.com/finbase/finledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BalanceSheetServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockAssetRepo    *MockAssetRepository
	mockTaxonomyRepo *MockTaxonomyRepository
	mockBalanceSvc   *MockBalanceSvc
	service          portssvc.BalanceSheetSvc
}

func (suite *BalanceSheetServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockTaxonomyRepo = new(MockTaxonomyRepository)
	suite.mockBalanceSvc = new(MockBalanceSvc)
	suite.service = services.NewBalanceSheetService(
		suite.mockAccountRepo,
		suite.mockAssetRepo,
		suite.mockTaxonomyRepo,
		suite.mockBalanceSvc,
	)
}

func (suite *BalanceSheetServiceTestSuite) expectAccountBalance(accountID int64, balance string) {
	suite.mockBalanceSvc.On("AccountBalance", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == accountID
	}), (*time.Time)(nil)).Return(decimal.RequireFromString(balance), nil).Once()
}

func (suite *BalanceSheetServiceTestSuite) expectAssetBalance(assetID int64, balance string) {
	suite.mockBalanceSvc.On("AssetBalance", mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.AssetID == assetID
	}), (*time.Time)(nil)).Return(decimal.RequireFromString(balance), nil).Once()
}

func (suite *BalanceSheetServiceTestSuite) TestBalanceSheet_GroupsAndTotals() {
	ctx := context.Background()

	suite.mockTaxonomyRepo.On("ListAccountTypes", ctx).Return([]domain.AccountType{
		{AccountTypeID: 1, Name: "Checking"},
		{AccountTypeID: 2, Name: "Savings"},
	}, nil).Once()
	suite.mockTaxonomyRepo.On("ListAssetTypes", ctx).Return([]domain.AssetType{
		{AssetTypeID: 1, Name: "Cryptocurrency"},
	}, nil).Once()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{
		{AccountID: 1, Name: "Everyday Checking", BalanceGroup: domain.BalanceGroupCash, AccountTypeID: 1},
		{AccountID: 2, Name: "Rainy Day Savings", BalanceGroup: domain.BalanceGroupCash, AccountTypeID: 2},
		// Unknown type id falls back to the "Other" type-group.
		{AccountID: 3, Name: "Store Card", BalanceGroup: domain.BalanceGroupDebt, AccountTypeID: 99},
		{AccountID: 4, Name: "Old Checking", BalanceGroup: domain.BalanceGroupCash, AccountTypeID: 1, IsExcludedFromNetWorth: true},
	}, nil).Once()
	suite.mockAssetRepo.On("ListAssets", ctx).Return([]domain.Asset{
		{AssetID: 1, Name: "Bitcoin", BalanceGroup: domain.BalanceGroupInvestments, AssetTypeID: 1},
	}, nil).Once()

	suite.expectAccountBalance(1, "100")
	suite.expectAccountBalance(2, "500")
	suite.expectAccountBalance(3, "-200")
	suite.expectAccountBalance(4, "1000")
	suite.expectAssetBalance(1, "30000")

	groups, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 4)

	// Groups come out in descending id order, all four always present.
	suite.Equal(domain.BalanceGroupOtherAssets, groups[0].BalanceGroup)
	suite.Equal("Other assets", groups[0].Label)
	suite.True(groups[0].Total.IsZero())
	suite.Empty(groups[0].TypeGroups)
	suite.NotNil(groups[0].TypeGroups)

	suite.Equal(domain.BalanceGroupInvestments, groups[1].BalanceGroup)
	suite.Require().Len(groups[1].TypeGroups, 1)
	suite.Equal("Cryptocurrency", groups[1].TypeGroups[0].TypeName)
	suite.True(groups[1].Total.Equal(decimal.RequireFromString("30000")))

	suite.Equal(domain.BalanceGroupDebt, groups[2].BalanceGroup)
	suite.Require().Len(groups[2].TypeGroups, 1)
	suite.Equal("Other", groups[2].TypeGroups[0].TypeName)
	suite.True(groups[2].Total.Equal(decimal.RequireFromString("-200")))

	cash := groups[3]
	suite.Equal(domain.BalanceGroupCash, cash.BalanceGroup)
	suite.Require().Len(cash.TypeGroups, 2)
	// Type-groups sort by ascending total: Checking (100, excluded item not
	// counted) before Savings (500).
	suite.Equal("Checking", cash.TypeGroups[0].TypeName)
	suite.True(cash.TypeGroups[0].Total.Equal(decimal.RequireFromString("100")))
	suite.Equal("Savings", cash.TypeGroups[1].TypeName)
	// The excluded account still appears as an item.
	suite.Require().Len(cash.TypeGroups[0].Items, 2)
	suite.Equal("Everyday Checking", cash.TypeGroups[0].Items[0].Name)
	suite.Equal("Old Checking", cash.TypeGroups[0].Items[1].Name)
	suite.True(cash.TypeGroups[0].Items[1].IsExcludedFromNetWorth)
	suite.True(cash.Total.Equal(decimal.RequireFromString("600")))

	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *BalanceSheetServiceTestSuite) TestBalanceSheet_EmptyLedgerEmitsAllGroups() {
	ctx := context.Background()

	suite.mockTaxonomyRepo.On("ListAccountTypes", ctx).Return([]domain.AccountType{}, nil).Once()
	suite.mockTaxonomyRepo.On("ListAssetTypes", ctx).Return([]domain.AssetType{}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockAssetRepo.On("ListAssets", ctx).Return([]domain.Asset{}, nil).Once()

	groups, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 4)
	for _, g := range groups {
		suite.True(g.Total.IsZero())
		suite.NotNil(g.TypeGroups)
		suite.Empty(g.TypeGroups)
	}
}

func (suite *BalanceSheetServiceTestSuite) TestBalanceSheet_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockTaxonomyRepo.On("ListAccountTypes", ctx).Return(nil, expectedErr).Once()

	groups, err := suite.service.BalanceSheet(ctx)

	suite.Require().Error(err)
	suite.Nil(groups)
	suite.ErrorIs(err, expectedErr)
}

func TestBalanceSheetService(t *testing.T) {
	suite.Run(t, new(BalanceSheetServiceTestSuite))
}
