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

type CashflowServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.CashflowSvc
}

func (suite *CashflowServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewCashflowService(suite.mockTxnRepo)
}

func (suite *CashflowServiceTestSuite) TestCashflow_BucketsAndRatios() {
	ctx := context.Background()
	referenceDate := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	// Three months ending with June: [2024-04-01, 2024-07-01).
	windowStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{Date: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), Value: decimal.RequireFromString("100")},
		{Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), Value: decimal.RequireFromString("-50")},
		// Last day of the reference month still counts.
		{Date: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), Value: decimal.RequireFromString("20")},
	}

	suite.mockTxnRepo.On("ListTransactionsBetween", ctx, windowStart, windowEnd).Return(txns, nil).Once()

	cashflow, err := suite.service.Cashflow(ctx, 3, referenceDate)

	suite.Require().NoError(err)
	suite.Require().Len(cashflow.Periods, 3)

	suite.Equal(windowStart, cashflow.Periods[0].PeriodStart)
	suite.True(cashflow.Periods[0].Surplus.Equal(decimal.RequireFromString("100")))
	suite.True(cashflow.Periods[1].Surplus.Equal(decimal.RequireFromString("-50")))
	suite.True(cashflow.Periods[2].Surplus.Equal(decimal.RequireFromString("20")))

	// Bars scale against the window extremes on each side of the axis.
	suite.True(cashflow.Periods[0].ChartRatio.Equal(decimal.RequireFromString("1")))
	suite.True(cashflow.Periods[1].ChartRatio.Equal(decimal.RequireFromString("1")))
	suite.True(cashflow.Periods[2].ChartRatio.Equal(decimal.RequireFromString("0.2")))

	suite.True(cashflow.PositiveRatio.Equal(decimal.RequireFromString("1")))
	suite.True(cashflow.NegativeRatio.Equal(decimal.RequireFromString("0.49")), "got %s", cashflow.NegativeRatio)

	// Only three periods: the trailing-12 window shrinks, the earlier
	// six-month window has no room.
	suite.True(cashflow.Trailing.Last12Months.Surplus.Equal(decimal.RequireFromString("23.33")), "got %s", cashflow.Trailing.Last12Months.Surplus)
	suite.True(cashflow.Trailing.Last6Months.Surplus.IsZero())

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestCashflow_DefaultPeriodCount() {
	ctx := context.Background()
	referenceDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	windowStart := windowEnd.AddDate(0, -13, 0)

	suite.mockTxnRepo.On("ListTransactionsBetween", ctx, windowStart, windowEnd).
		Return([]domain.Transaction{}, nil).Once()

	cashflow, err := suite.service.Cashflow(ctx, 0, referenceDate)

	suite.Require().NoError(err)
	suite.Len(cashflow.Periods, 13)
	for _, p := range cashflow.Periods {
		suite.True(p.Surplus.IsZero())
		suite.True(p.ChartRatio.IsZero())
	}
	suite.True(cashflow.PositiveRatio.IsZero())
	suite.True(cashflow.NegativeRatio.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestCashflow_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("ListTransactionsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, expectedErr).Once()

	cashflow, err := suite.service.Cashflow(ctx, 3, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	suite.Require().Error(err)
	suite.Nil(cashflow)
	suite.ErrorIs(err, expectedErr)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestCashflowService(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}
