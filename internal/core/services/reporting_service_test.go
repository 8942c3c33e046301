package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/core/services"
	"github.com/eggkhata/egg_khata_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_WindowStartsAtMidnight() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 15, 18, 45, 0, 0, time.Local)
	expected := &domain.DashboardStats{
		TotalSalesAmount:    decimal.NewFromInt(4500),
		TotalPaymentsAmount: decimal.NewFromInt(900),
		TotalTraysSold:      12,
		SalesCount:          3,
	}

	suite.mockRepo.On("GetDashboardStatsData", ctx, utils.StartOfDay(asOf)).Return(expected, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(expected, stats)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_RepoError() {
	ctx := context.Background()
	asOf := time.Now()

	suite.mockRepo.On("GetDashboardStatsData", ctx, utils.StartOfDay(asOf)).Return(nil, assert.AnError).Once()

	stats, err := suite.service.GetDashboardStats(ctx, asOf)

	suite.Require().Error(err)
	suite.Nil(stats)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
