package dto

import (
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse defines the data returned for the dashboard.
type DashboardStatsResponse struct {
	TotalSalesAmount    decimal.Decimal `json:"totalSalesAmount"`
	TotalPaymentsAmount decimal.Decimal `json:"totalPaymentsAmount"`
	TotalTraysSold      int             `json:"totalTraysSold"`
	SalesCount          int             `json:"salesCount"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalSalesAmount:    stats.TotalSalesAmount,
		TotalPaymentsAmount: stats.TotalPaymentsAmount,
		TotalTraysSold:      stats.TotalTraysSold,
		SalesCount:          stats.SalesCount,
	}
}
