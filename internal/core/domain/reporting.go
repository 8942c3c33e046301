package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates the current day's trading activity.
type DashboardStats struct {
	TotalSalesAmount    decimal.Decimal `json:"totalSalesAmount"`
	TotalPaymentsAmount decimal.Decimal `json:"totalPaymentsAmount"`
	TotalTraysSold      int             `json:"totalTraysSold"`
	SalesCount          int             `json:"salesCount"`
}
