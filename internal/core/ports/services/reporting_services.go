package services

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
)

// ReportingService defines operations for generating dashboard reports
type ReportingService interface {
	// GetDashboardStats aggregates the asOf day's sales, payments and trays
	// sold. All zeros when there was no activity.
	GetDashboardStats(ctx context.Context, asOf time.Time) (*domain.DashboardStats, error)
}
