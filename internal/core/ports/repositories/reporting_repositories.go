package repositories

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving dashboard report data
type ReportingRepository interface {
	// GetDashboardStatsData aggregates sales, payments and trays sold over
	// transactions dated at or after the given instant.
	GetDashboardStatsData(ctx context.Context, since time.Time) (*domain.DashboardStats, error)
}
