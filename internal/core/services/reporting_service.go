package services

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/utils"
)

// reportingService provides dashboard aggregation.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardStats aggregates the asOf day's activity. The window starts at
// local midnight of the asOf day, so 23:59:59 yesterday is excluded and
// 00:00:00 today is included.
func (s *reportingService) GetDashboardStats(ctx context.Context, asOf time.Time) (*domain.DashboardStats, error) {
	return s.reportingRepo.GetDashboardStatsData(ctx, utils.StartOfDay(asOf))
}
