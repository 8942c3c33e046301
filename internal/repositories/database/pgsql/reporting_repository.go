package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for dashboard report data.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetDashboardStatsData aggregates sales, payments received and trays sold
// over transactions dated at or after the given instant. Payments out are not
// part of the payments figure; the dashboard tracks money coming in.
func (r *reportingRepository) GetDashboardStatsData(ctx context.Context, since time.Time) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'SALE'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'PAYMENT_IN'), 0),
		       COUNT(*) FILTER (WHERE type = 'SALE')
		FROM transactions
		WHERE txn_date >= $1;
	`
	err := r.Pool.QueryRow(ctx, query, since).Scan(
		&stats.TotalSalesAmount,
		&stats.TotalPaymentsAmount,
		&stats.SalesCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard amounts: %w", err)
	}

	traysQuery := `
		SELECT COALESCE(SUM(ti.qty_trays), 0)
		FROM transaction_items ti
		JOIN transactions t ON t.transaction_id = ti.transaction_id
		WHERE t.type = 'SALE' AND t.txn_date >= $1;
	`
	if err := r.Pool.QueryRow(ctx, traysQuery, since).Scan(&stats.TotalTraysSold); err != nil {
		return nil, fmt.Errorf("failed to aggregate trays sold: %w", err)
	}

	return stats, nil
}
