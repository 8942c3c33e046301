package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/eggkhata/egg_khata_app/internal/models"
	"github.com/eggkhata/egg_khata_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for daily board rate data.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const rateColumns = `rate_id, rate_date, egg_type, rate_per_egg, created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.Row) (*models.DailyBoardRate, error) {
	var m models.DailyBoardRate
	err := row.Scan(
		&m.RateID,
		&m.Date,
		&m.EggType,
		&m.RatePerEgg,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertRate inserts the rate, or overwrites rate_per_egg when a row already
// exists for the same (day, eggType). The unique constraint on
// (rate_date, egg_type) makes the write atomic under concurrency.
func (r *PgxRateRepository) UpsertRate(ctx context.Context, rate domain.DailyBoardRate) (*domain.DailyBoardRate, error) {
	m := mapping.ToModelDailyBoardRate(rate)

	query := `
		INSERT INTO daily_board_rates (rate_id, rate_date, egg_type, rate_per_egg, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (rate_date, egg_type)
		DO UPDATE SET rate_per_egg = EXCLUDED.rate_per_egg,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + rateColumns + `;
	`
	stored, err := scanRate(r.Pool.QueryRow(ctx, query,
		m.RateID,
		m.Date,
		m.EggType,
		m.RatePerEgg,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rate for %s: %w", m.EggType, err)
	}

	d := mapping.ToDomainDailyBoardRate(*stored)
	return &d, nil
}

// FindRateForDay retrieves the rate for an exact (day, eggType) pair.
// Returns nil without error when no rate has been set.
func (r *PgxRateRepository) FindRateForDay(ctx context.Context, eggType string, day time.Time) (*domain.DailyBoardRate, error) {
	query := `SELECT ` + rateColumns + ` FROM daily_board_rates WHERE rate_date = $1 AND egg_type = $2;`

	m, err := scanRate(r.Pool.QueryRow(ctx, query, day, eggType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rate for %s on %s: %w", eggType, day.Format("2006-01-02"), err)
	}

	d := mapping.ToDomainDailyBoardRate(*m)
	return &d, nil
}

// ListRatesFrom retrieves all rates dated at or after the given instant,
// newest first.
func (r *PgxRateRepository) ListRatesFrom(ctx context.Context, from time.Time) ([]domain.DailyBoardRate, error) {
	query := `SELECT ` + rateColumns + ` FROM daily_board_rates WHERE rate_date >= $1 ORDER BY rate_date DESC, egg_type;`

	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.DailyBoardRate{}
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainDailyBoardRate(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rate rows: %w", rows.Err())
	}
	return rates, nil
}
