package repositories

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
)

// RateReader defines read operations for daily board rate data
type RateReader interface {
	// FindRateForDay retrieves the rate for an exact (day, eggType) pair.
	// Returns nil without error when no rate has been set for the day.
	FindRateForDay(ctx context.Context, eggType string, day time.Time) (*domain.DailyBoardRate, error)

	// ListRatesFrom retrieves all rates with a date at or after the given
	// instant, newest first.
	ListRatesFrom(ctx context.Context, from time.Time) ([]domain.DailyBoardRate, error)
}

// RateWriter defines write operations for daily board rate data
type RateWriter interface {
	// UpsertRate inserts the rate, or overwrites rate_per_egg when a row
	// already exists for the same (day, eggType). Returns the stored row.
	UpsertRate(ctx context.Context, rate domain.DailyBoardRate) (*domain.DailyBoardRate, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
