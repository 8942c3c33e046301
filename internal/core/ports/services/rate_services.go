package services

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for daily board rates
type RateReaderSvc interface {
	// GetTodayRates retrieves all rates dated at or after the start of the
	// asOf day.
	GetTodayRates(ctx context.Context, asOf time.Time) ([]domain.DailyBoardRate, error)

	// GetBoardRate resolves the per-egg rate for an egg type on the asOf day.
	// Absence is not an error: found=false and a zero rate are returned when
	// no rate has been set.
	GetBoardRate(ctx context.Context, eggType string, asOf time.Time) (rate decimal.Decimal, found bool, err error)

	// GetEffectiveRate resolves the board rate for the day and applies the
	// contact's additive price adjustment. found=false when no board rate is
	// set; the adjustment is not applied to a missing rate.
	GetEffectiveRate(ctx context.Context, eggType string, asOf time.Time, adjustment decimal.Decimal) (rate decimal.Decimal, found bool, err error)
}

// RateWriterSvc defines write operations for daily board rates
type RateWriterSvc interface {
	// SetDailyRate sets the rate for (day of asOf, eggType), overwriting any
	// rate already set for that day.
	SetDailyRate(ctx context.Context, eggType string, ratePerEgg decimal.Decimal, asOf time.Time, userID string) (*domain.DailyBoardRate, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
