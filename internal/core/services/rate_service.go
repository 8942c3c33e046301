package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/middleware"
	"github.com/eggkhata/egg_khata_app/internal/utils"
	"github.com/shopspring/decimal"
)

// rateService provides daily board rate operations.
type rateService struct {
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// SetDailyRate sets the board rate for (day of asOf, eggType). Setting the
// rate twice on the same day overwrites the first value; the write is an
// atomic upsert keyed on the day-truncated date.
func (s *rateService) SetDailyRate(ctx context.Context, eggType string, ratePerEgg decimal.Decimal, asOf time.Time, userID string) (*domain.DailyBoardRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if eggType == "" {
		return nil, fmt.Errorf("%w: egg type is required", apperrors.ErrValidation)
	}
	if ratePerEgg.IsNegative() {
		return nil, fmt.Errorf("%w: rate per egg cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.DailyBoardRate{
		RateID:     uuid.NewString(),
		Date:       utils.StartOfDay(asOf),
		EggType:    eggType,
		RatePerEgg: ratePerEgg,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stored, err := s.rateRepo.UpsertRate(ctx, rate)
	if err != nil {
		logger.Error("Failed to upsert daily rate", slog.String("egg_type", eggType), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Daily rate set",
		slog.String("egg_type", stored.EggType),
		slog.String("rate_per_egg", stored.RatePerEgg.String()),
		slog.Time("date", stored.Date))
	return stored, nil
}

// GetTodayRates retrieves all rates dated at or after the start of the asOf day.
func (s *rateService) GetTodayRates(ctx context.Context, asOf time.Time) ([]domain.DailyBoardRate, error) {
	return s.rateRepo.ListRatesFrom(ctx, utils.StartOfDay(asOf))
}

// GetBoardRate resolves the per-egg rate for an egg type on the asOf day.
// A missing rate is not an error; callers decide how to surface "no rate set".
func (s *rateService) GetBoardRate(ctx context.Context, eggType string, asOf time.Time) (decimal.Decimal, bool, error) {
	rate, err := s.rateRepo.FindRateForDay(ctx, eggType, utils.StartOfDay(asOf))
	if err != nil {
		return decimal.Zero, false, err
	}
	if rate == nil {
		return decimal.Zero, false, nil
	}
	return rate.RatePerEgg, true, nil
}

// GetEffectiveRate applies a contact's price adjustment on top of the board
// rate for the day. When no board rate is set the adjustment alone is not a
// price, so found=false and a zero rate are returned.
func (s *rateService) GetEffectiveRate(ctx context.Context, eggType string, asOf time.Time, adjustment decimal.Decimal) (decimal.Decimal, bool, error) {
	board, found, err := s.GetBoardRate(ctx, eggType, asOf)
	if err != nil || !found {
		return decimal.Zero, false, err
	}
	return domain.EffectiveRate(board, adjustment), true, nil
}
