package dto

import (
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetDailyRateRequest defines the data needed to set a board rate.
// Date is optional; when absent the rate applies to the current day.
type SetDailyRateRequest struct {
	EggType    string          `json:"eggType" binding:"required"`
	RatePerEgg decimal.Decimal `json:"ratePerEgg" binding:"required"`
	Date       *time.Time      `json:"date"` // Optional, defaults to now
}

// RateResponse defines the data returned for a daily board rate.
// Mirrors domain.DailyBoardRate.
type RateResponse struct {
	RateID        string          `json:"rateID"`
	Date          time.Time       `json:"date"`
	EggType       string          `json:"eggType"`
	RatePerEgg    decimal.Decimal `json:"ratePerEgg"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListRatesResponse wraps the list of rates.
type ListRatesResponse struct {
	Rates []RateResponse `json:"rates"`
}

// EffectiveRateResponse carries a resolved rate after applying a contact's
// price adjustment. Found is false when no board rate is set for the day.
type EffectiveRateResponse struct {
	EggType    string          `json:"eggType"`
	RatePerEgg decimal.Decimal `json:"ratePerEgg"`
	Found      bool            `json:"found"`
}

// ToRateResponse converts a domain.DailyBoardRate to RateResponse DTO
func ToRateResponse(r *domain.DailyBoardRate) RateResponse {
	return RateResponse{
		RateID:        r.RateID,
		Date:          r.Date,
		EggType:       r.EggType,
		RatePerEgg:    r.RatePerEgg,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRatesResponse converts a slice of domain.DailyBoardRate to the list DTO
func ToListRatesResponse(rates []domain.DailyBoardRate) ListRatesResponse {
	res := make([]RateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToRateResponse(&r)
	}
	return ListRatesResponse{Rates: res}
}
