package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBoardRate is the price per single egg for one egg type on one
// calendar day. At most one row exists per (date, eggType); setting the rate
// again for the same day overwrites RatePerEgg in place.
type DailyBoardRate struct {
	RateID     string          `json:"rateID"`
	Date       time.Time       `json:"date"` // start-of-day, local time
	EggType    string          `json:"eggType"`
	RatePerEgg decimal.Decimal `json:"ratePerEgg"`
	AuditFields
}

// EffectiveRate combines a board rate with a contact's price adjustment.
// The adjustment is additive and may be negative.
func EffectiveRate(boardRate, adjustment decimal.Decimal) decimal.Decimal {
	return boardRate.Add(adjustment)
}
