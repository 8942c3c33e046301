package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBoardRate is the DB row for one (day, egg type) board rate.
// A unique constraint on (rate_date, egg_type) backs the upsert semantics.
type DailyBoardRate struct {
	RateID     string          `db:"rate_id"`
	Date       time.Time       `db:"rate_date"`
	EggType    string          `db:"egg_type"`
	RatePerEgg decimal.Decimal `db:"rate_per_egg"`
	AuditFields
}
