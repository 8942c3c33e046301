package eggmath_test

import (
	"testing"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/utils/eggmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalEggs(t *testing.T) {
	assert.Equal(t, 0, eggmath.TotalEggs(0, 0))
	assert.Equal(t, 30, eggmath.TotalEggs(1, 0))
	assert.Equal(t, 70, eggmath.TotalEggs(2, 10))
}

func TestLineValue(t *testing.T) {
	// 2 trays + 10 loose = 70 eggs at 6.50 per egg
	item := domain.TransactionItem{
		QtyTrays:    2,
		QtyLoose:    10,
		RateApplied: decimal.RequireFromString("6.50"),
	}
	assert.True(t, decimal.RequireFromString("455").Equal(eggmath.LineValue(item)))
}

func TestLineValue_BreakageNotBilled(t *testing.T) {
	item := domain.TransactionItem{
		QtyTrays:    1,
		QtyLoose:    0,
		BreakageQty: 5,
		RateApplied: decimal.NewFromInt(10),
	}
	// 30 eggs billed, broken eggs excluded
	assert.True(t, decimal.NewFromInt(300).Equal(eggmath.LineValue(item)))
}

func TestItemsTotal(t *testing.T) {
	items := []domain.TransactionItem{
		{QtyTrays: 2, QtyLoose: 10, RateApplied: decimal.NewFromInt(10)}, // 700
		{QtyTrays: 1, QtyLoose: 0, RateApplied: decimal.RequireFromString("6.50")}, // 195
	}
	assert.True(t, decimal.NewFromInt(895).Equal(eggmath.ItemsTotal(items)))
}

func TestItemsTotal_Empty(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(eggmath.ItemsTotal(nil)))
}
