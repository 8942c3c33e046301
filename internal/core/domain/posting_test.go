package domain_test

import (
	"testing"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemStockDelta(t *testing.T) {
	tests := []struct {
		name   string
		txType domain.TransactionType
		item   domain.TransactionItem
		want   domain.StockDelta
	}{
		{
			name:   "sale subtracts stock",
			txType: domain.Sale,
			item:   domain.TransactionItem{QtyTrays: 2, QtyLoose: 10},
			want:   domain.StockDelta{Trays: -2, Loose: -10},
		},
		{
			name:   "purchase adds stock",
			txType: domain.Purchase,
			item:   domain.TransactionItem{QtyTrays: 5, QtyLoose: 3},
			want:   domain.StockDelta{Trays: 5, Loose: 3},
		},
		{
			name:   "breakage always subtracts from loose on a sale",
			txType: domain.Sale,
			item:   domain.TransactionItem{QtyTrays: 2, QtyLoose: 10, BreakageQty: 5},
			want:   domain.StockDelta{Trays: -2, Loose: -15},
		},
		{
			name:   "breakage subtracts from loose even on a purchase",
			txType: domain.Purchase,
			item:   domain.TransactionItem{QtyTrays: 5, QtyLoose: 0, BreakageQty: 4},
			want:   domain.StockDelta{Trays: 5, Loose: -4},
		},
		{
			name:   "zero quantities with breakage only",
			txType: domain.Sale,
			item:   domain.TransactionItem{BreakageQty: 3},
			want:   domain.StockDelta{Trays: 0, Loose: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ItemStockDelta(tt.txType, tt.item)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccumulateStockDeltas(t *testing.T) {
	items := []domain.TransactionItem{
		{ProductID: "p1", QtyTrays: 2, QtyLoose: 10, BreakageQty: 5},
		{ProductID: "p2", QtyTrays: 1, QtyLoose: 0},
		{ProductID: "p1", QtyTrays: 1, QtyLoose: 2},
	}

	deltas := domain.AccumulateStockDeltas(domain.Sale, items)

	assert.Len(t, deltas, 2)
	assert.Equal(t, domain.StockDelta{Trays: -3, Loose: -17}, deltas["p1"])
	assert.Equal(t, domain.StockDelta{Trays: -1, Loose: 0}, deltas["p2"])
}

func TestBalanceChange(t *testing.T) {
	amount := decimal.NewFromInt(900)

	tests := []struct {
		name   string
		txType domain.TransactionType
		want   decimal.Decimal
	}{
		{"sale raises the contact's debt", domain.Sale, amount},
		{"payment out raises the contact's debt", domain.PaymentOut, amount},
		{"purchase lowers the balance", domain.Purchase, amount.Neg()},
		{"payment in lowers the balance", domain.PaymentIn, amount.Neg()},
		{"unknown type changes nothing", domain.TransactionType("REFUND"), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BalanceChange(tt.txType, amount)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestTransactionType_AllowsItems(t *testing.T) {
	assert.True(t, domain.Sale.AllowsItems())
	assert.True(t, domain.Purchase.AllowsItems())
	assert.False(t, domain.PaymentIn.AllowsItems())
	assert.False(t, domain.PaymentOut.AllowsItems())
}

func TestStockLevel_IsNegative(t *testing.T) {
	assert.False(t, domain.StockLevel{Trays: 0, Loose: 0}.IsNegative())
	assert.True(t, domain.StockLevel{Trays: -1, Loose: 5}.IsNegative())
	assert.True(t, domain.StockLevel{Trays: 3, Loose: -2}.IsNegative())
}
