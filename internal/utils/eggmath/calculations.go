// Package eggmath holds the tray/loose arithmetic shared by services and
// repositories so the conversion stays consistent everywhere.
package eggmath

import (
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalEggs converts a tray/loose pair to a single egg count.
func TotalEggs(qtyTrays, qtyLoose int) int {
	return qtyTrays*domain.EggsPerTray + qtyLoose
}

// LineValue is the monetary value of one line item: traded eggs times the
// per-egg rate. Breakage is not billed.
func LineValue(item domain.TransactionItem) decimal.Decimal {
	return decimal.NewFromInt(int64(TotalEggs(item.QtyTrays, item.QtyLoose))).Mul(item.RateApplied)
}

// ItemsTotal sums the line values of all items on a posting. A transaction
// carrying items must have an amount equal to this sum.
func ItemsTotal(items []domain.TransactionItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineValue(item))
	}
	return total
}
