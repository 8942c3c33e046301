package domain

import "github.com/shopspring/decimal"

// StockDelta is the signed tray/loose stock change a posting applies to one
// product.
type StockDelta struct {
	Trays int
	Loose int
}

// Add accumulates another delta into this one.
func (d StockDelta) Add(other StockDelta) StockDelta {
	return StockDelta{Trays: d.Trays + other.Trays, Loose: d.Loose + other.Loose}
}

// IsZero reports whether the delta changes nothing.
func (d StockDelta) IsZero() bool {
	return d.Trays == 0 && d.Loose == 0
}

// ItemStockDelta derives the stock change one line item causes.
//
// Purchases add stock, every other type removes it. Breakage is subtracted
// from the loose count unconditionally: eggs broken during intake or
// delivery are gone either way.
func ItemStockDelta(txType TransactionType, item TransactionItem) StockDelta {
	trays := item.QtyTrays
	loose := item.QtyLoose
	if txType != Purchase {
		trays = -trays
		loose = -loose
	}
	return StockDelta{Trays: trays, Loose: loose - item.BreakageQty}
}

// AccumulateStockDeltas folds the per-item deltas into one delta per product.
func AccumulateStockDeltas(txType TransactionType, items []TransactionItem) map[string]StockDelta {
	deltas := make(map[string]StockDelta, len(items))
	for _, item := range items {
		deltas[item.ProductID] = deltas[item.ProductID].Add(ItemStockDelta(txType, item))
	}
	return deltas
}

// PostingResult is what a successful posting hands back: the stored
// transaction plus any non-fatal warnings (negative stock).
type PostingResult struct {
	Transaction Transaction
	Warnings    []string
}

// BalanceChange derives the signed delta a posting applies to the
// counterparty's running balance.
//
// The convention: the balance rises when the contact's debt to the business
// rises (sales, payments out) and falls when the business's debt rises or is
// settled (purchases, payments in).
func BalanceChange(txType TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case Sale, PaymentOut:
		return amount
	case Purchase, PaymentIn:
		return amount.Neg()
	}
	return decimal.Zero
}
