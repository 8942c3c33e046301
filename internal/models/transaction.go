package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the business event a transaction row records.
type TransactionType string

const (
	Sale       TransactionType = "SALE"
	Purchase   TransactionType = "PURCHASE"
	PaymentIn  TransactionType = "PAYMENT_IN"
	PaymentOut TransactionType = "PAYMENT_OUT"
)

// Transaction is the DB row for one immutable ledger entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	ContactID     string          `db:"contact_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"txn_date"`
	Description   string          `db:"description"` // nullable
	AuditFields
}

// TransactionItem is the DB row for one line item of a transaction.
type TransactionItem struct {
	ItemID        string          `db:"item_id"`
	TransactionID string          `db:"transaction_id"`
	ProductID     string          `db:"product_id"`
	QtyTrays      int             `db:"qty_trays"`
	QtyLoose      int             `db:"qty_loose"`
	RateApplied   decimal.Decimal `db:"rate_applied"`
	BreakageQty   int             `db:"breakage_qty"`
	AuditFields
}
