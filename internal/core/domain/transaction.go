package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the business event a posting records.
type TransactionType string

const (
	Sale       TransactionType = "SALE"
	Purchase   TransactionType = "PURCHASE"
	PaymentIn  TransactionType = "PAYMENT_IN"
	PaymentOut TransactionType = "PAYMENT_OUT"
)

// IsValid reports whether the transaction type is one of the four enum values.
func (t TransactionType) IsValid() bool {
	switch t {
	case Sale, Purchase, PaymentIn, PaymentOut:
		return true
	}
	return false
}

// AllowsItems reports whether line items may accompany this transaction type.
// Payments carry an amount only.
func (t TransactionType) AllowsItems() bool {
	return t == Sale || t == Purchase
}

// Transaction is an immutable ledger entry for one business event.
// It is created exactly once by the posting engine and never mutated.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	ContactID     string            `json:"contactID"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"` // total monetary value, non-negative
	Date          time.Time         `json:"date"`
	Description   string            `json:"description,omitempty"`
	Items         []TransactionItem `json:"items,omitempty"` // loaded separately
	AuditFields
}

// TransactionItem is a line item owned by exactly one transaction and
// referencing exactly one product. Immutable after creation.
type TransactionItem struct {
	ItemID        string          `json:"itemID"`
	TransactionID string          `json:"transactionID"`
	ProductID     string          `json:"productID"`
	QtyTrays      int             `json:"qtyTrays"`
	QtyLoose      int             `json:"qtyLoose"`
	RateApplied   decimal.Decimal `json:"rateApplied"` // per-egg rate at posting time
	BreakageQty   int             `json:"breakageQty"` // eggs lost, reduces loose stock only
	Product       *Product        `json:"product,omitempty"`
	AuditFields
}

// TotalEggs is the egg count the line trades (breakage excluded).
func (i TransactionItem) TotalEggs() int {
	return i.QtyTrays*EggsPerTray + i.QtyLoose
}
