package domain

import "github.com/shopspring/decimal"

// ContactType distinguishes the two sides of the khata.
type ContactType string

const (
	Vendor   ContactType = "VENDOR"
	Customer ContactType = "CUSTOMER"
)

// IsValid reports whether the contact type is one of the known enum values.
func (t ContactType) IsValid() bool {
	return t == Vendor || t == Customer
}

// Contact is a vendor or customer the business trades with.
//
// CurrentBalance follows the khata sign convention: positive means the
// contact owes the business money, negative means the business owes the
// contact. The balance is only ever moved by the posting engine.
type Contact struct {
	ContactID       string          `json:"contactID"`
	Name            string          `json:"name"`
	Type            ContactType     `json:"type"`
	Phone           string          `json:"phone,omitempty"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"` // additive offset on the board rate
	AuditFields
}
