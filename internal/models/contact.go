package models

import "github.com/shopspring/decimal"

// ContactType distinguishes vendors from customers.
type ContactType string

const (
	Vendor   ContactType = "VENDOR"
	Customer ContactType = "CUSTOMER"
)

// Contact is the DB row for a counterparty in the khata.
type Contact struct {
	ContactID       string          `db:"contact_id"`
	Name            string          `db:"name"`
	Type            ContactType     `db:"type"`
	Phone           string          `db:"phone"` // nullable
	CurrentBalance  decimal.Decimal `db:"current_balance"`
	PriceAdjustment decimal.Decimal `db:"price_adjustment"`
	AuditFields
}
