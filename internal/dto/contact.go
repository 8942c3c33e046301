package dto

import (
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContactRequest defines the data needed to create a new contact.
// The balance always starts at zero; it only moves through postings.
type CreateContactRequest struct {
	Name            string             `json:"name" binding:"required"`
	Type            domain.ContactType `json:"type" binding:"required,oneof=VENDOR CUSTOMER"`
	Phone           string             `json:"phone"`           // Optional
	PriceAdjustment *decimal.Decimal   `json:"priceAdjustment"` // Optional, defaults to 0
}

// UpdateContactRequest defines the data allowed for updating a contact.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateContactRequest struct {
	Name            *string          `json:"name"`            // Optional: New name
	Phone           *string          `json:"phone"`           // Optional: New phone
	PriceAdjustment *decimal.Decimal `json:"priceAdjustment"` // Optional: New adjustment
}

// ContactResponse defines the data returned for a contact.
// Mirrors domain.Contact.
type ContactResponse struct {
	ContactID       string             `json:"contactID"`
	Name            string             `json:"name"`
	Type            domain.ContactType `json:"type"`
	Phone           string             `json:"phone,omitempty"`
	CurrentBalance  decimal.Decimal    `json:"currentBalance"`
	PriceAdjustment decimal.Decimal    `json:"priceAdjustment"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// ListContactsParams defines query parameters for listing contacts.
type ListContactsParams struct {
	Type *string `form:"type" binding:"omitempty,oneof=VENDOR CUSTOMER"`
}

// ListContactsResponse wraps the list of contacts.
type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// ToContactResponse converts a domain.Contact to ContactResponse DTO
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:       c.ContactID,
		Name:            c.Name,
		Type:            c.Type,
		Phone:           c.Phone,
		CurrentBalance:  c.CurrentBalance,
		PriceAdjustment: c.PriceAdjustment,
		CreatedAt:       c.CreatedAt,
		CreatedBy:       c.CreatedBy,
		LastUpdatedAt:   c.LastUpdatedAt,
		LastUpdatedBy:   c.LastUpdatedBy,
	}
}

// ToListContactsResponse converts a slice of domain.Contact to the list DTO
func ToListContactsResponse(contacts []domain.Contact) ListContactsResponse {
	res := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		res[i] = ToContactResponse(&c)
	}
	return ListContactsResponse{Contacts: res}
}
