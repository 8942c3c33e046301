package repositories

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ContactReader defines read operations for contact data
type ContactReader interface {
	// FindContactByID retrieves a specific contact by its unique identifier.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContacts retrieves contacts, optionally filtered by type.
	ListContacts(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contact data
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error

	// UpdateContact updates an existing contact's details. The balance column
	// is never touched here; it only moves inside a posting.
	UpdateContact(ctx context.Context, contact domain.Contact) error
}

// ContactPostingSupport defines operations the posting engine needs within a
// database transaction.
type ContactPostingSupport interface {
	// FindContactByIDForUpdate selects a contact and locks its row for update.
	FindContactByIDForUpdate(ctx context.Context, tx pgx.Tx, contactID string) (*domain.Contact, error)

	// ApplyBalanceChangeInTx adds the signed delta to the contact's balance
	// within the given transaction.
	ApplyBalanceChangeInTx(ctx context.Context, tx pgx.Tx, contactID string, delta decimal.Decimal, userID string, now time.Time) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces
// This is a facade for clients that need access to all operations
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
	ContactPostingSupport
}
