package services

import (
	"context"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/dto"
)

// ContactReaderSvc defines read operations for contact data
type ContactReaderSvc interface {
	// GetContactByID retrieves a specific contact by its unique identifier.
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContacts retrieves contacts, optionally filtered by type.
	ListContacts(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error)
}

// ContactWriterSvc defines write operations for contact data
type ContactWriterSvc interface {
	// CreateContact persists a new contact with a zero starting balance.
	CreateContact(ctx context.Context, req dto.CreateContactRequest, creatorUserID string) (*domain.Contact, error)

	// UpdateContact updates a contact's name, phone or price adjustment.
	UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest, requestingUserID string) (*domain.Contact, error)
}

// ContactSvcFacade combines all contact-related service interfaces
// This is a facade for clients that need access to all operations
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}
