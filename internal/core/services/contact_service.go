package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// contactService provides contact management operations.
type contactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

// CreateContact persists a new contact. The balance always starts at zero
// regardless of input; it only ever moves through the posting engine.
func (s *contactService) CreateContact(ctx context.Context, req dto.CreateContactRequest, creatorUserID string) (*domain.Contact, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid contact type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: contact name is required", apperrors.ErrValidation)
	}

	adjustment := decimal.Zero
	if req.PriceAdjustment != nil {
		adjustment = *req.PriceAdjustment
	}

	now := time.Now().UTC()
	contact := domain.Contact{
		ContactID:       uuid.NewString(),
		Name:            req.Name,
		Type:            req.Type,
		Phone:           req.Phone,
		CurrentBalance:  decimal.Zero,
		PriceAdjustment: adjustment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		logger.Error("Failed to save contact", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Contact created", slog.String("contact_id", contact.ContactID), slog.String("type", string(contact.Type)))
	return &contact, nil
}

// GetContactByID retrieves a specific contact.
func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	return s.contactRepo.FindContactByID(ctx, contactID)
}

// ListContacts retrieves contacts, optionally filtered by type.
func (s *contactService) ListContacts(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error) {
	if contactType != nil && !contactType.IsValid() {
		return nil, fmt.Errorf("%w: invalid contact type %q", apperrors.ErrValidation, *contactType)
	}
	return s.contactRepo.ListContacts(ctx, contactType)
}

// UpdateContact updates a contact's name, phone or price adjustment. The
// balance cannot be changed here.
func (s *contactService) UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest, requestingUserID string) (*domain.Contact, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: contact name cannot be empty", apperrors.ErrValidation)
		}
		contact.Name = *req.Name
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.PriceAdjustment != nil {
		contact.PriceAdjustment = *req.PriceAdjustment
	}
	contact.LastUpdatedAt = time.Now().UTC()
	contact.LastUpdatedBy = requestingUserID

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		logger.Error("Failed to update contact", slog.String("contact_id", contactID), slog.String("error", err.Error()))
		return nil, err
	}
	return contact, nil
}
