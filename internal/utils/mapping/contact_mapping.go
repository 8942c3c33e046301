package mapping

import (
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/models"
)

// ToModelContact converts a domain Contact to a model Contact
func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:       d.ContactID,
		Name:            d.Name,
		Type:            models.ContactType(d.Type),
		Phone:           d.Phone,
		CurrentBalance:  d.CurrentBalance,
		PriceAdjustment: d.PriceAdjustment,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContact converts a model Contact to a domain Contact
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:       m.ContactID,
		Name:            m.Name,
		Type:            domain.ContactType(m.Type),
		Phone:           m.Phone,
		CurrentBalance:  m.CurrentBalance,
		PriceAdjustment: m.PriceAdjustment,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContactSlice converts a slice of model Contacts to domain Contacts
func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}
