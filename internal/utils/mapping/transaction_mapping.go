package mapping

import (
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ContactID:     d.ContactID,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ContactID:     m.ContactID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionItem converts a domain TransactionItem to a model row
func ToModelTransactionItem(d domain.TransactionItem) models.TransactionItem {
	return models.TransactionItem{
		ItemID:        d.ItemID,
		TransactionID: d.TransactionID,
		ProductID:     d.ProductID,
		QtyTrays:      d.QtyTrays,
		QtyLoose:      d.QtyLoose,
		RateApplied:   d.RateApplied,
		BreakageQty:   d.BreakageQty,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransactionItem converts a model row to a domain TransactionItem
func ToDomainTransactionItem(m models.TransactionItem) domain.TransactionItem {
	return domain.TransactionItem{
		ItemID:        m.ItemID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		QtyTrays:      m.QtyTrays,
		QtyLoose:      m.QtyLoose,
		RateApplied:   m.RateApplied,
		BreakageQty:   m.BreakageQty,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainTransactionItemSlice converts a slice of model items to domain items
func ToDomainTransactionItemSlice(ms []models.TransactionItem) []domain.TransactionItem {
	ds := make([]domain.TransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionItem(m)
	}
	return ds
}
