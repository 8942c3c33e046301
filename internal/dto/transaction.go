package dto

import (
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionItemRequest defines one line item of a posting.
type CreateTransactionItemRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	QtyTrays    int             `json:"qtyTrays" binding:"gte=0"`
	QtyLoose    int             `json:"qtyLoose" binding:"gte=0"`
	RateApplied decimal.Decimal `json:"rateApplied"`
	BreakageQty int             `json:"breakageQty" binding:"gte=0"`
}

// CreateTransactionRequest defines the data needed to post a transaction.
// Items are only accepted for SALE and PURCHASE; when present, Amount must
// equal the sum of the item line values.
type CreateTransactionRequest struct {
	ContactID   string                         `json:"contactID" binding:"required"`
	Type        domain.TransactionType         `json:"type" binding:"required,oneof=SALE PURCHASE PAYMENT_IN PAYMENT_OUT"`
	Amount      decimal.Decimal                `json:"amount"`
	Date        *time.Time                     `json:"date"` // Optional, defaults to now
	Description string                         `json:"description"`
	Items       []CreateTransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// TransactionItemResponse defines the data returned for a line item.
type TransactionItemResponse struct {
	ItemID      string           `json:"itemID"`
	ProductID   string           `json:"productID"`
	QtyTrays    int              `json:"qtyTrays"`
	QtyLoose    int              `json:"qtyLoose"`
	RateApplied decimal.Decimal  `json:"rateApplied"`
	BreakageQty int              `json:"breakageQty"`
	Product     *ProductResponse `json:"product,omitempty"`
}

// TransactionResponse defines the data returned for a posted transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                    `json:"transactionID"`
	ContactID     string                    `json:"contactID"`
	Type          domain.TransactionType    `json:"type"`
	Amount        decimal.Decimal           `json:"amount"`
	Date          time.Time                 `json:"date"`
	Description   string                    `json:"description,omitempty"`
	Items         []TransactionItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	CreatedBy     string                    `json:"createdBy"`
}

// PostingResponse wraps the posted transaction plus non-fatal warnings, such
// as a product's stock going negative.
type PostingResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// ListTransactionsParams defines query parameters for the transaction history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of a contact's transaction history
// ("khata" view). NextToken is present when more history exists.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionItemResponse converts a domain.TransactionItem to its DTO
func ToTransactionItemResponse(item *domain.TransactionItem) TransactionItemResponse {
	res := TransactionItemResponse{
		ItemID:      item.ItemID,
		ProductID:   item.ProductID,
		QtyTrays:    item.QtyTrays,
		QtyLoose:    item.QtyLoose,
		RateApplied: item.RateApplied,
		BreakageQty: item.BreakageQty,
	}
	if item.Product != nil {
		product := ToProductResponse(item.Product)
		res.Product = &product
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(txn.Items))
	for i := range txn.Items {
		items[i] = ToTransactionItemResponse(&txn.Items[i])
	}
	if len(items) == 0 {
		items = nil
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		ContactID:     txn.ContactID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Description:   txn.Description,
		Items:         items,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToListTransactionsResponse converts a page of domain.Transaction to the list DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
