package repositories

import (
	"context"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for posted transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its items.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByContactID retrieves a page of a contact's transactions
	// newest first, each with its items and the item products embedded. A nil
	// or empty nextToken starts at the newest transaction; the returned token
	// is non-nil when another page exists.
	ListTransactionsByContactID(ctx context.Context, contactID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// PostingWriter defines the single write operation of the posting engine
type PostingWriter interface {
	// SavePosting persists the transaction and its items, applies the stock
	// deltas and the contact balance change, all within ONE database
	// transaction with the contact and product rows locked for update.
	// It returns the post-update stock level per touched product so callers
	// can surface negative-stock warnings.
	SavePosting(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem, stockDeltas map[string]domain.StockDelta, balanceChange decimal.Decimal) (map[string]domain.StockLevel, error)
}

// PostingRepositoryFacade combines all posting-related repository interfaces
// This is a facade for clients that need access to all operations
type PostingRepositoryFacade interface {
	TransactionReader
	PostingWriter
}
