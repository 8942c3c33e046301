package services

import (
	"context"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/dto"
)

// PostingSvc defines the posting engine: the only way balances and stock move.
type PostingSvc interface {
	// PostTransaction validates the request, derives balance and stock deltas
	// and persists everything atomically. Non-fatal warnings (stock gone
	// negative) ride along on the result.
	PostTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.PostingResult, error)

	// GetTransactionByID retrieves a posted transaction with its items.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// GetContactTransactions retrieves one page of a contact's transactions
	// newest first, items and products embedded. The returned token is non-nil
	// when another page exists.
	GetContactTransactions(ctx context.Context, contactID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
