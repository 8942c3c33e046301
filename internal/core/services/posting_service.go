package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/middleware"
	"github.com/eggkhata/egg_khata_app/internal/utils/eggmath"
	"github.com/shopspring/decimal"
)

var (
	ErrItemsNotAllowed = errors.New("line items are only allowed on SALE and PURCHASE transactions")
	ErrAmountMismatch  = errors.New("amount does not match the sum of item line values")
)

// postingService implements the posting engine. Every balance and stock
// movement in the system goes through PostTransaction.
type postingService struct {
	postingRepo portsrepo.PostingRepositoryFacade
	contactRepo portsrepo.ContactRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(postingRepo portsrepo.PostingRepositoryFacade, contactRepo portsrepo.ContactRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.PostingSvc {
	return &postingService{
		postingRepo: postingRepo,
		contactRepo: contactRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.PostingSvc = (*postingService)(nil)

// validateRequest applies every check that must pass before any write.
func (s *postingService) validateRequest(req dto.CreateTransactionRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.Type)
	}

	// Sales and purchases may be zero-valued (free replacement stock); a
	// payment of zero is meaningless and rejected.
	switch req.Type {
	case domain.Sale, domain.Purchase:
		if req.Amount.IsNegative() {
			return fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
		}
	case domain.PaymentIn, domain.PaymentOut:
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}
	}

	if len(req.Items) > 0 && !req.Type.AllowsItems() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrItemsNotAllowed)
	}

	for i, item := range req.Items {
		if item.QtyTrays < 0 || item.QtyLoose < 0 {
			return fmt.Errorf("%w: item %d has negative quantities", apperrors.ErrValidation, i)
		}
		if item.BreakageQty < 0 {
			return fmt.Errorf("%w: item %d has negative breakage", apperrors.ErrValidation, i)
		}
		if item.RateApplied.IsNegative() {
			return fmt.Errorf("%w: item %d has a negative rate", apperrors.ErrValidation, i)
		}
	}
	return nil
}

// PostTransaction validates the request, derives stock deltas and the balance
// change, and persists everything in one atomic write. A validation or
// missing-entity failure leaves no partial state behind.
func (s *postingService) PostTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// The contact must exist before anything is written.
	if _, err := s.contactRepo.FindContactByID(ctx, req.ContactID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: contact %s", apperrors.ErrNotFound, req.ContactID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	txnDate := now
	if req.Date != nil {
		txnDate = *req.Date
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ContactID:     req.ContactID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          txnDate,
		Description:   req.Description,
		AuditFields:   audit,
	}

	items := make([]domain.TransactionItem, len(req.Items))
	productIDs := make([]string, 0, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = domain.TransactionItem{
			ItemID:        uuid.NewString(),
			TransactionID: txn.TransactionID,
			ProductID:     itemReq.ProductID,
			QtyTrays:      itemReq.QtyTrays,
			QtyLoose:      itemReq.QtyLoose,
			RateApplied:   itemReq.RateApplied,
			BreakageQty:   itemReq.BreakageQty,
			AuditFields:   audit,
		}
		productIDs = append(productIDs, itemReq.ProductID)
	}

	// Every referenced product must exist; a single unknown product fails the
	// whole posting rather than silently skipping the line.
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, ok := products[item.ProductID]; !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
	}

	// With items present the header amount must equal the sum of the line
	// values. Breakage is stock loss, not billable quantity.
	if len(items) > 0 {
		expected := eggmath.ItemsTotal(items)
		if !txn.Amount.Equal(expected) {
			return nil, fmt.Errorf("%w: %s (amount %s, items total %s)",
				apperrors.ErrValidation, ErrAmountMismatch, txn.Amount.String(), expected.String())
		}
	}

	stockDeltas := domain.AccumulateStockDeltas(txn.Type, items)
	balanceChange := domain.BalanceChange(txn.Type, txn.Amount)

	stockLevels, err := s.postingRepo.SavePosting(ctx, txn, items, stockDeltas, balanceChange)
	if err != nil {
		logger.Error("Failed to save posting",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("contact_id", txn.ContactID),
			slog.String("error", err.Error()))
		return nil, err
	}

	txn.Items = items
	result := &domain.PostingResult{
		Transaction: txn,
		Warnings:    negativeStockWarnings(stockLevels, products),
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

// negativeStockWarnings builds a warning list for products whose stock went
// below zero, sorted by product name so output is stable. Negative stock is
// allowed; it just gets surfaced.
func negativeStockWarnings(levels map[string]domain.StockLevel, products map[string]domain.Product) []string {
	type entry struct {
		name  string
		id    string
		level domain.StockLevel
	}

	entries := make([]entry, 0, len(levels))
	for productID, level := range levels {
		if !level.IsNegative() {
			continue
		}
		name := productID
		if p, ok := products[productID]; ok {
			name = p.Name
		}
		entries = append(entries, entry{name: name, id: productID, level: level})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].name != entries[j].name {
			return entries[i].name < entries[j].name
		}
		return entries[i].id < entries[j].id
	})

	var warnings []string
	for _, e := range entries {
		warnings = append(warnings, fmt.Sprintf("stock for %s is negative: %d trays, %d loose", e.name, e.level.Trays, e.level.Loose))
	}
	return warnings
}

// GetTransactionByID retrieves a posted transaction with its items.
func (s *postingService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.postingRepo.FindTransactionByID(ctx, transactionID)
}

// GetContactTransactions retrieves a page of a contact's khata: transactions
// newest first with items and products embedded, plus a token for the next
// page when more history exists.
func (s *postingService) GetContactTransactions(ctx context.Context, contactID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if _, err := s.contactRepo.FindContactByID(ctx, contactID); err != nil {
		return nil, nil, err
	}
	return s.postingRepo.ListTransactionsByContactID(ctx, contactID, limit, nextToken)
}
