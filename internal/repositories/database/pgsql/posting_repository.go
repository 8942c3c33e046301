package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/eggkhata/egg_khata_app/internal/models"
	"github.com/eggkhata/egg_khata_app/internal/utils/mapping"
	"github.com/eggkhata/egg_khata_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// defaultLedgerPageSize caps a khata page when the caller does not pass a limit.
const defaultLedgerPageSize = 20

type PgxPostingRepository struct {
	BaseRepository
	contactRepo portsrepo.ContactRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// newPgxPostingRepository creates a new repository for posted transactions.
func newPgxPostingRepository(pool *pgxpool.Pool, contactRepo portsrepo.ContactRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portsrepo.PostingRepositoryFacade {
	return &PgxPostingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		contactRepo:    contactRepo,
		productRepo:    productRepo,
	}
}

var _ portsrepo.PostingRepositoryFacade = (*PgxPostingRepository)(nil)

const transactionColumns = `transaction_id, contact_id, type, amount, txn_date, description, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var description sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.ContactID,
		&m.Type,
		&m.Amount,
		&m.Date,
		&description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		m.Description = description.String
	}
	return &m, nil
}

// SavePosting persists a transaction and its items, applies the stock deltas
// and the contact balance change, all within one DB transaction.
//
// Lock order is contact first, then products sorted by ID, so concurrent
// postings against overlapping rows serialize instead of deadlocking. The
// post-update stock level per touched product is returned so the service can
// surface negative-stock warnings.
func (r *PgxPostingRepository) SavePosting(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem, stockDeltas map[string]domain.StockDelta, balanceChange decimal.Decimal) (map[string]domain.StockLevel, error) {
	dbTx, err := r.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, dbTx)

	now := txn.CreatedAt
	userID := txn.CreatedBy

	// 1. Insert the transaction row.
	m := mapping.ToModelTransaction(txn)
	var description sql.NullString
	if m.Description != "" {
		description = sql.NullString{String: m.Description, Valid: true}
	}
	txnQuery := `
		INSERT INTO transactions (transaction_id, contact_id, type, amount, txn_date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = dbTx.Exec(ctx, txnQuery,
		m.TransactionID,
		m.ContactID,
		m.Type,
		m.Amount,
		m.Date,
		description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	// 2. Lock the contact row.
	if _, err := r.contactRepo.FindContactByIDForUpdate(ctx, dbTx, txn.ContactID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to lock contact for update", err)
	}

	// 3. Lock every touched product row.
	productIDs := make([]string, 0, len(stockDeltas))
	for productID := range stockDeltas {
		productIDs = append(productIDs, productID)
	}
	if _, err := r.productRepo.FindProductsByIDsForUpdate(ctx, dbTx, productIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to lock products for update", err)
	}

	// 4. Insert the line items as a batch.
	if len(items) > 0 {
		itemQuery := `
			INSERT INTO transaction_items (item_id, transaction_id, product_id, qty_trays, qty_loose, rate_applied, breakage_qty, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		batch := &pgx.Batch{}
		for _, item := range items {
			mi := mapping.ToModelTransactionItem(item)
			mi.CreatedAt = now
			mi.LastUpdatedAt = now
			mi.CreatedBy = userID
			mi.LastUpdatedBy = userID
			batch.Queue(itemQuery,
				mi.ItemID,
				mi.TransactionID,
				mi.ProductID,
				mi.QtyTrays,
				mi.QtyLoose,
				mi.RateApplied,
				mi.BreakageQty,
				mi.CreatedAt,
				mi.CreatedBy,
				mi.LastUpdatedAt,
				mi.LastUpdatedBy,
			)
		}
		br := dbTx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to execute item batch for transaction "+m.TransactionID, err)
		}
	}

	// 5. Apply stock deltas and capture the resulting levels.
	stockLevels, err := r.productRepo.ApplyStockDeltasInTx(ctx, dbTx, stockDeltas, userID, now)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update product stock", err)
	}

	// 6. Apply the balance change to the contact.
	if err := r.contactRepo.ApplyBalanceChangeInTx(ctx, dbTx, txn.ContactID, balanceChange, userID, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update contact balance", err)
	}

	if err := r.Commit(ctx, dbTx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit posting "+m.TransactionID, err)
	}

	return stockLevels, nil
}

// FindTransactionByID retrieves a transaction with its items.
func (r *PgxPostingRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(*m)
	itemsByTxn, err := r.findItemsByTransactionIDs(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	d.Items = itemsByTxn[transactionID]
	return &d, nil
}

// ListTransactionsByContactID retrieves one page of a contact's transactions
// newest first, with items and item products embedded. Pagination is
// token-based on the (txn_date, created_at) cursor pair; one extra row is
// fetched to decide whether a next page exists.
func (r *PgxPostingRepository) ListTransactionsByContactID(ctx context.Context, contactID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE contact_id = $1`
	args := []any{contactID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		// Tuple comparison keeps the cursor condition aligned with the sort order.
		query += ` AND (txn_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY txn_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for contact %s: %w", contactID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var pageToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		pageToken = &token
	}

	if len(txns) == 0 {
		return txns, nil, nil
	}

	txnIDs := make([]string, len(txns))
	for i := range txns {
		txnIDs[i] = txns[i].TransactionID
	}
	itemsByTxn, err := r.findItemsByTransactionIDs(ctx, txnIDs)
	if err != nil {
		return nil, nil, err
	}
	for i := range txns {
		txns[i].Items = itemsByTxn[txns[i].TransactionID]
	}
	return txns, pageToken, nil
}

// findItemsByTransactionIDs loads items for the given transactions, grouped
// by transaction ID, with each item's product joined in.
func (r *PgxPostingRepository) findItemsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.TransactionItem, error) {
	query := `
		SELECT ti.item_id, ti.transaction_id, ti.product_id, ti.qty_trays, ti.qty_loose, ti.rate_applied, ti.breakage_qty,
		       ti.created_at, ti.created_by, ti.last_updated_at, ti.last_updated_by,
		       p.product_id, p.name, p.current_stock_qty_trays, p.current_stock_qty_loose,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM transaction_items ti
		JOIN products p ON p.product_id = ti.product_id
		WHERE ti.transaction_id = ANY($1)
		ORDER BY ti.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction items: %w", err)
	}
	defer rows.Close()

	itemsByTxn := make(map[string][]domain.TransactionItem)
	for rows.Next() {
		var mi models.TransactionItem
		var mp models.Product
		err := rows.Scan(
			&mi.ItemID,
			&mi.TransactionID,
			&mi.ProductID,
			&mi.QtyTrays,
			&mi.QtyLoose,
			&mi.RateApplied,
			&mi.BreakageQty,
			&mi.CreatedAt,
			&mi.CreatedBy,
			&mi.LastUpdatedAt,
			&mi.LastUpdatedBy,
			&mp.ProductID,
			&mp.Name,
			&mp.CurrentStockQtyTrays,
			&mp.CurrentStockQtyLoose,
			&mp.CreatedAt,
			&mp.CreatedBy,
			&mp.LastUpdatedAt,
			&mp.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction item row: %w", err)
		}
		item := mapping.ToDomainTransactionItem(mi)
		product := mapping.ToDomainProduct(mp)
		item.Product = &product
		itemsByTxn[mi.TransactionID] = append(itemsByTxn[mi.TransactionID], item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction item rows: %w", rows.Err())
	}
	return itemsByTxn, nil
}
