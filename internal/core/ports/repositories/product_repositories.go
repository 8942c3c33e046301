package repositories

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products by their IDs.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CountProducts returns the number of product rows.
	CountProducts(ctx context.Context) (int, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details. Stock columns are
	// never touched here; stock only moves inside a posting.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductPostingSupport defines operations the posting engine needs within a
// database transaction.
type ProductPostingSupport interface {
	// FindProductsByIDsForUpdate selects products and locks them for update
	// within a transaction. Product IDs are sorted before locking so that
	// concurrent postings acquire row locks in a stable order.
	FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error)

	// ApplyStockDeltasInTx applies the signed tray/loose deltas per product
	// within the given transaction and returns the resulting stock levels.
	ApplyStockDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]domain.StockDelta, userID string, now time.Time) (map[string]domain.StockLevel, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
// This is a facade for clients that need access to all operations
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductPostingSupport
}
