package dto

import (
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name                 string `json:"name" binding:"required"`
	InitialStockQtyTrays int    `json:"initialStockQtyTrays" binding:"gte=0"`
	InitialStockQtyLoose int    `json:"initialStockQtyLoose" binding:"gte=0"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock is deliberately absent; it only moves through postings.
type UpdateProductRequest struct {
	Name *string `json:"name"` // Optional: New name
}

// ProductResponse defines the data returned for a product.
// Mirrors domain.Product.
type ProductResponse struct {
	ProductID            string    `json:"productID"`
	Name                 string    `json:"name"`
	CurrentStockQtyTrays int       `json:"currentStockQtyTrays"`
	CurrentStockQtyLoose int       `json:"currentStockQtyLoose"`
	CreatedAt            time.Time `json:"createdAt"`
	CreatedBy            string    `json:"createdBy"`
	LastUpdatedAt        time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy        string    `json:"lastUpdatedBy"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:            p.ProductID,
		Name:                 p.Name,
		CurrentStockQtyTrays: p.CurrentStockQtyTrays,
		CurrentStockQtyLoose: p.CurrentStockQtyLoose,
		CreatedAt:            p.CreatedAt,
		CreatedBy:            p.CreatedBy,
		LastUpdatedAt:        p.LastUpdatedAt,
		LastUpdatedBy:        p.LastUpdatedBy,
	}
}

// ToListProductsResponse converts a slice of domain.Product to the list DTO
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: res}
}
