package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductInput defines the fields for creating or replacing a catalog item.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url"`
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	// ListProducts returns every catalog item, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single catalog item by ID.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// SearchProducts returns items whose name, description or category
	// contains the term, case-insensitively.
	SearchProducts(ctx context.Context, term string) ([]*entity.Product, error)

	// ListByCategory returns items with an exact category match.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// CreateProduct adds a new catalog item. Admin only.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a catalog item's fields. Admin only.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog item. Admin only.
	DeleteProduct(ctx context.Context, id int64) error

	// AdjustStock subtracts delta units from the item's stock and returns the
	// new value; a negative delta restocks. Admin only — order placement
	// adjusts stock through its own transaction instead.
	AdjustStock(ctx context.Context, id int64, delta int) (int, error)
}
