package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the guarded update
// would drive the committed stock value negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAll lists every product, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByCategory lists products with an exact category match, newest first.
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// Search lists products whose name, description or category contains the
	// term, case-insensitively.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int64) error

	// DecrementStock atomically subtracts quantity from the product's stock
	// and returns the new value. It fails with ErrInsufficientStock when the
	// remaining stock does not cover the quantity, leaving the row untouched.
	DecrementStock(ctx context.Context, id int64, quantity int) (int, error)
}
