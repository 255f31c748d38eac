package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Creation and deletion of an order together with its lines must happen
// inside a TransactionManager unit so no partial order is ever observable.
type OrderRepository interface {
	// Create persists a new order row and fills in its generated ID and timestamps.
	Create(ctx context.Context, order *entity.Order) error

	// CreateLine persists a single order line for an already created order.
	CreateLine(ctx context.Context, line *entity.OrderLine) error

	// FindByID retrieves a single order joined with its owning user.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindLines lists the order's lines enriched with product name and image.
	FindLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)

	// FindByUserID lists a user's orders, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindAll lists every order, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus changes the order's status and returns the updated order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)

	// DeleteLines removes every line belonging to the order.
	DeleteLines(ctx context.Context, orderID int64) error

	// Delete removes the order row itself.
	Delete(ctx context.Context, id int64) error
}
