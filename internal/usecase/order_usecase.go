package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Actor identifies the authenticated principal performing an operation.
type Actor struct {
	UserID int64
	Role   entity.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// OrderLineInput is one requested line of a new order. Price is accepted for
// wire compatibility with existing clients but the engine re-reads the
// catalog price inside the transaction; the client value is never trusted.
type OrderLineInput struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price"`
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	Lines []OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// OrderDetails bundles an order with its enriched lines for detail reads.
type OrderDetails struct {
	Order *entity.Order       `json:"purchase"`
	Lines []*entity.OrderLine `json:"items"`
}

// OrderUsecase defines the interface for the transactional order engine.
type OrderUsecase interface {
	// PlaceOrder creates the order, its lines, and the stock decrements as
	// one atomic unit. Either every effect commits or none do.
	PlaceOrder(ctx context.Context, userID int64, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns an order with its lines. Only the owner or an admin
	// may read it.
	GetOrder(ctx context.Context, actor Actor, id int64) (*OrderDetails, error)

	// ListMyOrders returns the acting principal's orders, newest first.
	ListMyOrders(ctx context.Context, userID int64) ([]*entity.Order, error)

	// ListAllOrders returns every order. Admin only.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus changes an order's status. Admin only.
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*entity.Order, error)

	// DeleteOrder removes an order and cascades its lines. Admin only.
	DeleteOrder(ctx context.Context, id int64) error
}
