// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates an order awaiting completion.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusCompleted indicates a fulfilled order.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled indicates a cancelled order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}
