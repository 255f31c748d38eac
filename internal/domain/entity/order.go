// Package entity contains the core business objects of the project.
package entity

import "time"

// Order is a committed purchase owned by a user. An order and its lines are
// created together in one atomic unit and never partially exist.
type Order struct {
	ID          int64       `json:"id"`                  // Numeric identity assigned by the store.
	UserID      int64       `json:"user_id"`             // Owning account.
	TotalAmount float64     `json:"total_amount"`        // Server-computed sum of line quantity * unit price.
	Status      OrderStatus `json:"status"`              // pending, completed or cancelled.
	Username    string      `json:"username,omitempty"`  // Owning account's username, populated on reads.
	FullName    string      `json:"full_name,omitempty"` // Owning account's full name, populated on reads.
	CreatedAt   time.Time   `json:"created_at"`          // Timestamp of when this order was placed.
	UpdatedAt   time.Time   `json:"updated_at"`          // Timestamp of the last status change.
}

// OrderLine is one (product, quantity, price) entry within an order. The
// unit price is a snapshot captured at purchase time, not a live reference
// to the product's current price.
type OrderLine struct {
	ID          int64   `json:"id"`                     // Numeric identity assigned by the store.
	OrderID     int64   `json:"purchase_id"`            // Owning order; lines are cascade-deleted with it.
	ProductID   int64   `json:"product_id"`             // Referenced catalog item.
	Quantity    int     `json:"quantity"`               // Units purchased, always positive.
	UnitPrice   float64 `json:"price"`                  // Price per unit at purchase time.
	ProductName string  `json:"product_name,omitempty"` // Referenced product's name, populated on reads.
	ImageURL    string  `json:"image_url,omitempty"`    // Referenced product's image, populated on reads.
}
