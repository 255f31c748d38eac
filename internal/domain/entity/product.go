// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is a catalog item available for purchase. Stock is an observable
// committed value and never goes negative; it is mutated only by order
// placement or direct admin edits.
type Product struct {
	ID          int64     `json:"id"`          // Numeric identity assigned by the store.
	Name        string    `json:"name"`        // Product display name.
	Description string    `json:"description"` // Free-text description.
	Price       float64   `json:"price"`       // Current unit price, non-negative.
	Stock       int       `json:"stock"`       // Units available, non-negative.
	Category    string    `json:"category"`    // Category label used for browsing.
	ImageURL    string    `json:"image_url"`   // Optional image reference.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
