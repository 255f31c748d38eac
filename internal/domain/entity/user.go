// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity of the account store, representing a registered
// customer or administrator. The password hash is carried only for
// credential verification and is never serialized to API responses.
type User struct {
	ID           int64     `json:"id"`        // Numeric identity assigned by the store.
	Username     string    `json:"username"`  // Unique display handle, used for profile updates.
	Email        string    `json:"email"`     // Unique login identifier.
	PasswordHash string    `json:"-"`         // bcrypt hash of the credential; plaintext is never persisted.
	FullName     string    `json:"full_name"` // The user's full display name.
	Address      string    `json:"address"`   // Free-text shipping address.
	Role         Role      `json:"role"`      // Access role: customer or admin.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
