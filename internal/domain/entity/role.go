// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, falling back to customer for
// unknown values so stored rows with legacy role labels stay usable.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleCustomer
	}

	return role
}
