// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Address  string `json:"address"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	FullName string `json:"full_name" validate:"required"`
	Address  string `json:"address"`
}

// --- Output DTOs ---

// AuthOutput returns the account together with a freshly issued bearer token.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"token"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account and issues a token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the account of the acting principal.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile mutates the acting principal's profile fields.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)

	// ListUsers returns every account. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single account by ID. Admin only.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, id int64) error
}
