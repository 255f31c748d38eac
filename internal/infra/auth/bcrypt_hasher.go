// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

const (
	defaultBcryptCost        = 10
	defaultPasswordMinLength = 8
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost factor and
// password length floor come from configuration, with safe defaults.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	minLength := defaultPasswordMinLength
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.PasswordMinLength > 0 {
			minLength = cfg.Auth.PasswordMinLength
		}
	}

	return &bcryptHasher{cost: cost, minLength: minLength}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. Used by
// tests that want a low cost to keep hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, minLength: defaultPasswordMinLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt embeds the per-record salt in the resulting hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// bcrypt's comparison is constant-time with respect to the hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength verifies the plaintext meets the configured floor.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is shorter than the configured minimum length")
	}

	return nil
}
