package service

import (
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID int64       `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given principal.
	GenerateToken(userID int64, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns the resolved claims.
	ValidateToken(tokenString string) (*Claims, error)
}
