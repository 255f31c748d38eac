package auth

import (
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))

	err := hasher.ValidatePasswordStrength("short")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestNewBcryptHasher_ConfigOverrides(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        bcrypt.MinCost,
			PasswordMinLength: 12,
		},
	}

	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidatePasswordStrength("elevenchars"))
	assert.NoError(t, hasher.ValidatePasswordStrength("twelve chars"))
}

func TestNewBcryptHasher_NilConfigUsesDefaults(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.Error(t, hasher.ValidatePasswordStrength("seven77"))
	assert.NoError(t, hasher.ValidatePasswordStrength("eight888"))
}
