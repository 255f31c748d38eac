package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.AccessTTL = ttl

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("", time.Hour))

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(42, entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	// Issue a token that expired in the past by using a negative TTL on the
	// concrete service.
	expiredSvc := &jwtService{secret: "test-secret", accessTTL: -time.Minute}
	token, err := expiredSvc.GenerateToken(42, entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Nil(t, claims)
}
