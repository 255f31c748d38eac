package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestStack(t *testing.T) (*echo.Echo, string, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	customerToken, err := tokenSvc.GenerateToken(5, entity.RoleCustomer)
	require.NoError(t, err)
	adminToken, err := tokenSvc.GenerateToken(1, entity.RoleAdmin)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		actor, ok := ActorFromContext(c)
		require.True(t, ok)

		return c.JSON(http.StatusOK, map[string]any{"user_id": actor.UserID})
	}, m.Authenticate)
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.Authenticate, m.RequireRole(entity.RoleAdmin))

	return e, customerToken, adminToken
}

func get(e *echo.Echo, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e, _, _ := newAuthTestStack(t)

	rec := get(e, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	e, customerToken, _ := newAuthTestStack(t)

	rec := get(e, "/me", customerToken) // missing "Bearer " prefix

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	e, _, _ := newAuthTestStack(t)

	rec := get(e, "/me", "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e, customerToken, _ := newAuthTestStack(t)

	rec := get(e, "/me", "Bearer "+customerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":5`)
}

func TestRequireRole_CustomerRejected(t *testing.T) {
	e, customerToken, _ := newAuthTestStack(t)

	rec := get(e, "/admin", "Bearer "+customerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	e, _, adminToken := newAuthTestStack(t)

	rec := get(e, "/admin", "Bearer "+adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}
