package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyRole   = "role"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// principal on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(keyRole).(entity.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: role information missing")
			}

			if role != requiredRole {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated principal stored by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	userID, ok := c.Get(keyUserID).(int64)
	if !ok {
		return usecase.Actor{}, false
	}

	role, ok := c.Get(keyRole).(entity.Role)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{UserID: userID, Role: role}, true
}
