// Package middleware contains the HTTP middleware chain: request scoping,
// authentication, and error rendering.
package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request an ID and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware is the constructor for RequestIDMiddleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Handle honors an incoming X-Request-Id header, generates one otherwise,
// and stores both the ID and a logger annotated with it on the request
// context so lower layers can correlate their logs.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.NewRequestID()
		}

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("requestID", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		return next(c)
	}
}
