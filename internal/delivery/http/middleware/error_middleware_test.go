package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.GET("/test", handler)

	return e
}

func doRequest(t *testing.T, e *echo.Echo) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	e := newTestEcho(func(c echo.Context) error {
		return domainerrors.ErrInsufficientStock
	})

	rec, body := doRequest(t, e)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Error.Code)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	e := newTestEcho(func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration")
	})

	rec, body := doRequest(t, e)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	e := newTestEcho(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	})

	rec, body := doRequest(t, e)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Invalid or expired token", body.Message)
}

func TestHandleHTTPError_UnknownErrorHidesDetails(t *testing.T) {
	e := newTestEcho(func(c echo.Context) error {
		return errors.New("pq: connection refused at 10.0.0.3")
	})

	rec, body := doRequest(t, e)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "10.0.0.3")
	assert.NotContains(t, body.Error.Details, "10.0.0.3")
}
