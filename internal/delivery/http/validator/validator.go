// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for Echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New constructs the validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures are surfaced as the
// application's validation error so the error handler renders a 400 envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
