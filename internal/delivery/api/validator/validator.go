// Package validator adapts go-playground/validator to echo.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with required struct tags enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validator.Struct(i))
}

// Var validates a single value against a tag.
func (cv *CustomValidator) Var(field any, tag string) error {
	return errors.WithStack(cv.validator.Var(field, tag))
}
