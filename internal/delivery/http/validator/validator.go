// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "templateapi/internal/domain/errors"
)

type requestValidator struct {
	validate *validatorLib.Validate
}

// New creates an echo.Validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &requestValidator{
		validate: validatorLib.New(validatorLib.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and maps failures to the domain's
// validation error so the global error handler renders a 400 body.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
