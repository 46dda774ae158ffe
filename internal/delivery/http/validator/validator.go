// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are validated from their struct tags.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation. The raw ValidationErrors are
// returned untouched; the central error handler renders them as a
// validation-error problem with the per-field map.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
