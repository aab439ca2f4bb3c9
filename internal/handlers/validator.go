package handlers

import (
	"github.com/labstack/echo/v4"

	"demobank/internal/validation"
)

// CustomValidator implements echo.Validator on top of the shared validator
// instance so custom tags (pin, account_number, positive_amount) apply to
// every bound request.
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
