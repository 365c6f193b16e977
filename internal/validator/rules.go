package validator

import (
	"github.com/go-playground/validator/v10"

	"wantly_backend/internal/models"
)

// registerCustomRules wires the domain rules used by DTO tags.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
		return err
	}
	return v.RegisterValidation("comparison_mode", validateComparisonMode)
}

// validateCurrencyCode accepts only codes from the closed platform set.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.Currency(fl.Field().String()).Valid()
}

// validateComparisonMode accepts only the five budget comparison modes.
func validateComparisonMode(fl validator.FieldLevel) bool {
	return models.ComparisonMode(fl.Field().String()).Valid()
}
