// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Expose decimal amounts to the numeric validators (gt, gte, ...).
		v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("money", validateMoney)
	}
}

// decimalToFloat lets validator tags like gt=0 apply to decimal.Decimal
// fields. Used only for range checks; money arithmetic stays decimal.
func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// validateMoney rejects amounts with more than two fractional digits.
// Sub-cent values cannot be represented in the ledger and must not be
// silently truncated. The custom type func has already converted decimal
// fields to float64 by the time this runs; NewFromFloat recovers the
// shortest exact decimal, so 0.005 still shows three fractional digits.
func validateMoney(fl validator.FieldLevel) bool {
	v := fl.Field()
	if v.Kind() == reflect.Float64 {
		return decimal.NewFromFloat(v.Float()).Exponent() >= -2
	}
	return true
}

// ValidMoney reports whether an amount is strictly positive with at most
// two fractional digits. Services use this for checks that must hold even
// when a caller bypasses request binding.
func ValidMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Exponent() >= -2
}
