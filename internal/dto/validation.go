package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator that understands the transfer-object tags:
// "mobile" for ten digit mobile numbers, "recordnumber" for twelve digit loan
// and card numbers, and numeric comparisons on decimal.Decimal fields.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return domain.IsMobileNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("recordnumber", func(fl validator.FieldLevel) bool {
		return domain.IsRecordNumber(fl.Field().String())
	})

	return v
}
