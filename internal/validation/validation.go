// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or the "amount" money format) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"strings"

	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; validator caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under the names the client submitted them with.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "query", "param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// amount: a non-negative decimal number expressed in major units.
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := money.ParseMinorUnits(fl.Field().String())
		return err == nil
	})

	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}
