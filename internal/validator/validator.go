package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tripCodeRegex matches trip codes: uppercase alphanumeric, 4-20 chars,
// optional hyphen separators, no leading/trailing/consecutive hyphens.
var tripCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,}(-[A-Z0-9]+)*$`)

// validateTripCode validates that a string is a valid trip code
func validateTripCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) >= 4 && len(code) <= 20 && tripCodeRegex.MatchString(code)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tripcode", validateTripCode)

		// Report wire names (json/form tags) in validation errors instead of
		// Go struct field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}
