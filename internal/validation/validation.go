package validation

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MinFieldLength is the shortest a required text field may be after trimming.
const MinFieldLength = 2

// Indian mobile numbers: optional +91 prefix, optional leading 0 or 91,
// then ten digits starting with 6-9.
var phonePattern = regexp.MustCompile(`^(\+91[\-\s]?)?0?(91)?[6789]\d{9}$`)

// IsPhoneNumber reports whether s looks like an Indian mobile number.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// MinLength reports whether s has at least n characters after trimming.
func MinLength(s string, n int) bool {
	return len(strings.TrimSpace(s)) >= n
}

// IsPositive reports whether v is strictly greater than zero.
func IsPositive(v float64) bool {
	return v > 0
}

// RegisterBindings installs the custom binding tags the form handlers use,
// so a bad contact number is rejected before it reaches the store.
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
			return IsPhoneNumber(fl.Field().String())
		})
	}
}
