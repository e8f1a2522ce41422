package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Permissive phone pattern: digits, spaces, +, -, parentheses
	phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{5,20}$`)
	phoneDigit = regexp.MustCompile(`[0-9]`)
)

// RegisterValidators registers custom validators to the validator instance
// and makes reported field names follow the JSON tags, so clients can match
// errors to form inputs directly.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidPhone validates a phone number structure.
// Accepts digits with common punctuation ("+1 (212) 555-0100"), 5-20 chars,
// and requires at least one digit so pure punctuation does not pass.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val) && phoneDigit.MatchString(val)
}
