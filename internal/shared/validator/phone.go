package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex restricts phone numbers to digits, '+', '-', spaces and parentheses.
	// Formats: +234 803 123 4567, (0803) 123-4567, 08031234567
	phoneRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// ValidatePhone validates the character set of a phone number.
// Length limits are expressed separately with min/max tags.
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}
