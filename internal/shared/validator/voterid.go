package validator

import (
	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/go-playground/validator/v10"
)

// ValidateVoterID accepts a voter registration number that is exactly 20
// alphanumeric characters once whitespace is removed.
func ValidateVoterID(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	normalized := identifier.NormalizeVoterID(raw)
	// Reject input that only fits after truncation.
	if len([]rune(identifier.StripWhitespace(raw))) != identifier.VoterIDLength {
		return false
	}
	return identifier.ValidVoterID(normalized)
}

// ValidateAccepted requires a boolean field to be true.
func ValidateAccepted(fl validator.FieldLevel) bool {
	return fl.Field().Bool()
}
