package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	// The first error is the headline, every field is listed for inline display.
	resp.Message = Message(validationErrors[0])
	resp.Fields = FieldMessages(validationErrors)
	return &resp, true
}

// FieldMessages maps each failing field (by JSON name) to its first message.
func FieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, exists := fields[fe.Field()]; !exists {
			fields[fe.Field()] = Message(fe)
		}
	}
	return fields
}

// Message returns user-friendly error message for validation error
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "oneof":
		return "Please choose one of the listed options."
	case "phone":
		return "Invalid phone format."
	case "voterid":
		return "Voter ID must be exactly 20 letters and numbers."
	case "accepted":
		return "You must agree to the party constitution to enroll."
	case "datetime":
		return "Please enter a date as YYYY-MM-DD."
	case "uuid":
		return "Invalid identifier."
	default:
		return fmt.Sprintf("'%s' is not valid.", fe.Field())
	}
}
