package auth

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	invalidCredentials = "INVALID_CREDENTIALS" // errInfo
	tooManyAttempts    = "TOO_MANY_ATTEMPTS"   // errInfo
)

var (
	ErrInvalidCredentials = sharedError.NewDomainError(invalidCredentials)
	ErrTooManyAttempts    = sharedError.NewDomainError(tooManyAttempts)
)

func init() {
	// One message for every credential failure so the response never reveals
	// which check failed.
	sharedError.RegisterDomainErrorResponse(invalidCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "Invalid email or password",
	})

	sharedError.RegisterDomainErrorResponse(tooManyAttempts, sharedError.ErrorResponse{
		Status:  http.StatusTooManyRequests,
		Code:    "AUTH-002",
		Message: "Too many failed login attempts. Please try again later.",
	})
}
