package content

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	contentInvalid     = "CONTENT_INVALID"     // errInfo
	contentUnavailable = "CONTENT_UNAVAILABLE" // errInfo
)

var (
	ErrInvalidContent     = sharedError.NewDomainError(contentInvalid)
	ErrContentUnavailable = sharedError.NewDomainError(contentUnavailable)
)

func init() {
	sharedError.RegisterDomainErrorResponse(contentInvalid, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CONTENT-001",
		Message: "Please check the highlighted fields and try again.",
	})

	sharedError.RegisterDomainErrorResponse(contentUnavailable, sharedError.ErrorResponse{
		Status:  http.StatusServiceUnavailable,
		Code:    "CONTENT-002",
		Message: "We're having trouble connecting to our database. Please check your internet connection and try again.",
	})
}
