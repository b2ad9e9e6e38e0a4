package member

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	memberNotFound      = "MEMBER_NOT_FOUND"          // errInfo
	alreadyRegistered   = "MEMBER_ALREADY_REGISTERED" // errInfo
	databaseUnavailable = "DATABASE_UNAVAILABLE"      // errInfo
)

var (
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrAlreadyRegistered   = sharedError.NewDomainError(alreadyRegistered)
	ErrDatabaseUnavailable = sharedError.NewDomainError(databaseUnavailable)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Member not found.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyRegistered, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "This voter registration number is already registered. If you believe this is an error, please contact support.",
	})

	sharedError.RegisterDomainErrorResponse(databaseUnavailable, sharedError.ErrorResponse{
		Status:  http.StatusServiceUnavailable,
		Code:    "MEMBER-003",
		Message: "We're having trouble connecting to our database. Please check your internet connection and try again.",
	})
}
