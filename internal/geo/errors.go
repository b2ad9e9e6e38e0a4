package geo

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	stateNotFound = "GEO_STATE_NOT_FOUND" // errInfo
	lgaNotFound   = "GEO_LGA_NOT_FOUND"   // errInfo
)

var (
	ErrStateNotFound = sharedError.NewDomainError(stateNotFound)
	ErrLGANotFound   = sharedError.NewDomainError(lgaNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(stateNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GEO-001",
		Message: "State not found.",
	})

	sharedError.RegisterDomainErrorResponse(lgaNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GEO-002",
		Message: "LGA not found for the selected state.",
	})
}
