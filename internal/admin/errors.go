package admin

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	adminInvalidQuery = "ADMIN_INVALID_QUERY" // errInfo
	adminExportFailed = "ADMIN_EXPORT_FAILED" // errInfo
)

var (
	ErrInvalidQuery = sharedError.NewDomainError(adminInvalidQuery)
	ErrExportFailed = sharedError.NewDomainError(adminExportFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(adminInvalidQuery, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ADMIN-001",
		Message: "The requested filter or sort is not supported.",
	})

	sharedError.RegisterDomainErrorResponse(adminExportFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ADMIN-002",
		Message: "The export could not be generated. Please try again.",
	})
}
