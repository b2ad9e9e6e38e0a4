package enrollment

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	enrollmentInvalid = "ENROLLMENT_INVALID" // errInfo
	wizardComplete    = "WIZARD_COMPLETE"    // errInfo
)

var (
	ErrInvalidForm    = sharedError.NewDomainError(enrollmentInvalid)
	ErrWizardComplete = sharedError.NewDomainError(wizardComplete)
)

func init() {
	sharedError.RegisterDomainErrorResponse(enrollmentInvalid, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ENROLL-001",
		Message: "Please check the highlighted fields and try again.",
	})

	sharedError.RegisterDomainErrorResponse(wizardComplete, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "ENROLL-002",
		Message: "This enrollment is already complete. Start over to enroll another member.",
	})
}
