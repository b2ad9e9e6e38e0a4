package verification

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
)

const (
	invalidInput = "VERIFY_INVALID_INPUT" // errInfo
)

var (
	ErrInvalidInput = sharedError.NewDomainError(invalidInput)
)

// Client messages.
const (
	msgMembershipIDRequired = "Please enter a membership ID."
	msgMembershipIDTooShort = "Membership ID is too short. Please check and try again."
	msgMembershipNotFound   = "Member not found. Please check the membership ID and try again. The format should be SDP-XXX-XXXXXX."
	msgVoterIDRequired      = "Please enter a voter registration number."
	msgVoterNotFound        = "Member not found. Please check the voter registration number and try again. Make sure there are no spaces or extra characters."
	msgCardRequired         = "Please scan or paste a member card code."
	msgCardInvalid          = "This member card could not be verified."
	msgCardExpired          = "This member card has expired. Please request a new card."
	msgCardNotFound         = "Member not found. This card no longer matches an active membership."
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidInput, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "VERIFY-001",
		Message: "Please check what you entered and try again.",
	})
}
