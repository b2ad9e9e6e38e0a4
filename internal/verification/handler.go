package verification

import (
	"context"
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationService *VerificationService
}

func NewVerificationHandler(verificationService *VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// ByMembershipID handles POST /enroll/verify/membership-id.
func (h *VerificationHandler) ByMembershipID(c *gin.Context) {
	var request MembershipIDRequest
	if !handler.BindJSON(c, &request) {
		return
	}
	h.respond(c, request.MembershipID, h.verificationService.VerifyByMembershipID)
}

// ByVoterID handles POST /enroll/verify/voter-id.
func (h *VerificationHandler) ByVoterID(c *gin.Context) {
	var request VoterIDRequest
	if !handler.BindJSON(c, &request) {
		return
	}
	h.respond(c, request.VoterID, h.verificationService.VerifyByVoterID)
}

// ByCard handles POST /enroll/verify/card.
func (h *VerificationHandler) ByCard(c *gin.Context) {
	var request CardRequest
	if !handler.BindJSON(c, &request) {
		return
	}
	h.respond(c, request.CardToken, h.verificationService.VerifyByCard)
}

func (h *VerificationHandler) respond(c *gin.Context, input string, verify func(context.Context, string) (*Result, error)) {
	result, err := verify(c.Request.Context(), input)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
