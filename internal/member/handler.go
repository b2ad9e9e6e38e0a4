package member

import (
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles GET /admin/members/:id.
func (h *MemberHandler) Get(c *gin.Context) {
	var param IDParam
	if !handler.BindURI(c, &param) {
		return
	}

	response, err := h.memberService.Get(c.Request.Context(), param.ID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /admin/members/:id.
func (h *MemberHandler) Delete(c *gin.Context) {
	var param IDParam
	if !handler.BindURI(c, &param) {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), param.ID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
