package content

import (
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/Sheddybata/sdp.app/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *ContentService
}

func NewContentHandler(contentService *ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Home handles GET /?lang=xx.
func (h *ContentHandler) Home(c *gin.Context) {
	var query HomeQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.contentService.Home(c.Request.Context(), i18n.ParseLanguage(query.Lang))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListEvents handles GET /admin/events.
func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, err := h.contentService.ListEvents(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent handles POST /admin/events.
func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var request EventRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.contentService.CreateEvent(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// DeleteEvent handles DELETE /admin/events/:id.
func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	var param IDParam
	if !handler.BindURI(c, &param) {
		return
	}

	if err := h.contentService.DeleteEvent(c.Request.Context(), param.ID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAnnouncements handles GET /admin/announcements.
func (h *ContentHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.contentService.ListAnnouncements(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

// CreateAnnouncement handles POST /admin/announcements.
func (h *ContentHandler) CreateAnnouncement(c *gin.Context) {
	var request AnnouncementRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.contentService.CreateAnnouncement(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// DeleteAnnouncement handles DELETE /admin/announcements/:id.
func (h *ContentHandler) DeleteAnnouncement(c *gin.Context) {
	var param IDParam
	if !handler.BindURI(c, &param) {
		return
	}

	if err := h.contentService.DeleteAnnouncement(c.Request.Context(), param.ID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
