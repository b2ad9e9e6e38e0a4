package admin

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/member"
	sharedContext "github.com/Sheddybata/sdp.app/internal/shared/context"
	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListMembers handles GET /admin/members.
func (h *AdminHandler) ListMembers(c *gin.Context) {
	var query ListQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	sort, err := ParseSort(query.SortBy, query.SortDir)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	browser := RestoreBrowser(query.Filter, sort, query.Page, query.FilterToken)
	page, err := h.adminService.Browse(c.Request.Context(), browser)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ExportCSV handles GET /admin/members/export.csv.
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", "text/csv; charset=utf-8", WriteCSV)
}

// ExportPDF handles GET /admin/members/export.pdf.
func (h *AdminHandler) ExportPDF(c *gin.Context) {
	h.export(c, "pdf", "application/pdf", WritePDF)
}

func (h *AdminHandler) export(c *gin.Context, ext, contentType string, write func(io.Writer, []member.Response) error) {
	var query ExportQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	sort, err := ParseSort(query.SortBy, query.SortDir)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	ctx := c.Request.Context()
	rows, err := h.adminService.Export(ctx, query.Filter, sort)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	// Render fully before writing headers so a failure still gets a JSON error.
	var buf bytes.Buffer
	if err := write(&buf, rows); err != nil {
		logger.FromContext(ctx).Error("member export failed", "format", ext, "error", err)
		handler.RespondDomainError(c, fmt.Errorf("export %s: %w: %w", ext, ErrExportFailed, err))
		return
	}

	logger.FromContext(ctx).Info("member export generated", "format", ext, "rows", len(rows))
	filename := ExportFilename(h.adminService.now(), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}
	dashboard.SignedInAs, _ = sharedContext.GetAdminEmail(c)
	c.JSON(http.StatusOK, dashboard)
}
