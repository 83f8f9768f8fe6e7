package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	reportapp "github.com/crm/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles CSV exports and invoice PDF rendering
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/:resource/csv", h.ExportCSV)
	reports.GET("/invoices/:id/pdf", h.InvoicePDF)
}

// ExportCSV streams a full CSV export of one resource.
// The export is buffered so a failure mid-walk never produces a
// truncated download.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	resource := c.Param("resource")

	var buf bytes.Buffer
	if err := h.reportService.WriteCSV(c.Request.Context(), resource, &buf); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", resource, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// InvoicePDF renders one invoice as a PDF document
func (h *ReportHandler) InvoicePDF(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.RenderInvoicePDF(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
