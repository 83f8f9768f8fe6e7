package handler

import (
	dashboardapp "github.com/crm/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard statistics endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.GET("/stats", h.Stats)
	dashboard.GET("/financial", h.Financial)
}

// Stats returns the aggregate dashboard figures
func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// Financial returns revenue, expense and profit figures
func (h *DashboardHandler) Financial(c *gin.Context) {
	resp, err := h.dashboardService.GetFinancialStats(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}
