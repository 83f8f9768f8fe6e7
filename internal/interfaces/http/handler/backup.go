package handler

import (
	backupapp "github.com/crm/backend/internal/application/backup"
	"github.com/gin-gonic/gin"
)

// BackupHandler handles database backup endpoints
type BackupHandler struct {
	BaseHandler
	backupService *backupapp.BackupService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(backupService *backupapp.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// RegisterRoutes registers backup routes. The route group carries the
// admin role requirement; see the router setup.
func (h *BackupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/backup", h.Run)
}

// Run creates a timestamped copy of the database file
func (h *BackupHandler) Run(c *gin.Context) {
	resp, err := h.backupService.Run(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}
