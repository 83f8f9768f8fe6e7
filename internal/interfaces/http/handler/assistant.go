package handler

import (
	assistantapp "github.com/crm/backend/internal/application/assistant"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles AI assistant endpoints
type AssistantHandler struct {
	BaseHandler
	assistantService *assistantapp.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantService *assistantapp.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// RegisterRoutes registers assistant routes
func (h *AssistantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai-assistant", h.Process)
}

// Process runs a single assistant action over the provided text
func (h *AssistantHandler) Process(c *gin.Context) {
	var req assistantapp.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.assistantService.Process(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}
