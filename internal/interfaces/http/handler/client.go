package handler

import (
	clientapp "github.com/crm/backend/internal/application/client"
	"github.com/crm/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client endpoints including notes and history
type ClientHandler struct {
	BaseHandler
	clientService  *clientapp.ClientService
	noteService    *clientapp.NoteService
	historyService *clientapp.HistoryService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *clientapp.ClientService, noteService *clientapp.NoteService, historyService *clientapp.HistoryService) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		noteService:    noteService,
		historyService: historyService,
	}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.GET("/", h.List)
	clients.POST("/", h.Create)
	clients.GET("/:id", h.GetByID)
	clients.PUT("/:id", h.Update)
	clients.DELETE("/:id", h.Delete)
	clients.GET("/:id/notes", h.ListNotes)
	clients.POST("/:id/notes", h.CreateNote)
	clients.GET("/:id/history", h.ListHistory)
}

// actor identifies the current user for the client history trail
func actor(c *gin.Context) string {
	if claims := middleware.GetJWTClaims(c); claims != nil {
		return claims.Email
	}
	return ""
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.Actor = actor(c)

	resp, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns a client with derived project figures
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// List returns clients matching the filter
func (h *ClientHandler) List(c *gin.Context) {
	var filter clientapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, "clients", clients, total, filter.Skip, filter.Limit)
}

// Update updates a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req clientapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.Actor = actor(c)

	resp, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// Delete deletes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id, actor(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateNote adds a note to a client
func (h *ClientHandler) CreateNote(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req clientapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.Author = actor(c)

	resp, err := h.noteService.Create(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListNotes returns a client's notes, newest first
func (h *ClientHandler) ListNotes(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var filter clientapp.NoteListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	notes, total, err := h.noteService.ListByClient(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, "notes", notes, total, filter.Skip, filter.Limit)
}

// ListHistory returns a client's history trail, newest first
func (h *ClientHandler) ListHistory(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var filter clientapp.HistoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, total, err := h.historyService.ListByClient(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, "history", entries, total, filter.Skip, filter.Limit)
}
