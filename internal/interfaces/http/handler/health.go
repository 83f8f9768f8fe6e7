package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	DatabaseStatus string    `json:"database_status"`
}

// Check reports service and database health.
// The endpoint stays 200 even when the database is down so load
// balancers can tell "degraded" apart from "gone".
func (h *HealthHandler) Check(c *gin.Context) {
	resp := HealthResponse{
		Status:         "ok",
		Timestamp:      time.Now().UTC(),
		DatabaseStatus: "ok",
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		resp.Status = "degraded"
		resp.DatabaseStatus = "unreachable"
	}

	c.JSON(http.StatusOK, resp)
}
