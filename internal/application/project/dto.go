package project

import (
	"time"

	"github.com/crm/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest represents a request to create a new project
type CreateProjectRequest struct {
	Title       string           `json:"title" binding:"required,min=1,max=200"`
	Description string           `json:"description"`
	Status      string           `json:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
	Priority    string           `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Budget      *decimal.Decimal `json:"budget"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	ClientID    uuid.UUID        `json:"client_id" binding:"required"`
	DeveloperID *uuid.UUID       `json:"developer_id"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Title         *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Status        *string          `json:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
	Priority      *string          `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	ActualEndDate *time.Time       `json:"actual_end_date"`
	Budget        *decimal.Decimal `json:"budget"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate"`
	DeveloperID   *uuid.UUID       `json:"developer_id"`
}

// ProjectListFilter represents filter options for the project list
type ProjectListFilter struct {
	Search      string     `form:"search"`
	Status      string     `form:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
	Priority    string     `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ClientID    *uuid.UUID `form:"client_id"`
	DeveloperID *uuid.UUID `form:"developer_id"`
	Skip        int        `form:"skip" binding:"min=0"`
	Limit       int        `form:"limit" binding:"min=0,max=1000"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	StartDate     *time.Time      `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	ActualEndDate *time.Time      `json:"actual_end_date"`
	Budget        decimal.Decimal `json:"budget"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	ClientID      uuid.UUID       `json:"client_id"`
	DeveloperID   *uuid.UUID      `json:"developer_id"`
	IsOverdue     bool            `json:"is_overdue"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProjectStatsResponse aggregates project counts for the stats endpoint
type ProjectStatsResponse struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
	Overdue    int64            `json:"overdue"`
}

// ToProjectResponse converts a domain Project to ProjectResponse.
// ProfitMargin is filled in by the service from payment and expense sums.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        string(p.Status),
		Priority:      string(p.Priority),
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		ActualEndDate: p.ActualEndDate,
		Budget:        p.Budget,
		HourlyRate:    p.HourlyRate,
		ClientID:      p.ClientID,
		DeveloperID:   p.DeveloperID,
		IsOverdue:     p.IsOverdue(),
		ProfitMargin:  decimal.Zero,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of domain Projects to responses
func ToProjectResponses(projects []project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(&p)
	}
	return responses
}
