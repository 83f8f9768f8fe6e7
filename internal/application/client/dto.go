package client

import (
	"time"

	"github.com/crm/backend/internal/domain/client"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	CompanyName        string     `json:"company_name" binding:"required,min=1,max=200"`
	ContactPersonName  string     `json:"contact_person_name" binding:"max=200"`
	Email              string     `json:"email" binding:"omitempty,email,max=200"`
	Phone              string     `json:"phone" binding:"max=50"`
	Address            string     `json:"address" binding:"max=500"`
	Industry           string     `json:"industry" binding:"max=100"`
	PlatformPreference string     `json:"platform_preference" binding:"max=100"`
	Notes              string     `json:"notes"`
	AssignedUserID     *uuid.UUID `json:"assigned_user_id"`
	Actor              string     `json:"-"` // Set from JWT context, not from request body
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	CompanyName        *string    `json:"company_name" binding:"omitempty,min=1,max=200"`
	ContactPersonName  *string    `json:"contact_person_name" binding:"omitempty,max=200"`
	Email              *string    `json:"email" binding:"omitempty,email,max=200"`
	Phone              *string    `json:"phone" binding:"omitempty,max=50"`
	Address            *string    `json:"address" binding:"omitempty,max=500"`
	Industry           *string    `json:"industry" binding:"omitempty,max=100"`
	PlatformPreference *string    `json:"platform_preference" binding:"omitempty,max=100"`
	Notes              *string    `json:"notes"`
	AssignedUserID     *uuid.UUID `json:"assigned_user_id"`
	Actor              string     `json:"-"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search         string     `form:"search"`
	Industry       string     `form:"industry"`
	AssignedUserID *uuid.UUID `form:"assigned_user_id"`
	Skip           int        `form:"skip" binding:"min=0"`
	Limit          int        `form:"limit" binding:"min=0,max=1000"`
	OrderBy        string     `form:"order_by"`
	OrderDir       string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID                  uuid.UUID       `json:"id"`
	CompanyName         string          `json:"company_name"`
	ContactPersonName   string          `json:"contact_person_name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Address             string          `json:"address"`
	Industry            string          `json:"industry"`
	PlatformPreference  string          `json:"platform_preference"`
	Notes               string          `json:"notes"`
	AssignedUserID      *uuid.UUID      `json:"assigned_user_id"`
	TotalProjectValue   decimal.Decimal `json:"total_project_value"`
	ActiveProjectsCount int64           `json:"active_projects_count"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ClientListResponse represents a list item for clients
type ClientListResponse struct {
	ID                uuid.UUID  `json:"id"`
	CompanyName       string     `json:"company_name"`
	ContactPersonName string     `json:"contact_person_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Industry          string     `json:"industry"`
	AssignedUserID    *uuid.UUID `json:"assigned_user_id"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ToClientResponse converts a domain Client to ClientResponse.
// Derived project figures are filled in by the service.
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:                 c.ID,
		CompanyName:        c.CompanyName,
		ContactPersonName:  c.ContactPersonName,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		Industry:           c.Industry,
		PlatformPreference: c.PlatformPreference,
		Notes:              c.Notes,
		AssignedUserID:     c.AssignedUserID,
		TotalProjectValue:  decimal.Zero,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToClientListResponses converts a slice of domain Clients to list items
func ToClientListResponses(clients []client.Client) []ClientListResponse {
	responses := make([]ClientListResponse, len(clients))
	for i, c := range clients {
		responses[i] = ClientListResponse{
			ID:                c.ID,
			CompanyName:       c.CompanyName,
			ContactPersonName: c.ContactPersonName,
			Email:             c.Email,
			Phone:             c.Phone,
			Industry:          c.Industry,
			AssignedUserID:    c.AssignedUserID,
			CreatedAt:         c.CreatedAt,
		}
	}
	return responses
}

// =============================================================================
// Note DTOs
// =============================================================================

// CreateNoteRequest represents a request to add a note to a client
type CreateNoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"-"` // Set from JWT context
}

// NoteListFilter represents filter options for a client's notes
type NoteListFilter struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0,max=1000"`
}

// NoteResponse represents a client note in API responses
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNoteResponse converts a domain Note to NoteResponse
func ToNoteResponse(n *client.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		Author:    n.Author,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}

// ToNoteResponses converts a slice of domain Notes to NoteResponses
func ToNoteResponses(notes []client.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ToNoteResponse(&n)
	}
	return responses
}

// =============================================================================
// History DTOs
// =============================================================================

// HistoryListFilter represents filter options for a client's history
type HistoryListFilter struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0,max=1000"`
}

// HistoryEntryResponse represents a client history entry in API responses
type HistoryEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Event     string    `json:"event"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// ToHistoryEntryResponses converts domain history entries to responses
func ToHistoryEntryResponses(entries []client.HistoryEntry) []HistoryEntryResponse {
	responses := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = HistoryEntryResponse{
			ID:        e.ID,
			ClientID:  e.ClientID,
			Event:     e.Event,
			Actor:     e.Actor,
			CreatedAt: e.CreatedAt,
		}
	}
	return responses
}
