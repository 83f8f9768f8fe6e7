package client

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Note is an append-only note attached to a client.
// Notes are never updated; corrections are new notes.
type Note struct {
	shared.BaseEntity
	ClientID uuid.UUID
	Author   string
	Text     string
}

// NewNote creates a new client note
func NewNote(clientID uuid.UUID, author, text string) (*Note, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if strings.TrimSpace(text) == "" {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note text cannot be empty")
	}
	if len(author) > 200 {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author cannot exceed 200 characters")
	}

	return &Note{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Author:     strings.TrimSpace(author),
		Text:       text,
	}, nil
}
