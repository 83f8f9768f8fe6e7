package client

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HistoryEntry is an append-only audit record for a client.
// Every mutation of a client appends one entry.
type HistoryEntry struct {
	shared.BaseEntity
	ClientID uuid.UUID
	Event    string
	Actor    string
}

// NewHistoryEntry creates a new client history entry
func NewHistoryEntry(clientID uuid.UUID, event, actor string) (*HistoryEntry, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if strings.TrimSpace(event) == "" {
		return nil, shared.NewDomainError("INVALID_EVENT", "Event cannot be empty")
	}
	if len(actor) > 200 {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor cannot exceed 200 characters")
	}

	return &HistoryEntry{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Event:      strings.TrimSpace(event),
		Actor:      strings.TrimSpace(actor),
	}, nil
}
