package client

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByEmail finds a client by email
	FindByEmail(ctx context.Context, email string) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByEmail checks if a client with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// NoteRepository defines the interface for client note persistence.
// Notes are append-only: there is no update operation.
type NoteRepository interface {
	// FindByID finds a note by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Note, error)

	// FindByClient finds notes for a client, newest first
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Note, error)

	// Save persists a new note
	Save(ctx context.Context, note *Note) error

	// Delete deletes a note
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByClient counts notes for a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

// HistoryRepository defines the interface for client history persistence.
// History is append-only: entries are never updated or deleted individually.
type HistoryRepository interface {
	// FindByClient finds history entries for a client, newest first
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]HistoryEntry, error)

	// Save persists a new history entry
	Save(ctx context.Context, entry *HistoryEntry) error

	// CountByClient counts history entries for a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
