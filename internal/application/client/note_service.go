package client

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService handles client note operations. Notes are append-only.
type NoteService struct {
	noteRepo    client.NoteRepository
	clientRepo  client.ClientRepository
	historyRepo client.HistoryRepository
	logger      *zap.Logger
}

// NewNoteService creates a new NoteService
func NewNoteService(
	noteRepo client.NoteRepository,
	clientRepo client.ClientRepository,
	historyRepo client.HistoryRepository,
	logger *zap.Logger,
) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		clientRepo:  clientRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Create adds a note to a client
func (s *NoteService) Create(ctx context.Context, clientID uuid.UUID, req CreateNoteRequest) (*NoteResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client not found")
	}

	note, err := client.NewNote(clientID, req.Author, req.Text)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, clientID, "Note added", req.Author)

	response := ToNoteResponse(note)
	return &response, nil
}

// ListByClient retrieves a client's notes, newest first
func (s *NoteService) ListByClient(ctx context.Context, clientID uuid.UUID, filter NoteListFilter) ([]NoteResponse, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, 0, shared.NewDomainError("NOT_FOUND", "Client not found")
	}

	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, "", "", "")

	notes, err := s.noteRepo.FindByClient(ctx, clientID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.noteRepo.CountByClient(ctx, clientID)
	if err != nil {
		return nil, 0, err
	}

	return ToNoteResponses(notes), total, nil
}

// Delete deletes a note
func (s *NoteService) Delete(ctx context.Context, noteID uuid.UUID) error {
	if _, err := s.noteRepo.FindByID(ctx, noteID); err != nil {
		return err
	}

	return s.noteRepo.Delete(ctx, noteID)
}

func (s *NoteService) appendHistory(ctx context.Context, clientID uuid.UUID, event, actor string) {
	entry, err := client.NewHistoryEntry(clientID, event, actor)
	if err != nil {
		s.logger.Error("Failed to build client history entry",
			zap.String("client_id", clientID.String()),
			zap.Error(err))
		return
	}

	if err := s.historyRepo.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to append client history",
			zap.String("client_id", clientID.String()),
			zap.String("event", event),
			zap.Error(err))
	}
}
