package client

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HistoryService exposes the client audit trail. Entries are written by
// the client and note services; this service only reads.
type HistoryService struct {
	historyRepo client.HistoryRepository
	clientRepo  client.ClientRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyRepo client.HistoryRepository, clientRepo client.ClientRepository) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		clientRepo:  clientRepo,
	}
}

// ListByClient retrieves a client's history, newest first
func (s *HistoryService) ListByClient(ctx context.Context, clientID uuid.UUID, filter HistoryListFilter) ([]HistoryEntryResponse, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, 0, shared.NewDomainError("NOT_FOUND", "Client not found")
	}

	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, "", "", "")

	entries, err := s.historyRepo.FindByClient(ctx, clientID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.historyRepo.CountByClient(ctx, clientID)
	if err != nil {
		return nil, 0, err
	}

	return ToHistoryEntryResponses(entries), total, nil
}
