package client

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService handles client-related business operations.
// Every mutation appends an entry to the client's history.
type ClientService struct {
	clientRepo  client.ClientRepository
	historyRepo client.HistoryRepository
	userRepo    identity.UserRepository
	projectRepo project.ProjectRepository
	logger      *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(
	clientRepo client.ClientRepository,
	historyRepo client.HistoryRepository,
	userRepo identity.UserRepository,
	projectRepo project.ProjectRepository,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if req.Email != "" {
		exists, err := s.clientRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
		}
	}

	if req.AssignedUserID != nil {
		if _, err := s.userRepo.FindByID(ctx, *req.AssignedUserID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Assigned user not found")
		}
	}

	c, err := client.NewClient(req.CompanyName, req.ContactPersonName, req.Email)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Address != "" {
		if err := c.SetContact(req.Email, req.Phone, req.Address); err != nil {
			return nil, err
		}
	}

	if req.Industry != "" || req.PlatformPreference != "" {
		if err := c.SetBusinessProfile(req.Industry, req.PlatformPreference); err != nil {
			return nil, err
		}
	}

	if req.Notes != "" {
		c.SetNotes(req.Notes)
	}

	if req.AssignedUserID != nil {
		c.AssignTo(req.AssignedUserID)
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, c.ID, "Client created", req.Actor)

	response := ToClientResponse(c)
	return &response, nil
}

// GetByID retrieves a client by ID with derived project figures
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(c)

	totalValue, err := s.projectRepo.SumBudgetByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	response.TotalProjectValue = totalValue

	activeCount, err := s.projectRepo.CountActiveByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	response.ActiveProjectsCount = activeCount

	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientListResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, filter.Search, filter.OrderBy, filter.OrderDir)

	if filter.Industry != "" {
		domainFilter.Filters["industry"] = filter.Industry
	}
	if filter.AssignedUserID != nil {
		domainFilter.Filters["assigned_user_id"] = *filter.AssignedUserID
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientListResponses(clients), total, nil
}

// Update updates a client with the supplied fields only
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil || req.ContactPersonName != nil {
		companyName := c.CompanyName
		contactPersonName := c.ContactPersonName

		if req.CompanyName != nil {
			companyName = *req.CompanyName
		}
		if req.ContactPersonName != nil {
			contactPersonName = *req.ContactPersonName
		}

		if err := c.Update(companyName, contactPersonName); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email := c.Email
		phone := c.Phone
		address := c.Address

		if req.Email != nil {
			if *req.Email != "" && *req.Email != c.Email {
				exists, err := s.clientRepo.ExistsByEmail(ctx, *req.Email)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
				}
			}
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}

		if err := c.SetContact(email, phone, address); err != nil {
			return nil, err
		}
	}

	if req.Industry != nil || req.PlatformPreference != nil {
		industry := c.Industry
		platform := c.PlatformPreference

		if req.Industry != nil {
			industry = *req.Industry
		}
		if req.PlatformPreference != nil {
			platform = *req.PlatformPreference
		}

		if err := c.SetBusinessProfile(industry, platform); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		c.SetNotes(*req.Notes)
	}

	if req.AssignedUserID != nil {
		if _, err := s.userRepo.FindByID(ctx, *req.AssignedUserID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Assigned user not found")
		}
		c.AssignTo(req.AssignedUserID)
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, c.ID, "Client updated", req.Actor)

	response := ToClientResponse(c)
	return &response, nil
}

// Delete deletes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID, actor string) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}

	if err := s.clientRepo.Delete(ctx, clientID); err != nil {
		return err
	}

	s.appendHistory(ctx, clientID, "Client deleted", actor)

	return nil
}

// appendHistory records a client mutation. A history write failure is
// logged but does not fail the mutation that already happened.
func (s *ClientService) appendHistory(ctx context.Context, clientID uuid.UUID, event, actor string) {
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
