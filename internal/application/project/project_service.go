package project

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectService handles project-related business operations
type ProjectService struct {
	projectRepo project.ProjectRepository
	clientRepo  client.ClientRepository
	userRepo    identity.UserRepository
	paymentRepo finance.PaymentRepository
	expenseRepo finance.ExpenseRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	clientRepo client.ClientRepository,
	userRepo identity.UserRepository,
	paymentRepo finance.PaymentRepository,
	expenseRepo finance.ExpenseRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client not found")
	}

	if req.DeveloperID != nil {
		if _, err := s.userRepo.FindByID(ctx, *req.DeveloperID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Developer not found")
		}
	}

	p, err := project.NewProject(req.Title, req.ClientID)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := p.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}

	if req.Status != "" {
		if err := p.ChangeStatus(project.Status(req.Status)); err != nil {
			return nil, err
		}
	}

	if req.Priority != "" {
		if err := p.ChangePriority(project.Priority(req.Priority)); err != nil {
			return nil, err
		}
	}

	if req.StartDate != nil || req.EndDate != nil {
		if err := p.SetSchedule(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}

	if req.Budget != nil {
		if err := p.SetBudget(*req.Budget); err != nil {
			return nil, err
		}
	}

	if req.HourlyRate != nil {
		if err := p.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}

	if req.DeveloperID != nil {
		p.AssignDeveloper(req.DeveloperID)
	}

	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)
	return &response, nil
}

// GetByID retrieves a project by ID with its derived profit margin
func (s *ProjectService) GetByID(ctx context.Context, projectID uuid.UUID) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)

	totalPayments, err := s.paymentRepo.SumByProject(ctx, projectID, finance.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.SumByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	response.ProfitMargin = project.ProfitMargin(totalPayments, totalExpenses)

	return &response, nil
}

// List retrieves projects with filtering and pagination
func (s *ProjectService) List(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, filter.Search, filter.OrderBy, filter.OrderDir)

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Priority != "" {
		domainFilter.Filters["priority"] = filter.Priority
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.DeveloperID != nil {
		domainFilter.Filters["developer_id"] = *filter.DeveloperID
	}

	projects, err := s.projectRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.projectRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProjectResponses(projects), total, nil
}

// Update updates a project with the supplied fields only
func (s *ProjectService) Update(ctx context.Context, projectID uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil {
		title := p.Title
		description := p.Description

		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}

		if err := p.Update(title, description); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := p.ChangeStatus(project.Status(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.Priority != nil {
		if err := p.ChangePriority(project.Priority(*req.Priority)); err != nil {
			return nil, err
		}
	}

	if req.StartDate != nil || req.EndDate != nil {
		startDate := p.StartDate
		endDate := p.EndDate

		if req.StartDate != nil {
			startDate = req.StartDate
		}
		if req.EndDate != nil {
			endDate = req.EndDate
		}

		if err := p.SetSchedule(startDate, endDate); err != nil {
			return nil, err
		}
	}

	if req.ActualEndDate != nil {
		p.SetActualEndDate(req.ActualEndDate)
	}

	if req.Budget != nil {
		if err := p.SetBudget(*req.Budget); err != nil {
			return nil, err
		}
	}

	if req.HourlyRate != nil {
		if err := p.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}

	if req.DeveloperID != nil {
		if _, err := s.userRepo.FindByID(ctx, *req.DeveloperID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Developer not found")
		}
		p.AssignDeveloper(req.DeveloperID)
	}

	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)
	return &response, nil
}

// Delete deletes a project
func (s *ProjectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return err
	}

	return s.projectRepo.Delete(ctx, projectID)
}

// Stats returns project counts grouped by status and priority
func (s *ProjectService) Stats(ctx context.Context) (*ProjectStatsResponse, error) {
	statusCounts, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(statusCounts))
	var total int64
	for _, sc := range statusCounts {
		byStatus[string(sc.Status)] = sc.Count
		total += sc.Count
	}

	priorityCounts, err := s.projectRepo.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}

	byPriority := make(map[string]int64, len(priorityCounts))
	for _, pc := range priorityCounts {
		byPriority[string(pc.Priority)] = pc.Count
	}

	overdue, err := s.projectRepo.CountOverdue(ctx)
	if err != nil {
		return nil, err
	}

	return &ProjectStatsResponse{
		Total:      total,
		ByStatus:   byStatus,
		ByPriority: byPriority,
		Overdue:    overdue,
	}, nil
}
