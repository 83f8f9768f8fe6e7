package finance

import (
	"context"

	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseService handles expense-related business operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	projectRepo project.ProjectRepository
	userRepo    identity.UserRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo finance.ExpenseRepository,
	projectRepo project.ProjectRepository,
	userRepo identity.UserRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
	}

	if _, err := s.userRepo.FindByID(ctx, req.CreatedByID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	e, err := finance.NewExpense(req.Title, req.Amount, finance.ExpenseCategory(req.Category), req.CreatedByID)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		e.LinkProject(req.ProjectID)
	}

	if req.ReceiptURL != "" {
		if err := e.SetReceiptURL(req.ReceiptURL); err != nil {
			return nil, err
		}
	}

	if req.Notes != "" {
		e.SetNotes(req.Notes)
	}

	if req.ExpenseDate != nil {
		e.SetExpenseDate(*req.ExpenseDate)
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, filter.Search, filter.OrderBy, filter.OrderDir)

	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.ProjectID != nil {
		domainFilter.Filters["project_id"] = *filter.ProjectID
	}
	if filter.CreatedByID != nil {
		domainFilter.Filters["created_by_id"] = *filter.CreatedByID
	}

	expenses, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.expenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToExpenseResponses(expenses), total, nil
}

// Update updates an expense with the supplied fields only
func (s *ExpenseService) Update(ctx context.Context, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Amount != nil || req.Category != nil {
		title := e.Title
		amount := e.Amount
		category := e.Category

		if req.Title != nil {
			title = *req.Title
		}
		if req.Amount != nil {
			amount = *req.Amount
		}
		if req.Category != nil {
			category = finance.ExpenseCategory(*req.Category)
		}

		if err := e.Update(title, amount, category); err != nil {
			return nil, err
		}
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
		e.LinkProject(req.ProjectID)
	}

	if req.ReceiptURL != nil {
		if err := e.SetReceiptURL(*req.ReceiptURL); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		e.SetNotes(*req.Notes)
	}

	if req.ExpenseDate != nil {
		e.SetExpenseDate(*req.ExpenseDate)
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// Delete deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, expenseID); err != nil {
		return err
	}

	return s.expenseRepo.Delete(ctx, expenseID)
}
