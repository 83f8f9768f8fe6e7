package finance

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo finance.InvoiceRepository
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
	paymentRepo finance.PaymentRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo finance.InvoiceRepository,
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	paymentRepo finance.PaymentRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		paymentRepo: paymentRepo,
	}
}

// Create issues a new invoice
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client not found")
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
	}

	if req.InvoiceNumber != "" {
		exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
		}
	}

	inv, err := finance.NewInvoice(req.InvoiceNumber, req.ClientID, req.Amount)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		inv.LinkProject(req.ProjectID)
	}

	if req.Status != "" {
		if err := inv.ChangeStatus(finance.InvoiceStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if req.IssueDate != nil || req.DueDate != nil {
		issueDate := inv.IssueDate
		if req.IssueDate != nil {
			issueDate = *req.IssueDate
		}
		if err := inv.SetDates(issueDate, req.DueDate); err != nil {
			return nil, err
		}
	}

	if req.Items != "" {
		inv.SetItems(req.Items)
	}

	if req.Notes != "" {
		inv.SetNotes(req.Notes)
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(inv)
	return &response, nil
}

// GetByID retrieves an invoice by ID with derived payment figures
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return s.toResponseWithPayments(ctx, inv)
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, filter.Search, filter.OrderBy, filter.OrderDir)

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.ProjectID != nil {
		domainFilter.Filters["project_id"] = *filter.ProjectID
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// Update updates an invoice with the supplied fields only
func (s *InvoiceService) Update(ctx context.Context, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := inv.SetAmount(*req.Amount); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := inv.ChangeStatus(finance.InvoiceStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
		inv.LinkProject(req.ProjectID)
	}

	if req.IssueDate != nil || req.DueDate != nil {
		issueDate := inv.IssueDate
		dueDate := inv.DueDate

		if req.IssueDate != nil {
			issueDate = *req.IssueDate
		}
		if req.DueDate != nil {
			dueDate = req.DueDate
		}

		if err := inv.SetDates(issueDate, dueDate); err != nil {
			return nil, err
		}
	}

	if req.Items != nil {
		inv.SetItems(*req.Items)
	}

	if req.Notes != nil {
		inv.SetNotes(*req.Notes)
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	return s.toResponseWithPayments(ctx, inv)
}

// Delete deletes an invoice
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, invoiceID)
}

func (s *InvoiceService) toResponseWithPayments(ctx context.Context, inv *finance.Invoice) (*InvoiceResponse, error) {
	response := ToInvoiceResponse(inv)

	paid, err := s.paymentRepo.SumByInvoice(ctx, inv.ID, finance.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	response.PaidAmount = paid
	response.RemainingAmount = inv.RemainingAmount(paid)

	return &response, nil
}
