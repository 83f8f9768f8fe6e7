package finance

import (
	"context"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService handles payment-related business operations
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	projectRepo project.ProjectRepository
	clientRepo  client.ClientRepository
	invoiceRepo finance.InvoiceRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	projectRepo project.ProjectRepository,
	clientRepo client.ClientRepository,
	invoiceRepo finance.InvoiceRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create records a new payment
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
	}
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client not found")
	}
	if req.InvoiceID != nil {
		if _, err := s.invoiceRepo.FindByID(ctx, *req.InvoiceID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Invoice not found")
		}
	}

	if req.TransactionID != "" {
		exists, err := s.paymentRepo.ExistsByTransactionID(ctx, req.TransactionID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment with this transaction ID already exists")
		}
	}

	p, err := finance.NewPayment(req.Amount, finance.PaymentMethod(req.Method), req.ProjectID, req.ClientID)
	if err != nil {
		return nil, err
	}

	if req.Currency != "" {
		if err := p.SetCurrency(req.Currency); err != nil {
			return nil, err
		}
	}

	if req.Status != "" {
		if err := p.ChangeStatus(finance.PaymentStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if req.TransactionID != "" || req.PaymentGatewayID != "" {
		if err := p.SetTransactionRef(req.TransactionID, req.PaymentGatewayID); err != nil {
			return nil, err
		}
	}

	if req.InvoiceID != nil {
		p.LinkInvoice(req.InvoiceID)
	}

	if req.PaymentDate != nil {
		p.SetPaymentDate(*req.PaymentDate)
	}

	if req.Notes != "" {
		p.SetNotes(req.Notes)
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if err := s.settleInvoice(ctx, p); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// settleInvoice marks the linked invoice paid once completed payments
// cover its amount. Paid and cancelled invoices are left untouched.
func (s *PaymentService) settleInvoice(ctx context.Context, p *finance.Payment) error {
	if p.InvoiceID == nil || !p.IsCompleted() {
		return nil
	}

	inv, err := s.invoiceRepo.FindByID(ctx, *p.InvoiceID)
	if err != nil {
		return err
	}
	if inv.Status == finance.InvoiceStatusPaid || inv.Status == finance.InvoiceStatusCancelled {
		return nil
	}

	paid, err := s.paymentRepo.SumByInvoice(ctx, inv.ID, finance.PaymentStatusCompleted)
	if err != nil {
		return err
	}
	if paid.LessThan(inv.Amount) {
		return nil
	}

	if err := inv.MarkPaid(); err != nil {
		return err
	}
	return s.invoiceRepo.Save(ctx, inv)
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, filter.Search, filter.OrderBy, filter.OrderDir)

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Method != "" {
		domainFilter.Filters["method"] = filter.Method
	}
	if filter.ProjectID != nil {
		domainFilter.Filters["project_id"] = *filter.ProjectID
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.InvoiceID != nil {
		domainFilter.Filters["invoice_id"] = *filter.InvoiceID
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentResponses(payments), total, nil
}

// Update updates a payment with the supplied fields only
func (s *PaymentService) Update(ctx context.Context, paymentID uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := p.SetAmount(*req.Amount); err != nil {
			return nil, err
		}
	}

	if req.Currency != nil {
		if err := p.SetCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := p.ChangeStatus(finance.PaymentStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.Method != nil {
		if err := p.ChangeMethod(finance.PaymentMethod(*req.Method)); err != nil {
			return nil, err
		}
	}

	if req.TransactionID != nil || req.PaymentGatewayID != nil {
		transactionID := p.TransactionID
		gatewayID := p.PaymentGatewayID

		if req.TransactionID != nil {
			if *req.TransactionID != "" && *req.TransactionID != p.TransactionID {
				exists, err := s.paymentRepo.ExistsByTransactionID(ctx, *req.TransactionID)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment with this transaction ID already exists")
				}
			}
			transactionID = *req.TransactionID
		}
		if req.PaymentGatewayID != nil {
			gatewayID = *req.PaymentGatewayID
		}

		if err := p.SetTransactionRef(transactionID, gatewayID); err != nil {
			return nil, err
		}
	}

	if req.InvoiceID != nil {
		if _, err := s.invoiceRepo.FindByID(ctx, *req.InvoiceID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Invoice not found")
		}
		p.LinkInvoice(req.InvoiceID)
	}

	if req.PaymentDate != nil {
		p.SetPaymentDate(*req.PaymentDate)
	}

	if req.Notes != nil {
		p.SetNotes(*req.Notes)
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if err := s.settleInvoice(ctx, p); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// Delete deletes a payment
func (s *PaymentService) Delete(ctx context.Context, paymentID uuid.UUID) error {
	if _, err := s.paymentRepo.FindByID(ctx, paymentID); err != nil {
		return err
	}

	return s.paymentRepo.Delete(ctx, paymentID)
}
