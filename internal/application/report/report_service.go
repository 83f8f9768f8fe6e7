package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// exportPageSize is the batch size used when walking a table for export
const exportPageSize = 1000

// ReportService produces CSV exports and invoice PDFs
type ReportService struct {
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
	paymentRepo finance.PaymentRepository
	expenseRepo finance.ExpenseRepository
	invoiceRepo finance.InvoiceRepository
	renderer    printing.PDFRenderer
}

// NewReportService creates a new ReportService
func NewReportService(
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	paymentRepo finance.PaymentRepository,
	expenseRepo finance.ExpenseRepository,
	invoiceRepo finance.InvoiceRepository,
	renderer printing.PDFRenderer,
) *ReportService {
	return &ReportService{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
	}
}

// WriteCSV streams the named resource as CSV to w. Supported resources
// are clients, projects, payments, expenses and invoices.
func (s *ReportService) WriteCSV(ctx context.Context, resource string, w io.Writer) error {
	switch resource {
	case "clients":
		return s.writeClientsCSV(ctx, w)
	case "projects":
		return s.writeProjectsCSV(ctx, w)
	case "payments":
		return s.writePaymentsCSV(ctx, w)
	case "expenses":
		return s.writeExpensesCSV(ctx, w)
	case "invoices":
		return s.writeInvoicesCSV(ctx, w)
	default:
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown report resource: %s", resource))
	}
}

func exportFilter(page int) shared.Filter {
	return shared.Filter{
		Offset:   (page - 1) * exportPageSize,
		Page:     page,
		PageSize: exportPageSize,
		OrderBy:  "created_at",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
}

func (s *ReportService) writeClientsCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "company_name", "contact_person_name", "email", "phone", "industry", "platform_preference", "created_at"}); err != nil {
		return err
	}

	for page := 1; ; page++ {
		clients, err := s.clientRepo.FindAll(ctx, exportFilter(page))
		if err != nil {
			return err
		}

		for _, c := range clients {
			if err := cw.Write([]string{
				c.ID.String(),
				c.CompanyName,
				c.ContactPersonName,
				c.Email,
				c.Phone,
				c.Industry,
				c.PlatformPreference,
				c.CreatedAt.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}

		if len(clients) < exportPageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *ReportService) writeProjectsCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "status", "priority", "budget", "hourly_rate", "client_id", "developer_id", "start_date", "end_date", "created_at"}); err != nil {
		return err
	}

	for page := 1; ; page++ {
		projects, err := s.projectRepo.FindAll(ctx, exportFilter(page))
		if err != nil {
			return err
		}

		for _, p := range projects {
			if err := cw.Write([]string{
				p.ID.String(),
				p.Title,
				string(p.Status),
				string(p.Priority),
				p.Budget.String(),
				p.HourlyRate.String(),
				p.ClientID.String(),
				uuidOrEmpty(p.DeveloperID),
				dateOrEmpty(p.StartDate),
				dateOrEmpty(p.EndDate),
				p.CreatedAt.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}

		if len(projects) < exportPageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *ReportService) writePaymentsCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "amount", "currency", "status", "method", "transaction_id", "project_id", "client_id", "invoice_id", "payment_date"}); err != nil {
		return err
	}

	for page := 1; ; page++ {
		payments, err := s.paymentRepo.FindAll(ctx, exportFilter(page))
		if err != nil {
			return err
		}

		for _, p := range payments {
			if err := cw.Write([]string{
				p.ID.String(),
				p.Amount.String(),
				p.Currency,
				string(p.Status),
				string(p.Method),
				p.TransactionID,
				p.ProjectID.String(),
				p.ClientID.String(),
				uuidOrEmpty(p.InvoiceID),
				p.PaymentDate.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}

		if len(payments) < exportPageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *ReportService) writeExpensesCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "amount", "category", "project_id", "created_by_id", "expense_date"}); err != nil {
		return err
	}

	for page := 1; ; page++ {
		expenses, err := s.expenseRepo.FindAll(ctx, exportFilter(page))
		if err != nil {
			return err
		}

		for _, e := range expenses {
			if err := cw.Write([]string{
				e.ID.String(),
				e.Title,
				e.Amount.String(),
				string(e.Category),
				uuidOrEmpty(e.ProjectID),
				e.CreatedByID.String(),
				e.ExpenseDate.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}

		if len(expenses) < exportPageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *ReportService) writeInvoicesCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "invoice_number", "client_id", "project_id", "amount", "status", "issue_date", "due_date", "paid_date"}); err != nil {
		return err
	}

	for page := 1; ; page++ {
		invoices, err := s.invoiceRepo.FindAll(ctx, exportFilter(page))
		if err != nil {
			return err
		}

		for i := range invoices {
			inv := &invoices[i]
			if err := cw.Write([]string{
				inv.ID.String(),
				inv.InvoiceNumber,
				inv.ClientID.String(),
				uuidOrEmpty(inv.ProjectID),
				inv.Amount.String(),
				string(inv.Status),
				inv.IssueDate.Format(time.RFC3339),
				dateOrEmpty(inv.DueDate),
				dateOrEmpty(inv.PaidDate),
			}); err != nil {
				return err
			}
		}

		if len(invoices) < exportPageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderInvoicePDF renders the invoice as a PDF document and returns the
// PDF bytes with a suggested file name.
func (s *ReportService) RenderInvoicePDF(ctx context.Context, invoiceID uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	c, err := s.clientRepo.FindByID(ctx, inv.ClientID)
	if err != nil {
		return nil, "", err
	}

	var projectTitle string
	if inv.ProjectID != nil {
		p, err := s.projectRepo.FindByID(ctx, *inv.ProjectID)
		if err == nil {
			projectTitle = p.Title
		}
	}

	paid, err := s.paymentRepo.SumByInvoice(ctx, inv.ID, finance.PaymentStatusCompleted)
	if err != nil {
		return nil, "", err
	}

	doc := printing.InvoiceDocument{
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       dateOrEmpty(inv.DueDate),
		ClientName:    c.CompanyName,
		ClientEmail:   c.Email,
		ProjectTitle:  projectTitle,
		Amount:        inv.Amount.StringFixed(2),
		PaidAmount:    paid.StringFixed(2),
		Remaining:     inv.RemainingAmount(paid).StringFixed(2),
		Notes:         inv.Notes,
	}

	html, err := printing.RenderInvoiceHTML(doc)
	if err != nil {
		return nil, "", err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:      html,
		PaperSize: printing.PaperA4,
		Title:     inv.InvoiceNumber,
	})
	if err != nil {
		return nil, "", err
	}

	return result.PDFData, fmt.Sprintf("%s.pdf", inv.InvoiceNumber), nil
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
