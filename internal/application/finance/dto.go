package finance

import (
	"time"

	"github.com/crm/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Payment DTOs
// =============================================================================

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Currency         string          `json:"currency" binding:"omitempty,len=3"`
	Status           string          `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	Method           string          `json:"method" binding:"required,oneof=bank_transfer credit_card paypal stripe cash check other"`
	TransactionID    string          `json:"transaction_id" binding:"max=200"`
	PaymentGatewayID string          `json:"payment_gateway_id" binding:"max=200"`
	ProjectID        uuid.UUID       `json:"project_id" binding:"required"`
	ClientID         uuid.UUID       `json:"client_id" binding:"required"`
	InvoiceID        *uuid.UUID      `json:"invoice_id"`
	PaymentDate      *time.Time      `json:"payment_date"`
	Notes            string          `json:"notes"`
}

// UpdatePaymentRequest represents a request to update a payment
type UpdatePaymentRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	Currency         *string          `json:"currency" binding:"omitempty,len=3"`
	Status           *string          `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	Method           *string          `json:"method" binding:"omitempty,oneof=bank_transfer credit_card paypal stripe cash check other"`
	TransactionID    *string          `json:"transaction_id" binding:"omitempty,max=200"`
	PaymentGatewayID *string          `json:"payment_gateway_id" binding:"omitempty,max=200"`
	InvoiceID        *uuid.UUID       `json:"invoice_id"`
	PaymentDate      *time.Time       `json:"payment_date"`
	Notes            *string          `json:"notes"`
}

// PaymentListFilter represents filter options for the payment list
type PaymentListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	Method    string     `form:"method" binding:"omitempty,oneof=bank_transfer credit_card paypal stripe cash check other"`
	ProjectID *uuid.UUID `form:"project_id"`
	ClientID  *uuid.UUID `form:"client_id"`
	InvoiceID *uuid.UUID `form:"invoice_id"`
	Skip      int        `form:"skip" binding:"min=0"`
	Limit     int        `form:"limit" binding:"min=0,max=1000"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	Method           string          `json:"method"`
	TransactionID    string          `json:"transaction_id"`
	PaymentGatewayID string          `json:"payment_gateway_id"`
	ProjectID        uuid.UUID       `json:"project_id"`
	ClientID         uuid.UUID       `json:"client_id"`
	InvoiceID        *uuid.UUID      `json:"invoice_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain Payment to PaymentResponse
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           string(p.Status),
		Method:           string(p.Method),
		TransactionID:    p.TransactionID,
		PaymentGatewayID: p.PaymentGatewayID,
		ProjectID:        p.ProjectID,
		ClientID:         p.ClientID,
		InvoiceID:        p.InvoiceID,
		PaymentDate:      p.PaymentDate,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain Payments to responses
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=software hardware marketing travel office salary outsourcing other"`
	ProjectID   *uuid.UUID      `json:"project_id"`
	ReceiptURL  string          `json:"receipt_url" binding:"max=500"`
	Notes       string          `json:"notes"`
	ExpenseDate *time.Time      `json:"expense_date"`
	CreatedByID uuid.UUID       `json:"-"` // Set from JWT context
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category" binding:"omitempty,oneof=software hardware marketing travel office salary outsourcing other"`
	ProjectID   *uuid.UUID       `json:"project_id"`
	ReceiptURL  *string          `json:"receipt_url" binding:"omitempty,max=500"`
	Notes       *string          `json:"notes"`
	ExpenseDate *time.Time       `json:"expense_date"`
}

// ExpenseListFilter represents filter options for the expense list
type ExpenseListFilter struct {
	Search      string     `form:"search"`
	Category    string     `form:"category" binding:"omitempty,oneof=software hardware marketing travel office salary outsourcing other"`
	ProjectID   *uuid.UUID `form:"project_id"`
	CreatedByID *uuid.UUID `form:"created_by_id"`
	Skip        int        `form:"skip" binding:"min=0"`
	Limit       int        `form:"limit" binding:"min=0,max=1000"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ProjectID   *uuid.UUID      `json:"project_id"`
	CreatedByID uuid.UUID       `json:"created_by_id"`
	ReceiptURL  string          `json:"receipt_url"`
	Notes       string          `json:"notes"`
	ExpenseDate time.Time       `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain Expense to ExpenseResponse
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    string(e.Category),
		ProjectID:   e.ProjectID,
		CreatedByID: e.CreatedByID,
		ReceiptURL:  e.ReceiptURL,
		Notes:       e.Notes,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain Expenses to responses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(&e)
	}
	return responses
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to issue an invoice.
// An empty invoice number gets an auto-generated one.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"max=50"`
	ClientID      uuid.UUID       `json:"client_id" binding:"required"`
	ProjectID     *uuid.UUID      `json:"project_id"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Status        string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	IssueDate     *time.Time      `json:"issue_date"`
	DueDate       *time.Time      `json:"due_date"`
	Items         string          `json:"items"`
	Notes         string          `json:"notes"`
}

// UpdateInvoiceRequest represents a request to update an invoice
type UpdateInvoiceRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Status    *string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	ProjectID *uuid.UUID       `json:"project_id"`
	IssueDate *time.Time       `json:"issue_date"`
	DueDate   *time.Time       `json:"due_date"`
	Items     *string          `json:"items"`
	Notes     *string          `json:"notes"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	ClientID  *uuid.UUID `form:"client_id"`
	ProjectID *uuid.UUID `form:"project_id"`
	Skip      int        `form:"skip" binding:"min=0"`
	Limit     int        `form:"limit" binding:"min=0,max=1000"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	ClientID        uuid.UUID       `json:"client_id"`
	ProjectID       *uuid.UUID      `json:"project_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	IssueDate       time.Time       `json:"issue_date"`
	DueDate         *time.Time      `json:"due_date"`
	PaidDate        *time.Time      `json:"paid_date"`
	Items           string          `json:"items"`
	Notes           string          `json:"notes"`
	IsOverdue       bool            `json:"is_overdue"`
	DaysUntilDue    int             `json:"days_until_due"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse.
// PaidAmount and RemainingAmount are filled in by the service from
// completed payments linked to the invoice.
func ToInvoiceResponse(i *finance.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              i.ID,
		InvoiceNumber:   i.InvoiceNumber,
		ClientID:        i.ClientID,
		ProjectID:       i.ProjectID,
		Amount:          i.Amount,
		Status:          string(i.Status),
		IssueDate:       i.IssueDate,
		DueDate:         i.DueDate,
		PaidDate:        i.PaidDate,
		Items:           i.Items,
		Notes:           i.Notes,
		IsOverdue:       i.IsOverdue(),
		DaysUntilDue:    i.DaysUntilDue(),
		PaidAmount:      decimal.Zero,
		RemainingAmount: i.Amount,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain Invoices to responses
func ToInvoiceResponses(invoices []finance.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
