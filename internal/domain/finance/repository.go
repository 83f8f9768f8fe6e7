package finance

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindAll finds all payments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts payments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByTransactionID checks if a payment with the transaction ID exists
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)

	// SumByProject sums payment amounts for a project filtered by status
	SumByProject(ctx context.Context, projectID uuid.UUID, status PaymentStatus) (decimal.Decimal, error)

	// SumByInvoice sums payment amounts linked to an invoice filtered by status
	SumByInvoice(ctx context.Context, invoiceID uuid.UUID, status PaymentStatus) (decimal.Decimal, error)

	// SumByStatus sums payment amounts with the given status
	SumByStatus(ctx context.Context, status PaymentStatus) (decimal.Decimal, error)

	// SumByStatusBetween sums payment amounts with the given status in a
	// payment date range
	SumByStatusBetween(ctx context.Context, status PaymentStatus, from, to time.Time) (decimal.Decimal, error)

	// CountByStatus counts payments with the given status
	CountByStatus(ctx context.Context, status PaymentStatus) (int64, error)
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll finds all expenses matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts expenses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// SumByProject sums expense amounts for a project
	SumByProject(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error)

	// SumAll sums all expense amounts
	SumAll(ctx context.Context) (decimal.Decimal, error)
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its invoice number
	FindByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)

	// FindAll finds all invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByNumber checks if an invoice with the number exists
	ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error)
}
