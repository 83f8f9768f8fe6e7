package finance

import (
	"math"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice represents a bill issued to a client
// It is the aggregate root for invoice-related operations
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string
	ClientID      uuid.UUID
	ProjectID     *uuid.UUID
	Amount        decimal.Decimal
	Status        InvoiceStatus
	IssueDate     time.Time
	DueDate       *time.Time
	PaidDate      *time.Time
	Items         string
	Notes         string
}

// NewInvoice creates a new invoice. An empty invoiceNumber gets an
// auto-generated one.
func NewInvoice(invoiceNumber string, clientID uuid.UUID, amount decimal.Decimal) (*Invoice, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		invoiceNumber = GenerateInvoiceNumber()
	}
	if len(invoiceNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 50 characters")
	}

	invoice := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		ClientID:          clientID,
		Amount:            amount,
		Status:            InvoiceStatusDraft,
		IssueDate:         time.Now(),
	}

	invoice.AddDomainEvent(NewInvoiceCreatedEvent(invoice))

	return invoice, nil
}

// GenerateInvoiceNumber produces a short unique invoice number
func GenerateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// SetAmount updates the invoice amount
func (i *Invoice) SetAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	i.Amount = amount
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// ChangeStatus sets the invoice status
func (i *Invoice) ChangeStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: draft, sent, paid, overdue, cancelled")
	}

	oldStatus := i.Status
	i.Status = status
	if status == InvoiceStatusPaid && i.PaidDate == nil {
		now := time.Now()
		i.PaidDate = &now
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, oldStatus, status))

	return nil
}

// MarkPaid marks the invoice as paid now
func (i *Invoice) MarkPaid() error {
	return i.ChangeStatus(InvoiceStatusPaid)
}

// LinkProject associates the invoice with a project
func (i *Invoice) LinkProject(projectID *uuid.UUID) {
	i.ProjectID = projectID
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// SetDates sets issue and due dates
func (i *Invoice) SetDates(issueDate time.Time, dueDate *time.Time) error {
	if dueDate != nil && dueDate.Before(issueDate) {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be before issue date")
	}

	i.IssueDate = issueDate
	i.DueDate = dueDate
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetItems sets the free-form line item description
func (i *Invoice) SetItems(items string) {
	i.Items = items
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// SetNotes sets the invoice notes
func (i *Invoice) SetNotes(notes string) {
	i.Notes = notes
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// IsOverdue returns true if the due date has passed and the invoice
// is still collectible
func (i *Invoice) IsOverdue() bool {
	if i.DueDate == nil {
		return false
	}
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return false
	}
	return i.DueDate.Before(time.Now())
}

// DaysUntilDue returns the number of days until the due date, negative
// when past due. Returns zero when no due date is set.
func (i *Invoice) DaysUntilDue() int {
	if i.DueDate == nil {
		return 0
	}
	return int(math.Ceil(time.Until(*i.DueDate).Hours() / 24))
}

// RemainingAmount returns the amount still owed given what has been paid
func (i *Invoice) RemainingAmount(paidAmount decimal.Decimal) decimal.Decimal {
	remaining := i.Amount.Sub(paidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
