package finance

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypePayment = "Payment"
	AggregateTypeExpense = "Expense"
	AggregateTypeInvoice = "Invoice"
)

// Finance domain event types
const (
	EventTypePaymentCreated       = "PaymentCreated"
	EventTypePaymentStatusChanged = "PaymentStatusChanged"
	EventTypeExpenseCreated       = "ExpenseCreated"
	EventTypeInvoiceCreated       = "InvoiceCreated"
	EventTypeInvoiceStatusChanged = "InvoiceStatusChanged"
)

// PaymentCreatedEvent is published when a payment is recorded
type PaymentCreatedEvent struct {
	shared.BaseDomainEvent
	Amount    decimal.Decimal `json:"amount"`
	ProjectID uuid.UUID       `json:"project_id"`
	ClientID  uuid.UUID       `json:"client_id"`
}

// NewPaymentCreatedEvent creates a new PaymentCreatedEvent
func NewPaymentCreatedEvent(p *Payment) *PaymentCreatedEvent {
	return &PaymentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentCreated, AggregateTypePayment, p.ID),
		Amount:          p.Amount,
		ProjectID:       p.ProjectID,
		ClientID:        p.ClientID,
	}
}

// PaymentStatusChangedEvent is published when a payment's status changes
type PaymentStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus PaymentStatus `json:"old_status"`
	NewStatus PaymentStatus `json:"new_status"`
}

// NewPaymentStatusChangedEvent creates a new PaymentStatusChangedEvent
func NewPaymentStatusChangedEvent(p *Payment, oldStatus, newStatus PaymentStatus) *PaymentStatusChangedEvent {
	return &PaymentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentStatusChanged, AggregateTypePayment, p.ID),
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ExpenseCreatedEvent is published when an expense is recorded
type ExpenseCreatedEvent struct {
	shared.BaseDomainEvent
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category ExpenseCategory `json:"category"`
}

// NewExpenseCreatedEvent creates a new ExpenseCreatedEvent
func NewExpenseCreatedEvent(e *Expense) *ExpenseCreatedEvent {
	return &ExpenseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseCreated, AggregateTypeExpense, e.ID),
		Title:           e.Title,
		Amount:          e.Amount,
		Category:        e.Category,
	}
}

// InvoiceCreatedEvent is published when an invoice is created
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      uuid.UUID       `json:"client_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(i *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, i.ID),
		InvoiceNumber:   i.InvoiceNumber,
		ClientID:        i.ClientID,
		Amount:          i.Amount,
	}
}

// InvoiceStatusChangedEvent is published when an invoice's status changes
type InvoiceStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus InvoiceStatus `json:"old_status"`
	NewStatus InvoiceStatus `json:"new_status"`
}

// NewInvoiceStatusChangedEvent creates a new InvoiceStatusChangedEvent
func NewInvoiceStatusChangedEvent(i *Invoice, oldStatus, newStatus InvoiceStatus) *InvoiceStatusChangedEvent {
	return &InvoiceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceStatusChanged, AggregateTypeInvoice, i.ID),
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
