package finance

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodPaypal,
		PaymentMethodStripe, PaymentMethodCash, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// DefaultCurrency is used when a payment does not specify one
const DefaultCurrency = "USD"

// Payment represents money received from a client for a project
// It is the aggregate root for payment-related operations
type Payment struct {
	shared.BaseAggregateRoot
	Amount           decimal.Decimal
	Currency         string
	Status           PaymentStatus
	Method           PaymentMethod
	TransactionID    string
	PaymentGatewayID string
	ProjectID        uuid.UUID
	ClientID         uuid.UUID
	InvoiceID        *uuid.UUID
	PaymentDate      time.Time
	Notes            string
}

// NewPayment creates a new payment with required fields
func NewPayment(amount decimal.Decimal, method PaymentMethod, projectID, clientID uuid.UUID) (*Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}

	payment := &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Amount:            amount,
		Currency:          DefaultCurrency,
		Status:            PaymentStatusPending,
		Method:            method,
		ProjectID:         projectID,
		ClientID:          clientID,
		PaymentDate:       time.Now(),
	}

	payment.AddDomainEvent(NewPaymentCreatedEvent(payment))

	return payment, nil
}

// SetAmount updates the payment amount
func (p *Payment) SetAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	p.Amount = amount
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCurrency sets the payment currency code
func (p *Payment) SetCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter code")
	}

	p.Currency = currency
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ChangeStatus sets the payment status
func (p *Payment) ChangeStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: pending, completed, failed, refunded")
	}

	oldStatus := p.Status
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPaymentStatusChangedEvent(p, oldStatus, status))

	return nil
}

// ChangeMethod sets the payment method
func (p *Payment) ChangeMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	p.Method = method
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetTransactionRef sets the external transaction references
func (p *Payment) SetTransactionRef(transactionID, gatewayID string) error {
	if len(transactionID) > 200 {
		return shared.NewDomainError("INVALID_TRANSACTION_ID", "Transaction ID cannot exceed 200 characters")
	}
	if len(gatewayID) > 200 {
		return shared.NewDomainError("INVALID_GATEWAY_ID", "Gateway ID cannot exceed 200 characters")
	}

	p.TransactionID = strings.TrimSpace(transactionID)
	p.PaymentGatewayID = strings.TrimSpace(gatewayID)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// LinkInvoice associates the payment with an invoice
func (p *Payment) LinkInvoice(invoiceID *uuid.UUID) {
	p.InvoiceID = invoiceID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPaymentDate sets when the payment was made
func (p *Payment) SetPaymentDate(paymentDate time.Time) {
	p.PaymentDate = paymentDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetNotes sets the payment notes
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsCompleted returns true if the payment is completed
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
