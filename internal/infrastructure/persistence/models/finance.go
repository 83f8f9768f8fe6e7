package models

import (
	"time"

	"github.com/crm/backend/internal/domain/finance"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	AggregateModel
	Amount           decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Currency         string                `gorm:"type:varchar(3);not null;default:'USD'"`
	Status           finance.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Method           finance.PaymentMethod `gorm:"type:varchar(20);not null;index"`
	TransactionID    string                `gorm:"type:varchar(200);index"`
	PaymentGatewayID string                `gorm:"type:varchar(200)"`
	ProjectID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	ClientID         uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceID        *uuid.UUID            `gorm:"type:uuid;index"`
	PaymentDate      time.Time             `gorm:"not null;index"`
	Notes            string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Amount:           m.Amount,
		Currency:         m.Currency,
		Status:           m.Status,
		Method:           m.Method,
		TransactionID:    m.TransactionID,
		PaymentGatewayID: m.PaymentGatewayID,
		ProjectID:        m.ProjectID,
		ClientID:         m.ClientID,
		InvoiceID:        m.InvoiceID,
		PaymentDate:      m.PaymentDate,
		Notes:            m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Amount = p.Amount
	m.Currency = p.Currency
	m.Status = p.Status
	m.Method = p.Method
	m.TransactionID = p.TransactionID
	m.PaymentGatewayID = p.PaymentGatewayID
	m.ProjectID = p.ProjectID
	m.ClientID = p.ClientID
	m.InvoiceID = p.InvoiceID
	m.PaymentDate = p.PaymentDate
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	AggregateModel
	Title       string                  `gorm:"type:varchar(200);not null"`
	Amount      decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Category    finance.ExpenseCategory `gorm:"type:varchar(20);not null;index"`
	ProjectID   *uuid.UUID              `gorm:"type:uuid;index"`
	CreatedByID uuid.UUID               `gorm:"type:uuid;not null;index"`
	ReceiptURL  string                  `gorm:"type:varchar(500)"`
	Notes       string                  `gorm:"type:text"`
	ExpenseDate time.Time               `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Title:       m.Title,
		Amount:      m.Amount,
		Category:    m.Category,
		ProjectID:   m.ProjectID,
		CreatedByID: m.CreatedByID,
		ReceiptURL:  m.ReceiptURL,
		Notes:       m.Notes,
		ExpenseDate: m.ExpenseDate,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.Title = e.Title
	m.Amount = e.Amount
	m.Category = e.Category
	m.ProjectID = e.ProjectID
	m.CreatedByID = e.CreatedByID
	m.ReceiptURL = e.ReceiptURL
	m.Notes = e.Notes
	m.ExpenseDate = e.ExpenseDate
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	AggregateModel
	InvoiceNumber string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	ProjectID     *uuid.UUID            `gorm:"type:uuid;index"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status        finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	IssueDate     time.Time             `gorm:"not null"`
	DueDate       *time.Time            `gorm:"index"`
	PaidDate      *time.Time
	Items         string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		InvoiceNumber: m.InvoiceNumber,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
		Amount:        m.Amount,
		Status:        m.Status,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		PaidDate:      m.PaidDate,
		Items:         m.Items,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *finance.Invoice) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.InvoiceNumber = i.InvoiceNumber
	m.ClientID = i.ClientID
	m.ProjectID = i.ProjectID
	m.Amount = i.Amount
	m.Status = i.Status
	m.IssueDate = i.IssueDate
	m.DueDate = i.DueDate
	m.PaidDate = i.PaidDate
	m.Items = i.Items
	m.Notes = i.Notes
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
