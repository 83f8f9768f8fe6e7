package finance

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategorySoftware    ExpenseCategory = "software"
	ExpenseCategoryHardware    ExpenseCategory = "hardware"
	ExpenseCategoryMarketing   ExpenseCategory = "marketing"
	ExpenseCategoryTravel      ExpenseCategory = "travel"
	ExpenseCategoryOffice      ExpenseCategory = "office"
	ExpenseCategorySalary      ExpenseCategory = "salary"
	ExpenseCategoryOutsourcing ExpenseCategory = "outsourcing"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategorySoftware, ExpenseCategoryHardware, ExpenseCategoryMarketing,
		ExpenseCategoryTravel, ExpenseCategoryOffice, ExpenseCategorySalary,
		ExpenseCategoryOutsourcing, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense represents money spent, optionally linked to a project
// It is the aggregate root for expense-related operations
type Expense struct {
	shared.BaseAggregateRoot
	Title       string
	Amount      decimal.Decimal
	Category    ExpenseCategory
	ProjectID   *uuid.UUID
	CreatedByID uuid.UUID
	ReceiptURL  string
	Notes       string
	ExpenseDate time.Time
}

// NewExpense creates a new expense with required fields
func NewExpense(title string, amount decimal.Decimal, category ExpenseCategory, createdByID uuid.UUID) (*Expense, error) {
	if err := validateExpenseTitle(title); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Creator user ID cannot be empty")
	}

	expense := &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Amount:            amount,
		Category:          category,
		CreatedByID:       createdByID,
		ExpenseDate:       time.Now(),
	}

	expense.AddDomainEvent(NewExpenseCreatedEvent(expense))

	return expense, nil
}

// Update updates the expense's core fields
func (e *Expense) Update(title string, amount decimal.Decimal, category ExpenseCategory) error {
	if err := validateExpenseTitle(title); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}

	e.Title = strings.TrimSpace(title)
	e.Amount = amount
	e.Category = category
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// LinkProject associates the expense with a project
func (e *Expense) LinkProject(projectID *uuid.UUID) {
	e.ProjectID = projectID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetReceiptURL sets the receipt attachment URL
func (e *Expense) SetReceiptURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_RECEIPT_URL", "Receipt URL cannot exceed 500 characters")
	}

	e.ReceiptURL = strings.TrimSpace(url)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetNotes sets the expense notes
func (e *Expense) SetNotes(notes string) {
	e.Notes = notes
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetExpenseDate sets when the expense was incurred
func (e *Expense) SetExpenseDate(expenseDate time.Time) {
	e.ExpenseDate = expenseDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

func validateExpenseTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}
