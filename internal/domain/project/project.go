package project

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the status of a project
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Priority represents the priority of a project
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Project represents a client project
// It is the aggregate root for project-related operations
type Project struct {
	shared.BaseAggregateRoot
	Title         string
	Description   string
	Status        Status
	Priority      Priority
	StartDate     *time.Time
	EndDate       *time.Time
	ActualEndDate *time.Time
	Budget        decimal.Decimal
	HourlyRate    decimal.Decimal
	ClientID      uuid.UUID
	DeveloperID   *uuid.UUID
}

// NewProject creates a new project with required fields
func NewProject(title string, clientID uuid.UUID) (*Project, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}

	project := &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Status:            StatusPlanning,
		Priority:          PriorityMedium,
		Budget:            decimal.Zero,
		HourlyRate:        decimal.Zero,
		ClientID:          clientID,
	}

	project.AddDomainEvent(NewProjectCreatedEvent(project))

	return project, nil
}

// Update updates the project's title and description
func (p *Project) Update(title, description string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ChangeStatus sets the project status.
// Status values are labels, not a transition machine: any status
// may be replaced by any other.
func (p *Project) ChangeStatus(status Status) error {
	if err := validateStatus(status); err != nil {
		return err
	}

	oldStatus := p.Status
	p.Status = status
	if status == StatusCompleted && p.ActualEndDate == nil {
		now := time.Now()
		p.ActualEndDate = &now
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProjectStatusChangedEvent(p, oldStatus, status))

	return nil
}

// ChangePriority sets the project priority
func (p *Project) ChangePriority(priority Priority) error {
	if err := validatePriority(priority); err != nil {
		return err
	}

	p.Priority = priority
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetSchedule sets start and end dates
func (p *Project) SetSchedule(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return shared.NewDomainError("INVALID_SCHEDULE", "End date cannot be before start date")
	}

	p.StartDate = startDate
	p.EndDate = endDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetActualEndDate records when the project actually finished
func (p *Project) SetActualEndDate(actualEndDate *time.Time) {
	p.ActualEndDate = actualEndDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetBudget sets the project budget
func (p *Project) SetBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return shared.NewDomainError("INVALID_BUDGET", "Budget cannot be negative")
	}

	p.Budget = budget
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetHourlyRate sets the billing rate
func (p *Project) SetHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_HOURLY_RATE", "Hourly rate cannot be negative")
	}

	p.HourlyRate = rate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AssignDeveloper assigns a developer to the project
func (p *Project) AssignDeveloper(developerID *uuid.UUID) {
	p.DeveloperID = developerID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProjectDeveloperAssignedEvent(p, developerID))
}

// IsOverdue returns true if the end date has passed and the project
// is still open
func (p *Project) IsOverdue() bool {
	if p.EndDate == nil {
		return false
	}
	if p.Status == StatusCompleted || p.Status == StatusCancelled {
		return false
	}
	return p.EndDate.Before(time.Now())
}

// IsActive returns true if the project counts toward active work
func (p *Project) IsActive() bool {
	return p.Status == StatusPlanning || p.Status == StatusInProgress
}

// ProfitMargin computes (payments - expenses) / payments * 100.
// Returns zero when payments are zero.
func ProfitMargin(totalPayments, totalExpenses decimal.Decimal) decimal.Decimal {
	if totalPayments.IsZero() {
		return decimal.Zero
	}
	return totalPayments.Sub(totalExpenses).Div(totalPayments).Mul(decimal.NewFromInt(100))
}

// ValidStatuses returns all valid status values
func ValidStatuses() []Status {
	return []Status{StatusPlanning, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled}
}

// ValidPriorities returns all valid priority values
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Validation functions

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validateStatus(status Status) error {
	switch status {
	case StatusPlanning, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: planning, in_progress, on_hold, completed, cancelled")
	}
}

func validatePriority(priority Priority) error {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRIORITY", "Priority must be one of: low, medium, high, urgent")
	}
}
