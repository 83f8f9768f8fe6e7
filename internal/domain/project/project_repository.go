package project

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCount is an aggregated count of projects per status
type StatusCount struct {
	Status Status
	Count  int64
}

// PriorityCount is an aggregated count of projects per priority
type PriorityCount struct {
	Priority Priority
	Count    int64
}

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindAll finds all projects matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)

	// FindByClient finds all projects for a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Project, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error

	// Delete deletes a project
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts projects matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus returns project counts grouped by status
	CountByStatus(ctx context.Context) ([]StatusCount, error)

	// CountByPriority returns project counts grouped by priority
	CountByPriority(ctx context.Context) ([]PriorityCount, error)

	// CountOverdue counts open projects whose end date has passed
	CountOverdue(ctx context.Context) (int64, error)

	// SumBudgetByClient sums project budgets for a client
	SumBudgetByClient(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error)

	// CountActiveByClient counts planning/in_progress projects for a client
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
