package project

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Project
const AggregateTypeProject = "Project"

// Project domain event types
const (
	EventTypeProjectCreated           = "ProjectCreated"
	EventTypeProjectStatusChanged     = "ProjectStatusChanged"
	EventTypeProjectDeveloperAssigned = "ProjectDeveloperAssigned"
)

// ProjectCreatedEvent is published when a project is created
type ProjectCreatedEvent struct {
	shared.BaseDomainEvent
	Title    string    `json:"title"`
	ClientID uuid.UUID `json:"client_id"`
}

// NewProjectCreatedEvent creates a new ProjectCreatedEvent
func NewProjectCreatedEvent(p *Project) *ProjectCreatedEvent {
	return &ProjectCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectCreated, AggregateTypeProject, p.ID),
		Title:           p.Title,
		ClientID:        p.ClientID,
	}
}

// ProjectStatusChangedEvent is published when a project's status changes
type ProjectStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
}

// NewProjectStatusChangedEvent creates a new ProjectStatusChangedEvent
func NewProjectStatusChangedEvent(p *Project, oldStatus, newStatus Status) *ProjectStatusChangedEvent {
	return &ProjectStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectStatusChanged, AggregateTypeProject, p.ID),
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ProjectDeveloperAssignedEvent is published when a developer is assigned
type ProjectDeveloperAssignedEvent struct {
	shared.BaseDomainEvent
	DeveloperID *uuid.UUID `json:"developer_id"`
}

// NewProjectDeveloperAssignedEvent creates a new ProjectDeveloperAssignedEvent
func NewProjectDeveloperAssignedEvent(p *Project, developerID *uuid.UUID) *ProjectDeveloperAssignedEvent {
	return &ProjectDeveloperAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectDeveloperAssigned, AggregateTypeProject, p.ID),
		DeveloperID:     developerID,
	}
}
