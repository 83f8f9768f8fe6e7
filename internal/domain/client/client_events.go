package client

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Client
const AggregateTypeClient = "Client"

// Client domain event types
const (
	EventTypeClientCreated  = "ClientCreated"
	EventTypeClientUpdated  = "ClientUpdated"
	EventTypeClientAssigned = "ClientAssigned"
)

// ClientCreatedEvent is published when a client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(c *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, c.ID),
		CompanyName:     c.CompanyName,
		Email:           c.Email,
	}
}

// ClientUpdatedEvent is published when a client's core fields change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	CompanyName string `json:"company_name"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(c *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, c.ID),
		CompanyName:     c.CompanyName,
	}
}

// ClientAssignedEvent is published when a client is assigned to a user
type ClientAssignedEvent struct {
	shared.BaseDomainEvent
	AssignedUserID *uuid.UUID `json:"assigned_user_id"`
}

// NewClientAssignedEvent creates a new ClientAssignedEvent
func NewClientAssignedEvent(c *Client, userID *uuid.UUID) *ClientAssignedEvent {
	return &ClientAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientAssigned, AggregateTypeClient, c.ID),
		AssignedUserID:  userID,
	}
}
