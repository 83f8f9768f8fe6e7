package assistant

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Action types accepted by the assistant.
const (
	ActionMessageSummary        = "message_summary"
	ActionFollowUpReminder      = "follow_up_reminder"
	ActionInvoiceTextGeneration = "invoice_text_generation"
)

// Request carries one assistant invocation
type Request struct {
	ActionType string
	InputText  string
	RelatedID  *uuid.UUID
}

// Provider generates assistant output for a request
type Provider interface {
	Process(ctx context.Context, req Request) (string, error)
}

// StaticProvider produces deterministic responses without calling any
// external service. It is the default provider.
type StaticProvider struct{}

// NewStaticProvider creates a new StaticProvider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Process implements Provider
func (p *StaticProvider) Process(_ context.Context, req Request) (string, error) {
	switch req.ActionType {
	case ActionMessageSummary:
		return fmt.Sprintf("Summary of: %s", req.InputText), nil
	case ActionFollowUpReminder:
		return fmt.Sprintf("Reminder set for related ID %s", relatedIDString(req.RelatedID)), nil
	case ActionInvoiceTextGeneration:
		return fmt.Sprintf("Invoice generated for related ID %s", relatedIDString(req.RelatedID)), nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT", "Invalid action_type")
	}
}

func relatedIDString(id *uuid.UUID) string {
	if id == nil {
		return "None"
	}
	return id.String()
}

// Ensure StaticProvider implements Provider
var _ Provider = (*StaticProvider)(nil)
