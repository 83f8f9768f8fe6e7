package assistant

import (
	"context"

	"github.com/crm/backend/internal/infrastructure/assistant"
	"github.com/google/uuid"
)

// ProcessRequest represents an assistant invocation
type ProcessRequest struct {
	ActionType string     `json:"action_type" binding:"required"`
	InputText  string     `json:"input_text"`
	RelatedID  *uuid.UUID `json:"related_id"`
}

// ProcessResponse carries the assistant output
type ProcessResponse struct {
	OutputText string `json:"output_text"`
}

// AssistantService routes assistant requests to the configured provider
type AssistantService struct {
	provider assistant.Provider
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(provider assistant.Provider) *AssistantService {
	return &AssistantService{
		provider: provider,
	}
}

// Process runs one assistant action and returns its output
func (s *AssistantService) Process(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	output, err := s.provider.Process(ctx, assistant.Request{
		ActionType: req.ActionType,
		InputText:  req.InputText,
		RelatedID:  req.RelatedID,
	})
	if err != nil {
		return nil, err
	}

	return &ProcessResponse{OutputText: output}, nil
}
