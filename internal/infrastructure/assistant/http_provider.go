package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// HTTPProviderConfig holds settings for the remote chat-completion provider
type HTTPProviderConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// HTTPProvider delegates assistant requests to a chat-completion API
type HTTPProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPProvider creates a new HTTPProvider
func NewHTTPProvider(cfg HTTPProviderConfig) *HTTPProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// prompts per action type; the remote model does the phrasing
var actionPrompts = map[string]string{
	ActionMessageSummary:        "Summarize the following client message in two sentences.",
	ActionFollowUpReminder:      "Draft a short follow-up reminder for this context.",
	ActionInvoiceTextGeneration: "Draft a short invoice cover text for this context.",
}

// Process implements Provider
func (p *HTTPProvider) Process(ctx context.Context, req Request) (string, error) {
	prompt, ok := actionPrompts[req.ActionType]
	if !ok {
		return "", shared.NewDomainError("INVALID_INPUT", "Invalid action_type")
	}

	input := req.InputText
	if req.RelatedID != nil {
		input = fmt.Sprintf("%s\n\nRelated record: %s", input, req.RelatedID.String())
	}

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: input},
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.logger.Error("assistant request failed", zap.Error(err))
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		p.logger.Error("assistant returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Ensure HTTPProvider implements Provider
var _ Provider = (*HTTPProvider)(nil)
