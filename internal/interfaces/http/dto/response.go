package dto

import "github.com/google/uuid"

// ErrorInfo describes a single API error
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse is the envelope for all error bodies
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorInfo{Code: code, Message: message}}
}

// NewErrorResponseWithRequestID creates an error response carrying the
// request correlation ID. Only internal errors expose it.
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	return ErrorResponse{Error: ErrorInfo{Code: code, Message: message, RequestID: requestID}}
}

// NewListResponse builds the collection envelope. The items land under the
// resource name so GET /clients returns {"clients": [...], ...}.
func NewListResponse(resource string, items any, total int64, page, perPage int) map[string]any {
	return map[string]any{
		resource:   items,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	}
}

// IDRequest represents a request with a UUID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// UUID parses the bound ID. Binding validation guarantees it parses.
func (r IDRequest) UUID() uuid.UUID {
	return uuid.MustParse(r.ID)
}
