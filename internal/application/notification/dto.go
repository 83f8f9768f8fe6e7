package notification

import (
	"time"

	"github.com/crm/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// CreateNotificationRequest represents a request to create a notification
type CreateNotificationRequest struct {
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	Title   string    `json:"title" binding:"required,min=1,max=200"`
	Message string    `json:"message"`
	Link    string    `json:"link" binding:"max=500"`
	Type    string    `json:"type" binding:"omitempty,oneof=info warning success error"`
}

// NotificationListFilter represents filter options for the notification list
type NotificationListFilter struct {
	Read  *bool  `form:"read"`
	Type  string `form:"type" binding:"omitempty,oneof=info warning success error"`
	Skip  int    `form:"skip" binding:"min=0"`
	Limit int    `form:"limit" binding:"min=0,max=1000"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse carries the unread notification count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ToNotificationResponse converts a domain Notification to a response
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain Notifications
func ToNotificationResponses(notifications []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(&n)
	}
	return responses
}
