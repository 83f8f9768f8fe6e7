package notification

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Type represents the kind of notification
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// IsValid checks if the type is a valid notification Type
func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeWarning, TypeSuccess, TypeError:
		return true
	}
	return false
}

// Notification represents an in-app message for a user
type Notification struct {
	shared.BaseAggregateRoot
	UserID  uuid.UUID
	Title   string
	Message string
	Link    string
	Type    Type
	Read    bool
}

// NewNotification creates a new unread notification
func NewNotification(userID uuid.UUID, title, message string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}

	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Title:             title,
		Message:           message,
		Type:              TypeInfo,
	}, nil
}

// SetLink sets the navigation link shown with the notification
func (n *Notification) SetLink(link string) error {
	if len(link) > 500 {
		return shared.NewDomainError("INVALID_LINK", "Link cannot exceed 500 characters")
	}

	n.Link = strings.TrimSpace(link)
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// SetType sets the notification type
func (n *Notification) SetType(t Type) error {
	if !t.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Type must be one of: info, warning, success, error")
	}

	n.Type = t
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	n.Read = true
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
}
