package notification

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindByUser finds notifications for a user, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// Save creates or updates a notification
	Save(ctx context.Context, notification *Notification) error

	// Delete deletes a notification
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser counts notifications for a user matching the filter
	CountByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error)

	// CountUnread counts unread notifications for a user
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAllRead marks every notification for a user as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
