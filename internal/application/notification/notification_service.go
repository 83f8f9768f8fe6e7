package notification

import (
	"context"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/notification"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationService handles in-app notification operations.
// Notifications are always scoped to their recipient: list, read and
// count operations take the authenticated user's ID.
type NotificationService struct {
	notificationRepo notification.NotificationRepository
	userRepo         identity.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	userRepo identity.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Create creates a new notification for a user
func (s *NotificationService) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	n, err := notification.NewNotification(req.UserID, req.Title, req.Message)
	if err != nil {
		return nil, err
	}

	if req.Link != "" {
		if err := n.SetLink(req.Link); err != nil {
			return nil, err
		}
	}

	if req.Type != "" {
		if err := n.SetType(notification.Type(req.Type)); err != nil {
			return nil, err
		}
	}

	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// GetByID retrieves a notification, enforcing recipient ownership
func (s *NotificationService) GetByID(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// ListByUser retrieves a user's notifications, newest first
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID, filter NotificationListFilter) ([]NotificationResponse, int64, error) {
	domainFilter := shared.FilterFromSkipLimit(filter.Skip, filter.Limit, "", "", "")

	if filter.Read != nil {
		domainFilter.Filters["read"] = *filter.Read
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.notificationRepo.CountByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToNotificationResponses(notifications), total, nil
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	n.MarkRead()

	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// MarkAllRead marks every notification of the user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the user's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UnreadCountResponse{Count: count}, nil
}

// Delete deletes one of the user's notifications
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, notificationID); err != nil {
		return err
	}

	return s.notificationRepo.Delete(ctx, notificationID)
}

// findOwned loads a notification and hides other users' notifications
// behind not-found.
func (s *NotificationService) findOwned(ctx context.Context, userID, notificationID uuid.UUID) (*notification.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, shared.ErrNotFound
	}
	return n, nil
}
