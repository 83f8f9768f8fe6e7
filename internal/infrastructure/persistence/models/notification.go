package models

import (
	"github.com/crm/backend/internal/domain/notification"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationModel is the persistence model for the Notification domain entity.
type NotificationModel struct {
	AggregateModel
	UserID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title   string            `gorm:"type:varchar(200);not null"`
	Message string            `gorm:"type:text"`
	Link    string            `gorm:"type:varchar(500)"`
	Type    notification.Type `gorm:"type:varchar(20);not null;default:'info'"`
	Read    bool              `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		UserID:  m.UserID,
		Title:   m.Title,
		Message: m.Message,
		Link:    m.Link,
		Type:    m.Type,
		Read:    m.Read,
	}
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainAggregateRoot(n.BaseAggregateRoot)
	m.UserID = n.UserID
	m.Title = n.Title
	m.Message = n.Message
	m.Link = n.Link
	m.Type = n.Type
	m.Read = n.Read
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification entity.
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{}
	m.FromDomain(n)
	return m
}
