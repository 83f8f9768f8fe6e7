package models

import (
	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	AggregateModel
	CompanyName        string     `gorm:"type:varchar(200);not null;index"`
	ContactPersonName  string     `gorm:"type:varchar(200)"`
	Email              string     `gorm:"type:varchar(200);index"`
	Phone              string     `gorm:"type:varchar(50)"`
	Address            string     `gorm:"type:text"`
	Industry           string     `gorm:"type:varchar(100);index"`
	PlatformPreference string     `gorm:"type:varchar(100)"`
	Notes              string     `gorm:"type:text"`
	AssignedUserID     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		CompanyName:        m.CompanyName,
		ContactPersonName:  m.ContactPersonName,
		Email:              m.Email,
		Phone:              m.Phone,
		Address:            m.Address,
		Industry:           m.Industry,
		PlatformPreference: m.PlatformPreference,
		Notes:              m.Notes,
		AssignedUserID:     m.AssignedUserID,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *client.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CompanyName = c.CompanyName
	m.ContactPersonName = c.ContactPersonName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.Industry = c.Industry
	m.PlatformPreference = c.PlatformPreference
	m.Notes = c.Notes
	m.AssignedUserID = c.AssignedUserID
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// ClientNoteModel is the persistence model for the client Note entity.
type ClientNoteModel struct {
	BaseModel
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author   string    `gorm:"type:varchar(200)"`
	Text     string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ClientNoteModel) TableName() string {
	return "client_notes"
}

// ToDomain converts the persistence model to a domain Note entity.
func (m *ClientNoteModel) ToDomain() *client.Note {
	return &client.Note{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientID:   m.ClientID,
		Author:     m.Author,
		Text:       m.Text,
	}
}

// FromDomain populates the persistence model from a domain Note entity.
func (m *ClientNoteModel) FromDomain(n *client.Note) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.ClientID = n.ClientID
	m.Author = n.Author
	m.Text = n.Text
}

// ClientNoteModelFromDomain creates a new persistence model from a domain Note entity.
func ClientNoteModelFromDomain(n *client.Note) *ClientNoteModel {
	m := &ClientNoteModel{}
	m.FromDomain(n)
	return m
}

// ClientHistoryModel is the persistence model for the client HistoryEntry entity.
type ClientHistoryModel struct {
	BaseModel
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Event    string    `gorm:"type:text;not null"`
	Actor    string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ClientHistoryModel) TableName() string {
	return "client_history"
}

// ToDomain converts the persistence model to a domain HistoryEntry entity.
func (m *ClientHistoryModel) ToDomain() *client.HistoryEntry {
	return &client.HistoryEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientID:   m.ClientID,
		Event:      m.Event,
		Actor:      m.Actor,
	}
}

// FromDomain populates the persistence model from a domain HistoryEntry entity.
func (m *ClientHistoryModel) FromDomain(e *client.HistoryEntry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ClientID = e.ClientID
	m.Event = e.Event
	m.Actor = e.Actor
}

// ClientHistoryModelFromDomain creates a new persistence model from a domain HistoryEntry entity.
func ClientHistoryModelFromDomain(e *client.HistoryEntry) *ClientHistoryModel {
	m := &ClientHistoryModel{}
	m.FromDomain(e)
	return m
}
