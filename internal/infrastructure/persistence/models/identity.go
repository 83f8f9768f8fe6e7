package models

import (
	"time"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	FullName       string        `gorm:"type:varchar(200);not null"`
	Email          string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	HashedPassword string        `gorm:"type:varchar(200);not null"`
	Role           identity.Role `gorm:"type:varchar(20);not null;default:'user';index"`
	IsActive       bool          `gorm:"not null;default:true;index"`
	IsVerified     bool          `gorm:"not null;default:false"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		FullName:       m.FullName,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		Role:           m.Role,
		IsActive:       m.IsActive,
		IsVerified:     m.IsVerified,
		LastLoginAt:    m.LastLoginAt,
		FailedAttempts: m.FailedAttempts,
		LockedUntil:    m.LockedUntil,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.FullName = u.FullName
	m.Email = u.Email
	m.HashedPassword = u.HashedPassword
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.IsVerified = u.IsVerified
	m.LastLoginAt = u.LastLoginAt
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
