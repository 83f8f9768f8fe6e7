package models

import (
	"time"

	"github.com/crm/backend/internal/domain/project"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	AggregateModel
	Title         string           `gorm:"type:varchar(200);not null;index"`
	Description   string           `gorm:"type:text"`
	Status        project.Status   `gorm:"type:varchar(20);not null;default:'planning';index"`
	Priority      project.Priority `gorm:"type:varchar(20);not null;default:'medium';index"`
	StartDate     *time.Time
	EndDate       *time.Time `gorm:"index"`
	ActualEndDate *time.Time
	Budget        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	HourlyRate    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeveloperID   *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Title:         m.Title,
		Description:   m.Description,
		Status:        m.Status,
		Priority:      m.Priority,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		ActualEndDate: m.ActualEndDate,
		Budget:        m.Budget,
		HourlyRate:    m.HourlyRate,
		ClientID:      m.ClientID,
		DeveloperID:   m.DeveloperID,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Title = p.Title
	m.Description = p.Description
	m.Status = p.Status
	m.Priority = p.Priority
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.ActualEndDate = p.ActualEndDate
	m.Budget = p.Budget
	m.HourlyRate = p.HourlyRate
	m.ClientID = p.ClientID
	m.DeveloperID = p.DeveloperID
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}
