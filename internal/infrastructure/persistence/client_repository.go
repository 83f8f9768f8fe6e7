package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/crm/backend/internal/domain/client"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a client by email
func (r *GormClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := models.ClientModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByEmail checks if a client with the given email exists
func (r *GormClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ClientSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir) + ", id ASC")

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(company_name) LIKE ? OR LOWER(contact_person_name) LIKE ? OR LOWER(email) LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "industry":
			query = query.Where("industry = ?", value)
		case "assigned_user_id":
			query = query.Where("assigned_user_id = ?", value)
		case "platform_preference":
			query = query.Where("platform_preference = ?", value)
		}
	}

	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ client.ClientRepository = (*GormClientRepository)(nil)

// GormClientNoteRepository implements NoteRepository using GORM
type GormClientNoteRepository struct {
	db *gorm.DB
}

// NewGormClientNoteRepository creates a new GormClientNoteRepository
func NewGormClientNoteRepository(db *gorm.DB) *GormClientNoteRepository {
	return &GormClientNoteRepository{db: db}
}

// FindByID finds a note by its ID
func (r *GormClientNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Note, error) {
	var model models.ClientNoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByClient finds notes for a client, newest first
func (r *GormClientNoteRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]client.Note, error) {
	var noteModels []models.ClientNoteModel
	query := r.db.WithContext(ctx).
		Model(&models.ClientNoteModel{}).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id ASC")

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset).Limit(filter.PageSize)
	}

	if err := query.Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]client.Note, len(noteModels))
	for i, model := range noteModels {
		notes[i] = *model.ToDomain()
	}
	return notes, nil
}

// Save persists a new note
func (r *GormClientNoteRepository) Save(ctx context.Context, note *client.Note) error {
	model := models.ClientNoteModelFromDomain(note)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a note
func (r *GormClientNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientNoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByClient counts notes for a client
func (r *GormClientNoteRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientNoteModel{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormClientNoteRepository implements NoteRepository
var _ client.NoteRepository = (*GormClientNoteRepository)(nil)

// GormClientHistoryRepository implements HistoryRepository using GORM
type GormClientHistoryRepository struct {
	db *gorm.DB
}

// NewGormClientHistoryRepository creates a new GormClientHistoryRepository
func NewGormClientHistoryRepository(db *gorm.DB) *GormClientHistoryRepository {
	return &GormClientHistoryRepository{db: db}
}

// FindByClient finds history entries for a client, newest first
func (r *GormClientHistoryRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]client.HistoryEntry, error) {
	var historyModels []models.ClientHistoryModel
	query := r.db.WithContext(ctx).
		Model(&models.ClientHistoryModel{}).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id ASC")

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset).Limit(filter.PageSize)
	}

	if err := query.Find(&historyModels).Error; err != nil {
		return nil, err
	}

	entries := make([]client.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Save persists a new history entry
func (r *GormClientHistoryRepository) Save(ctx context.Context, entry *client.HistoryEntry) error {
	model := models.ClientHistoryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountByClient counts history entries for a client
func (r *GormClientHistoryRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientHistoryModel{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormClientHistoryRepository implements HistoryRepository
var _ client.HistoryRepository = (*GormClientHistoryRepository)(nil)
