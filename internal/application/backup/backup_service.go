package backup

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/backup"
	"github.com/crm/backend/internal/infrastructure/config"
)

// BackupResponse describes a completed database backup
type BackupResponse struct {
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService creates file backups of the database. File backups only
// make sense for the sqlite driver; postgres deployments use their own
// tooling.
type BackupService struct {
	driver string
	engine *backup.Service
}

// NewBackupService creates a new BackupService
func NewBackupService(driver string, engine *backup.Service) *BackupService {
	return &BackupService{
		driver: driver,
		engine: engine,
	}
}

// Run creates a backup of the database file
func (s *BackupService) Run(ctx context.Context) (*BackupResponse, error) {
	if s.driver != config.DriverSQLite {
		return nil, shared.NewDomainError("INVALID_INPUT", "File backup is only available for the sqlite driver")
	}

	result, err := s.engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	return &BackupResponse{
		Path:      result.Path,
		SizeBytes: result.SizeBytes,
		CreatedAt: result.CreatedAt,
	}, nil
}
