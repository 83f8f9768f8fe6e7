package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service copies the database file into the configured backup directory
type Service struct {
	sourcePath string
	backupDir  string
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a backup service for the given database file
func NewService(sourcePath, backupDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sourcePath: sourcePath,
		backupDir:  backupDir,
		logger:     logger,
		now:        time.Now,
	}
}

// Result describes a completed backup
type Result struct {
	Path      string
	SizeBytes int64
	CreatedAt time.Time
}

// Run copies the database file into the backup directory and returns
// the written path. The backup name is the source file name with a
// timestamp suffix, so repeated runs never overwrite each other.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.NewDomainError("BACKUP_SOURCE_MISSING",
				fmt.Sprintf("Database file not found: %s", s.sourcePath))
		}
		return nil, fmt.Errorf("failed to stat database file: %w", err)
	}
	if info.IsDir() {
		return nil, shared.NewDomainError("BACKUP_SOURCE_MISSING",
			fmt.Sprintf("Database path is a directory: %s", s.sourcePath))
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	createdAt := s.now()
	dest := filepath.Join(s.backupDir, backupName(s.sourcePath, createdAt))

	written, err := copyFile(s.sourcePath, dest)
	if err != nil {
		return nil, fmt.Errorf("failed to copy database file: %w", err)
	}

	s.logger.Info("database backup created",
		zap.String("path", dest),
		zap.Int64("size_bytes", written))

	return &Result{Path: dest, SizeBytes: written, CreatedAt: createdAt}, nil
}

// backupName builds "<stem>_backup_<YYYYMMDD_HHMMSS><ext>" from the
// source file name.
func backupName(sourcePath string, at time.Time) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_backup_%s%s", stem, at.Format("20060102_150405"), ext)
}

func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dest)
		return 0, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return 0, err
	}
	return written, nil
}
