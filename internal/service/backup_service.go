package service

import (
	"context"
	"time"

	apperrors "bibleapp/backend/internal/errors"
	"bibleapp/backend/internal/repository"
)

// BackupDocument is the backup wire format: a full dump of the user
// data tables under a small envelope.
type BackupDocument struct {
	ExportedAt string                              `json:"exportedAt"`
	Source     string                              `json:"source"`
	Tables     map[string][]map[string]interface{} `json:"tables"`
}

type BackupService struct {
	repo   *repository.BackupRepository
	source string
	now    func() time.Time
}

func NewBackupService(repo *repository.BackupRepository, source string, now func() time.Time) *BackupService {
	return &BackupService{repo: repo, source: source, now: now}
}

// Export dumps every user-data table into one document.
func (s *BackupService) Export(ctx context.Context) (*BackupDocument, *apperrors.APIError) {
	tables, err := s.repo.ExportTables(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to export data")
	}
	return &BackupDocument{
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		Source:     s.source,
		Tables:     tables,
	}, nil
}

// Import validates the document shape before touching the store, then
// wipes and reloads every known table in one transaction. A rejected
// document never triggers a partial wipe.
func (s *BackupService) Import(ctx context.Context, doc BackupDocument) *apperrors.APIError {
	if doc.Tables == nil {
		return apperrors.BadRequest("invalid_backup", "backup document has no tables object")
	}
	if doc.ExportedAt == "" {
		return apperrors.BadRequest("invalid_backup", "backup document has no exportedAt timestamp")
	}
	for name, rows := range doc.Tables {
		for _, row := range rows {
			if row == nil {
				return apperrors.BadRequest("invalid_backup", "table "+name+" contains a null row")
			}
		}
	}

	if err := s.repo.ImportTables(ctx, doc.Tables); err != nil {
		return apperrors.Internal("failed to import data")
	}
	return nil
}
