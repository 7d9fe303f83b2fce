package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
)

// SettingsRepository manages the single app_settings row (id = 1).
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.AppSettings, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT language, theme, updated_at FROM app_settings WHERE id = 1`,
	)

	var settings model.AppSettings
	var updatedAt string
	if err := row.Scan(&settings.Language, &settings.Theme, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	parsedUpdatedAt, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse settings updated_at: %w", err)
	}
	settings.UpdatedAt = parsedUpdatedAt
	return &settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings *model.AppSettings) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO app_settings (id, language, theme, updated_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 	language = excluded.language,
		 	theme = excluded.theme,
		 	updated_at = excluded.updated_at`,
		settings.Language,
		settings.Theme,
		formatTime(settings.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
