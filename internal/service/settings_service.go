package service

import (
	"context"
	"time"

	apperrors "bibleapp/backend/internal/errors"
	"bibleapp/backend/internal/model"
	"bibleapp/backend/internal/repository"
)

// SettingsService is the explicit replacement for ambient theme and
// language globals: one stored row, read and written through here.
type SettingsService struct {
	repo            *repository.SettingsRepository
	defaultLanguage string
	defaultTheme    string
	now             func() time.Time
}

func NewSettingsService(
	repo *repository.SettingsRepository,
	defaultLanguage, defaultTheme string,
	now func() time.Time,
) *SettingsService {
	return &SettingsService{
		repo:            repo,
		defaultLanguage: defaultLanguage,
		defaultTheme:    defaultTheme,
		now:             now,
	}
}

// Get returns the stored settings, falling back to the configured
// defaults before the row has ever been written.
func (s *SettingsService) Get(ctx context.Context) (*model.AppSettings, *apperrors.APIError) {
	settings, err := s.repo.Get(ctx)
	if err == repository.ErrNotFound {
		return &model.AppSettings{
			Language: s.defaultLanguage,
			Theme:    s.defaultTheme,
		}, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get settings")
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, language, theme string) (*model.AppSettings, *apperrors.APIError) {
	if language == "" {
		language = s.defaultLanguage
	}
	if theme == "" {
		theme = s.defaultTheme
	}

	settings := model.AppSettings{
		Language:  language,
		Theme:     theme,
		UpdatedAt: s.now(),
	}
	if err := s.repo.Upsert(ctx, &settings); err != nil {
		return nil, apperrors.Internal("failed to update settings")
	}
	return &settings, nil
}
