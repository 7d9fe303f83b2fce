package service

import (
	"context"
	"strings"
	"time"

	"bibleapp/backend/internal/bible"
	apperrors "bibleapp/backend/internal/errors"
	"bibleapp/backend/internal/model"
	"bibleapp/backend/internal/repository"
)

// AnnotationService covers the personal layers on top of the text:
// favorite verses, meditation memos, and the prayer journal.
type AnnotationService struct {
	favorites *repository.FavoriteRepository
	memos     *repository.MemoRepository
	prayers   *repository.PrayerRepository
	now       func() time.Time
}

func NewAnnotationService(
	favorites *repository.FavoriteRepository,
	memos *repository.MemoRepository,
	prayers *repository.PrayerRepository,
	now func() time.Time,
) *AnnotationService {
	return &AnnotationService{favorites: favorites, memos: memos, prayers: prayers, now: now}
}

func (s *AnnotationService) AddFavorite(ctx context.Context, bookCode string, chapter, verse int, verseText string) (*model.FavoriteVerse, *apperrors.APIError) {
	if apiErr := validateReference(bookCode, chapter); apiErr != nil {
		return nil, apiErr
	}

	favorite := model.FavoriteVerse{
		BookCode:  bookCode,
		Chapter:   chapter,
		Verse:     verse,
		VerseText: verseText,
		CreatedAt: s.now(),
	}
	if err := s.favorites.Create(ctx, &favorite); err != nil {
		return nil, apperrors.Internal("failed to create favorite")
	}
	return &favorite, nil
}

func (s *AnnotationService) ListFavorites(ctx context.Context) ([]model.FavoriteVerse, *apperrors.APIError) {
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list favorites")
	}
	return favorites, nil
}

func (s *AnnotationService) RemoveFavorite(ctx context.Context, id int64) *apperrors.APIError {
	if err := s.favorites.Delete(ctx, id); err != nil {
		return apperrors.Internal("failed to delete favorite")
	}
	return nil
}

func (s *AnnotationService) AddMemo(ctx context.Context, bookCode string, chapter, verse int, text string) (*model.MeditationMemo, *apperrors.APIError) {
	if apiErr := validateReference(bookCode, chapter); apiErr != nil {
		return nil, apiErr
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.BadRequest("invalid_memo", "memo text is required")
	}

	now := s.now()
	memo := model.MeditationMemo{
		BookCode:  bookCode,
		Chapter:   chapter,
		Verse:     verse,
		Memo:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.memos.Create(ctx, &memo); err != nil {
		return nil, apperrors.Internal("failed to create memo")
	}
	return &memo, nil
}

func (s *AnnotationService) ListMemos(ctx context.Context) ([]model.MeditationMemo, *apperrors.APIError) {
	memos, err := s.memos.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list memos")
	}
	return memos, nil
}

func (s *AnnotationService) UpdateMemo(ctx context.Context, id int64, text string) (*model.MeditationMemo, *apperrors.APIError) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.BadRequest("invalid_memo", "memo text is required")
	}

	memo, err := s.memos.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("memo_not_found", "memo not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get memo")
	}

	memo.Memo = text
	memo.UpdatedAt = s.now()
	if err := s.memos.Update(ctx, memo); err != nil {
		return nil, apperrors.Internal("failed to update memo")
	}
	return memo, nil
}

func (s *AnnotationService) RemoveMemo(ctx context.Context, id int64) *apperrors.APIError {
	if err := s.memos.Delete(ctx, id); err != nil {
		return apperrors.Internal("failed to delete memo")
	}
	return nil
}

func (s *AnnotationService) AddPrayer(ctx context.Context, title, content string) (*model.PrayerEntry, *apperrors.APIError) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.BadRequest("invalid_title", "title is required")
	}

	now := s.now()
	entry := model.PrayerEntry{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.prayers.Create(ctx, &entry); err != nil {
		return nil, apperrors.Internal("failed to create prayer entry")
	}
	return &entry, nil
}

func (s *AnnotationService) ListPrayers(ctx context.Context) ([]model.PrayerEntry, *apperrors.APIError) {
	entries, err := s.prayers.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list prayer entries")
	}
	return entries, nil
}

func (s *AnnotationService) UpdatePrayer(ctx context.Context, id int64, title, content string, answered bool) (*model.PrayerEntry, *apperrors.APIError) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.BadRequest("invalid_title", "title is required")
	}

	entry, err := s.prayers.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("prayer_not_found", "prayer entry not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get prayer entry")
	}

	entry.Title = title
	entry.Content = content
	entry.Answered = answered
	entry.UpdatedAt = s.now()
	if err := s.prayers.Update(ctx, entry); err != nil {
		return nil, apperrors.Internal("failed to update prayer entry")
	}
	return entry, nil
}

func (s *AnnotationService) RemovePrayer(ctx context.Context, id int64) *apperrors.APIError {
	if err := s.prayers.Delete(ctx, id); err != nil {
		return apperrors.Internal("failed to delete prayer entry")
	}
	return nil
}

func validateReference(bookCode string, chapter int) *apperrors.APIError {
	count := bible.ChapterCount(bookCode)
	if count == 0 {
		return apperrors.BadRequest("invalid_book", "unknown book code")
	}
	if chapter < 1 || chapter > count {
		return apperrors.BadRequest("invalid_chapter", "chapter out of range for book")
	}
	return nil
}
