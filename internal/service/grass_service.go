package service

import (
	"context"
	"time"

	"bibleapp/backend/internal/dateutil"
	apperrors "bibleapp/backend/internal/errors"
	"bibleapp/backend/internal/grass"
	"bibleapp/backend/internal/model"
	"bibleapp/backend/internal/repository"
)

// GrassService serves the per-day reading log and the year grid built
// from it.
type GrassService struct {
	repo *repository.GrassRepository
	now  func() time.Time
}

// DayView is one date's entries plus the total the grid colors by.
type DayView struct {
	Date          string                 `json:"date"`
	Entries       []model.GrassBookEntry `json:"entries"`
	TotalChapters int                    `json:"totalChapters"`
}

// YearGridView is everything the grass screen renders for one year.
type YearGridView struct {
	Year         int                                    `json:"year"`
	Grid         [grass.GridRows][grass.GridCols]grass.Cell `json:"grid"`
	MonthColumns []grass.MonthColumn                    `json:"monthColumns"`
	Streak       grass.Streak                           `json:"streak"`
}

func NewGrassService(repo *repository.GrassRepository, now func() time.Time) *GrassService {
	return &GrassService{repo: repo, now: now}
}

// GetDay returns the reading log for one date. A date with no activity
// is a valid empty day.
func (s *GrassService) GetDay(ctx context.Context, date string) (*DayView, *apperrors.APIError) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	day, err := s.repo.GetDay(ctx, date)
	if err != nil {
		return nil, apperrors.Internal("failed to read grass day")
	}
	return &DayView{Date: day.Date, Entries: day.Entries, TotalChapters: day.TotalChapters()}, nil
}

// ReplaceBookEntry fully replaces one book's chapter set on one date.
// An empty chapter list removes the book's entry; replacing with the
// same set is idempotent.
func (s *GrassService) ReplaceBookEntry(ctx context.Context, date, bookCode string, chapters []int) (*DayView, *apperrors.APIError) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	day, err := s.repo.GetDayTx(ctx, tx, date)
	if err != nil {
		return nil, apperrors.Internal("failed to read grass day")
	}

	day = setBookEntry(day, bookCode, grass.NormalizeChapters(chapters))

	if err := s.repo.SaveDayTx(ctx, tx, day); err != nil {
		return nil, apperrors.Internal("failed to save grass day")
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction")
	}

	return &DayView{Date: day.Date, Entries: day.Entries, TotalChapters: day.TotalChapters()}, nil
}

// YearGrid lays out the 7x53 calendar for year, colors it with the
// stored per-day totals, and computes the streak ending yesterday.
func (s *GrassService) YearGrid(ctx context.Context, year int) (*YearGridView, *apperrors.APIError) {
	from := dateutil.FormatDate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local))
	to := dateutil.FormatDate(time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local))

	totals, err := s.repo.TotalsByDateRange(ctx, from, to)
	if err != nil {
		return nil, apperrors.Internal("failed to read grass totals")
	}

	now := s.now()
	grid := grass.BuildYearGrid(year, now)
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col].Present {
				grid[row][col].Chapters = totals[grid[row][col].Date]
			}
		}
	}

	streak := grass.CurrentStreakEndingYesterday(year, now, func(date string) int {
		return totals[date]
	})

	return &YearGridView{
		Year:         year,
		Grid:         grid,
		MonthColumns: grass.MonthLabelColumns(year),
		Streak:       streak,
	}, nil
}
