package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"bibleapp/backend/internal/bible"
	"bibleapp/backend/internal/dateutil"
	apperrors "bibleapp/backend/internal/errors"
	"bibleapp/backend/internal/grass"
	"bibleapp/backend/internal/model"
	"bibleapp/backend/internal/progress"
	"bibleapp/backend/internal/repository"
)

// PlanService owns the reading-plan lifecycle. Derived fields are
// recomputed on every mutation; date-sensitive ones are additionally
// recomputed on every read against the injected clock.
type PlanService struct {
	plans *repository.PlanRepository
	grass *repository.GrassRepository
	now   func() time.Time
}

type PlanInput struct {
	PlanName          string
	StartDate         string
	EndDate           string
	SelectedBookCodes []string
}

func NewPlanService(
	plans *repository.PlanRepository,
	grassRepo *repository.GrassRepository,
	now func() time.Time,
) *PlanService {
	return &PlanService{plans: plans, grass: grassRepo, now: now}
}

// Create seeds a plan with an all-zero read matrix and a full derived
// snapshot. Date ordering and selection emptiness are the caller's
// concern; this layer persists whatever it is given.
func (s *PlanService) Create(ctx context.Context, input PlanInput) (*model.ReadingPlan, *apperrors.APIError) {
	now := s.now()

	name := strings.TrimSpace(input.PlanName)
	if name == "" {
		name = model.DefaultPlanName
	}

	codes := dedupeCodes(input.SelectedBookCodes)
	status := progress.EmptyGoalStatus()
	total := progress.TotalReadCount(codes)
	current := progress.CurrentReadCount(status, codes)
	restDay := progress.RestDay(input.EndDate, now)

	plan := model.ReadingPlan{
		PlanName:          name,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		SelectedBookCodes: codes,
		GoalStatus:        status,
		TotalReadCount:    total,
		CurrentReadCount:  current,
		GoalPercent:       progress.GoalPercent(total, current),
		RestDay:           restDay,
		ReadCountPerDay:   progress.ReadCountPerDay(total, current, restDay),
		CreatedAt:         now,
	}

	if err := s.plans.Create(ctx, &plan); err != nil {
		return nil, apperrors.Internal("failed to create plan")
	}
	return &plan, nil
}

// GetByID refreshes the date-sensitive derived fields at read time.
// Counts and percent are served as last persisted.
func (s *PlanService) GetByID(ctx context.Context, id int64) (*model.ReadingPlan, *apperrors.APIError) {
	plan, err := s.plans.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("plan_not_found", "reading plan not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get plan")
	}

	now := s.now()
	plan.RestDay = progress.RestDay(plan.EndDate, now)
	plan.ReadCountPerDay = progress.ReadCountPerDay(plan.TotalReadCount, plan.CurrentReadCount, plan.RestDay)
	return plan, nil
}

// List returns every plan, newest first, with restDay refreshed.
func (s *PlanService) List(ctx context.Context) ([]model.ReadingPlan, *apperrors.APIError) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list plans")
	}

	now := s.now()
	for i := range plans {
		plans[i].RestDay = progress.RestDay(plans[i].EndDate, now)
	}
	return plans, nil
}

// UpdateMetadata rewrites name/dates/selection and recomputes the whole
// derived snapshot against the unchanged read matrix. An unknown id is
// a silent no-op and returns a nil plan.
func (s *PlanService) UpdateMetadata(ctx context.Context, id int64, input PlanInput) (*model.ReadingPlan, *apperrors.APIError) {
	now := s.now()

	tx, err := s.plans.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	plan, err := s.plans.GetByIDTx(ctx, tx, id)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get plan")
	}

	name := strings.TrimSpace(input.PlanName)
	if name == "" {
		name = model.DefaultPlanName
	}

	plan.PlanName = name
	plan.StartDate = input.StartDate
	plan.EndDate = input.EndDate
	plan.SelectedBookCodes = dedupeCodes(input.SelectedBookCodes)
	plan.TotalReadCount = progress.TotalReadCount(plan.SelectedBookCodes)
	plan.CurrentReadCount = progress.CurrentReadCount(plan.GoalStatus, plan.SelectedBookCodes)
	plan.GoalPercent = progress.GoalPercent(plan.TotalReadCount, plan.CurrentReadCount)
	plan.RestDay = progress.RestDay(plan.EndDate, now)
	plan.ReadCountPerDay = progress.ReadCountPerDay(plan.TotalReadCount, plan.CurrentReadCount, plan.RestDay)

	if err := s.plans.UpdateMetadataTx(ctx, tx, plan); err != nil {
		return nil, apperrors.Internal("failed to update plan")
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction")
	}
	return plan, nil
}

// UpdateGoalStatus replaces the read matrix, recomputes the derived
// fields that depend on it, and reconciles today's grass entry for
// every book whose row changed. An unknown id is a silent no-op.
func (s *PlanService) UpdateGoalStatus(ctx context.Context, id int64, newStatus progress.GoalStatus) (*model.ReadingPlan, *apperrors.APIError) {
	now := s.now()
	today := dateutil.Today(now)

	tx, err := s.plans.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	plan, err := s.plans.GetByIDTx(ctx, tx, id)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get plan")
	}

	previous := plan.GoalStatus
	plan.GoalStatus = normalizeGoalStatus(newStatus)
	plan.CurrentReadCount = progress.CurrentReadCount(plan.GoalStatus, plan.SelectedBookCodes)
	plan.GoalPercent = progress.GoalPercent(plan.TotalReadCount, plan.CurrentReadCount)
	plan.RestDay = progress.RestDay(plan.EndDate, now)
	plan.ReadCountPerDay = progress.ReadCountPerDay(plan.TotalReadCount, plan.CurrentReadCount, plan.RestDay)

	if err := s.plans.UpdateGoalStatusTx(ctx, tx, plan); err != nil {
		return nil, apperrors.Internal("failed to update plan")
	}

	if apiErr := s.reconcileGrass(ctx, tx, today, previous, plan.GoalStatus); apiErr != nil {
		return nil, apiErr
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction")
	}
	return plan, nil
}

// Remove deletes the plan row. Deleting an absent plan succeeds.
func (s *PlanService) Remove(ctx context.Context, id int64) *apperrors.APIError {
	if err := s.plans.Delete(ctx, id); err != nil {
		return apperrors.Internal("failed to delete plan")
	}
	return nil
}

// reconcileGrass applies the per-book edit delta to today's grass
// entry: (stored - previouslyChecked) + newlyChecked. Chapters recorded
// by other flows (another plan, a direct chapter sync) survive because
// only the previous view's own checkmarks are subtracted. Edits are
// attributed to today regardless of when the reading happened; an edit
// made after midnight lands on the wrong day. Known limitation.
func (s *PlanService) reconcileGrass(
	ctx context.Context,
	tx *sql.Tx,
	today string,
	previous, next progress.GoalStatus,
) *apperrors.APIError {
	day, err := s.grass.GetDayTx(ctx, tx, today)
	if err != nil {
		return apperrors.Internal("failed to read grass day")
	}

	changed := false
	for i, book := range bible.Books() {
		prevRow := rowAt(previous, i)
		nextRow := rowAt(next, i)
		if vectorsEqual(prevRow, nextRow) {
			continue
		}

		existing := []int{}
		for _, entry := range day.Entries {
			if entry.BookCode == book.Code {
				existing = entry.ReadChapter
				break
			}
		}

		merged := grass.ReconcileChapters(
			existing,
			grass.ChaptersFromVector(prevRow),
			grass.ChaptersFromVector(nextRow),
		)
		day = setBookEntry(day, book.Code, merged)
		changed = true
	}

	if !changed {
		return nil
	}
	if err := s.grass.SaveDayTx(ctx, tx, day); err != nil {
		return apperrors.Internal("failed to save grass day")
	}
	return nil
}

// setBookEntry replaces one book's chapter set on the day, dropping the
// entry entirely when the set is empty.
func setBookEntry(day model.GrassDay, bookCode string, chapters []int) model.GrassDay {
	entries := make([]model.GrassBookEntry, 0, len(day.Entries)+1)
	for _, entry := range day.Entries {
		if entry.BookCode != bookCode {
			entries = append(entries, entry)
		}
	}
	if len(chapters) > 0 {
		entries = append(entries, model.GrassBookEntry{BookCode: bookCode, ReadChapter: chapters})
	}
	day.Entries = entries
	return day
}

func rowAt(status progress.GoalStatus, i int) []int {
	if i < 0 || i >= len(status) {
		return nil
	}
	return status[i]
}

func vectorsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// normalizeGoalStatus coerces any client-supplied matrix to the fixed
// catalog shape: always 66 rows, each at its book's canonical chapter
// length, flags strictly 0 or 1.
func normalizeGoalStatus(status progress.GoalStatus) progress.GoalStatus {
	normalized := progress.EmptyGoalStatus()
	for i := range normalized {
		if i >= len(status) {
			break
		}
		row := status[i]
		for j := range normalized[i] {
			if j < len(row) && row[j] == 1 {
				normalized[i][j] = 1
			}
		}
	}
	return normalized
}
