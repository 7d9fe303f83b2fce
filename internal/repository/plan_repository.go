package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
	"bibleapp/backend/internal/progress"
)

type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return tx, nil
}

// Create inserts the plan and fills in its assigned id.
func (r *PlanRepository) Create(ctx context.Context, plan *model.ReadingPlan) error {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO plans (
			plan_name, start_date, end_date, selected_book_codes, goal_status,
			total_read_count, current_read_count, goal_percent, rest_day,
			read_count_per_day, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.PlanName,
		plan.StartDate,
		plan.EndDate,
		encodeJSON(plan.SelectedBookCodes),
		encodeJSON(plan.GoalStatus),
		plan.TotalReadCount,
		plan.CurrentReadCount,
		plan.GoalPercent,
		plan.RestDay,
		plan.ReadCountPerDay,
		formatTime(plan.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("plan insert id: %w", err)
	}
	plan.ID = id
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*model.ReadingPlan, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, plan_name, start_date, end_date, selected_book_codes,
		        goal_status, total_read_count, current_read_count, goal_percent,
		        rest_day, read_count_per_day, created_at
		 FROM plans WHERE id = ?`,
		id,
	)
	return scanPlan(row)
}

func (r *PlanRepository) GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*model.ReadingPlan, error) {
	row := tx.QueryRowContext(
		ctx,
		`SELECT id, plan_name, start_date, end_date, selected_book_codes,
		        goal_status, total_read_count, current_read_count, goal_percent,
		        rest_day, read_count_per_day, created_at
		 FROM plans WHERE id = ?`,
		id,
	)
	return scanPlan(row)
}

// List returns every plan, most recently created first.
func (r *PlanRepository) List(ctx context.Context) ([]model.ReadingPlan, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, plan_name, start_date, end_date, selected_book_codes,
		        goal_status, total_read_count, current_read_count, goal_percent,
		        rest_day, read_count_per_day, created_at
		 FROM plans
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]model.ReadingPlan, 0)
	for rows.Next() {
		plan, scanErr := scanPlan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		plans = append(plans, *plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	return plans, nil
}

// UpdateMetadataTx persists new metadata together with a freshly
// computed derived snapshot. The goal_status column is untouched.
func (r *PlanRepository) UpdateMetadataTx(ctx context.Context, tx *sql.Tx, plan *model.ReadingPlan) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE plans
		 SET plan_name = ?,
		     start_date = ?,
		     end_date = ?,
		     selected_book_codes = ?,
		     total_read_count = ?,
		     current_read_count = ?,
		     goal_percent = ?,
		     rest_day = ?,
		     read_count_per_day = ?
		 WHERE id = ?`,
		plan.PlanName,
		plan.StartDate,
		plan.EndDate,
		encodeJSON(plan.SelectedBookCodes),
		plan.TotalReadCount,
		plan.CurrentReadCount,
		plan.GoalPercent,
		plan.RestDay,
		plan.ReadCountPerDay,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("update plan metadata: %w", err)
	}
	return nil
}

// UpdateGoalStatusTx replaces the read-status matrix and the derived
// fields that depend on it. Metadata columns are untouched.
func (r *PlanRepository) UpdateGoalStatusTx(ctx context.Context, tx *sql.Tx, plan *model.ReadingPlan) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE plans
		 SET goal_status = ?,
		     current_read_count = ?,
		     goal_percent = ?,
		     rest_day = ?,
		     read_count_per_day = ?
		 WHERE id = ?`,
		encodeJSON(plan.GoalStatus),
		plan.CurrentReadCount,
		plan.GoalPercent,
		plan.RestDay,
		plan.ReadCountPerDay,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("update plan goal status: %w", err)
	}
	return nil
}

// Delete is idempotent: deleting an absent id is not an error.
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(s scanner) (*model.ReadingPlan, error) {
	plan := model.ReadingPlan{}
	var selectedCodes string
	var goalStatus string
	var createdAt string
	err := s.Scan(
		&plan.ID,
		&plan.PlanName,
		&plan.StartDate,
		&plan.EndDate,
		&selectedCodes,
		&goalStatus,
		&plan.TotalReadCount,
		&plan.CurrentReadCount,
		&plan.GoalPercent,
		&plan.RestDay,
		&plan.ReadCountPerDay,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	plan.SelectedBookCodes = []string{}
	decodeJSON(selectedCodes, &plan.SelectedBookCodes)
	plan.GoalStatus = progress.GoalStatus{}
	decodeJSON(goalStatus, &plan.GoalStatus)

	parsedCreatedAt, parseErr := parseTime(createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse plan created_at: %w", parseErr)
	}
	plan.CreatedAt = parsedCreatedAt
	return &plan, nil
}
