package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
)

type PrayerRepository struct {
	db *sql.DB
}

func NewPrayerRepository(db *sql.DB) *PrayerRepository {
	return &PrayerRepository{db: db}
}

func (r *PrayerRepository) Create(ctx context.Context, entry *model.PrayerEntry) error {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO prayer_journal (title, content, answered, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Title,
		entry.Content,
		boolToInt(entry.Answered),
		formatTime(entry.CreatedAt),
		formatTime(entry.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create prayer entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("prayer insert id: %w", err)
	}
	entry.ID = id
	return nil
}

func (r *PrayerRepository) GetByID(ctx context.Context, id int64) (*model.PrayerEntry, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, title, content, answered, created_at, updated_at
		 FROM prayer_journal WHERE id = ?`,
		id,
	)
	return scanPrayer(row)
}

func (r *PrayerRepository) List(ctx context.Context) ([]model.PrayerEntry, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, content, answered, created_at, updated_at
		 FROM prayer_journal
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list prayer entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.PrayerEntry, 0)
	for rows.Next() {
		entry, scanErr := scanPrayer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prayer entries: %w", err)
	}

	return entries, nil
}

func (r *PrayerRepository) Update(ctx context.Context, entry *model.PrayerEntry) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE prayer_journal
		 SET title = ?, content = ?, answered = ?, updated_at = ?
		 WHERE id = ?`,
		entry.Title,
		entry.Content,
		boolToInt(entry.Answered),
		formatTime(entry.UpdatedAt),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update prayer entry: %w", err)
	}
	return nil
}

func (r *PrayerRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prayer_journal WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete prayer entry: %w", err)
	}
	return nil
}

func scanPrayer(s scanner) (*model.PrayerEntry, error) {
	entry := model.PrayerEntry{}
	var answered int
	var createdAt string
	var updatedAt string
	err := s.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&answered,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan prayer entry: %w", err)
	}
	entry.Answered = answered != 0

	parsedCreatedAt, parseErr := parseTime(createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse prayer created_at: %w", parseErr)
	}
	parsedUpdatedAt, parseErr := parseTime(updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse prayer updated_at: %w", parseErr)
	}
	entry.CreatedAt = parsedCreatedAt
	entry.UpdatedAt = parsedUpdatedAt
	return &entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
