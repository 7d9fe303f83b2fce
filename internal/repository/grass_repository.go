package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
)

type GrassRepository struct {
	db *sql.DB
}

func NewGrassRepository(db *sql.DB) *GrassRepository {
	return &GrassRepository{db: db}
}

func (r *GrassRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return tx, nil
}

// GetDay returns the entries recorded for date. An absent date is a
// valid day with no entries, not an error.
func (r *GrassRepository) GetDay(ctx context.Context, date string) (model.GrassDay, error) {
	row := r.db.QueryRowContext(ctx, `SELECT entries FROM bible_grass WHERE date = ?`, date)
	return scanGrassDay(row, date)
}

func (r *GrassRepository) GetDayTx(ctx context.Context, tx *sql.Tx, date string) (model.GrassDay, error) {
	row := tx.QueryRowContext(ctx, `SELECT entries FROM bible_grass WHERE date = ?`, date)
	return scanGrassDay(row, date)
}

// SaveDayTx upserts the day's entries. A day left with no entries is
// removed outright so the grass table only holds active days.
func (r *GrassRepository) SaveDayTx(ctx context.Context, tx *sql.Tx, day model.GrassDay) error {
	if len(day.Entries) == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bible_grass WHERE date = ?`, day.Date); err != nil {
			return fmt.Errorf("delete grass day: %w", err)
		}
		return nil
	}

	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO bible_grass (date, entries) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET entries = excluded.entries`,
		day.Date,
		encodeJSON(day.Entries),
	)
	if err != nil {
		return fmt.Errorf("save grass day: %w", err)
	}
	return nil
}

// TotalsByDateRange maps each date in [from, to] with recorded activity
// to its total chapter count. Dates with no row are simply absent.
func (r *GrassRepository) TotalsByDateRange(ctx context.Context, from, to string) (map[string]int, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT date, entries FROM bible_grass WHERE date >= ? AND date <= ?`,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("query grass range: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var date string
		var entries string
		if err := rows.Scan(&date, &entries); err != nil {
			return nil, fmt.Errorf("scan grass row: %w", err)
		}
		day := model.GrassDay{Date: date, Entries: []model.GrassBookEntry{}}
		decodeJSON(entries, &day.Entries)
		totals[date] = day.TotalChapters()
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grass rows: %w", err)
	}

	return totals, nil
}

func scanGrassDay(s scanner, date string) (model.GrassDay, error) {
	day := model.GrassDay{Date: date, Entries: []model.GrassBookEntry{}}
	var entries string
	if err := s.Scan(&entries); err != nil {
		if err == sql.ErrNoRows {
			return day, nil
		}
		return day, fmt.Errorf("scan grass day: %w", err)
	}
	decodeJSON(entries, &day.Entries)
	return day, nil
}
