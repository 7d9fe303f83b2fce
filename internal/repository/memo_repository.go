package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
)

type MemoRepository struct {
	db *sql.DB
}

func NewMemoRepository(db *sql.DB) *MemoRepository {
	return &MemoRepository{db: db}
}

func (r *MemoRepository) Create(ctx context.Context, memo *model.MeditationMemo) error {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO meditation_memos (book_code, chapter, verse, memo, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		memo.BookCode,
		memo.Chapter,
		memo.Verse,
		memo.Memo,
		formatTime(memo.CreatedAt),
		formatTime(memo.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create memo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("memo insert id: %w", err)
	}
	memo.ID = id
	return nil
}

func (r *MemoRepository) GetByID(ctx context.Context, id int64) (*model.MeditationMemo, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, book_code, chapter, verse, memo, created_at, updated_at
		 FROM meditation_memos WHERE id = ?`,
		id,
	)
	return scanMemo(row)
}

func (r *MemoRepository) List(ctx context.Context) ([]model.MeditationMemo, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, book_code, chapter, verse, memo, created_at, updated_at
		 FROM meditation_memos
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()

	memos := make([]model.MeditationMemo, 0)
	for rows.Next() {
		memo, scanErr := scanMemo(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		memos = append(memos, *memo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memos: %w", err)
	}

	return memos, nil
}

func (r *MemoRepository) Update(ctx context.Context, memo *model.MeditationMemo) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE meditation_memos SET memo = ?, updated_at = ? WHERE id = ?`,
		memo.Memo,
		formatTime(memo.UpdatedAt),
		memo.ID,
	)
	if err != nil {
		return fmt.Errorf("update memo: %w", err)
	}
	return nil
}

func (r *MemoRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM meditation_memos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}
	return nil
}

func scanMemo(s scanner) (*model.MeditationMemo, error) {
	memo := model.MeditationMemo{}
	var createdAt string
	var updatedAt string
	err := s.Scan(
		&memo.ID,
		&memo.BookCode,
		&memo.Chapter,
		&memo.Verse,
		&memo.Memo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan memo: %w", err)
	}

	parsedCreatedAt, parseErr := parseTime(createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse memo created_at: %w", parseErr)
	}
	parsedUpdatedAt, parseErr := parseTime(updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse memo updated_at: %w", parseErr)
	}
	memo.CreatedAt = parsedCreatedAt
	memo.UpdatedAt = parsedUpdatedAt
	return &memo, nil
}
