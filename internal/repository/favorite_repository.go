package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bibleapp/backend/internal/model"
)

type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.FavoriteVerse) error {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO favorite_verses (book_code, chapter, verse, verse_text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		favorite.BookCode,
		favorite.Chapter,
		favorite.Verse,
		favorite.VerseText,
		formatTime(favorite.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("favorite insert id: %w", err)
	}
	favorite.ID = id
	return nil
}

func (r *FavoriteRepository) List(ctx context.Context) ([]model.FavoriteVerse, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, book_code, chapter, verse, verse_text, created_at
		 FROM favorite_verses
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]model.FavoriteVerse, 0)
	for rows.Next() {
		var favorite model.FavoriteVerse
		var createdAt string
		if err := rows.Scan(
			&favorite.ID,
			&favorite.BookCode,
			&favorite.Chapter,
			&favorite.Verse,
			&favorite.VerseText,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		parsedCreatedAt, parseErr := parseTime(createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parse favorite created_at: %w", parseErr)
		}
		favorite.CreatedAt = parsedCreatedAt
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorite_verses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
