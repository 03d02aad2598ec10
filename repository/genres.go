package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/litvinov-da/library/data"
)

type genres interface {
	CreateGenre(ctx context.Context, genre *data.Genre) error
	GetGenre(ctx context.Context, genreID int64) (*data.Genre, error)
	GetAllGenres(ctx context.Context, name string, filters data.Filters) ([]*data.Genre, data.Metadata, error)
	UpdateGenre(ctx context.Context, genre *data.Genre) error
	DeleteGenre(ctx context.Context, genreID int64) error
	CountBooksForGenre(ctx context.Context, genreID int64) (int, error)
}

// CreateGenre creates a genre record.
func (r *repository) CreateGenre(ctx context.Context, genre *data.Genre) error {
	query := `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id, version`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, genre.Name).Scan(&genre.ID, &genre.Version)
}

// GetGenre retrieves a genre record.
func (r *repository) GetGenre(ctx context.Context, genreID int64) (*data.Genre, error) {
	if genreID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, name, version
		FROM genres
		WHERE id = $1`
	var genre data.Genre
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, genreID).Scan(
		&genre.ID,
		&genre.Name,
		&genre.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &genre, nil
}

// GetAllGenres retrieves a paginated list of genres, optionally filtered by name.
func (r *repository) GetAllGenres(ctx context.Context, name string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, name, version
		FROM genres
		WHERE (name ILIKE '%%' || $1 || '%%' OR $1 = '')
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, escapeLike(name), filters.Limit(), filters.Offset())
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	genres := []*data.Genre{}
	for rows.Next() {
		var genre data.Genre
		err := rows.Scan(
			&totalRecords,
			&genre.ID,
			&genre.Name,
			&genre.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		genres = append(genres, &genre)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return genres, metadata, nil
}

// UpdateGenre updates a genre record.
func (r *repository) UpdateGenre(ctx context.Context, genre *data.Genre) error {
	query := `
		UPDATE genres
		SET name = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, genre.Name, genre.ID, genre.Version).Scan(&genre.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteGenre deletes a genre record.
func (r *repository) DeleteGenre(ctx context.Context, genreID int64) error {
	if genreID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM genres
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, genreID)
	if err != nil {
		return deleteError(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountBooksForGenre counts the books tagged with a genre.
func (r *repository) CountBooksForGenre(ctx context.Context, genreID int64) (int, error) {
	query := `
		SELECT count(*)
		FROM books_genres
		WHERE genre_id = $1`
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, genreID).Scan(&count)
	return count, err
}
