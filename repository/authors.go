package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/litvinov-da/library/data"
)

type authors interface {
	CreateAuthor(ctx context.Context, author *data.Author) error
	GetAuthor(ctx context.Context, authorID int64) (*data.Author, error)
	GetAllAuthors(ctx context.Context, name string, filters data.Filters) ([]*data.Author, data.Metadata, error)
	UpdateAuthor(ctx context.Context, author *data.Author) error
	DeleteAuthor(ctx context.Context, authorID int64) error
	CountAuthors(ctx context.Context) (int, error)
	CountBooksForAuthor(ctx context.Context, authorID int64) (int, error)
}

// authorOrderBy expands the "name" sort key into last name, then first name.
func authorOrderBy(filters data.Filters) string {
	direction := filters.SortDirection()
	switch filters.SortColumn() {
	case "name":
		return fmt.Sprintf("last_name %s, first_name %s, id ASC", direction, direction)
	default:
		return fmt.Sprintf("%s %s, id ASC", filters.SortColumn(), direction)
	}
}

// CreateAuthor creates an author record.
func (r *repository) CreateAuthor(ctx context.Context, author *data.Author) error {
	query := `
		INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4)
		RETURNING id, version`
	args := []interface{}{author.FirstName, author.LastName, author.DateOfBirth, author.DateOfDeath}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID, &author.Version)
}

// GetAuthor retrieves an author record.
func (r *repository) GetAuthor(ctx context.Context, authorID int64) (*data.Author, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, first_name, last_name, date_of_birth, date_of_death, version
		FROM authors
		WHERE id = $1`
	var author data.Author
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&author.ID,
		&author.FirstName,
		&author.LastName,
		&author.DateOfBirth,
		&author.DateOfDeath,
		&author.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &author, nil
}

// GetAllAuthors retrieves a paginated list of authors, optionally filtered by name.
func (r *repository) GetAllAuthors(ctx context.Context, name string, filters data.Filters) ([]*data.Author, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, first_name, last_name, date_of_birth, date_of_death, version
		FROM authors
		WHERE (first_name ILIKE '%%' || $1 || '%%' OR last_name ILIKE '%%' || $1 || '%%' OR $1 = '')
		ORDER BY %s
		LIMIT $2 OFFSET $3`,
		authorOrderBy(filters),
	)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, escapeLike(name), filters.Limit(), filters.Offset())
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	authors := []*data.Author{}
	for rows.Next() {
		var author data.Author
		err := rows.Scan(
			&totalRecords,
			&author.ID,
			&author.FirstName,
			&author.LastName,
			&author.DateOfBirth,
			&author.DateOfDeath,
			&author.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		authors = append(authors, &author)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return authors, metadata, nil
}

// UpdateAuthor updates an author record.
func (r *repository) UpdateAuthor(ctx context.Context, author *data.Author) error {
	query := `
		UPDATE authors
		SET first_name = $1, last_name = $2, date_of_birth = $3, date_of_death = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version`
	args := []interface{}{
		author.FirstName,
		author.LastName,
		author.DateOfBirth,
		author.DateOfDeath,
		author.ID,
		author.Version,
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&author.Version)
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

// DeleteAuthor deletes an author record.
func (r *repository) DeleteAuthor(ctx context.Context, authorID int64) error {
	if authorID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM authors
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, authorID)
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

// CountAuthors counts all author records.
func (r *repository) CountAuthors(ctx context.Context) (int, error) {
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM authors`).Scan(&count)
	return count, err
}

// CountBooksForAuthor counts the books written by an author.
func (r *repository) CountBooksForAuthor(ctx context.Context, authorID int64) (int, error) {
	query := `
		SELECT count(*)
		FROM books
		WHERE author_id = $1`
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(&count)
	return count, err
}
