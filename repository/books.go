package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/litvinov-da/library/data"
	"github.com/lib/pq"
)

type books interface {
	CreateBook(ctx context.Context, book *data.Book) error
	GetBook(ctx context.Context, bookID int64) (*data.Book, error)
	GetAllBooks(ctx context.Context, query BookQuery, filters data.Filters) ([]*data.Book, data.Metadata, error)
	UpdateBook(ctx context.Context, book *data.Book) error
	DeleteBook(ctx context.Context, bookID int64) error
	CountBooks(ctx context.Context) (int, error)
	CountInstancesForBook(ctx context.Context, bookID int64) (int, error)
}

// BookQuery narrows a book listing. Zero values match everything.
type BookQuery struct {
	Title    string
	AuthorID int64
	GenreID  int64
	Lang     data.Language
}

// bookOrderBy expands the "author" sort key into the author's last and first
// name. Books without an author sort after the rest in both directions.
func bookOrderBy(filters data.Filters) string {
	direction := filters.SortDirection()
	switch filters.SortColumn() {
	case "author":
		return fmt.Sprintf("authors.last_name %[1]s NULLS LAST, authors.first_name %[1]s NULLS LAST, books.id ASC", direction)
	default:
		return fmt.Sprintf("books.%s %s, books.id ASC", filters.SortColumn(), direction)
	}
}

// CreateBook creates a book record together with its genre associations.
func (r *repository) CreateBook(ctx context.Context, book *data.Book) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		INSERT INTO books (title, author_id, summary, isbn, lang, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version`
	args := []interface{}{book.Title, book.AuthorID, book.Summary, book.Isbn, book.Lang, book.CoverURL}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.Version)
	if err != nil {
		return writeError(err)
	}
	err = setBookGenres(ctx, tx, book.ID, book.GenreIDs())
	if err != nil {
		return err
	}
	return tx.Commit()
}

// setBookGenres replaces the genre associations of a book.
func setBookGenres(ctx context.Context, tx *sql.Tx, bookID int64, genreIDs []int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM books_genres WHERE book_id = $1`, bookID)
	if err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO books_genres (book_id, genre_id)
		SELECT $1, unnest($2::bigint[])`
	_, err = tx.ExecContext(ctx, query, bookID, pq.Array(genreIDs))
	if err != nil {
		return writeError(err)
	}
	return nil
}

// GetBook retrieves a book record with its author and genres.
func (r *repository) GetBook(ctx context.Context, bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query, args, err := bookSelect().Where(sq.Eq{"books.id": bookID}).ToSql()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var total int
	book, err := scanBook(r.db.QueryRowContext(ctx, query, args...), &total)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = r.attachGenres(ctx, []*data.Book{book})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetAllBooks retrieves a paginated list of books with their authors and genres.
func (r *repository) GetAllBooks(ctx context.Context, q BookQuery, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	builder := bookSelect()
	if q.Title != "" {
		builder = builder.Where(sq.ILike{"books.title": "%" + escapeLike(q.Title) + "%"})
	}
	if q.AuthorID != 0 {
		builder = builder.Where(sq.Eq{"books.author_id": q.AuthorID})
	}
	if q.GenreID != 0 {
		builder = builder.Where("EXISTS (SELECT 1 FROM books_genres WHERE books_genres.book_id = books.id AND books_genres.genre_id = ?)", q.GenreID)
	}
	if q.Lang != "" {
		builder = builder.Where(sq.Eq{"books.lang": q.Lang})
	}
	query, args, err := builder.
		OrderBy(bookOrderBy(filters)).
		Limit(uint64(filters.Limit())).
		Offset(uint64(filters.Offset())).
		ToSql()
	if err != nil {
		return nil, data.Metadata{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	books := []*data.Book{}
	for rows.Next() {
		book, err := scanBook(rows, &totalRecords)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	err = r.attachGenres(ctx, books)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return books, metadata, nil
}

func bookSelect() sq.SelectBuilder {
	return qb.Select(
		"count(*) OVER()",
		"books.id", "books.title", "books.author_id", "books.summary", "books.isbn", "books.lang", "books.cover_url", "books.version",
		"authors.first_name", "authors.last_name", "authors.date_of_birth", "authors.date_of_death",
	).
		From("books").
		LeftJoin("authors ON authors.id = books.author_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row rowScanner, total *int) (*data.Book, error) {
	var (
		book      data.Book
		firstName sql.NullString
		lastName  sql.NullString
		author    data.Author
	)
	err := row.Scan(
		total,
		&book.ID,
		&book.Title,
		&book.AuthorID,
		&book.Summary,
		&book.Isbn,
		&book.Lang,
		&book.CoverURL,
		&book.Version,
		&firstName,
		&lastName,
		&author.DateOfBirth,
		&author.DateOfDeath,
	)
	if err != nil {
		return nil, err
	}
	if book.AuthorID != nil {
		author.ID = *book.AuthorID
		author.FirstName = firstName.String
		author.LastName = lastName.String
		book.Author = &author
	}
	book.Genres = []data.Genre{}
	return &book, nil
}

// attachGenres loads the genres of books in a single query.
func (r *repository) attachGenres(ctx context.Context, books []*data.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, len(books))
	byID := make(map[int64]*data.Book, len(books))
	for i, book := range books {
		ids[i] = book.ID
		byID[book.ID] = book
	}
	query := `
		SELECT books_genres.book_id, genres.id, genres.name, genres.version
		FROM genres
		INNER JOIN books_genres ON books_genres.genre_id = genres.id
		WHERE books_genres.book_id = ANY($1)
		ORDER BY genres.id ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			bookID int64
			genre  data.Genre
		)
		err := rows.Scan(&bookID, &genre.ID, &genre.Name, &genre.Version)
		if err != nil {
			return err
		}
		book := byID[bookID]
		book.Genres = append(book.Genres, genre)
	}
	return rows.Err()
}

// UpdateBook updates a book record and replaces its genre associations.
func (r *repository) UpdateBook(ctx context.Context, book *data.Book) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		UPDATE books
		SET title = $1, author_id = $2, summary = $3, isbn = $4, lang = $5, cover_url = $6, version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version`
	args := []interface{}{
		book.Title,
		book.AuthorID,
		book.Summary,
		book.Isbn,
		book.Lang,
		book.CoverURL,
		book.ID,
		book.Version,
	}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&book.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return writeError(err)
		}
	}
	err = setBookGenres(ctx, tx, book.ID, book.GenreIDs())
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteBook deletes a book record.
func (r *repository) DeleteBook(ctx context.Context, bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM books
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, bookID)
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

// CountBooks counts all book records.
func (r *repository) CountBooks(ctx context.Context) (int, error) {
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count)
	return count, err
}

// CountInstancesForBook counts the physical copies of a book.
func (r *repository) CountInstancesForBook(ctx context.Context, bookID int64) (int, error) {
	query := `
		SELECT count(*)
		FROM book_instances
		WHERE book_id = $1`
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(&count)
	return count, err
}
