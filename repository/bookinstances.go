package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/litvinov-da/library/data"
)

type bookInstances interface {
	CreateBookInstance(ctx context.Context, instance *data.BookInstance) error
	GetBookInstance(ctx context.Context, instanceID uuid.UUID) (*data.BookInstance, error)
	GetAllBookInstances(ctx context.Context, query BookInstanceQuery, filters data.Filters) ([]*data.BookInstance, data.Metadata, error)
	UpdateBookInstance(ctx context.Context, instance *data.BookInstance) error
	DeleteBookInstance(ctx context.Context, instanceID uuid.UUID) error
	CountBookInstances(ctx context.Context, status data.LoanStatus) (int, error)
}

// BookInstanceQuery narrows a copy listing. Nil and zero values match everything.
type BookInstanceQuery struct {
	Status     data.LoanStatus
	BookID     *int64
	BorrowerID *int64
	DueBack    *data.Date
	Imprint    string
}

// CreateBookInstance creates a copy record. The caller assigns the id.
func (r *repository) CreateBookInstance(ctx context.Context, instance *data.BookInstance) error {
	query := `
		INSERT INTO book_instances (id, book_id, imprint, due_back, status, borrower_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING version`
	args := []interface{}{
		instance.ID,
		instance.BookID,
		instance.Imprint,
		instance.DueBack,
		instance.Status,
		instance.BorrowerID,
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&instance.Version)
	if err != nil {
		return writeError(err)
	}
	return nil
}

func bookInstanceSelect() sq.SelectBuilder {
	return qb.Select(
		"count(*) OVER()",
		"book_instances.id", "book_instances.book_id", "COALESCE(books.title, '')", "book_instances.imprint",
		"book_instances.due_back", "book_instances.status", "book_instances.borrower_id", "COALESCE(users.name, '')",
		"book_instances.version",
	).
		From("book_instances").
		LeftJoin("books ON books.id = book_instances.book_id").
		LeftJoin("users ON users.id = book_instances.borrower_id")
}

func scanBookInstance(row rowScanner, total *int) (*data.BookInstance, error) {
	var instance data.BookInstance
	err := row.Scan(
		total,
		&instance.ID,
		&instance.BookID,
		&instance.BookTitle,
		&instance.Imprint,
		&instance.DueBack,
		&instance.Status,
		&instance.BorrowerID,
		&instance.BorrowerName,
		&instance.Version,
	)
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetBookInstance retrieves a copy record by its id.
func (r *repository) GetBookInstance(ctx context.Context, instanceID uuid.UUID) (*data.BookInstance, error) {
	query, args, err := bookInstanceSelect().Where(sq.Eq{"book_instances.id": instanceID}).ToSql()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var total int
	instance, err := scanBookInstance(r.db.QueryRowContext(ctx, query, args...), &total)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return instance, nil
}

// GetAllBookInstances retrieves a paginated, filtered list of copies. Copies
// without a due date sort after dated ones when ordering by due_back.
func (r *repository) GetAllBookInstances(ctx context.Context, q BookInstanceQuery, filters data.Filters) ([]*data.BookInstance, data.Metadata, error) {
	builder := bookInstanceSelect()
	if q.Status != "" {
		builder = builder.Where(sq.Eq{"book_instances.status": q.Status})
	}
	if q.BookID != nil {
		builder = builder.Where(sq.Eq{"book_instances.book_id": *q.BookID})
	}
	if q.BorrowerID != nil {
		builder = builder.Where(sq.Eq{"book_instances.borrower_id": *q.BorrowerID})
	}
	if q.DueBack != nil {
		builder = builder.Where(sq.Eq{"book_instances.due_back": *q.DueBack})
	}
	if q.Imprint != "" {
		builder = builder.Where(sq.ILike{"book_instances.imprint": "%" + escapeLike(q.Imprint) + "%"})
	}
	orderBy := fmt.Sprintf("book_instances.%s %s NULLS LAST, book_instances.id ASC", filters.SortColumn(), filters.SortDirection())
	query, args, err := builder.
		OrderBy(orderBy).
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
	instances := []*data.BookInstance{}
	for rows.Next() {
		instance, err := scanBookInstance(rows, &totalRecords)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		instances = append(instances, instance)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return instances, metadata, nil
}

// UpdateBookInstance updates a copy record. The id never changes.
func (r *repository) UpdateBookInstance(ctx context.Context, instance *data.BookInstance) error {
	query := `
		UPDATE book_instances
		SET book_id = $1, imprint = $2, due_back = $3, status = $4, borrower_id = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version`
	args := []interface{}{
		instance.BookID,
		instance.Imprint,
		instance.DueBack,
		instance.Status,
		instance.BorrowerID,
		instance.ID,
		instance.Version,
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&instance.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return writeError(err)
		}
	}
	return nil
}

// DeleteBookInstance deletes a copy record.
func (r *repository) DeleteBookInstance(ctx context.Context, instanceID uuid.UUID) error {
	query := `
		DELETE FROM book_instances
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, instanceID)
	if err != nil {
		return err
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

// CountBookInstances counts copies, optionally only those in status.
func (r *repository) CountBookInstances(ctx context.Context, status data.LoanStatus) (int, error) {
	builder := qb.Select("count(*)").From("book_instances")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
