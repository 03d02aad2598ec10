package service

import (
	"context"
	"errors"
	"strings"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/repository"
)

type authors interface {
	CreateAuthor(ctx context.Context, requestBody dto.AuthorRequestBody) (*data.Author, error)
	GetAuthor(ctx context.Context, authorID int64) (*data.Author, error)
	ListAuthors(ctx context.Context, qs dto.QsListAuthors) ([]*data.Author, data.Metadata, error)
	UpdateAuthor(ctx context.Context, authorID int64, requestBody dto.AuthorRequestBody) (*data.Author, error)
	DeleteAuthor(ctx context.Context, authorID int64) error
}

// applyAuthor copies the present request fields onto author.
func applyAuthor(v *validator.Validator, author *data.Author, requestBody dto.AuthorRequestBody) {
	if requestBody.FirstName != nil {
		author.FirstName = strings.TrimSpace(*requestBody.FirstName)
	}
	if requestBody.LastName != nil {
		author.LastName = strings.TrimSpace(*requestBody.LastName)
	}
	if requestBody.DateOfBirth != nil {
		author.DateOfBirth = parseOptionalDate(v, "date_of_birth", *requestBody.DateOfBirth)
	}
	if requestBody.DateOfDeath != nil {
		author.DateOfDeath = parseOptionalDate(v, "date_of_death", *requestBody.DateOfDeath)
	}
}

// parseOptionalDate parses a YYYY-MM-DD value. An empty value clears the date.
func parseOptionalDate(v *validator.Validator, key, value string) *data.Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	date, err := data.ParseDate(value)
	if err != nil {
		v.AddError(key, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &date
}

// CreateAuthor service creates a new author.
func (s *service) CreateAuthor(ctx context.Context, requestBody dto.AuthorRequestBody) (*data.Author, error) {
	author := &data.Author{}
	v := validator.New()
	applyAuthor(v, author, requestBody)
	if data.ValidateAuthor(v, author); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err := s.repo.CreateAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return author, nil
}

// GetAuthor service retrieves an author.
func (s *service) GetAuthor(ctx context.Context, authorID int64) (*data.Author, error) {
	author, err := s.repo.GetAuthor(ctx, authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return author, nil
}

// ListAuthors service retrieves a paginated list of authors filtered by name.
func (s *service) ListAuthors(ctx context.Context, qs dto.QsListAuthors) ([]*data.Author, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, qs.Filters); !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	authors, metadata, err := s.repo.GetAllAuthors(ctx, qs.Name, qs.Filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return authors, metadata, nil
}

// UpdateAuthor service updates the details of an author.
func (s *service) UpdateAuthor(ctx context.Context, authorID int64, requestBody dto.AuthorRequestBody) (*data.Author, error) {
	author, err := s.GetAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	applyAuthor(v, author, requestBody)
	if data.ValidateAuthor(v, author); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.UpdateAuthor(ctx, author)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return author, nil
}

// DeleteAuthor service deletes an author that no book refers to.
func (s *service) DeleteAuthor(ctx context.Context, authorID int64) error {
	count, err := s.repo.CountBooksForAuthor(ctx, authorID)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ReferencedError{Entity: "author", Dependents: "books", Count: count}
	}
	err = s.repo.DeleteAuthor(ctx, authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrRecordReferenced):
			return &ReferencedError{Entity: "author", Dependents: "books"}
		default:
			return err
		}
	}
	return nil
}
