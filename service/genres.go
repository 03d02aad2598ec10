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

type genres interface {
	CreateGenre(ctx context.Context, requestBody dto.GenreRequestBody) (*data.Genre, error)
	GetGenre(ctx context.Context, genreID int64) (*data.Genre, error)
	ListGenres(ctx context.Context, qs dto.QsListGenres) ([]*data.Genre, data.Metadata, error)
	UpdateGenre(ctx context.Context, genreID int64, requestBody dto.GenreRequestBody) (*data.Genre, error)
	DeleteGenre(ctx context.Context, genreID int64) error
}

func applyGenre(genre *data.Genre, requestBody dto.GenreRequestBody) {
	if requestBody.Name != nil {
		genre.Name = strings.TrimSpace(*requestBody.Name)
	}
}

// CreateGenre service creates a new genre.
func (s *service) CreateGenre(ctx context.Context, requestBody dto.GenreRequestBody) (*data.Genre, error) {
	genre := &data.Genre{}
	applyGenre(genre, requestBody)
	v := validator.New()
	if data.ValidateGenre(v, genre); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err := s.repo.CreateGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	return genre, nil
}

// GetGenre service retrieves a genre.
func (s *service) GetGenre(ctx context.Context, genreID int64) (*data.Genre, error) {
	genre, err := s.repo.GetGenre(ctx, genreID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return genre, nil
}

// ListGenres service retrieves a paginated list of genres filtered by name.
func (s *service) ListGenres(ctx context.Context, qs dto.QsListGenres) ([]*data.Genre, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, qs.Filters); !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	genres, metadata, err := s.repo.GetAllGenres(ctx, qs.Name, qs.Filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return genres, metadata, nil
}

// UpdateGenre service renames a genre.
func (s *service) UpdateGenre(ctx context.Context, genreID int64, requestBody dto.GenreRequestBody) (*data.Genre, error) {
	genre, err := s.GetGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	applyGenre(genre, requestBody)
	v := validator.New()
	if data.ValidateGenre(v, genre); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.UpdateGenre(ctx, genre)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return genre, nil
}

// DeleteGenre service deletes a genre that no book is filed under.
func (s *service) DeleteGenre(ctx context.Context, genreID int64) error {
	count, err := s.repo.CountBooksForGenre(ctx, genreID)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ReferencedError{Entity: "genre", Dependents: "books", Count: count}
	}
	err = s.repo.DeleteGenre(ctx, genreID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrRecordReferenced):
			return &ReferencedError{Entity: "genre", Dependents: "books"}
		default:
			return err
		}
	}
	return nil
}
