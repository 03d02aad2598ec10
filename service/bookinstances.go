package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/repository"
)

type bookInstances interface {
	CreateBookInstance(ctx context.Context, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error)
	GetBookInstance(ctx context.Context, instanceID uuid.UUID) (*data.BookInstance, error)
	ListBookInstances(ctx context.Context, qs dto.QsListBookInstances) ([]*data.BookInstance, data.Metadata, error)
	UpdateBookInstance(ctx context.Context, instanceID uuid.UUID, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error)
	DeleteBookInstance(ctx context.Context, instanceID uuid.UUID) error
}

// applyBookInstance copies the present request fields onto instance and
// resolves the book and borrower references. The id is never touched.
func (s *service) applyBookInstance(ctx context.Context, v *validator.Validator, instance *data.BookInstance, requestBody dto.BookInstanceRequestBody) error {
	if requestBody.Imprint != nil {
		instance.Imprint = strings.TrimSpace(*requestBody.Imprint)
	}
	if requestBody.Status != nil {
		instance.Status = data.LoanStatus(strings.TrimSpace(*requestBody.Status))
	}
	if requestBody.DueBack != nil {
		instance.DueBack = parseOptionalDate(v, "due_back", *requestBody.DueBack)
	}
	if requestBody.BookID != nil {
		if *requestBody.BookID == 0 {
			instance.BookID, instance.BookTitle = nil, ""
		} else {
			book, err := s.repo.GetBook(ctx, *requestBody.BookID)
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("book_id", "must refer to an existing book")
			case err != nil:
				return err
			default:
				instance.BookID, instance.BookTitle = &book.ID, book.Title
			}
		}
	}
	if requestBody.BorrowerID != nil {
		if *requestBody.BorrowerID == 0 {
			instance.BorrowerID, instance.BorrowerName = nil, ""
		} else {
			user, err := s.repo.GetUserByID(ctx, *requestBody.BorrowerID)
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("borrower_id", "must refer to an existing user")
			case err != nil:
				return err
			default:
				instance.BorrowerID, instance.BorrowerName = &user.ID, user.Name
			}
		}
	}
	return nil
}

func bookInstanceWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidReference):
		return failedValidation(map[string]string{"book_instance": "refers to a missing book or borrower"})
	case errors.Is(err, repository.ErrEditConflict):
		return ErrEditConflict
	default:
		return err
	}
}

// CreateBookInstance service creates a copy with a freshly generated id.
// The status defaults to maintenance.
func (s *service) CreateBookInstance(ctx context.Context, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error) {
	instance := &data.BookInstance{
		ID:     uuid.New(),
		Status: data.DefaultStatus,
	}
	v := validator.New()
	err := s.applyBookInstance(ctx, v, instance, requestBody)
	if err != nil {
		return nil, err
	}
	if data.ValidateBookInstance(v, instance); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.CreateBookInstance(ctx, instance)
	if err != nil {
		return nil, bookInstanceWriteError(err)
	}
	return instance, nil
}

// GetBookInstance service retrieves a copy.
func (s *service) GetBookInstance(ctx context.Context, instanceID uuid.UUID) (*data.BookInstance, error) {
	instance, err := s.repo.GetBookInstance(ctx, instanceID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return instance, nil
}

// ListBookInstances service retrieves a paginated list of copies filtered by
// status, due date, imprint and book.
func (s *service) ListBookInstances(ctx context.Context, qs dto.QsListBookInstances) ([]*data.BookInstance, data.Metadata, error) {
	v := validator.New()
	data.ValidateFilters(v, qs.Filters)
	query := repository.BookInstanceQuery{
		Status:  data.LoanStatus(qs.Status),
		Imprint: qs.Imprint,
	}
	if qs.Status != "" {
		data.ValidateStatus(v, query.Status)
	}
	if qs.DueBack != "" {
		query.DueBack = parseOptionalDate(v, "due_back", qs.DueBack)
	}
	if qs.BookID != 0 {
		query.BookID = &qs.BookID
	}
	if !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	instances, metadata, err := s.repo.GetAllBookInstances(ctx, query, qs.Filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return instances, metadata, nil
}

// UpdateBookInstance service updates a copy. The copy keeps its id.
func (s *service) UpdateBookInstance(ctx context.Context, instanceID uuid.UUID, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error) {
	instance, err := s.GetBookInstance(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	err = s.applyBookInstance(ctx, v, instance, requestBody)
	if err != nil {
		return nil, err
	}
	if data.ValidateBookInstance(v, instance); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.UpdateBookInstance(ctx, instance)
	if err != nil {
		return nil, bookInstanceWriteError(err)
	}
	return instance, nil
}

// DeleteBookInstance service deletes a copy.
func (s *service) DeleteBookInstance(ctx context.Context, instanceID uuid.UUID) error {
	err := s.repo.DeleteBookInstance(ctx, instanceID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
