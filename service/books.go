package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/repository"
)

// MaxCoverSize is the largest accepted cover image in bytes.
const MaxCoverSize = 2 << 20

var coverMediaTypes = []string{"image/jpeg", "image/png"}

type books interface {
	CreateBook(ctx context.Context, requestBody dto.BookRequestBody) (*data.Book, error)
	GetBook(ctx context.Context, bookID int64) (*data.Book, error)
	ListBooks(ctx context.Context, qs dto.QsListBooks) ([]*data.Book, data.Metadata, error)
	UpdateBook(ctx context.Context, bookID int64, requestBody dto.BookRequestBody) (*data.Book, error)
	UpdateBookCover(ctx context.Context, bookID int64, r *http.Request) (*data.Book, error)
	ImportBookCover(ctx context.Context, bookID int64, coverURL string) (*data.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
	ListInstancesForBook(ctx context.Context, bookID int64, filters data.Filters) ([]*data.BookInstance, data.Metadata, error)
	CreateInstanceForBook(ctx context.Context, bookID int64, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error)
}

// applyBook copies the present request fields onto book and resolves the
// author and genre references.
func (s *service) applyBook(ctx context.Context, v *validator.Validator, book *data.Book, requestBody dto.BookRequestBody) error {
	if requestBody.Title != nil {
		book.Title = strings.TrimSpace(*requestBody.Title)
	}
	if requestBody.Summary != nil {
		book.Summary = strings.TrimSpace(*requestBody.Summary)
	}
	if requestBody.Isbn != nil {
		book.Isbn = strings.TrimSpace(*requestBody.Isbn)
	}
	if requestBody.Lang != nil {
		book.Lang = data.Language(strings.TrimSpace(*requestBody.Lang))
	}
	if requestBody.AuthorID != nil {
		if *requestBody.AuthorID == 0 {
			book.AuthorID, book.Author = nil, nil
		} else {
			author, err := s.repo.GetAuthor(ctx, *requestBody.AuthorID)
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("author_id", "must refer to an existing author")
			case err != nil:
				return err
			default:
				book.AuthorID, book.Author = &author.ID, author
			}
		}
	}
	if requestBody.Genres != nil {
		genres := make([]data.Genre, 0, len(requestBody.Genres))
		for _, genreID := range requestBody.Genres {
			genre, err := s.repo.GetGenre(ctx, genreID)
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("genres", "must refer to existing genres")
			case err != nil:
				return err
			default:
				genres = append(genres, *genre)
			}
		}
		book.Genres = genres
	}
	return nil
}

// bookWriteError maps the repository errors of a book insert or update.
func bookWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRecord):
		return duplicateValue("isbn", "a book with this isbn already exists")
	case errors.Is(err, repository.ErrInvalidReference):
		return failedValidation(map[string]string{"book": "refers to a missing author or genre"})
	case errors.Is(err, repository.ErrEditConflict):
		return ErrEditConflict
	default:
		return err
	}
}

// CreateBook service creates a new book. The language defaults to Russian.
func (s *service) CreateBook(ctx context.Context, requestBody dto.BookRequestBody) (*data.Book, error) {
	book := &data.Book{Lang: data.DefaultLanguage, Genres: []data.Genre{}}
	v := validator.New()
	err := s.applyBook(ctx, v, book, requestBody)
	if err != nil {
		return nil, err
	}
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.CreateBook(ctx, book)
	if err != nil {
		return nil, bookWriteError(err)
	}
	return book, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(ctx context.Context, bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks service retrieves a paginated list of books. The list can be filtered and sorted.
func (s *service) ListBooks(ctx context.Context, qs dto.QsListBooks) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	data.ValidateFilters(v, qs.Filters)
	if qs.Lang != "" {
		v.Check(validator.In(qs.Lang, data.LanguageCodes()...), "lang", "invalid language code")
	}
	if !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	query := repository.BookQuery{
		Title:    qs.Title,
		AuthorID: qs.AuthorID,
		GenreID:  qs.GenreID,
		Lang:     data.Language(qs.Lang),
	}
	books, metadata, err := s.repo.GetAllBooks(ctx, query, qs.Filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// UpdateBook service updates the details of a specific book.
func (s *service) UpdateBook(ctx context.Context, bookID int64, requestBody dto.BookRequestBody) (*data.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	err = s.applyBook(ctx, v, book, requestBody)
	if err != nil {
		return nil, err
	}
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.UpdateBook(ctx, book)
	if err != nil {
		return nil, bookWriteError(err)
	}
	return book, nil
}

// UpdateBookCover service uploads a cover image sent as the "cover" form file.
func (s *service) UpdateBookCover(ctx context.Context, bookID int64, r *http.Request) (*data.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	storage, err := s.coverStorage()
	if err != nil {
		return nil, err
	}
	err = r.ParseMultipartForm(MaxCoverSize)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("cover")
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	if fileHeader.Size > MaxCoverSize {
		return nil, ErrContentTooLarge
	}
	buffer, mtype, err := s.detectMimeType(file)
	if err != nil {
		return nil, err
	}
	return s.storeCover(ctx, storage, book, buffer, mtype)
}

// ImportBookCover service fetches a cover image from a remote URL and stores it.
func (s *service) ImportBookCover(ctx context.Context, bookID int64, coverURL string) (*data.Book, error) {
	v := validator.New()
	u, err := url.Parse(coverURL)
	v.Check(coverURL != "", "url", "must be provided")
	v.Check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "", "url", "must be an absolute http or https URL")
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	storage, err := s.coverStorage()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, ErrBadRequest
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, ErrBadRequest
	}
	buffer, err := io.ReadAll(io.LimitReader(res.Body, MaxCoverSize+1))
	if err != nil {
		return nil, err
	}
	if len(buffer) > MaxCoverSize {
		return nil, ErrContentTooLarge
	}
	return s.storeCover(ctx, storage, book, buffer, mimetype.Detect(buffer))
}

// storeCover checks the image type, uploads it and records the public URL on the book.
func (s *service) storeCover(ctx context.Context, storage objectStorage, book *data.Book, buffer []byte, mtype *mimetype.MIME) (*data.Book, error) {
	if !validator.Mime(mtype, coverMediaTypes...) {
		return nil, ErrUnsupportedMediaType
	}
	key, err := objectKey(data.ScopeCover, "cover"+mtype.Extension())
	if err != nil {
		return nil, err
	}
	book.CoverURL, err = storage.Upload(ctx, key, buffer, mtype.String())
	if err != nil {
		return nil, err
	}
	err = s.repo.UpdateBook(ctx, book)
	if err != nil {
		return nil, bookWriteError(err)
	}
	return book, nil
}

// DeleteBook service deletes a book that has no copies.
func (s *service) DeleteBook(ctx context.Context, bookID int64) error {
	count, err := s.repo.CountInstancesForBook(ctx, bookID)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ReferencedError{Entity: "book", Dependents: "book instances", Count: count}
	}
	err = s.repo.DeleteBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrRecordReferenced):
			return &ReferencedError{Entity: "book", Dependents: "book instances"}
		default:
			return err
		}
	}
	return nil
}

// ListInstancesForBook service retrieves the copies of one book.
func (s *service) ListInstancesForBook(ctx context.Context, bookID int64, filters data.Filters) ([]*data.BookInstance, data.Metadata, error) {
	_, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	instances, metadata, err := s.repo.GetAllBookInstances(ctx, repository.BookInstanceQuery{BookID: &bookID}, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return instances, metadata, nil
}

// CreateInstanceForBook service adds a copy to an existing book.
func (s *service) CreateInstanceForBook(ctx context.Context, bookID int64, requestBody dto.BookInstanceRequestBody) (*data.BookInstance, error) {
	_, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	requestBody.BookID = &bookID
	return s.CreateBookInstance(ctx, requestBody)
}
