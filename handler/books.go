package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/service"
)

// CreateBook godoc
// @Summary Create a book
// @Description Language defaults to ru. Genres and author must already exist.
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.BookRequestBody true "JSON payload required to create a book"
// @Success 201 {object} data.Book
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /admin/v1/books [post]
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.BookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(r.Context(), requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/admin/v1/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowBook godoc
// @Summary Show a book
// @Tags books
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Success 200 {object} data.Book
// @Failure 404
// @Failure 500
// @Router /admin/v1/books/{id} [get]
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.GetBook(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Param token header string true "Bearer token"
// @Param title query string false "Query string param for title search"
// @Param author_id query int false "Query string param to filter by author"
// @Param genre_id query int false "Query string param to filter by genre"
// @Param lang query string false "Query string param to filter by language"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: author, title, id. Desc: -author, -title, -id"
// @Success 200 {array} data.Book
// @Failure 422
// @Failure 500
// @Router /admin/v1/books [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBooks
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Title = h.readString(qs, "title", "")
	qsInput.AuthorID = int64(h.readInt(qs, "author_id", 0, v))
	qsInput.GenreID = int64(h.readInt(qs, "genre_id", 0, v))
	qsInput.Lang = h.readString(qs, "lang", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "author")
	qsInput.Filters.SortSafeList = []string{"author", "title", "id", "-author", "-title", "-id"}
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	books, metadata, err := h.service.ListBooks(r.Context(), qsInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateBook godoc
// @Summary Update a book
// @Description Absent fields are left unchanged. An author_id of 0 detaches the author.
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Param body body dto.BookRequestBody true "JSON payload required to update a book"
// @Success 200 {object} data.Book
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /admin/v1/books/{id} [patch]
func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.BookRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.UpdateBook(r.Context(), bookID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateBookCover godoc
// @Summary Upload a book cover
// @Description This endpoint stores a jpeg or png cover of at most 2MB
// @Tags books
// @Accept  mpfd
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Param cover formData file true "Cover image"
// @Success 200 {object} data.Book
// @Failure 400
// @Failure 404
// @Failure 413
// @Failure 415
// @Failure 503
// @Failure 500
// @Router /admin/v1/books/{id}/cover [patch]
func (h *Handler) updateBookCoverHandler(w http.ResponseWriter, r *http.Request) {
	// Set 3MB limit for request body size
	maxBytes := int64(3_145_728)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.UpdateBookCover(r.Context(), bookID, r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrStorageDisabled):
			h.storageUnavailableResponse(w, r)
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ImportBookCover godoc
// @Summary Import a book cover
// @Description This endpoint downloads a jpeg or png cover of at most 2MB from a remote URL
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Param body body dto.ImportCoverRequestBody true "JSON payload with the cover URL"
// @Success 200 {object} data.Book
// @Failure 400
// @Failure 404
// @Failure 413
// @Failure 415
// @Failure 422
// @Failure 503
// @Failure 500
// @Router /admin/v1/books/{id}/cover [put]
func (h *Handler) importBookCoverHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.ImportCoverRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.ImportBookCover(r.Context(), bookID, requestBody.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrStorageDisabled):
			h.storageUnavailableResponse(w, r)
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteBook godoc
// @Summary Delete a book
// @Description This endpoint refuses to delete a book that still has copies
// @Tags books
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Success 200
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /admin/v1/books/{id} [delete]
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBook(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrReferencedByDependents):
			h.referencedResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "book successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBookInstancesForBook godoc
// @Summary List the copies of a book
// @Tags books
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: status, due_back, imprint. Desc: -status, -due_back, -imprint"
// @Success 200 {array} data.BookInstance
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /admin/v1/books/{id}/instances [get]
func (h *Handler) listBookInstancesForBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	v := validator.New()
	qs := r.URL.Query()
	filters := data.Filters{
		Page:         h.readInt(qs, "page", 1, v),
		PageSize:     h.readInt(qs, "page_size", 20, v),
		Sort:         h.readString(qs, "sort", "status"),
		SortSafeList: instanceSortSafeList,
	}
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	instances, metadata, err := h.service.ListInstancesForBook(r.Context(), bookID, filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"instances": instances, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateBookInstanceForBook godoc
// @Summary Add a copy to a book
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of book"
// @Param body body dto.BookInstanceRequestBody true "JSON payload required to create a copy"
// @Success 201 {object} data.BookInstance
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /admin/v1/books/{id}/instances [post]
func (h *Handler) createBookInstanceForBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.BookInstanceRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	instance, err := h.service.CreateInstanceForBook(r.Context(), bookID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/admin/v1/instances/%s", instance.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"instance": instance}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
