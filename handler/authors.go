package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/service"
)

// CreateAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.AuthorRequestBody true "JSON payload required to create an author"
// @Success 201 {object} data.Author
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /admin/v1/authors [post]
func (h *Handler) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.AuthorRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	author, err := h.service.CreateAuthor(r.Context(), requestBody)
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
	headers.Set("Location", fmt.Sprintf("/admin/v1/authors/%d", author.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"author": author}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowAuthor godoc
// @Summary Show an author
// @Tags authors
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of author"
// @Success 200 {object} data.Author
// @Failure 404
// @Failure 500
// @Router /admin/v1/authors/{id} [get]
func (h *Handler) showAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	author, err := h.service.GetAuthor(r.Context(), authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"author": author}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListAuthors godoc
// @Summary List authors
// @Description Authors are ordered by last name, then first name
// @Tags authors
// @Produce json
// @Param token header string true "Bearer token"
// @Param name query string false "Query string param for name search"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: name, id. Desc: -name, -id"
// @Success 200 {array} data.Author
// @Failure 422
// @Failure 500
// @Router /admin/v1/authors [get]
func (h *Handler) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListAuthors
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Name = h.readString(qs, "name", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "name")
	qsInput.Filters.SortSafeList = []string{"name", "id", "-name", "-id"}
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	authors, metadata, err := h.service.ListAuthors(r.Context(), qsInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"authors": authors, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateAuthor godoc
// @Summary Update an author
// @Description An empty date_of_birth or date_of_death clears the date
// @Tags authors
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of author"
// @Param body body dto.AuthorRequestBody true "JSON payload required to update an author"
// @Success 200 {object} data.Author
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /admin/v1/authors/{id} [patch]
func (h *Handler) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.AuthorRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	author, err := h.service.UpdateAuthor(r.Context(), authorID, requestBody)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"author": author}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteAuthor godoc
// @Summary Delete an author
// @Description This endpoint refuses to delete an author who still has books
// @Tags authors
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of author"
// @Success 200
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /admin/v1/authors/{id} [delete]
func (h *Handler) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteAuthor(r.Context(), authorID)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "author successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
