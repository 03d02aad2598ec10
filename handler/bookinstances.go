package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/service"
)

var instanceSortSafeList = []string{"status", "due_back", "imprint", "-status", "-due_back", "-imprint"}

// CreateBookInstance godoc
// @Summary Create a copy
// @Description Status defaults to m (maintenance)
// @Tags instances
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.BookInstanceRequestBody true "JSON payload required to create a copy"
// @Success 201 {object} data.BookInstance
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /admin/v1/instances [post]
func (h *Handler) createBookInstanceHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.BookInstanceRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	instance, err := h.service.CreateBookInstance(r.Context(), requestBody)
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
	headers.Set("Location", fmt.Sprintf("/admin/v1/instances/%s", instance.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"instance": instance}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowBookInstance godoc
// @Summary Show a copy
// @Tags instances
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "UUID of copy"
// @Success 200 {object} data.BookInstance
// @Failure 404
// @Failure 500
// @Router /admin/v1/instances/{id} [get]
func (h *Handler) showBookInstanceHandler(w http.ResponseWriter, r *http.Request) {
	instanceID, err := h.readUUIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	instance, err := h.service.GetBookInstance(r.Context(), instanceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"instance": instance}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBookInstances godoc
// @Summary List copies
// @Tags instances
// @Produce json
// @Param token header string true "Bearer token"
// @Param status query string false "Query string param to filter by status (m, o, a, r)"
// @Param due_back query string false "Query string param to filter by due date (YYYY-MM-DD)"
// @Param imprint query string false "Query string param for imprint search"
// @Param book_id query int false "Query string param to filter by book"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: status, due_back, imprint. Desc: -status, -due_back, -imprint"
// @Success 200 {array} data.BookInstance
// @Failure 422
// @Failure 500
// @Router /admin/v1/instances [get]
func (h *Handler) listBookInstancesHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBookInstances
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Status = h.readString(qs, "status", "")
	qsInput.DueBack = h.readString(qs, "due_back", "")
	qsInput.Imprint = h.readString(qs, "imprint", "")
	qsInput.BookID = int64(h.readInt(qs, "book_id", 0, v))
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "status")
	qsInput.Filters.SortSafeList = instanceSortSafeList
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	instances, metadata, err := h.service.ListBookInstances(r.Context(), qsInput)
	if err != nil {
		switch {
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

// UpdateBookInstance godoc
// @Summary Update a copy
// @Description An empty due_back clears the date. A book_id or borrower_id of 0 detaches the reference.
// @Tags instances
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "UUID of copy"
// @Param body body dto.BookInstanceRequestBody true "JSON payload required to update a copy"
// @Success 200 {object} data.BookInstance
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /admin/v1/instances/{id} [patch]
func (h *Handler) updateBookInstanceHandler(w http.ResponseWriter, r *http.Request) {
	instanceID, err := h.readUUIDParam(r, "id")
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
	instance, err := h.service.UpdateBookInstance(r.Context(), instanceID, requestBody)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"instance": instance}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteBookInstance godoc
// @Summary Delete a copy
// @Tags instances
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "UUID of copy"
// @Success 200
// @Failure 404
// @Failure 500
// @Router /admin/v1/instances/{id} [delete]
func (h *Handler) deleteBookInstanceHandler(w http.ResponseWriter, r *http.Request) {
	instanceID, err := h.readUUIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBookInstance(r.Context(), instanceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "copy successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
