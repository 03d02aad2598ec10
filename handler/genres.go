package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/service"
)

// CreateGenre godoc
// @Summary Create a genre
// @Description This endpoint creates a new genre
// @Tags genres
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.GenreRequestBody true "JSON payload required to create a genre"
// @Success 201 {object} data.Genre
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /admin/v1/genres [post]
func (h *Handler) createGenreHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.GenreRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	genre, err := h.service.CreateGenre(r.Context(), requestBody)
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
	headers.Set("Location", fmt.Sprintf("/admin/v1/genres/%d", genre.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"genre": genre}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowGenre godoc
// @Summary Show a genre
// @Tags genres
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of genre"
// @Success 200 {object} data.Genre
// @Failure 404
// @Failure 500
// @Router /admin/v1/genres/{id} [get]
func (h *Handler) showGenreHandler(w http.ResponseWriter, r *http.Request) {
	genreID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	genre, err := h.service.GetGenre(r.Context(), genreID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"genre": genre}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Param token header string true "Bearer token"
// @Param name query string false "Query string param for name search"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: name, id. Desc: -name, -id"
// @Success 200 {array} data.Genre
// @Failure 422
// @Failure 500
// @Router /admin/v1/genres [get]
func (h *Handler) listGenresHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListGenres
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
	genres, metadata, err := h.service.ListGenres(r.Context(), qsInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"genres": genres, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Tags genres
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of genre"
// @Param body body dto.GenreRequestBody true "JSON payload required to update a genre"
// @Success 200 {object} data.Genre
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /admin/v1/genres/{id} [patch]
func (h *Handler) updateGenreHandler(w http.ResponseWriter, r *http.Request) {
	genreID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.GenreRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	genre, err := h.service.UpdateGenre(r.Context(), genreID, requestBody)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"genre": genre}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description This endpoint refuses to delete a genre that is still assigned to books
// @Tags genres
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of genre"
// @Success 200
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /admin/v1/genres/{id} [delete]
func (h *Handler) deleteGenreHandler(w http.ResponseWriter, r *http.Request) {
	genreID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteGenre(r.Context(), genreID)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "genre successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
