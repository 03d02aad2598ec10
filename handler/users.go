package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/service"
)

// CreateUser godoc
// @Summary Create a user
// @Description This endpoint creates an activated user, grants the given permissions and sends a welcome email
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateUserRequestBody true "JSON payload required to create a user"
// @Success 201 {object} data.User
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /admin/v1/users [post]
func (h *Handler) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.CreateUser(r.Context(), requestBody)
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
	headers.Set("Location", fmt.Sprintf("/admin/v1/users/%d", user.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"user": user}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Show a user
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of user"
// @Success 200 {object} data.User
// @Failure 404
// @Failure 500
// @Router /admin/v1/users/{id} [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	permissions, err := h.service.GetUserPermissions(r.Context(), user.ID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user, "permissions": permissions}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GrantPermissions godoc
// @Summary Grant permissions to a user
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "ID of user"
// @Param body body dto.GrantPermissionsRequestBody true "JSON payload with the permission codes"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /admin/v1/users/{id}/permissions [post]
func (h *Handler) grantPermissionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.GrantPermissionsRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	permissions, err := h.service.GrantPermissions(r.Context(), userID, requestBody.Permissions)
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
	h.permissions.Delete(userID)
	err = h.encodeJSON(w, http.StatusOK, envelope{"permissions": permissions}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
