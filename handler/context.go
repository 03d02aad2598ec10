package handler

import (
	"context"
	"net/http"

	"github.com/litvinov-da/library/data"
)

type contextKey string

const userContextKey = contextKey("user")

// contextSetUser returns a copy of the request carrying user.
func (h *Handler) contextSetUser(r *http.Request, user *data.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser retrieves the user stored by the authenticate middleware.
// A missing value is a wiring error.
func (h *Handler) contextGetUser(r *http.Request) *data.User {
	user, ok := r.Context().Value(userContextKey).(*data.User)
	if !ok {
		panic("missing user value in request context")
	}
	return user
}
