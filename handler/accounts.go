package handler

import (
	"errors"
	"net/http"

	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/service"
)

func (h *Handler) loginFormHandler(w http.ResponseWriter, r *http.Request) {
	td := h.newTemplateData(r)
	td.Form = dto.LoginForm{Next: r.URL.Query().Get("next")}
	h.render(w, r, http.StatusOK, "login.html", td)
}

// loginHandler stores the id of an authenticated user in the session and
// redirects to the local path given in next.
func (h *Handler) loginHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	err := r.ParseForm()
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	form := dto.LoginForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Next:     r.PostForm.Get("next"),
	}
	user, err := h.service.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation), errors.Is(err, service.ErrInvalidCredentials):
			td := h.newTemplateData(r)
			td.Form = dto.LoginForm{Email: form.Email, Next: form.Next}
			td.Error = "Your email and password didn't match. Please try again."
			h.render(w, r, http.StatusUnauthorized, "login.html", td)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	session := h.session(r)
	session.Values[sessionKeyUserID] = user.ID
	err = session.Save(r, w)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	http.Redirect(w, r, safeRedirect(form.Next), http.StatusSeeOther)
}

func (h *Handler) logoutHandler(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	delete(session.Values, sessionKeyUserID)
	err := session.Save(r, w)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
