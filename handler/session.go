package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName        = "library_session"
	sessionKeyUserID   = "user_id"
	sessionKeyNumVisit = "num_visits"
)

// session returns the request's session. A cookie that fails to decode
// yields a fresh session.
func (h *Handler) session(r *http.Request) *sessions.Session {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		session, _ = h.sessions.New(r, sessionName)
	}
	return session
}

// sessionUserID returns the id of the user logged in through the session.
func sessionUserID(session *sessions.Session) (int64, bool) {
	id, ok := session.Values[sessionKeyUserID].(int64)
	return id, ok && id > 0
}

// numVisits returns the visit counter stored in the session, 0 when unset.
func numVisits(session *sessions.Session) int {
	n, _ := session.Values[sessionKeyNumVisit].(int)
	return n
}
