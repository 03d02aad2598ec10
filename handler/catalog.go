package handler

import (
	"errors"
	"net/http"

	"github.com/litvinov-da/library/service"
)

// indexHandler renders the home page with the catalog counts and the number
// of earlier visits from this session.
func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CatalogCounts(r.Context())
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	session := h.session(r)
	visits := numVisits(session)
	session.Values[sessionKeyNumVisit] = visits + 1
	err = session.Save(r, w)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	td := h.newTemplateData(r)
	td.Counts = counts
	td.NumVisits = visits
	h.render(w, r, http.StatusOK, "index.html", td)
}

func (h *Handler) bookListHandler(w http.ResponseWriter, r *http.Request) {
	books, metadata, err := h.service.ListCatalogBooks(r.Context(), h.readPage(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	td := h.newTemplateData(r)
	td.Books = books
	td.Metadata = metadata
	h.render(w, r, http.StatusOK, "book_list.html", td)
}

func (h *Handler) bookDetailHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.ShowCatalogBook(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	td := h.newTemplateData(r)
	td.Book = book
	h.render(w, r, http.StatusOK, "book_detail.html", td)
}

// myBooksHandler lists the copies on loan to the current user.
func (h *Handler) myBooksHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	instances, metadata, err := h.service.ListBorrowedByUser(r.Context(), user.ID, h.readPage(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	td := h.newTemplateData(r)
	td.Instances = instances
	td.Metadata = metadata
	h.render(w, r, http.StatusOK, "bookinstance_list_borrowed_user.html", td)
}

// allBorrowedHandler lists every copy on loan together with its borrower.
func (h *Handler) allBorrowedHandler(w http.ResponseWriter, r *http.Request) {
	instances, metadata, err := h.service.ListAllBorrowed(r.Context(), h.readPage(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	td := h.newTemplateData(r)
	td.Instances = instances
	td.Metadata = metadata
	h.render(w, r, http.StatusOK, "bookinstance_list_borrowed_all.html", td)
}
