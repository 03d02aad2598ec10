package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/litvinov-da/library/data"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	// Catalog pages
	router.HandlerFunc(http.MethodGet, "/", h.indexHandler)
	router.HandlerFunc(http.MethodGet, "/books/", h.bookListHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", h.bookDetailHandler)
	router.HandlerFunc(http.MethodGet, "/mybooks/", h.requireAuthenticatedUser(h.myBooksHandler))
	router.HandlerFunc(http.MethodGet, "/allborrowed/", h.requirePermission(data.PermissionMarkReturned, h.allBorrowedHandler))

	router.HandlerFunc(http.MethodGet, "/accounts/login/", h.loginFormHandler)
	router.HandlerFunc(http.MethodPost, "/accounts/login/", h.loginHandler)
	router.HandlerFunc(http.MethodPost, "/accounts/logout/", h.logoutHandler)

	// Admin API
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return h.requirePermission(data.PermissionManageCatalog, next)
	}

	router.HandlerFunc(http.MethodGet, "/admin/v1/genres", admin(h.listGenresHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/genres", admin(h.createGenreHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/genres/:id", admin(h.showGenreHandler))
	router.HandlerFunc(http.MethodPatch, "/admin/v1/genres/:id", admin(h.updateGenreHandler))
	router.HandlerFunc(http.MethodDelete, "/admin/v1/genres/:id", admin(h.deleteGenreHandler))

	router.HandlerFunc(http.MethodGet, "/admin/v1/authors", admin(h.listAuthorsHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/authors", admin(h.createAuthorHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/authors/:id", admin(h.showAuthorHandler))
	router.HandlerFunc(http.MethodPatch, "/admin/v1/authors/:id", admin(h.updateAuthorHandler))
	router.HandlerFunc(http.MethodDelete, "/admin/v1/authors/:id", admin(h.deleteAuthorHandler))

	router.HandlerFunc(http.MethodGet, "/admin/v1/books", admin(h.listBooksHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/books", admin(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/books/:id", admin(h.showBookHandler))
	router.HandlerFunc(http.MethodPatch, "/admin/v1/books/:id", admin(h.updateBookHandler))
	router.HandlerFunc(http.MethodDelete, "/admin/v1/books/:id", admin(h.deleteBookHandler))
	router.HandlerFunc(http.MethodPatch, "/admin/v1/books/:id/cover", admin(h.updateBookCoverHandler))
	router.HandlerFunc(http.MethodPut, "/admin/v1/books/:id/cover", admin(h.importBookCoverHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/books/:id/instances", admin(h.listBookInstancesForBookHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/books/:id/instances", admin(h.createBookInstanceForBookHandler))

	router.HandlerFunc(http.MethodGet, "/admin/v1/instances", admin(h.listBookInstancesHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/instances", admin(h.createBookInstanceHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/instances/:id", admin(h.showBookInstanceHandler))
	router.HandlerFunc(http.MethodPatch, "/admin/v1/instances/:id", admin(h.updateBookInstanceHandler))
	router.HandlerFunc(http.MethodDelete, "/admin/v1/instances/:id", admin(h.deleteBookInstanceHandler))

	router.HandlerFunc(http.MethodPost, "/admin/v1/users", admin(h.createUserHandler))
	router.HandlerFunc(http.MethodGet, "/admin/v1/users/:id", admin(h.showUserHandler))
	router.HandlerFunc(http.MethodPost, "/admin/v1/users/:id/permissions", admin(h.grantPermissionsHandler))

	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	if h.config.Metrics.Enabled {
		router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	}

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
