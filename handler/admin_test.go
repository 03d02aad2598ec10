package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresPermission(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Ann Reader", "ann@example.com")
	client := ta.client(t)

	status, header, body := ta.do(t, client, http.MethodGet, "/admin/v1/genres", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Contains(t, body, `"error"`)

	token := ta.token(t, "ann@example.com")
	status, _, _ = ta.do(t, client, http.MethodGet, "/admin/v1/genres", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _, _ = ta.do(t, client, http.MethodGet, "/admin/v1/genres", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminCatalogCRUD(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Lena Librarian", "lena@example.com", data.PermissionManageCatalog)
	token := ta.token(t, "lena@example.com")
	client := ta.client(t)

	status, header, body := ta.do(t, client, http.MethodPost, "/admin/v1/genres", token, dto.GenreRequestBody{Name: ptr("Fantasy")})
	require.Equal(t, http.StatusCreated, status, body)
	var genreResponse struct {
		Genre data.Genre `json:"genre"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &genreResponse))
	assert.Equal(t, fmt.Sprintf("/admin/v1/genres/%d", genreResponse.Genre.ID), header.Get("Location"))

	status, _, body = ta.do(t, client, http.MethodPost, "/admin/v1/authors", token, dto.AuthorRequestBody{
		FirstName:   ptr("J. R. R."),
		LastName:    ptr("Tolkien"),
		DateOfBirth: ptr("1892-01-03"),
	})
	require.Equal(t, http.StatusCreated, status, body)
	var authorResponse struct {
		Author data.Author `json:"author"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &authorResponse))
	authorID := authorResponse.Author.ID

	book := dto.BookRequestBody{
		Title:    ptr("The Hobbit"),
		AuthorID: ptr(authorID),
		Summary:  ptr("There and back again"),
		Isbn:     ptr("9780261102217"),
		Genres:   []int64{genreResponse.Genre.ID},
	}
	status, _, body = ta.do(t, client, http.MethodPost, "/admin/v1/books", token, book)
	require.Equal(t, http.StatusCreated, status, body)
	var bookResponse struct {
		Book data.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &bookResponse))
	assert.Equal(t, data.LanguageRussian, bookResponse.Book.Lang)
	bookID := bookResponse.Book.ID

	status, _, body = ta.do(t, client, http.MethodPost, "/admin/v1/books", token, book)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "a book with this isbn already exists")

	status, _, body = ta.do(t, client, http.MethodPost, fmt.Sprintf("/admin/v1/books/%d/instances", bookID), token,
		dto.BookInstanceRequestBody{Imprint: ptr("Allen & Unwin, 1937")})
	require.Equal(t, http.StatusCreated, status, body)
	var instanceResponse struct {
		Instance data.BookInstance `json:"instance"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &instanceResponse))
	assert.Equal(t, data.StatusMaintenance, instanceResponse.Instance.Status)

	status, _, body = ta.do(t, client, http.MethodGet, "/admin/v1/instances?status=m", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, instanceResponse.Instance.ID.String())

	status, _, _ = ta.do(t, client, http.MethodGet, "/admin/v1/instances?status=x", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _, body = ta.do(t, client, http.MethodDelete, fmt.Sprintf("/admin/v1/authors/%d", authorID), token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, "referenced by 1 books")

	status, _, _ = ta.do(t, client, http.MethodDelete, fmt.Sprintf("/admin/v1/books/%d", bookID), token, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _, _ = ta.do(t, client, http.MethodDelete, "/admin/v1/instances/"+instanceResponse.Instance.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _, _ = ta.do(t, client, http.MethodDelete, fmt.Sprintf("/admin/v1/books/%d", bookID), token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _, _ = ta.do(t, client, http.MethodDelete, fmt.Sprintf("/admin/v1/authors/%d", authorID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = ta.do(t, client, http.MethodGet, fmt.Sprintf("/admin/v1/books/%d", bookID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _, _ = ta.do(t, client, http.MethodGet, "/admin/v1/instances/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminCoverWithoutStorage(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Lena Librarian", "lena@example.com", data.PermissionManageCatalog)
	token := ta.token(t, "lena@example.com")
	client := ta.client(t)

	status, _, body := ta.do(t, client, http.MethodPost, "/admin/v1/books", token, dto.BookRequestBody{
		Title:   ptr("Dune"),
		Summary: ptr("Desert planet"),
		Isbn:    ptr("9780441013593"),
	})
	require.Equal(t, http.StatusCreated, status, body)
	var bookResponse struct {
		Book data.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &bookResponse))

	status, _, _ = ta.do(t, client, http.MethodPut, fmt.Sprintf("/admin/v1/books/%d/cover", bookResponse.Book.ID), token, dto.ImportCoverRequestBody{URL: "https://example.com/dune.png"})
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestGrantPermissionsTakesEffectImmediately(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Lena Librarian", "lena@example.com", data.PermissionManageCatalog)
	u := ta.mustUser(t, "Ann Reader", "ann@example.com")
	token := ta.token(t, "lena@example.com")

	reader := ta.client(t)
	ta.login(t, reader, u.Email, testPassword, "")
	status, _, _ := ta.get(t, reader, "/allborrowed/")
	require.Equal(t, http.StatusForbidden, status)

	status, _, body := ta.do(t, ta.client(t), http.MethodPost, fmt.Sprintf("/admin/v1/users/%d/permissions", u.ID), token,
		dto.GrantPermissionsRequestBody{Permissions: []string{data.PermissionMarkReturned}})
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, data.PermissionMarkReturned)

	status, _, _ = ta.get(t, reader, "/allborrowed/")
	assert.Equal(t, http.StatusOK, status)

	status, _, body = ta.do(t, ta.client(t), http.MethodGet, fmt.Sprintf("/admin/v1/users/%d", u.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"email": "ann@example.com"`)

	status, _, _ = ta.do(t, ta.client(t), http.MethodPost, "/admin/v1/users/999/permissions", token,
		dto.GrantPermissionsRequestBody{Permissions: []string{data.PermissionMarkReturned}})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTokensAndHealthcheck(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Lena Librarian", "lena@example.com", data.PermissionManageCatalog)
	client := ta.client(t)

	status, _, _ := ta.do(t, client, http.MethodPost, "/v1/tokens/authentication", "",
		dto.CreateAuthenticationTokenRequestBody{Email: "lena@example.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, status)

	token := ta.token(t, "lena@example.com")
	status, _, _ = ta.do(t, client, http.MethodDelete, "/v1/tokens/authentication", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _, _ = ta.do(t, client, http.MethodGet, "/admin/v1/genres", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, body := ta.do(t, client, http.MethodGet, "/v1/healthcheck", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"environment": "testing"`)

	status, _, body = ta.do(t, client, http.MethodGet, "/spec", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "/admin/v1/books/{id}/cover")
}

func TestAdminUpdateErrors(t *testing.T) {
	ta := newTestApp(t)
	ta.mustUser(t, "Lena Librarian", "lena@example.com", data.PermissionManageCatalog)
	token := ta.token(t, "lena@example.com")
	client := ta.client(t)

	status, _, body := ta.do(t, client, http.MethodPost, "/admin/v1/genres", token, dto.GenreRequestBody{Name: ptr("Fantasy")})
	require.Equal(t, http.StatusCreated, status, body)
	var genreResponse struct {
		Genre data.Genre `json:"genre"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &genreResponse))
	genrePath := fmt.Sprintf("/admin/v1/genres/%d", genreResponse.Genre.ID)

	status, _, body = ta.do(t, client, http.MethodPatch, genrePath, token, dto.GenreRequestBody{Name: ptr("   ")})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, `"name"`)

	tests := []struct {
		name string
		path string
		body interface{}
	}{
		{"genre", "/admin/v1/genres/999", dto.GenreRequestBody{Name: ptr("Horror")}},
		{"author", "/admin/v1/authors/999", dto.AuthorRequestBody{LastName: ptr("Poe")}},
		{"instance", "/admin/v1/instances/6f1c2d3e-0000-4000-8000-000000000001", dto.BookInstanceRequestBody{Imprint: ptr("Ace, 1990")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, _ := ta.do(t, client, http.MethodPatch, tt.path, token, tt.body)
			assert.Equal(t, http.StatusNotFound, status)
		})
	}
}

func TestMetricsSurviveSecondRouter(t *testing.T) {
	enableMetrics := func(cfg *config.Config) {
		cfg.Metrics.Enabled = true
		cfg.BasicAuth.Username = "admin"
		cfg.BasicAuth.Password = "secret"
	}
	newTestApp(t, enableMetrics)
	ta := newTestApp(t, enableMetrics)
	client := ta.client(t)

	status, _, _ := ta.get(t, client, "/v1/healthcheck")
	require.Equal(t, http.StatusOK, status)

	status, _, _ = ta.get(t, client, "/debug/vars")
	assert.Equal(t, http.StatusUnauthorized, status)

	req, err := http.NewRequest(http.MethodGet, ta.server.URL+"/debug/vars", nil)
	require.NoError(t, err)
	req.SetBasicAuth("admin", "secret")
	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var vars map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&vars))
	assert.Contains(t, vars, "total_requests_received")
	assert.Contains(t, vars, "total_responses_sent_by_status")
}
