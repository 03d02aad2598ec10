package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	_ "github.com/litvinov-da/library/docs"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/repository"
	"github.com/litvinov-da/library/repository/repotest"
	"github.com/litvinov-da/library/service"
	"github.com/stretchr/testify/require"
)

const testPassword = "pa55word1234"

type testApp struct {
	server  *httptest.Server
	repo    repository.Repository
	service service.Service
}

func newTestApp(t *testing.T, options ...func(cfg *config.Config)) *testApp {
	t.Helper()
	var cfg config.Config
	cfg.Server.Env = "testing"
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Session.MaxAge = 3600
	for _, option := range options {
		option(&cfg)
	}
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	repo := repotest.NewMemory()
	svc := service.New(cfg, &sync.WaitGroup{}, logger, repo)
	permissions := ttlcache.New(ttlcache.WithTTL[int64, data.Permissions](30 * time.Second))
	h, err := New(cfg, logger, permissions, svc)
	require.NoError(t, err)
	server := httptest.NewServer(h.Routes())
	t.Cleanup(server.Close)
	return &testApp{server: server, repo: repo, service: svc}
}

// client returns a client with its own cookie jar that does not follow redirects.
func (ta *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (ta *testApp) get(t *testing.T, client *http.Client, path string) (int, http.Header, string) {
	t.Helper()
	return ta.do(t, client, http.MethodGet, path, "", nil)
}

func (ta *testApp) do(t *testing.T, client *http.Client, method, path, token string, body interface{}) (int, http.Header, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(js)
	}
	req, err := http.NewRequest(method, ta.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, res.Header, string(b)
}

func (ta *testApp) login(t *testing.T, client *http.Client, email, password, next string) (int, http.Header) {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}, "next": {next}}
	res, err := client.PostForm(ta.server.URL+"/accounts/login/", form)
	require.NoError(t, err)
	res.Body.Close()
	return res.StatusCode, res.Header
}

func (ta *testApp) token(t *testing.T, email string) string {
	t.Helper()
	status, _, body := ta.do(t, ta.client(t), http.MethodPost, "/v1/tokens/authentication", "",
		dto.CreateAuthenticationTokenRequestBody{Email: email, Password: testPassword})
	require.Equal(t, http.StatusCreated, status, body)
	var response struct {
		Token data.Token `json:"authentication_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	return response.Token.Plaintext
}

func (ta *testApp) mustUser(t *testing.T, name, email string, permissions ...string) *data.User {
	t.Helper()
	ctx := context.Background()
	user := &data.User{Name: name, Email: email, Activated: true}
	require.NoError(t, user.Password.Set(testPassword))
	require.NoError(t, ta.repo.CreateUser(ctx, user))
	if len(permissions) > 0 {
		require.NoError(t, ta.repo.AddPermissionsForUser(ctx, user.ID, permissions...))
	}
	return user
}

func ptr[T any](v T) *T {
	return &v
}

// seedDune creates the Dune catalog: one author, one genre, one book with an
// available copy and a copy on loan to borrower.
func (ta *testApp) seedDune(t *testing.T, borrower *data.User) *data.Book {
	t.Helper()
	ctx := context.Background()
	author, err := ta.service.CreateAuthor(ctx, dto.AuthorRequestBody{FirstName: ptr("Frank"), LastName: ptr("Herbert")})
	require.NoError(t, err)
	genre, err := ta.service.CreateGenre(ctx, dto.GenreRequestBody{Name: ptr("Science Fiction")})
	require.NoError(t, err)
	book, err := ta.service.CreateBook(ctx, dto.BookRequestBody{
		Title:    ptr("Dune"),
		AuthorID: ptr(author.ID),
		Summary:  ptr("Desert planet"),
		Isbn:     ptr("9780441013593"),
		Genres:   []int64{genre.ID},
		Lang:     ptr("en"),
	})
	require.NoError(t, err)
	_, err = ta.service.CreateBookInstance(ctx, dto.BookInstanceRequestBody{
		BookID:  ptr(book.ID),
		Imprint: ptr("Ace, 1990"),
		Status:  ptr("a"),
	})
	require.NoError(t, err)
	_, err = ta.service.CreateBookInstance(ctx, dto.BookInstanceRequestBody{
		BookID:     ptr(book.ID),
		Imprint:    ptr("Chilton, 1965"),
		Status:     ptr("o"),
		DueBack:    ptr("2030-01-15"),
		BorrowerID: ptr(borrower.ID),
	})
	require.NoError(t, err)
	return book
}
