package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/litvinov-da/library/clients"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/repository/repotest"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	recipient string
	template  string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(recipient, templateFile string, _ interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{recipient: recipient, template: templateFile})
	return nil
}

type fakeStorage struct {
	keys []string
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://covers.test/" + key, nil
}

type testService struct {
	*service
	mailer  *fakeMailer
	storage *fakeStorage
}

func newTestService(t *testing.T) testService {
	t.Helper()
	mailer := &fakeMailer{}
	storage := &fakeStorage{}
	s := &service{
		wg:         &sync.WaitGroup{},
		logger:     jsonlog.New(io.Discard, jsonlog.LevelOff),
		repo:       repotest.NewMemory(),
		mailer:     mailer,
		storage:    storage,
		httpClient: clients.NewHTTPClient(),
	}
	return testService{service: s, mailer: mailer, storage: storage}
}

func ptr[T any](v T) *T {
	return &v
}

func mustAuthor(t *testing.T, s testService, first, last string) *data.Author {
	t.Helper()
	author, err := s.CreateAuthor(context.Background(), dto.AuthorRequestBody{FirstName: ptr(first), LastName: ptr(last)})
	require.NoError(t, err)
	return author
}

func mustGenre(t *testing.T, s testService, name string) *data.Genre {
	t.Helper()
	genre, err := s.CreateGenre(context.Background(), dto.GenreRequestBody{Name: ptr(name)})
	require.NoError(t, err)
	return genre
}

func mustBook(t *testing.T, s testService, title, isbn string, authorID int64, genreIDs ...int64) *data.Book {
	t.Helper()
	body := dto.BookRequestBody{
		Title:   ptr(title),
		Summary: ptr("Summary of " + title),
		Isbn:    ptr(isbn),
		Genres:  genreIDs,
	}
	if authorID != 0 {
		body.AuthorID = ptr(authorID)
	}
	book, err := s.CreateBook(context.Background(), body)
	require.NoError(t, err)
	return book
}

func mustInstance(t *testing.T, s testService, bookID int64, status data.LoanStatus, dueBack string, borrowerID int64) *data.BookInstance {
	t.Helper()
	body := dto.BookInstanceRequestBody{
		BookID:  ptr(bookID),
		Imprint: ptr("Ace, 1990"),
		Status:  ptr(string(status)),
	}
	if dueBack != "" {
		body.DueBack = ptr(dueBack)
	}
	if borrowerID != 0 {
		body.BorrowerID = ptr(borrowerID)
	}
	instance, err := s.CreateBookInstance(context.Background(), body)
	require.NoError(t, err)
	return instance
}

func mustUser(t *testing.T, s testService, name, email string, permissions ...string) *data.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), dto.CreateUserRequestBody{
		Name:        name,
		Email:       email,
		Password:    "pa55word-long",
		Permissions: permissions,
	})
	require.NoError(t, err)
	s.wg.Wait()
	return user
}
