package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/litvinov-da/library/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return New(db), mock
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dune", "Dune"},
		{"_", `\_`},
		{"50%", `50\%`},
		{`C:\books`, `C:\\books`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in), tt.in)
	}
}

func TestGetAllBooksOrderedByAuthorNullsLast(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE books.title ILIKE $1 ORDER BY authors.last_name ASC NULLS LAST, authors.first_name ASC NULLS LAST, books.id ASC LIMIT 10 OFFSET 0")).
		WithArgs(`%\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "id"}))

	filters := data.Filters{Page: 1, PageSize: 10, Sort: "author", SortSafeList: []string{"author"}}
	books, metadata, err := repo.GetAllBooks(context.Background(), BookQuery{Title: "_"}, filters)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Equal(t, data.Metadata{}, metadata)
}

func TestGetAllBookInstancesOnLoanByDueBack(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE book_instances.status = $1 AND book_instances.imprint ILIKE $2 ORDER BY book_instances.due_back ASC NULLS LAST, book_instances.id ASC")).
		WithArgs(data.StatusOnLoan, `%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "id"}))

	filters := data.Filters{Page: 1, PageSize: 10, Sort: "due_back", SortSafeList: []string{"due_back"}}
	_, _, err := repo.GetAllBookInstances(context.Background(), BookInstanceQuery{Status: data.StatusOnLoan, Imprint: "100%"}, filters)
	require.NoError(t, err)
}

func TestGetAllGenresEscapesName(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM genres")).
		WithArgs(`\_`, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"count", "id", "name", "version"}))

	filters := data.Filters{Page: 1, PageSize: 20, Sort: "name", SortSafeList: []string{"name"}}
	genres, _, err := repo.GetAllGenres(context.Background(), "_", filters)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestGetGenreNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM genres")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "version"}))

	_, err := repo.GetGenre(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.GetGenre(context.Background(), 0)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteGenreErrors(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM genres")).
		WithArgs(1).
		WillReturnError(&pq.Error{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM genres")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM genres")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	assert.ErrorIs(t, repo.DeleteGenre(ctx, 1), ErrRecordReferenced)
	assert.ErrorIs(t, repo.DeleteGenre(ctx, 2), ErrRecordNotFound)
	assert.NoError(t, repo.DeleteGenre(ctx, 3))
}

func TestCreateBookDuplicateIsbn(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO books")).
		WillReturnError(&pq.Error{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	book := &data.Book{Title: "Dune", Summary: "Desert planet", Isbn: "9780441013593", Lang: data.LanguageEnglish}
	err := repo.CreateBook(context.Background(), book)
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}
