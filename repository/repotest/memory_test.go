package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookFilters(sort string) data.Filters {
	return data.Filters{Page: 1, PageSize: 10, Sort: sort, SortSafeList: []string{sort}}
}

func TestMemoryBookInvariants(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	author := &data.Author{FirstName: "Frank", LastName: "Herbert"}
	require.NoError(t, repo.CreateAuthor(ctx, author))
	genre := &data.Genre{Name: "Science Fiction"}
	require.NoError(t, repo.CreateGenre(ctx, genre))

	book := &data.Book{Title: "Dune", Summary: "Desert planet", Isbn: "9780441013593", Lang: data.LanguageEnglish, AuthorID: &author.ID, Genres: []data.Genre{{ID: genre.ID}}}
	require.NoError(t, repo.CreateBook(ctx, book))

	dup := &data.Book{Title: "Dune Messiah", Summary: "Sequel", Isbn: "9780441013593", Lang: data.LanguageEnglish}
	assert.ErrorIs(t, repo.CreateBook(ctx, dup), repository.ErrDuplicateRecord)

	missing := int64(42)
	orphan := &data.Book{Title: "Orphan", Summary: "x", Isbn: "1", AuthorID: &missing}
	assert.ErrorIs(t, repo.CreateBook(ctx, orphan), repository.ErrInvalidReference)

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herbert, Frank", got.Author.String())
	assert.Equal(t, "Science Fiction", got.DisplayGenre())

	stale := *got
	got.Title = "Dune (revised)"
	require.NoError(t, repo.UpdateBook(ctx, got))
	assert.ErrorIs(t, repo.UpdateBook(ctx, &stale), repository.ErrEditConflict)

	instance := &data.BookInstance{ID: uuid.New(), BookID: &book.ID, Imprint: "Ace", Status: data.StatusAvailable}
	require.NoError(t, repo.CreateBookInstance(ctx, instance))
	assert.ErrorIs(t, repo.DeleteBook(ctx, book.ID), repository.ErrRecordReferenced)
	assert.ErrorIs(t, repo.DeleteAuthor(ctx, author.ID), repository.ErrRecordReferenced)
	assert.ErrorIs(t, repo.DeleteGenre(ctx, genre.ID), repository.ErrRecordReferenced)

	n, err := repo.CountInstancesForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.DeleteBookInstance(ctx, instance.ID))
	require.NoError(t, repo.DeleteBook(ctx, book.ID))
	require.NoError(t, repo.DeleteAuthor(ctx, author.ID))
	_, err = repo.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryBookInstanceOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	book := &data.Book{Title: "Dune", Summary: "Desert planet", Isbn: "9780441013593", Lang: data.LanguageEnglish}
	require.NoError(t, repo.CreateBook(ctx, book))

	due := func(day int) *data.Date {
		d := data.NewDate(2024, time.March, day)
		return &d
	}
	ids := make([]uuid.UUID, 0, 3)
	for _, dueBack := range []*data.Date{nil, due(20), due(9)} {
		instance := &data.BookInstance{ID: uuid.New(), BookID: &book.ID, Imprint: "Ace", Status: data.StatusOnLoan, DueBack: dueBack}
		require.NoError(t, repo.CreateBookInstance(ctx, instance))
		ids = append(ids, instance.ID)
	}

	asc, metadata, err := repo.GetAllBookInstances(ctx, repository.BookInstanceQuery{Status: data.StatusOnLoan}, bookFilters("due_back"))
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []uuid.UUID{ids[2], ids[1], ids[0]}, []uuid.UUID{asc[0].ID, asc[1].ID, asc[2].ID})
	assert.Equal(t, "Dune", asc[0].BookTitle)
	assert.Equal(t, 3, metadata.TotalRecords)

	desc, _, err := repo.GetAllBookInstances(ctx, repository.BookInstanceQuery{}, bookFilters("-due_back"))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ids[1], ids[2], ids[0]}, []uuid.UUID{desc[0].ID, desc[1].ID, desc[2].ID})

	available, err := repo.CountBookInstances(ctx, data.StatusAvailable)
	require.NoError(t, err)
	assert.Zero(t, available)
}

func TestMemoryPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateGenre(ctx, &data.Genre{Name: string(rune('a' + i))}))
	}
	filters := data.Filters{Page: 2, PageSize: 2, Sort: "name", SortSafeList: []string{"name"}}
	genres, metadata, err := repo.GetAllGenres(ctx, "", filters)
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "c", genres[0].Name)
	assert.Equal(t, 2, metadata.LastPage)

	filters.Page = 3
	genres, metadata, err = repo.GetAllGenres(ctx, "", filters)
	require.NoError(t, err)
	assert.Empty(t, genres)
	assert.Equal(t, data.Metadata{}, metadata)
}

func TestMemoryUsersAndTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	user := &data.User{Name: "Ann", Email: "ann@example.com", Activated: true}
	require.NoError(t, user.Password.Set("pa55word-long"))
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.ErrorIs(t, repo.CreateUser(ctx, &data.User{Email: "ann@example.com"}), repository.ErrDuplicateRecord)

	require.NoError(t, repo.AddPermissionsForUser(ctx, user.ID, data.PermissionMarkReturned, data.PermissionMarkReturned))
	permissions, err := repo.GetAllPermissionsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, data.Permissions{data.PermissionMarkReturned}, permissions)

	token, err := repo.CreateNewToken(ctx, user.ID, time.Hour, data.ScopeAuthentication)
	require.NoError(t, err)
	found, err := repo.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, repo.DeleteAllTokensForUser(ctx, data.ScopeAuthentication, user.ID))
	_, err = repo.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
