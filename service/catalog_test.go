package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/litvinov-da/library/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuneExample(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	herbert := mustAuthor(t, s, "Frank", "Herbert")
	scifi := mustGenre(t, s, "Science Fiction")
	dune := mustBook(t, s, "Dune", "9780441013593", herbert.ID, scifi.ID)
	reader := mustUser(t, s, "Ursula Reader", "u@example.com")
	other := mustUser(t, s, "Victor Other", "v@example.com")

	mustInstance(t, s, dune.ID, data.StatusAvailable, "", 0)
	onLoan := mustInstance(t, s, dune.ID, data.StatusOnLoan, "2024-03-09", reader.ID)

	counts, err := s.CatalogCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.CatalogCounts{Books: 1, Instances: 2, InstancesAvailable: 1, Authors: 1}, *counts)

	mine, _, err := s.ListBorrowedByUser(ctx, reader.ID, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, onLoan.ID, mine[0].ID)
	assert.Equal(t, "Dune", mine[0].BookTitle)

	theirs, _, err := s.ListBorrowedByUser(ctx, other.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	book, err := s.ShowCatalogBook(ctx, dune.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", book.DisplayGenre())
	assert.Len(t, book.Instances, 2)
}

func TestShowCatalogBookUnknown(t *testing.T) {
	s := newTestService(t)
	_, err := s.ShowCatalogBook(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListCatalogBooksPages(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	books, _, err := s.ListCatalogBooks(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, books)

	for i := 0; i < 11; i++ {
		mustBook(t, s, fmt.Sprintf("Book %02d", i), fmt.Sprintf("isbn-%02d", i), 0)
	}
	books, metadata, err := s.ListCatalogBooks(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, books, 10)
	assert.Equal(t, 2, metadata.LastPage)

	books, _, err = s.ListCatalogBooks(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	for _, page := range []int{0, -1, 3} {
		_, _, err = s.ListCatalogBooks(ctx, page)
		assert.ErrorIs(t, err, ErrRecordNotFound, "page %d", page)
	}
}

func TestListCatalogBooksOrderedByAuthor(t *testing.T) {
	s := newTestService(t)
	tolkien := mustAuthor(t, s, "John", "Tolkien")
	herbert := mustAuthor(t, s, "Frank", "Herbert")
	brian := mustAuthor(t, s, "Brian", "Herbert")
	mustBook(t, s, "Anonymous", "isbn-0", 0)
	mustBook(t, s, "The Hobbit", "isbn-1", tolkien.ID)
	mustBook(t, s, "Dune", "isbn-2", herbert.ID)
	mustBook(t, s, "Dreamer of Dune", "isbn-3", brian.ID)

	books, _, err := s.ListCatalogBooks(context.Background(), 1)
	require.NoError(t, err)
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	assert.Equal(t, []string{"Dreamer of Dune", "Dune", "The Hobbit", "Anonymous"}, titles)
}

func TestListAllBorrowedOrderedByDueBack(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	book := mustBook(t, s, "Dune", "9780441013593", 0)
	u1 := mustUser(t, s, "Ann", "ann@example.com")
	u2 := mustUser(t, s, "Bob", "bob@example.com")
	late := mustInstance(t, s, book.ID, data.StatusOnLoan, "2024-05-01", u1.ID)
	undated := mustInstance(t, s, book.ID, data.StatusOnLoan, "", u2.ID)
	early := mustInstance(t, s, book.ID, data.StatusOnLoan, "2024-03-09", u2.ID)
	mustInstance(t, s, book.ID, data.StatusReserved, "2024-01-01", u1.ID)

	all, _, err := s.ListAllBorrowed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, early.ID, all[0].ID)
	assert.Equal(t, late.ID, all[1].ID)
	assert.Equal(t, undated.ID, all[2].ID)
	assert.Equal(t, "Ann", all[1].BorrowerName)

	mine, _, err := s.ListBorrowedByUser(ctx, u2.ID, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, early.ID, mine[0].ID)
	assert.Equal(t, undated.ID, mine[1].ID)
}

func TestListBorrowedByUserPageSize(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	book := mustBook(t, s, "Dune", "9780441013593", 0)
	reader := mustUser(t, s, "Ann", "ann@example.com")
	for i := 1; i <= 12; i++ {
		mustInstance(t, s, book.ID, data.StatusOnLoan, fmt.Sprintf("2024-03-%02d", i), reader.ID)
	}
	first, metadata, err := s.ListBorrowedByUser(ctx, reader.ID, 1)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	assert.Equal(t, 12, metadata.TotalRecords)
	assert.Equal(t, "2024-03-01", first[0].DueBack.String())

	second, _, err := s.ListBorrowedByUser(ctx, reader.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}
