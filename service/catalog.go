package service

import (
	"context"
	"errors"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/litvinov-da/library/repository"
	"golang.org/x/sync/errgroup"
)

type catalog interface {
	CatalogCounts(ctx context.Context) (*data.CatalogCounts, error)
	ListCatalogBooks(ctx context.Context, page int) ([]*data.Book, data.Metadata, error)
	ShowCatalogBook(ctx context.Context, bookID int64) (*data.Book, error)
	ListBorrowedByUser(ctx context.Context, userID int64, page int) ([]*data.BookInstance, data.Metadata, error)
	ListAllBorrowed(ctx context.Context, page int) ([]*data.BookInstance, data.Metadata, error)
}

// CatalogCounts service computes the home page figures concurrently.
func (s *service) CatalogCounts(ctx context.Context) (*data.CatalogCounts, error) {
	counts := &data.CatalogCounts{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Books, err = s.repo.CountBooks(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Instances, err = s.repo.CountBookInstances(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		counts.InstancesAvailable, err = s.repo.CountBookInstances(ctx, data.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		counts.Authors, err = s.repo.CountAuthors(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// catalogFilters builds the filters of a public list page. Pages outside the
// valid range are reported as missing.
func catalogFilters(page int, sort string) (data.Filters, error) {
	filters := pageFilters(page, sort, sort)
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return filters, ErrRecordNotFound
	}
	return filters, nil
}

// pastLastPage reports whether an empty result was requested beyond page 1.
func pastLastPage(n int, filters data.Filters) bool {
	return n == 0 && filters.Page > 1
}

// ListCatalogBooks service retrieves one page of the public book list ordered by author.
func (s *service) ListCatalogBooks(ctx context.Context, page int) ([]*data.Book, data.Metadata, error) {
	filters, err := catalogFilters(page, "author")
	if err != nil {
		return nil, data.Metadata{}, err
	}
	books, metadata, err := s.repo.GetAllBooks(ctx, repository.BookQuery{}, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	if pastLastPage(len(books), filters) {
		return nil, data.Metadata{}, ErrRecordNotFound
	}
	return books, metadata, nil
}

// ShowCatalogBook service retrieves a book with its author, genres and every copy.
func (s *service) ShowCatalogBook(ctx context.Context, bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	book.Instances, err = s.allInstancesForBook(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// allInstancesForBook walks every page of a book's copies.
func (s *service) allInstancesForBook(ctx context.Context, bookID int64) ([]*data.BookInstance, error) {
	filters := data.Filters{Page: 1, PageSize: 100, Sort: "status", SortSafeList: []string{"status"}}
	all := []*data.BookInstance{}
	for {
		instances, metadata, err := s.repo.GetAllBookInstances(ctx, repository.BookInstanceQuery{BookID: &bookID}, filters)
		if err != nil {
			return nil, err
		}
		all = append(all, instances...)
		if !metadata.HasNext() {
			return all, nil
		}
		filters.Page++
	}
}

// ListBorrowedByUser service retrieves the copies on loan to a user, soonest due first.
func (s *service) ListBorrowedByUser(ctx context.Context, userID int64, page int) ([]*data.BookInstance, data.Metadata, error) {
	return s.listOnLoan(ctx, repository.BookInstanceQuery{Status: data.StatusOnLoan, BorrowerID: &userID}, page)
}

// ListAllBorrowed service retrieves every copy on loan, soonest due first.
func (s *service) ListAllBorrowed(ctx context.Context, page int) ([]*data.BookInstance, data.Metadata, error) {
	return s.listOnLoan(ctx, repository.BookInstanceQuery{Status: data.StatusOnLoan}, page)
}

func (s *service) listOnLoan(ctx context.Context, q repository.BookInstanceQuery, page int) ([]*data.BookInstance, data.Metadata, error) {
	filters, err := catalogFilters(page, "due_back")
	if err != nil {
		return nil, data.Metadata{}, err
	}
	instances, metadata, err := s.repo.GetAllBookInstances(ctx, q, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	if pastLastPage(len(instances), filters) {
		return nil, data.Metadata{}, ErrRecordNotFound
	}
	return instances, metadata, nil
}
