// Package repotest provides an in-memory Repository for tests.
package repotest

import (
	"context"
	"crypto/sha256"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/repository"
)

var _ repository.Repository = (*Memory)(nil)

// Memory is an in-process repository.Repository. It enforces the same
// uniqueness, reference and version rules as the PostgreSQL schema.
type Memory struct {
	mu          sync.RWMutex
	nextID      map[string]int64
	genres      map[int64]data.Genre
	authors     map[int64]data.Author
	books       map[int64]data.Book
	instances   map[uuid.UUID]data.BookInstance
	users       map[int64]data.User
	permissions map[int64]data.Permissions
	tokens      []data.Token
}

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		nextID:      make(map[string]int64),
		genres:      make(map[int64]data.Genre),
		authors:     make(map[int64]data.Author),
		books:       make(map[int64]data.Book),
		instances:   make(map[uuid.UUID]data.BookInstance),
		users:       make(map[int64]data.User),
		permissions: make(map[int64]data.Permissions),
	}
}

func (m *Memory) id(table string) int64 {
	m.nextID[table]++
	return m.nextID[table]
}

// paginate cuts one page out of items and computes its metadata.
func paginate[T any](items []T, filters data.Filters) ([]T, data.Metadata) {
	total := len(items)
	start := filters.Offset()
	if start > total {
		start = total
	}
	end := start + filters.Limit()
	if end > total {
		end = total
	}
	page := items[start:end]
	if len(page) == 0 {
		return page, data.Metadata{}
	}
	return page, data.CalculateMetadata(total, filters.Page, filters.PageSize)
}

func compareStrings(a, b string) int {
	return strings.Compare(a, b)
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func directed(c int, filters data.Filters) int {
	if filters.SortDirection() == "DESC" {
		return -c
	}
	return c
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Genres

func (m *Memory) CreateGenre(_ context.Context, genre *data.Genre) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	genre.ID = m.id("genres")
	genre.Version = 1
	m.genres[genre.ID] = *genre
	return nil
}

func (m *Memory) GetGenre(_ context.Context, genreID int64) (*data.Genre, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	genre, ok := m.genres[genreID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &genre, nil
}

func (m *Memory) GetAllGenres(_ context.Context, name string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	genres := []*data.Genre{}
	for _, genre := range m.genres {
		if name == "" || containsFold(genre.Name, name) {
			genre := genre
			genres = append(genres, &genre)
		}
	}
	sort.SliceStable(genres, func(i, j int) bool {
		a, b := genres[i], genres[j]
		var c int
		if filters.SortColumn() == "name" {
			c = directed(compareStrings(a.Name, b.Name), filters)
		} else {
			c = directed(compareInts(a.ID, b.ID), filters)
		}
		if c == 0 {
			return a.ID < b.ID
		}
		return c < 0
	})
	page, metadata := paginate(genres, filters)
	return page, metadata, nil
}

func (m *Memory) UpdateGenre(_ context.Context, genre *data.Genre) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.genres[genre.ID]
	if !ok || stored.Version != genre.Version {
		return repository.ErrEditConflict
	}
	genre.Version++
	m.genres[genre.ID] = *genre
	return nil
}

func (m *Memory) DeleteGenre(_ context.Context, genreID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genres[genreID]; !ok {
		return repository.ErrRecordNotFound
	}
	if m.booksForGenre(genreID) > 0 {
		return repository.ErrRecordReferenced
	}
	delete(m.genres, genreID)
	return nil
}

func (m *Memory) CountBooksForGenre(_ context.Context, genreID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.booksForGenre(genreID), nil
}

func (m *Memory) booksForGenre(genreID int64) int {
	count := 0
	for _, book := range m.books {
		for _, id := range book.GenreIDs() {
			if id == genreID {
				count++
			}
		}
	}
	return count
}

// Authors

func (m *Memory) CreateAuthor(_ context.Context, author *data.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	author.ID = m.id("authors")
	author.Version = 1
	m.authors[author.ID] = *author
	return nil
}

func (m *Memory) GetAuthor(_ context.Context, authorID int64) (*data.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	author, ok := m.authors[authorID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &author, nil
}

func (m *Memory) GetAllAuthors(_ context.Context, name string, filters data.Filters) ([]*data.Author, data.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	authors := []*data.Author{}
	for _, author := range m.authors {
		if name == "" || containsFold(author.FirstName, name) || containsFold(author.LastName, name) {
			author := author
			authors = append(authors, &author)
		}
	}
	sort.SliceStable(authors, func(i, j int) bool {
		a, b := authors[i], authors[j]
		var c int
		if filters.SortColumn() == "name" {
			c = compareStrings(a.LastName, b.LastName)
			if c == 0 {
				c = compareStrings(a.FirstName, b.FirstName)
			}
			c = directed(c, filters)
		} else {
			c = directed(compareInts(a.ID, b.ID), filters)
		}
		if c == 0 {
			return a.ID < b.ID
		}
		return c < 0
	})
	page, metadata := paginate(authors, filters)
	return page, metadata, nil
}

func (m *Memory) UpdateAuthor(_ context.Context, author *data.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.authors[author.ID]
	if !ok || stored.Version != author.Version {
		return repository.ErrEditConflict
	}
	author.Version++
	m.authors[author.ID] = *author
	return nil
}

func (m *Memory) DeleteAuthor(_ context.Context, authorID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[authorID]; !ok {
		return repository.ErrRecordNotFound
	}
	if m.booksForAuthor(authorID) > 0 {
		return repository.ErrRecordReferenced
	}
	delete(m.authors, authorID)
	return nil
}

func (m *Memory) CountAuthors(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.authors), nil
}

func (m *Memory) CountBooksForAuthor(_ context.Context, authorID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.booksForAuthor(authorID), nil
}

func (m *Memory) booksForAuthor(authorID int64) int {
	count := 0
	for _, book := range m.books {
		if book.AuthorID != nil && *book.AuthorID == authorID {
			count++
		}
	}
	return count
}

// Books

// checkBook enforces the isbn uniqueness and reference rules of the books table.
func (m *Memory) checkBook(book *data.Book) error {
	for id, stored := range m.books {
		if id != book.ID && stored.Isbn == book.Isbn {
			return repository.ErrDuplicateRecord
		}
	}
	if book.AuthorID != nil {
		if _, ok := m.authors[*book.AuthorID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	for _, genreID := range book.GenreIDs() {
		if _, ok := m.genres[genreID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	return nil
}

// storedBook strips the joined fields that are rebuilt on every read.
func storedBook(book data.Book) data.Book {
	genres := make([]data.Genre, len(book.Genres))
	for i := range book.Genres {
		genres[i] = data.Genre{ID: book.Genres[i].ID}
	}
	book.Genres = genres
	book.Author = nil
	book.Instances = nil
	return book
}

// hydrateBook fills in the author and genres of a stored book.
func (m *Memory) hydrateBook(book data.Book) *data.Book {
	if book.AuthorID != nil {
		author := m.authors[*book.AuthorID]
		book.Author = &author
	}
	genres := []data.Genre{}
	for _, genreID := range book.GenreIDs() {
		genres = append(genres, m.genres[genreID])
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	book.Genres = genres
	return &book
}

func (m *Memory) CreateBook(_ context.Context, book *data.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkBook(book); err != nil {
		return err
	}
	book.ID = m.id("books")
	book.Version = 1
	m.books[book.ID] = storedBook(*book)
	return nil
}

func (m *Memory) GetBook(_ context.Context, bookID int64) (*data.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	book, ok := m.books[bookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.hydrateBook(book), nil
}

func (m *Memory) GetAllBooks(_ context.Context, q repository.BookQuery, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	books := []*data.Book{}
	for _, stored := range m.books {
		if q.Title != "" && !containsFold(stored.Title, q.Title) {
			continue
		}
		if q.AuthorID != 0 && (stored.AuthorID == nil || *stored.AuthorID != q.AuthorID) {
			continue
		}
		if q.GenreID != 0 && !containsID(stored.GenreIDs(), q.GenreID) {
			continue
		}
		if q.Lang != "" && stored.Lang != q.Lang {
			continue
		}
		books = append(books, m.hydrateBook(stored))
	}
	sort.SliceStable(books, func(i, j int) bool {
		a, b := books[i], books[j]
		var c int
		switch filters.SortColumn() {
		case "author":
			switch {
			case a.Author == nil && b.Author == nil:
				c = 0
			case a.Author == nil:
				return false
			case b.Author == nil:
				return true
			default:
				c = compareStrings(a.Author.LastName, b.Author.LastName)
				if c == 0 {
					c = compareStrings(a.Author.FirstName, b.Author.FirstName)
				}
				c = directed(c, filters)
			}
		case "title":
			c = directed(compareStrings(a.Title, b.Title), filters)
		default:
			c = directed(compareInts(a.ID, b.ID), filters)
		}
		if c == 0 {
			return a.ID < b.ID
		}
		return c < 0
	})
	page, metadata := paginate(books, filters)
	return page, metadata, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (m *Memory) UpdateBook(_ context.Context, book *data.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.books[book.ID]
	if !ok || stored.Version != book.Version {
		return repository.ErrEditConflict
	}
	if err := m.checkBook(book); err != nil {
		return err
	}
	book.Version++
	m.books[book.ID] = storedBook(*book)
	return nil
}

func (m *Memory) DeleteBook(_ context.Context, bookID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[bookID]; !ok {
		return repository.ErrRecordNotFound
	}
	if m.instancesForBook(bookID) > 0 {
		return repository.ErrRecordReferenced
	}
	delete(m.books, bookID)
	return nil
}

func (m *Memory) CountBooks(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books), nil
}

func (m *Memory) CountInstancesForBook(_ context.Context, bookID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.instancesForBook(bookID), nil
}

func (m *Memory) instancesForBook(bookID int64) int {
	count := 0
	for _, instance := range m.instances {
		if instance.BookID != nil && *instance.BookID == bookID {
			count++
		}
	}
	return count
}

// Book instances

func (m *Memory) checkBookInstance(instance *data.BookInstance) error {
	if instance.BookID != nil {
		if _, ok := m.books[*instance.BookID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	if instance.BorrowerID != nil {
		if _, ok := m.users[*instance.BorrowerID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	return nil
}

// hydrateBookInstance fills in the joined book title and borrower name.
func (m *Memory) hydrateBookInstance(instance data.BookInstance) *data.BookInstance {
	instance.BookTitle = ""
	instance.BorrowerName = ""
	if instance.BookID != nil {
		instance.BookTitle = m.books[*instance.BookID].Title
	}
	if instance.BorrowerID != nil {
		instance.BorrowerName = m.users[*instance.BorrowerID].Name
	}
	return &instance
}

func (m *Memory) CreateBookInstance(_ context.Context, instance *data.BookInstance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[instance.ID]; ok {
		return repository.ErrDuplicateRecord
	}
	if err := m.checkBookInstance(instance); err != nil {
		return err
	}
	instance.Version = 1
	m.instances[instance.ID] = *instance
	return nil
}

func (m *Memory) GetBookInstance(_ context.Context, instanceID uuid.UUID) (*data.BookInstance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	instance, ok := m.instances[instanceID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.hydrateBookInstance(instance), nil
}

func (m *Memory) GetAllBookInstances(_ context.Context, q repository.BookInstanceQuery, filters data.Filters) ([]*data.BookInstance, data.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	instances := []*data.BookInstance{}
	for _, stored := range m.instances {
		if q.Status != "" && stored.Status != q.Status {
			continue
		}
		if q.BookID != nil && (stored.BookID == nil || *stored.BookID != *q.BookID) {
			continue
		}
		if q.BorrowerID != nil && (stored.BorrowerID == nil || *stored.BorrowerID != *q.BorrowerID) {
			continue
		}
		if q.DueBack != nil && (stored.DueBack == nil || !stored.DueBack.Equal(q.DueBack.Time)) {
			continue
		}
		if q.Imprint != "" && !containsFold(stored.Imprint, q.Imprint) {
			continue
		}
		instances = append(instances, m.hydrateBookInstance(stored))
	}
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		var c int
		switch filters.SortColumn() {
		case "due_back":
			switch {
			case a.DueBack == nil && b.DueBack == nil:
				c = 0
			case a.DueBack == nil:
				return false
			case b.DueBack == nil:
				return true
			default:
				c = directed(a.DueBack.Compare(b.DueBack.Time), filters)
			}
		case "imprint":
			c = directed(compareStrings(a.Imprint, b.Imprint), filters)
		default:
			c = directed(compareStrings(string(a.Status), string(b.Status)), filters)
		}
		if c == 0 {
			return a.ID.String() < b.ID.String()
		}
		return c < 0
	})
	page, metadata := paginate(instances, filters)
	return page, metadata, nil
}

func (m *Memory) UpdateBookInstance(_ context.Context, instance *data.BookInstance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.instances[instance.ID]
	if !ok || stored.Version != instance.Version {
		return repository.ErrEditConflict
	}
	if err := m.checkBookInstance(instance); err != nil {
		return err
	}
	instance.Version++
	m.instances[instance.ID] = *instance
	return nil
}

func (m *Memory) DeleteBookInstance(_ context.Context, instanceID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[instanceID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(m.instances, instanceID)
	return nil
}

func (m *Memory) CountBookInstances(_ context.Context, status data.LoanStatus) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, instance := range m.instances {
		if status == "" || instance.Status == status {
			count++
		}
	}
	return count, nil
}

// Users, permissions and tokens

func (m *Memory) CreateUser(_ context.Context, user *data.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stored := range m.users {
		if stored.Email == user.Email {
			return repository.ErrDuplicateRecord
		}
	}
	user.ID = m.id("users")
	user.CreatedAt = time.Now()
	user.Version = 1
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUserByID(_ context.Context, userID int64) (*data.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &user, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*data.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *Memory) GetUserForToken(_ context.Context, tokenScope string, tokenPlaintext string) (*data.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hash := sha256.Sum256([]byte(tokenPlaintext))
	now := time.Now()
	for _, token := range m.tokens {
		if token.Scope == tokenScope && string(token.Hash) == string(hash[:]) && token.Expiry.After(now) {
			user, ok := m.users[token.UserID]
			if !ok {
				break
			}
			return &user, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *Memory) GetAllPermissionsForUser(_ context.Context, userID int64) (data.Permissions, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	permissions := append(data.Permissions(nil), m.permissions[userID]...)
	sort.Strings(permissions)
	return permissions, nil
}

func (m *Memory) AddPermissionsForUser(_ context.Context, userID int64, codes ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return repository.ErrInvalidReference
	}
	for _, code := range codes {
		if !m.permissions[userID].Include(code) {
			m.permissions[userID] = append(m.permissions[userID], code)
		}
	}
	return nil
}

func (m *Memory) CreateNewToken(_ context.Context, userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	token, err := data.GenerateToken(userID, ttl, scope)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = append(m.tokens, *token)
	return token, nil
}

func (m *Memory) DeleteAllTokensForUser(_ context.Context, scope string, userID int64) error {
	if userID < 1 {
		return repository.ErrRecordNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tokens[:0]
	for _, token := range m.tokens {
		if token.Scope != scope || token.UserID != userID {
			kept = append(kept, token)
		}
	}
	m.tokens = kept
	return nil
}
