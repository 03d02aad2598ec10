package data

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/litvinov-da/library/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() *Book {
	return &Book{
		Title:   "Dune",
		Summary: "Desert planet",
		Isbn:    "9780441013593",
		Lang:    LanguageEnglish,
	}
}

func TestValidateBook(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Book)
		wantKey string
	}{
		{"valid", func(b *Book) {}, ""},
		{"missing title", func(b *Book) { b.Title = "" }, "title"},
		{"blank title", func(b *Book) { b.Title = "   " }, "title"},
		{"blank summary", func(b *Book) { b.Summary = "\t\n" }, "summary"},
		{"long title", func(b *Book) { b.Title = strings.Repeat("x", 201) }, "title"},
		{"long summary", func(b *Book) { b.Summary = strings.Repeat("x", 1001) }, "summary"},
		{"missing isbn", func(b *Book) { b.Isbn = "" }, "isbn"},
		{"blank isbn", func(b *Book) { b.Isbn = "  " }, "isbn"},
		{"long isbn", func(b *Book) { b.Isbn = "97804410135930" }, "isbn"},
		{"unknown lang", func(b *Book) { b.Lang = "jp" }, "lang"},
		{"duplicate genres", func(b *Book) { b.Genres = []Genre{{ID: 1}, {ID: 1}} }, "genres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := validBook()
			tt.mutate(book)
			v := validator.New()
			ValidateBook(v, book)
			if tt.wantKey == "" {
				assert.True(t, v.Valid(), v.Errors)
				return
			}
			assert.Contains(t, v.Errors, tt.wantKey)
		})
	}
}

func TestValidateAuthorCountsCharacters(t *testing.T) {
	v := validator.New()
	ValidateAuthor(v, &Author{FirstName: strings.Repeat("ж", 100), LastName: "Толстой"})
	assert.True(t, v.Valid())

	v = validator.New()
	ValidateAuthor(v, &Author{FirstName: strings.Repeat("ж", 101)})
	assert.Contains(t, v.Errors, "first_name")
	assert.Contains(t, v.Errors, "last_name")
}

func TestValidateBlankNames(t *testing.T) {
	v := validator.New()
	ValidateGenre(v, &Genre{Name: "   "})
	assert.Equal(t, "must be provided", v.Errors["name"])

	v = validator.New()
	ValidateAuthor(v, &Author{FirstName: " ", LastName: "\t"})
	assert.Contains(t, v.Errors, "first_name")
	assert.Contains(t, v.Errors, "last_name")

	v = validator.New()
	ValidateBookInstance(v, &BookInstance{Imprint: "  ", Status: StatusMaintenance})
	assert.Contains(t, v.Errors, "imprint")
}

func TestValidateBookInstanceStatus(t *testing.T) {
	for _, status := range Statuses {
		v := validator.New()
		ValidateBookInstance(v, &BookInstance{Imprint: "Ace, 1990", Status: status})
		assert.True(t, v.Valid(), status)
	}
	v := validator.New()
	ValidateBookInstance(v, &BookInstance{Imprint: "Ace, 1990", Status: "x"})
	assert.Equal(t, "must be one of m, o, a, r", v.Errors["status"])
}

func TestDisplayGenre(t *testing.T) {
	book := Book{Genres: []Genre{{Name: "Science Fiction"}, {Name: "Adventure"}, {Name: "Classic"}, {Name: "Epic"}}}
	assert.Equal(t, "Science Fiction, Adventure, Classic, Epic", book.DisplayGenre())
	assert.Equal(t, "", Book{}.DisplayGenre())
}

func TestStringForms(t *testing.T) {
	assert.Equal(t, "Herbert, Frank", Author{FirstName: "Frank", LastName: "Herbert"}.String())

	id := uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000001")
	bookID := int64(1)
	assert.Equal(t, id.String()+" (Dune)", BookInstance{ID: id, BookID: &bookID, BookTitle: "Dune"}.String())
	assert.Equal(t, id.String(), BookInstance{ID: id}.String())
	assert.Equal(t, "On loan", StatusOnLoan.Label())
	assert.Equal(t, "Italian", LanguageItalian.Label())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		DueBack *Date `json:"due_back,omitempty"`
	}
	due := NewDate(2024, time.March, 9)
	js, err := json.Marshal(payload{DueBack: &due})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due_back":"2024-03-09"}`, string(js))

	var decoded payload
	require.NoError(t, json.Unmarshal(js, &decoded))
	require.NotNil(t, decoded.DueBack)
	assert.True(t, decoded.DueBack.Equal(due.Time))

	assert.Error(t, json.Unmarshal([]byte(`{"due_back":"09/03/2024"}`), &decoded))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 9, 13, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-09", d.String())
	require.NoError(t, d.Scan([]byte("2023-01-02")))
	assert.Equal(t, "2023-01-02", d.String())
	assert.Error(t, d.Scan(42))
}

func TestCalculateMetadata(t *testing.T) {
	assert.Equal(t, Metadata{}, CalculateMetadata(0, 1, 10))
	m := CalculateMetadata(21, 2, 10)
	assert.Equal(t, 3, m.LastPage)
	assert.True(t, m.HasPrevious())
	assert.True(t, m.HasNext())
	assert.False(t, CalculateMetadata(21, 3, 10).HasNext())
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(7, time.Hour, ScopeAuthentication)
	require.NoError(t, err)
	assert.Len(t, token.Plaintext, 26)
	assert.Len(t, token.Hash, 32)
	v := validator.New()
	ValidateTokenPlaintext(v, token.Plaintext)
	assert.True(t, v.Valid())
}

func TestPermissions(t *testing.T) {
	p := Permissions{PermissionMarkReturned}
	assert.True(t, p.Include(PermissionMarkReturned))
	assert.False(t, p.Include(PermissionManageCatalog))

	v := validator.New()
	ValidatePermissions(v, []string{"catalog.delete_everything"})
	assert.Contains(t, v.Errors, "permissions")
}
