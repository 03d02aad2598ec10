package data

import (
	"strings"

	"github.com/litvinov-da/library/internal/validator"
)

// ScopeCover is the storage prefix of book cover images.
const ScopeCover = "bookcovers"

// Language is the language a book is written in.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
	LanguageItalian Language = "it"
)

// DefaultLanguage is assigned to books created without a language.
const DefaultLanguage = LanguageRussian

// Languages lists the permitted languages in display order.
var Languages = []Language{
	LanguageRussian,
	LanguageEnglish,
	LanguageGerman,
	LanguageSpanish,
	LanguageFrench,
	LanguageItalian,
}

var languageLabels = map[Language]string{
	LanguageRussian: "Russian",
	LanguageEnglish: "English",
	LanguageGerman:  "German",
	LanguageSpanish: "Spanish",
	LanguageFrench:  "French",
	LanguageItalian: "Italian",
}

// Label returns the human-readable language name.
func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return string(l)
}

// LanguageCodes returns the codes of the permitted languages.
func LanguageCodes() []string {
	codes := make([]string, len(Languages))
	for i, l := range Languages {
		codes[i] = string(l)
	}
	return codes
}

// Book defines a catalog title. Author is optional; Genres may be empty.
type Book struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	AuthorID  *int64          `json:"author_id"`
	Author    *Author         `json:"author,omitempty"`
	Summary   string          `json:"summary"`
	Isbn      string          `json:"isbn"`
	Genres    []Genre         `json:"genres"`
	Lang      Language        `json:"lang"`
	CoverURL  string          `json:"cover_url,omitempty"`
	Instances []*BookInstance `json:"instances,omitempty"`
	Version   int32           `json:"-"`
}

func (b Book) String() string {
	return b.Title
}

// GenreIDs returns the ids of the book's genres.
func (b Book) GenreIDs() []int64 {
	ids := make([]int64, len(b.Genres))
	for i := range b.Genres {
		ids[i] = b.Genres[i].ID
	}
	return ids
}

// DisplayGenre joins the names of all genres with ", ".
func (b Book) DisplayGenre() string {
	names := make([]string, len(b.Genres))
	for i := range b.Genres {
		names[i] = b.Genres[i].Name
	}
	return strings.Join(names, ", ")
}

func ValidateIsbn(v *validator.Validator, isbn string) {
	v.Check(validator.NotBlank(isbn), "isbn", "must be provided")
	v.Check(validator.MaxChars(isbn, 13), "isbn", "must not be more than 13 characters long")
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(validator.NotBlank(book.Title), "title", "must be provided")
	v.Check(validator.MaxChars(book.Title, 200), "title", "must not be more than 200 characters long")
	v.Check(validator.NotBlank(book.Summary), "summary", "must be provided")
	v.Check(validator.MaxChars(book.Summary, 1000), "summary", "must not be more than 1000 characters long")
	ValidateIsbn(v, book.Isbn)
	v.Check(validator.In(string(book.Lang), LanguageCodes()...), "lang", "must be one of ru, en, de, es, fr, it")
	v.Check(validator.Unique(book.GenreIDs()), "genres", "must not contain duplicate values")
}
