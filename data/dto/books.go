package dto

import "github.com/litvinov-da/library/data"

// BookRequestBody defines the request body for CreateBook and UpdateBook services.
// Fields are pointers so that absent fields are left untouched on update.
// An author_id of 0 detaches the author.
type BookRequestBody struct {
	Title    *string `json:"title"`
	AuthorID *int64  `json:"author_id"`
	Summary  *string `json:"summary"`
	Isbn     *string `json:"isbn"`
	Genres   []int64 `json:"genres"`
	Lang     *string `json:"lang"`
}

// QsListBooks defines query strings for the admin book list.
type QsListBooks struct {
	Title    string
	AuthorID int64
	GenreID  int64
	Lang     string
	Filters  data.Filters
}

// ImportCoverRequestBody defines the request body for ImportBookCover service.
type ImportCoverRequestBody struct {
	URL string `json:"url"`
}
