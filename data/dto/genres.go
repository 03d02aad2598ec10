package dto

import "github.com/litvinov-da/library/data"

// GenreRequestBody defines the request body for CreateGenre and UpdateGenre services.
type GenreRequestBody struct {
	Name *string `json:"name"`
}

// QsListGenres defines query strings for ListGenres service.
type QsListGenres struct {
	Name    string
	Filters data.Filters
}
