package dto

import "github.com/litvinov-da/library/data"

// AuthorRequestBody defines the request body for CreateAuthor and UpdateAuthor services.
// Pointer fields allow partial updates. DateOfBirth and DateOfDeath accept an
// empty string to clear the date.
type AuthorRequestBody struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

// QsListAuthors defines query strings for ListAuthors service.
type QsListAuthors struct {
	Name    string
	Filters data.Filters
}
