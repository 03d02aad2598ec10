package dto

import "github.com/litvinov-da/library/data"

// BookInstanceRequestBody defines the request body for CreateBookInstance and
// UpdateBookInstance services. An empty due_back clears the date and a
// borrower_id or book_id of 0 detaches the reference.
type BookInstanceRequestBody struct {
	BookID     *int64  `json:"book_id"`
	Imprint    *string `json:"imprint"`
	DueBack    *string `json:"due_back"`
	Status     *string `json:"status"`
	BorrowerID *int64  `json:"borrower_id"`
}

// QsListBookInstances defines query strings for the admin copy list.
type QsListBookInstances struct {
	Status  string
	DueBack string
	Imprint string
	BookID  int64
	Filters data.Filters
}
