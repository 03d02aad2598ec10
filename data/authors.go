package data

import "github.com/litvinov-da/library/internal/validator"

// Author defines a book author. Birth and death dates are optional.
type Author struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth *Date  `json:"date_of_birth,omitempty"`
	DateOfDeath *Date  `json:"date_of_death,omitempty"`
	Version     int32  `json:"-"`
}

// String renders the author as "last, first".
func (a Author) String() string {
	return a.LastName + ", " + a.FirstName
}

func ValidateAuthor(v *validator.Validator, author *Author) {
	v.Check(validator.NotBlank(author.FirstName), "first_name", "must be provided")
	v.Check(validator.MaxChars(author.FirstName, 100), "first_name", "must not be more than 100 characters long")
	v.Check(validator.NotBlank(author.LastName), "last_name", "must be provided")
	v.Check(validator.MaxChars(author.LastName, 100), "last_name", "must not be more than 100 characters long")
}
