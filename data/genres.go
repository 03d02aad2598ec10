package data

import "github.com/litvinov-da/library/internal/validator"

// Genre defines a book genre.
type Genre struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version int32  `json:"-"`
}

func (g Genre) String() string {
	return g.Name
}

func ValidateGenre(v *validator.Validator, genre *Genre) {
	v.Check(validator.NotBlank(genre.Name), "name", "must be provided")
	v.Check(validator.MaxChars(genre.Name, 200), "name", "must not be more than 200 characters long")
}
