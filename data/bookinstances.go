package data

import (
	"github.com/google/uuid"
	"github.com/litvinov-da/library/internal/validator"
)

// LoanStatus is the availability state of a physical copy.
type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

// DefaultStatus is assigned to copies created without a status.
const DefaultStatus = StatusMaintenance

// Statuses lists the permitted statuses in display order.
var Statuses = []LoanStatus{StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved}

var statusLabels = map[LoanStatus]string{
	StatusMaintenance: "Maintenance",
	StatusOnLoan:      "On loan",
	StatusAvailable:   "Available",
	StatusReserved:    "Reserved",
}

// Label returns the human-readable status name.
func (s LoanStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s LoanStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// BookInstance defines one physical copy of a book that can be borrowed.
type BookInstance struct {
	ID           uuid.UUID  `json:"id"`
	BookID       *int64     `json:"book_id"`
	BookTitle    string     `json:"book_title,omitempty"`
	Imprint      string     `json:"imprint"`
	DueBack      *Date      `json:"due_back,omitempty"`
	Status       LoanStatus `json:"status"`
	BorrowerID   *int64     `json:"borrower_id,omitempty"`
	BorrowerName string     `json:"borrower_name,omitempty"`
	Version      int32      `json:"-"`
}

// String renders the copy as "id (title)", or just the id when it has no book.
func (bi BookInstance) String() string {
	if bi.BookID == nil {
		return bi.ID.String()
	}
	return bi.ID.String() + " (" + bi.BookTitle + ")"
}

func ValidateStatus(v *validator.Validator, status LoanStatus) {
	v.Check(status.Valid(), "status", "must be one of m, o, a, r")
}

func ValidateBookInstance(v *validator.Validator, instance *BookInstance) {
	v.Check(validator.NotBlank(instance.Imprint), "imprint", "must be provided")
	v.Check(validator.MaxChars(instance.Imprint, 200), "imprint", "must not be more than 200 characters long")
	ValidateStatus(v, instance.Status)
}
