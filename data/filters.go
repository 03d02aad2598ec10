package data

import (
	"math"
	"strings"

	"github.com/litvinov-da/library/internal/validator"
)

// DefaultPageSize is the page size of the catalog list pages.
const DefaultPageSize = 10

// Filters holds pagination and sorting parameters taken from query strings.
type Filters struct {
	Page         int
	PageSize     int
	Sort         string
	SortSafeList []string
}

// SortColumn returns the validated sort column. It panics on a value
// outside the safe list since that can only be a programming error.
func (f Filters) SortColumn() string {
	for _, safeValue := range f.SortSafeList {
		if f.Sort == safeValue {
			return strings.TrimPrefix(f.Sort, "-")
		}
	}
	panic("unsafe sort parameter: " + f.Sort)
}

// SortDirection returns "ASC" or "DESC" depending on the "-" prefix.
func (f Filters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}
	return "ASC"
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func ValidateFilters(v *validator.Validator, f Filters) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= 100, "page_size", "must be a maximum of 100")
	if len(f.SortSafeList) > 0 {
		v.Check(validator.In(f.Sort, f.SortSafeList...), "sort", "invalid sort value")
	}
}

// Metadata describes one page of a paginated list.
type Metadata struct {
	CurrentPage  int `json:"current_page,omitempty"`
	PageSize     int `json:"page_size,omitempty"`
	FirstPage    int `json:"first_page,omitempty"`
	LastPage     int `json:"last_page,omitempty"`
	TotalRecords int `json:"total_records,omitempty"`
}

// HasPrevious reports whether a page exists before the current one.
func (m Metadata) HasPrevious() bool {
	return m.CurrentPage > m.FirstPage
}

// HasNext reports whether a page exists after the current one.
func (m Metadata) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

func (m Metadata) PreviousPage() int {
	return m.CurrentPage - 1
}

func (m Metadata) NextPage() int {
	return m.CurrentPage + 1
}

// CalculateMetadata computes pagination metadata from the total record count.
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}
