package data

import "github.com/litvinov-da/library/internal/validator"

const (
	// PermissionMarkReturned allows viewing every copy currently on loan.
	PermissionMarkReturned = "catalog.can_mark_returned"
	// PermissionManageCatalog allows using the admin API.
	PermissionManageCatalog = "catalog.manage"
)

// Permissions is the set of permission codes granted to a user.
type Permissions []string

// Include reports whether code is in the set.
func (p Permissions) Include(code string) bool {
	return validator.In(code, p...)
}

func ValidatePermissions(v *validator.Validator, codes []string) {
	for _, code := range codes {
		v.Check(validator.In(code, PermissionMarkReturned, PermissionManageCatalog), "permissions", "contains an unknown permission code")
	}
	v.Check(validator.Unique(codes), "permissions", "must not contain duplicate values")
}
