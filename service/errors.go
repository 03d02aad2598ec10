package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation       = errors.New("failed validation")
	ErrRecordNotFound         = errors.New("record not found")
	ErrEditConflict           = errors.New("edit conflict")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnsupportedMediaType   = errors.New("unsupported media type")
	ErrContentTooLarge        = errors.New("content too large")
	ErrBadRequest             = errors.New("bad request")
	ErrDuplicateRecord        = errors.New("duplicate record")
	ErrReferencedByDependents = errors.New("referenced by dependents")
	ErrStorageDisabled        = errors.New("object storage is not configured")
)

// ValidationError carries the field errors of a rejected input. It matches
// ErrFailedValidation and, when set, the more specific cause.
type ValidationError struct {
	Errors map[string]string
	cause  error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q %s", k, e.Errors[k])
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrFailedValidation || (e.cause != nil && target == e.cause)
}

// failedValidation wraps a validator error map.
func failedValidation(errorMap map[string]string) error {
	return &ValidationError{Errors: errorMap}
}

// duplicateValue reports a uniqueness violation on a single field.
func duplicateValue(key, message string) error {
	return &ValidationError{Errors: map[string]string{key: message}, cause: ErrDuplicateRecord}
}

// ReferencedError reports a delete refused because other records still point
// at the target.
type ReferencedError struct {
	Entity     string
	Dependents string
	Count      int
}

func (e *ReferencedError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("%s is referenced by existing %s", e.Entity, e.Dependents)
	}
	return fmt.Sprintf("%s is referenced by %d %s", e.Entity, e.Count, e.Dependents)
}

func (e *ReferencedError) Is(target error) bool {
	return target == ErrReferencedByDependents
}
