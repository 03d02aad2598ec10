package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrRecordReferenced = errors.New("record is referenced by other records")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// writeError translates constraint violations raised by inserts and updates.
func writeError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicateRecord
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}

// deleteError translates constraint violations raised by deletes.
func deleteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrRecordReferenced
	}
	return err
}
