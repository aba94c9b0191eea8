// notesapi/sources/psql/dao/errors.go
package dao

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNoteNotFound is returned when no row matches the requested id.
	ErrNoteNotFound = errors.New("note not found")
	// ErrDuplicateTitle is returned when the unique index on title is violated.
	ErrDuplicateTitle = errors.New("note title already exists")
)

// StoreError wraps any persistence failure that is neither a missing row
// nor a duplicate title.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func classify(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNoteNotFound
	case isDuplicateKey(err):
		return ErrDuplicateTitle
	default:
		return &StoreError{Op: op, Err: err}
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// not every driver translates unique violations
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
