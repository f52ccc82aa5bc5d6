// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kind is the machine-stable classification of a failure. Handlers map
// kinds to HTTP status codes; messages are safe to show to clients.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindPersistence Kind = "persistence"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf classifies any error. Storage errors that escaped explicit
// wrapping are treated as persistence failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// FromDB converts a storage-layer error into the taxonomy. Unique
// violations become conflicts, missing rows become not-found, anything
// else is a generic persistence failure carrying the cause for logs only.
func FromDB(message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return &Error{Kind: KindConflict, Message: message, Err: err}
	}
	return Persistence(message, err)
}

// unique_violation per the Postgres error-code table. The lib/pq driver
// surfaces it as *pq.Error; the SQLite driver is covered by GORM's
// ErrDuplicatedKey translation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
