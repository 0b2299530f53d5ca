package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrForeignKeyViolation is returned when a referenced row is missing.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// constraintError keeps the violated constraint name next to the sentinel it wraps.
type constraintError struct {
	kind       error
	constraint string
	message    string
}

func (e *constraintError) Error() string {
	return fmt.Sprintf("%v: %s (constraint: %s)", e.kind, e.message, e.constraint)
}

func (e *constraintError) Unwrap() error {
	return e.kind
}

// Constraint returns the name of the violated constraint carried by err, or "".
func Constraint(err error) string {
	var ce *constraintError
	if errors.As(err, &ce) {
		return ce.constraint
	}
	return ""
}

// wrapWriteError classifies a driver error from an INSERT/UPDATE/DELETE.
func wrapWriteError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return &constraintError{kind: ErrDuplicateKey, constraint: pqErr.Constraint, message: pqErr.Message}
		case "foreign_key_violation":
			return &constraintError{kind: ErrForeignKeyViolation, constraint: pqErr.Constraint, message: pqErr.Message}
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
}

// wrapReadError maps sql.ErrNoRows to ErrNotFound.
func wrapReadError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
}

// expectAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func expectAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for %s: %v", ErrDatabaseError, op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
