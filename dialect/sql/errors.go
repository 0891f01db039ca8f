package sql

import (
	"errors"
	"strings"
)

// Driver-agnostic classification of constraint violations. The probing
// covers lib/pq (Code), go-sql-driver/mysql (Number), pgx and compatible
// drivers (SQLState), and falls back to message matching for drivers that
// expose neither, such as modernc.org/sqlite.

// errorCoder is implemented by pq.Error and compatible postgres drivers.
type errorCoder interface {
	Code() string
}

// errorNumberer is implemented by mysql.MySQLError.
type errorNumberer interface {
	Number() uint16
}

// sqlStateError is implemented by pq.Error, pgx and some MySQL drivers.
type sqlStateError interface {
	SQLState() string
}

// PostgreSQL SQLSTATE codes for constraint violations (Class 23).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MySQL error numbers for constraint violations.
const (
	mysqlDuplicateEntry   = 1062
	mysqlForeignKeyParent = 1451 // Cannot delete or update a parent row.
	mysqlForeignKeyChild  = 1452 // Cannot add or update a child row.
)

// IsUniqueConstraintError reports if the error resulted from a uniqueness
// constraint violation, e.g. a duplicate value in a unique index.
func IsUniqueConstraintError(err error) bool {
	return classify(err, pgUniqueViolation, []uint16{mysqlDuplicateEntry},
		"Error 1062",                 // MySQL (string fallback)
		"violates unique constraint", // Postgres (string fallback)
		"UNIQUE constraint failed",   // SQLite
	)
}

// IsForeignKeyConstraintError reports if the error resulted from a
// foreign-key constraint violation: a write referencing a missing parent,
// or a delete of a parent with dependent rows under a restrictive policy.
func IsForeignKeyConstraintError(err error) bool {
	return classify(err, pgForeignKeyViolation, []uint16{mysqlForeignKeyParent, mysqlForeignKeyChild},
		"Error 1451",                      // MySQL (parent row)
		"Error 1452",                      // MySQL (child row)
		"violates foreign key constraint", // Postgres
		"FOREIGN KEY constraint failed",   // SQLite
	)
}

// IsConstraintError reports if the error resulted from any database
// constraint violation.
func IsConstraintError(err error) bool {
	return IsUniqueConstraintError(err) || IsForeignKeyConstraintError(err)
}

func classify(err error, sqlstate string, mysqlCodes []uint16, fallbacks ...string) bool {
	if err == nil {
		return false
	}
	if e, ok := asError[sqlStateError](err); ok && e.SQLState() == sqlstate {
		return true
	}
	if e, ok := asError[errorCoder](err); ok && e.Code() == sqlstate {
		return true
	}
	if e, ok := asError[errorNumberer](err); ok {
		for _, code := range mysqlCodes {
			if e.Number() == code {
				return true
			}
		}
	}
	msg := err.Error()
	for _, sub := range fallbacks {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return false
}

// asError attempts to extract an error implementing interface T from the
// error chain.
func asError[T any](err error) (T, bool) {
	var zero T
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return zero, false
}
