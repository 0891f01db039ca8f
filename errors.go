package labstore

import (
	"errors"
	"fmt"

	"labstore/dialect/sql"
)

// Sentinel errors returned by the client. Use errors.Is to test for them,
// or the typed helpers below when the entity name matters.
var (
	// ErrNotFound is wrapped by NotFoundError.
	ErrNotFound = errors.New("labstore: not found")
	// ErrNotSingular is wrapped by NotSingularError.
	ErrNotSingular = errors.New("labstore: not singular")
	// ErrTxStarted is returned when starting a transaction within a transaction.
	ErrTxStarted = errors.New("labstore: cannot start a transaction within a transaction")
	// ErrTxTimedOut is returned by Commit after the transaction timeout
	// rolled the transaction back.
	ErrTxTimedOut = errors.New("labstore: transaction timed out and was rolled back")
)

// NotFoundError returns when trying to fetch a specific entity and it was not found in the database.
type NotFoundError struct {
	label string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "labstore: " + e.label + " not found"
}

// Is implements the errors.Is interface so that errors.Is(err, ErrNotFound)
// matches a NotFoundError of any entity.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound returns a boolean indicating whether the error is a not found error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e)
}

// MaskNotFound masks not found error.
func MaskNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}

// NotSingularError returns when trying to fetch a singular entity and more than one was found in the database.
type NotSingularError struct {
	label string
}

// Error implements the error interface.
func (e *NotSingularError) Error() string {
	return "labstore: " + e.label + " not singular"
}

// Is implements the errors.Is interface.
func (e *NotSingularError) Is(target error) bool {
	return target == ErrNotSingular
}

// IsNotSingular returns a boolean indicating whether the error is a not singular error.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e)
}

// NotLoadedError returns when trying to get a node that was not loaded by the query.
type NotLoadedError struct {
	edge string
}

// Error implements the error interface.
func (e *NotLoadedError) Error() string {
	return "labstore: " + e.edge + " edge was not loaded"
}

// IsNotLoaded returns a boolean indicating whether the error is a not loaded error.
func IsNotLoaded(err error) bool {
	if err == nil {
		return false
	}
	var e *NotLoadedError
	return errors.As(err, &e)
}

// ConstraintError returns when trying to create/update one or more entities and
// one or more of their constraints failed. For example, violation of edge or
// field uniqueness.
type ConstraintError struct {
	msg  string
	wrap error
}

// Error implements the error interface.
func (e ConstraintError) Error() string {
	return "labstore: constraint failed: " + e.msg
}

// Unwrap implements the errors.Wrapper interface.
func (e *ConstraintError) Unwrap() error {
	return e.wrap
}

// IsConstraintError returns a boolean indicating whether the error is a constraint failure.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConstraintError
	return errors.As(err, &e)
}

// ForeignKeyError returns when a write references a missing parent row, or a
// delete leaves dependent rows behind under a restrictive policy.
type ForeignKeyError struct {
	msg  string
	wrap error
}

// Error implements the error interface.
func (e ForeignKeyError) Error() string {
	return "labstore: foreign key constraint failed: " + e.msg
}

// Unwrap implements the errors.Wrapper interface.
func (e *ForeignKeyError) Unwrap() error {
	return e.wrap
}

// IsForeignKeyError returns a boolean indicating whether the error is a
// foreign key constraint failure.
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var e *ForeignKeyError
	return errors.As(err, &e)
}

// ValidationError returns when validating a field or edge fails.
type ValidationError struct {
	Name string // Field or edge name.
	err  error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.err.Error()
}

// Unwrap implements the errors.Wrapper interface.
func (e *ValidationError) Unwrap() error {
	return e.err
}

// IsValidationError returns a boolean indicating whether the error is a validation error.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// RollbackError wraps the original error that triggered the rollback together
// with the rollback failure, when the rollback itself fails.
type RollbackError struct {
	Err         error // Original error that triggered the rollback.
	RollbackErr error
}

// Error implements the error interface.
func (e *RollbackError) Error() string {
	return fmt.Sprintf("labstore: rolling back transaction: %v (original error: %v)", e.RollbackErr, e.Err)
}

// Unwrap implements the errors.Wrapper interface.
func (e *RollbackError) Unwrap() error {
	return e.Err
}

// rollback calls tx.Rollback and wraps the given error with the rollback error
// if occurred.
func rollback(tx interface{ Rollback() error }, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return &RollbackError{Err: err, RollbackErr: rerr}
	}
	return err
}

// classifyWriteError maps database constraint violations to the typed errors
// of this package. Other errors pass through unchanged.
func classifyWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case sql.IsForeignKeyConstraintError(err):
		return &ForeignKeyError{msg: err.Error(), wrap: err}
	case sql.IsUniqueConstraintError(err):
		return &ConstraintError{msg: err.Error(), wrap: err}
	default:
		return err
	}
}
