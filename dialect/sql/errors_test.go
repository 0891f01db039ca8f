package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sqlStateErr struct{ state string }

func (e *sqlStateErr) Error() string    { return "constraint violation" }
func (e *sqlStateErr) SQLState() string { return e.state }

type numberedErr struct{ number uint16 }

func (e *numberedErr) Error() string  { return "mysql error" }
func (e *numberedErr) Number() uint16 { return e.number }

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, IsUniqueConstraintError(nil))
	assert.False(t, IsUniqueConstraintError(errors.New("some other error")))

	// SQLSTATE probing (lib/pq, pgx and compatible drivers).
	assert.True(t, IsUniqueConstraintError(&sqlStateErr{state: "23505"}))
	assert.False(t, IsUniqueConstraintError(&sqlStateErr{state: "23503"}))

	// Wrapped errors are unwrapped before probing.
	wrapped := fmt.Errorf("save user: %w", &sqlStateErr{state: "23505"})
	assert.True(t, IsUniqueConstraintError(wrapped))

	// MySQL error numbers.
	assert.True(t, IsUniqueConstraintError(&numberedErr{number: 1062}))
	assert.False(t, IsUniqueConstraintError(&numberedErr{number: 1451}))

	// Message fallback for drivers exposing neither, such as
	// modernc.org/sqlite.
	assert.True(t, IsUniqueConstraintError(errors.New("UNIQUE constraint failed: users.username")))
	assert.True(t, IsUniqueConstraintError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)))
}

func TestIsForeignKeyConstraintError(t *testing.T) {
	assert.False(t, IsForeignKeyConstraintError(nil))

	assert.True(t, IsForeignKeyConstraintError(&sqlStateErr{state: "23503"}))
	assert.False(t, IsForeignKeyConstraintError(&sqlStateErr{state: "23505"}))

	// 1451 is the parent-row violation, 1452 the child-row one.
	assert.True(t, IsForeignKeyConstraintError(&numberedErr{number: 1451}))
	assert.True(t, IsForeignKeyConstraintError(&numberedErr{number: 1452}))

	assert.True(t, IsForeignKeyConstraintError(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsForeignKeyConstraintError(errors.New(`pq: insert or update on table "worker_profiles" violates foreign key constraint "worker_profiles_user_id_fkey"`)))
}

func TestIsConstraintError(t *testing.T) {
	assert.True(t, IsConstraintError(&sqlStateErr{state: "23505"}))
	assert.True(t, IsConstraintError(&sqlStateErr{state: "23503"}))
	assert.False(t, IsConstraintError(errors.New("connection refused")))
}
