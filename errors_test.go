package labstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{label: "user"}
	assert.Equal(t, "labstore: user not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("get user: %w", err)))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))

	assert.NoError(t, MaskNotFound(err))
	other := errors.New("boom")
	assert.Equal(t, other, MaskNotFound(other))
}

func TestNotSingularError(t *testing.T) {
	err := &NotSingularError{label: "company"}
	assert.Equal(t, "labstore: company not singular", err.Error())
	assert.True(t, errors.Is(err, ErrNotSingular))
	assert.True(t, IsNotSingular(err))
	assert.False(t, IsNotSingular(errors.New("other")))
}

func TestNotLoadedError(t *testing.T) {
	err := &NotLoadedError{edge: "sample_lists"}
	assert.Equal(t, "labstore: sample_lists edge was not loaded", err.Error())
	assert.True(t, IsNotLoaded(err))
	assert.False(t, IsNotLoaded(nil))
}

func TestConstraintError(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.username")
	err := &ConstraintError{msg: cause.Error(), wrap: cause}
	assert.Contains(t, err.Error(), "constraint failed")
	assert.True(t, IsConstraintError(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsConstraintError(errors.New("other")))
}

func TestForeignKeyError(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := &ForeignKeyError{msg: cause.Error(), wrap: cause}
	assert.Contains(t, err.Error(), "foreign key constraint failed")
	assert.True(t, IsForeignKeyError(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsConstraintError(err))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Name: "sample_qty", err: errors.New(`labstore: division of "SampleList.sample_qty" by zero`)}
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "sample_qty", err.Name)
	assert.Contains(t, err.Error(), "by zero")
	assert.False(t, IsValidationError(nil))
}

func TestRollbackError(t *testing.T) {
	original := errors.New("insert failed")
	err := &RollbackError{Err: original, RollbackErr: errors.New("connection gone")}
	assert.Contains(t, err.Error(), "rolling back transaction")
	assert.Contains(t, err.Error(), "insert failed")
	assert.True(t, errors.Is(err, original))
}

type rollbackOK struct{ called bool }

func (r *rollbackOK) Rollback() error { r.called = true; return nil }

type rollbackFail struct{}

func (rollbackFail) Rollback() error { return errors.New("rollback failed") }

func TestRollbackHelper(t *testing.T) {
	original := errors.New("boom")

	rb := &rollbackOK{}
	err := rollback(rb, original)
	assert.True(t, rb.called)
	assert.Equal(t, original, err)

	err = rollback(rollbackFail{}, original)
	var re *RollbackError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, original, re.Err)
}

func TestClassifyWriteError(t *testing.T) {
	assert.NoError(t, classifyWriteError(nil))

	err := classifyWriteError(errors.New("UNIQUE constraint failed: users.email"))
	assert.True(t, IsConstraintError(err))

	err = classifyWriteError(errors.New("FOREIGN KEY constraint failed"))
	assert.True(t, IsForeignKeyError(err))

	plain := errors.New("driver: bad connection")
	assert.Equal(t, plain, classifyWriteError(plain))
}
