package labstore

import (
	"context"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/user"
)

// UserDelete is the builder for deleting User entities.
type UserDelete struct {
	config
	predicates []predicate.User
	limit      *int
}

// Where appends a list predicates to the UserDelete builder.
func (ud *UserDelete) Where(ps ...predicate.User) *UserDelete {
	ud.predicates = append(ud.predicates, ps...)
	return ud
}

// Limit bounds the delete to at most n matched rows.
func (ud *UserDelete) Limit(n int) *UserDelete {
	ud.limit = &n
	return ud
}

// Exec executes the deletion query and returns how many vertices were
// deleted. Users still referenced by worker profiles fail with a
// *ForeignKeyError.
func (ud *UserDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(ud.driver.Dialect()).Delete(user.Table)
	s := sql.Dialect(ud.driver.Dialect()).Select().From(user.Table)
	for _, p := range ud.predicates {
		p(s)
	}
	switch {
	case ud.limit != nil:
		del.Where(limitedIDs(ud.driver.Dialect(), user.Table, s.P(), *ud.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, ud.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (ud *UserDelete) ExecX(ctx context.Context) int {
	n, err := ud.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// UserDeleteOne is the builder for deleting a single User entity.
type UserDeleteOne struct {
	ud *UserDelete
}

// Where appends a list predicates to the UserDelete builder.
func (udo *UserDeleteOne) Where(ps ...predicate.User) *UserDeleteOne {
	udo.ud.Where(ps...)
	return udo
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (udo *UserDeleteOne) Exec(ctx context.Context) error {
	n, err := udo.ud.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{user.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (udo *UserDeleteOne) ExecX(ctx context.Context) {
	if err := udo.Exec(ctx); err != nil {
		panic(err)
	}
}
