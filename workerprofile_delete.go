package labstore

import (
	"context"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/workerprofile"
)

// WorkerProfileDelete is the builder for deleting WorkerProfile entities.
type WorkerProfileDelete struct {
	config
	predicates []predicate.WorkerProfile
	limit      *int
}

// Where appends a list predicates to the WorkerProfileDelete builder.
func (wpd *WorkerProfileDelete) Where(ps ...predicate.WorkerProfile) *WorkerProfileDelete {
	wpd.predicates = append(wpd.predicates, ps...)
	return wpd
}

// Limit bounds the delete to at most n matched rows.
func (wpd *WorkerProfileDelete) Limit(n int) *WorkerProfileDelete {
	wpd.limit = &n
	return wpd
}

// Exec executes the deletion query and returns how many vertices were
// deleted.
func (wpd *WorkerProfileDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(wpd.driver.Dialect()).Delete(workerprofile.Table)
	s := sql.Dialect(wpd.driver.Dialect()).Select().From(workerprofile.Table)
	for _, p := range wpd.predicates {
		p(s)
	}
	switch {
	case wpd.limit != nil:
		del.Where(limitedIDs(wpd.driver.Dialect(), workerprofile.Table, s.P(), *wpd.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, wpd.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (wpd *WorkerProfileDelete) ExecX(ctx context.Context) int {
	n, err := wpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// WorkerProfileDeleteOne is the builder for deleting a single WorkerProfile
// entity.
type WorkerProfileDeleteOne struct {
	wd *WorkerProfileDelete
}

// Where appends a list predicates to the WorkerProfileDelete builder.
func (wpdo *WorkerProfileDeleteOne) Where(ps ...predicate.WorkerProfile) *WorkerProfileDeleteOne {
	wpdo.wd.Where(ps...)
	return wpdo
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (wpdo *WorkerProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := wpdo.wd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workerprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wpdo *WorkerProfileDeleteOne) ExecX(ctx context.Context) {
	if err := wpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
