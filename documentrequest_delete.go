package labstore

import (
	"context"

	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/predicate"
)

// DocumentRequestDelete is the builder for deleting DocumentRequest
// entities.
type DocumentRequestDelete struct {
	config
	predicates []predicate.DocumentRequest
	limit      *int
}

// Where appends a list predicates to the DocumentRequestDelete builder.
func (dd *DocumentRequestDelete) Where(ps ...predicate.DocumentRequest) *DocumentRequestDelete {
	dd.predicates = append(dd.predicates, ps...)
	return dd
}

// Limit bounds the delete to at most n matched rows.
func (dd *DocumentRequestDelete) Limit(n int) *DocumentRequestDelete {
	dd.limit = &n
	return dd
}

// Exec executes the deletion query and returns how many vertices were
// deleted. Requests still referenced by sample rows fail with a
// *ForeignKeyError; delete or remove the samples first.
func (dd *DocumentRequestDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(dd.driver.Dialect()).Delete(documentrequest.Table)
	s := sql.Dialect(dd.driver.Dialect()).Select().From(documentrequest.Table)
	for _, p := range dd.predicates {
		p(s)
	}
	switch {
	case dd.limit != nil:
		del.Where(limitedIDs(dd.driver.Dialect(), documentrequest.Table, s.P(), *dd.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, dd.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (dd *DocumentRequestDelete) ExecX(ctx context.Context) int {
	n, err := dd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// DocumentRequestDeleteOne is the builder for deleting a single
// DocumentRequest entity.
type DocumentRequestDeleteOne struct {
	dd *DocumentRequestDelete
}

// Where appends a list predicates to the DocumentRequestDelete builder.
func (ddo *DocumentRequestDeleteOne) Where(ps ...predicate.DocumentRequest) *DocumentRequestDeleteOne {
	ddo.dd.Where(ps...)
	return ddo
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (ddo *DocumentRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := ddo.dd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ddo *DocumentRequestDeleteOne) ExecX(ctx context.Context) {
	if err := ddo.Exec(ctx); err != nil {
		panic(err)
	}
}
