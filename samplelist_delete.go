package labstore

import (
	"context"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/samplelist"
)

// SampleListDelete is the builder for deleting SampleList entities.
type SampleListDelete struct {
	config
	predicates []predicate.SampleList
	limit      *int
}

// Where appends a list predicates to the SampleListDelete builder.
func (sld *SampleListDelete) Where(ps ...predicate.SampleList) *SampleListDelete {
	sld.predicates = append(sld.predicates, ps...)
	return sld
}

// Limit bounds the delete to at most n matched rows.
func (sld *SampleListDelete) Limit(n int) *SampleListDelete {
	sld.limit = &n
	return sld
}

// Exec executes the deletion query and returns how many vertices were
// deleted.
func (sld *SampleListDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(sld.driver.Dialect()).Delete(samplelist.Table)
	s := sql.Dialect(sld.driver.Dialect()).Select().From(samplelist.Table)
	for _, p := range sld.predicates {
		p(s)
	}
	switch {
	case sld.limit != nil:
		del.Where(limitedIDs(sld.driver.Dialect(), samplelist.Table, s.P(), *sld.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, sld.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (sld *SampleListDelete) ExecX(ctx context.Context) int {
	n, err := sld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// SampleListDeleteOne is the builder for deleting a single SampleList
// entity.
type SampleListDeleteOne struct {
	sd *SampleListDelete
}

// Where appends a list predicates to the SampleListDelete builder.
func (sdo *SampleListDeleteOne) Where(ps ...predicate.SampleList) *SampleListDeleteOne {
	sdo.sd.Where(ps...)
	return sdo
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (sdo *SampleListDeleteOne) Exec(ctx context.Context) error {
	n, err := sdo.sd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{samplelist.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sdo *SampleListDeleteOne) ExecX(ctx context.Context) {
	if err := sdo.Exec(ctx); err != nil {
		panic(err)
	}
}
