package labstore

import (
	"context"

	"labstore/company"
	"labstore/dialect/sql"
	"labstore/predicate"
)

// CompanyDelete is the builder for deleting Company entities.
type CompanyDelete struct {
	config
	predicates []predicate.Company
	limit      *int
}

// Where appends a list predicates to the CompanyDelete builder.
func (cd *CompanyDelete) Where(ps ...predicate.Company) *CompanyDelete {
	cd.predicates = append(cd.predicates, ps...)
	return cd
}

// Limit bounds the delete to at most n matched rows.
func (cd *CompanyDelete) Limit(n int) *CompanyDelete {
	cd.limit = &n
	return cd
}

// Exec executes the deletion query and returns how many vertices were
// deleted.
func (cd *CompanyDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(cd.driver.Dialect()).Delete(company.Table)
	s := sql.Dialect(cd.driver.Dialect()).Select().From(company.Table)
	for _, p := range cd.predicates {
		p(s)
	}
	switch {
	case cd.limit != nil:
		del.Where(limitedIDs(cd.driver.Dialect(), company.Table, s.P(), *cd.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, cd.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (cd *CompanyDelete) ExecX(ctx context.Context) int {
	n, err := cd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// CompanyDeleteOne is the builder for deleting a single Company entity.
type CompanyDeleteOne struct {
	cd *CompanyDelete
}

// Where appends a list predicates to the CompanyDelete builder.
func (cdo *CompanyDeleteOne) Where(ps ...predicate.Company) *CompanyDeleteOne {
	cdo.cd.Where(ps...)
	return cdo
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (cdo *CompanyDeleteOne) Exec(ctx context.Context) error {
	n, err := cdo.cd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{company.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cdo *CompanyDeleteOne) ExecX(ctx context.Context) {
	if err := cdo.Exec(ctx); err != nil {
		panic(err)
	}
}
