package labstore

import (
	"context"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/receiptaddress"
)

// ReceiptAddressDelete is the builder for deleting ReceiptAddress entities.
type ReceiptAddressDelete struct {
	config
	predicates []predicate.ReceiptAddress
	limit      *int
}

// Where appends a list predicates to the ReceiptAddressDelete builder.
func (rad *ReceiptAddressDelete) Where(ps ...predicate.ReceiptAddress) *ReceiptAddressDelete {
	rad.predicates = append(rad.predicates, ps...)
	return rad
}

// Limit bounds the delete to at most n matched rows.
func (rad *ReceiptAddressDelete) Limit(n int) *ReceiptAddressDelete {
	rad.limit = &n
	return rad
}

// Exec executes the deletion query and returns how many vertices were
// deleted.
func (rad *ReceiptAddressDelete) Exec(ctx context.Context) (int, error) {
	del := sql.Dialect(rad.driver.Dialect()).Delete(receiptaddress.Table)
	s := sql.Dialect(rad.driver.Dialect()).Select().From(receiptaddress.Table)
	for _, p := range rad.predicates {
		p(s)
	}
	switch {
	case rad.limit != nil:
		del.Where(limitedIDs(rad.driver.Dialect(), receiptaddress.Table, s.P(), *rad.limit))
	case s.P() != nil:
		del.Where(s.P())
	}
	query, args := del.Query()
	return execAffected(ctx, rad.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (rad *ReceiptAddressDelete) ExecX(ctx context.Context) int {
	n, err := rad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

// ReceiptAddressDeleteOne is the builder for deleting a single ReceiptAddress
// entity.
type ReceiptAddressDeleteOne struct {
	rd *ReceiptAddressDelete
}

// Where appends a list predicates to the ReceiptAddressDelete builder.
func (rado *ReceiptAddressDeleteOne) Where(ps ...predicate.ReceiptAddress) *ReceiptAddressDeleteOne {
	rado.rd.Where(ps...)
	return rado
}

// Exec executes the deletion query. Returns a *NotFoundError when no row
// was deleted.
func (rado *ReceiptAddressDeleteOne) Exec(ctx context.Context) error {
	n, err := rado.rd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{receiptaddress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rado *ReceiptAddressDeleteOne) ExecX(ctx context.Context) {
	if err := rado.Exec(ctx); err != nil {
		panic(err)
	}
}
