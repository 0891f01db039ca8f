package labstore

import (
	"context"
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/receiptaddress"
)

// ReceiptAddressUpdate is the builder for updating ReceiptAddress entities.
type ReceiptAddressUpdate struct {
	config
	predicates []predicate.ReceiptAddress
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ReceiptAddressUpdate builder.
func (rau *ReceiptAddressUpdate) Where(ps ...predicate.ReceiptAddress) *ReceiptAddressUpdate {
	rau.predicates = append(rau.predicates, ps...)
	return rau
}

// Limit bounds the update to at most n matched rows.
func (rau *ReceiptAddressUpdate) Limit(n int) *ReceiptAddressUpdate {
	rau.limit = &n
	return rau
}

func (rau *ReceiptAddressUpdate) setField(column string, v any) {
	rau.mutations = append(rau.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (rau *ReceiptAddressUpdate) clearField(column string) {
	rau.mutations = append(rau.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetAddress sets the "address" field.
func (rau *ReceiptAddressUpdate) SetAddress(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldAddress, s)
	return rau
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (rau *ReceiptAddressUpdate) SetNillableAddress(s *string) *ReceiptAddressUpdate {
	if s != nil {
		rau.SetAddress(*s)
	}
	return rau
}

// SetProvince sets the "province" field.
func (rau *ReceiptAddressUpdate) SetProvince(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldProvince, s)
	return rau
}

// SetDistrict sets the "district" field.
func (rau *ReceiptAddressUpdate) SetDistrict(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldDistrict, s)
	return rau
}

// SetSubDistrict sets the "sub_district" field.
func (rau *ReceiptAddressUpdate) SetSubDistrict(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldSubDistrict, s)
	return rau
}

// SetPostalCode sets the "postal_code" field.
func (rau *ReceiptAddressUpdate) SetPostalCode(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldPostalCode, s)
	return rau
}

// SetTelephone sets the "telephone" field.
func (rau *ReceiptAddressUpdate) SetTelephone(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldTelephone, s)
	return rau
}

// ClearTelephone clears the value of the "telephone" field.
func (rau *ReceiptAddressUpdate) ClearTelephone() *ReceiptAddressUpdate {
	rau.clearField(receiptaddress.FieldTelephone)
	return rau
}

// SetFaxNumber sets the "fax_number" field.
func (rau *ReceiptAddressUpdate) SetFaxNumber(s string) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldFaxNumber, s)
	return rau
}

// ClearFaxNumber clears the value of the "fax_number" field.
func (rau *ReceiptAddressUpdate) ClearFaxNumber() *ReceiptAddressUpdate {
	rau.clearField(receiptaddress.FieldFaxNumber)
	return rau
}

// SetUpdatedAt sets the "updated_at" field.
func (rau *ReceiptAddressUpdate) SetUpdatedAt(t time.Time) *ReceiptAddressUpdate {
	rau.setField(receiptaddress.FieldUpdatedAt, t)
	return rau
}

// Save executes the query and returns the number of rows affected.
func (rau *ReceiptAddressUpdate) Save(ctx context.Context) (int, error) {
	if len(rau.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(rau.driver.Dialect()).Update(receiptaddress.Table)
	for _, m := range rau.mutations {
		m(upd)
	}
	s := sql.Dialect(rau.driver.Dialect()).Select().From(receiptaddress.Table)
	for _, p := range rau.predicates {
		p(s)
	}
	switch {
	case rau.limit != nil:
		upd.Where(limitedIDs(rau.driver.Dialect(), receiptaddress.Table, s.P(), *rau.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, rau.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (rau *ReceiptAddressUpdate) SaveX(ctx context.Context) int {
	affected, err := rau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rau *ReceiptAddressUpdate) Exec(ctx context.Context) error {
	_, err := rau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rau *ReceiptAddressUpdate) ExecX(ctx context.Context) {
	if err := rau.Exec(ctx); err != nil {
		panic(err)
	}
}

// ReceiptAddressUpdateOne is the builder for updating a single ReceiptAddress
// entity.
type ReceiptAddressUpdateOne struct {
	config
	id        int
	mutations []func(*sql.UpdateBuilder)
}

func (rauo *ReceiptAddressUpdateOne) setField(column string, v any) {
	rauo.mutations = append(rauo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (rauo *ReceiptAddressUpdateOne) clearField(column string) {
	rauo.mutations = append(rauo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetAddress sets the "address" field.
func (rauo *ReceiptAddressUpdateOne) SetAddress(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldAddress, s)
	return rauo
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (rauo *ReceiptAddressUpdateOne) SetNillableAddress(s *string) *ReceiptAddressUpdateOne {
	if s != nil {
		rauo.SetAddress(*s)
	}
	return rauo
}

// SetProvince sets the "province" field.
func (rauo *ReceiptAddressUpdateOne) SetProvince(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldProvince, s)
	return rauo
}

// SetDistrict sets the "district" field.
func (rauo *ReceiptAddressUpdateOne) SetDistrict(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldDistrict, s)
	return rauo
}

// SetSubDistrict sets the "sub_district" field.
func (rauo *ReceiptAddressUpdateOne) SetSubDistrict(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldSubDistrict, s)
	return rauo
}

// SetPostalCode sets the "postal_code" field.
func (rauo *ReceiptAddressUpdateOne) SetPostalCode(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldPostalCode, s)
	return rauo
}

// SetTelephone sets the "telephone" field.
func (rauo *ReceiptAddressUpdateOne) SetTelephone(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldTelephone, s)
	return rauo
}

// ClearTelephone clears the value of the "telephone" field.
func (rauo *ReceiptAddressUpdateOne) ClearTelephone() *ReceiptAddressUpdateOne {
	rauo.clearField(receiptaddress.FieldTelephone)
	return rauo
}

// SetFaxNumber sets the "fax_number" field.
func (rauo *ReceiptAddressUpdateOne) SetFaxNumber(s string) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldFaxNumber, s)
	return rauo
}

// ClearFaxNumber clears the value of the "fax_number" field.
func (rauo *ReceiptAddressUpdateOne) ClearFaxNumber() *ReceiptAddressUpdateOne {
	rauo.clearField(receiptaddress.FieldFaxNumber)
	return rauo
}

// SetUpdatedAt sets the "updated_at" field.
func (rauo *ReceiptAddressUpdateOne) SetUpdatedAt(t time.Time) *ReceiptAddressUpdateOne {
	rauo.setField(receiptaddress.FieldUpdatedAt, t)
	return rauo
}

// Save executes the update and returns the updated ReceiptAddress entity.
// Returns a *NotFoundError when no row carries the builder id.
func (rauo *ReceiptAddressUpdateOne) Save(ctx context.Context) (*ReceiptAddress, error) {
	if len(rauo.mutations) > 0 {
		upd := sql.Dialect(rauo.driver.Dialect()).Update(receiptaddress.Table)
		for _, m := range rauo.mutations {
			m(upd)
		}
		upd.Where(sql.EQ(receiptaddress.FieldID, rauo.id))
		query, args := upd.Query()
		if _, err := execAffected(ctx, rauo.driver, query, args); err != nil {
			return nil, err
		}
	}
	return NewReceiptAddressClient(rauo.config).Get(ctx, rauo.id)
}

// SaveX is like Save, but panics if an error occurs.
func (rauo *ReceiptAddressUpdateOne) SaveX(ctx context.Context) *ReceiptAddress {
	node, err := rauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (rauo *ReceiptAddressUpdateOne) Exec(ctx context.Context) error {
	_, err := rauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rauo *ReceiptAddressUpdateOne) ExecX(ctx context.Context) {
	if err := rauo.Exec(ctx); err != nil {
		panic(err)
	}
}
