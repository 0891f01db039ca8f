package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/dialect/sql"
	"labstore/receiptaddress"
)

// ReceiptAddressCreate is the builder for creating a ReceiptAddress entity.
type ReceiptAddressCreate struct {
	config
	address     *string
	province    *string
	district    *string
	subDistrict *string
	postalCode  *string
	telephone   *string
	faxNumber   *string
	createdAt   *time.Time
	updatedAt   *time.Time
	conflict    *conflictSpec
}

// SetAddress sets the "address" field.
func (rac *ReceiptAddressCreate) SetAddress(s string) *ReceiptAddressCreate {
	rac.address = &s
	return rac
}

// SetProvince sets the "province" field.
func (rac *ReceiptAddressCreate) SetProvince(s string) *ReceiptAddressCreate {
	rac.province = &s
	return rac
}

// SetDistrict sets the "district" field.
func (rac *ReceiptAddressCreate) SetDistrict(s string) *ReceiptAddressCreate {
	rac.district = &s
	return rac
}

// SetSubDistrict sets the "sub_district" field.
func (rac *ReceiptAddressCreate) SetSubDistrict(s string) *ReceiptAddressCreate {
	rac.subDistrict = &s
	return rac
}

// SetPostalCode sets the "postal_code" field.
func (rac *ReceiptAddressCreate) SetPostalCode(s string) *ReceiptAddressCreate {
	rac.postalCode = &s
	return rac
}

// SetTelephone sets the "telephone" field.
func (rac *ReceiptAddressCreate) SetTelephone(s string) *ReceiptAddressCreate {
	rac.telephone = &s
	return rac
}

// SetNillableTelephone sets the "telephone" field if the given value is not nil.
func (rac *ReceiptAddressCreate) SetNillableTelephone(s *string) *ReceiptAddressCreate {
	if s != nil {
		rac.SetTelephone(*s)
	}
	return rac
}

// SetFaxNumber sets the "fax_number" field.
func (rac *ReceiptAddressCreate) SetFaxNumber(s string) *ReceiptAddressCreate {
	rac.faxNumber = &s
	return rac
}

// SetNillableFaxNumber sets the "fax_number" field if the given value is not nil.
func (rac *ReceiptAddressCreate) SetNillableFaxNumber(s *string) *ReceiptAddressCreate {
	if s != nil {
		rac.SetFaxNumber(*s)
	}
	return rac
}

// SetCreatedAt sets the "created_at" field.
func (rac *ReceiptAddressCreate) SetCreatedAt(t time.Time) *ReceiptAddressCreate {
	rac.createdAt = &t
	return rac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rac *ReceiptAddressCreate) SetNillableCreatedAt(t *time.Time) *ReceiptAddressCreate {
	if t != nil {
		rac.SetCreatedAt(*t)
	}
	return rac
}

// SetUpdatedAt sets the "updated_at" field.
func (rac *ReceiptAddressCreate) SetUpdatedAt(t time.Time) *ReceiptAddressCreate {
	rac.updatedAt = &t
	return rac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rac *ReceiptAddressCreate) SetNillableUpdatedAt(t *time.Time) *ReceiptAddressCreate {
	if t != nil {
		rac.SetUpdatedAt(*t)
	}
	return rac
}

// check runs all checks and user-defined validators on the builder.
func (rac *ReceiptAddressCreate) check() error {
	if rac.address == nil {
		return &ValidationError{Name: receiptaddress.FieldAddress, err: errors.New(`labstore: missing required field "ReceiptAddress.address"`)}
	}
	if rac.province == nil {
		return &ValidationError{Name: receiptaddress.FieldProvince, err: errors.New(`labstore: missing required field "ReceiptAddress.province"`)}
	}
	if rac.district == nil {
		return &ValidationError{Name: receiptaddress.FieldDistrict, err: errors.New(`labstore: missing required field "ReceiptAddress.district"`)}
	}
	if rac.subDistrict == nil {
		return &ValidationError{Name: receiptaddress.FieldSubDistrict, err: errors.New(`labstore: missing required field "ReceiptAddress.sub_district"`)}
	}
	if rac.postalCode == nil {
		return &ValidationError{Name: receiptaddress.FieldPostalCode, err: errors.New(`labstore: missing required field "ReceiptAddress.postal_code"`)}
	}
	if rac.conflict != nil {
		return rac.conflict.check()
	}
	return nil
}

func (rac *ReceiptAddressCreate) values() []any {
	return []any{
		rac.address,
		rac.province,
		rac.district,
		rac.subDistrict,
		rac.postalCode,
		rac.telephone,
		rac.faxNumber,
		rac.createdAt,
		rac.updatedAt,
	}
}

func (rac *ReceiptAddressCreate) assign() *ReceiptAddress {
	return &ReceiptAddress{
		config:      rac.config,
		Address:     *rac.address,
		Province:    *rac.province,
		District:    *rac.district,
		SubDistrict: *rac.subDistrict,
		PostalCode:  *rac.postalCode,
		Telephone:   rac.telephone,
		FaxNumber:   rac.faxNumber,
		CreatedAt:   rac.createdAt,
		UpdatedAt:   rac.updatedAt,
	}
}

func (rac *ReceiptAddressCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(rac.driver.Dialect()).
		Insert(receiptaddress.Table).
		Columns(receiptaddress.Columns[1:]...).
		Values(rac.values()...)
	if rac.conflict != nil {
		rac.conflict.apply(ins, receiptaddress.Columns[1:])
	}
	return ins
}

// Save creates the ReceiptAddress in the database.
func (rac *ReceiptAddressCreate) Save(ctx context.Context) (*ReceiptAddress, error) {
	if err := rac.check(); err != nil {
		return nil, err
	}
	node := rac.assign()
	id, err := insertID(ctx, rac.driver, rac.insert(), receiptaddress.Label)
	if err != nil {
		return nil, err
	}
	node.ID = id
	return node, nil
}

// SaveX calls Save and panics if Save returns an error.
func (rac *ReceiptAddressCreate) SaveX(ctx context.Context) *ReceiptAddress {
	node, err := rac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (rac *ReceiptAddressCreate) Exec(ctx context.Context) error {
	if err := rac.check(); err != nil {
		return err
	}
	return insertExec(ctx, rac.driver, rac.insert())
}

// ExecX is like Exec, but panics if an error occurs.
func (rac *ReceiptAddressCreate) ExecX(ctx context.Context) {
	if err := rac.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
func (rac *ReceiptAddressCreate) OnConflictColumns(columns ...string) *ReceiptAddressUpsertOne {
	rac.conflict = &conflictSpec{columns: columns}
	return &ReceiptAddressUpsertOne{create: rac}
}

// ReceiptAddressUpsertOne is the builder for the upsert action of a single
// ReceiptAddress entity.
type ReceiptAddressUpsertOne struct {
	create *ReceiptAddressCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *ReceiptAddressUpsertOne) Ignore() *ReceiptAddressUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *ReceiptAddressUpsertOne) UpdateNewValues() *ReceiptAddressUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetAddress sets the "address" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetAddress(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldAddress, s)
	return u
}

// SetProvince sets the "province" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetProvince(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldProvince, s)
	return u
}

// SetDistrict sets the "district" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetDistrict(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldDistrict, s)
	return u
}

// SetSubDistrict sets the "sub_district" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetSubDistrict(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldSubDistrict, s)
	return u
}

// SetPostalCode sets the "postal_code" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetPostalCode(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldPostalCode, s)
	return u
}

// SetTelephone sets the "telephone" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetTelephone(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldTelephone, s)
	return u
}

// SetFaxNumber sets the "fax_number" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetFaxNumber(s string) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldFaxNumber, s)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *ReceiptAddressUpsertOne) SetUpdatedAt(t time.Time) *ReceiptAddressUpsertOne {
	u.create.conflict.set(receiptaddress.FieldUpdatedAt, t)
	return u
}

// Save creates the ReceiptAddress, or applies the conflict action on the
// existing row. With Ignore on a conflicting row, no row comes back and
// Save returns a *NotFoundError.
func (u *ReceiptAddressUpsertOne) Save(ctx context.Context) (*ReceiptAddress, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *ReceiptAddressUpsertOne) SaveX(ctx context.Context) *ReceiptAddress {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *ReceiptAddressUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptAddressUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *ReceiptAddressUpsertOne) ID(ctx context.Context) (int, error) {
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), receiptaddress.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *ReceiptAddressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReceiptAddressCreateBulk is the builder for creating many ReceiptAddress
// entities in bulk.
type ReceiptAddressCreateBulk struct {
	config
	builders []*ReceiptAddressCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (racb *ReceiptAddressCreateBulk) OnConflictDoNothing() *ReceiptAddressCreateBulk {
	racb.conflict = &conflictSpec{doNothing: true}
	return racb
}

func (racb *ReceiptAddressCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(racb.driver.Dialect()).
		Insert(receiptaddress.Table).
		Columns(receiptaddress.Columns[1:]...)
	for i, rac := range racb.builders {
		if err := rac.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		ins.Values(rac.values()...)
	}
	if racb.conflict != nil {
		racb.conflict.apply(ins, receiptaddress.Columns[1:])
	}
	return ins, nil
}

// Save creates the ReceiptAddress entities in one statement and returns the
// rows actually inserted. On MySQL the rows are reconstructed from the
// builders, which requires the batch to be conflict-free; combine
// OnConflictDoNothing with Exec there instead.
func (racb *ReceiptAddressCreateBulk) Save(ctx context.Context) ([]*ReceiptAddress, error) {
	if len(racb.builders) == 0 {
		return nil, nil
	}
	ins, err := racb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(racb.driver.Dialect()) {
		ins.Returning(receiptaddress.Columns...)
		rows, err := queryRows(ctx, racb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*ReceiptAddress
		for rows.Next() {
			node := &ReceiptAddress{config: racb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if racb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, racb.driver, ins, receiptaddress.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*ReceiptAddress, len(racb.builders))
	for i, rac := range racb.builders {
		nodes[i] = rac.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (racb *ReceiptAddressCreateBulk) SaveX(ctx context.Context) []*ReceiptAddress {
	nodes, err := racb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the ReceiptAddress entities and returns the inserted row
// count. Rows skipped by OnConflictDoNothing are not counted.
func (racb *ReceiptAddressCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(racb.builders) == 0 {
		return 0, nil
	}
	ins, err := racb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, racb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (racb *ReceiptAddressCreateBulk) ExecX(ctx context.Context) int {
	n, err := racb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
