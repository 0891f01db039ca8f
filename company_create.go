package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/company"
	"labstore/dialect/sql"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	companyNameEn *string
	companyNameTh *string
	address       *string
	subDistrict   *string
	district      *string
	province      *string
	postalCode    *string
	taxID         *string
	telephone     *string
	faxNumber     *string
	createdAt     *time.Time
	updatedAt     *time.Time
	conflict      *conflictSpec
}

// SetCompanyNameEn sets the "company_name_en" field.
func (cc *CompanyCreate) SetCompanyNameEn(s string) *CompanyCreate {
	cc.companyNameEn = &s
	return cc
}

// SetCompanyNameTh sets the "company_name_th" field.
func (cc *CompanyCreate) SetCompanyNameTh(s string) *CompanyCreate {
	cc.companyNameTh = &s
	return cc
}

// SetAddress sets the "address" field.
func (cc *CompanyCreate) SetAddress(s string) *CompanyCreate {
	cc.address = &s
	return cc
}

// SetSubDistrict sets the "sub_district" field.
func (cc *CompanyCreate) SetSubDistrict(s string) *CompanyCreate {
	cc.subDistrict = &s
	return cc
}

// SetDistrict sets the "district" field.
func (cc *CompanyCreate) SetDistrict(s string) *CompanyCreate {
	cc.district = &s
	return cc
}

// SetProvince sets the "province" field.
func (cc *CompanyCreate) SetProvince(s string) *CompanyCreate {
	cc.province = &s
	return cc
}

// SetPostalCode sets the "postal_code" field.
func (cc *CompanyCreate) SetPostalCode(s string) *CompanyCreate {
	cc.postalCode = &s
	return cc
}

// SetTaxID sets the "tax_id" field.
func (cc *CompanyCreate) SetTaxID(s string) *CompanyCreate {
	cc.taxID = &s
	return cc
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (cc *CompanyCreate) SetNillableTaxID(s *string) *CompanyCreate {
	if s != nil {
		cc.SetTaxID(*s)
	}
	return cc
}

// SetTelephone sets the "telephone" field.
func (cc *CompanyCreate) SetTelephone(s string) *CompanyCreate {
	cc.telephone = &s
	return cc
}

// SetNillableTelephone sets the "telephone" field if the given value is not nil.
func (cc *CompanyCreate) SetNillableTelephone(s *string) *CompanyCreate {
	if s != nil {
		cc.SetTelephone(*s)
	}
	return cc
}

// SetFaxNumber sets the "fax_number" field.
func (cc *CompanyCreate) SetFaxNumber(s string) *CompanyCreate {
	cc.faxNumber = &s
	return cc
}

// SetNillableFaxNumber sets the "fax_number" field if the given value is not nil.
func (cc *CompanyCreate) SetNillableFaxNumber(s *string) *CompanyCreate {
	if s != nil {
		cc.SetFaxNumber(*s)
	}
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *CompanyCreate) SetCreatedAt(t time.Time) *CompanyCreate {
	cc.createdAt = &t
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *CompanyCreate) SetNillableCreatedAt(t *time.Time) *CompanyCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetUpdatedAt sets the "updated_at" field.
func (cc *CompanyCreate) SetUpdatedAt(t time.Time) *CompanyCreate {
	cc.updatedAt = &t
	return cc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cc *CompanyCreate) SetNillableUpdatedAt(t *time.Time) *CompanyCreate {
	if t != nil {
		cc.SetUpdatedAt(*t)
	}
	return cc
}

// check runs all checks and user-defined validators on the builder.
func (cc *CompanyCreate) check() error {
	if cc.companyNameEn == nil {
		return &ValidationError{Name: company.FieldCompanyNameEn, err: errors.New(`labstore: missing required field "Company.company_name_en"`)}
	}
	if cc.companyNameTh == nil {
		return &ValidationError{Name: company.FieldCompanyNameTh, err: errors.New(`labstore: missing required field "Company.company_name_th"`)}
	}
	if cc.address == nil {
		return &ValidationError{Name: company.FieldAddress, err: errors.New(`labstore: missing required field "Company.address"`)}
	}
	if cc.subDistrict == nil {
		return &ValidationError{Name: company.FieldSubDistrict, err: errors.New(`labstore: missing required field "Company.sub_district"`)}
	}
	if cc.district == nil {
		return &ValidationError{Name: company.FieldDistrict, err: errors.New(`labstore: missing required field "Company.district"`)}
	}
	if cc.province == nil {
		return &ValidationError{Name: company.FieldProvince, err: errors.New(`labstore: missing required field "Company.province"`)}
	}
	if cc.postalCode == nil {
		return &ValidationError{Name: company.FieldPostalCode, err: errors.New(`labstore: missing required field "Company.postal_code"`)}
	}
	if cc.conflict != nil {
		return cc.conflict.check()
	}
	return nil
}

// values returns the insert values aligned with company.Columns[1:].
// Pointers pass through; the parameter converter turns nil into NULL.
func (cc *CompanyCreate) values() []any {
	return []any{
		cc.companyNameEn,
		cc.companyNameTh,
		cc.address,
		cc.subDistrict,
		cc.district,
		cc.province,
		cc.postalCode,
		cc.taxID,
		cc.telephone,
		cc.faxNumber,
		cc.createdAt,
		cc.updatedAt,
	}
}

// assign builds the entity from the builder values.
func (cc *CompanyCreate) assign() *Company {
	return &Company{
		config:        cc.config,
		CompanyNameEn: *cc.companyNameEn,
		CompanyNameTh: *cc.companyNameTh,
		Address:       *cc.address,
		SubDistrict:   *cc.subDistrict,
		District:      *cc.district,
		Province:      *cc.province,
		PostalCode:    *cc.postalCode,
		TaxID:         cc.taxID,
		Telephone:     cc.telephone,
		FaxNumber:     cc.faxNumber,
		CreatedAt:     cc.createdAt,
		UpdatedAt:     cc.updatedAt,
	}
}

func (cc *CompanyCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(cc.driver.Dialect()).
		Insert(company.Table).
		Columns(company.Columns[1:]...).
		Values(cc.values()...)
	if cc.conflict != nil {
		cc.conflict.apply(ins, company.Columns[1:])
	}
	return ins
}

// Save creates the Company in the database.
func (cc *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	node := cc.assign()
	id, err := insertID(ctx, cc.driver, cc.insert(), company.Label)
	if err != nil {
		return nil, err
	}
	node.ID = id
	return node, nil
}

// SaveX calls Save and panics if Save returns an error.
func (cc *CompanyCreate) SaveX(ctx context.Context) *Company {
	node, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (cc *CompanyCreate) Exec(ctx context.Context) error {
	if err := cc.check(); err != nil {
		return err
	}
	return insertExec(ctx, cc.driver, cc.insert())
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *CompanyCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
//
//	client.Company.Create().
//		SetCompanyNameEn(v).
//		...
//		OnConflictColumns(company.FieldID).
//		UpdateNewValues().
//		Exec(ctx)
func (cc *CompanyCreate) OnConflictColumns(columns ...string) *CompanyUpsertOne {
	cc.conflict = &conflictSpec{columns: columns}
	return &CompanyUpsertOne{create: cc}
}

// CompanyUpsertOne is the builder for the upsert action of a single
// Company entity.
type CompanyUpsertOne struct {
	create *CompanyCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *CompanyUpsertOne) Ignore() *CompanyUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *CompanyUpsertOne) UpdateNewValues() *CompanyUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetCompanyNameEn sets the "company_name_en" field on the conflicting row.
func (u *CompanyUpsertOne) SetCompanyNameEn(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldCompanyNameEn, s)
	return u
}

// SetCompanyNameTh sets the "company_name_th" field on the conflicting row.
func (u *CompanyUpsertOne) SetCompanyNameTh(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldCompanyNameTh, s)
	return u
}

// SetAddress sets the "address" field on the conflicting row.
func (u *CompanyUpsertOne) SetAddress(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldAddress, s)
	return u
}

// SetSubDistrict sets the "sub_district" field on the conflicting row.
func (u *CompanyUpsertOne) SetSubDistrict(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldSubDistrict, s)
	return u
}

// SetDistrict sets the "district" field on the conflicting row.
func (u *CompanyUpsertOne) SetDistrict(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldDistrict, s)
	return u
}

// SetProvince sets the "province" field on the conflicting row.
func (u *CompanyUpsertOne) SetProvince(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldProvince, s)
	return u
}

// SetPostalCode sets the "postal_code" field on the conflicting row.
func (u *CompanyUpsertOne) SetPostalCode(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldPostalCode, s)
	return u
}

// SetTaxID sets the "tax_id" field on the conflicting row.
func (u *CompanyUpsertOne) SetTaxID(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldTaxID, s)
	return u
}

// SetTelephone sets the "telephone" field on the conflicting row.
func (u *CompanyUpsertOne) SetTelephone(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldTelephone, s)
	return u
}

// SetFaxNumber sets the "fax_number" field on the conflicting row.
func (u *CompanyUpsertOne) SetFaxNumber(s string) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldFaxNumber, s)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *CompanyUpsertOne) SetUpdatedAt(t time.Time) *CompanyUpsertOne {
	u.create.conflict.set(company.FieldUpdatedAt, t)
	return u
}

// Save creates the Company, or applies the conflict action on the existing
// row. With Ignore on a conflicting row, no row comes back and Save returns
// a *NotFoundError.
func (u *CompanyUpsertOne) Save(ctx context.Context) (*Company, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *CompanyUpsertOne) SaveX(ctx context.Context) *Company {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *CompanyUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *CompanyUpsertOne) ID(ctx context.Context) (int, error) {
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), company.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *CompanyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompanyCreateBulk is the builder for creating many Company entities in
// bulk.
type CompanyCreateBulk struct {
	config
	builders []*CompanyCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (ccb *CompanyCreateBulk) OnConflictDoNothing() *CompanyCreateBulk {
	ccb.conflict = &conflictSpec{doNothing: true}
	return ccb
}

func (ccb *CompanyCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(ccb.driver.Dialect()).
		Insert(company.Table).
		Columns(company.Columns[1:]...)
	for i, cc := range ccb.builders {
		if err := cc.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		ins.Values(cc.values()...)
	}
	if ccb.conflict != nil {
		ccb.conflict.apply(ins, company.Columns[1:])
	}
	return ins, nil
}

// Save creates the Company entities in one statement and returns the rows
// actually inserted. On MySQL the rows are reconstructed from the builders,
// which requires the batch to be conflict-free; combine OnConflictDoNothing
// with Exec there instead.
func (ccb *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if len(ccb.builders) == 0 {
		return nil, nil
	}
	ins, err := ccb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(ccb.driver.Dialect()) {
		ins.Returning(company.Columns...)
		rows, err := queryRows(ctx, ccb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*Company
		for rows.Next() {
			node := &Company{config: ccb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if ccb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, ccb.driver, ins, company.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*Company, len(ccb.builders))
	for i, cc := range ccb.builders {
		nodes[i] = cc.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	nodes, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the Company entities and returns the inserted row count.
// Rows skipped by OnConflictDoNothing are not counted.
func (ccb *CompanyCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(ccb.builders) == 0 {
		return 0, nil
	}
	ins, err := ccb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, ccb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *CompanyCreateBulk) ExecX(ctx context.Context) int {
	n, err := ccb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
