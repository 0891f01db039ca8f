package labstore

import (
	"context"
	"time"

	"labstore/company"
	"labstore/dialect/sql"
	"labstore/predicate"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	predicates []predicate.Company
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (cu *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	cu.predicates = append(cu.predicates, ps...)
	return cu
}

// Limit bounds the update to at most n matched rows.
func (cu *CompanyUpdate) Limit(n int) *CompanyUpdate {
	cu.limit = &n
	return cu
}

func (cu *CompanyUpdate) setField(column string, v any) {
	cu.mutations = append(cu.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (cu *CompanyUpdate) clearField(column string) {
	cu.mutations = append(cu.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetCompanyNameEn sets the "company_name_en" field.
func (cu *CompanyUpdate) SetCompanyNameEn(s string) *CompanyUpdate {
	cu.setField(company.FieldCompanyNameEn, s)
	return cu
}

// SetNillableCompanyNameEn sets the "company_name_en" field if the given value is not nil.
func (cu *CompanyUpdate) SetNillableCompanyNameEn(s *string) *CompanyUpdate {
	if s != nil {
		cu.SetCompanyNameEn(*s)
	}
	return cu
}

// SetCompanyNameTh sets the "company_name_th" field.
func (cu *CompanyUpdate) SetCompanyNameTh(s string) *CompanyUpdate {
	cu.setField(company.FieldCompanyNameTh, s)
	return cu
}

// SetNillableCompanyNameTh sets the "company_name_th" field if the given value is not nil.
func (cu *CompanyUpdate) SetNillableCompanyNameTh(s *string) *CompanyUpdate {
	if s != nil {
		cu.SetCompanyNameTh(*s)
	}
	return cu
}

// SetAddress sets the "address" field.
func (cu *CompanyUpdate) SetAddress(s string) *CompanyUpdate {
	cu.setField(company.FieldAddress, s)
	return cu
}

// SetSubDistrict sets the "sub_district" field.
func (cu *CompanyUpdate) SetSubDistrict(s string) *CompanyUpdate {
	cu.setField(company.FieldSubDistrict, s)
	return cu
}

// SetDistrict sets the "district" field.
func (cu *CompanyUpdate) SetDistrict(s string) *CompanyUpdate {
	cu.setField(company.FieldDistrict, s)
	return cu
}

// SetProvince sets the "province" field.
func (cu *CompanyUpdate) SetProvince(s string) *CompanyUpdate {
	cu.setField(company.FieldProvince, s)
	return cu
}

// SetPostalCode sets the "postal_code" field.
func (cu *CompanyUpdate) SetPostalCode(s string) *CompanyUpdate {
	cu.setField(company.FieldPostalCode, s)
	return cu
}

// SetTaxID sets the "tax_id" field.
func (cu *CompanyUpdate) SetTaxID(s string) *CompanyUpdate {
	cu.setField(company.FieldTaxID, s)
	return cu
}

// ClearTaxID clears the value of the "tax_id" field.
func (cu *CompanyUpdate) ClearTaxID() *CompanyUpdate {
	cu.clearField(company.FieldTaxID)
	return cu
}

// SetTelephone sets the "telephone" field.
func (cu *CompanyUpdate) SetTelephone(s string) *CompanyUpdate {
	cu.setField(company.FieldTelephone, s)
	return cu
}

// ClearTelephone clears the value of the "telephone" field.
func (cu *CompanyUpdate) ClearTelephone() *CompanyUpdate {
	cu.clearField(company.FieldTelephone)
	return cu
}

// SetFaxNumber sets the "fax_number" field.
func (cu *CompanyUpdate) SetFaxNumber(s string) *CompanyUpdate {
	cu.setField(company.FieldFaxNumber, s)
	return cu
}

// ClearFaxNumber clears the value of the "fax_number" field.
func (cu *CompanyUpdate) ClearFaxNumber() *CompanyUpdate {
	cu.clearField(company.FieldFaxNumber)
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *CompanyUpdate) SetUpdatedAt(t time.Time) *CompanyUpdate {
	cu.setField(company.FieldUpdatedAt, t)
	return cu
}

// Save executes the query and returns the number of rows affected.
func (cu *CompanyUpdate) Save(ctx context.Context) (int, error) {
	if len(cu.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(cu.driver.Dialect()).Update(company.Table)
	for _, m := range cu.mutations {
		m(upd)
	}
	s := sql.Dialect(cu.driver.Dialect()).Select().From(company.Table)
	for _, p := range cu.predicates {
		p(s)
	}
	switch {
	case cu.limit != nil:
		upd.Where(limitedIDs(cu.driver.Dialect(), company.Table, s.P(), *cu.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, cu.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CompanyUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	id        int
	mutations []func(*sql.UpdateBuilder)
}

func (cuo *CompanyUpdateOne) setField(column string, v any) {
	cuo.mutations = append(cuo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (cuo *CompanyUpdateOne) clearField(column string) {
	cuo.mutations = append(cuo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetCompanyNameEn sets the "company_name_en" field.
func (cuo *CompanyUpdateOne) SetCompanyNameEn(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldCompanyNameEn, s)
	return cuo
}

// SetNillableCompanyNameEn sets the "company_name_en" field if the given value is not nil.
func (cuo *CompanyUpdateOne) SetNillableCompanyNameEn(s *string) *CompanyUpdateOne {
	if s != nil {
		cuo.SetCompanyNameEn(*s)
	}
	return cuo
}

// SetCompanyNameTh sets the "company_name_th" field.
func (cuo *CompanyUpdateOne) SetCompanyNameTh(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldCompanyNameTh, s)
	return cuo
}

// SetAddress sets the "address" field.
func (cuo *CompanyUpdateOne) SetAddress(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldAddress, s)
	return cuo
}

// SetSubDistrict sets the "sub_district" field.
func (cuo *CompanyUpdateOne) SetSubDistrict(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldSubDistrict, s)
	return cuo
}

// SetDistrict sets the "district" field.
func (cuo *CompanyUpdateOne) SetDistrict(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldDistrict, s)
	return cuo
}

// SetProvince sets the "province" field.
func (cuo *CompanyUpdateOne) SetProvince(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldProvince, s)
	return cuo
}

// SetPostalCode sets the "postal_code" field.
func (cuo *CompanyUpdateOne) SetPostalCode(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldPostalCode, s)
	return cuo
}

// SetTaxID sets the "tax_id" field.
func (cuo *CompanyUpdateOne) SetTaxID(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldTaxID, s)
	return cuo
}

// ClearTaxID clears the value of the "tax_id" field.
func (cuo *CompanyUpdateOne) ClearTaxID() *CompanyUpdateOne {
	cuo.clearField(company.FieldTaxID)
	return cuo
}

// SetTelephone sets the "telephone" field.
func (cuo *CompanyUpdateOne) SetTelephone(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldTelephone, s)
	return cuo
}

// ClearTelephone clears the value of the "telephone" field.
func (cuo *CompanyUpdateOne) ClearTelephone() *CompanyUpdateOne {
	cuo.clearField(company.FieldTelephone)
	return cuo
}

// SetFaxNumber sets the "fax_number" field.
func (cuo *CompanyUpdateOne) SetFaxNumber(s string) *CompanyUpdateOne {
	cuo.setField(company.FieldFaxNumber, s)
	return cuo
}

// ClearFaxNumber clears the value of the "fax_number" field.
func (cuo *CompanyUpdateOne) ClearFaxNumber() *CompanyUpdateOne {
	cuo.clearField(company.FieldFaxNumber)
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *CompanyUpdateOne) SetUpdatedAt(t time.Time) *CompanyUpdateOne {
	cuo.setField(company.FieldUpdatedAt, t)
	return cuo
}

// Save executes the update and returns the updated Company entity.
// Returns a *NotFoundError when no row carries the builder id.
func (cuo *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	if len(cuo.mutations) > 0 {
		upd := sql.Dialect(cuo.driver.Dialect()).Update(company.Table)
		for _, m := range cuo.mutations {
			m(upd)
		}
		upd.Where(sql.EQ(company.FieldID, cuo.id))
		query, args := upd.Query()
		if _, err := execAffected(ctx, cuo.driver, query, args); err != nil {
			return nil, err
		}
	}
	return NewCompanyClient(cuo.config).Get(ctx, cuo.id)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (cuo *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}
