// Package company holds the schema constants and predicate fields of the
// Company entity.
package company

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyNameEn holds the string denoting the company_name_en field in the database.
	FieldCompanyNameEn = "company_name_en"
	// FieldCompanyNameTh holds the string denoting the company_name_th field in the database.
	FieldCompanyNameTh = "company_name_th"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldSubDistrict holds the string denoting the sub_district field in the database.
	FieldSubDistrict = "sub_district"
	// FieldDistrict holds the string denoting the district field in the database.
	FieldDistrict = "district"
	// FieldProvince holds the string denoting the province field in the database.
	FieldProvince = "province"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldTaxID holds the string denoting the tax_id field in the database.
	FieldTaxID = "tax_id"
	// FieldTelephone holds the string denoting the telephone field in the database.
	FieldTelephone = "telephone"
	// FieldFaxNumber holds the string denoting the fax_number field in the database.
	FieldFaxNumber = "fax_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the company in the database.
	Table = "companies"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldCompanyNameEn,
	FieldCompanyNameTh,
	FieldAddress,
	FieldSubDistrict,
	FieldDistrict,
	FieldProvince,
	FieldPostalCode,
	FieldTaxID,
	FieldTelephone,
	FieldFaxNumber,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Typed predicate fields for building filters, e.g.
// company.Province.EQ("Bangkok").
var (
	// ID filters on the id column.
	ID = sql.IntField[predicate.Company](FieldID)
	// CompanyNameEn filters on the company_name_en column.
	CompanyNameEn = sql.StringField[predicate.Company](FieldCompanyNameEn)
	// CompanyNameTh filters on the company_name_th column.
	CompanyNameTh = sql.StringField[predicate.Company](FieldCompanyNameTh)
	// Address filters on the address column.
	Address = sql.StringField[predicate.Company](FieldAddress)
	// SubDistrict filters on the sub_district column.
	SubDistrict = sql.StringField[predicate.Company](FieldSubDistrict)
	// District filters on the district column.
	District = sql.StringField[predicate.Company](FieldDistrict)
	// Province filters on the province column.
	Province = sql.StringField[predicate.Company](FieldProvince)
	// PostalCode filters on the postal_code column.
	PostalCode = sql.StringField[predicate.Company](FieldPostalCode)
	// TaxID filters on the tax_id column.
	TaxID = sql.StringField[predicate.Company](FieldTaxID)
	// Telephone filters on the telephone column.
	Telephone = sql.StringField[predicate.Company](FieldTelephone)
	// FaxNumber filters on the fax_number column.
	FaxNumber = sql.StringField[predicate.Company](FieldFaxNumber)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.Company, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.Company, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicate(p))
}

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByCompanyNameEn orders the results by the company_name_en field.
func ByCompanyNameEn(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCompanyNameEn, opts...) }
}

// ByCompanyNameTh orders the results by the company_name_th field.
func ByCompanyNameTh(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCompanyNameTh, opts...) }
}

// ByProvince orders the results by the province field.
func ByProvince(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldProvince, opts...) }
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldPostalCode, opts...) }
}

// ByTaxID orders the results by the tax_id field.
func ByTaxID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldTaxID, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}
