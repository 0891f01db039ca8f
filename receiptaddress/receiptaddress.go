// Package receiptaddress holds the schema constants and predicate fields of
// the ReceiptAddress entity.
package receiptaddress

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the receiptaddress type in the database.
	Label = "receipt_address"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldProvince holds the string denoting the province field in the database.
	FieldProvince = "province"
	// FieldDistrict holds the string denoting the district field in the database.
	FieldDistrict = "district"
	// FieldSubDistrict holds the string denoting the sub_district field in the database.
	FieldSubDistrict = "sub_district"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldTelephone holds the string denoting the telephone field in the database.
	FieldTelephone = "telephone"
	// FieldFaxNumber holds the string denoting the fax_number field in the database.
	FieldFaxNumber = "fax_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the receiptaddress in the database.
	Table = "receipt_addresses"
)

// Columns holds all SQL columns for receiptaddress fields.
var Columns = []string{
	FieldID,
	FieldAddress,
	FieldProvince,
	FieldDistrict,
	FieldSubDistrict,
	FieldPostalCode,
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

// Typed predicate fields.
var (
	// ID filters on the id column.
	ID = sql.IntField[predicate.ReceiptAddress](FieldID)
	// Address filters on the address column.
	Address = sql.StringField[predicate.ReceiptAddress](FieldAddress)
	// Province filters on the province column.
	Province = sql.StringField[predicate.ReceiptAddress](FieldProvince)
	// District filters on the district column.
	District = sql.StringField[predicate.ReceiptAddress](FieldDistrict)
	// SubDistrict filters on the sub_district column.
	SubDistrict = sql.StringField[predicate.ReceiptAddress](FieldSubDistrict)
	// PostalCode filters on the postal_code column.
	PostalCode = sql.StringField[predicate.ReceiptAddress](FieldPostalCode)
	// Telephone filters on the telephone column.
	Telephone = sql.StringField[predicate.ReceiptAddress](FieldTelephone)
	// FaxNumber filters on the fax_number column.
	FaxNumber = sql.StringField[predicate.ReceiptAddress](FieldFaxNumber)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.ReceiptAddress, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.ReceiptAddress, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptAddress) predicate.ReceiptAddress {
	return predicate.ReceiptAddress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptAddress) predicate.ReceiptAddress {
	return predicate.ReceiptAddress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptAddress) predicate.ReceiptAddress {
	return predicate.ReceiptAddress(sql.NotPredicate(p))
}

// OrderOption defines the ordering options for the ReceiptAddress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByProvince orders the results by the province field.
func ByProvince(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldProvince, opts...) }
}

// ByDistrict orders the results by the district field.
func ByDistrict(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldDistrict, opts...) }
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldPostalCode, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}
