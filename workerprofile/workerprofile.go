// Package workerprofile holds the schema constants and predicate fields of
// the WorkerProfile entity.
package workerprofile

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the workerprofile type in the database.
	Label = "worker_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldIDCardNumber holds the string denoting the id_card_number field in the database.
	FieldIDCardNumber = "id_card_number"
	// FieldMobilePhoneNumber holds the string denoting the mobile_phone_number field in the database.
	FieldMobilePhoneNumber = "mobile_phone_number"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldIDCardFilePath holds the string denoting the id_card_file_path field in the database.
	FieldIDCardFilePath = "id_card_file_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name.
	EdgeUser = "user"
	// Table holds the table name of the workerprofile in the database.
	Table = "worker_profiles"
	// UserTable is the table that holds the user relation.
	UserTable = "users"
	// UserColumn is the foreign-key column of the user relation, on the
	// worker_profiles table.
	UserColumn = "user_id"
	// UserRefColumn is the referenced column on the users table.
	UserRefColumn = "id"
)

// Columns holds all SQL columns for workerprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTitle,
	FieldFirstName,
	FieldLastName,
	FieldIDCardNumber,
	FieldMobilePhoneNumber,
	FieldPhoneNumber,
	FieldEmail,
	FieldIDCardFilePath,
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
	ID = sql.IntField[predicate.WorkerProfile](FieldID)
	// UserID filters on the user_id column.
	UserID = sql.IntField[predicate.WorkerProfile](FieldUserID)
	// Title filters on the title column.
	Title = sql.StringField[predicate.WorkerProfile](FieldTitle)
	// FirstName filters on the first_name column.
	FirstName = sql.StringField[predicate.WorkerProfile](FieldFirstName)
	// LastName filters on the last_name column.
	LastName = sql.StringField[predicate.WorkerProfile](FieldLastName)
	// IDCardNumber filters on the id_card_number column.
	IDCardNumber = sql.StringField[predicate.WorkerProfile](FieldIDCardNumber)
	// MobilePhoneNumber filters on the mobile_phone_number column.
	MobilePhoneNumber = sql.StringField[predicate.WorkerProfile](FieldMobilePhoneNumber)
	// PhoneNumber filters on the phone_number column.
	PhoneNumber = sql.StringField[predicate.WorkerProfile](FieldPhoneNumber)
	// Email filters on the email column.
	Email = sql.StringField[predicate.WorkerProfile](FieldEmail)
	// IDCardFilePath filters on the id_card_file_path column.
	IDCardFilePath = sql.StringField[predicate.WorkerProfile](FieldIDCardFilePath)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.WorkerProfile, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.WorkerProfile, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkerProfile) predicate.WorkerProfile {
	return predicate.WorkerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkerProfile) predicate.WorkerProfile {
	return predicate.WorkerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkerProfile) predicate.WorkerProfile {
	return predicate.WorkerProfile(sql.NotPredicate(p))
}

// userSubQuery returns a subquery over the users table, correlated with the
// outer worker_profiles selector.
func userSubQuery(s *sql.Selector) *sql.Selector {
	sub := sql.Dialect(s.Dialect()).Select("1").From(UserTable)
	sub.Where(sql.ColumnsEQ(sub.C(UserRefColumn), s.C(UserColumn)))
	return sub
}

// HasUser applies a predicate matching worker profiles with an owning user.
// The edge is required, so this is a referential-integrity check.
func HasUser() predicate.WorkerProfile {
	return func(s *sql.Selector) {
		s.Where(sql.Exists(userSubQuery(s)))
	}
}

// HasUserWith applies a predicate matching worker profiles whose owning user
// satisfies all the given predicates.
func HasUserWith(preds ...predicate.User) predicate.WorkerProfile {
	return func(s *sql.Selector) {
		sub := userSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.Exists(sub))
	}
}

// OrderOption defines the ordering options for the WorkerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUserID, opts...) }
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldFirstName, opts...) }
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldLastName, opts...) }
}

// ByIDCardNumber orders the results by the id_card_number field.
func ByIDCardNumber(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldIDCardNumber, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}
