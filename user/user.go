// Package user holds the schema constants and predicate fields of the User
// entity.
package user

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkerProfiles holds the string denoting the worker_profiles edge name.
	EdgeWorkerProfiles = "worker_profiles"
	// Table holds the table name of the user in the database.
	Table = "users"
	// WorkerProfilesTable is the table that holds the worker_profiles relation.
	WorkerProfilesTable = "worker_profiles"
	// WorkerProfilesColumn is the foreign-key column of the worker_profiles
	// relation, on the worker_profiles table.
	WorkerProfilesColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldFirstName,
	FieldLastName,
	FieldRole,
	FieldIsActive,
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
	ID = sql.IntField[predicate.User](FieldID)
	// Username filters on the username column.
	Username = sql.StringField[predicate.User](FieldUsername)
	// Email filters on the email column.
	Email = sql.StringField[predicate.User](FieldEmail)
	// Password filters on the password column.
	Password = sql.StringField[predicate.User](FieldPassword)
	// FirstName filters on the first_name column.
	FirstName = sql.StringField[predicate.User](FieldFirstName)
	// LastName filters on the last_name column.
	LastName = sql.StringField[predicate.User](FieldLastName)
	// Role filters on the role column.
	Role = sql.StringField[predicate.User](FieldRole)
	// IsActive filters on the is_active column.
	IsActive = sql.BoolField[predicate.User](FieldIsActive)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.User, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.User, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicate(p))
}

// workerProfilesSubQuery returns a subquery over the worker_profiles table,
// correlated with the outer users selector.
func workerProfilesSubQuery(s *sql.Selector) *sql.Selector {
	sub := sql.Dialect(s.Dialect()).Select("1").From(WorkerProfilesTable)
	sub.Where(sql.ColumnsEQ(sub.C(WorkerProfilesColumn), s.C(FieldID)))
	return sub
}

// HasWorkerProfiles applies a predicate matching users with at least one
// worker profile.
func HasWorkerProfiles() predicate.User {
	return func(s *sql.Selector) {
		s.Where(sql.Exists(workerProfilesSubQuery(s)))
	}
}

// HasWorkerProfilesWith applies a predicate matching users with at least one
// worker profile satisfying all the given predicates.
func HasWorkerProfilesWith(preds ...predicate.WorkerProfile) predicate.User {
	return func(s *sql.Selector) {
		sub := workerProfilesSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.Exists(sub))
	}
}

// HasAllWorkerProfilesWith applies a predicate matching users whose worker
// profiles all satisfy the given predicates. Users without profiles match.
func HasAllWorkerProfilesWith(preds ...predicate.WorkerProfile) predicate.User {
	return func(s *sql.Selector) {
		sub := workerProfilesSubQuery(s)
		violating := sql.NotPredicate(sql.AndPredicates(preds...))
		violating(sub)
		s.Where(sql.NotExists(sub))
	}
}

// HasNoWorkerProfilesWith applies a predicate matching users with no worker
// profile satisfying all the given predicates.
func HasNoWorkerProfilesWith(preds ...predicate.WorkerProfile) predicate.User {
	return func(s *sql.Selector) {
		sub := workerProfilesSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.NotExists(sub))
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUsername, opts...) }
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldEmail, opts...) }
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldFirstName, opts...) }
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldLastName, opts...) }
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldRole, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}

// ByWorkerProfilesCount orders the results by worker profile count.
func ByWorkerProfilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sub := sql.Dialect(s.Dialect()).Select("COUNT(*)").From(WorkerProfilesTable)
		sub.Where(sql.ColumnsEQ(sub.C(WorkerProfilesColumn), s.C(FieldID)))
		s.OrderExprSelector(sub, opts...)
	}
}
