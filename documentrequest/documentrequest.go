// Package documentrequest holds the schema constants and predicate fields
// of the DocumentRequest entity.
//
// The sample_lists edge is keyed on the request_no business key rather
// than the surrogate id, matching the sample_list foreign key.
package documentrequest

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the documentrequest type in the database.
	Label = "document_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequestNo holds the string denoting the request_no field in the database.
	FieldRequestNo = "request_no"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldRequestDate holds the string denoting the request_date field in the database.
	FieldRequestDate = "request_date"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPaidStatus holds the string denoting the paid_status field in the database.
	FieldPaidStatus = "paid_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSampleLists holds the string denoting the sample_lists edge name.
	EdgeSampleLists = "sample_lists"
	// Table holds the table name of the documentrequest in the database.
	Table = "document_request"
	// SampleListsTable is the table that holds the sample_lists relation.
	SampleListsTable = "sample_list"
	// SampleListsColumn is the foreign-key column of the sample_lists
	// relation, on the sample_list table. It references request_no, not id.
	SampleListsColumn = "request_no"
)

// Columns holds all SQL columns for documentrequest fields.
var Columns = []string{
	FieldID,
	FieldRequestNo,
	FieldUserID,
	FieldCompanyID,
	FieldRequestDate,
	FieldDocumentType,
	FieldDescription,
	FieldStatus,
	FieldPaidStatus,
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
	ID = sql.IntField[predicate.DocumentRequest](FieldID)
	// RequestNo filters on the request_no column.
	RequestNo = sql.StringField[predicate.DocumentRequest](FieldRequestNo)
	// UserID filters on the user_id column.
	UserID = sql.IntField[predicate.DocumentRequest](FieldUserID)
	// CompanyID filters on the company_id column.
	CompanyID = sql.IntField[predicate.DocumentRequest](FieldCompanyID)
	// RequestDate filters on the request_date column.
	RequestDate = sql.TimeField[predicate.DocumentRequest, time.Time](FieldRequestDate)
	// DocumentType filters on the document_type column.
	DocumentType = sql.StringField[predicate.DocumentRequest](FieldDocumentType)
	// Description filters on the description column.
	Description = sql.StringField[predicate.DocumentRequest](FieldDescription)
	// Status filters on the status column.
	Status = sql.StringField[predicate.DocumentRequest](FieldStatus)
	// PaidStatus filters on the paid_status column.
	PaidStatus = sql.BoolField[predicate.DocumentRequest](FieldPaidStatus)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.DocumentRequest, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.DocumentRequest, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentRequest) predicate.DocumentRequest {
	return predicate.DocumentRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentRequest) predicate.DocumentRequest {
	return predicate.DocumentRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentRequest) predicate.DocumentRequest {
	return predicate.DocumentRequest(sql.NotPredicate(p))
}

// sampleListsSubQuery returns a subquery over the sample_list table,
// correlated with the outer document_request selector on request_no.
func sampleListsSubQuery(s *sql.Selector) *sql.Selector {
	sub := sql.Dialect(s.Dialect()).Select("1").From(SampleListsTable)
	sub.Where(sql.ColumnsEQ(sub.C(SampleListsColumn), s.C(FieldRequestNo)))
	return sub
}

// HasSampleLists applies a predicate matching requests with at least one
// sample row.
func HasSampleLists() predicate.DocumentRequest {
	return func(s *sql.Selector) {
		s.Where(sql.Exists(sampleListsSubQuery(s)))
	}
}

// HasSampleListsWith applies a predicate matching requests with at least one
// sample row satisfying all the given predicates.
func HasSampleListsWith(preds ...predicate.SampleList) predicate.DocumentRequest {
	return func(s *sql.Selector) {
		sub := sampleListsSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.Exists(sub))
	}
}

// HasAllSampleListsWith applies a predicate matching requests whose sample
// rows all satisfy the given predicates. Requests without samples match.
func HasAllSampleListsWith(preds ...predicate.SampleList) predicate.DocumentRequest {
	return func(s *sql.Selector) {
		sub := sampleListsSubQuery(s)
		violating := sql.NotPredicate(sql.AndPredicates(preds...))
		violating(sub)
		s.Where(sql.NotExists(sub))
	}
}

// HasNoSampleListsWith applies a predicate matching requests with no sample
// row satisfying all the given predicates.
func HasNoSampleListsWith(preds ...predicate.SampleList) predicate.DocumentRequest {
	return func(s *sql.Selector) {
		sub := sampleListsSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.NotExists(sub))
	}
}

// OrderOption defines the ordering options for the DocumentRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByRequestNo orders the results by the request_no field.
func ByRequestNo(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldRequestNo, opts...) }
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUserID, opts...) }
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCompanyID, opts...) }
}

// ByRequestDate orders the results by the request_date field.
func ByRequestDate(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldRequestDate, opts...) }
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldDocumentType, opts...) }
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldStatus, opts...) }
}

// ByPaidStatus orders the results by the paid_status field.
func ByPaidStatus(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldPaidStatus, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}

// BySampleListsCount orders the results by sample row count.
func BySampleListsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sub := sql.Dialect(s.Dialect()).Select("COUNT(*)").From(SampleListsTable)
		sub.Where(sql.ColumnsEQ(sub.C(SampleListsColumn), s.C(FieldRequestNo)))
		s.OrderExprSelector(sub, opts...)
	}
}
