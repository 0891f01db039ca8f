// Package samplelist holds the schema constants and predicate fields of the
// SampleList entity.
package samplelist

import (
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
)

const (
	// Label holds the string label denoting the samplelist type in the database.
	Label = "sample_list"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequestNo holds the string denoting the request_no field in the database.
	FieldRequestNo = "request_no"
	// FieldSentSampleDate holds the string denoting the sent_sample_date field in the database.
	FieldSentSampleDate = "sent_sample_date"
	// FieldAnimalType holds the string denoting the animal_type field in the database.
	FieldAnimalType = "animal_type"
	// FieldSampleSpecimen holds the string denoting the sample_specimen field in the database.
	FieldSampleSpecimen = "sample_specimen"
	// FieldPanel holds the string denoting the panel field in the database.
	FieldPanel = "panel"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldSampleQty holds the string denoting the sample_qty field in the database.
	FieldSampleQty = "sample_qty"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRequest holds the string denoting the request edge name.
	EdgeRequest = "request"
	// Table holds the table name of the samplelist in the database.
	Table = "sample_list"
	// RequestTable is the table that holds the request relation.
	RequestTable = "document_request"
	// RequestColumn is the foreign-key column of the request relation, on
	// the sample_list table.
	RequestColumn = "request_no"
	// RequestRefColumn is the referenced column on the document_request
	// table. The relation is keyed on the request_no business key.
	RequestRefColumn = "request_no"
)

// Columns holds all SQL columns for samplelist fields.
var Columns = []string{
	FieldID,
	FieldRequestNo,
	FieldSentSampleDate,
	FieldAnimalType,
	FieldSampleSpecimen,
	FieldPanel,
	FieldMethod,
	FieldSampleQty,
	FieldIsDeleted,
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
	ID = sql.IntField[predicate.SampleList](FieldID)
	// RequestNo filters on the request_no column.
	RequestNo = sql.StringField[predicate.SampleList](FieldRequestNo)
	// SentSampleDate filters on the sent_sample_date column.
	SentSampleDate = sql.TimeField[predicate.SampleList, time.Time](FieldSentSampleDate)
	// AnimalType filters on the animal_type column.
	AnimalType = sql.StringField[predicate.SampleList](FieldAnimalType)
	// SampleSpecimen filters on the sample_specimen column.
	SampleSpecimen = sql.StringField[predicate.SampleList](FieldSampleSpecimen)
	// Panel filters on the panel column.
	Panel = sql.StringField[predicate.SampleList](FieldPanel)
	// Method filters on the method column.
	Method = sql.StringField[predicate.SampleList](FieldMethod)
	// SampleQty filters on the sample_qty column.
	SampleQty = sql.IntField[predicate.SampleList](FieldSampleQty)
	// IsDeleted filters on the is_deleted column. Soft-deleted rows are not
	// filtered implicitly; callers opt in with IsDeleted.EQ(false).
	IsDeleted = sql.BoolField[predicate.SampleList](FieldIsDeleted)
	// CreatedAt filters on the created_at column.
	CreatedAt = sql.TimeField[predicate.SampleList, time.Time](FieldCreatedAt)
	// UpdatedAt filters on the updated_at column.
	UpdatedAt = sql.TimeField[predicate.SampleList, time.Time](FieldUpdatedAt)
)

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SampleList) predicate.SampleList {
	return predicate.SampleList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SampleList) predicate.SampleList {
	return predicate.SampleList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SampleList) predicate.SampleList {
	return predicate.SampleList(sql.NotPredicate(p))
}

// requestSubQuery returns a subquery over the document_request table,
// correlated with the outer sample_list selector on request_no.
func requestSubQuery(s *sql.Selector) *sql.Selector {
	sub := sql.Dialect(s.Dialect()).Select("1").From(RequestTable)
	sub.Where(sql.ColumnsEQ(sub.C(RequestRefColumn), s.C(RequestColumn)))
	return sub
}

// HasRequest applies a predicate matching samples with an owning document
// request. The edge is required, so this is a referential-integrity check.
func HasRequest() predicate.SampleList {
	return func(s *sql.Selector) {
		s.Where(sql.Exists(requestSubQuery(s)))
	}
}

// HasRequestWith applies a predicate matching samples whose owning document
// request satisfies all the given predicates.
func HasRequestWith(preds ...predicate.DocumentRequest) predicate.SampleList {
	return func(s *sql.Selector) {
		sub := requestSubQuery(s)
		for _, p := range preds {
			p(sub)
		}
		s.Where(sql.Exists(sub))
	}
}

// OrderOption defines the ordering options for the SampleList queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldID, opts...) }
}

// ByRequestNo orders the results by the request_no field.
func ByRequestNo(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldRequestNo, opts...) }
}

// BySentSampleDate orders the results by the sent_sample_date field.
func BySentSampleDate(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldSentSampleDate, opts...) }
}

// ByAnimalType orders the results by the animal_type field.
func ByAnimalType(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldAnimalType, opts...) }
}

// ByPanel orders the results by the panel field.
func ByPanel(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldPanel, opts...) }
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldMethod, opts...) }
}

// BySampleQty orders the results by the sample_qty field.
func BySampleQty(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldSampleQty, opts...) }
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldIsDeleted, opts...) }
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldCreatedAt, opts...) }
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) { s.OrderField(FieldUpdatedAt, opts...) }
}
