package labstore

import (
	"fmt"
	"strings"
	"time"

	"labstore/documentrequest"
)

// DocumentRequest is the model entity for the document_request table.
type DocumentRequest struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// RequestNo holds the value of the "request_no" field. It is the
	// business key the sample_lists edge hangs off.
	RequestNo string `json:"request_no,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// RequestDate holds the value of the "request_date" field.
	RequestDate *time.Time `json:"request_date,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field. The value is opaque to
	// this package; callers define the vocabulary.
	Status *string `json:"status,omitempty"`
	// PaidStatus holds the value of the "paid_status" field.
	PaidStatus *bool `json:"paid_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentRequestQuery when
	// eager-loading is set.
	Edges DocumentRequestEdges `json:"edges"`
}

// DocumentRequestEdges holds the relations/edges for other nodes in the
// graph.
type DocumentRequestEdges struct {
	// SampleLists holds the value of the sample_lists edge.
	SampleLists []*SampleList `json:"sample_lists,omitempty"`
	// SampleListCount holds the row count of the sample_lists edge,
	// populated by WithSampleListCount.
	SampleListCount *int `json:"sample_list_count,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SampleListsOrErr returns the SampleLists value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentRequestEdges) SampleListsOrErr() ([]*SampleList, error) {
	if e.loadedTypes[0] {
		return e.SampleLists, nil
	}
	return nil, &NotLoadedError{edge: documentrequest.EdgeSampleLists}
}

// SampleListCountOrErr returns the sample row count or an error if it was
// not requested with WithSampleListCount.
func (e DocumentRequestEdges) SampleListCountOrErr() (int, error) {
	if e.SampleListCount != nil {
		return *e.SampleListCount, nil
	}
	return 0, &NotLoadedError{edge: documentrequest.EdgeSampleLists}
}

// scanValues returns the scan destinations aligned with
// documentrequest.Columns.
func (dr *DocumentRequest) scanValues() []any {
	return []any{
		&dr.ID,
		&dr.RequestNo,
		&dr.UserID,
		&dr.CompanyID,
		&dr.RequestDate,
		&dr.DocumentType,
		&dr.Description,
		&dr.Status,
		&dr.PaidStatus,
		&dr.CreatedAt,
		&dr.UpdatedAt,
	}
}

// QuerySampleLists queries the "sample_lists" edge of the DocumentRequest
// entity.
func (dr *DocumentRequest) QuerySampleLists() *SampleListQuery {
	return NewDocumentRequestClient(dr.config).QuerySampleLists(dr)
}

// Update returns a builder for updating this DocumentRequest. The builder
// is bound to the transaction or client the entity was loaded with.
func (dr *DocumentRequest) Update() *DocumentRequestUpdateOne {
	return NewDocumentRequestClient(dr.config).UpdateOne(dr)
}

// String implements the fmt.Stringer.
func (dr *DocumentRequest) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dr.ID))
	builder.WriteString("request_no=")
	builder.WriteString(dr.RequestNo)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(dr.DocumentType)
	if dr.Status != nil {
		builder.WriteString(", ")
		builder.WriteString("status=")
		builder.WriteString(*dr.Status)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DocumentRequests is a parsable slice of DocumentRequest.
type DocumentRequests []*DocumentRequest
