package labstore

import (
	"fmt"
	"strings"
	"time"

	"labstore/samplelist"
)

// SampleList is the model entity for the sample_list table.
type SampleList struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// RequestNo holds the value of the "request_no" field. It references
	// the request_no business key of the owning document request.
	RequestNo string `json:"request_no,omitempty"`
	// SentSampleDate holds the value of the "sent_sample_date" field.
	SentSampleDate *time.Time `json:"sent_sample_date,omitempty"`
	// AnimalType holds the value of the "animal_type" field.
	AnimalType *string `json:"animal_type,omitempty"`
	// SampleSpecimen holds the value of the "sample_specimen" field.
	SampleSpecimen *string `json:"sample_specimen,omitempty"`
	// Panel holds the value of the "panel" field.
	Panel *string `json:"panel,omitempty"`
	// Method holds the value of the "method" field.
	Method *string `json:"method,omitempty"`
	// SampleQty holds the value of the "sample_qty" field.
	SampleQty *int `json:"sample_qty,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field. Soft-deleted
	// rows stay visible to queries; callers filter explicitly.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SampleListQuery when
	// eager-loading is set.
	Edges SampleListEdges `json:"edges"`
}

// SampleListEdges holds the relations/edges for other nodes in the graph.
type SampleListEdges struct {
	// Request holds the value of the request edge.
	Request *DocumentRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge was not
// loaded in eager-loading, or loaded but was not found.
func (e SampleListEdges) RequestOrErr() (*DocumentRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: "document_request"}
	}
	return nil, &NotLoadedError{edge: samplelist.EdgeRequest}
}

// scanValues returns the scan destinations aligned with samplelist.Columns.
func (sl *SampleList) scanValues() []any {
	return []any{
		&sl.ID,
		&sl.RequestNo,
		&sl.SentSampleDate,
		&sl.AnimalType,
		&sl.SampleSpecimen,
		&sl.Panel,
		&sl.Method,
		&sl.SampleQty,
		&sl.IsDeleted,
		&sl.CreatedAt,
		&sl.UpdatedAt,
	}
}

// QueryRequest queries the "request" edge of the SampleList entity.
func (sl *SampleList) QueryRequest() *DocumentRequestQuery {
	return NewSampleListClient(sl.config).QueryRequest(sl)
}

// Update returns a builder for updating this SampleList. The builder is
// bound to the transaction or client the entity was loaded with.
func (sl *SampleList) Update() *SampleListUpdateOne {
	return NewSampleListClient(sl.config).UpdateOne(sl)
}

// String implements the fmt.Stringer.
func (sl *SampleList) String() string {
	var builder strings.Builder
	builder.WriteString("SampleList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sl.ID))
	builder.WriteString("request_no=")
	builder.WriteString(sl.RequestNo)
	if sl.Panel != nil {
		builder.WriteString(", ")
		builder.WriteString("panel=")
		builder.WriteString(*sl.Panel)
	}
	if sl.SampleQty != nil {
		builder.WriteString(", ")
		builder.WriteString(fmt.Sprintf("sample_qty=%v", *sl.SampleQty))
	}
	builder.WriteString(", ")
	builder.WriteString(fmt.Sprintf("is_deleted=%v", sl.IsDeleted))
	builder.WriteByte(')')
	return builder.String()
}

// SampleLists is a parsable slice of SampleList.
type SampleLists []*SampleList
