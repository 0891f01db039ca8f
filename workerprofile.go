package labstore

import (
	"fmt"
	"strings"
	"time"

	"labstore/workerprofile"
)

// WorkerProfile is the model entity for the worker_profiles table.
type WorkerProfile struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// IDCardNumber holds the value of the "id_card_number" field.
	IDCardNumber string `json:"id_card_number,omitempty"`
	// MobilePhoneNumber holds the value of the "mobile_phone_number" field.
	MobilePhoneNumber string `json:"mobile_phone_number,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber *string `json:"phone_number,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// IDCardFilePath holds the value of the "id_card_file_path" field.
	IDCardFilePath *string `json:"id_card_file_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkerProfileQuery when
	// eager-loading is set.
	Edges WorkerProfileEdges `json:"edges"`
}

// WorkerProfileEdges holds the relations/edges for other nodes in the graph.
type WorkerProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge was not loaded
// in eager-loading, or loaded but was not found.
func (e WorkerProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: "user"}
	}
	return nil, &NotLoadedError{edge: workerprofile.EdgeUser}
}

// scanValues returns the scan destinations aligned with
// workerprofile.Columns.
func (wp *WorkerProfile) scanValues() []any {
	return []any{
		&wp.ID,
		&wp.UserID,
		&wp.Title,
		&wp.FirstName,
		&wp.LastName,
		&wp.IDCardNumber,
		&wp.MobilePhoneNumber,
		&wp.PhoneNumber,
		&wp.Email,
		&wp.IDCardFilePath,
		&wp.CreatedAt,
		&wp.UpdatedAt,
	}
}

// QueryUser queries the "user" edge of the WorkerProfile entity.
func (wp *WorkerProfile) QueryUser() *UserQuery {
	return NewWorkerProfileClient(wp.config).QueryUser(wp)
}

// Update returns a builder for updating this WorkerProfile. The builder is
// bound to the transaction or client the entity was loaded with.
func (wp *WorkerProfile) Update() *WorkerProfileUpdateOne {
	return NewWorkerProfileClient(wp.config).UpdateOne(wp)
}

// String implements the fmt.Stringer.
func (wp *WorkerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("WorkerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wp.ID))
	builder.WriteString(fmt.Sprintf("user_id=%v, ", wp.UserID))
	builder.WriteString("first_name=")
	builder.WriteString(wp.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(wp.LastName)
	builder.WriteString(", ")
	builder.WriteString("id_card_number=")
	builder.WriteString(wp.IDCardNumber)
	builder.WriteByte(')')
	return builder.String()
}

// WorkerProfiles is a parsable slice of WorkerProfile.
type WorkerProfiles []*WorkerProfile
