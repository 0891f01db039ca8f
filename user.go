package labstore

import (
	"fmt"
	"strings"
	"time"

	"labstore/user"
)

// User is the model entity for the users table.
type User struct {
	config `json:"-"`
	// ID of the entity.
	ID int `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Password holds the value of the "password" field.
	Password string `json:"-"`
	// FirstName holds the value of the "first_name" field.
	FirstName *string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName *string `json:"last_name,omitempty"`
	// Role holds the value of the "role" field.
	Role *string `json:"role,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive *bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is
	// set.
	Edges UserEdges `json:"edges"`
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// WorkerProfiles holds the value of the worker_profiles edge.
	WorkerProfiles []*WorkerProfile `json:"worker_profiles,omitempty"`
	// WorkerProfileCount holds the row count of the worker_profiles edge,
	// populated by WithWorkerProfileCount.
	WorkerProfileCount *int `json:"worker_profile_count,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkerProfilesOrErr returns the WorkerProfiles value or an error if the
// edge was not loaded in eager-loading.
func (e UserEdges) WorkerProfilesOrErr() ([]*WorkerProfile, error) {
	if e.loadedTypes[0] {
		return e.WorkerProfiles, nil
	}
	return nil, &NotLoadedError{edge: user.EdgeWorkerProfiles}
}

// WorkerProfileCountOrErr returns the worker profile count or an error if it
// was not requested with WithWorkerProfileCount.
func (e UserEdges) WorkerProfileCountOrErr() (int, error) {
	if e.WorkerProfileCount != nil {
		return *e.WorkerProfileCount, nil
	}
	return 0, &NotLoadedError{edge: user.EdgeWorkerProfiles}
}

// scanValues returns the scan destinations aligned with user.Columns.
func (u *User) scanValues() []any {
	return []any{
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}

// QueryWorkerProfiles queries the "worker_profiles" edge of the User entity.
func (u *User) QueryWorkerProfiles() *WorkerProfileQuery {
	return NewUserClient(u.config).QueryWorkerProfiles(u)
}

// Update returns a builder for updating this User. The builder is bound to
// the transaction or client the entity was loaded with.
func (u *User) Update() *UserUpdateOne {
	return NewUserClient(u.config).UpdateOne(u)
}

// String implements the fmt.Stringer.
func (u *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", u.ID))
	builder.WriteString("username=")
	builder.WriteString(u.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(u.Email)
	if u.Role != nil {
		builder.WriteString(", ")
		builder.WriteString("role=")
		builder.WriteString(*u.Role)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
