package labstore

import (
	"context"
	"time"

	"labstore/dialect"
	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/user"
	"labstore/workerprofile"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	predicates []predicate.User
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the UserUpdate builder.
func (uu *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	uu.predicates = append(uu.predicates, ps...)
	return uu
}

// Limit bounds the update to at most n matched rows.
func (uu *UserUpdate) Limit(n int) *UserUpdate {
	uu.limit = &n
	return uu
}

func (uu *UserUpdate) setField(column string, v any) {
	uu.mutations = append(uu.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (uu *UserUpdate) clearField(column string) {
	uu.mutations = append(uu.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetUsername sets the "username" field.
func (uu *UserUpdate) SetUsername(s string) *UserUpdate {
	uu.setField(user.FieldUsername, s)
	return uu
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (uu *UserUpdate) SetNillableUsername(s *string) *UserUpdate {
	if s != nil {
		uu.SetUsername(*s)
	}
	return uu
}

// SetEmail sets the "email" field.
func (uu *UserUpdate) SetEmail(s string) *UserUpdate {
	uu.setField(user.FieldEmail, s)
	return uu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (uu *UserUpdate) SetNillableEmail(s *string) *UserUpdate {
	if s != nil {
		uu.SetEmail(*s)
	}
	return uu
}

// SetPassword sets the "password" field.
func (uu *UserUpdate) SetPassword(s string) *UserUpdate {
	uu.setField(user.FieldPassword, s)
	return uu
}

// SetFirstName sets the "first_name" field.
func (uu *UserUpdate) SetFirstName(s string) *UserUpdate {
	uu.setField(user.FieldFirstName, s)
	return uu
}

// ClearFirstName clears the value of the "first_name" field.
func (uu *UserUpdate) ClearFirstName() *UserUpdate {
	uu.clearField(user.FieldFirstName)
	return uu
}

// SetLastName sets the "last_name" field.
func (uu *UserUpdate) SetLastName(s string) *UserUpdate {
	uu.setField(user.FieldLastName, s)
	return uu
}

// ClearLastName clears the value of the "last_name" field.
func (uu *UserUpdate) ClearLastName() *UserUpdate {
	uu.clearField(user.FieldLastName)
	return uu
}

// SetRole sets the "role" field.
func (uu *UserUpdate) SetRole(s string) *UserUpdate {
	uu.setField(user.FieldRole, s)
	return uu
}

// ClearRole clears the value of the "role" field.
func (uu *UserUpdate) ClearRole() *UserUpdate {
	uu.clearField(user.FieldRole)
	return uu
}

// SetIsActive sets the "is_active" field.
func (uu *UserUpdate) SetIsActive(b bool) *UserUpdate {
	uu.setField(user.FieldIsActive, b)
	return uu
}

// ClearIsActive clears the value of the "is_active" field.
func (uu *UserUpdate) ClearIsActive() *UserUpdate {
	uu.clearField(user.FieldIsActive)
	return uu
}

// SetUpdatedAt sets the "updated_at" field.
func (uu *UserUpdate) SetUpdatedAt(t time.Time) *UserUpdate {
	uu.setField(user.FieldUpdatedAt, t)
	return uu
}

// Save executes the query and returns the number of rows affected.
func (uu *UserUpdate) Save(ctx context.Context) (int, error) {
	if len(uu.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(uu.driver.Dialect()).Update(user.Table)
	for _, m := range uu.mutations {
		m(upd)
	}
	s := sql.Dialect(uu.driver.Dialect()).Select().From(user.Table)
	for _, p := range uu.predicates {
		p(s)
	}
	switch {
	case uu.limit != nil:
		upd.Where(limitedIDs(uu.driver.Dialect(), user.Table, s.P(), *uu.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, uu.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (uu *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := uu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uu *UserUpdate) Exec(ctx context.Context) error {
	_, err := uu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uu *UserUpdate) ExecX(ctx context.Context) {
	if err := uu.Exec(ctx); err != nil {
		panic(err)
	}
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	id                      int
	mutations               []func(*sql.UpdateBuilder)
	addWorkerProfiles       []*WorkerProfileCreate
	connectWorkerProfileIDs []int
	removeWorkerProfileIDs  []int
	clearWorkerProfiles     bool
}

func (uuo *UserUpdateOne) setField(column string, v any) {
	uuo.mutations = append(uuo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (uuo *UserUpdateOne) clearField(column string) {
	uuo.mutations = append(uuo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetUsername sets the "username" field.
func (uuo *UserUpdateOne) SetUsername(s string) *UserUpdateOne {
	uuo.setField(user.FieldUsername, s)
	return uuo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (uuo *UserUpdateOne) SetNillableUsername(s *string) *UserUpdateOne {
	if s != nil {
		uuo.SetUsername(*s)
	}
	return uuo
}

// SetEmail sets the "email" field.
func (uuo *UserUpdateOne) SetEmail(s string) *UserUpdateOne {
	uuo.setField(user.FieldEmail, s)
	return uuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (uuo *UserUpdateOne) SetNillableEmail(s *string) *UserUpdateOne {
	if s != nil {
		uuo.SetEmail(*s)
	}
	return uuo
}

// SetPassword sets the "password" field.
func (uuo *UserUpdateOne) SetPassword(s string) *UserUpdateOne {
	uuo.setField(user.FieldPassword, s)
	return uuo
}

// SetFirstName sets the "first_name" field.
func (uuo *UserUpdateOne) SetFirstName(s string) *UserUpdateOne {
	uuo.setField(user.FieldFirstName, s)
	return uuo
}

// ClearFirstName clears the value of the "first_name" field.
func (uuo *UserUpdateOne) ClearFirstName() *UserUpdateOne {
	uuo.clearField(user.FieldFirstName)
	return uuo
}

// SetLastName sets the "last_name" field.
func (uuo *UserUpdateOne) SetLastName(s string) *UserUpdateOne {
	uuo.setField(user.FieldLastName, s)
	return uuo
}

// ClearLastName clears the value of the "last_name" field.
func (uuo *UserUpdateOne) ClearLastName() *UserUpdateOne {
	uuo.clearField(user.FieldLastName)
	return uuo
}

// SetRole sets the "role" field.
func (uuo *UserUpdateOne) SetRole(s string) *UserUpdateOne {
	uuo.setField(user.FieldRole, s)
	return uuo
}

// ClearRole clears the value of the "role" field.
func (uuo *UserUpdateOne) ClearRole() *UserUpdateOne {
	uuo.clearField(user.FieldRole)
	return uuo
}

// SetIsActive sets the "is_active" field.
func (uuo *UserUpdateOne) SetIsActive(b bool) *UserUpdateOne {
	uuo.setField(user.FieldIsActive, b)
	return uuo
}

// ClearIsActive clears the value of the "is_active" field.
func (uuo *UserUpdateOne) ClearIsActive() *UserUpdateOne {
	uuo.clearField(user.FieldIsActive)
	return uuo
}

// SetUpdatedAt sets the "updated_at" field.
func (uuo *UserUpdateOne) SetUpdatedAt(t time.Time) *UserUpdateOne {
	uuo.setField(user.FieldUpdatedAt, t)
	return uuo
}

// AddWorkerProfiles creates the given worker profiles under the user, in
// the same transaction as the update itself.
func (uuo *UserUpdateOne) AddWorkerProfiles(builders ...*WorkerProfileCreate) *UserUpdateOne {
	uuo.addWorkerProfiles = append(uuo.addWorkerProfiles, builders...)
	return uuo
}

// ConnectWorkerProfileIDs attaches existing worker profiles to the user by
// id, in the same transaction as the update itself.
func (uuo *UserUpdateOne) ConnectWorkerProfileIDs(ids ...int) *UserUpdateOne {
	uuo.connectWorkerProfileIDs = append(uuo.connectWorkerProfileIDs, ids...)
	return uuo
}

// RemoveWorkerProfileIDs removes the given worker profiles from the user.
// The edge is required on the profile side, so removal deletes the rows.
func (uuo *UserUpdateOne) RemoveWorkerProfileIDs(ids ...int) *UserUpdateOne {
	uuo.removeWorkerProfileIDs = append(uuo.removeWorkerProfileIDs, ids...)
	return uuo
}

// ClearWorkerProfiles deletes all worker profiles of the user.
func (uuo *UserUpdateOne) ClearWorkerProfiles() *UserUpdateOne {
	uuo.clearWorkerProfiles = true
	return uuo
}

func (uuo *UserUpdateOne) hasEdges() bool {
	return len(uuo.addWorkerProfiles) > 0 ||
		len(uuo.connectWorkerProfileIDs) > 0 ||
		len(uuo.removeWorkerProfileIDs) > 0 ||
		uuo.clearWorkerProfiles
}

func (uuo *UserUpdateOne) exec(ctx context.Context, drv dialect.Driver) error {
	if len(uuo.mutations) == 0 {
		return nil
	}
	upd := sql.Dialect(drv.Dialect()).Update(user.Table)
	for _, m := range uuo.mutations {
		m(upd)
	}
	upd.Where(sql.EQ(user.FieldID, uuo.id))
	query, args := upd.Query()
	_, err := execAffected(ctx, drv, query, args)
	return err
}

// saveEdges applies the nested worker profile operations: clear, then
// targeted removals, then nested creates and connects.
func (uuo *UserUpdateOne) saveEdges(ctx context.Context, txc config) error {
	if uuo.clearWorkerProfiles {
		if _, err := deleteChildren(ctx, txc.driver, workerprofile.Table, workerprofile.FieldUserID, uuo.id, nil); err != nil {
			return err
		}
	}
	if len(uuo.removeWorkerProfileIDs) > 0 {
		n, err := deleteChildren(ctx, txc.driver, workerprofile.Table, workerprofile.FieldUserID, uuo.id, uuo.removeWorkerProfileIDs)
		if err != nil {
			return err
		}
		if n != len(uuo.removeWorkerProfileIDs) {
			return &NotFoundError{workerprofile.Label}
		}
	}
	for _, wpc := range uuo.addWorkerProfiles {
		wpc.config = txc
		wpc.SetUserID(uuo.id)
		if _, err := wpc.Save(ctx); err != nil {
			return err
		}
	}
	if len(uuo.connectWorkerProfileIDs) > 0 {
		n, err := connectByIDs(ctx, txc.driver, workerprofile.Table, workerprofile.FieldUserID, uuo.id, uuo.connectWorkerProfileIDs)
		if err != nil {
			return err
		}
		if n != len(uuo.connectWorkerProfileIDs) {
			return &NotFoundError{workerprofile.Label}
		}
	}
	return nil
}

// Save executes the update and returns the updated User entity. With nested
// worker profile writes, the user and its children are written in one
// transaction; when the builder is not bound to a running transaction, one
// is opened and committed, or rolled back on failure. Returns a
// *NotFoundError when no row carries the builder id.
func (uuo *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	if !uuo.hasEdges() {
		if err := uuo.exec(ctx, uuo.driver); err != nil {
			return nil, err
		}
		return NewUserClient(uuo.config).Get(ctx, uuo.id)
	}
	var node *User
	if err := withTx(ctx, uuo.config, func(txc config) error {
		if err := uuo.exec(ctx, txc.driver); err != nil {
			return err
		}
		if err := uuo.saveEdges(ctx, txc); err != nil {
			return err
		}
		n, err := NewUserClient(txc).Get(ctx, uuo.id)
		if err != nil {
			return err
		}
		node = n
		return nil
	}); err != nil {
		return nil, err
	}
	node.config = uuo.config
	return node, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uuo *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := uuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (uuo *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := uuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uuo *UserUpdateOne) ExecX(ctx context.Context) {
	if err := uuo.Exec(ctx); err != nil {
		panic(err)
	}
}
