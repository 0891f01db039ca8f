package labstore

import (
	"context"
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/workerprofile"
)

// WorkerProfileUpdate is the builder for updating WorkerProfile entities.
type WorkerProfileUpdate struct {
	config
	predicates []predicate.WorkerProfile
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WorkerProfileUpdate builder.
func (wpu *WorkerProfileUpdate) Where(ps ...predicate.WorkerProfile) *WorkerProfileUpdate {
	wpu.predicates = append(wpu.predicates, ps...)
	return wpu
}

// Limit bounds the update to at most n matched rows.
func (wpu *WorkerProfileUpdate) Limit(n int) *WorkerProfileUpdate {
	wpu.limit = &n
	return wpu
}

func (wpu *WorkerProfileUpdate) setField(column string, v any) {
	wpu.mutations = append(wpu.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (wpu *WorkerProfileUpdate) clearField(column string) {
	wpu.mutations = append(wpu.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetUserID sets the "user_id" field.
func (wpu *WorkerProfileUpdate) SetUserID(i int) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldUserID, i)
	return wpu
}

// AddUserID adds i to the "user_id" field.
func (wpu *WorkerProfileUpdate) AddUserID(i int) *WorkerProfileUpdate {
	wpu.mutations = append(wpu.mutations, func(u *sql.UpdateBuilder) { u.Add(workerprofile.FieldUserID, i) })
	return wpu
}

// SetTitle sets the "title" field.
func (wpu *WorkerProfileUpdate) SetTitle(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldTitle, s)
	return wpu
}

// ClearTitle clears the value of the "title" field.
func (wpu *WorkerProfileUpdate) ClearTitle() *WorkerProfileUpdate {
	wpu.clearField(workerprofile.FieldTitle)
	return wpu
}

// SetFirstName sets the "first_name" field.
func (wpu *WorkerProfileUpdate) SetFirstName(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldFirstName, s)
	return wpu
}

// SetLastName sets the "last_name" field.
func (wpu *WorkerProfileUpdate) SetLastName(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldLastName, s)
	return wpu
}

// SetIDCardNumber sets the "id_card_number" field.
func (wpu *WorkerProfileUpdate) SetIDCardNumber(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldIDCardNumber, s)
	return wpu
}

// SetMobilePhoneNumber sets the "mobile_phone_number" field.
func (wpu *WorkerProfileUpdate) SetMobilePhoneNumber(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldMobilePhoneNumber, s)
	return wpu
}

// SetPhoneNumber sets the "phone_number" field.
func (wpu *WorkerProfileUpdate) SetPhoneNumber(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldPhoneNumber, s)
	return wpu
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (wpu *WorkerProfileUpdate) ClearPhoneNumber() *WorkerProfileUpdate {
	wpu.clearField(workerprofile.FieldPhoneNumber)
	return wpu
}

// SetEmail sets the "email" field.
func (wpu *WorkerProfileUpdate) SetEmail(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldEmail, s)
	return wpu
}

// ClearEmail clears the value of the "email" field.
func (wpu *WorkerProfileUpdate) ClearEmail() *WorkerProfileUpdate {
	wpu.clearField(workerprofile.FieldEmail)
	return wpu
}

// SetIDCardFilePath sets the "id_card_file_path" field.
func (wpu *WorkerProfileUpdate) SetIDCardFilePath(s string) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldIDCardFilePath, s)
	return wpu
}

// ClearIDCardFilePath clears the value of the "id_card_file_path" field.
func (wpu *WorkerProfileUpdate) ClearIDCardFilePath() *WorkerProfileUpdate {
	wpu.clearField(workerprofile.FieldIDCardFilePath)
	return wpu
}

// SetUpdatedAt sets the "updated_at" field.
func (wpu *WorkerProfileUpdate) SetUpdatedAt(t time.Time) *WorkerProfileUpdate {
	wpu.setField(workerprofile.FieldUpdatedAt, t)
	return wpu
}

// Save executes the query and returns the number of rows affected.
func (wpu *WorkerProfileUpdate) Save(ctx context.Context) (int, error) {
	if len(wpu.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(wpu.driver.Dialect()).Update(workerprofile.Table)
	for _, m := range wpu.mutations {
		m(upd)
	}
	s := sql.Dialect(wpu.driver.Dialect()).Select().From(workerprofile.Table)
	for _, p := range wpu.predicates {
		p(s)
	}
	switch {
	case wpu.limit != nil:
		upd.Where(limitedIDs(wpu.driver.Dialect(), workerprofile.Table, s.P(), *wpu.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, wpu.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (wpu *WorkerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := wpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wpu *WorkerProfileUpdate) Exec(ctx context.Context) error {
	_, err := wpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpu *WorkerProfileUpdate) ExecX(ctx context.Context) {
	if err := wpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// WorkerProfileUpdateOne is the builder for updating a single WorkerProfile
// entity.
type WorkerProfileUpdateOne struct {
	config
	id        int
	mutations []func(*sql.UpdateBuilder)
}

func (wpuo *WorkerProfileUpdateOne) setField(column string, v any) {
	wpuo.mutations = append(wpuo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (wpuo *WorkerProfileUpdateOne) clearField(column string) {
	wpuo.mutations = append(wpuo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetUserID sets the "user_id" field.
func (wpuo *WorkerProfileUpdateOne) SetUserID(i int) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldUserID, i)
	return wpuo
}

// AddUserID adds i to the "user_id" field.
func (wpuo *WorkerProfileUpdateOne) AddUserID(i int) *WorkerProfileUpdateOne {
	wpuo.mutations = append(wpuo.mutations, func(u *sql.UpdateBuilder) { u.Add(workerprofile.FieldUserID, i) })
	return wpuo
}

// SetTitle sets the "title" field.
func (wpuo *WorkerProfileUpdateOne) SetTitle(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldTitle, s)
	return wpuo
}

// ClearTitle clears the value of the "title" field.
func (wpuo *WorkerProfileUpdateOne) ClearTitle() *WorkerProfileUpdateOne {
	wpuo.clearField(workerprofile.FieldTitle)
	return wpuo
}

// SetFirstName sets the "first_name" field.
func (wpuo *WorkerProfileUpdateOne) SetFirstName(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldFirstName, s)
	return wpuo
}

// SetLastName sets the "last_name" field.
func (wpuo *WorkerProfileUpdateOne) SetLastName(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldLastName, s)
	return wpuo
}

// SetIDCardNumber sets the "id_card_number" field.
func (wpuo *WorkerProfileUpdateOne) SetIDCardNumber(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldIDCardNumber, s)
	return wpuo
}

// SetMobilePhoneNumber sets the "mobile_phone_number" field.
func (wpuo *WorkerProfileUpdateOne) SetMobilePhoneNumber(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldMobilePhoneNumber, s)
	return wpuo
}

// SetPhoneNumber sets the "phone_number" field.
func (wpuo *WorkerProfileUpdateOne) SetPhoneNumber(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldPhoneNumber, s)
	return wpuo
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (wpuo *WorkerProfileUpdateOne) ClearPhoneNumber() *WorkerProfileUpdateOne {
	wpuo.clearField(workerprofile.FieldPhoneNumber)
	return wpuo
}

// SetEmail sets the "email" field.
func (wpuo *WorkerProfileUpdateOne) SetEmail(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldEmail, s)
	return wpuo
}

// ClearEmail clears the value of the "email" field.
func (wpuo *WorkerProfileUpdateOne) ClearEmail() *WorkerProfileUpdateOne {
	wpuo.clearField(workerprofile.FieldEmail)
	return wpuo
}

// SetIDCardFilePath sets the "id_card_file_path" field.
func (wpuo *WorkerProfileUpdateOne) SetIDCardFilePath(s string) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldIDCardFilePath, s)
	return wpuo
}

// ClearIDCardFilePath clears the value of the "id_card_file_path" field.
func (wpuo *WorkerProfileUpdateOne) ClearIDCardFilePath() *WorkerProfileUpdateOne {
	wpuo.clearField(workerprofile.FieldIDCardFilePath)
	return wpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wpuo *WorkerProfileUpdateOne) SetUpdatedAt(t time.Time) *WorkerProfileUpdateOne {
	wpuo.setField(workerprofile.FieldUpdatedAt, t)
	return wpuo
}

// Save executes the update and returns the updated WorkerProfile entity.
// Returns a *NotFoundError when no row carries the builder id.
func (wpuo *WorkerProfileUpdateOne) Save(ctx context.Context) (*WorkerProfile, error) {
	if len(wpuo.mutations) > 0 {
		upd := sql.Dialect(wpuo.driver.Dialect()).Update(workerprofile.Table)
		for _, m := range wpuo.mutations {
			m(upd)
		}
		upd.Where(sql.EQ(workerprofile.FieldID, wpuo.id))
		query, args := upd.Query()
		if _, err := execAffected(ctx, wpuo.driver, query, args); err != nil {
			return nil, err
		}
	}
	return NewWorkerProfileClient(wpuo.config).Get(ctx, wpuo.id)
}

// SaveX is like Save, but panics if an error occurs.
func (wpuo *WorkerProfileUpdateOne) SaveX(ctx context.Context) *WorkerProfile {
	node, err := wpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (wpuo *WorkerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := wpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpuo *WorkerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := wpuo.Exec(ctx); err != nil {
		panic(err)
	}
}
