package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/dialect/sql"
	"labstore/workerprofile"
)

// WorkerProfileCreate is the builder for creating a WorkerProfile entity.
type WorkerProfileCreate struct {
	config
	userID            *int
	title             *string
	firstName         *string
	lastName          *string
	idCardNumber      *string
	mobilePhoneNumber *string
	phoneNumber       *string
	email             *string
	idCardFilePath    *string
	createdAt         *time.Time
	updatedAt         *time.Time
	conflict          *conflictSpec
}

// SetUserID sets the "user_id" field.
func (wpc *WorkerProfileCreate) SetUserID(i int) *WorkerProfileCreate {
	wpc.userID = &i
	return wpc
}

// SetTitle sets the "title" field.
func (wpc *WorkerProfileCreate) SetTitle(s string) *WorkerProfileCreate {
	wpc.title = &s
	return wpc
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillableTitle(s *string) *WorkerProfileCreate {
	if s != nil {
		wpc.SetTitle(*s)
	}
	return wpc
}

// SetFirstName sets the "first_name" field.
func (wpc *WorkerProfileCreate) SetFirstName(s string) *WorkerProfileCreate {
	wpc.firstName = &s
	return wpc
}

// SetLastName sets the "last_name" field.
func (wpc *WorkerProfileCreate) SetLastName(s string) *WorkerProfileCreate {
	wpc.lastName = &s
	return wpc
}

// SetIDCardNumber sets the "id_card_number" field.
func (wpc *WorkerProfileCreate) SetIDCardNumber(s string) *WorkerProfileCreate {
	wpc.idCardNumber = &s
	return wpc
}

// SetMobilePhoneNumber sets the "mobile_phone_number" field.
func (wpc *WorkerProfileCreate) SetMobilePhoneNumber(s string) *WorkerProfileCreate {
	wpc.mobilePhoneNumber = &s
	return wpc
}

// SetPhoneNumber sets the "phone_number" field.
func (wpc *WorkerProfileCreate) SetPhoneNumber(s string) *WorkerProfileCreate {
	wpc.phoneNumber = &s
	return wpc
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillablePhoneNumber(s *string) *WorkerProfileCreate {
	if s != nil {
		wpc.SetPhoneNumber(*s)
	}
	return wpc
}

// SetEmail sets the "email" field.
func (wpc *WorkerProfileCreate) SetEmail(s string) *WorkerProfileCreate {
	wpc.email = &s
	return wpc
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillableEmail(s *string) *WorkerProfileCreate {
	if s != nil {
		wpc.SetEmail(*s)
	}
	return wpc
}

// SetIDCardFilePath sets the "id_card_file_path" field.
func (wpc *WorkerProfileCreate) SetIDCardFilePath(s string) *WorkerProfileCreate {
	wpc.idCardFilePath = &s
	return wpc
}

// SetNillableIDCardFilePath sets the "id_card_file_path" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillableIDCardFilePath(s *string) *WorkerProfileCreate {
	if s != nil {
		wpc.SetIDCardFilePath(*s)
	}
	return wpc
}

// SetCreatedAt sets the "created_at" field.
func (wpc *WorkerProfileCreate) SetCreatedAt(t time.Time) *WorkerProfileCreate {
	wpc.createdAt = &t
	return wpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillableCreatedAt(t *time.Time) *WorkerProfileCreate {
	if t != nil {
		wpc.SetCreatedAt(*t)
	}
	return wpc
}

// SetUpdatedAt sets the "updated_at" field.
func (wpc *WorkerProfileCreate) SetUpdatedAt(t time.Time) *WorkerProfileCreate {
	wpc.updatedAt = &t
	return wpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wpc *WorkerProfileCreate) SetNillableUpdatedAt(t *time.Time) *WorkerProfileCreate {
	if t != nil {
		wpc.SetUpdatedAt(*t)
	}
	return wpc
}

// check runs all checks and user-defined validators on the builder.
func (wpc *WorkerProfileCreate) check() error {
	if wpc.userID == nil {
		return &ValidationError{Name: workerprofile.FieldUserID, err: errors.New(`labstore: missing required field "WorkerProfile.user_id"`)}
	}
	if wpc.firstName == nil {
		return &ValidationError{Name: workerprofile.FieldFirstName, err: errors.New(`labstore: missing required field "WorkerProfile.first_name"`)}
	}
	if wpc.lastName == nil {
		return &ValidationError{Name: workerprofile.FieldLastName, err: errors.New(`labstore: missing required field "WorkerProfile.last_name"`)}
	}
	if wpc.idCardNumber == nil {
		return &ValidationError{Name: workerprofile.FieldIDCardNumber, err: errors.New(`labstore: missing required field "WorkerProfile.id_card_number"`)}
	}
	if wpc.mobilePhoneNumber == nil {
		return &ValidationError{Name: workerprofile.FieldMobilePhoneNumber, err: errors.New(`labstore: missing required field "WorkerProfile.mobile_phone_number"`)}
	}
	if wpc.conflict != nil {
		return wpc.conflict.check()
	}
	return nil
}

func (wpc *WorkerProfileCreate) values() []any {
	return []any{
		wpc.userID,
		wpc.title,
		wpc.firstName,
		wpc.lastName,
		wpc.idCardNumber,
		wpc.mobilePhoneNumber,
		wpc.phoneNumber,
		wpc.email,
		wpc.idCardFilePath,
		wpc.createdAt,
		wpc.updatedAt,
	}
}

func (wpc *WorkerProfileCreate) assign() *WorkerProfile {
	return &WorkerProfile{
		config:            wpc.config,
		UserID:            *wpc.userID,
		Title:             wpc.title,
		FirstName:         *wpc.firstName,
		LastName:          *wpc.lastName,
		IDCardNumber:      *wpc.idCardNumber,
		MobilePhoneNumber: *wpc.mobilePhoneNumber,
		PhoneNumber:       wpc.phoneNumber,
		Email:             wpc.email,
		IDCardFilePath:    wpc.idCardFilePath,
		CreatedAt:         wpc.createdAt,
		UpdatedAt:         wpc.updatedAt,
	}
}

func (wpc *WorkerProfileCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(wpc.driver.Dialect()).
		Insert(workerprofile.Table).
		Columns(workerprofile.Columns[1:]...).
		Values(wpc.values()...)
	if wpc.conflict != nil {
		wpc.conflict.apply(ins, workerprofile.Columns[1:])
	}
	return ins
}

// Save creates the WorkerProfile in the database. A user_id that does not
// reference an existing user fails with a *ForeignKeyError.
func (wpc *WorkerProfileCreate) Save(ctx context.Context) (*WorkerProfile, error) {
	if err := wpc.check(); err != nil {
		return nil, err
	}
	node := wpc.assign()
	id, err := insertID(ctx, wpc.driver, wpc.insert(), workerprofile.Label)
	if err != nil {
		return nil, err
	}
	node.ID = id
	return node, nil
}

// SaveX calls Save and panics if Save returns an error.
func (wpc *WorkerProfileCreate) SaveX(ctx context.Context) *WorkerProfile {
	node, err := wpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (wpc *WorkerProfileCreate) Exec(ctx context.Context) error {
	if err := wpc.check(); err != nil {
		return err
	}
	return insertExec(ctx, wpc.driver, wpc.insert())
}

// ExecX is like Exec, but panics if an error occurs.
func (wpc *WorkerProfileCreate) ExecX(ctx context.Context) {
	if err := wpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
func (wpc *WorkerProfileCreate) OnConflictColumns(columns ...string) *WorkerProfileUpsertOne {
	wpc.conflict = &conflictSpec{columns: columns}
	return &WorkerProfileUpsertOne{create: wpc}
}

// WorkerProfileUpsertOne is the builder for the upsert action of a single
// WorkerProfile entity.
type WorkerProfileUpsertOne struct {
	create *WorkerProfileCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *WorkerProfileUpsertOne) Ignore() *WorkerProfileUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *WorkerProfileUpsertOne) UpdateNewValues() *WorkerProfileUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetUserID sets the "user_id" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetUserID(i int) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldUserID, i)
	return u
}

// SetTitle sets the "title" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetTitle(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldTitle, s)
	return u
}

// SetFirstName sets the "first_name" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetFirstName(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldFirstName, s)
	return u
}

// SetLastName sets the "last_name" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetLastName(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldLastName, s)
	return u
}

// SetMobilePhoneNumber sets the "mobile_phone_number" field on the
// conflicting row.
func (u *WorkerProfileUpsertOne) SetMobilePhoneNumber(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldMobilePhoneNumber, s)
	return u
}

// SetPhoneNumber sets the "phone_number" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetPhoneNumber(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldPhoneNumber, s)
	return u
}

// SetEmail sets the "email" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetEmail(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldEmail, s)
	return u
}

// SetIDCardFilePath sets the "id_card_file_path" field on the conflicting
// row.
func (u *WorkerProfileUpsertOne) SetIDCardFilePath(s string) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldIDCardFilePath, s)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *WorkerProfileUpsertOne) SetUpdatedAt(t time.Time) *WorkerProfileUpsertOne {
	u.create.conflict.set(workerprofile.FieldUpdatedAt, t)
	return u
}

// Save creates the WorkerProfile, or applies the conflict action on the
// existing row. With Ignore on a conflicting row, no row comes back and
// Save returns a *NotFoundError.
func (u *WorkerProfileUpsertOne) Save(ctx context.Context) (*WorkerProfile, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *WorkerProfileUpsertOne) SaveX(ctx context.Context) *WorkerProfile {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *WorkerProfileUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkerProfileUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *WorkerProfileUpsertOne) ID(ctx context.Context) (int, error) {
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), workerprofile.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkerProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkerProfileCreateBulk is the builder for creating many WorkerProfile
// entities in bulk.
type WorkerProfileCreateBulk struct {
	config
	builders []*WorkerProfileCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (wpcb *WorkerProfileCreateBulk) OnConflictDoNothing() *WorkerProfileCreateBulk {
	wpcb.conflict = &conflictSpec{doNothing: true}
	return wpcb
}

func (wpcb *WorkerProfileCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(wpcb.driver.Dialect()).
		Insert(workerprofile.Table).
		Columns(workerprofile.Columns[1:]...)
	for i, wpc := range wpcb.builders {
		if err := wpc.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		ins.Values(wpc.values()...)
	}
	if wpcb.conflict != nil {
		wpcb.conflict.apply(ins, workerprofile.Columns[1:])
	}
	return ins, nil
}

// Save creates the WorkerProfile entities in one statement and returns the
// rows actually inserted. On MySQL the rows are reconstructed from the
// builders, which requires the batch to be conflict-free; combine
// OnConflictDoNothing with Exec there instead.
func (wpcb *WorkerProfileCreateBulk) Save(ctx context.Context) ([]*WorkerProfile, error) {
	if len(wpcb.builders) == 0 {
		return nil, nil
	}
	ins, err := wpcb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(wpcb.driver.Dialect()) {
		ins.Returning(workerprofile.Columns...)
		rows, err := queryRows(ctx, wpcb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*WorkerProfile
		for rows.Next() {
			node := &WorkerProfile{config: wpcb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if wpcb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, wpcb.driver, ins, workerprofile.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*WorkerProfile, len(wpcb.builders))
	for i, wpc := range wpcb.builders {
		nodes[i] = wpc.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wpcb *WorkerProfileCreateBulk) SaveX(ctx context.Context) []*WorkerProfile {
	nodes, err := wpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the WorkerProfile entities and returns the inserted row
// count. Rows skipped by OnConflictDoNothing are not counted.
func (wpcb *WorkerProfileCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(wpcb.builders) == 0 {
		return 0, nil
	}
	ins, err := wpcb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, wpcb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (wpcb *WorkerProfileCreateBulk) ExecX(ctx context.Context) int {
	n, err := wpcb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
