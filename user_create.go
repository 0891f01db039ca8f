package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/dialect/sql"
	"labstore/user"
	"labstore/workerprofile"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	username                *string
	email                   *string
	password                *string
	firstName               *string
	lastName                *string
	role                    *string
	isActive                *bool
	createdAt               *time.Time
	updatedAt               *time.Time
	workerProfiles          []*WorkerProfileCreate
	connectWorkerProfileIDs []int
	conflict                *conflictSpec
}

// SetUsername sets the "username" field.
func (uc *UserCreate) SetUsername(s string) *UserCreate {
	uc.username = &s
	return uc
}

// SetEmail sets the "email" field.
func (uc *UserCreate) SetEmail(s string) *UserCreate {
	uc.email = &s
	return uc
}

// SetPassword sets the "password" field.
func (uc *UserCreate) SetPassword(s string) *UserCreate {
	uc.password = &s
	return uc
}

// SetFirstName sets the "first_name" field.
func (uc *UserCreate) SetFirstName(s string) *UserCreate {
	uc.firstName = &s
	return uc
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (uc *UserCreate) SetNillableFirstName(s *string) *UserCreate {
	if s != nil {
		uc.SetFirstName(*s)
	}
	return uc
}

// SetLastName sets the "last_name" field.
func (uc *UserCreate) SetLastName(s string) *UserCreate {
	uc.lastName = &s
	return uc
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (uc *UserCreate) SetNillableLastName(s *string) *UserCreate {
	if s != nil {
		uc.SetLastName(*s)
	}
	return uc
}

// SetRole sets the "role" field.
func (uc *UserCreate) SetRole(s string) *UserCreate {
	uc.role = &s
	return uc
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (uc *UserCreate) SetNillableRole(s *string) *UserCreate {
	if s != nil {
		uc.SetRole(*s)
	}
	return uc
}

// SetIsActive sets the "is_active" field.
func (uc *UserCreate) SetIsActive(b bool) *UserCreate {
	uc.isActive = &b
	return uc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (uc *UserCreate) SetNillableIsActive(b *bool) *UserCreate {
	if b != nil {
		uc.SetIsActive(*b)
	}
	return uc
}

// SetCreatedAt sets the "created_at" field.
func (uc *UserCreate) SetCreatedAt(t time.Time) *UserCreate {
	uc.createdAt = &t
	return uc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (uc *UserCreate) SetNillableCreatedAt(t *time.Time) *UserCreate {
	if t != nil {
		uc.SetCreatedAt(*t)
	}
	return uc
}

// SetUpdatedAt sets the "updated_at" field.
func (uc *UserCreate) SetUpdatedAt(t time.Time) *UserCreate {
	uc.updatedAt = &t
	return uc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (uc *UserCreate) SetNillableUpdatedAt(t *time.Time) *UserCreate {
	if t != nil {
		uc.SetUpdatedAt(*t)
	}
	return uc
}

// AddWorkerProfiles creates the given worker profiles under the new user,
// in the same transaction as the user itself.
func (uc *UserCreate) AddWorkerProfiles(builders ...*WorkerProfileCreate) *UserCreate {
	uc.workerProfiles = append(uc.workerProfiles, builders...)
	return uc
}

// ConnectWorkerProfileIDs attaches existing worker profiles to the new user
// by id, in the same transaction as the user itself.
func (uc *UserCreate) ConnectWorkerProfileIDs(ids ...int) *UserCreate {
	uc.connectWorkerProfileIDs = append(uc.connectWorkerProfileIDs, ids...)
	return uc
}

func (uc *UserCreate) hasEdges() bool {
	return len(uc.workerProfiles) > 0 || len(uc.connectWorkerProfileIDs) > 0
}

// check runs all checks and user-defined validators on the builder.
func (uc *UserCreate) check() error {
	if uc.username == nil {
		return &ValidationError{Name: user.FieldUsername, err: errors.New(`labstore: missing required field "User.username"`)}
	}
	if uc.email == nil {
		return &ValidationError{Name: user.FieldEmail, err: errors.New(`labstore: missing required field "User.email"`)}
	}
	if uc.password == nil {
		return &ValidationError{Name: user.FieldPassword, err: errors.New(`labstore: missing required field "User.password"`)}
	}
	if uc.conflict != nil {
		return uc.conflict.check()
	}
	return nil
}

func (uc *UserCreate) values() []any {
	return []any{
		uc.username,
		uc.email,
		uc.password,
		uc.firstName,
		uc.lastName,
		uc.role,
		uc.isActive,
		uc.createdAt,
		uc.updatedAt,
	}
}

func (uc *UserCreate) assign() *User {
	return &User{
		config:    uc.config,
		Username:  *uc.username,
		Email:     *uc.email,
		Password:  *uc.password,
		FirstName: uc.firstName,
		LastName:  uc.lastName,
		Role:      uc.role,
		IsActive:  uc.isActive,
		CreatedAt: uc.createdAt,
		UpdatedAt: uc.updatedAt,
	}
}

func (uc *UserCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(uc.driver.Dialect()).
		Insert(user.Table).
		Columns(user.Columns[1:]...).
		Values(uc.values()...)
	if uc.conflict != nil {
		uc.conflict.apply(ins, user.Columns[1:])
	}
	return ins
}

// Save creates the User in the database. With nested worker profile writes,
// the user and its children are written in one transaction; when the
// builder is not bound to a running transaction, one is opened and
// committed, or rolled back on failure.
func (uc *UserCreate) Save(ctx context.Context) (*User, error) {
	if err := uc.check(); err != nil {
		return nil, err
	}
	node := uc.assign()
	if !uc.hasEdges() {
		id, err := insertID(ctx, uc.driver, uc.insert(), user.Label)
		if err != nil {
			return nil, err
		}
		node.ID = id
		return node, nil
	}
	if err := withTx(ctx, uc.config, func(txc config) error {
		id, err := insertID(ctx, txc.driver, uc.insert(), user.Label)
		if err != nil {
			return err
		}
		node.ID = id
		return uc.saveEdges(ctx, txc, node)
	}); err != nil {
		return nil, err
	}
	return node, nil
}

// saveEdges writes the nested worker profile edges under the created user.
func (uc *UserCreate) saveEdges(ctx context.Context, txc config, node *User) error {
	node.Edges.loadedTypes[0] = true
	for _, wpc := range uc.workerProfiles {
		wpc.config = txc
		wpc.SetUserID(node.ID)
		child, err := wpc.Save(ctx)
		if err != nil {
			return err
		}
		node.Edges.WorkerProfiles = append(node.Edges.WorkerProfiles, child)
	}
	if len(uc.connectWorkerProfileIDs) > 0 {
		n, err := connectByIDs(ctx, txc.driver, workerprofile.Table, workerprofile.FieldUserID, node.ID, uc.connectWorkerProfileIDs)
		if err != nil {
			return err
		}
		if n != len(uc.connectWorkerProfileIDs) {
			return &NotFoundError{workerprofile.Label}
		}
	}
	return nil
}

// SaveX calls Save and panics if Save returns an error.
func (uc *UserCreate) SaveX(ctx context.Context) *User {
	node, err := uc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (uc *UserCreate) Exec(ctx context.Context) error {
	if err := uc.check(); err != nil {
		return err
	}
	if !uc.hasEdges() {
		return insertExec(ctx, uc.driver, uc.insert())
	}
	_, err := uc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uc *UserCreate) ExecX(ctx context.Context) {
	if err := uc.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
func (uc *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	uc.conflict = &conflictSpec{columns: columns}
	return &UserUpsertOne{create: uc}
}

// UserUpsertOne is the builder for the upsert action of a single User
// entity.
type UserUpsertOne struct {
	create *UserCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetUsername sets the "username" field on the conflicting row.
func (u *UserUpsertOne) SetUsername(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldUsername, s)
	return u
}

// SetEmail sets the "email" field on the conflicting row.
func (u *UserUpsertOne) SetEmail(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldEmail, s)
	return u
}

// SetPassword sets the "password" field on the conflicting row.
func (u *UserUpsertOne) SetPassword(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldPassword, s)
	return u
}

// SetFirstName sets the "first_name" field on the conflicting row.
func (u *UserUpsertOne) SetFirstName(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldFirstName, s)
	return u
}

// SetLastName sets the "last_name" field on the conflicting row.
func (u *UserUpsertOne) SetLastName(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldLastName, s)
	return u
}

// SetRole sets the "role" field on the conflicting row.
func (u *UserUpsertOne) SetRole(s string) *UserUpsertOne {
	u.create.conflict.set(user.FieldRole, s)
	return u
}

// SetIsActive sets the "is_active" field on the conflicting row.
func (u *UserUpsertOne) SetIsActive(b bool) *UserUpsertOne {
	u.create.conflict.set(user.FieldIsActive, b)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *UserUpsertOne) SetUpdatedAt(t time.Time) *UserUpsertOne {
	u.create.conflict.set(user.FieldUpdatedAt, t)
	return u
}

// Save creates the User, or applies the conflict action on the existing
// row. With Ignore on a conflicting row, no row comes back and Save
// returns a *NotFoundError.
func (u *UserUpsertOne) Save(ctx context.Context) (*User, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *UserUpsertOne) SaveX(ctx context.Context) *User {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *UserUpsertOne) ID(ctx context.Context) (int, error) {
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), user.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	builders []*UserCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (ucb *UserCreateBulk) OnConflictDoNothing() *UserCreateBulk {
	ucb.conflict = &conflictSpec{doNothing: true}
	return ucb
}

func (ucb *UserCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(ucb.driver.Dialect()).
		Insert(user.Table).
		Columns(user.Columns[1:]...)
	for i, uc := range ucb.builders {
		if err := uc.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		if uc.hasEdges() {
			return nil, fmt.Errorf("labstore: builder %d: nested edges are not supported in bulk creation", i)
		}
		ins.Values(uc.values()...)
	}
	if ucb.conflict != nil {
		ucb.conflict.apply(ins, user.Columns[1:])
	}
	return ins, nil
}

// Save creates the User entities in one statement and returns the rows
// actually inserted. On MySQL the rows are reconstructed from the builders,
// which requires the batch to be conflict-free; combine OnConflictDoNothing
// with Exec there instead.
func (ucb *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if len(ucb.builders) == 0 {
		return nil, nil
	}
	ins, err := ucb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(ucb.driver.Dialect()) {
		ins.Returning(user.Columns...)
		rows, err := queryRows(ctx, ucb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*User
		for rows.Next() {
			node := &User{config: ucb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if ucb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, ucb.driver, ins, user.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*User, len(ucb.builders))
	for i, uc := range ucb.builders {
		nodes[i] = uc.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ucb *UserCreateBulk) SaveX(ctx context.Context) []*User {
	nodes, err := ucb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the User entities and returns the inserted row count. Rows
// skipped by OnConflictDoNothing are not counted.
func (ucb *UserCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(ucb.builders) == 0 {
		return 0, nil
	}
	ins, err := ucb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, ucb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (ucb *UserCreateBulk) ExecX(ctx context.Context) int {
	n, err := ucb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
