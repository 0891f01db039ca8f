package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/dialect/sql"
	"labstore/samplelist"
)

// SampleListCreate is the builder for creating a SampleList entity.
type SampleListCreate struct {
	config
	requestNo      *string
	sentSampleDate *time.Time
	animalType     *string
	sampleSpecimen *string
	panel          *string
	method         *string
	sampleQty      *int
	isDeleted      *bool
	createdAt      *time.Time
	updatedAt      *time.Time
	conflict       *conflictSpec
}

// SetRequestNo sets the "request_no" field. It must reference the
// request_no of an existing document request.
func (slc *SampleListCreate) SetRequestNo(s string) *SampleListCreate {
	slc.requestNo = &s
	return slc
}

// SetSentSampleDate sets the "sent_sample_date" field.
func (slc *SampleListCreate) SetSentSampleDate(t time.Time) *SampleListCreate {
	slc.sentSampleDate = &t
	return slc
}

// SetNillableSentSampleDate sets the "sent_sample_date" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableSentSampleDate(t *time.Time) *SampleListCreate {
	if t != nil {
		slc.SetSentSampleDate(*t)
	}
	return slc
}

// SetAnimalType sets the "animal_type" field.
func (slc *SampleListCreate) SetAnimalType(s string) *SampleListCreate {
	slc.animalType = &s
	return slc
}

// SetNillableAnimalType sets the "animal_type" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableAnimalType(s *string) *SampleListCreate {
	if s != nil {
		slc.SetAnimalType(*s)
	}
	return slc
}

// SetSampleSpecimen sets the "sample_specimen" field.
func (slc *SampleListCreate) SetSampleSpecimen(s string) *SampleListCreate {
	slc.sampleSpecimen = &s
	return slc
}

// SetNillableSampleSpecimen sets the "sample_specimen" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableSampleSpecimen(s *string) *SampleListCreate {
	if s != nil {
		slc.SetSampleSpecimen(*s)
	}
	return slc
}

// SetPanel sets the "panel" field.
func (slc *SampleListCreate) SetPanel(s string) *SampleListCreate {
	slc.panel = &s
	return slc
}

// SetNillablePanel sets the "panel" field if the given value is not nil.
func (slc *SampleListCreate) SetNillablePanel(s *string) *SampleListCreate {
	if s != nil {
		slc.SetPanel(*s)
	}
	return slc
}

// SetMethod sets the "method" field.
func (slc *SampleListCreate) SetMethod(s string) *SampleListCreate {
	slc.method = &s
	return slc
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableMethod(s *string) *SampleListCreate {
	if s != nil {
		slc.SetMethod(*s)
	}
	return slc
}

// SetSampleQty sets the "sample_qty" field.
func (slc *SampleListCreate) SetSampleQty(i int) *SampleListCreate {
	slc.sampleQty = &i
	return slc
}

// SetNillableSampleQty sets the "sample_qty" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableSampleQty(i *int) *SampleListCreate {
	if i != nil {
		slc.SetSampleQty(*i)
	}
	return slc
}

// SetIsDeleted sets the "is_deleted" field.
func (slc *SampleListCreate) SetIsDeleted(b bool) *SampleListCreate {
	slc.isDeleted = &b
	return slc
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableIsDeleted(b *bool) *SampleListCreate {
	if b != nil {
		slc.SetIsDeleted(*b)
	}
	return slc
}

// SetCreatedAt sets the "created_at" field.
func (slc *SampleListCreate) SetCreatedAt(t time.Time) *SampleListCreate {
	slc.createdAt = &t
	return slc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableCreatedAt(t *time.Time) *SampleListCreate {
	if t != nil {
		slc.SetCreatedAt(*t)
	}
	return slc
}

// SetUpdatedAt sets the "updated_at" field.
func (slc *SampleListCreate) SetUpdatedAt(t time.Time) *SampleListCreate {
	slc.updatedAt = &t
	return slc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (slc *SampleListCreate) SetNillableUpdatedAt(t *time.Time) *SampleListCreate {
	if t != nil {
		slc.SetUpdatedAt(*t)
	}
	return slc
}

// defaults fills unset fields with their declared default values.
func (slc *SampleListCreate) defaults() {
	if slc.isDeleted == nil {
		slc.SetIsDeleted(false)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slc *SampleListCreate) check() error {
	if slc.requestNo == nil {
		return &ValidationError{Name: samplelist.FieldRequestNo, err: errors.New(`labstore: missing required field "SampleList.request_no"`)}
	}
	if slc.conflict != nil {
		return slc.conflict.check()
	}
	return nil
}

func (slc *SampleListCreate) values() []any {
	return []any{
		slc.requestNo,
		slc.sentSampleDate,
		slc.animalType,
		slc.sampleSpecimen,
		slc.panel,
		slc.method,
		slc.sampleQty,
		slc.isDeleted,
		slc.createdAt,
		slc.updatedAt,
	}
}

func (slc *SampleListCreate) assign() *SampleList {
	return &SampleList{
		config:         slc.config,
		RequestNo:      *slc.requestNo,
		SentSampleDate: slc.sentSampleDate,
		AnimalType:     slc.animalType,
		SampleSpecimen: slc.sampleSpecimen,
		Panel:          slc.panel,
		Method:         slc.method,
		SampleQty:      slc.sampleQty,
		IsDeleted:      *slc.isDeleted,
		CreatedAt:      slc.createdAt,
		UpdatedAt:      slc.updatedAt,
	}
}

func (slc *SampleListCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(slc.driver.Dialect()).
		Insert(samplelist.Table).
		Columns(samplelist.Columns[1:]...).
		Values(slc.values()...)
	if slc.conflict != nil {
		slc.conflict.apply(ins, samplelist.Columns[1:])
	}
	return ins
}

// Save creates the SampleList in the database. A request_no that does not
// reference an existing document request fails with a *ForeignKeyError.
func (slc *SampleListCreate) Save(ctx context.Context) (*SampleList, error) {
	slc.defaults()
	if err := slc.check(); err != nil {
		return nil, err
	}
	node := slc.assign()
	id, err := insertID(ctx, slc.driver, slc.insert(), samplelist.Label)
	if err != nil {
		return nil, err
	}
	node.ID = id
	return node, nil
}

// SaveX calls Save and panics if Save returns an error.
func (slc *SampleListCreate) SaveX(ctx context.Context) *SampleList {
	node, err := slc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (slc *SampleListCreate) Exec(ctx context.Context) error {
	slc.defaults()
	if err := slc.check(); err != nil {
		return err
	}
	return insertExec(ctx, slc.driver, slc.insert())
}

// ExecX is like Exec, but panics if an error occurs.
func (slc *SampleListCreate) ExecX(ctx context.Context) {
	if err := slc.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
func (slc *SampleListCreate) OnConflictColumns(columns ...string) *SampleListUpsertOne {
	slc.conflict = &conflictSpec{columns: columns}
	return &SampleListUpsertOne{create: slc}
}

// SampleListUpsertOne is the builder for the upsert action of a single
// SampleList entity.
type SampleListUpsertOne struct {
	create *SampleListCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *SampleListUpsertOne) Ignore() *SampleListUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *SampleListUpsertOne) UpdateNewValues() *SampleListUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetRequestNo sets the "request_no" field on the conflicting row.
func (u *SampleListUpsertOne) SetRequestNo(s string) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldRequestNo, s)
	return u
}

// SetSentSampleDate sets the "sent_sample_date" field on the conflicting
// row.
func (u *SampleListUpsertOne) SetSentSampleDate(t time.Time) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldSentSampleDate, t)
	return u
}

// SetAnimalType sets the "animal_type" field on the conflicting row.
func (u *SampleListUpsertOne) SetAnimalType(s string) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldAnimalType, s)
	return u
}

// SetSampleSpecimen sets the "sample_specimen" field on the conflicting
// row.
func (u *SampleListUpsertOne) SetSampleSpecimen(s string) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldSampleSpecimen, s)
	return u
}

// SetPanel sets the "panel" field on the conflicting row.
func (u *SampleListUpsertOne) SetPanel(s string) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldPanel, s)
	return u
}

// SetMethod sets the "method" field on the conflicting row.
func (u *SampleListUpsertOne) SetMethod(s string) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldMethod, s)
	return u
}

// SetSampleQty sets the "sample_qty" field on the conflicting row.
func (u *SampleListUpsertOne) SetSampleQty(i int) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldSampleQty, i)
	return u
}

// SetIsDeleted sets the "is_deleted" field on the conflicting row.
func (u *SampleListUpsertOne) SetIsDeleted(b bool) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldIsDeleted, b)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *SampleListUpsertOne) SetUpdatedAt(t time.Time) *SampleListUpsertOne {
	u.create.conflict.set(samplelist.FieldUpdatedAt, t)
	return u
}

// Save creates the SampleList, or applies the conflict action on the
// existing row. With Ignore on a conflicting row, no row comes back and
// Save returns a *NotFoundError.
func (u *SampleListUpsertOne) Save(ctx context.Context) (*SampleList, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *SampleListUpsertOne) SaveX(ctx context.Context) *SampleList {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *SampleListUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SampleListUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *SampleListUpsertOne) ID(ctx context.Context) (int, error) {
	u.create.defaults()
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), samplelist.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *SampleListUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SampleListCreateBulk is the builder for creating many SampleList entities
// in bulk.
type SampleListCreateBulk struct {
	config
	builders []*SampleListCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (slcb *SampleListCreateBulk) OnConflictDoNothing() *SampleListCreateBulk {
	slcb.conflict = &conflictSpec{doNothing: true}
	return slcb
}

func (slcb *SampleListCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(slcb.driver.Dialect()).
		Insert(samplelist.Table).
		Columns(samplelist.Columns[1:]...)
	for i, slc := range slcb.builders {
		slc.defaults()
		if err := slc.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		ins.Values(slc.values()...)
	}
	if slcb.conflict != nil {
		slcb.conflict.apply(ins, samplelist.Columns[1:])
	}
	return ins, nil
}

// Save creates the SampleList entities in one statement and returns the
// rows actually inserted. On MySQL the rows are reconstructed from the
// builders, which requires the batch to be conflict-free; combine
// OnConflictDoNothing with Exec there instead.
func (slcb *SampleListCreateBulk) Save(ctx context.Context) ([]*SampleList, error) {
	if len(slcb.builders) == 0 {
		return nil, nil
	}
	ins, err := slcb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(slcb.driver.Dialect()) {
		ins.Returning(samplelist.Columns...)
		rows, err := queryRows(ctx, slcb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*SampleList
		for rows.Next() {
			node := &SampleList{config: slcb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if slcb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, slcb.driver, ins, samplelist.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*SampleList, len(slcb.builders))
	for i, slc := range slcb.builders {
		nodes[i] = slc.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (slcb *SampleListCreateBulk) SaveX(ctx context.Context) []*SampleList {
	nodes, err := slcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the SampleList entities and returns the inserted row count.
// Rows skipped by OnConflictDoNothing are not counted.
func (slcb *SampleListCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(slcb.builders) == 0 {
		return 0, nil
	}
	ins, err := slcb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, slcb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (slcb *SampleListCreateBulk) ExecX(ctx context.Context) int {
	n, err := slcb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
