package labstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/samplelist"
)

// DocumentRequestCreate is the builder for creating a DocumentRequest
// entity.
type DocumentRequestCreate struct {
	config
	requestNo            *string
	userID               *int
	companyID            *int
	requestDate          *time.Time
	documentType         *string
	description          *string
	status               *string
	paidStatus           *bool
	createdAt            *time.Time
	updatedAt            *time.Time
	sampleLists          []*SampleListCreate
	connectSampleListIDs []int
	conflict             *conflictSpec
}

// SetRequestNo sets the "request_no" field.
func (drc *DocumentRequestCreate) SetRequestNo(s string) *DocumentRequestCreate {
	drc.requestNo = &s
	return drc
}

// SetUserID sets the "user_id" field.
func (drc *DocumentRequestCreate) SetUserID(i int) *DocumentRequestCreate {
	drc.userID = &i
	return drc
}

// SetCompanyID sets the "company_id" field.
func (drc *DocumentRequestCreate) SetCompanyID(i int) *DocumentRequestCreate {
	drc.companyID = &i
	return drc
}

// SetRequestDate sets the "request_date" field.
func (drc *DocumentRequestCreate) SetRequestDate(t time.Time) *DocumentRequestCreate {
	drc.requestDate = &t
	return drc
}

// SetNillableRequestDate sets the "request_date" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillableRequestDate(t *time.Time) *DocumentRequestCreate {
	if t != nil {
		drc.SetRequestDate(*t)
	}
	return drc
}

// SetDocumentType sets the "document_type" field.
func (drc *DocumentRequestCreate) SetDocumentType(s string) *DocumentRequestCreate {
	drc.documentType = &s
	return drc
}

// SetDescription sets the "description" field.
func (drc *DocumentRequestCreate) SetDescription(s string) *DocumentRequestCreate {
	drc.description = &s
	return drc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillableDescription(s *string) *DocumentRequestCreate {
	if s != nil {
		drc.SetDescription(*s)
	}
	return drc
}

// SetStatus sets the "status" field.
func (drc *DocumentRequestCreate) SetStatus(s string) *DocumentRequestCreate {
	drc.status = &s
	return drc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillableStatus(s *string) *DocumentRequestCreate {
	if s != nil {
		drc.SetStatus(*s)
	}
	return drc
}

// SetPaidStatus sets the "paid_status" field.
func (drc *DocumentRequestCreate) SetPaidStatus(b bool) *DocumentRequestCreate {
	drc.paidStatus = &b
	return drc
}

// SetNillablePaidStatus sets the "paid_status" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillablePaidStatus(b *bool) *DocumentRequestCreate {
	if b != nil {
		drc.SetPaidStatus(*b)
	}
	return drc
}

// SetCreatedAt sets the "created_at" field.
func (drc *DocumentRequestCreate) SetCreatedAt(t time.Time) *DocumentRequestCreate {
	drc.createdAt = &t
	return drc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillableCreatedAt(t *time.Time) *DocumentRequestCreate {
	if t != nil {
		drc.SetCreatedAt(*t)
	}
	return drc
}

// SetUpdatedAt sets the "updated_at" field.
func (drc *DocumentRequestCreate) SetUpdatedAt(t time.Time) *DocumentRequestCreate {
	drc.updatedAt = &t
	return drc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (drc *DocumentRequestCreate) SetNillableUpdatedAt(t *time.Time) *DocumentRequestCreate {
	if t != nil {
		drc.SetUpdatedAt(*t)
	}
	return drc
}

// AddSampleLists creates the given sample rows under the new request, in
// the same transaction as the request itself. A child builder may carry its
// own OnConflict action.
func (drc *DocumentRequestCreate) AddSampleLists(builders ...*SampleListCreate) *DocumentRequestCreate {
	drc.sampleLists = append(drc.sampleLists, builders...)
	return drc
}

// ConnectSampleListIDs attaches existing sample rows to the new request by
// id, in the same transaction as the request itself.
func (drc *DocumentRequestCreate) ConnectSampleListIDs(ids ...int) *DocumentRequestCreate {
	drc.connectSampleListIDs = append(drc.connectSampleListIDs, ids...)
	return drc
}

func (drc *DocumentRequestCreate) hasEdges() bool {
	return len(drc.sampleLists) > 0 || len(drc.connectSampleListIDs) > 0
}

// check runs all checks and user-defined validators on the builder.
func (drc *DocumentRequestCreate) check() error {
	if drc.requestNo == nil {
		return &ValidationError{Name: documentrequest.FieldRequestNo, err: errors.New(`labstore: missing required field "DocumentRequest.request_no"`)}
	}
	if drc.userID == nil {
		return &ValidationError{Name: documentrequest.FieldUserID, err: errors.New(`labstore: missing required field "DocumentRequest.user_id"`)}
	}
	if drc.companyID == nil {
		return &ValidationError{Name: documentrequest.FieldCompanyID, err: errors.New(`labstore: missing required field "DocumentRequest.company_id"`)}
	}
	if drc.documentType == nil {
		return &ValidationError{Name: documentrequest.FieldDocumentType, err: errors.New(`labstore: missing required field "DocumentRequest.document_type"`)}
	}
	if drc.conflict != nil {
		return drc.conflict.check()
	}
	return nil
}

func (drc *DocumentRequestCreate) values() []any {
	return []any{
		drc.requestNo,
		drc.userID,
		drc.companyID,
		drc.requestDate,
		drc.documentType,
		drc.description,
		drc.status,
		drc.paidStatus,
		drc.createdAt,
		drc.updatedAt,
	}
}

func (drc *DocumentRequestCreate) assign() *DocumentRequest {
	return &DocumentRequest{
		config:       drc.config,
		RequestNo:    *drc.requestNo,
		UserID:       *drc.userID,
		CompanyID:    *drc.companyID,
		RequestDate:  drc.requestDate,
		DocumentType: *drc.documentType,
		Description:  drc.description,
		Status:       drc.status,
		PaidStatus:   drc.paidStatus,
		CreatedAt:    drc.createdAt,
		UpdatedAt:    drc.updatedAt,
	}
}

func (drc *DocumentRequestCreate) insert() *sql.InsertBuilder {
	ins := sql.Dialect(drc.driver.Dialect()).
		Insert(documentrequest.Table).
		Columns(documentrequest.Columns[1:]...).
		Values(drc.values()...)
	if drc.conflict != nil {
		drc.conflict.apply(ins, documentrequest.Columns[1:])
	}
	return ins
}

// Save creates the DocumentRequest in the database. With nested sample
// writes, the request and its samples are written in one transaction; when
// the builder is not bound to a running transaction, one is opened and
// committed, or rolled back on failure.
func (drc *DocumentRequestCreate) Save(ctx context.Context) (*DocumentRequest, error) {
	if err := drc.check(); err != nil {
		return nil, err
	}
	node := drc.assign()
	if !drc.hasEdges() {
		id, err := insertID(ctx, drc.driver, drc.insert(), documentrequest.Label)
		if err != nil {
			return nil, err
		}
		node.ID = id
		return node, nil
	}
	if err := withTx(ctx, drc.config, func(txc config) error {
		id, err := insertID(ctx, txc.driver, drc.insert(), documentrequest.Label)
		if err != nil {
			return err
		}
		node.ID = id
		return drc.saveEdges(ctx, txc, node)
	}); err != nil {
		return nil, err
	}
	return node, nil
}

// saveEdges writes the nested sample edges under the created request. The
// edge is keyed on the request_no business key.
func (drc *DocumentRequestCreate) saveEdges(ctx context.Context, txc config, node *DocumentRequest) error {
	node.Edges.loadedTypes[0] = true
	for _, slc := range drc.sampleLists {
		slc.config = txc
		slc.SetRequestNo(node.RequestNo)
		child, err := slc.Save(ctx)
		if err != nil {
			return err
		}
		node.Edges.SampleLists = append(node.Edges.SampleLists, child)
	}
	if len(drc.connectSampleListIDs) > 0 {
		n, err := connectByIDs(ctx, txc.driver, samplelist.Table, samplelist.FieldRequestNo, node.RequestNo, drc.connectSampleListIDs)
		if err != nil {
			return err
		}
		if n != len(drc.connectSampleListIDs) {
			return &NotFoundError{samplelist.Label}
		}
	}
	return nil
}

// SaveX calls Save and panics if Save returns an error.
func (drc *DocumentRequestCreate) SaveX(ctx context.Context) *DocumentRequest {
	node, err := drc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query.
func (drc *DocumentRequestCreate) Exec(ctx context.Context) error {
	if err := drc.check(); err != nil {
		return err
	}
	if !drc.hasEdges() {
		return insertExec(ctx, drc.driver, drc.insert())
	}
	_, err := drc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (drc *DocumentRequestCreate) ExecX(ctx context.Context) {
	if err := drc.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflictColumns turns the create into an upsert targeting the given
// unique columns. The returned builder chooses the conflict action.
func (drc *DocumentRequestCreate) OnConflictColumns(columns ...string) *DocumentRequestUpsertOne {
	drc.conflict = &conflictSpec{columns: columns}
	return &DocumentRequestUpsertOne{create: drc}
}

// DocumentRequestUpsertOne is the builder for the upsert action of a single
// DocumentRequest entity.
type DocumentRequestUpsertOne struct {
	create *DocumentRequestCreate
}

// Ignore keeps the old values on conflict and skips the insert.
func (u *DocumentRequestUpsertOne) Ignore() *DocumentRequestUpsertOne {
	u.create.conflict.doNothing = true
	return u
}

// UpdateNewValues updates the conflicting row with every value proposed by
// the insert, except the conflict target columns.
func (u *DocumentRequestUpsertOne) UpdateNewValues() *DocumentRequestUpsertOne {
	u.create.conflict.updateAll = true
	return u
}

// SetRequestNo sets the "request_no" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetRequestNo(s string) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldRequestNo, s)
	return u
}

// SetUserID sets the "user_id" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetUserID(i int) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldUserID, i)
	return u
}

// SetCompanyID sets the "company_id" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetCompanyID(i int) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldCompanyID, i)
	return u
}

// SetRequestDate sets the "request_date" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetRequestDate(t time.Time) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldRequestDate, t)
	return u
}

// SetDocumentType sets the "document_type" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetDocumentType(s string) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldDocumentType, s)
	return u
}

// SetDescription sets the "description" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetDescription(s string) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldDescription, s)
	return u
}

// SetStatus sets the "status" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetStatus(s string) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldStatus, s)
	return u
}

// SetPaidStatus sets the "paid_status" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetPaidStatus(b bool) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldPaidStatus, b)
	return u
}

// SetUpdatedAt sets the "updated_at" field on the conflicting row.
func (u *DocumentRequestUpsertOne) SetUpdatedAt(t time.Time) *DocumentRequestUpsertOne {
	u.create.conflict.set(documentrequest.FieldUpdatedAt, t)
	return u
}

// Save creates the DocumentRequest, or applies the conflict action on the
// existing row. With Ignore on a conflicting row, no row comes back and
// Save returns a *NotFoundError.
func (u *DocumentRequestUpsertOne) Save(ctx context.Context) (*DocumentRequest, error) {
	return u.create.Save(ctx)
}

// SaveX calls Save and panics if Save returns an error.
func (u *DocumentRequestUpsertOne) SaveX(ctx context.Context) *DocumentRequest {
	return u.create.SaveX(ctx)
}

// Exec executes the upsert without reading the row back.
func (u *DocumentRequestUpsertOne) Exec(ctx context.Context) error {
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentRequestUpsertOne) ExecX(ctx context.Context) {
	u.create.ExecX(ctx)
}

// ID executes the upsert and returns the id of the affected row. Supported
// on dialects with RETURNING (postgres, sqlite).
func (u *DocumentRequestUpsertOne) ID(ctx context.Context) (int, error) {
	if err := u.create.check(); err != nil {
		return 0, err
	}
	return upsertID(ctx, u.create.driver, u.create.insert(), documentrequest.Label)
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentRequestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentRequestCreateBulk is the builder for creating many
// DocumentRequest entities in bulk.
type DocumentRequestCreateBulk struct {
	config
	builders []*DocumentRequestCreate
	conflict *conflictSpec
}

// OnConflictDoNothing skips rows colliding with an existing unique value
// instead of failing the whole batch.
func (drcb *DocumentRequestCreateBulk) OnConflictDoNothing() *DocumentRequestCreateBulk {
	drcb.conflict = &conflictSpec{doNothing: true}
	return drcb
}

func (drcb *DocumentRequestCreateBulk) insert() (*sql.InsertBuilder, error) {
	ins := sql.Dialect(drcb.driver.Dialect()).
		Insert(documentrequest.Table).
		Columns(documentrequest.Columns[1:]...)
	for i, drc := range drcb.builders {
		if err := drc.check(); err != nil {
			return nil, fmt.Errorf("labstore: builder %d: %w", i, err)
		}
		if drc.hasEdges() {
			return nil, fmt.Errorf("labstore: builder %d: nested edges are not supported in bulk creation", i)
		}
		ins.Values(drc.values()...)
	}
	if drcb.conflict != nil {
		drcb.conflict.apply(ins, documentrequest.Columns[1:])
	}
	return ins, nil
}

// Save creates the DocumentRequest entities in one statement and returns
// the rows actually inserted. On MySQL the rows are reconstructed from the
// builders, which requires the batch to be conflict-free; combine
// OnConflictDoNothing with Exec there instead.
func (drcb *DocumentRequestCreateBulk) Save(ctx context.Context) ([]*DocumentRequest, error) {
	if len(drcb.builders) == 0 {
		return nil, nil
	}
	ins, err := drcb.insert()
	if err != nil {
		return nil, err
	}
	if sql.SupportsReturning(drcb.driver.Dialect()) {
		ins.Returning(documentrequest.Columns...)
		rows, err := queryRows(ctx, drcb.driver, ins)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		defer rows.Close()
		var nodes []*DocumentRequest
		for rows.Next() {
			node := &DocumentRequest{config: drcb.config}
			if err := rows.Scan(node.scanValues()...); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, rows.Err()
	}
	if drcb.conflict != nil {
		return nil, errors.New("labstore: CreateBulk.Save with OnConflictDoNothing is not supported by the mysql dialect; use Exec")
	}
	firstID, err := insertID(ctx, drcb.driver, ins, documentrequest.Label)
	if err != nil {
		return nil, err
	}
	nodes := make([]*DocumentRequest, len(drcb.builders))
	for i, drc := range drcb.builders {
		nodes[i] = drc.assign()
		nodes[i].ID = firstID + i
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (drcb *DocumentRequestCreateBulk) SaveX(ctx context.Context) []*DocumentRequest {
	nodes, err := drcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Exec creates the DocumentRequest entities and returns the inserted row
// count. Rows skipped by OnConflictDoNothing are not counted.
func (drcb *DocumentRequestCreateBulk) Exec(ctx context.Context) (int, error) {
	if len(drcb.builders) == 0 {
		return 0, nil
	}
	ins, err := drcb.insert()
	if err != nil {
		return 0, err
	}
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return 0, err
	}
	return execAffected(ctx, drcb.driver, query, args)
}

// ExecX is like Exec, but panics if an error occurs.
func (drcb *DocumentRequestCreateBulk) ExecX(ctx context.Context) int {
	n, err := drcb.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
