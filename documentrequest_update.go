package labstore

import (
	"context"
	"time"

	"labstore/dialect"
	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/predicate"
	"labstore/samplelist"
)

// DocumentRequestUpdate is the builder for updating DocumentRequest
// entities.
type DocumentRequestUpdate struct {
	config
	predicates []predicate.DocumentRequest
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the DocumentRequestUpdate builder.
func (dru *DocumentRequestUpdate) Where(ps ...predicate.DocumentRequest) *DocumentRequestUpdate {
	dru.predicates = append(dru.predicates, ps...)
	return dru
}

// Limit bounds the update to at most n matched rows.
func (dru *DocumentRequestUpdate) Limit(n int) *DocumentRequestUpdate {
	dru.limit = &n
	return dru
}

func (dru *DocumentRequestUpdate) setField(column string, v any) {
	dru.mutations = append(dru.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (dru *DocumentRequestUpdate) clearField(column string) {
	dru.mutations = append(dru.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetRequestNo sets the "request_no" field.
func (dru *DocumentRequestUpdate) SetRequestNo(s string) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldRequestNo, s)
	return dru
}

// SetUserID sets the "user_id" field.
func (dru *DocumentRequestUpdate) SetUserID(i int) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldUserID, i)
	return dru
}

// AddUserID adds i to the "user_id" field.
func (dru *DocumentRequestUpdate) AddUserID(i int) *DocumentRequestUpdate {
	dru.mutations = append(dru.mutations, func(u *sql.UpdateBuilder) { u.Add(documentrequest.FieldUserID, i) })
	return dru
}

// SetCompanyID sets the "company_id" field.
func (dru *DocumentRequestUpdate) SetCompanyID(i int) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldCompanyID, i)
	return dru
}

// AddCompanyID adds i to the "company_id" field.
func (dru *DocumentRequestUpdate) AddCompanyID(i int) *DocumentRequestUpdate {
	dru.mutations = append(dru.mutations, func(u *sql.UpdateBuilder) { u.Add(documentrequest.FieldCompanyID, i) })
	return dru
}

// SetRequestDate sets the "request_date" field.
func (dru *DocumentRequestUpdate) SetRequestDate(t time.Time) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldRequestDate, t)
	return dru
}

// ClearRequestDate clears the value of the "request_date" field.
func (dru *DocumentRequestUpdate) ClearRequestDate() *DocumentRequestUpdate {
	dru.clearField(documentrequest.FieldRequestDate)
	return dru
}

// SetDocumentType sets the "document_type" field.
func (dru *DocumentRequestUpdate) SetDocumentType(s string) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldDocumentType, s)
	return dru
}

// SetDescription sets the "description" field.
func (dru *DocumentRequestUpdate) SetDescription(s string) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldDescription, s)
	return dru
}

// ClearDescription clears the value of the "description" field.
func (dru *DocumentRequestUpdate) ClearDescription() *DocumentRequestUpdate {
	dru.clearField(documentrequest.FieldDescription)
	return dru
}

// SetStatus sets the "status" field.
func (dru *DocumentRequestUpdate) SetStatus(s string) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldStatus, s)
	return dru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (dru *DocumentRequestUpdate) SetNillableStatus(s *string) *DocumentRequestUpdate {
	if s != nil {
		dru.SetStatus(*s)
	}
	return dru
}

// ClearStatus clears the value of the "status" field.
func (dru *DocumentRequestUpdate) ClearStatus() *DocumentRequestUpdate {
	dru.clearField(documentrequest.FieldStatus)
	return dru
}

// SetPaidStatus sets the "paid_status" field.
func (dru *DocumentRequestUpdate) SetPaidStatus(b bool) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldPaidStatus, b)
	return dru
}

// ClearPaidStatus clears the value of the "paid_status" field.
func (dru *DocumentRequestUpdate) ClearPaidStatus() *DocumentRequestUpdate {
	dru.clearField(documentrequest.FieldPaidStatus)
	return dru
}

// SetUpdatedAt sets the "updated_at" field.
func (dru *DocumentRequestUpdate) SetUpdatedAt(t time.Time) *DocumentRequestUpdate {
	dru.setField(documentrequest.FieldUpdatedAt, t)
	return dru
}

// Save executes the query and returns the number of rows affected.
func (dru *DocumentRequestUpdate) Save(ctx context.Context) (int, error) {
	if len(dru.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(dru.driver.Dialect()).Update(documentrequest.Table)
	for _, m := range dru.mutations {
		m(upd)
	}
	s := sql.Dialect(dru.driver.Dialect()).Select().From(documentrequest.Table)
	for _, p := range dru.predicates {
		p(s)
	}
	switch {
	case dru.limit != nil:
		upd.Where(limitedIDs(dru.driver.Dialect(), documentrequest.Table, s.P(), *dru.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, dru.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (dru *DocumentRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := dru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dru *DocumentRequestUpdate) Exec(ctx context.Context) error {
	_, err := dru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dru *DocumentRequestUpdate) ExecX(ctx context.Context) {
	if err := dru.Exec(ctx); err != nil {
		panic(err)
	}
}

// DocumentRequestUpdateOne is the builder for updating a single
// DocumentRequest entity.
type DocumentRequestUpdateOne struct {
	config
	id                   int
	mutations            []func(*sql.UpdateBuilder)
	addSampleLists       []*SampleListCreate
	connectSampleListIDs []int
	removeSampleListIDs  []int
	clearSampleLists     bool
}

func (druo *DocumentRequestUpdateOne) setField(column string, v any) {
	druo.mutations = append(druo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (druo *DocumentRequestUpdateOne) clearField(column string) {
	druo.mutations = append(druo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetRequestNo sets the "request_no" field.
func (druo *DocumentRequestUpdateOne) SetRequestNo(s string) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldRequestNo, s)
	return druo
}

// SetUserID sets the "user_id" field.
func (druo *DocumentRequestUpdateOne) SetUserID(i int) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldUserID, i)
	return druo
}

// AddUserID adds i to the "user_id" field.
func (druo *DocumentRequestUpdateOne) AddUserID(i int) *DocumentRequestUpdateOne {
	druo.mutations = append(druo.mutations, func(u *sql.UpdateBuilder) { u.Add(documentrequest.FieldUserID, i) })
	return druo
}

// SetCompanyID sets the "company_id" field.
func (druo *DocumentRequestUpdateOne) SetCompanyID(i int) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldCompanyID, i)
	return druo
}

// AddCompanyID adds i to the "company_id" field.
func (druo *DocumentRequestUpdateOne) AddCompanyID(i int) *DocumentRequestUpdateOne {
	druo.mutations = append(druo.mutations, func(u *sql.UpdateBuilder) { u.Add(documentrequest.FieldCompanyID, i) })
	return druo
}

// SetRequestDate sets the "request_date" field.
func (druo *DocumentRequestUpdateOne) SetRequestDate(t time.Time) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldRequestDate, t)
	return druo
}

// ClearRequestDate clears the value of the "request_date" field.
func (druo *DocumentRequestUpdateOne) ClearRequestDate() *DocumentRequestUpdateOne {
	druo.clearField(documentrequest.FieldRequestDate)
	return druo
}

// SetDocumentType sets the "document_type" field.
func (druo *DocumentRequestUpdateOne) SetDocumentType(s string) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldDocumentType, s)
	return druo
}

// SetDescription sets the "description" field.
func (druo *DocumentRequestUpdateOne) SetDescription(s string) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldDescription, s)
	return druo
}

// ClearDescription clears the value of the "description" field.
func (druo *DocumentRequestUpdateOne) ClearDescription() *DocumentRequestUpdateOne {
	druo.clearField(documentrequest.FieldDescription)
	return druo
}

// SetStatus sets the "status" field.
func (druo *DocumentRequestUpdateOne) SetStatus(s string) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldStatus, s)
	return druo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (druo *DocumentRequestUpdateOne) SetNillableStatus(s *string) *DocumentRequestUpdateOne {
	if s != nil {
		druo.SetStatus(*s)
	}
	return druo
}

// ClearStatus clears the value of the "status" field.
func (druo *DocumentRequestUpdateOne) ClearStatus() *DocumentRequestUpdateOne {
	druo.clearField(documentrequest.FieldStatus)
	return druo
}

// SetPaidStatus sets the "paid_status" field.
func (druo *DocumentRequestUpdateOne) SetPaidStatus(b bool) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldPaidStatus, b)
	return druo
}

// ClearPaidStatus clears the value of the "paid_status" field.
func (druo *DocumentRequestUpdateOne) ClearPaidStatus() *DocumentRequestUpdateOne {
	druo.clearField(documentrequest.FieldPaidStatus)
	return druo
}

// SetUpdatedAt sets the "updated_at" field.
func (druo *DocumentRequestUpdateOne) SetUpdatedAt(t time.Time) *DocumentRequestUpdateOne {
	druo.setField(documentrequest.FieldUpdatedAt, t)
	return druo
}

// AddSampleLists creates the given sample rows under the request, in the
// same transaction as the update itself. A child builder may carry its own
// OnConflict action.
func (druo *DocumentRequestUpdateOne) AddSampleLists(builders ...*SampleListCreate) *DocumentRequestUpdateOne {
	druo.addSampleLists = append(druo.addSampleLists, builders...)
	return druo
}

// ConnectSampleListIDs attaches existing sample rows to the request by id,
// in the same transaction as the update itself.
func (druo *DocumentRequestUpdateOne) ConnectSampleListIDs(ids ...int) *DocumentRequestUpdateOne {
	druo.connectSampleListIDs = append(druo.connectSampleListIDs, ids...)
	return druo
}

// RemoveSampleListIDs removes the given sample rows from the request. The
// edge is required on the sample side, so removal deletes the rows.
func (druo *DocumentRequestUpdateOne) RemoveSampleListIDs(ids ...int) *DocumentRequestUpdateOne {
	druo.removeSampleListIDs = append(druo.removeSampleListIDs, ids...)
	return druo
}

// ClearSampleLists deletes all sample rows of the request.
func (druo *DocumentRequestUpdateOne) ClearSampleLists() *DocumentRequestUpdateOne {
	druo.clearSampleLists = true
	return druo
}

func (druo *DocumentRequestUpdateOne) hasEdges() bool {
	return len(druo.addSampleLists) > 0 ||
		len(druo.connectSampleListIDs) > 0 ||
		len(druo.removeSampleListIDs) > 0 ||
		druo.clearSampleLists
}

func (druo *DocumentRequestUpdateOne) exec(ctx context.Context, drv dialect.Driver) error {
	if len(druo.mutations) == 0 {
		return nil
	}
	upd := sql.Dialect(drv.Dialect()).Update(documentrequest.Table)
	for _, m := range druo.mutations {
		m(upd)
	}
	upd.Where(sql.EQ(documentrequest.FieldID, druo.id))
	query, args := upd.Query()
	_, err := execAffected(ctx, drv, query, args)
	return err
}

// saveEdges applies the nested sample operations keyed on the request_no
// business key: clear, then targeted removals, then nested creates and
// connects.
func (druo *DocumentRequestUpdateOne) saveEdges(ctx context.Context, txc config, requestNo string) error {
	if druo.clearSampleLists {
		if _, err := deleteChildren(ctx, txc.driver, samplelist.Table, samplelist.FieldRequestNo, requestNo, nil); err != nil {
			return err
		}
	}
	if len(druo.removeSampleListIDs) > 0 {
		n, err := deleteChildren(ctx, txc.driver, samplelist.Table, samplelist.FieldRequestNo, requestNo, druo.removeSampleListIDs)
		if err != nil {
			return err
		}
		if n != len(druo.removeSampleListIDs) {
			return &NotFoundError{samplelist.Label}
		}
	}
	for _, slc := range druo.addSampleLists {
		slc.config = txc
		slc.SetRequestNo(requestNo)
		if _, err := slc.Save(ctx); err != nil {
			return err
		}
	}
	if len(druo.connectSampleListIDs) > 0 {
		n, err := connectByIDs(ctx, txc.driver, samplelist.Table, samplelist.FieldRequestNo, requestNo, druo.connectSampleListIDs)
		if err != nil {
			return err
		}
		if n != len(druo.connectSampleListIDs) {
			return &NotFoundError{samplelist.Label}
		}
	}
	return nil
}

// Save executes the update and returns the updated DocumentRequest entity.
// With nested sample writes, the request and its samples are written in one
// transaction; when the builder is not bound to a running transaction, one
// is opened and committed, or rolled back on failure. Returns a
// *NotFoundError when no row carries the builder id.
func (druo *DocumentRequestUpdateOne) Save(ctx context.Context) (*DocumentRequest, error) {
	if !druo.hasEdges() {
		if err := druo.exec(ctx, druo.driver); err != nil {
			return nil, err
		}
		return NewDocumentRequestClient(druo.config).Get(ctx, druo.id)
	}
	var node *DocumentRequest
	if err := withTx(ctx, druo.config, func(txc config) error {
		if err := druo.exec(ctx, txc.driver); err != nil {
			return err
		}
		n, err := NewDocumentRequestClient(txc).Get(ctx, druo.id)
		if err != nil {
			return err
		}
		if err := druo.saveEdges(ctx, txc, n.RequestNo); err != nil {
			return err
		}
		node = n
		return nil
	}); err != nil {
		return nil, err
	}
	node.config = druo.config
	return node, nil
}

// SaveX is like Save, but panics if an error occurs.
func (druo *DocumentRequestUpdateOne) SaveX(ctx context.Context) *DocumentRequest {
	node, err := druo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (druo *DocumentRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := druo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (druo *DocumentRequestUpdateOne) ExecX(ctx context.Context) {
	if err := druo.Exec(ctx); err != nil {
		panic(err)
	}
}
