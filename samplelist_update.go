package labstore

import (
	"context"
	"errors"
	"time"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/samplelist"
)

// SampleListUpdate is the builder for updating SampleList entities.
type SampleListUpdate struct {
	config
	predicates []predicate.SampleList
	limit      *int
	mutations  []func(*sql.UpdateBuilder)
	err        error
}

// Where appends a list predicates to the SampleListUpdate builder.
func (slu *SampleListUpdate) Where(ps ...predicate.SampleList) *SampleListUpdate {
	slu.predicates = append(slu.predicates, ps...)
	return slu
}

// Limit bounds the update to at most n matched rows.
func (slu *SampleListUpdate) Limit(n int) *SampleListUpdate {
	slu.limit = &n
	return slu
}

func (slu *SampleListUpdate) setField(column string, v any) {
	slu.mutations = append(slu.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (slu *SampleListUpdate) clearField(column string) {
	slu.mutations = append(slu.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetRequestNo sets the "request_no" field.
func (slu *SampleListUpdate) SetRequestNo(s string) *SampleListUpdate {
	slu.setField(samplelist.FieldRequestNo, s)
	return slu
}

// SetSentSampleDate sets the "sent_sample_date" field.
func (slu *SampleListUpdate) SetSentSampleDate(t time.Time) *SampleListUpdate {
	slu.setField(samplelist.FieldSentSampleDate, t)
	return slu
}

// ClearSentSampleDate clears the value of the "sent_sample_date" field.
func (slu *SampleListUpdate) ClearSentSampleDate() *SampleListUpdate {
	slu.clearField(samplelist.FieldSentSampleDate)
	return slu
}

// SetAnimalType sets the "animal_type" field.
func (slu *SampleListUpdate) SetAnimalType(s string) *SampleListUpdate {
	slu.setField(samplelist.FieldAnimalType, s)
	return slu
}

// ClearAnimalType clears the value of the "animal_type" field.
func (slu *SampleListUpdate) ClearAnimalType() *SampleListUpdate {
	slu.clearField(samplelist.FieldAnimalType)
	return slu
}

// SetSampleSpecimen sets the "sample_specimen" field.
func (slu *SampleListUpdate) SetSampleSpecimen(s string) *SampleListUpdate {
	slu.setField(samplelist.FieldSampleSpecimen, s)
	return slu
}

// ClearSampleSpecimen clears the value of the "sample_specimen" field.
func (slu *SampleListUpdate) ClearSampleSpecimen() *SampleListUpdate {
	slu.clearField(samplelist.FieldSampleSpecimen)
	return slu
}

// SetPanel sets the "panel" field.
func (slu *SampleListUpdate) SetPanel(s string) *SampleListUpdate {
	slu.setField(samplelist.FieldPanel, s)
	return slu
}

// ClearPanel clears the value of the "panel" field.
func (slu *SampleListUpdate) ClearPanel() *SampleListUpdate {
	slu.clearField(samplelist.FieldPanel)
	return slu
}

// SetMethod sets the "method" field.
func (slu *SampleListUpdate) SetMethod(s string) *SampleListUpdate {
	slu.setField(samplelist.FieldMethod, s)
	return slu
}

// ClearMethod clears the value of the "method" field.
func (slu *SampleListUpdate) ClearMethod() *SampleListUpdate {
	slu.clearField(samplelist.FieldMethod)
	return slu
}

// SetSampleQty sets the "sample_qty" field.
func (slu *SampleListUpdate) SetSampleQty(i int) *SampleListUpdate {
	slu.setField(samplelist.FieldSampleQty, i)
	return slu
}

// AddSampleQty adds i to the "sample_qty" field.
func (slu *SampleListUpdate) AddSampleQty(i int) *SampleListUpdate {
	slu.mutations = append(slu.mutations, func(u *sql.UpdateBuilder) { u.Add(samplelist.FieldSampleQty, i) })
	return slu
}

// MulSampleQty multiplies the "sample_qty" field by i.
func (slu *SampleListUpdate) MulSampleQty(i int) *SampleListUpdate {
	slu.mutations = append(slu.mutations, func(u *sql.UpdateBuilder) { u.Mul(samplelist.FieldSampleQty, i) })
	return slu
}

// DivSampleQty divides the "sample_qty" field by i. A zero divisor is
// rejected at Save time with a *ValidationError.
func (slu *SampleListUpdate) DivSampleQty(i int) *SampleListUpdate {
	if i == 0 {
		slu.err = &ValidationError{Name: samplelist.FieldSampleQty, err: errors.New(`labstore: division of "SampleList.sample_qty" by zero`)}
		return slu
	}
	slu.mutations = append(slu.mutations, func(u *sql.UpdateBuilder) { u.Div(samplelist.FieldSampleQty, i) })
	return slu
}

// ClearSampleQty clears the value of the "sample_qty" field.
func (slu *SampleListUpdate) ClearSampleQty() *SampleListUpdate {
	slu.clearField(samplelist.FieldSampleQty)
	return slu
}

// SetIsDeleted sets the "is_deleted" field.
func (slu *SampleListUpdate) SetIsDeleted(b bool) *SampleListUpdate {
	slu.setField(samplelist.FieldIsDeleted, b)
	return slu
}

// SetUpdatedAt sets the "updated_at" field.
func (slu *SampleListUpdate) SetUpdatedAt(t time.Time) *SampleListUpdate {
	slu.setField(samplelist.FieldUpdatedAt, t)
	return slu
}

// Save executes the query and returns the number of rows affected.
func (slu *SampleListUpdate) Save(ctx context.Context) (int, error) {
	if slu.err != nil {
		return 0, slu.err
	}
	if len(slu.mutations) == 0 {
		return 0, nil
	}
	upd := sql.Dialect(slu.driver.Dialect()).Update(samplelist.Table)
	for _, m := range slu.mutations {
		m(upd)
	}
	s := sql.Dialect(slu.driver.Dialect()).Select().From(samplelist.Table)
	for _, p := range slu.predicates {
		p(s)
	}
	switch {
	case slu.limit != nil:
		upd.Where(limitedIDs(slu.driver.Dialect(), samplelist.Table, s.P(), *slu.limit))
	case s.P() != nil:
		upd.Where(s.P())
	}
	query, args := upd.Query()
	return execAffected(ctx, slu.driver, query, args)
}

// SaveX is like Save, but panics if an error occurs.
func (slu *SampleListUpdate) SaveX(ctx context.Context) int {
	affected, err := slu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (slu *SampleListUpdate) Exec(ctx context.Context) error {
	_, err := slu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slu *SampleListUpdate) ExecX(ctx context.Context) {
	if err := slu.Exec(ctx); err != nil {
		panic(err)
	}
}

// SampleListUpdateOne is the builder for updating a single SampleList
// entity.
type SampleListUpdateOne struct {
	config
	id        int
	mutations []func(*sql.UpdateBuilder)
	err       error
}

func (sluo *SampleListUpdateOne) setField(column string, v any) {
	sluo.mutations = append(sluo.mutations, func(u *sql.UpdateBuilder) { u.Set(column, v) })
}

func (sluo *SampleListUpdateOne) clearField(column string) {
	sluo.mutations = append(sluo.mutations, func(u *sql.UpdateBuilder) { u.SetNull(column) })
}

// SetRequestNo sets the "request_no" field.
func (sluo *SampleListUpdateOne) SetRequestNo(s string) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldRequestNo, s)
	return sluo
}

// SetSentSampleDate sets the "sent_sample_date" field.
func (sluo *SampleListUpdateOne) SetSentSampleDate(t time.Time) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldSentSampleDate, t)
	return sluo
}

// ClearSentSampleDate clears the value of the "sent_sample_date" field.
func (sluo *SampleListUpdateOne) ClearSentSampleDate() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldSentSampleDate)
	return sluo
}

// SetAnimalType sets the "animal_type" field.
func (sluo *SampleListUpdateOne) SetAnimalType(s string) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldAnimalType, s)
	return sluo
}

// ClearAnimalType clears the value of the "animal_type" field.
func (sluo *SampleListUpdateOne) ClearAnimalType() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldAnimalType)
	return sluo
}

// SetSampleSpecimen sets the "sample_specimen" field.
func (sluo *SampleListUpdateOne) SetSampleSpecimen(s string) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldSampleSpecimen, s)
	return sluo
}

// ClearSampleSpecimen clears the value of the "sample_specimen" field.
func (sluo *SampleListUpdateOne) ClearSampleSpecimen() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldSampleSpecimen)
	return sluo
}

// SetPanel sets the "panel" field.
func (sluo *SampleListUpdateOne) SetPanel(s string) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldPanel, s)
	return sluo
}

// ClearPanel clears the value of the "panel" field.
func (sluo *SampleListUpdateOne) ClearPanel() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldPanel)
	return sluo
}

// SetMethod sets the "method" field.
func (sluo *SampleListUpdateOne) SetMethod(s string) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldMethod, s)
	return sluo
}

// ClearMethod clears the value of the "method" field.
func (sluo *SampleListUpdateOne) ClearMethod() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldMethod)
	return sluo
}

// SetSampleQty sets the "sample_qty" field.
func (sluo *SampleListUpdateOne) SetSampleQty(i int) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldSampleQty, i)
	return sluo
}

// AddSampleQty adds i to the "sample_qty" field.
func (sluo *SampleListUpdateOne) AddSampleQty(i int) *SampleListUpdateOne {
	sluo.mutations = append(sluo.mutations, func(u *sql.UpdateBuilder) { u.Add(samplelist.FieldSampleQty, i) })
	return sluo
}

// MulSampleQty multiplies the "sample_qty" field by i.
func (sluo *SampleListUpdateOne) MulSampleQty(i int) *SampleListUpdateOne {
	sluo.mutations = append(sluo.mutations, func(u *sql.UpdateBuilder) { u.Mul(samplelist.FieldSampleQty, i) })
	return sluo
}

// DivSampleQty divides the "sample_qty" field by i. A zero divisor is
// rejected at Save time with a *ValidationError.
func (sluo *SampleListUpdateOne) DivSampleQty(i int) *SampleListUpdateOne {
	if i == 0 {
		sluo.err = &ValidationError{Name: samplelist.FieldSampleQty, err: errors.New(`labstore: division of "SampleList.sample_qty" by zero`)}
		return sluo
	}
	sluo.mutations = append(sluo.mutations, func(u *sql.UpdateBuilder) { u.Div(samplelist.FieldSampleQty, i) })
	return sluo
}

// ClearSampleQty clears the value of the "sample_qty" field.
func (sluo *SampleListUpdateOne) ClearSampleQty() *SampleListUpdateOne {
	sluo.clearField(samplelist.FieldSampleQty)
	return sluo
}

// SetIsDeleted sets the "is_deleted" field.
func (sluo *SampleListUpdateOne) SetIsDeleted(b bool) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldIsDeleted, b)
	return sluo
}

// SetUpdatedAt sets the "updated_at" field.
func (sluo *SampleListUpdateOne) SetUpdatedAt(t time.Time) *SampleListUpdateOne {
	sluo.setField(samplelist.FieldUpdatedAt, t)
	return sluo
}

// Save executes the update and returns the updated SampleList entity.
// Returns a *NotFoundError when no row carries the builder id.
func (sluo *SampleListUpdateOne) Save(ctx context.Context) (*SampleList, error) {
	if sluo.err != nil {
		return nil, sluo.err
	}
	if len(sluo.mutations) > 0 {
		upd := sql.Dialect(sluo.driver.Dialect()).Update(samplelist.Table)
		for _, m := range sluo.mutations {
			m(upd)
		}
		upd.Where(sql.EQ(samplelist.FieldID, sluo.id))
		query, args := upd.Query()
		if _, err := execAffected(ctx, sluo.driver, query, args); err != nil {
			return nil, err
		}
	}
	return NewSampleListClient(sluo.config).Get(ctx, sluo.id)
}

// SaveX is like Save, but panics if an error occurs.
func (sluo *SampleListUpdateOne) SaveX(ctx context.Context) *SampleList {
	node, err := sluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query without reading the row back.
func (sluo *SampleListUpdateOne) Exec(ctx context.Context) error {
	_, err := sluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sluo *SampleListUpdateOne) ExecX(ctx context.Context) {
	if err := sluo.Exec(ctx); err != nil {
		panic(err)
	}
}
