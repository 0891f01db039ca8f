package labstore

import (
	"context"
	"fmt"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/user"
	"labstore/workerprofile"
)

// WorkerProfileQuery is the builder for querying WorkerProfile entities.
type WorkerProfileQuery struct {
	config
	ctx        *QueryContext
	order      []workerprofile.OrderOption
	predicates []predicate.WorkerProfile
	afterID    *int
	withUser   *UserQuery
}

// Where adds a new predicate for the WorkerProfileQuery builder.
func (wq *WorkerProfileQuery) Where(ps ...predicate.WorkerProfile) *WorkerProfileQuery {
	wq.predicates = append(wq.predicates, ps...)
	return wq
}

// Limit the number of records to be returned by this query.
func (wq *WorkerProfileQuery) Limit(limit int) *WorkerProfileQuery {
	wq.ctx.Limit = &limit
	return wq
}

// Offset to start from.
func (wq *WorkerProfileQuery) Offset(offset int) *WorkerProfileQuery {
	wq.ctx.Offset = &offset
	return wq
}

// Unique configures the query builder to filter duplicate records.
func (wq *WorkerProfileQuery) Unique(unique bool) *WorkerProfileQuery {
	wq.ctx.Unique = &unique
	return wq
}

// Order specifies how the records should be ordered.
func (wq *WorkerProfileQuery) Order(o ...workerprofile.OrderOption) *WorkerProfileQuery {
	wq.order = append(wq.order, o...)
	return wq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set. Use together with
// Limit for keyset pagination on the unique surrogate key.
func (wq *WorkerProfileQuery) AfterID(id int) *WorkerProfileQuery {
	wq.afterID = &id
	return wq
}

// QueryUser chains a query of the user edge to the worker profiles matched
// by this query.
func (wq *WorkerProfileQuery) QueryUser() *UserQuery {
	ids := wq.Clone().filterQuery()
	ids.Select(ids.C(workerprofile.FieldUserID))
	uq := NewUserClient(wq.config).Query()
	uq.predicates = append(uq.predicates, func(s *sql.Selector) {
		s.Where(sql.InSelect(s.C(user.FieldID), ids))
	})
	return uq
}

// WithUser tells the query-builder to eager-load the entities connected to
// the "user" edge. The optional arguments are used to configure the query
// builder of the edge.
func (wq *WorkerProfileQuery) WithUser(opts ...func(*UserQuery)) *WorkerProfileQuery {
	query := NewUserClient(wq.config).Query()
	for _, opt := range opts {
		opt(query)
	}
	wq.withUser = query
	return wq
}

// Clone returns a duplicate of the WorkerProfileQuery builder, including all
// associated steps. It can be used to prepare common query builders and use
// them differently after the clone is made.
func (wq *WorkerProfileQuery) Clone() *WorkerProfileQuery {
	if wq == nil {
		return nil
	}
	return &WorkerProfileQuery{
		config:     wq.config,
		ctx:        wq.ctx.clone(),
		order:      append([]workerprofile.OrderOption{}, wq.order...),
		predicates: append([]predicate.WorkerProfile{}, wq.predicates...),
		afterID:    wq.afterID,
		withUser:   wq.withUser.Clone(),
	}
}

// First returns the first WorkerProfile entity from the query.
// Returns a *NotFoundError when no WorkerProfile was found.
func (wq *WorkerProfileQuery) First(ctx context.Context) (*WorkerProfile, error) {
	nodes, err := wq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workerprofile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wq *WorkerProfileQuery) FirstX(ctx context.Context) *WorkerProfile {
	node, err := wq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first WorkerProfile entity from the query, or nil
// without an error when none matches.
func (wq *WorkerProfileQuery) FirstOrNil(ctx context.Context) (*WorkerProfile, error) {
	node, err := wq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single WorkerProfile entity found by the query, ensuring
// it only returns one. Returns a *NotSingularError when more than one
// WorkerProfile entity is found. Returns a *NotFoundError when no
// WorkerProfile entities are found.
func (wq *WorkerProfileQuery) Only(ctx context.Context) (*WorkerProfile, error) {
	nodes, err := wq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workerprofile.Label}
	default:
		return nil, &NotSingularError{workerprofile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wq *WorkerProfileQuery) OnlyX(ctx context.Context) *WorkerProfile {
	node, err := wq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkerProfile ID in the query.
func (wq *WorkerProfileQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := wq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{workerprofile.Label}
	default:
		return 0, &NotSingularError{workerprofile.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wq *WorkerProfileQuery) OnlyIDX(ctx context.Context) int {
	id, err := wq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkerProfiles.
func (wq *WorkerProfileQuery) All(ctx context.Context) ([]*WorkerProfile, error) {
	return wq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (wq *WorkerProfileQuery) AllX(ctx context.Context) []*WorkerProfile {
	nodes, err := wq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkerProfile IDs.
func (wq *WorkerProfileQuery) IDs(ctx context.Context) ([]int, error) {
	s := wq.sqlQuery()
	s.Select(workerprofile.FieldID)
	rows, err := queryRows(ctx, wq.driver, s)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int
	if err := sql.ScanSlice(rows, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wq *WorkerProfileQuery) IDsX(ctx context.Context) []int {
	ids, err := wq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wq *WorkerProfileQuery) Count(ctx context.Context) (int, error) {
	s := wq.filterQuery()
	expr := "COUNT(*)"
	if wq.ctx.Unique != nil && *wq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(workerprofile.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, wq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (wq *WorkerProfileQuery) CountX(ctx context.Context) int {
	count, err := wq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wq *WorkerProfileQuery) Exist(ctx context.Context) (bool, error) {
	s := wq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, wq.driver, s)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	exist := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return exist, nil
}

// ExistX is like Exist, but panics if an error occurs.
func (wq *WorkerProfileQuery) ExistX(ctx context.Context) bool {
	exist, err := wq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// filterQuery returns a selector holding only the WHERE conditions of the
// query. Used for counting and existence checks.
func (wq *WorkerProfileQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(wq.driver.Dialect()).Select().From(workerprofile.Table)
	for _, p := range wq.predicates {
		p(s)
	}
	return s
}

// sqlQuery returns the full selector of the query: conditions, ordering,
// cursor and pagination.
func (wq *WorkerProfileQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(wq.driver.Dialect()).Select(workerprofile.Columns...).From(workerprofile.Table)
	for _, p := range wq.predicates {
		p(s)
	}
	for _, o := range wq.order {
		o(s)
	}
	if wq.afterID != nil {
		if desc, _ := s.OrderOf(workerprofile.FieldID); desc {
			s.Where(sql.LT(s.C(workerprofile.FieldID), *wq.afterID))
		} else {
			s.Where(sql.GT(s.C(workerprofile.FieldID), *wq.afterID))
		}
	}
	if unique := wq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := wq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := wq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (wq *WorkerProfileQuery) sqlAll(ctx context.Context) ([]*WorkerProfile, error) {
	rows, err := queryRows(ctx, wq.driver, wq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*WorkerProfile
	for rows.Next() {
		node := &WorkerProfile{config: wq.config}
		if err := rows.Scan(node.scanValues()...); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wq.withUser; query != nil {
		if err := wq.loadUser(ctx, query, nodes); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// loadUser fetches the owning users of all given worker profiles in one
// query and assigns them onto their profiles.
func (wq *WorkerProfileQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*WorkerProfile) error {
	byUserID := make(map[int][]*WorkerProfile, len(nodes))
	ids := make([]int, 0, len(nodes))
	for _, node := range nodes {
		node.Edges.loadedTypes[0] = true
		if _, ok := byUserID[node.UserID]; !ok {
			ids = append(ids, node.UserID)
		}
		byUserID[node.UserID] = append(byUserID[node.UserID], node)
	}
	owners, err := query.Where(user.ID.In(ids...)).All(ctx)
	if err != nil {
		return err
	}
	for _, owner := range owners {
		for _, node := range byUserID[owner.ID] {
			node.Edges.User = owner
		}
	}
	return nil
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min,
// sum.
func (wq *WorkerProfileQuery) GroupBy(field string, fields ...string) *WorkerProfileGroupBy {
	return &WorkerProfileGroupBy{
		build: wq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
func (wq *WorkerProfileQuery) Select(fields ...string) *WorkerProfileSelect {
	return &WorkerProfileSelect{build: wq, flds: fields}
}

// Aggregate returns a WorkerProfileSelect configured with the given
// aggregations.
func (wq *WorkerProfileQuery) Aggregate(fns ...AggregateFunc) *WorkerProfileSelect {
	return wq.Select().Aggregate(fns...)
}

// WorkerProfileGroupBy is the group-by builder for WorkerProfile entities.
type WorkerProfileGroupBy struct {
	build  *WorkerProfileQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.WorkerProfile
	order  []workerprofile.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wgb *WorkerProfileGroupBy) Aggregate(fns ...AggregateFunc) *WorkerProfileGroupBy {
	wgb.fns = append(wgb.fns, fns...)
	return wgb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (wgb *WorkerProfileGroupBy) Having(ps ...predicate.WorkerProfile) *WorkerProfileGroupBy {
	wgb.having = append(wgb.having, ps...)
	return wgb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (wgb *WorkerProfileGroupBy) OrderBy(o ...workerprofile.OrderOption) *WorkerProfileGroupBy {
	wgb.order = append(wgb.order, o...)
	return wgb
}

// Scan applies the group-by query and scans the result into the given value.
func (wgb *WorkerProfileGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range wgb.flds {
		if !workerprofile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := wgb.build.filterQuery()
	if err := groupByScan(ctx, wgb.build.driver, s, groupBySpec{
		fields: wgb.flds,
		fns:    wgb.fns,
		having: func(s *sql.Selector) {
			for _, p := range wgb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range wgb.order {
				o(s)
			}
		},
	}, v); err != nil {
		return err
	}
	return nil
}

// ScanX is like Scan, but panics if an error occurs.
func (wgb *WorkerProfileGroupBy) ScanX(ctx context.Context, v any) {
	if err := wgb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// WorkerProfileSelect is the builder for selecting fields of WorkerProfile
// entities.
type WorkerProfileSelect struct {
	build    *WorkerProfileQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (ws *WorkerProfileSelect) Aggregate(fns ...AggregateFunc) *WorkerProfileSelect {
	ws.fns = append(ws.fns, fns...)
	return ws
}

// Distinct de-duplicates the selected field rows.
func (ws *WorkerProfileSelect) Distinct() *WorkerProfileSelect {
	ws.distinct = true
	return ws
}

// Scan applies the selector query and scans the result into the given value.
func (ws *WorkerProfileSelect) Scan(ctx context.Context, v any) error {
	for _, f := range ws.flds {
		if !workerprofile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := ws.build.sqlQuery()
	return selectScan(ctx, ws.build.driver, s, ws.flds, ws.fns, ws.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (ws *WorkerProfileSelect) ScanX(ctx context.Context, v any) {
	if err := ws.Scan(ctx, v); err != nil {
		panic(err)
	}
}
