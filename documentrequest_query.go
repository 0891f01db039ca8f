package labstore

import (
	"context"
	"fmt"

	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/predicate"
	"labstore/samplelist"
)

// DocumentRequestQuery is the builder for querying DocumentRequest entities.
type DocumentRequestQuery struct {
	config
	ctx                 *QueryContext
	order               []documentrequest.OrderOption
	predicates          []predicate.DocumentRequest
	afterID             *int
	withSampleLists     *SampleListQuery
	withSampleListCount bool
}

// Where adds a new predicate for the DocumentRequestQuery builder.
func (drq *DocumentRequestQuery) Where(ps ...predicate.DocumentRequest) *DocumentRequestQuery {
	drq.predicates = append(drq.predicates, ps...)
	return drq
}

// Limit the number of records to be returned by this query.
func (drq *DocumentRequestQuery) Limit(limit int) *DocumentRequestQuery {
	drq.ctx.Limit = &limit
	return drq
}

// Offset to start from.
func (drq *DocumentRequestQuery) Offset(offset int) *DocumentRequestQuery {
	drq.ctx.Offset = &offset
	return drq
}

// Unique configures the query builder to filter duplicate records.
func (drq *DocumentRequestQuery) Unique(unique bool) *DocumentRequestQuery {
	drq.ctx.Unique = &unique
	return drq
}

// Order specifies how the records should be ordered.
func (drq *DocumentRequestQuery) Order(o ...documentrequest.OrderOption) *DocumentRequestQuery {
	drq.order = append(drq.order, o...)
	return drq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set. Use together with
// Limit for keyset pagination on the unique surrogate key.
func (drq *DocumentRequestQuery) AfterID(id int) *DocumentRequestQuery {
	drq.afterID = &id
	return drq
}

// QuerySampleLists chains a query of the sample_lists edge to the requests
// matched by this query. The edge is keyed on the request_no business key.
func (drq *DocumentRequestQuery) QuerySampleLists() *SampleListQuery {
	nos := drq.Clone().filterQuery()
	nos.Select(nos.C(documentrequest.FieldRequestNo))
	slq := NewSampleListClient(drq.config).Query()
	slq.predicates = append(slq.predicates, func(s *sql.Selector) {
		s.Where(sql.InSelect(s.C(samplelist.FieldRequestNo), nos))
	})
	return slq
}

// WithSampleLists tells the query-builder to eager-load the entities
// connected to the "sample_lists" edge. The optional arguments are used to
// configure the query builder of the edge.
func (drq *DocumentRequestQuery) WithSampleLists(opts ...func(*SampleListQuery)) *DocumentRequestQuery {
	query := NewSampleListClient(drq.config).Query()
	for _, opt := range opts {
		opt(query)
	}
	drq.withSampleLists = query
	return drq
}

// WithSampleListCount tells the query-builder to load the row count of the
// "sample_lists" edge, without materializing the rows.
func (drq *DocumentRequestQuery) WithSampleListCount() *DocumentRequestQuery {
	drq.withSampleListCount = true
	return drq
}

// Clone returns a duplicate of the DocumentRequestQuery builder, including
// all associated steps. It can be used to prepare common query builders and
// use them differently after the clone is made.
func (drq *DocumentRequestQuery) Clone() *DocumentRequestQuery {
	if drq == nil {
		return nil
	}
	return &DocumentRequestQuery{
		config:              drq.config,
		ctx:                 drq.ctx.clone(),
		order:               append([]documentrequest.OrderOption{}, drq.order...),
		predicates:          append([]predicate.DocumentRequest{}, drq.predicates...),
		afterID:             drq.afterID,
		withSampleLists:     drq.withSampleLists.Clone(),
		withSampleListCount: drq.withSampleListCount,
	}
}

// First returns the first DocumentRequest entity from the query.
// Returns a *NotFoundError when no DocumentRequest was found.
func (drq *DocumentRequestQuery) First(ctx context.Context) (*DocumentRequest, error) {
	nodes, err := drq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (drq *DocumentRequestQuery) FirstX(ctx context.Context) *DocumentRequest {
	node, err := drq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first DocumentRequest entity from the query, or
// nil without an error when none matches.
func (drq *DocumentRequestQuery) FirstOrNil(ctx context.Context) (*DocumentRequest, error) {
	node, err := drq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single DocumentRequest entity found by the query, ensuring
// it only returns one. Returns a *NotSingularError when more than one
// DocumentRequest entity is found. Returns a *NotFoundError when no
// DocumentRequest entities are found.
func (drq *DocumentRequestQuery) Only(ctx context.Context) (*DocumentRequest, error) {
	nodes, err := drq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentrequest.Label}
	default:
		return nil, &NotSingularError{documentrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (drq *DocumentRequestQuery) OnlyX(ctx context.Context) *DocumentRequest {
	node, err := drq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentRequest ID in the query.
func (drq *DocumentRequestQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := drq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{documentrequest.Label}
	default:
		return 0, &NotSingularError{documentrequest.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (drq *DocumentRequestQuery) OnlyIDX(ctx context.Context) int {
	id, err := drq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentRequests.
func (drq *DocumentRequestQuery) All(ctx context.Context) ([]*DocumentRequest, error) {
	return drq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (drq *DocumentRequestQuery) AllX(ctx context.Context) []*DocumentRequest {
	nodes, err := drq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentRequest IDs.
func (drq *DocumentRequestQuery) IDs(ctx context.Context) ([]int, error) {
	s := drq.sqlQuery()
	s.Select(documentrequest.FieldID)
	rows, err := queryRows(ctx, drq.driver, s)
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
func (drq *DocumentRequestQuery) IDsX(ctx context.Context) []int {
	ids, err := drq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (drq *DocumentRequestQuery) Count(ctx context.Context) (int, error) {
	s := drq.filterQuery()
	expr := "COUNT(*)"
	if drq.ctx.Unique != nil && *drq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(documentrequest.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, drq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (drq *DocumentRequestQuery) CountX(ctx context.Context) int {
	count, err := drq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (drq *DocumentRequestQuery) Exist(ctx context.Context) (bool, error) {
	s := drq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, drq.driver, s)
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
func (drq *DocumentRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := drq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// filterQuery returns a selector holding only the WHERE conditions of the
// query. Used for counting and existence checks.
func (drq *DocumentRequestQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(drq.driver.Dialect()).Select().From(documentrequest.Table)
	for _, p := range drq.predicates {
		p(s)
	}
	return s
}

// sqlQuery returns the full selector of the query: conditions, ordering,
// cursor and pagination.
func (drq *DocumentRequestQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(drq.driver.Dialect()).Select(documentrequest.Columns...).From(documentrequest.Table)
	for _, p := range drq.predicates {
		p(s)
	}
	for _, o := range drq.order {
		o(s)
	}
	if drq.afterID != nil {
		if desc, _ := s.OrderOf(documentrequest.FieldID); desc {
			s.Where(sql.LT(s.C(documentrequest.FieldID), *drq.afterID))
		} else {
			s.Where(sql.GT(s.C(documentrequest.FieldID), *drq.afterID))
		}
	}
	if unique := drq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := drq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := drq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (drq *DocumentRequestQuery) sqlAll(ctx context.Context) ([]*DocumentRequest, error) {
	rows, err := queryRows(ctx, drq.driver, drq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*DocumentRequest
	for rows.Next() {
		node := &DocumentRequest{config: drq.config}
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
	if query := drq.withSampleLists; query != nil {
		if err := drq.loadSampleLists(ctx, query, nodes); err != nil {
			return nil, err
		}
	}
	if drq.withSampleListCount {
		if err := drq.loadSampleListCount(ctx, nodes); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// loadSampleLists fetches the sample rows of all given requests in one
// query and groups them onto their owners by request_no.
func (drq *DocumentRequestQuery) loadSampleLists(ctx context.Context, query *SampleListQuery, nodes []*DocumentRequest) error {
	byNo := make(map[string]*DocumentRequest, len(nodes))
	nos := make([]string, 0, len(nodes))
	for _, node := range nodes {
		byNo[node.RequestNo] = node
		nos = append(nos, node.RequestNo)
		node.Edges.loadedTypes[0] = true
	}
	samples, err := query.Where(samplelist.RequestNo.In(nos...)).All(ctx)
	if err != nil {
		return err
	}
	for _, sl := range samples {
		owner, ok := byNo[sl.RequestNo]
		if !ok {
			return fmt.Errorf(`labstore: unexpected referenced foreign-key "request_no" returned %v`, sl.RequestNo)
		}
		owner.Edges.SampleLists = append(owner.Edges.SampleLists, sl)
	}
	return nil
}

// loadSampleListCount fetches the sample row counts of all given requests
// in one grouped query, without materializing the rows.
func (drq *DocumentRequestQuery) loadSampleListCount(ctx context.Context, nodes []*DocumentRequest) error {
	byNo := make(map[string]*DocumentRequest, len(nodes))
	nos := make([]any, 0, len(nodes))
	for _, node := range nodes {
		byNo[node.RequestNo] = node
		zero := 0
		node.Edges.SampleListCount = &zero
		nos = append(nos, node.RequestNo)
	}
	s := sql.Dialect(drq.driver.Dialect()).
		Select(documentrequest.SampleListsColumn, "COUNT(*)").
		From(documentrequest.SampleListsTable).
		Where(sql.In(documentrequest.SampleListsColumn, nos...)).
		GroupBy(documentrequest.SampleListsColumn)
	rows, err := queryRows(ctx, drq.driver, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			requestNo string
			count     int
		)
		if err := rows.Scan(&requestNo, &count); err != nil {
			return err
		}
		if owner, ok := byNo[requestNo]; ok {
			*owner.Edges.SampleListCount = count
		}
	}
	return rows.Err()
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min,
// sum.
//
// Example:
//
//	var v []struct {
//		Status string `json:"status,omitempty"`
//		Count  int    `json:"count,omitempty"`
//	}
//
//	client.DocumentRequest.Query().
//		GroupBy(documentrequest.FieldStatus).
//		Aggregate(labstore.Count()).
//		Scan(ctx, &v)
func (drq *DocumentRequestQuery) GroupBy(field string, fields ...string) *DocumentRequestGroupBy {
	return &DocumentRequestGroupBy{
		build: drq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
func (drq *DocumentRequestQuery) Select(fields ...string) *DocumentRequestSelect {
	return &DocumentRequestSelect{build: drq, flds: fields}
}

// Aggregate returns a DocumentRequestSelect configured with the given
// aggregations.
func (drq *DocumentRequestQuery) Aggregate(fns ...AggregateFunc) *DocumentRequestSelect {
	return drq.Select().Aggregate(fns...)
}

// DocumentRequestGroupBy is the group-by builder for DocumentRequest
// entities.
type DocumentRequestGroupBy struct {
	build  *DocumentRequestQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.DocumentRequest
	order  []documentrequest.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dgb *DocumentRequestGroupBy) Aggregate(fns ...AggregateFunc) *DocumentRequestGroupBy {
	dgb.fns = append(dgb.fns, fns...)
	return dgb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (dgb *DocumentRequestGroupBy) Having(ps ...predicate.DocumentRequest) *DocumentRequestGroupBy {
	dgb.having = append(dgb.having, ps...)
	return dgb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (dgb *DocumentRequestGroupBy) OrderBy(o ...documentrequest.OrderOption) *DocumentRequestGroupBy {
	dgb.order = append(dgb.order, o...)
	return dgb
}

// Scan applies the group-by query and scans the result into the given value.
func (dgb *DocumentRequestGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range dgb.flds {
		if !documentrequest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := dgb.build.filterQuery()
	if err := groupByScan(ctx, dgb.build.driver, s, groupBySpec{
		fields: dgb.flds,
		fns:    dgb.fns,
		having: func(s *sql.Selector) {
			for _, p := range dgb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range dgb.order {
				o(s)
			}
		},
	}, v); err != nil {
		return err
	}
	return nil
}

// ScanX is like Scan, but panics if an error occurs.
func (dgb *DocumentRequestGroupBy) ScanX(ctx context.Context, v any) {
	if err := dgb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// DocumentRequestSelect is the builder for selecting fields of
// DocumentRequest entities.
type DocumentRequestSelect struct {
	build    *DocumentRequestQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (ds *DocumentRequestSelect) Aggregate(fns ...AggregateFunc) *DocumentRequestSelect {
	ds.fns = append(ds.fns, fns...)
	return ds
}

// Distinct de-duplicates the selected field rows.
func (ds *DocumentRequestSelect) Distinct() *DocumentRequestSelect {
	ds.distinct = true
	return ds
}

// Scan applies the selector query and scans the result into the given value.
func (ds *DocumentRequestSelect) Scan(ctx context.Context, v any) error {
	for _, f := range ds.flds {
		if !documentrequest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := ds.build.sqlQuery()
	return selectScan(ctx, ds.build.driver, s, ds.flds, ds.fns, ds.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (ds *DocumentRequestSelect) ScanX(ctx context.Context, v any) {
	if err := ds.Scan(ctx, v); err != nil {
		panic(err)
	}
}
