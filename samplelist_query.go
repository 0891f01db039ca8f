package labstore

import (
	"context"
	"fmt"

	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/predicate"
	"labstore/samplelist"
)

// SampleListQuery is the builder for querying SampleList entities.
type SampleListQuery struct {
	config
	ctx         *QueryContext
	order       []samplelist.OrderOption
	predicates  []predicate.SampleList
	afterID     *int
	withRequest *DocumentRequestQuery
}

// Where adds a new predicate for the SampleListQuery builder.
func (slq *SampleListQuery) Where(ps ...predicate.SampleList) *SampleListQuery {
	slq.predicates = append(slq.predicates, ps...)
	return slq
}

// Limit the number of records to be returned by this query.
func (slq *SampleListQuery) Limit(limit int) *SampleListQuery {
	slq.ctx.Limit = &limit
	return slq
}

// Offset to start from.
func (slq *SampleListQuery) Offset(offset int) *SampleListQuery {
	slq.ctx.Offset = &offset
	return slq
}

// Unique configures the query builder to filter duplicate records.
func (slq *SampleListQuery) Unique(unique bool) *SampleListQuery {
	slq.ctx.Unique = &unique
	return slq
}

// Order specifies how the records should be ordered.
func (slq *SampleListQuery) Order(o ...samplelist.OrderOption) *SampleListQuery {
	slq.order = append(slq.order, o...)
	return slq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set. Use together with
// Limit for keyset pagination on the unique surrogate key.
func (slq *SampleListQuery) AfterID(id int) *SampleListQuery {
	slq.afterID = &id
	return slq
}

// QueryRequest chains a query of the request edge to the samples matched by
// this query. The edge is keyed on the request_no business key.
func (slq *SampleListQuery) QueryRequest() *DocumentRequestQuery {
	nos := slq.Clone().filterQuery()
	nos.Select(nos.C(samplelist.FieldRequestNo))
	drq := NewDocumentRequestClient(slq.config).Query()
	drq.predicates = append(drq.predicates, func(s *sql.Selector) {
		s.Where(sql.InSelect(s.C(documentrequest.FieldRequestNo), nos))
	})
	return drq
}

// WithRequest tells the query-builder to eager-load the entities connected
// to the "request" edge. The optional arguments are used to configure the
// query builder of the edge.
func (slq *SampleListQuery) WithRequest(opts ...func(*DocumentRequestQuery)) *SampleListQuery {
	query := NewDocumentRequestClient(slq.config).Query()
	for _, opt := range opts {
		opt(query)
	}
	slq.withRequest = query
	return slq
}

// Clone returns a duplicate of the SampleListQuery builder, including all
// associated steps. It can be used to prepare common query builders and use
// them differently after the clone is made.
func (slq *SampleListQuery) Clone() *SampleListQuery {
	if slq == nil {
		return nil
	}
	return &SampleListQuery{
		config:      slq.config,
		ctx:         slq.ctx.clone(),
		order:       append([]samplelist.OrderOption{}, slq.order...),
		predicates:  append([]predicate.SampleList{}, slq.predicates...),
		afterID:     slq.afterID,
		withRequest: slq.withRequest.Clone(),
	}
}

// First returns the first SampleList entity from the query.
// Returns a *NotFoundError when no SampleList was found.
func (slq *SampleListQuery) First(ctx context.Context) (*SampleList, error) {
	nodes, err := slq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{samplelist.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (slq *SampleListQuery) FirstX(ctx context.Context) *SampleList {
	node, err := slq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first SampleList entity from the query, or nil
// without an error when none matches.
func (slq *SampleListQuery) FirstOrNil(ctx context.Context) (*SampleList, error) {
	node, err := slq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single SampleList entity found by the query, ensuring it
// only returns one. Returns a *NotSingularError when more than one
// SampleList entity is found. Returns a *NotFoundError when no SampleList
// entities are found.
func (slq *SampleListQuery) Only(ctx context.Context) (*SampleList, error) {
	nodes, err := slq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{samplelist.Label}
	default:
		return nil, &NotSingularError{samplelist.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (slq *SampleListQuery) OnlyX(ctx context.Context) *SampleList {
	node, err := slq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SampleList ID in the query.
func (slq *SampleListQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := slq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{samplelist.Label}
	default:
		return 0, &NotSingularError{samplelist.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (slq *SampleListQuery) OnlyIDX(ctx context.Context) int {
	id, err := slq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SampleLists.
func (slq *SampleListQuery) All(ctx context.Context) ([]*SampleList, error) {
	return slq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (slq *SampleListQuery) AllX(ctx context.Context) []*SampleList {
	nodes, err := slq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SampleList IDs.
func (slq *SampleListQuery) IDs(ctx context.Context) ([]int, error) {
	s := slq.sqlQuery()
	s.Select(samplelist.FieldID)
	rows, err := queryRows(ctx, slq.driver, s)
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
func (slq *SampleListQuery) IDsX(ctx context.Context) []int {
	ids, err := slq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (slq *SampleListQuery) Count(ctx context.Context) (int, error) {
	s := slq.filterQuery()
	expr := "COUNT(*)"
	if slq.ctx.Unique != nil && *slq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(samplelist.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, slq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (slq *SampleListQuery) CountX(ctx context.Context) int {
	count, err := slq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (slq *SampleListQuery) Exist(ctx context.Context) (bool, error) {
	s := slq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, slq.driver, s)
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
func (slq *SampleListQuery) ExistX(ctx context.Context) bool {
	exist, err := slq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// filterQuery returns a selector holding only the WHERE conditions of the
// query. Used for counting and existence checks.
func (slq *SampleListQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(slq.driver.Dialect()).Select().From(samplelist.Table)
	for _, p := range slq.predicates {
		p(s)
	}
	return s
}

// sqlQuery returns the full selector of the query: conditions, ordering,
// cursor and pagination.
func (slq *SampleListQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(slq.driver.Dialect()).Select(samplelist.Columns...).From(samplelist.Table)
	for _, p := range slq.predicates {
		p(s)
	}
	for _, o := range slq.order {
		o(s)
	}
	if slq.afterID != nil {
		if desc, _ := s.OrderOf(samplelist.FieldID); desc {
			s.Where(sql.LT(s.C(samplelist.FieldID), *slq.afterID))
		} else {
			s.Where(sql.GT(s.C(samplelist.FieldID), *slq.afterID))
		}
	}
	if unique := slq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := slq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := slq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (slq *SampleListQuery) sqlAll(ctx context.Context) ([]*SampleList, error) {
	rows, err := queryRows(ctx, slq.driver, slq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*SampleList
	for rows.Next() {
		node := &SampleList{config: slq.config}
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
	if query := slq.withRequest; query != nil {
		if err := slq.loadRequest(ctx, query, nodes); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// loadRequest fetches the owning requests of all given samples in one
// query and assigns them onto their samples by request_no.
func (slq *SampleListQuery) loadRequest(ctx context.Context, query *DocumentRequestQuery, nodes []*SampleList) error {
	byNo := make(map[string][]*SampleList, len(nodes))
	nos := make([]string, 0, len(nodes))
	for _, node := range nodes {
		node.Edges.loadedTypes[0] = true
		if _, ok := byNo[node.RequestNo]; !ok {
			nos = append(nos, node.RequestNo)
		}
		byNo[node.RequestNo] = append(byNo[node.RequestNo], node)
	}
	owners, err := query.Where(documentrequest.RequestNo.In(nos...)).All(ctx)
	if err != nil {
		return err
	}
	for _, owner := range owners {
		for _, node := range byNo[owner.RequestNo] {
			node.Edges.Request = owner
		}
	}
	return nil
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min,
// sum.
//
// Example:
//
//	var v []struct {
//		AnimalType string `json:"animal_type,omitempty"`
//		Sum        int    `json:"sum,omitempty"`
//	}
//
//	client.SampleList.Query().
//		GroupBy(samplelist.FieldAnimalType).
//		Aggregate(labstore.Sum(samplelist.FieldSampleQty)).
//		Scan(ctx, &v)
func (slq *SampleListQuery) GroupBy(field string, fields ...string) *SampleListGroupBy {
	return &SampleListGroupBy{
		build: slq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
func (slq *SampleListQuery) Select(fields ...string) *SampleListSelect {
	return &SampleListSelect{build: slq, flds: fields}
}

// Aggregate returns a SampleListSelect configured with the given
// aggregations.
func (slq *SampleListQuery) Aggregate(fns ...AggregateFunc) *SampleListSelect {
	return slq.Select().Aggregate(fns...)
}

// SampleListGroupBy is the group-by builder for SampleList entities.
type SampleListGroupBy struct {
	build  *SampleListQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.SampleList
	order  []samplelist.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sgb *SampleListGroupBy) Aggregate(fns ...AggregateFunc) *SampleListGroupBy {
	sgb.fns = append(sgb.fns, fns...)
	return sgb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (sgb *SampleListGroupBy) Having(ps ...predicate.SampleList) *SampleListGroupBy {
	sgb.having = append(sgb.having, ps...)
	return sgb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (sgb *SampleListGroupBy) OrderBy(o ...samplelist.OrderOption) *SampleListGroupBy {
	sgb.order = append(sgb.order, o...)
	return sgb
}

// Scan applies the group-by query and scans the result into the given value.
func (sgb *SampleListGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range sgb.flds {
		if !samplelist.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := sgb.build.filterQuery()
	if err := groupByScan(ctx, sgb.build.driver, s, groupBySpec{
		fields: sgb.flds,
		fns:    sgb.fns,
		having: func(s *sql.Selector) {
			for _, p := range sgb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range sgb.order {
				o(s)
			}
		},
	}, v); err != nil {
		return err
	}
	return nil
}

// ScanX is like Scan, but panics if an error occurs.
func (sgb *SampleListGroupBy) ScanX(ctx context.Context, v any) {
	if err := sgb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// SampleListSelect is the builder for selecting fields of SampleList
// entities.
type SampleListSelect struct {
	build    *SampleListQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (ss *SampleListSelect) Aggregate(fns ...AggregateFunc) *SampleListSelect {
	ss.fns = append(ss.fns, fns...)
	return ss
}

// Distinct de-duplicates the selected field rows.
func (ss *SampleListSelect) Distinct() *SampleListSelect {
	ss.distinct = true
	return ss
}

// Scan applies the selector query and scans the result into the given value.
func (ss *SampleListSelect) Scan(ctx context.Context, v any) error {
	for _, f := range ss.flds {
		if !samplelist.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := ss.build.sqlQuery()
	return selectScan(ctx, ss.build.driver, s, ss.flds, ss.fns, ss.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (ss *SampleListSelect) ScanX(ctx context.Context, v any) {
	if err := ss.Scan(ctx, v); err != nil {
		panic(err)
	}
}
