package labstore

import (
	"context"
	"fmt"

	"labstore/company"
	"labstore/dialect/sql"
	"labstore/predicate"
)

// CompanyQuery is the builder for querying Company entities.
type CompanyQuery struct {
	config
	ctx        *QueryContext
	order      []company.OrderOption
	predicates []predicate.Company
	afterID    *int
}

// Where adds a new predicate for the CompanyQuery builder.
func (cq *CompanyQuery) Where(ps ...predicate.Company) *CompanyQuery {
	cq.predicates = append(cq.predicates, ps...)
	return cq
}

// Limit the number of records to be returned by this query.
func (cq *CompanyQuery) Limit(limit int) *CompanyQuery {
	cq.ctx.Limit = &limit
	return cq
}

// Offset to start from.
func (cq *CompanyQuery) Offset(offset int) *CompanyQuery {
	cq.ctx.Offset = &offset
	return cq
}

// Unique configures the query builder to filter duplicate records.
func (cq *CompanyQuery) Unique(unique bool) *CompanyQuery {
	cq.ctx.Unique = &unique
	return cq
}

// Order specifies how the records should be ordered.
func (cq *CompanyQuery) Order(o ...company.OrderOption) *CompanyQuery {
	cq.order = append(cq.order, o...)
	return cq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set. Use together with
// Limit for keyset pagination on the unique surrogate key.
func (cq *CompanyQuery) AfterID(id int) *CompanyQuery {
	cq.afterID = &id
	return cq
}

// Clone returns a duplicate of the CompanyQuery builder, including all
// associated steps. It can be used to prepare common query builders and use
// them differently after the clone is made.
func (cq *CompanyQuery) Clone() *CompanyQuery {
	if cq == nil {
		return nil
	}
	return &CompanyQuery{
		config:     cq.config,
		ctx:        cq.ctx.clone(),
		order:      append([]company.OrderOption{}, cq.order...),
		predicates: append([]predicate.Company{}, cq.predicates...),
		afterID:    cq.afterID,
	}
}

// First returns the first Company entity from the query.
// Returns a *NotFoundError when no Company was found.
func (cq *CompanyQuery) First(ctx context.Context) (*Company, error) {
	nodes, err := cq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{company.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cq *CompanyQuery) FirstX(ctx context.Context) *Company {
	node, err := cq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first Company entity from the query, or nil
// without an error when none matches.
func (cq *CompanyQuery) FirstOrNil(ctx context.Context) (*Company, error) {
	node, err := cq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single Company entity found by the query, ensuring it only
// returns one. Returns a *NotSingularError when more than one Company entity
// is found. Returns a *NotFoundError when no Company entities are found.
func (cq *CompanyQuery) Only(ctx context.Context) (*Company, error) {
	nodes, err := cq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{company.Label}
	default:
		return nil, &NotSingularError{company.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cq *CompanyQuery) OnlyX(ctx context.Context) *Company {
	node, err := cq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Company ID in the query.
func (cq *CompanyQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := cq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{company.Label}
	default:
		return 0, &NotSingularError{company.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cq *CompanyQuery) OnlyIDX(ctx context.Context) int {
	id, err := cq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Companies.
func (cq *CompanyQuery) All(ctx context.Context) ([]*Company, error) {
	return cq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (cq *CompanyQuery) AllX(ctx context.Context) []*Company {
	nodes, err := cq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Company IDs.
func (cq *CompanyQuery) IDs(ctx context.Context) ([]int, error) {
	s := cq.sqlQuery()
	s.Select(company.FieldID)
	rows, err := queryRows(ctx, cq.driver, s)
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
func (cq *CompanyQuery) IDsX(ctx context.Context) []int {
	ids, err := cq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cq *CompanyQuery) Count(ctx context.Context) (int, error) {
	s := cq.filterQuery()
	expr := "COUNT(*)"
	if cq.ctx.Unique != nil && *cq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(company.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, cq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (cq *CompanyQuery) CountX(ctx context.Context) int {
	count, err := cq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cq *CompanyQuery) Exist(ctx context.Context) (bool, error) {
	s := cq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, cq.driver, s)
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
func (cq *CompanyQuery) ExistX(ctx context.Context) bool {
	exist, err := cq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// filterQuery returns a selector holding only the WHERE conditions of the
// query. Used for counting and existence checks.
func (cq *CompanyQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(cq.driver.Dialect()).Select().From(company.Table)
	for _, p := range cq.predicates {
		p(s)
	}
	return s
}

// sqlQuery returns the full selector of the query: conditions, ordering,
// cursor and pagination.
func (cq *CompanyQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(cq.driver.Dialect()).Select(company.Columns...).From(company.Table)
	for _, p := range cq.predicates {
		p(s)
	}
	for _, o := range cq.order {
		o(s)
	}
	if cq.afterID != nil {
		if desc, _ := s.OrderOf(company.FieldID); desc {
			s.Where(sql.LT(s.C(company.FieldID), *cq.afterID))
		} else {
			s.Where(sql.GT(s.C(company.FieldID), *cq.afterID))
		}
	}
	if unique := cq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := cq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := cq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (cq *CompanyQuery) sqlAll(ctx context.Context) ([]*Company, error) {
	rows, err := queryRows(ctx, cq.driver, cq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*Company
	for rows.Next() {
		node := &Company{config: cq.config}
		if err := rows.Scan(node.scanValues()...); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min,
// sum.
//
// Example:
//
//	var v []struct {
//		Province string `json:"province,omitempty"`
//		Count    int    `json:"count,omitempty"`
//	}
//
//	client.Company.Query().
//		GroupBy(company.FieldProvince).
//		Aggregate(labstore.Count()).
//		Scan(ctx, &v)
func (cq *CompanyQuery) GroupBy(field string, fields ...string) *CompanyGroupBy {
	return &CompanyGroupBy{
		build: cq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
//
// Example:
//
//	var v []struct {
//		Province string `json:"province,omitempty"`
//	}
//
//	client.Company.Query().
//		Select(company.FieldProvince).
//		Scan(ctx, &v)
func (cq *CompanyQuery) Select(fields ...string) *CompanySelect {
	return &CompanySelect{build: cq, flds: fields}
}

// Aggregate returns a CompanySelect configured with the given aggregations.
func (cq *CompanyQuery) Aggregate(fns ...AggregateFunc) *CompanySelect {
	return cq.Select().Aggregate(fns...)
}

// CompanyGroupBy is the group-by builder for Company entities.
type CompanyGroupBy struct {
	build  *CompanyQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.Company
	order  []company.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cgb *CompanyGroupBy) Aggregate(fns ...AggregateFunc) *CompanyGroupBy {
	cgb.fns = append(cgb.fns, fns...)
	return cgb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (cgb *CompanyGroupBy) Having(ps ...predicate.Company) *CompanyGroupBy {
	cgb.having = append(cgb.having, ps...)
	return cgb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (cgb *CompanyGroupBy) OrderBy(o ...company.OrderOption) *CompanyGroupBy {
	cgb.order = append(cgb.order, o...)
	return cgb
}

// Scan applies the group-by query and scans the result into the given value.
func (cgb *CompanyGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range cgb.flds {
		if !company.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := cgb.build.filterQuery()
	if err := groupByScan(ctx, cgb.build.driver, s, groupBySpec{
		fields: cgb.flds,
		fns:    cgb.fns,
		having: func(s *sql.Selector) {
			for _, p := range cgb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range cgb.order {
				o(s)
			}
		},
	}, v); err != nil {
		return err
	}
	return nil
}

// ScanX is like Scan, but panics if an error occurs.
func (cgb *CompanyGroupBy) ScanX(ctx context.Context, v any) {
	if err := cgb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// CompanySelect is the builder for selecting fields of Company entities.
type CompanySelect struct {
	build    *CompanyQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (cs *CompanySelect) Aggregate(fns ...AggregateFunc) *CompanySelect {
	cs.fns = append(cs.fns, fns...)
	return cs
}

// Distinct de-duplicates the selected field rows.
func (cs *CompanySelect) Distinct() *CompanySelect {
	cs.distinct = true
	return cs
}

// Scan applies the selector query and scans the result into the given value.
func (cs *CompanySelect) Scan(ctx context.Context, v any) error {
	for _, f := range cs.flds {
		if !company.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := cs.build.sqlQuery()
	return selectScan(ctx, cs.build.driver, s, cs.flds, cs.fns, cs.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (cs *CompanySelect) ScanX(ctx context.Context, v any) {
	if err := cs.Scan(ctx, v); err != nil {
		panic(err)
	}
}
