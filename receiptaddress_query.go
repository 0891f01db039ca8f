package labstore

import (
	"context"
	"fmt"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/receiptaddress"
)

// ReceiptAddressQuery is the builder for querying ReceiptAddress entities.
type ReceiptAddressQuery struct {
	config
	ctx        *QueryContext
	order      []receiptaddress.OrderOption
	predicates []predicate.ReceiptAddress
	afterID    *int
}

// Where adds a new predicate for the ReceiptAddressQuery builder.
func (raq *ReceiptAddressQuery) Where(ps ...predicate.ReceiptAddress) *ReceiptAddressQuery {
	raq.predicates = append(raq.predicates, ps...)
	return raq
}

// Limit the number of records to be returned by this query.
func (raq *ReceiptAddressQuery) Limit(limit int) *ReceiptAddressQuery {
	raq.ctx.Limit = &limit
	return raq
}

// Offset to start from.
func (raq *ReceiptAddressQuery) Offset(offset int) *ReceiptAddressQuery {
	raq.ctx.Offset = &offset
	return raq
}

// Unique configures the query builder to filter duplicate records.
func (raq *ReceiptAddressQuery) Unique(unique bool) *ReceiptAddressQuery {
	raq.ctx.Unique = &unique
	return raq
}

// Order specifies how the records should be ordered.
func (raq *ReceiptAddressQuery) Order(o ...receiptaddress.OrderOption) *ReceiptAddressQuery {
	raq.order = append(raq.order, o...)
	return raq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set.
func (raq *ReceiptAddressQuery) AfterID(id int) *ReceiptAddressQuery {
	raq.afterID = &id
	return raq
}

// Clone returns a duplicate of the ReceiptAddressQuery builder, including
// all associated steps.
func (raq *ReceiptAddressQuery) Clone() *ReceiptAddressQuery {
	if raq == nil {
		return nil
	}
	return &ReceiptAddressQuery{
		config:     raq.config,
		ctx:        raq.ctx.clone(),
		order:      append([]receiptaddress.OrderOption{}, raq.order...),
		predicates: append([]predicate.ReceiptAddress{}, raq.predicates...),
		afterID:    raq.afterID,
	}
}

// First returns the first ReceiptAddress entity from the query.
// Returns a *NotFoundError when no ReceiptAddress was found.
func (raq *ReceiptAddressQuery) First(ctx context.Context) (*ReceiptAddress, error) {
	nodes, err := raq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{receiptaddress.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (raq *ReceiptAddressQuery) FirstX(ctx context.Context) *ReceiptAddress {
	node, err := raq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first ReceiptAddress entity from the query, or nil
// without an error when none matches.
func (raq *ReceiptAddressQuery) FirstOrNil(ctx context.Context) (*ReceiptAddress, error) {
	node, err := raq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single ReceiptAddress entity found by the query, ensuring
// it only returns one. Returns a *NotSingularError when more than one
// ReceiptAddress entity is found. Returns a *NotFoundError when none found.
func (raq *ReceiptAddressQuery) Only(ctx context.Context) (*ReceiptAddress, error) {
	nodes, err := raq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{receiptaddress.Label}
	default:
		return nil, &NotSingularError{receiptaddress.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (raq *ReceiptAddressQuery) OnlyX(ctx context.Context) *ReceiptAddress {
	node, err := raq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReceiptAddress ID in the query.
func (raq *ReceiptAddressQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := raq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{receiptaddress.Label}
	default:
		return 0, &NotSingularError{receiptaddress.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (raq *ReceiptAddressQuery) OnlyIDX(ctx context.Context) int {
	id, err := raq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReceiptAddresses.
func (raq *ReceiptAddressQuery) All(ctx context.Context) ([]*ReceiptAddress, error) {
	return raq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (raq *ReceiptAddressQuery) AllX(ctx context.Context) []*ReceiptAddress {
	nodes, err := raq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReceiptAddress IDs.
func (raq *ReceiptAddressQuery) IDs(ctx context.Context) ([]int, error) {
	s := raq.sqlQuery()
	s.Select(receiptaddress.FieldID)
	rows, err := queryRows(ctx, raq.driver, s)
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
func (raq *ReceiptAddressQuery) IDsX(ctx context.Context) []int {
	ids, err := raq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (raq *ReceiptAddressQuery) Count(ctx context.Context) (int, error) {
	s := raq.filterQuery()
	expr := "COUNT(*)"
	if raq.ctx.Unique != nil && *raq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(receiptaddress.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, raq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (raq *ReceiptAddressQuery) CountX(ctx context.Context) int {
	count, err := raq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (raq *ReceiptAddressQuery) Exist(ctx context.Context) (bool, error) {
	s := raq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, raq.driver, s)
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
func (raq *ReceiptAddressQuery) ExistX(ctx context.Context) bool {
	exist, err := raq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

func (raq *ReceiptAddressQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(raq.driver.Dialect()).Select().From(receiptaddress.Table)
	for _, p := range raq.predicates {
		p(s)
	}
	return s
}

func (raq *ReceiptAddressQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(raq.driver.Dialect()).Select(receiptaddress.Columns...).From(receiptaddress.Table)
	for _, p := range raq.predicates {
		p(s)
	}
	for _, o := range raq.order {
		o(s)
	}
	if raq.afterID != nil {
		if desc, _ := s.OrderOf(receiptaddress.FieldID); desc {
			s.Where(sql.LT(s.C(receiptaddress.FieldID), *raq.afterID))
		} else {
			s.Where(sql.GT(s.C(receiptaddress.FieldID), *raq.afterID))
		}
	}
	if unique := raq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := raq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := raq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (raq *ReceiptAddressQuery) sqlAll(ctx context.Context) ([]*ReceiptAddress, error) {
	rows, err := queryRows(ctx, raq.driver, raq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*ReceiptAddress
	for rows.Next() {
		node := &ReceiptAddress{config: raq.config}
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
func (raq *ReceiptAddressQuery) GroupBy(field string, fields ...string) *ReceiptAddressGroupBy {
	return &ReceiptAddressGroupBy{
		build: raq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
func (raq *ReceiptAddressQuery) Select(fields ...string) *ReceiptAddressSelect {
	return &ReceiptAddressSelect{build: raq, flds: fields}
}

// Aggregate returns a ReceiptAddressSelect configured with the given
// aggregations.
func (raq *ReceiptAddressQuery) Aggregate(fns ...AggregateFunc) *ReceiptAddressSelect {
	return raq.Select().Aggregate(fns...)
}

// ReceiptAddressGroupBy is the group-by builder for ReceiptAddress entities.
type ReceiptAddressGroupBy struct {
	build  *ReceiptAddressQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.ReceiptAddress
	order  []receiptaddress.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ragb *ReceiptAddressGroupBy) Aggregate(fns ...AggregateFunc) *ReceiptAddressGroupBy {
	ragb.fns = append(ragb.fns, fns...)
	return ragb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (ragb *ReceiptAddressGroupBy) Having(ps ...predicate.ReceiptAddress) *ReceiptAddressGroupBy {
	ragb.having = append(ragb.having, ps...)
	return ragb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (ragb *ReceiptAddressGroupBy) OrderBy(o ...receiptaddress.OrderOption) *ReceiptAddressGroupBy {
	ragb.order = append(ragb.order, o...)
	return ragb
}

// Scan applies the group-by query and scans the result into the given value.
func (ragb *ReceiptAddressGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range ragb.flds {
		if !receiptaddress.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := ragb.build.filterQuery()
	return groupByScan(ctx, ragb.build.driver, s, groupBySpec{
		fields: ragb.flds,
		fns:    ragb.fns,
		having: func(s *sql.Selector) {
			for _, p := range ragb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range ragb.order {
				o(s)
			}
		},
	}, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (ragb *ReceiptAddressGroupBy) ScanX(ctx context.Context, v any) {
	if err := ragb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// ReceiptAddressSelect is the builder for selecting fields of
// ReceiptAddress entities.
type ReceiptAddressSelect struct {
	build    *ReceiptAddressQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (ras *ReceiptAddressSelect) Aggregate(fns ...AggregateFunc) *ReceiptAddressSelect {
	ras.fns = append(ras.fns, fns...)
	return ras
}

// Distinct de-duplicates the selected field rows.
func (ras *ReceiptAddressSelect) Distinct() *ReceiptAddressSelect {
	ras.distinct = true
	return ras
}

// Scan applies the selector query and scans the result into the given value.
func (ras *ReceiptAddressSelect) Scan(ctx context.Context, v any) error {
	for _, f := range ras.flds {
		if !receiptaddress.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := ras.build.sqlQuery()
	return selectScan(ctx, ras.build.driver, s, ras.flds, ras.fns, ras.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (ras *ReceiptAddressSelect) ScanX(ctx context.Context, v any) {
	if err := ras.Scan(ctx, v); err != nil {
		panic(err)
	}
}
