package labstore

import (
	"context"
	"fmt"

	"labstore/dialect/sql"
	"labstore/predicate"
	"labstore/user"
	"labstore/workerprofile"
)

// UserQuery is the builder for querying User entities.
type UserQuery struct {
	config
	ctx                    *QueryContext
	order                  []user.OrderOption
	predicates             []predicate.User
	afterID                *int
	withWorkerProfiles     *WorkerProfileQuery
	withWorkerProfileCount bool
}

// Where adds a new predicate for the UserQuery builder.
func (uq *UserQuery) Where(ps ...predicate.User) *UserQuery {
	uq.predicates = append(uq.predicates, ps...)
	return uq
}

// Limit the number of records to be returned by this query.
func (uq *UserQuery) Limit(limit int) *UserQuery {
	uq.ctx.Limit = &limit
	return uq
}

// Offset to start from.
func (uq *UserQuery) Offset(offset int) *UserQuery {
	uq.ctx.Offset = &offset
	return uq
}

// Unique configures the query builder to filter duplicate records.
func (uq *UserQuery) Unique(unique bool) *UserQuery {
	uq.ctx.Unique = &unique
	return uq
}

// Order specifies how the records should be ordered.
func (uq *UserQuery) Order(o ...user.OrderOption) *UserQuery {
	uq.order = append(uq.order, o...)
	return uq
}

// AfterID continues the query after the row with the given id, following
// the direction of the id order term when one is set. Use together with
// Limit for keyset pagination on the unique surrogate key.
func (uq *UserQuery) AfterID(id int) *UserQuery {
	uq.afterID = &id
	return uq
}

// QueryWorkerProfiles chains a query of the worker_profiles edge to the
// users matched by this query.
func (uq *UserQuery) QueryWorkerProfiles() *WorkerProfileQuery {
	ids := uq.Clone().filterQuery()
	ids.Select(ids.C(user.FieldID))
	wq := NewWorkerProfileClient(uq.config).Query()
	wq.predicates = append(wq.predicates, func(s *sql.Selector) {
		s.Where(sql.InSelect(s.C(workerprofile.FieldUserID), ids))
	})
	return wq
}

// WithWorkerProfiles tells the query-builder to eager-load the entities
// connected to the "worker_profiles" edge. The optional arguments are used
// to configure the query builder of the edge.
func (uq *UserQuery) WithWorkerProfiles(opts ...func(*WorkerProfileQuery)) *UserQuery {
	query := NewWorkerProfileClient(uq.config).Query()
	for _, opt := range opts {
		opt(query)
	}
	uq.withWorkerProfiles = query
	return uq
}

// WithWorkerProfileCount tells the query-builder to load the row count of
// the "worker_profiles" edge, without materializing the rows.
func (uq *UserQuery) WithWorkerProfileCount() *UserQuery {
	uq.withWorkerProfileCount = true
	return uq
}

// Clone returns a duplicate of the UserQuery builder, including all
// associated steps. It can be used to prepare common query builders and use
// them differently after the clone is made.
func (uq *UserQuery) Clone() *UserQuery {
	if uq == nil {
		return nil
	}
	return &UserQuery{
		config:                 uq.config,
		ctx:                    uq.ctx.clone(),
		order:                  append([]user.OrderOption{}, uq.order...),
		predicates:             append([]predicate.User{}, uq.predicates...),
		afterID:                uq.afterID,
		withWorkerProfiles:     uq.withWorkerProfiles.Clone(),
		withWorkerProfileCount: uq.withWorkerProfileCount,
	}
}

// First returns the first User entity from the query.
// Returns a *NotFoundError when no User was found.
func (uq *UserQuery) First(ctx context.Context) (*User, error) {
	nodes, err := uq.Clone().Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{user.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (uq *UserQuery) FirstX(ctx context.Context) *User {
	node, err := uq.First(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// FirstOrNil returns the first User entity from the query, or nil without
// an error when none matches.
func (uq *UserQuery) FirstOrNil(ctx context.Context) (*User, error) {
	node, err := uq.First(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// Only returns a single User entity found by the query, ensuring it only
// returns one. Returns a *NotSingularError when more than one User entity
// is found. Returns a *NotFoundError when no User entities are found.
func (uq *UserQuery) Only(ctx context.Context) (*User, error) {
	nodes, err := uq.Clone().Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{user.Label}
	default:
		return nil, &NotSingularError{user.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (uq *UserQuery) OnlyX(ctx context.Context) *User {
	node, err := uq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only User ID in the query.
func (uq *UserQuery) OnlyID(ctx context.Context) (int, error) {
	ids, err := uq.Clone().Limit(2).IDs(ctx)
	if err != nil {
		return 0, err
	}
	switch len(ids) {
	case 1:
		return ids[0], nil
	case 0:
		return 0, &NotFoundError{user.Label}
	default:
		return 0, &NotSingularError{user.Label}
	}
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (uq *UserQuery) OnlyIDX(ctx context.Context) int {
	id, err := uq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Users.
func (uq *UserQuery) All(ctx context.Context) ([]*User, error) {
	return uq.sqlAll(ctx)
}

// AllX is like All, but panics if an error occurs.
func (uq *UserQuery) AllX(ctx context.Context) []*User {
	nodes, err := uq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of User IDs.
func (uq *UserQuery) IDs(ctx context.Context) ([]int, error) {
	s := uq.sqlQuery()
	s.Select(user.FieldID)
	rows, err := queryRows(ctx, uq.driver, s)
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
func (uq *UserQuery) IDsX(ctx context.Context) []int {
	ids, err := uq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (uq *UserQuery) Count(ctx context.Context) (int, error) {
	s := uq.filterQuery()
	expr := "COUNT(*)"
	if uq.ctx.Unique != nil && *uq.ctx.Unique {
		expr = "COUNT(DISTINCT " + s.C(user.FieldID) + ")"
	}
	s.Select(expr)
	rows, err := queryRows(ctx, uq.driver, s)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt(rows)
}

// CountX is like Count, but panics if an error occurs.
func (uq *UserQuery) CountX(ctx context.Context) int {
	count, err := uq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (uq *UserQuery) Exist(ctx context.Context) (bool, error) {
	s := uq.filterQuery()
	s.Select("1").Limit(1)
	rows, err := queryRows(ctx, uq.driver, s)
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
func (uq *UserQuery) ExistX(ctx context.Context) bool {
	exist, err := uq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// filterQuery returns a selector holding only the WHERE conditions of the
// query. Used for counting and existence checks.
func (uq *UserQuery) filterQuery() *sql.Selector {
	s := sql.Dialect(uq.driver.Dialect()).Select().From(user.Table)
	for _, p := range uq.predicates {
		p(s)
	}
	return s
}

// sqlQuery returns the full selector of the query: conditions, ordering,
// cursor and pagination.
func (uq *UserQuery) sqlQuery() *sql.Selector {
	s := sql.Dialect(uq.driver.Dialect()).Select(user.Columns...).From(user.Table)
	for _, p := range uq.predicates {
		p(s)
	}
	for _, o := range uq.order {
		o(s)
	}
	if uq.afterID != nil {
		if desc, _ := s.OrderOf(user.FieldID); desc {
			s.Where(sql.LT(s.C(user.FieldID), *uq.afterID))
		} else {
			s.Where(sql.GT(s.C(user.FieldID), *uq.afterID))
		}
	}
	if unique := uq.ctx.Unique; unique != nil && *unique {
		s.Distinct()
	}
	if limit := uq.ctx.Limit; limit != nil {
		s.Limit(*limit)
	}
	if offset := uq.ctx.Offset; offset != nil {
		s.Offset(*offset)
	}
	return s
}

func (uq *UserQuery) sqlAll(ctx context.Context) ([]*User, error) {
	rows, err := queryRows(ctx, uq.driver, uq.sqlQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nodes []*User
	for rows.Next() {
		node := &User{config: uq.config}
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
	if query := uq.withWorkerProfiles; query != nil {
		if err := uq.loadWorkerProfiles(ctx, query, nodes); err != nil {
			return nil, err
		}
	}
	if uq.withWorkerProfileCount {
		if err := uq.loadWorkerProfileCount(ctx, nodes); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// loadWorkerProfiles fetches the worker profiles of all given users in one
// query and groups them onto their owners.
func (uq *UserQuery) loadWorkerProfiles(ctx context.Context, query *WorkerProfileQuery, nodes []*User) error {
	byID := make(map[int]*User, len(nodes))
	ids := make([]int, 0, len(nodes))
	for _, node := range nodes {
		byID[node.ID] = node
		ids = append(ids, node.ID)
		node.Edges.loadedTypes[0] = true
	}
	profiles, err := query.Where(workerprofile.UserID.In(ids...)).All(ctx)
	if err != nil {
		return err
	}
	for _, wp := range profiles {
		owner, ok := byID[wp.UserID]
		if !ok {
			return fmt.Errorf(`labstore: unexpected referenced foreign-key "user_id" returned %v`, wp.UserID)
		}
		owner.Edges.WorkerProfiles = append(owner.Edges.WorkerProfiles, wp)
	}
	return nil
}

// loadWorkerProfileCount fetches the worker profile counts of all given
// users in one grouped query, without materializing the rows.
func (uq *UserQuery) loadWorkerProfileCount(ctx context.Context, nodes []*User) error {
	byID := make(map[int]*User, len(nodes))
	ids := make([]any, 0, len(nodes))
	for _, node := range nodes {
		byID[node.ID] = node
		zero := 0
		node.Edges.WorkerProfileCount = &zero
		ids = append(ids, node.ID)
	}
	s := sql.Dialect(uq.driver.Dialect()).
		Select(user.WorkerProfilesColumn, "COUNT(*)").
		From(user.WorkerProfilesTable).
		Where(sql.In(user.WorkerProfilesColumn, ids...)).
		GroupBy(user.WorkerProfilesColumn)
	rows, err := queryRows(ctx, uq.driver, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			ownerID int
			count   int
		)
		if err := rows.Scan(&ownerID, &count); err != nil {
			return err
		}
		if owner, ok := byID[ownerID]; ok {
			*owner.Edges.WorkerProfileCount = count
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
//		Role  string `json:"role,omitempty"`
//		Count int    `json:"count,omitempty"`
//	}
//
//	client.User.Query().
//		GroupBy(user.FieldRole).
//		Aggregate(labstore.Count()).
//		Scan(ctx, &v)
func (uq *UserQuery) GroupBy(field string, fields ...string) *UserGroupBy {
	return &UserGroupBy{
		build: uq,
		flds:  append([]string{field}, fields...),
	}
}

// Select allows the selection of one or more fields/columns for the given
// query.
func (uq *UserQuery) Select(fields ...string) *UserSelect {
	return &UserSelect{build: uq, flds: fields}
}

// Aggregate returns a UserSelect configured with the given aggregations.
func (uq *UserQuery) Aggregate(fns ...AggregateFunc) *UserSelect {
	return uq.Select().Aggregate(fns...)
}

// UserGroupBy is the group-by builder for User entities.
type UserGroupBy struct {
	build  *UserQuery
	flds   []string
	fns    []AggregateFunc
	having []predicate.User
	order  []user.OrderOption
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ugb *UserGroupBy) Aggregate(fns ...AggregateFunc) *UserGroupBy {
	ugb.fns = append(ugb.fns, fns...)
	return ugb
}

// Having appends predicates to the HAVING clause. Only grouped fields may
// be referenced; violations surface as *ValidationError at Scan time.
func (ugb *UserGroupBy) Having(ps ...predicate.User) *UserGroupBy {
	ugb.having = append(ugb.having, ps...)
	return ugb
}

// OrderBy orders the grouped results. Only grouped fields may be
// referenced; violations surface as *ValidationError at Scan time.
func (ugb *UserGroupBy) OrderBy(o ...user.OrderOption) *UserGroupBy {
	ugb.order = append(ugb.order, o...)
	return ugb
}

// Scan applies the group-by query and scans the result into the given value.
func (ugb *UserGroupBy) Scan(ctx context.Context, v any) error {
	for _, f := range ugb.flds {
		if !user.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for group-by", f)}
		}
	}
	s := ugb.build.filterQuery()
	if err := groupByScan(ctx, ugb.build.driver, s, groupBySpec{
		fields: ugb.flds,
		fns:    ugb.fns,
		having: func(s *sql.Selector) {
			for _, p := range ugb.having {
				p(s)
			}
		},
		order: func(s *sql.Selector) {
			for _, o := range ugb.order {
				o(s)
			}
		},
	}, v); err != nil {
		return err
	}
	return nil
}

// ScanX is like Scan, but panics if an error occurs.
func (ugb *UserGroupBy) ScanX(ctx context.Context, v any) {
	if err := ugb.Scan(ctx, v); err != nil {
		panic(err)
	}
}

// UserSelect is the builder for selecting fields of User entities.
type UserSelect struct {
	build    *UserQuery
	flds     []string
	fns      []AggregateFunc
	distinct bool
}

// Aggregate adds the given aggregation functions to the selector query.
func (us *UserSelect) Aggregate(fns ...AggregateFunc) *UserSelect {
	us.fns = append(us.fns, fns...)
	return us
}

// Distinct de-duplicates the selected field rows.
func (us *UserSelect) Distinct() *UserSelect {
	us.distinct = true
	return us
}

// Scan applies the selector query and scans the result into the given value.
func (us *UserSelect) Scan(ctx context.Context, v any) error {
	for _, f := range us.flds {
		if !user.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("labstore: invalid field %q for select", f)}
		}
	}
	s := us.build.sqlQuery()
	return selectScan(ctx, us.build.driver, s, us.flds, us.fns, us.distinct, v)
}

// ScanX is like Scan, but panics if an error occurs.
func (us *UserSelect) ScanX(ctx context.Context, v any) {
	if err := us.Scan(ctx, v); err != nil {
		panic(err)
	}
}
