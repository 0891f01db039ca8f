// Package labstore provides a typed data-access client for the lab
// document-request schema: companies, users, worker profiles, document
// requests with their sample lists, and receipt addresses.
//
// The entry point is the Client, obtained from Open or NewClient. Each
// entity exposes a sub-client with query and mutation builders:
//
//	client, err := labstore.Open("postgres", dsn)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//	reqs, err := client.DocumentRequest.Query().
//		Where(documentrequest.Status.EQ("pending")).
//		Order(documentrequest.ByRequestDate(sql.OrderDesc(), sql.OrderNullsLast())).
//		Limit(20).
//		All(ctx)
package labstore

import (
	"context"
	"errors"
	"fmt"

	"labstore/dialect"
	"labstore/dialect/sql"
)

// config holds the shared configuration of the client and all builders
// derived from it.
type config struct {
	// driver used for executing database requests.
	driver dialect.Driver
	// debug enables a debug logging.
	debug bool
	// log used for logging on debug mode.
	log func(...any)
}

// Option function to configure the client.
type Option func(*config)

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		if c.log != nil {
			c.driver = dialect.Debug(c.driver, c.log)
		} else {
			c.driver = dialect.Debug(c.driver)
		}
	}
}

// Debug enables debug logging on the database driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// QueryContext holds the context-independent parts of a query that are
// shared by all entity query builders.
type QueryContext struct {
	// Unique marks the query for de-duplicated results.
	Unique *bool
	// Limit bounds the number of returned records.
	Limit *int
	// Offset skips the first records of the result.
	Offset *int
}

func newQueryContext() *QueryContext { return &QueryContext{} }

func (q *QueryContext) clone() *QueryContext {
	c := *q
	return &c
}

type (
	// AggregateFunc computes an aggregation expression for a selector.
	AggregateFunc = sql.AggregateFunc
	// OrderTermOption configures the direction and null placement of an
	// order term.
	OrderTermOption = sql.OrderTermOption
)

// As is a pseudo aggregation function for renaming another other functions with custom names. For example:
//
//	GroupBy(field1, field2).
//	Aggregate(labstore.As(labstore.Sum(field1), "sum_field1"), (labstore.As(labstore.Sum(field2), "sum_field2")).
//	Scan(ctx, &v)
func As(fn AggregateFunc, end string) AggregateFunc {
	return func(s *sql.Selector) string {
		return sql.As(fn(s), end)
	}
}

// Count applies the "count" aggregation function on each group.
func Count() AggregateFunc {
	return func(s *sql.Selector) string {
		return "COUNT(*)"
	}
}

// Max applies the "max" aggregation function on the given field of each group.
func Max(field string) AggregateFunc { return sql.Max(field) }

// Mean applies the "mean" aggregation function on the given field of each group.
func Mean(field string) AggregateFunc { return sql.Avg(field) }

// Min applies the "min" aggregation function on the given field of each group.
func Min(field string) AggregateFunc { return sql.Min(field) }

// Sum applies the "sum" aggregation function on the given field of each group.
func Sum(field string) AggregateFunc { return sql.Sum(field) }

// withTx runs fn inside a transaction. If the config is already bound to a
// running transaction, fn joins it and the outer owner stays responsible for
// commit or rollback. Otherwise a transaction is started and committed, or
// rolled back if fn fails.
func withTx(ctx context.Context, cfg config, fn func(txc config) error) error {
	if inTx(cfg.driver) {
		return fn(cfg)
	}
	tx, err := cfg.driver.Tx(ctx)
	if err != nil {
		return err
	}
	txc := cfg
	txc.driver = &txDriver{tx: tx, drv: cfg.driver}
	if err := fn(txc); err != nil {
		return rollback(tx, err)
	}
	return tx.Commit()
}

// inTx reports whether the driver is bound to a running transaction,
// unwrapping decorators such as the debug and stats drivers.
func inTx(drv dialect.Driver) bool {
	for {
		switch d := drv.(type) {
		case *txDriver:
			return true
		case interface{ Unwrap() dialect.Driver }:
			drv = d.Unwrap()
		default:
			return false
		}
	}
}

// connectByIDs points the foreign-key column of the given child rows at the
// parent value and returns how many of the rows exist. Existence is checked
// with a count rather than RowsAffected: mysql reports changed rows, not
// matched rows, so a child already carrying the parent value would read as
// missing.
func connectByIDs(ctx context.Context, drv dialect.Driver, table, fkColumn string, parent any, ids []int) (int, error) {
	vs := make([]any, len(ids))
	for i, id := range ids {
		vs[i] = id
	}
	sel := sql.Dialect(drv.Dialect()).Select("COUNT(*)").From(table)
	sel.Where(sql.In("id", vs...))
	rows, err := queryRows(ctx, drv, sel)
	if err != nil {
		return 0, err
	}
	n, err := sql.ScanInt(rows)
	rows.Close()
	if err != nil {
		return 0, err
	}
	upd := sql.Dialect(drv.Dialect()).Update(table).Set(fkColumn, parent)
	upd.Where(sql.In("id", vs...))
	query, args := upd.Query()
	if _, err := execAffected(ctx, drv, query, args); err != nil {
		return 0, err
	}
	return n, nil
}

// deleteChildren deletes the child rows keyed on the given parent value,
// bounded to the given ids when any are passed.
func deleteChildren(ctx context.Context, drv dialect.Driver, table, fkColumn string, parent any, ids []int) (int, error) {
	del := sql.Dialect(drv.Dialect()).Delete(table)
	p := sql.EQ(fkColumn, parent)
	if len(ids) > 0 {
		vs := make([]any, len(ids))
		for i, id := range ids {
			vs[i] = id
		}
		p = sql.And(p, sql.In("id", vs...))
	}
	del.Where(p)
	query, args := del.Query()
	return execAffected(ctx, drv, query, args)
}

// conflictSpec captures the ON CONFLICT behavior of a create builder.
type conflictSpec struct {
	columns   []string
	doNothing bool
	updateAll bool
	sets      []conflictSet
}

type conflictSet struct {
	column string
	value  any
}

func (c *conflictSpec) set(column string, v any) {
	c.sets = append(c.sets, conflictSet{column: column, value: v})
}

// check validates that a conflict action was chosen.
func (c *conflictSpec) check() error {
	if !c.doNothing && !c.updateAll && len(c.sets) == 0 {
		return errors.New("labstore: missing ON CONFLICT action: call Ignore, UpdateNewValues or a Set method")
	}
	return nil
}

// apply renders the conflict clause on the insert statement. insertCols are
// the proposed insert columns; with updateAll, every column outside the
// conflict target is refreshed from the proposed values.
func (c *conflictSpec) apply(ins *sql.InsertBuilder, insertCols []string) {
	ins.OnConflictColumns(c.columns...)
	if c.doNothing {
		ins.DoNothing()
		return
	}
	if c.updateAll {
		target := make(map[string]bool, len(c.columns))
		for _, col := range c.columns {
			target[col] = true
		}
		for _, col := range insertCols {
			if !target[col] {
				ins.DoUpdateExcluded(col)
			}
		}
	}
	for _, s := range c.sets {
		ins.DoUpdateSet(s.column, s.value)
	}
}

// limitedIDs returns an `id IN (subquery)` predicate bounding a bulk
// mutation to at most n rows. MySQL cannot select from the mutated table in
// the subquery directly, so it goes through a derived table.
func limitedIDs(d, table string, where *sql.Predicate, n int) *sql.Predicate {
	sub := sql.Dialect(d).Select("id").From(table)
	if where != nil {
		sub.Where(where)
	}
	sub.Limit(n)
	if d == dialect.MySQL {
		sub = sql.Dialect(d).Select("id").FromSelect(sub, "bounded")
	}
	return sql.InSelect("id", sub)
}

// groupBySpec carries the group-by parts shared by all entity group-by
// builders.
type groupBySpec struct {
	fields []string
	fns    []AggregateFunc
	having func(*sql.Selector)
	order  func(*sql.Selector)
}

// groupByScan renders and runs a group-by query over the given filter
// selector, scanning the result into v. Having and order predicates may
// reference grouped fields only; the column collector catches anything
// else and the query is rejected with a *ValidationError before reaching
// the database.
func groupByScan(ctx context.Context, drv dialect.Driver, s *sql.Selector, spec groupBySpec, v any) error {
	grouped := make(map[string]bool, len(spec.fields))
	for _, f := range spec.fields {
		grouped[f] = true
	}
	var invalid string
	s.WithColumnCollector(func(column string) {
		if invalid == "" && !grouped[column] {
			invalid = column
		}
	})
	s.HavingMode(true)
	spec.having(s)
	s.HavingMode(false)
	spec.order(s)
	s.WithColumnCollector(nil)
	if invalid != "" {
		return &ValidationError{
			Name: invalid,
			err:  fmt.Errorf("labstore: column %q in having/order is not part of the group-by fields", invalid),
		}
	}
	columns := append([]string{}, spec.fields...)
	for _, fn := range spec.fns {
		columns = append(columns, fn(s))
	}
	s.Select(columns...).GroupBy(spec.fields...)
	rows, err := queryRows(ctx, drv, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// selectScan renders and runs a field-projection query, scanning the
// result into v.
func selectScan(ctx context.Context, drv dialect.Driver, s *sql.Selector, fields []string, fns []AggregateFunc, distinct bool, v any) error {
	aggregations := make([]string, 0, len(fns))
	for _, fn := range fns {
		aggregations = append(aggregations, fn(s))
	}
	switch n := len(fields); {
	case n == 0 && len(aggregations) > 0:
		s.Select(aggregations...)
	case n != 0 && len(aggregations) > 0:
		s.Select(append(append([]string{}, fields...), aggregations...)...)
	case n != 0:
		s.Select(fields...)
	}
	if distinct {
		s.Distinct()
	}
	rows, err := queryRows(ctx, drv, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// queryRows executes the given statement and returns the rows. The caller
// owns closing them.
func queryRows(ctx context.Context, drv dialect.Driver, q sql.Querier) (*sql.Rows, error) {
	query, args := q.Query()
	rows := &sql.Rows{}
	if err := drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// insertID executes the insert and returns the generated id. On a
// RETURNING-capable dialect the id comes back from the statement; MySQL
// reports it through LastInsertId. When the statement affects no row, as
// with DO NOTHING on a conflicting row, a *NotFoundError for the given
// label is returned.
func insertID(ctx context.Context, drv dialect.Driver, ins *sql.InsertBuilder, label string) (int, error) {
	if err := ins.Err(); err != nil {
		return 0, err
	}
	if sql.SupportsReturning(drv.Dialect()) {
		ins.Returning("id")
		rows, err := queryRows(ctx, drv, ins)
		if err != nil {
			return 0, classifyWriteError(err)
		}
		defer rows.Close()
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return 0, err
			}
			return 0, &NotFoundError{label}
		}
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
		return id, rows.Err()
	}
	var res sql.Result
	query, args := ins.Query()
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return 0, classifyWriteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// insertExec executes the insert without reading anything back.
func insertExec(ctx context.Context, drv dialect.Driver, ins *sql.InsertBuilder) error {
	if err := ins.Err(); err != nil {
		return err
	}
	query, args := ins.Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// upsertID is insertID restricted to RETURNING-capable dialects. MySQL
// cannot report the id of the row affected by ON DUPLICATE KEY UPDATE.
func upsertID(ctx context.Context, drv dialect.Driver, ins *sql.InsertBuilder, label string) (int, error) {
	if !sql.SupportsReturning(drv.Dialect()) {
		return 0, fmt.Errorf("labstore: OnConflict.ID is not supported by the %s dialect; use Exec", drv.Dialect())
	}
	return insertID(ctx, drv, ins, label)
}

// execAffected executes the given statement and returns the number of
// affected rows.
func execAffected(ctx context.Context, drv dialect.Driver, query string, args []any) (int, error) {
	var res sql.Result
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return 0, classifyWriteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
