package sql

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"labstore/dialect"
)

// Querier wraps the Query method. It is implemented by all statement builders.
type Querier interface {
	// Query returns the query representation of the element
	// and its arguments (if any).
	Query() (string, []any)
}

// Builder is the base query builder shared by all statement builders.
// It accumulates the query text and its arguments, and renders
// placeholders in the format of the configured dialect.
type Builder struct {
	sb      strings.Builder
	dialect string
	args    []any
	errs    []error
}

// Dialect returns the dialect of the builder.
func (b *Builder) Dialect() string { return b.dialect }

// Quote quotes the given identifier according to the dialect. Identifiers
// that are already quoted, qualified or are expressions pass through as-is.
func (b *Builder) Quote(ident string) string {
	quote := `"`
	if b.dialect == dialect.MySQL {
		quote = "`"
	}
	if strings.ContainsAny(ident, "`\"(* ") {
		return ident
	}
	if i := strings.IndexByte(ident, '.'); i > 0 {
		return quote + ident[:i] + quote + "." + quote + ident[i+1:] + quote
	}
	return quote + ident + quote
}

// Ident writes the given identifier (quoted if needed) to the query.
func (b *Builder) Ident(s string) *Builder {
	b.sb.WriteString(b.Quote(s))
	return b
}

// WriteString appends the given raw string to the query.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteOp writes an operator padded with spaces.
func (b *Builder) WriteOp(op string) *Builder {
	b.sb.WriteString(" " + op + " ")
	return b
}

// Arg appends an argument to the builder and writes its placeholder.
func (b *Builder) Arg(v any) *Builder {
	b.args = append(b.args, v)
	if b.dialect == dialect.Postgres {
		b.sb.WriteString("$" + strconv.Itoa(len(b.args)))
	} else {
		b.sb.WriteByte('?')
	}
	return b
}

// Args appends a comma-separated list of arguments.
func (b *Builder) Args(vs ...any) *Builder {
	for i, v := range vs {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.Arg(v)
	}
	return b
}

// Nested writes the given render function wrapped in parentheses.
func (b *Builder) Nested(fn func(*Builder)) *Builder {
	b.sb.WriteByte('(')
	fn(b)
	b.sb.WriteByte(')')
	return b
}

// AddError attaches an error to the builder. The first attached error is
// returned alongside the query by the statement builders that expose it.
func (b *Builder) AddError(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Err returns the first error attached to the builder, if any.
func (b *Builder) Err() error {
	if len(b.errs) > 0 {
		return b.errs[0]
	}
	return nil
}

func (b *Builder) String() string { return b.sb.String() }

// DialectBuilder prefixes all root builders with the dialect.
type DialectBuilder struct {
	dialect string
}

// Dialect creates a new DialectBuilder for the given dialect.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{dialect: name}
}

// Select creates a Selector for the configured dialect.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	return &Selector{dialect: d.dialect, columns: columns}
}

// Insert creates an InsertBuilder for the configured dialect.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	return &InsertBuilder{dialect: d.dialect, table: table}
}

// Update creates an UpdateBuilder for the configured dialect.
func (d *DialectBuilder) Update(table string) *UpdateBuilder {
	return &UpdateBuilder{dialect: d.dialect, table: table}
}

// Delete creates a DeleteBuilder for the configured dialect.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{dialect: d.dialect, table: table}
}

// Predicate is a condition tree rendered into the WHERE, HAVING or ON
// clause of a statement.
type Predicate struct {
	fns []func(*Builder)
}

// P creates a Predicate from the given render functions.
func P(fns ...func(*Builder)) *Predicate {
	return &Predicate{fns: fns}
}

func (p *Predicate) render(b *Builder) {
	for i, fn := range p.fns {
		if i > 0 {
			b.WriteOp("AND")
		}
		fn(b)
	}
}

// Append adds a condition joined with AND to the predicate.
func (p *Predicate) Append(fn func(*Builder)) *Predicate {
	p.fns = append(p.fns, fn)
	return p
}

// And joins the given predicates with the AND operator.
func And(preds ...*Predicate) *Predicate {
	return P(func(b *Builder) {
		b.Nested(func(b *Builder) {
			for i, p := range preds {
				if i > 0 {
					b.WriteOp("AND")
				}
				p.render(b)
			}
		})
	})
}

// Or joins the given predicates with the OR operator.
func Or(preds ...*Predicate) *Predicate {
	return P(func(b *Builder) {
		b.Nested(func(b *Builder) {
			for i, p := range preds {
				if i > 0 {
					b.WriteOp("OR")
				}
				b.Nested(p.render)
			}
		})
	})
}

// Not negates the given predicate.
func Not(p *Predicate) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT ")
		b.Nested(p.render)
	})
}

// False is a predicate that matches nothing.
func False() *Predicate {
	return P(func(b *Builder) { b.WriteString("FALSE") })
}

func cmp(col, op string, v any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteOp(op).Arg(v)
	})
}

// EQ returns a column = value predicate.
func EQ(col string, v any) *Predicate { return cmp(col, "=", v) }

// NEQ returns a column <> value predicate.
func NEQ(col string, v any) *Predicate { return cmp(col, "<>", v) }

// GT returns a column > value predicate.
func GT(col string, v any) *Predicate { return cmp(col, ">", v) }

// GTE returns a column >= value predicate.
func GTE(col string, v any) *Predicate { return cmp(col, ">=", v) }

// LT returns a column < value predicate.
func LT(col string, v any) *Predicate { return cmp(col, "<", v) }

// LTE returns a column <= value predicate.
func LTE(col string, v any) *Predicate { return cmp(col, "<=", v) }

// ColumnsEQ returns a column = column predicate.
func ColumnsEQ(col1, col2 string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col1).WriteOp("=").Ident(col2)
	})
}

// In returns a column IN (values...) predicate.
// An empty list matches nothing.
func In(col string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.Ident(col).WriteOp("IN").Nested(func(b *Builder) {
			b.Args(vs...)
		})
	})
}

// NotIn returns a column NOT IN (values...) predicate.
// An empty list matches everything.
func NotIn(col string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("TRUE")
			return
		}
		b.Ident(col).WriteOp("NOT IN").Nested(func(b *Builder) {
			b.Args(vs...)
		})
	})
}

// InSelect returns a column IN (subquery) predicate.
func InSelect(col string, s *Selector) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteOp("IN").Nested(s.query)
	})
}

// IsNull returns a column IS NULL predicate.
func IsNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NULL")
	})
}

// NotNull returns a column IS NOT NULL predicate.
func NotNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NOT NULL")
	})
}

// likeEscape escapes the LIKE wildcard characters in the given literal.
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

func like(col, pattern string, fold bool) *Predicate {
	return P(func(b *Builder) {
		if fold {
			b.WriteString("LOWER(").Ident(col).WriteString(")").WriteOp("LIKE").Arg(strings.ToLower(pattern))
		} else {
			b.Ident(col).WriteOp("LIKE").Arg(pattern)
		}
		// MySQL treats backslash as an escape character by default;
		// the other dialects need it declared.
		if b.dialect != dialect.MySQL {
			b.WriteString(` ESCAPE '\'`)
		}
	})
}

// Like returns a column LIKE pattern predicate. The pattern is taken verbatim.
func Like(col, pattern string) *Predicate { return like(col, pattern, false) }

// Contains returns a substring-match predicate.
func Contains(col, sub string) *Predicate { return like(col, "%"+likeEscape(sub)+"%", false) }

// ContainsFold returns a case-insensitive substring-match predicate.
func ContainsFold(col, sub string) *Predicate { return like(col, "%"+likeEscape(sub)+"%", true) }

// HasPrefix returns a prefix-match predicate.
func HasPrefix(col, prefix string) *Predicate { return like(col, likeEscape(prefix)+"%", false) }

// HasPrefixFold returns a case-insensitive prefix-match predicate.
func HasPrefixFold(col, prefix string) *Predicate { return like(col, likeEscape(prefix)+"%", true) }

// HasSuffix returns a suffix-match predicate.
func HasSuffix(col, suffix string) *Predicate { return like(col, "%"+likeEscape(suffix), false) }

// HasSuffixFold returns a case-insensitive suffix-match predicate.
func HasSuffixFold(col, suffix string) *Predicate { return like(col, "%"+likeEscape(suffix), true) }

// EqualFold returns a case-insensitive column = value predicate.
func EqualFold(col, v string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(").Ident(col).WriteString(")").WriteOp("=").Arg(strings.ToLower(v))
	})
}

// Exists returns an EXISTS (subquery) predicate.
func Exists(s *Selector) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("EXISTS ")
		b.Nested(s.query)
	})
}

// NotExists returns a NOT EXISTS (subquery) predicate.
func NotExists(s *Selector) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT EXISTS ")
		b.Nested(s.query)
	})
}

// ExprP returns a predicate from a raw expression and its arguments.
// The expression must use '?' placeholders regardless of the dialect.
func ExprP(expr string, args ...any) *Predicate {
	return P(func(b *Builder) {
		for _, r := range expr {
			if r == '?' {
				if len(args) == 0 {
					b.AddError(fmt.Errorf("sql: missing argument for expression %q", expr))
					return
				}
				b.Arg(args[0])
				args = args[1:]
			} else {
				b.sb.WriteRune(r)
			}
		}
	})
}

// OrderTermOption configures an order term.
type OrderTermOption func(*orderTerm)

type orderTerm struct {
	desc  bool
	nulls string // "", "FIRST" or "LAST"
}

// OrderAsc sets ascending order (the default).
func OrderAsc() OrderTermOption { return func(t *orderTerm) { t.desc = false } }

// OrderDesc sets descending order.
func OrderDesc() OrderTermOption { return func(t *orderTerm) { t.desc = true } }

// OrderNullsFirst places NULL values before all others.
func OrderNullsFirst() OrderTermOption { return func(t *orderTerm) { t.nulls = "FIRST" } }

// OrderNullsLast places NULL values after all others.
func OrderNullsLast() OrderTermOption { return func(t *orderTerm) { t.nulls = "LAST" } }

type ordering struct {
	column string    // plain column name; empty for expression orderings.
	sub    *Selector // correlated subquery ordering (e.g. order by child count).
	term   orderTerm
}

// OrderByField returns a selector option that orders by the given column.
func OrderByField(field string, opts ...OrderTermOption) func(*Selector) {
	return func(s *Selector) { s.OrderField(field, opts...) }
}

// AggregateFunc returns an aggregation expression for the given selector.
type AggregateFunc func(*Selector) string

// As appends the AS clause to the given expression.
func As(expr, alias string) string { return expr + " AS " + alias }

// Count returns a COUNT aggregation on the given column.
func Count(column string) AggregateFunc {
	return func(s *Selector) string { return "COUNT(" + s.quote(column) + ")" }
}

// Sum returns a SUM aggregation on the given column.
func Sum(column string) AggregateFunc {
	return func(s *Selector) string { return "SUM(" + s.quote(column) + ")" }
}

// Avg returns an AVG aggregation on the given column.
func Avg(column string) AggregateFunc {
	return func(s *Selector) string { return "AVG(" + s.quote(column) + ")" }
}

// Min returns a MIN aggregation on the given column.
func Min(column string) AggregateFunc {
	return func(s *Selector) string { return "MIN(" + s.quote(column) + ")" }
}

// Max returns a MAX aggregation on the given column.
func Max(column string) AggregateFunc {
	return func(s *Selector) string { return "MAX(" + s.quote(column) + ")" }
}

// Selector builds a SELECT statement.
type Selector struct {
	dialect   string
	columns   []string
	from      string
	fromSel   *Selector
	as        string
	where     *Predicate
	having    *Predicate
	toHaving  bool // route Where calls to the HAVING clause.
	orNext    bool // join the next Where call with OR.
	collector func(string)
	groupBy   []string
	order     []ordering
	limit     *int
	offset    *int
	distinct  bool
}

// Select changes the column selection of the selector.
func (s *Selector) Select(columns ...string) *Selector {
	s.columns = columns
	return s
}

// AppendSelect appends additional columns to the selection.
func (s *Selector) AppendSelect(columns ...string) *Selector {
	s.columns = append(s.columns, columns...)
	return s
}

// SelectedColumns returns the current column selection.
func (s *Selector) SelectedColumns() []string { return s.columns }

// From sets the source table of the selector.
func (s *Selector) From(table string) *Selector {
	s.from = table
	return s
}

// FromSelect sets a subquery as the source of the selector. The alias is
// mandatory; MySQL rejects unnamed derived tables.
func (s *Selector) FromSelect(sub *Selector, alias string) *Selector {
	s.fromSel = sub
	s.as = alias
	return s
}

// As sets an alias for the source table.
func (s *Selector) As(alias string) *Selector {
	s.as = alias
	return s
}

// Dialect returns the dialect of the selector.
func (s *Selector) Dialect() string { return s.dialect }

// TableName returns the effective table name or alias used for
// qualifying columns.
func (s *Selector) TableName() string {
	if s.as != "" {
		return s.as
	}
	return s.from
}

// C returns a quoted, table-qualified reference to the given column.
func (s *Selector) C(column string) string {
	if s.collector != nil {
		s.collector(column)
	}
	quote := `"`
	if s.dialect == dialect.MySQL {
		quote = "`"
	}
	return quote + s.TableName() + quote + "." + quote + column + quote
}

func (s *Selector) quote(ident string) string {
	if strings.ContainsAny(ident, "`\"(* ") {
		return ident
	}
	quote := `"`
	if s.dialect == dialect.MySQL {
		quote = "`"
	}
	return quote + ident + quote
}

// WithColumnCollector registers a callback invoked with every column name
// referenced through C or OrderField. Used for runtime validation of
// group-by constraints.
func (s *Selector) WithColumnCollector(fn func(string)) *Selector {
	s.collector = fn
	return s
}

// Where appends the given predicate with the AND operator, or with OR
// after a call to Or.
func (s *Selector) Where(p *Predicate) *Selector {
	if s.toHaving {
		return s.addHaving(p)
	}
	switch {
	case s.where == nil:
		s.where = p
	case s.orNext:
		s.where = Or(s.where, p)
		s.orNext = false
	default:
		s.where = And(s.where, p)
	}
	return s
}

// Or makes the next call to Where join its predicate with the OR operator.
func (s *Selector) Or() *Selector {
	s.orNext = true
	return s
}

// P returns the accumulated WHERE predicate of the selector.
func (s *Selector) P() *Predicate { return s.where }

// SetP replaces the accumulated WHERE predicate of the selector.
func (s *Selector) SetP(p *Predicate) *Selector {
	s.where = p
	return s
}

// Having appends the given predicate to the HAVING clause.
func (s *Selector) Having(p *Predicate) *Selector {
	return s.addHaving(p)
}

func (s *Selector) addHaving(p *Predicate) *Selector {
	if s.having == nil {
		s.having = p
	} else {
		s.having = And(s.having, p)
	}
	return s
}

// HavingMode routes subsequent Where calls to the HAVING clause. It exists
// for applying user predicates, which call Where, as HAVING conditions.
func (s *Selector) HavingMode(on bool) *Selector {
	s.toHaving = on
	return s
}

// GroupBy appends the given columns to the GROUP BY clause.
func (s *Selector) GroupBy(columns ...string) *Selector {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// OrderField appends an order term on the given column.
func (s *Selector) OrderField(field string, opts ...OrderTermOption) *Selector {
	if s.collector != nil {
		s.collector(field)
	}
	var t orderTerm
	for _, opt := range opts {
		opt(&t)
	}
	s.order = append(s.order, ordering{column: field, term: t})
	return s
}

// OrderExprSelector appends an order term on a correlated subquery,
// e.g. ordering parents by their child count.
func (s *Selector) OrderExprSelector(sub *Selector, opts ...OrderTermOption) *Selector {
	var t orderTerm
	for _, opt := range opts {
		opt(&t)
	}
	s.order = append(s.order, ordering{sub: sub, term: t})
	return s
}

// OrderOf reports whether the selector carries an order term on the given
// column, and its direction. Used for keyset pagination to continue in the
// direction of the active ordering.
func (s *Selector) OrderOf(column string) (desc, ok bool) {
	for _, o := range s.order {
		if o.column == column {
			return o.term.desc, true
		}
	}
	return false, false
}

// ClearOrder removes all order terms from the selector.
func (s *Selector) ClearOrder() *Selector {
	s.order = nil
	return s
}

// Limit sets the LIMIT clause.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets the OFFSET clause.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// Distinct marks the selection as DISTINCT.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// Clone returns a duplicate of the selector.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	c := *s
	c.columns = append([]string(nil), s.columns...)
	c.groupBy = append([]string(nil), s.groupBy...)
	c.order = append([]ordering(nil), s.order...)
	return &c
}

func (s *Selector) query(b *Builder) {
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.columns) == 0 {
		b.WriteString("*")
	}
	for i, c := range s.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.quote(c))
	}
	b.WriteString(" FROM ")
	if s.fromSel != nil {
		b.Nested(s.fromSel.query)
	} else {
		b.Ident(s.from)
	}
	if s.as != "" {
		b.WriteString(" AS ").Ident(s.as)
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		s.where.render(b)
	}
	if len(s.groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		for i, c := range s.groupBy {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.quote(c))
		}
	}
	if s.having != nil {
		b.WriteString(" HAVING ")
		s.having.render(b)
	}
	if len(s.order) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range s.order {
			if i > 0 {
				b.WriteString(", ")
			}
			s.orderTerm(b, o)
		}
	}
	s.limitOffset(b)
}

func (s *Selector) orderTerm(b *Builder, o ordering) {
	expr := func() {
		if o.sub != nil {
			b.Nested(o.sub.query)
		} else {
			b.WriteString(s.C(o.column))
		}
	}
	// MySQL has no NULLS FIRST/LAST; emulate with an IS NULL sort key.
	if o.term.nulls != "" && s.dialect == dialect.MySQL {
		expr()
		if o.term.nulls == "FIRST" {
			b.WriteString(" IS NULL DESC, ")
		} else {
			b.WriteString(" IS NULL ASC, ")
		}
	}
	expr()
	if o.term.desc {
		b.WriteString(" DESC")
	}
	if o.term.nulls != "" && s.dialect != dialect.MySQL {
		b.WriteString(" NULLS " + o.term.nulls)
	}
}

func (s *Selector) limitOffset(b *Builder) {
	limit := s.limit
	if limit == nil && s.offset != nil && s.dialect != dialect.Postgres {
		// MySQL and SQLite require a LIMIT when OFFSET is present.
		n := math.MaxInt32
		limit = &n
	}
	if limit != nil {
		b.WriteString(" LIMIT " + strconv.Itoa(*limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET " + strconv.Itoa(*s.offset))
	}
}

// Query returns query representation of a `SELECT` statement.
func (s *Selector) Query() (string, []any) {
	b := &Builder{dialect: s.dialect}
	s.query(b)
	return b.String(), b.args
}

// InsertBuilder builds an INSERT statement.
type InsertBuilder struct {
	dialect   string
	table     string
	columns   []string
	values    [][]any
	returning []string
	conflict  *conflict
}

type conflict struct {
	columns   []string
	doNothing bool
	// update actions applied on conflict, in order.
	updateExcluded []string // columns set to the proposed (excluded) value.
	updateSet      []struct {
		column string
		value  any
	}
}

// Columns sets the columns of the INSERT statement.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = columns
	return i
}

// Values appends one row of values. Call repeatedly for multi-row inserts.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Returning appends the RETURNING clause. Supported on Postgres and SQLite.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// OnConflictColumns sets the conflict target columns for an upsert.
// On MySQL the target is implied by the colliding unique index.
func (i *InsertBuilder) OnConflictColumns(columns ...string) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.columns = columns
	return i
}

// DoNothing makes conflicting rows be skipped.
func (i *InsertBuilder) DoNothing() *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.doNothing = true
	return i
}

// DoUpdateSet sets a column to a constant value on conflict.
func (i *InsertBuilder) DoUpdateSet(column string, v any) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.updateSet = append(i.conflict.updateSet, struct {
		column string
		value  any
	}{column, v})
	return i
}

// DoUpdateExcluded sets the given columns to their proposed insert values
// on conflict.
func (i *InsertBuilder) DoUpdateExcluded(columns ...string) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.updateExcluded = append(i.conflict.updateExcluded, columns...)
	return i
}

// SupportsReturning reports if the dialect can return rows from
// INSERT/UPDATE statements.
func SupportsReturning(d string) bool {
	return d == dialect.Postgres || d == dialect.SQLite
}

// Query returns query representation of an `INSERT INTO` statement.
func (i *InsertBuilder) Query() (string, []any) {
	b := &Builder{dialect: i.dialect}
	b.WriteString("INSERT INTO ").Ident(i.table).WriteString(" (")
	for j, c := range i.columns {
		if j > 0 {
			b.WriteString(", ")
		}
		b.Ident(c)
	}
	b.WriteString(") VALUES ")
	for j, row := range i.values {
		if j > 0 {
			b.WriteString(", ")
		}
		if len(row) != len(i.columns) {
			b.AddError(fmt.Errorf("sql: %d values for %d columns", len(row), len(i.columns)))
		}
		b.Nested(func(b *Builder) { b.Args(row...) })
	}
	if i.conflict != nil {
		i.writeConflict(b)
	}
	if len(i.returning) > 0 && SupportsReturning(i.dialect) {
		b.WriteString(" RETURNING ")
		for j, c := range i.returning {
			if j > 0 {
				b.WriteString(", ")
			}
			b.Ident(c)
		}
	}
	return b.String(), b.args
}

func (i *InsertBuilder) writeConflict(b *Builder) {
	c := i.conflict
	switch i.dialect {
	case dialect.MySQL:
		if c.doNothing {
			// MySQL has no DO NOTHING form; a self-assignment keeps
			// the statement a no-op for conflicting rows.
			b.WriteString(" ON DUPLICATE KEY UPDATE ").Ident(i.columns[0]).WriteOp("=").Ident(i.columns[0])
			return
		}
		b.WriteString(" ON DUPLICATE KEY UPDATE ")
		for j, col := range c.updateExcluded {
			if j > 0 {
				b.WriteString(", ")
			}
			b.Ident(col).WriteOp("=").WriteString("VALUES(").Ident(col).WriteString(")")
		}
		for j, set := range c.updateSet {
			if j > 0 || len(c.updateExcluded) > 0 {
				b.WriteString(", ")
			}
			b.Ident(set.column).WriteOp("=").Arg(set.value)
		}
	default:
		b.WriteString(" ON CONFLICT")
		if len(c.columns) > 0 {
			b.WriteString(" (")
			for j, col := range c.columns {
				if j > 0 {
					b.WriteString(", ")
				}
				b.Ident(col)
			}
			b.WriteString(")")
		}
		if c.doNothing {
			b.WriteString(" DO NOTHING")
			return
		}
		b.WriteString(" DO UPDATE SET ")
		for j, col := range c.updateExcluded {
			if j > 0 {
				b.WriteString(", ")
			}
			b.Ident(col).WriteOp("=").WriteString("excluded.").Ident(col)
		}
		for j, set := range c.updateSet {
			if j > 0 || len(c.updateExcluded) > 0 {
				b.WriteString(", ")
			}
			b.Ident(set.column).WriteOp("=").Arg(set.value)
		}
	}
}

// Err returns the first error recorded while building the statement.
func (i *InsertBuilder) Err() error {
	b := &Builder{dialect: i.dialect}
	for _, row := range i.values {
		if len(row) != len(i.columns) {
			b.AddError(fmt.Errorf("sql: %d values for %d columns", len(row), len(i.columns)))
		}
	}
	return b.Err()
}

type updateOp uint8

const (
	opSet updateOp = iota
	opAdd
	opMul
	opDiv
)

// UpdateBuilder builds an UPDATE statement.
type UpdateBuilder struct {
	dialect string
	table   string
	sets    []updateSet
	where   *Predicate
}

type updateSet struct {
	column string
	op     updateOp
	value  any
	null   bool
}

// Set sets a column to the given value.
func (u *UpdateBuilder) Set(column string, v any) *UpdateBuilder {
	u.sets = append(u.sets, updateSet{column: column, op: opSet, value: v})
	return u
}

// SetNull sets a column to NULL.
func (u *UpdateBuilder) SetNull(column string) *UpdateBuilder {
	u.sets = append(u.sets, updateSet{column: column, op: opSet, null: true})
	return u
}

// Add adds the given value to a numeric column. NULL counts as zero.
func (u *UpdateBuilder) Add(column string, v any) *UpdateBuilder {
	u.sets = append(u.sets, updateSet{column: column, op: opAdd, value: v})
	return u
}

// Mul multiplies a numeric column by the given value. NULL counts as zero.
func (u *UpdateBuilder) Mul(column string, v any) *UpdateBuilder {
	u.sets = append(u.sets, updateSet{column: column, op: opMul, value: v})
	return u
}

// Div divides a numeric column by the given value. NULL counts as zero.
// A zero divisor must be rejected before building the statement.
func (u *UpdateBuilder) Div(column string, v any) *UpdateBuilder {
	u.sets = append(u.sets, updateSet{column: column, op: opDiv, value: v})
	return u
}

// Where sets the WHERE clause of the UPDATE statement.
func (u *UpdateBuilder) Where(p *Predicate) *UpdateBuilder {
	if u.where == nil {
		u.where = p
	} else {
		u.where = And(u.where, p)
	}
	return u
}

// Empty reports whether the builder carries no column changes.
func (u *UpdateBuilder) Empty() bool { return len(u.sets) == 0 }

// Query returns query representation of an `UPDATE` statement.
func (u *UpdateBuilder) Query() (string, []any) {
	b := &Builder{dialect: u.dialect}
	b.WriteString("UPDATE ").Ident(u.table).WriteString(" SET ")
	for j, set := range u.sets {
		if j > 0 {
			b.WriteString(", ")
		}
		b.Ident(set.column).WriteOp("=")
		switch {
		case set.null:
			b.WriteString("NULL")
		case set.op == opSet:
			b.Arg(set.value)
		default:
			op := map[updateOp]string{opAdd: "+", opMul: "*", opDiv: "/"}[set.op]
			b.WriteString("COALESCE(").Ident(set.column).WriteString(", 0)").WriteOp(op).Arg(set.value)
		}
	}
	if u.where != nil {
		b.WriteString(" WHERE ")
		u.where.render(b)
	}
	return b.String(), b.args
}

// DeleteBuilder builds a DELETE statement.
type DeleteBuilder struct {
	dialect string
	table   string
	where   *Predicate
}

// Where sets the WHERE clause of the DELETE statement.
func (d *DeleteBuilder) Where(p *Predicate) *DeleteBuilder {
	if d.where == nil {
		d.where = p
	} else {
		d.where = And(d.where, p)
	}
	return d
}

// Query returns query representation of a `DELETE` statement.
func (d *DeleteBuilder) Query() (string, []any) {
	b := &Builder{dialect: d.dialect}
	b.WriteString("DELETE FROM ").Ident(d.table)
	if d.where != nil {
		b.WriteString(" WHERE ")
		d.where.render(b)
	}
	return b.String(), b.args
}
