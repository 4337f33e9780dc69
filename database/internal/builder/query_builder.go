// Package builder implements the dialect-aware SELECT query builder.
// The accumulator and the renderer are vendor-agnostic; identifier quoting,
// bind placeholders and paging are delegated to a per-vendor dialect.
package builder

import (
	"fmt"
	"strings"

	"github.com/gaborage/sqlbricks/database/internal/columns"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// QueryBuilder binds a dialect and hands out empty SELECT builders for it.
type QueryBuilder struct {
	dialect dialect
}

// NewQueryBuilder creates a query builder for the specified vendor.
// Unknown vendors fail with ErrUnsupportedShape.
func NewQueryBuilder(vendor dbtypes.Vendor) (*QueryBuilder, error) {
	d, err := newDialect(vendor)
	if err != nil {
		return nil, err
	}
	return &QueryBuilder{dialect: d}, nil
}

// Vendor returns the database vendor string
func (qb *QueryBuilder) Vendor() dbtypes.Vendor {
	return qb.dialect.vendor()
}

// Query returns a new, empty SELECT builder. Builders never share state.
func (qb *QueryBuilder) Query() *SelectQueryBuilder {
	return &SelectQueryBuilder{dialect: qb.dialect}
}

// FailedQuery returns a builder that already carries err, for callers that
// hand out builders before their vendor has been resolved.
func FailedQuery(vendor dbtypes.Vendor, err error) *SelectQueryBuilder {
	return &SelectQueryBuilder{
		dialect: unknownDialect{name: vendor},
		err:     fmt.Errorf("NewQueryBuilder: %w", err),
	}
}

// EscapeIdentifier quotes a possibly dotted identifier according to vendor rules.
func (qb *QueryBuilder) EscapeIdentifier(identifier string) string {
	return quoteIdentifier(qb.dialect, identifier)
}

// SelectQueryBuilder accumulates the fragments of one SELECT statement.
//
// It is a mutable builder: every method appends to (or replaces) state on the
// receiver and returns the receiver. It is not safe for concurrent mutation.
// Rendering reads the state without changing it, so BuildQuery and ToSQL can
// be called any number of times with identical results.
type SelectQueryBuilder struct {
	dialect dialect

	projections []dbtypes.Projection
	distinct    bool
	tables      []string
	joins       []dbtypes.JoinSpec
	where       dbtypes.Predicate
	groupBy     []dbtypes.TableColumnPair
	having      dbtypes.Predicate
	orderBy     []orderItem
	paging      paging

	err error
}

var _ dbtypes.SelectQueryBuilder = (*SelectQueryBuilder)(nil)

// orderItem is a qualified column, a bare column, or raw text.
type orderItem struct {
	table  string
	column string
	dir    dbtypes.SortDirection
	raw    string
}

// fail records the first error together with the method that raised it.
func (sqb *SelectQueryBuilder) fail(method string, err error) dbtypes.SelectQueryBuilder {
	if sqb.err == nil {
		sqb.err = fmt.Errorf("%s: %w", method, err)
	}
	return sqb
}

// Err returns the first error recorded by a mutating call, if any.
func (sqb *SelectQueryBuilder) Err() error {
	return sqb.err
}

// Vendor returns the dialect this builder renders for.
func (sqb *SelectQueryBuilder) Vendor() dbtypes.Vendor {
	return sqb.dialect.vendor()
}

// ========== Projection ==========

// SelectAll projects every column. The star is resolved at render time:
// <table>.* with exactly one source table, a bare * otherwise.
func (sqb *SelectQueryBuilder) SelectAll() dbtypes.SelectQueryBuilder {
	return sqb.SelectItems(dbtypes.AllColumns{})
}

// Select appends a qualified column.
func (sqb *SelectQueryBuilder) Select(table, column string) dbtypes.SelectQueryBuilder {
	return sqb.SelectItems(dbtypes.Col(table, column))
}

// SelectColumns appends qualified columns in the given order.
func (sqb *SelectQueryBuilder) SelectColumns(pairs ...dbtypes.TableColumnPair) dbtypes.SelectQueryBuilder {
	items := make([]dbtypes.Projection, len(pairs))
	for i, p := range pairs {
		items[i] = p
	}
	return sqb.SelectItems(items...)
}

// SelectAs appends a qualified column projected under alias.
func (sqb *SelectQueryBuilder) SelectAs(table, column, alias string) dbtypes.SelectQueryBuilder {
	return sqb.SelectItems(dbtypes.AliasedColumn{Table: table, Column: column, Alias: alias})
}

// SelectRaw appends projection text verbatim.
//
// WARNING: the text bypasses identifier quoting. Never build it from user input.
func (sqb *SelectQueryBuilder) SelectRaw(text string) dbtypes.SelectQueryBuilder {
	return sqb.SelectItems(dbtypes.Raw(text))
}

// SelectCountAll appends COUNT(*).
func (sqb *SelectQueryBuilder) SelectCountAll() dbtypes.SelectQueryBuilder {
	return sqb.SelectItems(dbtypes.CountAll{})
}

// SelectItems appends projections of any supported kind, preserving order.
// Nothing is appended when any item is invalid.
func (sqb *SelectQueryBuilder) SelectItems(items ...dbtypes.Projection) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	for i, item := range items {
		if err := validateProjection(item); err != nil {
			return sqb.fail("Select", fmt.Errorf("item %d: %w", i+1, err))
		}
	}
	sqb.projections = append(sqb.projections, items...)
	return sqb
}

// SelectStruct appends one qualified column per `db`-tagged field of model,
// in field declaration order. model must be a struct or a pointer to one.
//
// Example:
//
//	type Product struct {
//	    ID   int64  `db:"Id"`
//	    Name string `db:"Name"`
//	}
//	sqb.SelectStruct("Products", &Product{}) // [Products].[Id], [Products].[Name]
func (sqb *SelectQueryBuilder) SelectStruct(table string, model any) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if err := validateIdentifiers(table); err != nil {
		return sqb.fail("SelectStruct", err)
	}
	metadata, err := columns.Parse(model)
	if err != nil {
		return sqb.fail("SelectStruct", err)
	}
	return sqb.SelectColumns(metadata.Pairs(table)...)
}

// Distinct sets the DISTINCT flag. Calling it again has no further effect.
func (sqb *SelectQueryBuilder) Distinct() dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	sqb.distinct = true
	return sqb
}

// ========== Sources ==========

// From appends source tables. Each may be schema-qualified.
func (sqb *SelectQueryBuilder) From(tables ...string) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if len(tables) == 0 {
		return sqb.fail("From", fmt.Errorf("%w: at least one table is required", dbtypes.ErrInvalidArgument))
	}
	if err := validateIdentifiers(tables...); err != nil {
		return sqb.fail("From", err)
	}
	sqb.tables = append(sqb.tables, tables...)
	return sqb
}

// Join appends a join rendered as
// <JOIN> <joinTable> ON <baseTable>.<baseColumn> <op> <joinTable>.<joinColumn>.
func (sqb *SelectQueryBuilder) Join(joinType dbtypes.JoinType, joinTable, joinColumn string, op dbtypes.ComparisonOperator, baseTable, baseColumn string) dbtypes.SelectQueryBuilder {
	return sqb.JoinSpec(dbtypes.JoinSpec{
		Type:       joinType,
		JoinTable:  joinTable,
		JoinColumn: joinColumn,
		Operator:   op,
		BaseTable:  baseTable,
		BaseColumn: baseColumn,
	})
}

// JoinSpec appends a prepared join. Joins render in call order.
func (sqb *SelectQueryBuilder) JoinSpec(spec dbtypes.JoinSpec) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if err := validateJoin(spec); err != nil {
		return sqb.fail("Join", err)
	}
	sqb.joins = append(sqb.joins, spec)
	return sqb
}

// ========== Filtering ==========

// Where sets the WHERE body, replacing any earlier filter.
func (sqb *SelectQueryBuilder) Where(pred dbtypes.Predicate) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Where", &sqb.where, pred)
}

// WhereColumn sets a single-comparison WHERE body.
func (sqb *SelectQueryBuilder) WhereColumn(table, column string, op dbtypes.ComparisonOperator, value any) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Where", &sqb.where, dbtypes.Cond(table, column, op, value))
}

// WhereRaw sets the WHERE body to condition verbatim.
//
// WARNING: This method bypasses all identifier quoting and value rendering.
// Never concatenate user input into condition.
func (sqb *SelectQueryBuilder) WhereRaw(condition string) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Where", &sqb.where, dbtypes.Raw(condition))
}

// GroupBy appends a qualified group-by column.
func (sqb *SelectQueryBuilder) GroupBy(table, column string) dbtypes.SelectQueryBuilder {
	return sqb.GroupByColumns(dbtypes.Col(table, column))
}

// GroupByColumns appends qualified group-by columns in order.
func (sqb *SelectQueryBuilder) GroupByColumns(pairs ...dbtypes.TableColumnPair) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	for _, p := range pairs {
		if err := validateIdentifiers(p.Table, p.Column); err != nil {
			return sqb.fail("GroupBy", err)
		}
	}
	sqb.groupBy = append(sqb.groupBy, pairs...)
	return sqb
}

// Having sets the HAVING body, replacing any earlier one.
func (sqb *SelectQueryBuilder) Having(pred dbtypes.Predicate) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Having", &sqb.having, pred)
}

// HavingColumn sets a single-comparison HAVING body.
func (sqb *SelectQueryBuilder) HavingColumn(table, column string, op dbtypes.ComparisonOperator, value any) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Having", &sqb.having, dbtypes.Cond(table, column, op, value))
}

// HavingRaw sets the HAVING body to condition verbatim.
func (sqb *SelectQueryBuilder) HavingRaw(condition string) dbtypes.SelectQueryBuilder {
	return sqb.setPredicate("Having", &sqb.having, dbtypes.Raw(condition))
}

// setPredicate compiles pred once to surface errors at the call site, then stores it.
func (sqb *SelectQueryBuilder) setPredicate(method string, slot *dbtypes.Predicate, pred dbtypes.Predicate) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if _, err := compilePredicate(sqb.dialect, pred, false); err != nil {
		return sqb.fail(method, err)
	}
	if stmt, ok := pred.(dbtypes.WhereStatement); ok {
		pred = append(dbtypes.WhereStatement(nil), stmt...)
	}
	*slot = pred
	return sqb
}

// ========== Ordering and paging ==========

// OrderBy appends <table>.<column> <ASC|DESC>.
func (sqb *SelectQueryBuilder) OrderBy(table, column string, dir dbtypes.SortDirection) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if err := validateIdentifiers(table, column); err != nil {
		return sqb.fail("OrderBy", err)
	}
	return sqb.appendOrder(orderItem{table: table, column: column, dir: dir})
}

// OrderByColumn appends <column> <ASC|DESC> without a table qualifier.
func (sqb *SelectQueryBuilder) OrderByColumn(column string, dir dbtypes.SortDirection) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if err := validateIdentifiers(column); err != nil {
		return sqb.fail("OrderBy", err)
	}
	return sqb.appendOrder(orderItem{column: column, dir: dir})
}

// OrderByRaw appends expr verbatim, e.g. `COUNT("Name") DESC`.
func (sqb *SelectQueryBuilder) OrderByRaw(expr string) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if strings.TrimSpace(expr) == "" {
		return sqb.fail("OrderBy", dbtypes.ErrEmptyLiteral)
	}
	return sqb.appendOrder(orderItem{raw: expr})
}

func (sqb *SelectQueryBuilder) appendOrder(item orderItem) dbtypes.SelectQueryBuilder {
	if item.raw == "" && !item.dir.Valid() {
		return sqb.fail("OrderBy", fmt.Errorf("%w: sort direction %s", dbtypes.ErrUnsupportedShape, item.dir))
	}
	sqb.orderBy = append(sqb.orderBy, item)
	return sqb
}

// Skip sets the number of rows to skip. Negative values are rejected.
func (sqb *SelectQueryBuilder) Skip(n int) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if n < 0 {
		return sqb.fail("Skip", fmt.Errorf("%w: got %d", dbtypes.ErrNegativePaging, n))
	}
	sqb.paging.skip = uint64(n)
	sqb.paging.hasSkip = true
	return sqb
}

// Take sets the maximum number of rows to return. Negative values are rejected.
func (sqb *SelectQueryBuilder) Take(n int) dbtypes.SelectQueryBuilder {
	if sqb.err != nil {
		return sqb
	}
	if n < 0 {
		return sqb.fail("Take", fmt.Errorf("%w: got %d", dbtypes.ErrNegativePaging, n))
	}
	sqb.paging.take = uint64(n)
	sqb.paging.hasTake = true
	return sqb
}

// ========== Rendering ==========

// BuildQuery renders the statement with values inlined as literals.
func (sqb *SelectQueryBuilder) BuildQuery() (string, error) {
	sql, _, err := sqb.render(false)
	return sql, err
}

// ToSQL renders the statement with comparison values replaced by vendor
// placeholders (@p1 for SQL Server, $1 for PostgreSQL) and returns the
// values as ordered arguments. Clause structure matches BuildQuery.
func (sqb *SelectQueryBuilder) ToSQL() (sql string, args []any, err error) {
	return sqb.render(true)
}
