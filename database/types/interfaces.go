// Package types contains the data model and the public builder contract for
// the SELECT query builder. The types live apart from the builder
// implementation so they can be shared by mocks, definition documents and
// callers without import cycles.
//
//nolint:revive // Package name "types" is intentionally generic to avoid circular
package types

// Vendor identifies a SQL dialect.
type Vendor = string

const (
	// SQLServer quotes identifiers with brackets and pages with TOP or OFFSET ... FETCH.
	SQLServer Vendor = "sqlserver"
	// PostgreSQL quotes identifiers with double quotes and pages with LIMIT/OFFSET.
	PostgreSQL Vendor = "postgresql"
)

// SelectQueryBuilder is the fluent SELECT construction contract.
//
// Every mutating method returns the same builder. Input problems are detected
// by the mutating call itself and recorded; once an error is recorded further
// mutations are ignored and Err, BuildQuery and ToSQL report it.
type SelectQueryBuilder interface {
	// Projection
	SelectAll() SelectQueryBuilder
	Select(table, column string) SelectQueryBuilder
	SelectColumns(pairs ...TableColumnPair) SelectQueryBuilder
	SelectAs(table, column, alias string) SelectQueryBuilder
	SelectRaw(text string) SelectQueryBuilder
	SelectItems(items ...Projection) SelectQueryBuilder
	SelectCountAll() SelectQueryBuilder
	SelectStruct(table string, model any) SelectQueryBuilder
	Distinct() SelectQueryBuilder

	// Sources
	From(tables ...string) SelectQueryBuilder
	Join(joinType JoinType, joinTable, joinColumn string, op ComparisonOperator, baseTable, baseColumn string) SelectQueryBuilder
	JoinSpec(spec JoinSpec) SelectQueryBuilder

	// Filtering. Each Where*/Having* call replaces the previous filter.
	Where(pred Predicate) SelectQueryBuilder
	WhereColumn(table, column string, op ComparisonOperator, value any) SelectQueryBuilder
	WhereRaw(condition string) SelectQueryBuilder
	GroupBy(table, column string) SelectQueryBuilder
	GroupByColumns(pairs ...TableColumnPair) SelectQueryBuilder
	Having(pred Predicate) SelectQueryBuilder
	HavingColumn(table, column string, op ComparisonOperator, value any) SelectQueryBuilder
	HavingRaw(condition string) SelectQueryBuilder

	// Ordering and paging
	OrderBy(table, column string, dir SortDirection) SelectQueryBuilder
	OrderByColumn(column string, dir SortDirection) SelectQueryBuilder
	OrderByRaw(expr string) SelectQueryBuilder
	Skip(n int) SelectQueryBuilder
	Take(n int) SelectQueryBuilder

	// Rendering
	Vendor() Vendor
	Err() error
	BuildQuery() (string, error)
	ToSQL() (sql string, args []any, err error)
}

// QueryBuilderInterface hands out SELECT builders bound to one dialect.
type QueryBuilderInterface interface {
	Vendor() Vendor
	Query() SelectQueryBuilder
	EscapeIdentifier(identifier string) string
	Err() error
}
