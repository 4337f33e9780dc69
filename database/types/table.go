//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

// Projection is an item of the SELECT list. It is implemented by
// TableColumnPair, AliasedColumn, SQLLiteral, AllColumns and CountAll.
type Projection interface {
	isProjection()
}

// TableColumnPair identifies a column scoped to a table. Table may itself be
// schema-qualified ("public.Products").
//
// Example:
//
//	Col("Products", "Name") // [Products].[Name] or "Products"."Name"
type TableColumnPair struct {
	Table  string
	Column string
}

// Col creates a TableColumnPair.
func Col(table, column string) TableColumnPair {
	return TableColumnPair{Table: table, Column: column}
}

// As turns the pair into an aliased projection.
func (p TableColumnPair) As(alias string) AliasedColumn {
	return AliasedColumn{Table: p.Table, Column: p.Column, Alias: alias}
}

func (TableColumnPair) isProjection() {}

// AliasedColumn is a qualified column projected under another name.
type AliasedColumn struct {
	Table  string
	Column string
	Alias  string
}

func (AliasedColumn) isProjection() {}

// SQLLiteral marks text that is inserted verbatim, without quoting or reinterpretation.
// It can be used as a projection or as a complete WHERE/HAVING body.
//
// SECURITY WARNING: literal text is never escaped. Do not build it from user input.
type SQLLiteral struct {
	Text string
}

// Raw creates a SQLLiteral.
func Raw(text string) SQLLiteral {
	return SQLLiteral{Text: text}
}

func (SQLLiteral) isProjection() {}
func (SQLLiteral) isPredicate()  {}

// AllColumns is the SELECT * sentinel. It renders as <table>.* when the query
// has exactly one source table, and as a bare * otherwise.
type AllColumns struct{}

func (AllColumns) isProjection() {}

// CountAll is the COUNT(*) aggregate projection.
type CountAll struct{}

func (CountAll) isProjection() {}
