//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

// Predicate is the body of a WHERE or HAVING clause. It is implemented by
// WhereClause (one comparison), WhereStatement (an ordered chain of
// comparisons) and SQLLiteral (verbatim text).
type Predicate interface {
	isPredicate()
}

// WhereClause is a single comparison: <table>.<column> <operator> <value>.
// Logic joins the clause to its predecessor inside a WhereStatement and is
// ignored for the first clause and for a clause used on its own.
type WhereClause struct {
	Logic    LogicOperator
	Table    string
	Column   string
	Operator ComparisonOperator
	Value    any
}

// Cond creates a WhereClause with And logic.
//
// Example:
//
//	Cond("Products", "Name", StartsWith, "A") // [Products].[Name] LIKE 'A%'
func Cond(table, column string, op ComparisonOperator, value any) WhereClause {
	return WhereClause{Logic: And, Table: table, Column: column, Operator: op, Value: value}
}

func (WhereClause) isPredicate() {}

// WhereStatement is an ordered sequence of clauses rendered as
// clause1 <logic2> clause2 <logic3> clause3 ... without added parentheses.
type WhereStatement []WhereClause

// Statement starts a WhereStatement with first.
func Statement(first WhereClause, rest ...WhereClause) WhereStatement {
	s := make(WhereStatement, 0, 1+len(rest))
	s = append(s, first)
	return append(s, rest...)
}

// And appends c joined with AND and returns the extended statement.
func (s WhereStatement) And(c WhereClause) WhereStatement {
	c.Logic = And
	return s.extend(c)
}

// Or appends c joined with OR and returns the extended statement.
func (s WhereStatement) Or(c WhereClause) WhereStatement {
	c.Logic = Or
	return s.extend(c)
}

// extend copies before appending so statements derived from a common prefix never share storage.
func (s WhereStatement) extend(c WhereClause) WhereStatement {
	out := make(WhereStatement, len(s), len(s)+1)
	copy(out, s)
	return append(out, c)
}

func (WhereStatement) isPredicate() {}

// JoinSpec describes one join. The ON condition places the base side first:
// <baseTable>.<baseColumn> <operator> <joinTable>.<joinColumn>.
// CrossJoin renders without an ON condition.
type JoinSpec struct {
	Type       JoinType
	JoinTable  string
	JoinColumn string
	Operator   ComparisonOperator
	BaseTable  string
	BaseColumn string
}
