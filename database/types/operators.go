//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

import (
	"fmt"
	"strings"
)

// ComparisonOperator governs how a predicate compares a column with its value.
type ComparisonOperator int

const (
	EqualTo ComparisonOperator = iota
	NotEqualTo
	GreaterThan
	GreaterThanOrEqualTo
	LessThan
	LessThanOrEqualTo
	StartsWith
	EndsWith
	Contains
	In
	IsNull
	IsNotNull
)

var comparisonOperatorNames = [...]string{
	EqualTo:              "EqualTo",
	NotEqualTo:           "NotEqualTo",
	GreaterThan:          "GreaterThan",
	GreaterThanOrEqualTo: "GreaterThanOrEqualTo",
	LessThan:             "LessThan",
	LessThanOrEqualTo:    "LessThanOrEqualTo",
	StartsWith:           "StartsWith",
	EndsWith:             "EndsWith",
	Contains:             "Contains",
	In:                   "In",
	IsNull:               "IsNull",
	IsNotNull:            "IsNotNull",
}

// comparisonOperatorAliases maps lower-cased spellings accepted by ParseComparisonOperator.
var comparisonOperatorAliases = map[string]ComparisonOperator{
	"=": EqualTo, "eq": EqualTo, "equals": EqualTo,
	"<>": NotEqualTo, "!=": NotEqualTo, "ne": NotEqualTo, "neq": NotEqualTo,
	">": GreaterThan, "gt": GreaterThan,
	">=": GreaterThanOrEqualTo, "gte": GreaterThanOrEqualTo,
	"<": LessThan, "lt": LessThan,
	"<=": LessThanOrEqualTo, "lte": LessThanOrEqualTo,
	"prefix": StartsWith,
	"suffix": EndsWith,
	"like":   Contains,
	"null":   IsNull, "notnull": IsNotNull,
}

// Valid reports whether op is one of the declared operators.
func (op ComparisonOperator) Valid() bool {
	return op >= EqualTo && op <= IsNotNull
}

func (op ComparisonOperator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("ComparisonOperator(%d)", int(op))
	}
	return comparisonOperatorNames[op]
}

// IsLike reports whether the operator renders as a LIKE pattern.
func (op ComparisonOperator) IsLike() bool {
	return op == StartsWith || op == EndsWith || op == Contains
}

// IsNullCheck reports whether the operator ignores its value.
func (op ComparisonOperator) IsNullCheck() bool {
	return op == IsNull || op == IsNotNull
}

// IsRelational reports whether the operator is a plain binary comparison,
// the only kind allowed in a JOIN ... ON condition.
func (op ComparisonOperator) IsRelational() bool {
	return op >= EqualTo && op <= LessThanOrEqualTo
}

// Symbol returns the SQL comparison token for relational operators.
// Other operators return an empty string.
func (op ComparisonOperator) Symbol() string {
	switch op {
	case EqualTo:
		return "="
	case NotEqualTo:
		return "<>"
	case GreaterThan:
		return ">"
	case GreaterThanOrEqualTo:
		return ">="
	case LessThan:
		return "<"
	case LessThanOrEqualTo:
		return "<="
	default:
		return ""
	}
}

// ParseComparisonOperator resolves an operator from its Go name (case-insensitive),
// a SQL symbol, or a short alias such as "eq", "gte" or "notnull".
func ParseComparisonOperator(s string) (ComparisonOperator, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range comparisonOperatorNames {
		if strings.ToLower(name) == key {
			return ComparisonOperator(i), nil
		}
	}
	if op, ok := comparisonOperatorAliases[key]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: unknown comparison operator %q", ErrUnsupportedShape, s)
}

// LogicOperator joins two predicates of a WhereStatement.
type LogicOperator int

const (
	And LogicOperator = iota
	Or
)

// Valid reports whether l is And or Or.
func (l LogicOperator) Valid() bool {
	return l == And || l == Or
}

// Keyword returns the SQL keyword for the operator.
func (l LogicOperator) Keyword() string {
	if l == Or {
		return "OR"
	}
	return "AND"
}

func (l LogicOperator) String() string {
	switch l {
	case And:
		return "And"
	case Or:
		return "Or"
	default:
		return fmt.Sprintf("LogicOperator(%d)", int(l))
	}
}

// ParseLogicOperator resolves "and"/"or" in any case. An empty string means And.
func ParseLogicOperator(s string) (LogicOperator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and", "&&":
		return And, nil
	case "or", "||":
		return Or, nil
	default:
		return 0, fmt.Errorf("%w: unknown logic operator %q", ErrUnsupportedShape, s)
	}
}

// JoinType selects the join keyword.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

var joinKeywords = [...]string{
	InnerJoin: "INNER JOIN",
	LeftJoin:  "LEFT JOIN",
	RightJoin: "RIGHT JOIN",
	FullJoin:  "FULL JOIN",
	CrossJoin: "CROSS JOIN",
}

// Valid reports whether j is one of the declared join types.
func (j JoinType) Valid() bool {
	return j >= InnerJoin && j <= CrossJoin
}

// Keyword returns the SQL join keyword, e.g. "LEFT JOIN".
func (j JoinType) Keyword() string {
	if !j.Valid() {
		return ""
	}
	return joinKeywords[j]
}

func (j JoinType) String() string {
	switch j {
	case InnerJoin:
		return "InnerJoin"
	case LeftJoin:
		return "LeftJoin"
	case RightJoin:
		return "RightJoin"
	case FullJoin:
		return "FullJoin"
	case CrossJoin:
		return "CrossJoin"
	default:
		return fmt.Sprintf("JoinType(%d)", int(j))
	}
}

// ParseJoinType accepts the Go name ("LeftJoin"), the short form ("left")
// or the SQL keyword ("LEFT JOIN"), case-insensitively.
func ParseJoinType(s string) (JoinType, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "join"), " ")
	switch key {
	case "inner", "":
		return InnerJoin, nil
	case "left", "left outer":
		return LeftJoin, nil
	case "right", "right outer":
		return RightJoin, nil
	case "full", "full outer":
		return FullJoin, nil
	case "cross":
		return CrossJoin, nil
	default:
		return 0, fmt.Errorf("%w: unknown join type %q", ErrUnsupportedShape, s)
	}
}

// SortDirection orders an ORDER BY item.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Valid reports whether d is Ascending or Descending.
func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

// Keyword returns ASC or DESC.
func (d SortDirection) Keyword() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// ParseSortDirection accepts asc/ascending/desc/descending in any case.
// An empty string means Ascending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort direction %q", ErrUnsupportedShape, s)
	}
}
