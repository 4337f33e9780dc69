package builder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// fragment is a rendered piece of SQL plus its bind arguments. Inline
// fragments never carry arguments.
type fragment struct {
	sql  string
	args []any
}

// toSqlizer hands the fragment to squirrel.
func (f fragment) toSqlizer() squirrel.Sqlizer {
	return squirrel.Expr(f.sql, f.args...)
}

// compilePredicate is the single dispatch point for every WHERE/HAVING input shape.
// With bind set, comparison values become ? placeholders; otherwise they are inlined.
func compilePredicate(d dialect, pred dbtypes.Predicate, bind bool) (fragment, error) {
	switch p := pred.(type) {
	case nil:
		return fragment{}, dbtypes.ErrNilPredicate
	case dbtypes.SQLLiteral:
		if strings.TrimSpace(p.Text) == "" {
			return fragment{}, dbtypes.ErrEmptyLiteral
		}
		return fragment{sql: rawText(p.Text, bind)}, nil
	case dbtypes.WhereClause:
		return compileClause(d, p, bind)
	case dbtypes.WhereStatement:
		return compileStatement(d, p, bind)
	default:
		return fragment{}, fmt.Errorf("%w: predicate of type %T", dbtypes.ErrUnsupportedShape, pred)
	}
}

// compileStatement renders clause1 then "<logic> clauseN" for each later clause.
// The first clause's logic is never rendered.
func compileStatement(d dialect, stmt dbtypes.WhereStatement, bind bool) (fragment, error) {
	if len(stmt) == 0 {
		return fragment{}, dbtypes.ErrEmptyStatement
	}

	var sb strings.Builder
	var args []any
	for i, clause := range stmt {
		if i > 0 {
			if !clause.Logic.Valid() {
				return fragment{}, fmt.Errorf("%w: clause %d: logic operator %s", dbtypes.ErrUnsupportedShape, i+1, clause.Logic)
			}
			sb.WriteString(" ")
			sb.WriteString(clause.Logic.Keyword())
			sb.WriteString(" ")
		}
		part, err := compileClause(d, clause, bind)
		if err != nil {
			return fragment{}, fmt.Errorf("clause %d: %w", i+1, err)
		}
		sb.WriteString(part.sql)
		args = append(args, part.args...)
	}
	return fragment{sql: sb.String(), args: args}, nil
}

// compileClause renders "<table>.<column> <op> <value>".
func compileClause(d dialect, c dbtypes.WhereClause, bind bool) (fragment, error) {
	if err := validateIdentifiers(c.Table, c.Column); err != nil {
		return fragment{}, err
	}
	lhs := quoteQualified(d, c.Table, c.Column)
	op := c.Operator

	switch {
	case op == dbtypes.IsNull:
		return fragment{sql: lhs + " IS NULL"}, nil
	case op == dbtypes.IsNotNull:
		return fragment{sql: lhs + " IS NOT NULL"}, nil
	case op.IsLike():
		text, err := likeText(c.Value)
		if err != nil {
			return fragment{}, err
		}
		pattern := likePattern(op, text)
		if bind {
			return fragment{sql: lhs + " LIKE ?", args: []any{pattern}}, nil
		}
		return fragment{sql: lhs + " LIKE '" + pattern + "'"}, nil
	case op == dbtypes.In:
		return compileIn(lhs, c.Value, bind)
	case op.IsRelational():
		return compileRelational(lhs, op, c.Value, bind)
	default:
		return fragment{}, fmt.Errorf("%w: comparison operator %s", dbtypes.ErrUnsupportedShape, op)
	}
}

func compileRelational(lhs string, op dbtypes.ComparisonOperator, value any, bind bool) (fragment, error) {
	if isListValue(value) {
		return fragment{}, fmt.Errorf("%w: operator %s cannot compare against a list, use In", dbtypes.ErrUnsupportedShape, op)
	}
	// Validate the value in both modes so BuildQuery and ToSQL agree on what is accepted.
	text, err := renderLiteral(value)
	if err != nil {
		return fragment{}, err
	}
	if bind {
		return fragment{sql: lhs + " " + op.Symbol() + " ?", args: []any{value}}, nil
	}
	return fragment{sql: lhs + " " + op.Symbol() + " " + text}, nil
}

func compileIn(lhs string, value any, bind bool) (fragment, error) {
	values := listValues(value)
	if len(values) == 0 {
		return fragment{}, dbtypes.ErrEmptyInList
	}
	list, err := renderList(values)
	if err != nil {
		return fragment{}, err
	}
	if bind {
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		return fragment{sql: lhs + " IN (" + marks + ")", args: values}, nil
	}
	return fragment{sql: lhs + " IN " + list}, nil
}

// isListValue reports slice and array operands.
func isListValue(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
