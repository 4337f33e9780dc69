package builder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// renderLiteral renders a comparison value as inline SQL text.
// Strings are wrapped in single quotes without escaping, so callers that
// handle untrusted values should render with ToSQL instead.
func renderLiteral(value any) (string, error) {
	if value == nil {
		return "NULL", nil
	}

	switch v := value.(type) {
	case string:
		return "'" + v + "'", nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return "'" + v.Format(timestampLayout) + "'", nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return "'" + rv.String() + "'", nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "NULL", nil
		}
		return renderLiteral(rv.Elem().Interface())
	}

	// Numeric and bool kinds are handled above, so a Stringer here is text.
	if v, ok := value.(fmt.Stringer); ok {
		return "'" + v.String() + "'", nil
	}
	return "", fmt.Errorf("%w: cannot render value of type %T", dbtypes.ErrUnsupportedShape, value)
}

// likeText returns the unquoted text placed inside a LIKE pattern.
func likeText(value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: LIKE comparison requires a value", dbtypes.ErrInvalidArgument)
	}
	text, err := renderLiteral(value)
	if err != nil {
		return "", err
	}
	// Only text literals start with a quote; numbers, bools and NULL never do.
	if strings.HasPrefix(text, "'") {
		text = text[1 : len(text)-1]
	}
	return text, nil
}

// likePattern positions the % wildcards for StartsWith, EndsWith and Contains.
func likePattern(op dbtypes.ComparisonOperator, text string) string {
	switch op {
	case dbtypes.StartsWith:
		return text + "%"
	case dbtypes.EndsWith:
		return "%" + text
	default:
		return "%" + text + "%"
	}
}

// listValues expands an In operand. Slices and arrays are flattened in order;
// any other value is treated as a one-element list.
func listValues(value any) []any {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return values
	default:
		return []any{value}
	}
}

// renderList renders "(v1, v2, ...)" for an In comparison.
func renderList(values []any) (string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		text, err := renderLiteral(v)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}
