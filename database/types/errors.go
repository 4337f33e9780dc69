//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

import "errors"

// Error categories. Every error produced while building a query wraps one of
// these, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument marks malformed or contradictory builder input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedShape marks an input combination the renderer cannot express.
	ErrUnsupportedShape = errors.New("unsupported shape")
)

// Specific validation failures. Each wraps ErrInvalidArgument.
var (
	// ErrEmptyIdentifier is returned when a table, column or alias name is empty.
	ErrEmptyIdentifier = wrapInvalid("identifier cannot be empty")

	// ErrNegativePaging is returned when Skip or Take receives a negative value.
	ErrNegativePaging = wrapInvalid("paging value cannot be negative")

	// ErrEmptyStatement is returned when a WhereStatement without clauses is used as a filter.
	ErrEmptyStatement = wrapInvalid("where statement cannot be empty")

	// ErrNilPredicate is returned when Where or Having receives a nil predicate.
	ErrNilPredicate = wrapInvalid("predicate cannot be nil")

	// ErrEmptyInList is returned when an In comparison has no values.
	ErrEmptyInList = wrapInvalid("IN comparison requires at least one value")

	// ErrEmptyLiteral is returned when raw SQL text is blank.
	ErrEmptyLiteral = wrapInvalid("SQL literal cannot be empty")

	// ErrOffsetWithoutOrder is returned when a dialect can only skip rows of an ordered result.
	ErrOffsetWithoutOrder = wrapInvalid("skip requires an ORDER BY clause")
)

type categorizedError struct {
	msg      string
	category error
}

func (e *categorizedError) Error() string { return e.msg }
func (e *categorizedError) Unwrap() error { return e.category }

func wrapInvalid(msg string) error {
	return &categorizedError{msg: msg, category: ErrInvalidArgument}
}
