package builder

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// dialect is the per-vendor strategy. The accumulator and renderer are
// vendor-agnostic; only identifier quoting, bind placeholders and paging vary.
type dialect interface {
	vendor() dbtypes.Vendor

	// quoteSegment quotes one identifier segment (no dots).
	quoteSegment(segment string) string

	// placeholderFormat is used by ToSQL. BuildQuery always renders inline.
	placeholderFormat() squirrel.PlaceholderFormat

	// applyPaging writes skip/take into the select builder. It may use the
	// options slot (positional, right after SELECT [DISTINCT]) or the
	// clause-final slots, depending on the vendor.
	applyPaging(sb squirrel.SelectBuilder, p paging) squirrel.SelectBuilder

	// checkPaging rejects paging the vendor grammar cannot express.
	checkPaging(p paging, ordered bool) error
}

// paging holds the optional skip/take bounds.
type paging struct {
	skip    uint64
	take    uint64
	hasSkip bool
	hasTake bool
}

func (p paging) isZero() bool {
	return !p.hasSkip && !p.hasTake
}

// newDialect resolves the strategy for a vendor identifier.
func newDialect(vendor string) (dialect, error) {
	switch strings.ToLower(strings.TrimSpace(vendor)) {
	case dbtypes.SQLServer, "mssql":
		return sqlServerDialect{}, nil
	case dbtypes.PostgreSQL, "postgres":
		return postgresDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: query builder does not support vendor %q", dbtypes.ErrUnsupportedShape, vendor)
	}
}

// quoteIdentifier quotes every dot-separated segment independently, so
// "public.Products" never becomes a single quoted name containing the dot.
// A "*" segment is left bare to allow <table>.* projections.
func quoteIdentifier(d dialect, identifier string) string {
	parts := strings.Split(identifier, ".")
	for i, part := range parts {
		if part == "*" {
			continue
		}
		parts[i] = d.quoteSegment(part)
	}
	return strings.Join(parts, ".")
}

// quoteQualified renders <table>.<column> with both sides quoted.
func quoteQualified(d dialect, table, column string) string {
	return quoteIdentifier(d, table) + "." + quoteIdentifier(d, column)
}

// wrapSegment wraps segment in open/close, doubling any embedded close
// character. A segment already wrapped in the pair is returned untouched.
func wrapSegment(segment string, open, closing byte) string {
	if len(segment) >= 2 && segment[0] == open && segment[len(segment)-1] == closing {
		return segment
	}
	c := string(closing)
	return string(open) + strings.ReplaceAll(segment, c, c+c) + c
}

// unknownDialect stands in for a vendor that failed to resolve. Builders
// using it always carry an error, so it never renders.
type unknownDialect struct {
	name dbtypes.Vendor
}

func (d unknownDialect) vendor() dbtypes.Vendor { return d.name }

func (unknownDialect) quoteSegment(segment string) string { return segment }

func (unknownDialect) placeholderFormat() squirrel.PlaceholderFormat { return squirrel.Question }

func (unknownDialect) applyPaging(sb squirrel.SelectBuilder, _ paging) squirrel.SelectBuilder {
	return sb
}

func (unknownDialect) checkPaging(paging, bool) error { return nil }
