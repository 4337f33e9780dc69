package builder

import (
	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// postgresDialect quotes with double quotes and pages with LIMIT/OFFSET.
type postgresDialect struct{}

func (postgresDialect) vendor() dbtypes.Vendor { return dbtypes.PostgreSQL }

func (postgresDialect) quoteSegment(segment string) string {
	return wrapSegment(segment, '"', '"')
}

// placeholderFormat uses $1, $2, ...
func (postgresDialect) placeholderFormat() squirrel.PlaceholderFormat {
	return squirrel.Dollar
}

// applyPaging relies on squirrel's clause-final LIMIT then OFFSET ordering.
// Skip without take emits OFFSET alone, which PostgreSQL accepts.
func (postgresDialect) applyPaging(sb squirrel.SelectBuilder, p paging) squirrel.SelectBuilder {
	if p.hasTake {
		sb = sb.Limit(p.take)
	}
	if p.hasSkip {
		sb = sb.Offset(p.skip)
	}
	return sb
}

// checkPaging accepts every combination; OFFSET alone is valid without ORDER BY.
func (postgresDialect) checkPaging(paging, bool) error { return nil }
