package builder

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// sqlServerDialect quotes with brackets and pages with TOP or OFFSET ... FETCH.
type sqlServerDialect struct{}

func (sqlServerDialect) vendor() dbtypes.Vendor { return dbtypes.SQLServer }

func (sqlServerDialect) quoteSegment(segment string) string {
	return wrapSegment(segment, '[', ']')
}

// placeholderFormat uses @p1, @p2, ... as expected by SQL Server drivers.
func (sqlServerDialect) placeholderFormat() squirrel.PlaceholderFormat {
	return squirrel.AtP
}

// applyPaging injects TOP into the select options when only take is set.
// With skip the row limiting moves to the end of the statement, and TOP is
// never emitted.
func (sqlServerDialect) applyPaging(sb squirrel.SelectBuilder, p paging) squirrel.SelectBuilder {
	switch {
	case p.hasTake && !p.hasSkip:
		return sb.Options("TOP " + strconv.FormatUint(p.take, 10))
	case p.hasSkip:
		if suffix := buildOffsetFetchClause(p); suffix != "" {
			return sb.Suffix(suffix)
		}
	}
	return sb
}

// checkPaging enforces that OFFSET, with or without FETCH, follows ORDER BY.
func (sqlServerDialect) checkPaging(p paging, ordered bool) error {
	if p.hasSkip && !ordered {
		return dbtypes.ErrOffsetWithoutOrder
	}
	return nil
}

// buildOffsetFetchClause builds the OFFSET ... ROWS [FETCH NEXT ... ROWS ONLY]
// suffix. It returns an empty string when skip is not set.
func buildOffsetFetchClause(p paging) string {
	if !p.hasSkip {
		return ""
	}
	clause := fmt.Sprintf("OFFSET %d ROWS", p.skip)
	if p.hasTake {
		clause += fmt.Sprintf(" FETCH NEXT %d ROWS ONLY", p.take)
	}
	return clause
}
