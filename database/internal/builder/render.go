package builder

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// render walks the accumulated state once, in fixed clause order:
// SELECT [DISTINCT] [TOP n] list, FROM, joins, WHERE, GROUP BY, HAVING,
// ORDER BY, then any clause-final paging. Empty clauses are omitted.
func (sqb *SelectQueryBuilder) render(bind bool) (string, []any, error) {
	if sqb.err != nil {
		return "", nil, sqb.err
	}

	var format squirrel.PlaceholderFormat = squirrel.Question
	if bind {
		format = sqb.dialect.placeholderFormat()
	}
	sb := squirrel.StatementBuilder.PlaceholderFormat(format).Select(sqb.renderProjections(bind)...)

	if sqb.distinct {
		sb = sb.Distinct()
	}

	if len(sqb.tables) > 0 {
		sb = sb.From(sqb.renderTables())
	}

	for _, join := range sqb.joins {
		sb = sb.JoinClause(sqb.renderJoin(join))
	}

	if sqb.where != nil {
		where, err := compilePredicate(sqb.dialect, sqb.where, bind)
		if err != nil {
			return "", nil, fmt.Errorf("where: %w", err)
		}
		sb = sb.Where(where.toSqlizer())
	}

	if len(sqb.groupBy) > 0 {
		groupBys := make([]string, len(sqb.groupBy))
		for i, p := range sqb.groupBy {
			groupBys[i] = quoteQualified(sqb.dialect, p.Table, p.Column)
		}
		sb = sb.GroupBy(groupBys...)
	}

	if sqb.having != nil {
		having, err := compilePredicate(sqb.dialect, sqb.having, bind)
		if err != nil {
			return "", nil, fmt.Errorf("having: %w", err)
		}
		sb = sb.Having(having.toSqlizer())
	}

	if len(sqb.orderBy) > 0 {
		orderBys := make([]string, len(sqb.orderBy))
		for i, item := range sqb.orderBy {
			orderBys[i] = sqb.renderOrder(item, bind)
		}
		sb = sb.OrderBy(orderBys...)
	}

	if !sqb.paging.isZero() {
		if err := sqb.dialect.checkPaging(sqb.paging, len(sqb.orderBy) > 0); err != nil {
			return "", nil, fmt.Errorf("paging: %w", err)
		}
		sb = sqb.dialect.applyPaging(sb, sqb.paging)
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render select query: %w", err)
	}
	return sql, args, nil
}

// renderProjections applies the selection rules. No projections at all
// behaves like SelectAll.
func (sqb *SelectQueryBuilder) renderProjections(bind bool) []string {
	if len(sqb.projections) == 0 {
		return []string{sqb.renderStar()}
	}

	cols := make([]string, len(sqb.projections))
	for i, item := range sqb.projections {
		switch p := item.(type) {
		case dbtypes.TableColumnPair:
			cols[i] = quoteQualified(sqb.dialect, p.Table, p.Column)
		case dbtypes.AliasedColumn:
			cols[i] = quoteQualified(sqb.dialect, p.Table, p.Column) + " AS " + sqb.dialect.quoteSegment(p.Alias)
		case dbtypes.SQLLiteral:
			cols[i] = rawText(p.Text, bind)
		case dbtypes.AllColumns:
			cols[i] = sqb.renderStar()
		case dbtypes.CountAll:
			cols[i] = "COUNT(*)"
		}
	}
	return cols
}

// renderStar resolves the SELECT * sentinel against the source tables known at render time.
func (sqb *SelectQueryBuilder) renderStar() string {
	if len(sqb.tables) == 1 {
		return quoteIdentifier(sqb.dialect, sqb.tables[0]) + ".*"
	}
	return "*"
}

// renderTables joins the quoted sources with a bare comma.
func (sqb *SelectQueryBuilder) renderTables() string {
	quoted := make([]string, len(sqb.tables))
	for i, table := range sqb.tables {
		quoted[i] = quoteIdentifier(sqb.dialect, table)
	}
	return strings.Join(quoted, ",")
}

func (sqb *SelectQueryBuilder) renderJoin(join dbtypes.JoinSpec) string {
	clause := join.Type.Keyword() + " " + quoteIdentifier(sqb.dialect, join.JoinTable)
	if join.Type == dbtypes.CrossJoin {
		return clause
	}
	return clause + " ON " +
		quoteQualified(sqb.dialect, join.BaseTable, join.BaseColumn) + " " +
		join.Operator.Symbol() + " " +
		quoteQualified(sqb.dialect, join.JoinTable, join.JoinColumn)
}

func (sqb *SelectQueryBuilder) renderOrder(item orderItem, bind bool) string {
	switch {
	case item.raw != "":
		return rawText(item.raw, bind)
	case item.table != "":
		return quoteQualified(sqb.dialect, item.table, item.column) + " " + item.dir.Keyword()
	default:
		return quoteIdentifier(sqb.dialect, item.column) + " " + item.dir.Keyword()
	}
}

// rawText escapes ? as ?? in verbatim text when rendering with placeholders,
// so squirrel numbers only the bound values. Inline rendering leaves it as is.
func rawText(text string, bind bool) string {
	if !bind {
		return text
	}
	return strings.ReplaceAll(text, "?", "??")
}
