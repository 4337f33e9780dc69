package builder

import (
	"strings"
	"testing"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tableProducts   = "Products"
	tableCategories = "Categories"
	tableLog        = "Log"
	pgProducts      = "public.Products"
	pgCategories    = "public.Categories"

	colID          = "Id"
	colName        = "Name"
	colCategoryID  = "CategoryId"
	colPrice       = "Price"
	colDateCreated = "DateCreatedUtc"
)

func newSQLServer(t *testing.T) *QueryBuilder {
	t.Helper()
	qb, err := NewQueryBuilder(dbtypes.SQLServer)
	require.NoError(t, err)
	return qb
}

func newPostgres(t *testing.T) *QueryBuilder {
	t.Helper()
	qb, err := NewQueryBuilder(dbtypes.PostgreSQL)
	require.NoError(t, err)
	return qb
}

func build(t *testing.T, sqb dbtypes.SelectQueryBuilder) string {
	t.Helper()
	sql, err := sqb.BuildQuery()
	require.NoError(t, err)
	return sql
}

// catalogQuery is the product listing used across dialect tests.
func catalogQuery(qb *QueryBuilder, products, categories string) dbtypes.SelectQueryBuilder {
	return qb.Query().
		SelectAll().
		From(products).
		Join(dbtypes.InnerJoin, categories, colID, dbtypes.EqualTo, products, colCategoryID).
		WhereColumn(products, colName, dbtypes.StartsWith, "A").
		OrderBy(products, colName, dbtypes.Ascending).
		Take(25)
}

func TestSQLServerCatalogQueryUsesTop(t *testing.T) {
	sql := build(t, catalogQuery(newSQLServer(t), tableProducts, tableCategories))

	assert.Equal(t,
		"SELECT TOP 25 [Products].* FROM [Products] INNER JOIN [Categories] ON [Products].[CategoryId] = [Categories].[Id] WHERE [Products].[Name] LIKE 'A%' ORDER BY [Products].[Name] ASC",
		sql)
}

func TestPostgreSQLCatalogQueryUsesLimit(t *testing.T) {
	sql := build(t, catalogQuery(newPostgres(t), pgProducts, pgCategories))

	assert.Equal(t,
		`SELECT "public"."Products".* FROM "public"."Products" INNER JOIN "public"."Categories" ON "public"."Products"."CategoryId" = "public"."Categories"."Id" WHERE "public"."Products"."Name" LIKE 'A%' ORDER BY "public"."Products"."Name" ASC LIMIT 25`,
		sql)
}

func TestSelectAllWithMultipleTablesRendersBareStar(t *testing.T) {
	sql := build(t, newSQLServer(t).Query().SelectAll().From(tableProducts, tableCategories))

	assert.Equal(t, "SELECT * FROM [Products],[Categories]", sql)
}

func TestSelectAllResolvesStarAtRenderTime(t *testing.T) {
	sqb := newSQLServer(t).Query().SelectAll()
	assert.Equal(t, "SELECT *", build(t, sqb))

	sqb.From(tableProducts)
	assert.Equal(t, "SELECT [Products].* FROM [Products]", build(t, sqb))

	sqb.From(tableCategories)
	assert.Equal(t, "SELECT * FROM [Products],[Categories]", build(t, sqb))
}

func TestNoProjectionBehavesLikeSelectAll(t *testing.T) {
	sql := build(t, newPostgres(t).Query().From(tableProducts))

	assert.Equal(t, `SELECT "Products".* FROM "Products"`, sql)
}

func TestSkipAndTake(t *testing.T) {
	logQuery := func(qb *QueryBuilder) dbtypes.SelectQueryBuilder {
		return qb.Query().
			SelectAll().
			From(tableLog).
			OrderBy(tableLog, colDateCreated, dbtypes.Descending).
			Skip(100).
			Take(25)
	}

	t.Run("sqlserver_offset_fetch", func(t *testing.T) {
		assert.Equal(t,
			"SELECT [Log].* FROM [Log] ORDER BY [Log].[DateCreatedUtc] DESC OFFSET 100 ROWS FETCH NEXT 25 ROWS ONLY",
			build(t, logQuery(newSQLServer(t))))
	})

	t.Run("postgresql_limit_offset", func(t *testing.T) {
		assert.Equal(t,
			`SELECT "Log".* FROM "Log" ORDER BY "Log"."DateCreatedUtc" DESC LIMIT 25 OFFSET 100`,
			build(t, logQuery(newPostgres(t))))
	})
}

func TestSkipWithoutTake(t *testing.T) {
	tests := []struct {
		name string
		qb   func(*testing.T) *QueryBuilder
		want string
	}{
		{name: "sqlserver", qb: newSQLServer, want: "SELECT [Log].* FROM [Log] ORDER BY [Log].[Id] ASC OFFSET 10 ROWS"},
		{name: "postgresql", qb: newPostgres, want: `SELECT "Log".* FROM "Log" ORDER BY "Log"."Id" ASC OFFSET 10`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqb := tt.qb(t).Query().SelectAll().From(tableLog).OrderBy(tableLog, colID, dbtypes.Ascending).Skip(10)
			assert.Equal(t, tt.want, build(t, sqb))
		})
	}
}

func TestSQLServerSkipRequiresOrderBy(t *testing.T) {
	for _, sqb := range []dbtypes.SelectQueryBuilder{
		newSQLServer(t).Query().SelectAll().From(tableLog).Skip(10),
		newSQLServer(t).Query().SelectAll().From(tableLog).Skip(10).Take(5),
	} {
		_, err := sqb.BuildQuery()
		assert.ErrorIs(t, err, dbtypes.ErrOffsetWithoutOrder)
		assert.ErrorIs(t, err, dbtypes.ErrInvalidArgument)

		_, _, err = sqb.ToSQL()
		assert.ErrorIs(t, err, dbtypes.ErrOffsetWithoutOrder)
	}
}

func TestPostgreSQLSkipWithoutOrderBy(t *testing.T) {
	sqb := newPostgres(t).Query().SelectAll().From(tableLog).Skip(10)

	assert.Equal(t, `SELECT "Log".* FROM "Log" OFFSET 10`, build(t, sqb))
}

func TestSQLServerTakeWithoutOrderBy(t *testing.T) {
	sqb := newSQLServer(t).Query().SelectAll().From(tableLog).Take(5)

	assert.Equal(t, "SELECT TOP 5 [Log].* FROM [Log]", build(t, sqb))
}

func TestSQLServerPagingExclusivity(t *testing.T) {
	qb := newSQLServer(t)

	takeOnly := build(t, qb.Query().SelectAll().From(tableLog).Take(5))
	assert.Contains(t, takeOnly, "TOP 5")
	assert.NotContains(t, takeOnly, "OFFSET")
	assert.NotContains(t, takeOnly, "FETCH")

	both := build(t, qb.Query().SelectAll().From(tableLog).OrderBy(tableLog, colID, dbtypes.Ascending).Skip(0).Take(5))
	assert.NotContains(t, both, "TOP")
	assert.True(t, strings.HasSuffix(both, "OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY"))
}

func TestDistinctPrecedesTop(t *testing.T) {
	sql := build(t, newSQLServer(t).Query().Distinct().Select(tableProducts, colName).From(tableProducts).Take(10).Distinct())

	assert.Equal(t, "SELECT DISTINCT TOP 10 [Products].[Name] FROM [Products]", sql)
}

func TestHavingRendersBeforeOrderBy(t *testing.T) {
	sqb := newSQLServer(t).Query().
		Select(tableProducts, colName).
		SelectItems(dbtypes.Raw(`COUNT("Name")`)).
		From(tableProducts).
		OrderByRaw(`COUNT("Name") DESC`).
		GroupBy(tableProducts, colName).
		HavingColumn(tableProducts, colName, dbtypes.StartsWith, "M")

	assert.Equal(t,
		`SELECT [Products].[Name], COUNT("Name") FROM [Products] GROUP BY [Products].[Name] HAVING [Products].[Name] LIKE 'M%' ORDER BY COUNT("Name") DESC`,
		build(t, sqb))
}

func TestProjectionKinds(t *testing.T) {
	sqb := newSQLServer(t).Query().
		Select(tableProducts, colID).
		SelectAs(tableProducts, colName, "ProductName").
		SelectRaw("MAX([Products].[Price])").
		SelectCountAll().
		From(tableProducts)

	assert.Equal(t,
		"SELECT [Products].[Id], [Products].[Name] AS [ProductName], MAX([Products].[Price]), COUNT(*) FROM [Products]",
		build(t, sqb))
}

func TestSelectColumnStarIsNotQuoted(t *testing.T) {
	sql := build(t, newPostgres(t).Query().Select(tableCategories, "*").Select(tableProducts, colName).From(tableProducts, tableCategories))

	assert.Equal(t, `SELECT "Categories".*, "Products"."Name" FROM "Products","Categories"`, sql)
}

type productRow struct {
	ID         int64  `db:"Id"`
	Name       string `db:"Name"`
	CategoryID int64  `db:"CategoryId"`
	Cached     bool
}

func TestSelectStruct(t *testing.T) {
	sql := build(t, newSQLServer(t).Query().SelectStruct(tableProducts, &productRow{}).From(tableProducts))

	assert.Equal(t, "SELECT [Products].[Id], [Products].[Name], [Products].[CategoryId] FROM [Products]", sql)
}

func TestSelectStructRejectsUntaggedModel(t *testing.T) {
	sqb := newSQLServer(t).Query().SelectStruct(tableProducts, struct{ Name string }{})

	require.Error(t, sqb.Err())
	assert.ErrorIs(t, sqb.Err(), dbtypes.ErrInvalidArgument)
	assert.Contains(t, sqb.Err().Error(), "SelectStruct")
}

func TestAccumulationPreservesCallOrder(t *testing.T) {
	sqb := newSQLServer(t).Query().
		Select("B", "y").
		SelectColumns(dbtypes.Col("A", "x"), dbtypes.Col("C", "z")).
		From("B").
		From("A", "C").
		Join(dbtypes.LeftJoin, "D", "bId", dbtypes.EqualTo, "B", "id").
		Join(dbtypes.RightJoin, "E", "aId", dbtypes.NotEqualTo, "A", "id").
		GroupByColumns(dbtypes.Col("C", "z"), dbtypes.Col("A", "x")).
		GroupBy("B", "y").
		OrderByColumn("z", dbtypes.Descending).
		OrderBy("A", "x", dbtypes.Ascending)

	assert.Equal(t,
		"SELECT [B].[y], [A].[x], [C].[z] FROM [B],[A],[C]"+
			" LEFT JOIN [D] ON [B].[id] = [D].[bId]"+
			" RIGHT JOIN [E] ON [A].[id] <> [E].[aId]"+
			" GROUP BY [C].[z], [A].[x], [B].[y]"+
			" ORDER BY [z] DESC, [A].[x] ASC",
		build(t, sqb))
}

func TestJoinKeywords(t *testing.T) {
	tests := []struct {
		joinType dbtypes.JoinType
		want     string
	}{
		{dbtypes.InnerJoin, "SELECT [Products].* FROM [Products] INNER JOIN [Categories] ON [Products].[CategoryId] = [Categories].[Id]"},
		{dbtypes.LeftJoin, "SELECT [Products].* FROM [Products] LEFT JOIN [Categories] ON [Products].[CategoryId] = [Categories].[Id]"},
		{dbtypes.RightJoin, "SELECT [Products].* FROM [Products] RIGHT JOIN [Categories] ON [Products].[CategoryId] = [Categories].[Id]"},
		{dbtypes.FullJoin, "SELECT [Products].* FROM [Products] FULL JOIN [Categories] ON [Products].[CategoryId] = [Categories].[Id]"},
		{dbtypes.CrossJoin, "SELECT [Products].* FROM [Products] CROSS JOIN [Categories]"},
	}

	for _, tt := range tests {
		t.Run(tt.joinType.String(), func(t *testing.T) {
			sqb := newSQLServer(t).Query().
				SelectAll().
				From(tableProducts).
				Join(tt.joinType, tableCategories, colID, dbtypes.EqualTo, tableProducts, colCategoryID)
			assert.Equal(t, tt.want, build(t, sqb))
		})
	}
}

func TestWhereStatementKeepsInsertionOrder(t *testing.T) {
	stmt := dbtypes.Statement(dbtypes.Cond(tableProducts, colName, dbtypes.StartsWith, "A")).
		Or(dbtypes.Cond(tableProducts, colName, dbtypes.EndsWith, "z")).
		And(dbtypes.Cond(tableProducts, colPrice, dbtypes.LessThanOrEqualTo, 9.5))

	sql := build(t, newSQLServer(t).Query().SelectAll().From(tableProducts).Where(stmt))

	assert.Equal(t,
		"SELECT [Products].* FROM [Products] WHERE [Products].[Name] LIKE 'A%' OR [Products].[Name] LIKE '%z' AND [Products].[Price] <= 9.5",
		sql)
}

func TestFirstClauseLogicIsIgnored(t *testing.T) {
	clause := dbtypes.WhereClause{Logic: dbtypes.Or, Table: tableProducts, Column: colID, Operator: dbtypes.EqualTo, Value: 7}

	single := build(t, newSQLServer(t).Query().From(tableProducts).Where(clause))
	stmt := build(t, newSQLServer(t).Query().From(tableProducts).Where(dbtypes.WhereStatement{clause}))

	want := "SELECT [Products].* FROM [Products] WHERE [Products].[Id] = 7"
	assert.Equal(t, want, single)
	assert.Equal(t, want, stmt)
}

func TestWhereReplacesPreviousFilter(t *testing.T) {
	sqb := newSQLServer(t).Query().
		SelectAll().
		From(tableProducts).
		WhereColumn(tableProducts, colName, dbtypes.EqualTo, "first").
		WhereRaw("[Products].[Price] > 10")

	assert.Equal(t, "SELECT [Products].* FROM [Products] WHERE [Products].[Price] > 10", build(t, sqb))

	sqb.HavingRaw("COUNT(*) > 1").HavingColumn(tableProducts, colID, dbtypes.IsNotNull, nil)
	assert.Equal(t,
		"SELECT [Products].* FROM [Products] WHERE [Products].[Price] > 10 HAVING [Products].[Id] IS NOT NULL",
		build(t, sqb))
}

func TestStoredStatementIsDetachedFromCaller(t *testing.T) {
	stmt := dbtypes.WhereStatement{dbtypes.Cond(tableProducts, colID, dbtypes.EqualTo, 1)}
	sqb := newSQLServer(t).Query().From(tableProducts).Where(stmt)

	stmt[0].Value = 2

	assert.Equal(t, "SELECT [Products].* FROM [Products] WHERE [Products].[Id] = 1", build(t, sqb))
}

func TestBuildQueryIsIdempotent(t *testing.T) {
	sqb := catalogQuery(newSQLServer(t), tableProducts, tableCategories)

	first := build(t, sqb)
	second := build(t, sqb)
	assert.Equal(t, first, second)

	_, _, err := sqb.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, first, build(t, sqb))
}

func TestDialectSymmetryWithoutPaging(t *testing.T) {
	program := func(qb *QueryBuilder) dbtypes.SelectQueryBuilder {
		return qb.Query().
			Distinct().
			Select(pgProducts, colName).
			SelectAs(pgCategories, colName, "Category").
			SelectCountAll().
			From(pgProducts).
			Join(dbtypes.LeftJoin, pgCategories, colID, dbtypes.EqualTo, pgProducts, colCategoryID).
			Where(dbtypes.Statement(
				dbtypes.Cond(pgProducts, colPrice, dbtypes.GreaterThan, 5),
				dbtypes.WhereClause{Logic: dbtypes.Or, Table: pgCategories, Column: colName, Operator: dbtypes.In, Value: []string{"Tea", "Coffee"}},
			)).
			GroupBy(pgProducts, colName).
			GroupBy(pgCategories, colName).
			HavingRaw("COUNT(*) > 2").
			OrderByColumn("Category", dbtypes.Ascending)
	}

	sqlServer := build(t, program(newSQLServer(t)))
	postgres := build(t, program(newPostgres(t)))

	normalized := strings.NewReplacer("[", `"`, "]", `"`).Replace(sqlServer)
	assert.Equal(t, postgres, normalized)
}

func TestToSQLBindsValues(t *testing.T) {
	t.Run("sqlserver_at_p_placeholders", func(t *testing.T) {
		sqb := newSQLServer(t).Query().
			From(tableProducts).
			WhereColumn(tableProducts, colPrice, dbtypes.GreaterThan, 10).
			Take(5)

		sql, args, err := sqb.ToSQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT TOP 5 [Products].* FROM [Products] WHERE [Products].[Price] > @p1", sql)
		assert.Equal(t, []any{10}, args)
	})

	t.Run("postgresql_dollar_placeholders", func(t *testing.T) {
		sqb := newPostgres(t).Query().
			From(tableProducts).
			Where(dbtypes.Statement(
				dbtypes.Cond(tableProducts, colName, dbtypes.StartsWith, "O'B"),
				dbtypes.Cond(tableProducts, colID, dbtypes.In, []int{1, 2}),
			)).
			GroupBy(tableProducts, colName).
			HavingColumn(tableProducts, colName, dbtypes.NotEqualTo, "x")

		sql, args, err := sqb.ToSQL()
		require.NoError(t, err)
		assert.Equal(t,
			`SELECT "Products".* FROM "Products" WHERE "Products"."Name" LIKE $1 AND "Products"."Id" IN ($2, $3) GROUP BY "Products"."Name" HAVING "Products"."Name" <> $4`,
			sql)
		assert.Equal(t, []any{"O'B%", 1, 2, "x"}, args)
	})
}

func TestToSQLKeepsQuestionMarksInRawText(t *testing.T) {
	program := func(qb *QueryBuilder) dbtypes.SelectQueryBuilder {
		return qb.Query().
			SelectRaw("CASE WHEN Tags ? 'tea' THEN 1 END").
			From("T").
			Where(dbtypes.Statement(dbtypes.Cond("T", "x", dbtypes.EqualTo, 5))).
			OrderByRaw("Tags ? 'new' DESC")
	}

	sql, args, err := program(newPostgres(t)).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT CASE WHEN Tags ? 'tea' THEN 1 END FROM "T" WHERE "T"."x" = $1 ORDER BY Tags ? 'new' DESC`, sql)
	assert.Equal(t, []any{5}, args)

	sql, args, err = newSQLServer(t).Query().From("T").WhereRaw("Flag = '?'").HavingColumn("T", "x", dbtypes.GreaterThan, 2).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT [T].* FROM [T] WHERE Flag = '?' HAVING [T].[x] > @p1", sql)
	assert.Equal(t, []any{2}, args)

	assert.Equal(t,
		`SELECT CASE WHEN Tags ? 'tea' THEN 1 END FROM "T" WHERE "T"."x" = 5 ORDER BY Tags ? 'new' DESC`,
		build(t, program(newPostgres(t))))
}

func TestBuilderMethodsReturnSameInstance(t *testing.T) {
	sqb := newSQLServer(t).Query()

	assert.Same(t, sqb, sqb.SelectAll())
	assert.Same(t, sqb, sqb.From(tableProducts))
	assert.Same(t, sqb, sqb.Take(1))
	assert.Same(t, sqb, sqb.Skip(-1))
}

func TestBuildersAreIndependent(t *testing.T) {
	qb := newSQLServer(t)
	first := qb.Query().From(tableProducts)
	second := qb.Query().From(tableLog)

	assert.Equal(t, "SELECT [Products].* FROM [Products]", build(t, first))
	assert.Equal(t, "SELECT [Log].* FROM [Log]", build(t, second))
}

func TestNewQueryBuilderVendors(t *testing.T) {
	for _, vendor := range []string{dbtypes.SQLServer, "MSSQL", dbtypes.PostgreSQL, "postgres"} {
		qb, err := NewQueryBuilder(vendor)
		require.NoError(t, err, vendor)
		assert.NotEmpty(t, qb.Vendor())
	}

	qb, err := NewQueryBuilder("oracle")
	assert.Nil(t, qb)
	assert.ErrorIs(t, err, dbtypes.ErrUnsupportedShape)
}
