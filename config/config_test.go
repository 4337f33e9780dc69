package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaborage/sqlbricks/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogDocument = `
dialect: postgres
log:
  level: debug
query:
  distinct: true
  select:
    - {table: public.Products, column: Name}
    - {table: public.Categories, column: Name, as: Category}
    - {count: true}
  from: [public.Products]
  joins:
    - type: left
      table: public.Categories
      column: Id
      base_table: public.Products
      base_column: CategoryId
  where:
    clauses:
      - {table: public.Products, column: Price, operator: ">", value: 5}
      - {logic: or, table: public.Categories, column: Name, operator: in, value: [Tea, Coffee]}
  group_by:
    - {table: public.Products, column: Name}
  having:
    raw: COUNT(*) > 2
  order_by:
    - {column: Category, direction: desc}
  skip: 10
  take: 5
`

func TestLoadBytesParsesDocument(t *testing.T) {
	cfg, err := LoadBytes([]byte(catalogDocument))
	require.NoError(t, err)

	assert.Equal(t, "postgresql", cfg.Dialect)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)

	q := cfg.Query
	assert.True(t, q.Distinct)
	require.Len(t, q.Select, 3)
	assert.Equal(t, ProjectionConfig{Table: "public.Categories", Column: "Name", As: "Category"}, q.Select[1])
	assert.True(t, q.Select[2].Count)
	assert.Equal(t, []string{"public.Products"}, q.From)

	require.Len(t, q.Joins, 1)
	assert.Equal(t, JoinConfig{Type: "left", Table: "public.Categories", Column: "Id", BaseTable: "public.Products", BaseColumn: "CategoryId"}, q.Joins[0])

	require.NotNil(t, q.Where)
	require.Len(t, q.Where.Clauses, 2)
	assert.Equal(t, 5, q.Where.Clauses[0].Value)
	assert.Equal(t, "or", q.Where.Clauses[1].Logic)
	assert.Equal(t, []any{"Tea", "Coffee"}, q.Where.Clauses[1].Value)

	require.NotNil(t, q.Having)
	assert.Equal(t, "COUNT(*) > 2", q.Having.Raw)
	assert.Equal(t, []ColumnConfig{{Table: "public.Products", Column: "Name"}}, q.GroupBy)
	assert.Equal(t, []OrderConfig{{Column: "Category", Direction: "desc"}}, q.OrderBy)

	require.NotNil(t, q.Skip)
	require.NotNil(t, q.Take)
	assert.Equal(t, 10, *q.Skip)
	assert.Equal(t, 5, *q.Take)
}

func TestLoadBytesAppliesDefaults(t *testing.T) {
	cfg, err := LoadBytes([]byte("query:\n  from: [Products]\n"))
	require.NoError(t, err)

	assert.Equal(t, "sqlserver", cfg.Dialect)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Query.Select)
	assert.Nil(t, cfg.Query.Where)
	assert.Nil(t, cfg.Query.Skip)
	assert.Nil(t, cfg.Query.Take)
}

func TestEnvironmentOverridesDocument(t *testing.T) {
	t.Setenv("SQLGEN_DIALECT", "MSSQL")
	t.Setenv("SQLGEN_LOG_LEVEL", "warn")
	t.Setenv("SQLGEN_LOG_PRETTY", "true")
	t.Setenv("SQLGEN_QUERY_TAKE", "7")

	cfg, err := LoadBytes([]byte(catalogDocument))
	require.NoError(t, err)

	assert.Equal(t, "sqlserver", cfg.Dialect)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	require.NotNil(t, cfg.Query.Take)
	assert.Equal(t, 7, *cfg.Query.Take)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SQLGEN_DIALECT":          "dialect",
		"SQLGEN_LOG_LEVEL":        "log.level",
		"SQLGEN_QUERY_SKIP":       "query.skip",
		"SQLGEN_QUERY_ORDER_BY":   "query.order_by",
		"SQLGEN_QUERY_GROUP_BY":   "query.group_by",
		"SQLGEN_QUERY_DISTINCT":   "query.distinct",
		"SQLGEN_QUERY_WHERE_RAW":  "query.where.raw",
		"SQLGEN_QUERY_HAVING_RAW": "query.having.raw",
	}

	for env, want := range tests {
		key, value := envKey(env, "v")
		assert.Equal(t, want, key, env)
		assert.Equal(t, "v", value)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogDocument), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Dialect)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load(" ")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "missing", configErr.Category)
	assert.Equal(t, "file", configErr.Field)
}

func TestLoadBytesRejectsMalformedYAML(t *testing.T) {
	_, err := LoadBytes([]byte("query: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load document")
}

func TestLoadBytesRejectsUnknownDialect(t *testing.T) {
	_, err := LoadBytes([]byte("dialect: oracle\nquery:\n  from: [T]\n"))

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "dialect", configErr.Field)
	assert.Equal(t, "must be one of: mssql, postgres, postgresql, sqlserver", configErr.Action)
}

func TestLoadBytesRejectsUnknownLogLevel(t *testing.T) {
	_, err := LoadBytes([]byte("log:\n  level: loud\nquery:\n  from: [T]\n"))

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "log.level", configErr.Field)
	assert.Contains(t, err.Error(), "log config:")
}

func TestLoadBytesReportsDocumentErrors(t *testing.T) {
	doc := `
query:
  from: ["Products;--"]
  where:
    clauses:
      - {table: Products, operator: "="}
  take: -1
`
	_, err := LoadBytes([]byte(doc))
	require.Error(t, err)

	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"query.from[0]", "query.where.clauses[0].column", "query.take"}, fields)
	assert.Contains(t, err.Error(), "query definition:")
}

func TestLoadBytesRequiresSource(t *testing.T) {
	_, err := LoadBytes([]byte("dialect: sqlserver\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query.from is required")
}

func TestSupportedDialects(t *testing.T) {
	assert.Equal(t, []string{"mssql", "postgres", "postgresql", "sqlserver"}, SupportedDialects())
}
