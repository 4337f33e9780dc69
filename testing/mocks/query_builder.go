package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/gaborage/sqlbricks/database/types"
)

// MockQueryBuilder provides a testify-based mock implementation of the QueryBuilderInterface.
//
// Example usage:
//
//	sel := &mocks.MockSelectQueryBuilder{}
//	mockQB := &mocks.MockQueryBuilder{}
//	mockQB.On("Query").Return(sel)
//	sel.On("SelectAll").Return(sel)
//	sel.On("From", []string{"Products"}).Return(sel)
//	sel.On("BuildQuery").Return("SELECT [Products].* FROM [Products]", nil)
type MockQueryBuilder struct {
	mock.Mock
}

// Vendor implements types.QueryBuilderInterface
func (m *MockQueryBuilder) Vendor() types.Vendor {
	args := m.MethodCalled("Vendor")
	return args.String(0)
}

// Query implements types.QueryBuilderInterface
func (m *MockQueryBuilder) Query() types.SelectQueryBuilder {
	args := m.MethodCalled("Query")
	return args.Get(0).(types.SelectQueryBuilder)
}

// EscapeIdentifier implements types.QueryBuilderInterface
func (m *MockQueryBuilder) EscapeIdentifier(identifier string) string {
	args := m.MethodCalled("EscapeIdentifier", identifier)
	return args.String(0)
}

// Err implements types.QueryBuilderInterface
func (m *MockQueryBuilder) Err() error {
	args := m.MethodCalled("Err")
	return args.Error(0)
}

// MockSelectQueryBuilder provides a testify-based mock of types.SelectQueryBuilder.
// Chainable methods return the configured builder, or the mock itself when
// the expectation was set with .Return() or .Return(nil).
type MockSelectQueryBuilder struct {
	mock.Mock
}

func (m *MockSelectQueryBuilder) chain(args mock.Arguments) types.SelectQueryBuilder {
	if len(args) == 0 || args.Get(0) == nil {
		return m
	}
	return args.Get(0).(types.SelectQueryBuilder)
}

func (m *MockSelectQueryBuilder) SelectAll() types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectAll"))
}

func (m *MockSelectQueryBuilder) Select(table, column string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Select", table, column))
}

func (m *MockSelectQueryBuilder) SelectColumns(pairs ...types.TableColumnPair) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectColumns", pairs))
}

func (m *MockSelectQueryBuilder) SelectAs(table, column, alias string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectAs", table, column, alias))
}

func (m *MockSelectQueryBuilder) SelectRaw(text string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectRaw", text))
}

func (m *MockSelectQueryBuilder) SelectItems(items ...types.Projection) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectItems", items))
}

func (m *MockSelectQueryBuilder) SelectCountAll() types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectCountAll"))
}

func (m *MockSelectQueryBuilder) SelectStruct(table string, model any) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("SelectStruct", table, model))
}

func (m *MockSelectQueryBuilder) Distinct() types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Distinct"))
}

func (m *MockSelectQueryBuilder) From(tables ...string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("From", tables))
}

func (m *MockSelectQueryBuilder) Join(joinType types.JoinType, joinTable, joinColumn string, op types.ComparisonOperator, baseTable, baseColumn string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Join", joinType, joinTable, joinColumn, op, baseTable, baseColumn))
}

func (m *MockSelectQueryBuilder) JoinSpec(spec types.JoinSpec) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("JoinSpec", spec))
}

func (m *MockSelectQueryBuilder) Where(pred types.Predicate) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Where", pred))
}

func (m *MockSelectQueryBuilder) WhereColumn(table, column string, op types.ComparisonOperator, value any) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("WhereColumn", table, column, op, value))
}

func (m *MockSelectQueryBuilder) WhereRaw(condition string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("WhereRaw", condition))
}

func (m *MockSelectQueryBuilder) GroupBy(table, column string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("GroupBy", table, column))
}

func (m *MockSelectQueryBuilder) GroupByColumns(pairs ...types.TableColumnPair) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("GroupByColumns", pairs))
}

func (m *MockSelectQueryBuilder) Having(pred types.Predicate) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Having", pred))
}

func (m *MockSelectQueryBuilder) HavingColumn(table, column string, op types.ComparisonOperator, value any) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("HavingColumn", table, column, op, value))
}

func (m *MockSelectQueryBuilder) HavingRaw(condition string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("HavingRaw", condition))
}

func (m *MockSelectQueryBuilder) OrderBy(table, column string, dir types.SortDirection) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("OrderBy", table, column, dir))
}

func (m *MockSelectQueryBuilder) OrderByColumn(column string, dir types.SortDirection) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("OrderByColumn", column, dir))
}

func (m *MockSelectQueryBuilder) OrderByRaw(expr string) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("OrderByRaw", expr))
}

func (m *MockSelectQueryBuilder) Skip(n int) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Skip", n))
}

func (m *MockSelectQueryBuilder) Take(n int) types.SelectQueryBuilder {
	return m.chain(m.MethodCalled("Take", n))
}

func (m *MockSelectQueryBuilder) Vendor() types.Vendor {
	args := m.MethodCalled("Vendor")
	return args.String(0)
}

func (m *MockSelectQueryBuilder) Err() error {
	args := m.MethodCalled("Err")
	return args.Error(0)
}

func (m *MockSelectQueryBuilder) BuildQuery() (string, error) {
	args := m.MethodCalled("BuildQuery")
	return args.String(0), args.Error(1)
}

func (m *MockSelectQueryBuilder) ToSQL() (sql string, args []any, err error) {
	arguments := m.MethodCalled("ToSQL")
	if a := arguments.Get(1); a != nil {
		args = a.([]any)
	}
	return arguments.String(0), args, arguments.Error(2)
}

// Compile-time verification that mocks implement the interfaces
var (
	_ types.QueryBuilderInterface = (*MockQueryBuilder)(nil)
	_ types.SelectQueryBuilder    = (*MockSelectQueryBuilder)(nil)
)
