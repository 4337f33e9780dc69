// Package testing provides testing utilities for code built on the query builder.
//
// The mocks subpackage provides testify-based mock implementations of the
// builder contracts (types.QueryBuilderInterface, types.SelectQueryBuilder),
// so services that compose queries can be unit-tested without rendering SQL.
//
//	import "github.com/gaborage/sqlbricks/testing/mocks"
package testing
