// Package database provides dialect-aware SELECT query building for
// SQL Server and PostgreSQL.
package database

import (
	"github.com/gaborage/sqlbricks/database/internal/builder"
	"github.com/gaborage/sqlbricks/database/types"
)

// QueryBuilder provides vendor-specific SELECT query building.
// It wraps the internal implementation so callers only see the types contract.
type QueryBuilder struct {
	inner  *builder.QueryBuilder
	vendor types.Vendor
	err    error
}

// NewQueryBuilder creates a new query builder for the specified database vendor.
// An unknown vendor does not fail here: the error is carried by the builder
// and by every SELECT builder it hands out.
func NewQueryBuilder(vendor types.Vendor) *QueryBuilder {
	inner, err := builder.NewQueryBuilder(vendor)
	if err != nil {
		return &QueryBuilder{vendor: vendor, err: err}
	}
	return &QueryBuilder{inner: inner, vendor: inner.Vendor()}
}

// NewSQLServerQueryBuilder creates a query builder for the bracket-quoted,
// TOP / OFFSET ... FETCH dialect.
func NewSQLServerQueryBuilder() *QueryBuilder {
	return NewQueryBuilder(types.SQLServer)
}

// NewPostgreSQLQueryBuilder creates a query builder for the double-quoted,
// LIMIT / OFFSET dialect.
func NewPostgreSQLQueryBuilder() *QueryBuilder {
	return NewQueryBuilder(types.PostgreSQL)
}

// Vendor returns the resolved vendor, or the requested name if it is unknown.
func (qb *QueryBuilder) Vendor() types.Vendor {
	return qb.vendor
}

// Err reports a vendor resolution failure.
func (qb *QueryBuilder) Err() error {
	return qb.err
}

// Query returns a new, empty SELECT builder.
func (qb *QueryBuilder) Query() types.SelectQueryBuilder {
	if qb.err != nil {
		return builder.FailedQuery(qb.vendor, qb.err)
	}
	return qb.inner.Query()
}

// EscapeIdentifier quotes a possibly dotted identifier according to vendor
// rules. It returns the identifier unchanged when the vendor is unknown.
func (qb *QueryBuilder) EscapeIdentifier(identifier string) string {
	if qb.inner == nil {
		return identifier
	}
	return qb.inner.EscapeIdentifier(identifier)
}

// Interface compliance check: ensure *QueryBuilder implements types.QueryBuilderInterface
var _ types.QueryBuilderInterface = (*QueryBuilder)(nil)
