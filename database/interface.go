package database

import "github.com/gaborage/sqlbricks/database/types"

// SelectQueryBuilder is the fluent SELECT construction contract.
// This type alias lets callers depend on the database package alone.
type SelectQueryBuilder = types.SelectQueryBuilder

// Predicate is a WHERE or HAVING body.
type Predicate = types.Predicate
