package database

import "github.com/gaborage/sqlbricks/database/types"

// Re-export vendor identifiers and error categories so callers of the
// database package need not import types for the common cases.
const (
	SQLServer  = types.SQLServer
	PostgreSQL = types.PostgreSQL
)

var (
	ErrInvalidArgument  = types.ErrInvalidArgument
	ErrUnsupportedShape = types.ErrUnsupportedShape
)
