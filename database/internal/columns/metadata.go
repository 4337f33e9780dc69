package columns

import (
	"reflect"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// Column represents metadata for a single database column extracted from a struct field.
type Column struct {
	// FieldName is the Go struct field name (e.g., "CategoryID")
	FieldName string

	// DBColumn is the raw column name from the db tag (e.g., "CategoryId")
	DBColumn string

	// FieldIndex is the index of this field in the struct
	FieldIndex int

	// FieldType is the reflect.Type of the struct field
	FieldType reflect.Type
}

// ColumnMetadata lists the db-tagged columns of a struct type in declaration order.
type ColumnMetadata struct {
	TypeName string
	Columns  []Column
}

// Pairs qualifies every column with table, preserving declaration order.
func (cm *ColumnMetadata) Pairs(table string) []dbtypes.TableColumnPair {
	pairs := make([]dbtypes.TableColumnPair, len(cm.Columns))
	for i, col := range cm.Columns {
		pairs[i] = dbtypes.Col(table, col.DBColumn)
	}
	return pairs
}

// Names returns the raw column names in declaration order.
func (cm *ColumnMetadata) Names() []string {
	names := make([]string, len(cm.Columns))
	for i, col := range cm.Columns {
		names[i] = col.DBColumn
	}
	return names
}
