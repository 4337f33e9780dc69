// Package columns extracts projected column names from `db:"column"` struct tags.
package columns

import (
	"fmt"
	"reflect"
	"strings"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// Parse extracts column metadata from a struct or pointer to struct.
// Quoting is left to the dialect at render time, so tags hold bare names.
//
// Returns an error wrapping ErrInvalidArgument if:
//   - model is not a struct or a non-nil pointer to one
//   - Any db tag contains dangerous SQL characters or quotes
//   - No exported field carries a db tag
func Parse(model any) (*ColumnMetadata, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: model cannot be nil", dbtypes.ErrInvalidArgument)
	}

	rt := reflect.TypeOf(model)
	if rt.Kind() == reflect.Pointer {
		if reflect.ValueOf(model).IsNil() {
			return nil, fmt.Errorf("%w: model cannot be a nil pointer", dbtypes.ErrInvalidArgument)
		}
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: model must be a struct or pointer to struct, got %T", dbtypes.ErrInvalidArgument, model)
	}

	metadata := &ColumnMetadata{
		TypeName: rt.Name(),
		Columns:  make([]Column, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		if !field.IsExported() {
			continue
		}

		// db:"-" is an explicit ignore; options after a comma are not column names
		tag, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "-" {
			continue
		}

		if err := validateDBTag(tag, rt.Name(), field.Name); err != nil {
			return nil, err
		}

		metadata.Columns = append(metadata.Columns, Column{
			FieldName:  field.Name,
			DBColumn:   tag,
			FieldIndex: i,
			FieldType:  field.Type,
		})
	}

	if len(metadata.Columns) == 0 {
		return nil, fmt.Errorf("%w: no fields with `db` tags found in struct %s", dbtypes.ErrInvalidArgument, rt.Name())
	}

	return metadata, nil
}

// validateDBTag checks for dangerous characters in db tags that could indicate SQL injection attempts.
func validateDBTag(tag, structName, fieldName string) error {
	dangerous := []string{";", "--", "/*", "*/"}
	for _, d := range dangerous {
		if strings.Contains(tag, d) {
			return fmt.Errorf(
				"%w: invalid db tag %q in field %s.%s: contains dangerous SQL characters %q",
				dbtypes.ErrInvalidArgument, tag, structName, fieldName, d,
			)
		}
	}

	// Column names should not be pre-quoted in tags
	if strings.ContainsAny(tag, "\"'[]`") {
		return fmt.Errorf(
			"%w: invalid db tag %q in field %s.%s: contains quotes (vendor-specific quoting is applied automatically)",
			dbtypes.ErrInvalidArgument, tag, structName, fieldName,
		)
	}

	return nil
}
