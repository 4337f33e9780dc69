package builder

import (
	"fmt"
	"strings"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
)

// validateIdentifiers rejects blank names and dotted names with a blank segment.
func validateIdentifiers(names ...string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return dbtypes.ErrEmptyIdentifier
		}
		for _, segment := range strings.Split(name, ".") {
			if strings.TrimSpace(segment) == "" {
				return fmt.Errorf("%w: %q has an empty segment", dbtypes.ErrEmptyIdentifier, name)
			}
		}
	}
	return nil
}

func validateProjection(item dbtypes.Projection) error {
	switch p := item.(type) {
	case nil:
		return fmt.Errorf("%w: projection cannot be nil", dbtypes.ErrInvalidArgument)
	case dbtypes.TableColumnPair:
		return validateIdentifiers(p.Table, p.Column)
	case dbtypes.AliasedColumn:
		return validateIdentifiers(p.Table, p.Column, p.Alias)
	case dbtypes.SQLLiteral:
		if strings.TrimSpace(p.Text) == "" {
			return dbtypes.ErrEmptyLiteral
		}
		return nil
	case dbtypes.AllColumns, dbtypes.CountAll:
		return nil
	default:
		return fmt.Errorf("%w: projection of type %T", dbtypes.ErrUnsupportedShape, item)
	}
}

// validateJoin checks the join type and, except for CROSS JOIN, the ON operands.
func validateJoin(spec dbtypes.JoinSpec) error {
	if !spec.Type.Valid() {
		return fmt.Errorf("%w: join type %s", dbtypes.ErrUnsupportedShape, spec.Type)
	}
	if err := validateIdentifiers(spec.JoinTable); err != nil {
		return err
	}
	if spec.Type == dbtypes.CrossJoin {
		return nil
	}
	if err := validateIdentifiers(spec.JoinColumn, spec.BaseTable, spec.BaseColumn); err != nil {
		return err
	}
	if !spec.Operator.IsRelational() {
		return fmt.Errorf("%w: join condition cannot use operator %s", dbtypes.ErrUnsupportedShape, spec.Operator)
	}
	return nil
}
