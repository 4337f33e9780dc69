package database

import (
	"fmt"

	"github.com/gaborage/sqlbricks/config"
	"github.com/gaborage/sqlbricks/database/types"
)

// BuildFromDefinition maps a query definition document onto a fresh builder
// from qb. Operator, join type and direction names are parsed first; builder
// errors are reported through the returned builder's Err as usual, and also
// returned here.
func BuildFromDefinition(qb types.QueryBuilderInterface, def *config.QueryConfig) (types.SelectQueryBuilder, error) {
	sqb := qb.Query()
	if def == nil {
		return sqb, fmt.Errorf("%w: query definition is nil", types.ErrInvalidArgument)
	}

	if def.Distinct {
		sqb.Distinct()
	}

	for i, p := range def.Select {
		if err := applyProjection(sqb, p); err != nil {
			return sqb, fmt.Errorf("query.select[%d]: %w", i, err)
		}
	}

	if len(def.From) > 0 {
		sqb.From(def.From...)
	}

	for i, j := range def.Joins {
		spec, err := joinSpec(j)
		if err != nil {
			return sqb, fmt.Errorf("query.joins[%d]: %w", i, err)
		}
		sqb.JoinSpec(spec)
	}

	if def.Where != nil {
		pred, err := predicate(def.Where)
		if err != nil {
			return sqb, fmt.Errorf("query.where.%w", err)
		}
		sqb.Where(pred)
	}

	for _, g := range def.GroupBy {
		sqb.GroupBy(g.Table, g.Column)
	}

	if def.Having != nil {
		pred, err := predicate(def.Having)
		if err != nil {
			return sqb, fmt.Errorf("query.having.%w", err)
		}
		sqb.Having(pred)
	}

	for i, o := range def.OrderBy {
		if err := applyOrder(sqb, o); err != nil {
			return sqb, fmt.Errorf("query.order_by[%d]: %w", i, err)
		}
	}

	if def.Skip != nil {
		sqb.Skip(*def.Skip)
	}
	if def.Take != nil {
		sqb.Take(*def.Take)
	}

	return sqb, sqb.Err()
}

func applyProjection(sqb types.SelectQueryBuilder, p config.ProjectionConfig) error {
	switch {
	case p.Raw != "":
		sqb.SelectRaw(p.Raw)
	case p.All:
		sqb.SelectAll()
	case p.Count:
		sqb.SelectCountAll()
	case p.Column != "" && p.As != "":
		sqb.SelectAs(p.Table, p.Column, p.As)
	case p.Column != "":
		sqb.Select(p.Table, p.Column)
	default:
		return fmt.Errorf("%w: projection needs one of all, count, raw or column", types.ErrInvalidArgument)
	}
	return nil
}

func joinSpec(j config.JoinConfig) (types.JoinSpec, error) {
	joinType, err := types.ParseJoinType(j.Type)
	if err != nil {
		return types.JoinSpec{}, err
	}
	op := types.EqualTo
	if j.Operator != "" {
		if op, err = types.ParseComparisonOperator(j.Operator); err != nil {
			return types.JoinSpec{}, err
		}
	}
	return types.JoinSpec{
		Type:       joinType,
		JoinTable:  j.Table,
		JoinColumn: j.Column,
		Operator:   op,
		BaseTable:  j.BaseTable,
		BaseColumn: j.BaseColumn,
	}, nil
}

// predicate returns a raw body when Raw is set, otherwise the clause chain.
func predicate(p *config.PredicateConfig) (types.Predicate, error) {
	if p.Raw != "" {
		return types.Raw(p.Raw), nil
	}

	stmt := make(types.WhereStatement, 0, len(p.Clauses))
	for i, c := range p.Clauses {
		op, err := types.ParseComparisonOperator(c.Operator)
		if err != nil {
			return nil, fmt.Errorf("clauses[%d]: %w", i, err)
		}
		logic, err := types.ParseLogicOperator(c.Logic)
		if err != nil {
			return nil, fmt.Errorf("clauses[%d]: %w", i, err)
		}
		stmt = append(stmt, types.WhereClause{
			Logic:    logic,
			Table:    c.Table,
			Column:   c.Column,
			Operator: op,
			Value:    c.Value,
		})
	}
	if len(stmt) == 1 {
		return stmt[0], nil
	}
	return stmt, nil
}

func applyOrder(sqb types.SelectQueryBuilder, o config.OrderConfig) error {
	if o.Raw != "" {
		sqb.OrderByRaw(o.Raw)
		return nil
	}
	dir, err := types.ParseSortDirection(o.Direction)
	if err != nil {
		return err
	}
	if o.Table != "" {
		sqb.OrderBy(o.Table, o.Column, dir)
	} else {
		sqb.OrderByColumn(o.Column, dir)
	}
	return nil
}
