package analyzer

import (
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
	"github.com/campusdata/insight/sql/expression/function/aggregation"
	"github.com/campusdata/insight/sql/parse"
	"github.com/campusdata/insight/sql/plan"
)

// buildPlan builds the execution plan of a validated query:
//
//	Sort(Cap(Project(Filter(dataset))))    without transformations
//	Sort(Cap(GroupBy(Filter(dataset))))    with transformations
//
// The cap of a plain query applies to the filtered rows.
func buildPlan(ctx *sql.Context, a *Analyzer, s *scope) (sql.Node, error) {
	span, ctx := ctx.Span("build_plan")
	defer span.Finish()

	var node sql.Node = plan.NewFilter(s.filter, plan.NewResolvedDataset(s.dataset))

	if t := s.transformations(); t != nil {
		grouping := make([]sql.Expression, len(t.Group))
		for i, key := range t.Group {
			f, err := s.field(key)
			if err != nil {
				return nil, err
			}
			grouping[i] = f
		}

		selected := make([]sql.Expression, len(s.query.Columns))
		for i, col := range s.query.Columns {
			e, err := selectedExpr(s, col)
			if err != nil {
				return nil, err
			}
			selected[i] = e
		}

		node = plan.NewCap(a.MaxRows, plan.NewGroupBy(selected, grouping, node))
	} else {
		projections := make([]sql.Expression, len(s.query.Columns))
		for i, col := range s.query.Columns {
			f, err := s.field(col)
			if err != nil {
				return nil, err
			}
			projections[i] = f
		}

		node = plan.NewProject(projections, plan.NewCap(a.MaxRows, node))
	}

	if o := s.query.Order; o != nil && len(o.Keys) > 0 {
		node = plan.NewSort(sortFields(node.Schema(), o), node)
	}

	return node, nil
}

func selectedExpr(s *scope, col string) (sql.Expression, error) {
	rule, ok := s.labels[col]
	if !ok {
		return s.field(col)
	}

	f, err := s.field(rule.Key)
	if err != nil {
		return nil, err
	}

	var agg sql.Aggregation
	switch rule.Op {
	case parse.Max:
		agg = aggregation.NewMax(f)
	case parse.Min:
		agg = aggregation.NewMin(f)
	case parse.Avg:
		agg = aggregation.NewAvg(f)
	case parse.Sum:
		agg = aggregation.NewSum(f)
	default:
		agg = aggregation.NewCount(f)
	}

	return expression.NewAlias(col, agg), nil
}

// sortFields binds the ORDER keys to the columns of the projected rows.
func sortFields(schema sql.Schema, o *parse.Order) []plan.SortField {
	order := plan.Ascending
	if o.Direction == parse.Down {
		order = plan.Descending
	}

	fields := make([]plan.SortField, len(o.Keys))
	for i, key := range o.Keys {
		idx := schema.IndexOf(key)
		fields[i] = plan.SortField{
			Column: expression.NewGetField(idx, schema[idx].Type, key),
			Order:  order,
		}
	}
	return fields
}
