package plan

import (
	"io"
	"strings"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
	"github.com/campusdata/insight/sql/expression/function/aggregation"
	"github.com/campusdata/insight/sql/hash"
)

// GroupBy groups the rows by some expressions and emits one row per group.
// Groups are emitted in the order their first row was seen.
type GroupBy struct {
	UnaryNode
	SelectedExprs []sql.Expression
	GroupByExprs  []sql.Expression
}

// NewGroupBy creates a new GroupBy node. The selected expressions are
// either aggregations, optionally aliased, or expressions that are
// constant within a group.
func NewGroupBy(selectedExprs, groupByExprs []sql.Expression, child sql.Node) *GroupBy {
	return &GroupBy{
		UnaryNode:     UnaryNode{Child: child},
		SelectedExprs: selectedExprs,
		GroupByExprs:  groupByExprs,
	}
}

// Resolved implements the Resolvable interface.
func (g *GroupBy) Resolved() bool {
	return g.UnaryNode.Child.Resolved() &&
		expressionsResolved(g.SelectedExprs...) &&
		expressionsResolved(g.GroupByExprs...)
}

// Schema implements the Node interface.
func (g *GroupBy) Schema() sql.Schema {
	return expressionsSchema(g.SelectedExprs)
}

// RowIter implements the Node interface.
func (g *GroupBy) RowIter(ctx *sql.Context) (sql.RowIter, error) {
	span, ctx := ctx.Span("plan.GroupBy")
	span.LogKV("groupings", len(g.GroupByExprs), "aggregates", len(g.SelectedExprs))

	i, err := g.Child.RowIter(ctx)
	if err != nil {
		span.Finish()
		return nil, err
	}

	return sql.NewSpanIter(span, newGroupByIter(ctx, g, i)), nil
}

func (g *GroupBy) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("GroupBy")

	var selectedExprs = make([]string, len(g.SelectedExprs))
	for i, e := range g.SelectedExprs {
		selectedExprs[i] = e.String()
	}

	var grouping = make([]string, len(g.GroupByExprs))
	for i, g := range g.GroupByExprs {
		grouping[i] = g.String()
	}

	_ = pr.WriteChildren(
		"SelectedExprs("+strings.Join(selectedExprs, ", ")+")",
		"Grouping("+strings.Join(grouping, ", ")+")",
		g.Child.String(),
	)
	return pr.String()
}

// Expressions implements the Expressioner interface.
func (g *GroupBy) Expressions() []sql.Expression {
	var exprs []sql.Expression
	exprs = append(exprs, g.SelectedExprs...)
	exprs = append(exprs, g.GroupByExprs...)
	return exprs
}

type groupByIter struct {
	g            *GroupBy
	child        sql.RowIter
	ctx          *sql.Context
	aggregations *hash.TupleMap
	groups       []interface{}
	pos          int
}

func newGroupByIter(ctx *sql.Context, g *GroupBy, child sql.RowIter) *groupByIter {
	return &groupByIter{g: g, child: child, ctx: ctx}
}

func (i *groupByIter) Next() (sql.Row, error) {
	if i.aggregations == nil {
		i.aggregations = hash.NewTupleMap()
		if err := i.compute(); err != nil {
			return nil, err
		}
		i.groups = i.aggregations.Values()
	}

	if i.pos >= len(i.groups) {
		return nil, io.EOF
	}

	buffers := i.groups[i.pos].([]sql.AggregationBuffer)
	i.pos++
	return evalBuffers(i.ctx, buffers)
}

func (i *groupByIter) compute() error {
	for {
		row, err := i.child.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		key, err := groupingKey(i.ctx, i.g.GroupByExprs, row)
		if err != nil {
			return err
		}

		v, ok, err := i.aggregations.Get(key...)
		if err != nil {
			return err
		}

		var b []sql.AggregationBuffer
		if ok {
			b = v.([]sql.AggregationBuffer)
		} else {
			b = make([]sql.AggregationBuffer, len(i.g.SelectedExprs))
			for j, a := range i.g.SelectedExprs {
				b[j], err = newAggregationBuffer(a)
				if err != nil {
					return err
				}
			}

			if _, err := i.aggregations.Put(b, key...); err != nil {
				return err
			}
		}

		if err := updateBuffers(i.ctx, b, row); err != nil {
			return err
		}
	}

	return nil
}

func (i *groupByIter) Close() error {
	i.aggregations = nil
	i.groups = nil
	return i.child.Close()
}

// groupingKey is the tuple of the values of the grouping expressions.
func groupingKey(
	ctx *sql.Context,
	exprs []sql.Expression,
	row sql.Row,
) ([]interface{}, error) {
	key := make([]interface{}, len(exprs))
	for i, expr := range exprs {
		v, err := expr.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

func newAggregationBuffer(expr sql.Expression) (sql.AggregationBuffer, error) {
	switch n := expr.(type) {
	case sql.Aggregation:
		return n.NewBuffer()
	case *expression.Alias:
		return newAggregationBuffer(n.Child)
	default:
		// A selected expression that is not an aggregation is the same for
		// every row of the group.
		return aggregation.NewFirst(expr).NewBuffer()
	}
}

func updateBuffers(
	ctx *sql.Context,
	buffers []sql.AggregationBuffer,
	row sql.Row,
) error {
	for _, b := range buffers {
		if err := b.Update(ctx, row); err != nil {
			return err
		}
	}

	return nil
}

func evalBuffers(
	ctx *sql.Context,
	buffers []sql.AggregationBuffer,
) (sql.Row, error) {
	var row = make(sql.Row, len(buffers))

	var err error
	for i, b := range buffers {
		row[i], err = b.Eval(ctx)
		if err != nil {
			return nil, err
		}
	}

	return row, nil
}
