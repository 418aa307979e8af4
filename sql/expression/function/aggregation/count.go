package aggregation

import (
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
	"github.com/campusdata/insight/sql/hash"
)

// Count returns the number of distinct values of the selected column in
// the group. It accepts fields of any type.
type Count struct {
	unaryAggBase
}

var _ sql.Aggregation = (*Count)(nil)

// NewCount creates a new Count node.
func NewCount(e sql.Expression) *Count {
	return &Count{unaryAggBase{expression.UnaryExpression{Child: e}, "COUNT"}}
}

// NewBuffer implements the Aggregation interface.
func (c *Count) NewBuffer() (sql.AggregationBuffer, error) {
	return &countBuffer{expr: c.Child, seen: hash.NewTupleMap()}, nil
}

type countBuffer struct {
	expr sql.Expression
	seen *hash.TupleMap
}

func (b *countBuffer) Update(ctx *sql.Context, row sql.Row) error {
	v, err := b.expr.Eval(ctx, row)
	if err != nil {
		return err
	}

	_, err = b.seen.Put(struct{}{}, v)
	return err
}

func (b *countBuffer) Eval(ctx *sql.Context) (interface{}, error) {
	return float64(b.seen.Len()), nil
}
