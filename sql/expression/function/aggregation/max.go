package aggregation

import (
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// Max aggregation returns the greatest value of the selected column.
type Max struct {
	unaryAggBase
}

var _ sql.Aggregation = (*Max)(nil)

// NewMax returns a new Max node.
func NewMax(e sql.Expression) *Max {
	return &Max{unaryAggBase{expression.UnaryExpression{Child: e}, "MAX"}}
}

// NewBuffer implements the Aggregation interface.
func (m *Max) NewBuffer() (sql.AggregationBuffer, error) {
	return &extremumBuffer{name: m.name, expr: m.Child, keep: func(cmp int) bool { return cmp > 0 }}, nil
}

// extremumBuffer is seeded with the first value of the group, never with
// a constant.
type extremumBuffer struct {
	name  string
	expr  sql.Expression
	keep  func(cmp int) bool
	value float64
	set   bool
}

func (b *extremumBuffer) Update(ctx *sql.Context, row sql.Row) error {
	v, err := evalNumber(ctx, b.name, b.expr, row)
	if err != nil {
		return err
	}

	if !b.set {
		b.value = v
		b.set = true
		return nil
	}

	cmp, err := sql.Float64.Compare(v, b.value)
	if err != nil {
		return err
	}
	if b.keep(cmp) {
		b.value = v
	}
	return nil
}

func (b *extremumBuffer) Eval(ctx *sql.Context) (interface{}, error) {
	if !b.set {
		return nil, nil
	}
	return b.value, nil
}
