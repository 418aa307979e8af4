package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// Sum aggregation returns the sum of the values of the selected column,
// rounded to two decimal places.
type Sum struct {
	unaryAggBase
}

var _ sql.Aggregation = (*Sum)(nil)

// NewSum returns a new Sum node.
func NewSum(e sql.Expression) *Sum {
	return &Sum{unaryAggBase{expression.UnaryExpression{Child: e}, "SUM"}}
}

// NewBuffer implements the Aggregation interface.
func (s *Sum) NewBuffer() (sql.AggregationBuffer, error) {
	return &sumBuffer{name: s.name, expr: s.Child, sum: decimal.Zero}, nil
}

type sumBuffer struct {
	name  string
	expr  sql.Expression
	sum   decimal.Decimal
	count int64
}

func (b *sumBuffer) Update(ctx *sql.Context, row sql.Row) error {
	v, err := evalNumber(ctx, b.name, b.expr, row)
	if err != nil {
		return err
	}

	b.sum = b.sum.Add(decimal.NewFromFloat(v))
	b.count++
	return nil
}

func (b *sumBuffer) Eval(ctx *sql.Context) (interface{}, error) {
	f, _ := b.sum.Round(Precision).Float64()
	return f, nil
}
