package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// Avg node to calculate the average from numeric column. The sum is
// accumulated as a decimal and the result rounded to two decimal places.
type Avg struct {
	unaryAggBase
}

var _ sql.Aggregation = (*Avg)(nil)

// NewAvg creates a new Avg node.
func NewAvg(e sql.Expression) *Avg {
	return &Avg{unaryAggBase{expression.UnaryExpression{Child: e}, "AVG"}}
}

// NewBuffer implements the Aggregation interface.
func (a *Avg) NewBuffer() (sql.AggregationBuffer, error) {
	return &avgBuffer{sumBuffer{name: a.name, expr: a.Child, sum: decimal.Zero}}, nil
}

type avgBuffer struct {
	sumBuffer
}

func (b *avgBuffer) Eval(ctx *sql.Context) (interface{}, error) {
	if b.count == 0 {
		return float64(0), nil
	}

	avg := b.sum.Div(decimal.NewFromInt(b.count))
	f, _ := avg.Round(Precision).Float64()
	return f, nil
}
