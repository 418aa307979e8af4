package aggregation

import (
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// Min aggregation returns the smallest value of the selected column.
type Min struct {
	unaryAggBase
}

var _ sql.Aggregation = (*Min)(nil)

// NewMin creates a new Min node.
func NewMin(e sql.Expression) *Min {
	return &Min{unaryAggBase{expression.UnaryExpression{Child: e}, "MIN"}}
}

// NewBuffer implements the Aggregation interface.
func (m *Min) NewBuffer() (sql.AggregationBuffer, error) {
	return &extremumBuffer{name: m.name, expr: m.Child, keep: func(cmp int) bool { return cmp < 0 }}, nil
}
