package expression

import (
	"fmt"

	"github.com/campusdata/insight/sql"
)

// ComparisonOp is the operator of a numeric comparison.
type ComparisonOp byte

const (
	// LessThan is the LT operator.
	LessThan ComparisonOp = iota
	// GreaterThan is the GT operator.
	GreaterThan
	// Equals is the EQ operator.
	Equals
)

// ParseComparisonOp returns the operator with the given query name.
func ParseComparisonOp(s string) (ComparisonOp, bool) {
	switch s {
	case "LT":
		return LessThan, true
	case "GT":
		return GreaterThan, true
	case "EQ":
		return Equals, true
	default:
		return 0, false
	}
}

func (op ComparisonOp) String() string {
	switch op {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	default:
		return "="
	}
}

// Comparison compares a numeric field with a constant.
type Comparison struct {
	UnaryExpression
	Op    ComparisonOp
	Value float64
}

// NewComparison creates a comparison of the given field with a value.
func NewComparison(op ComparisonOp, left sql.Expression, value float64) *Comparison {
	return &Comparison{UnaryExpression{left}, op, value}
}

// Type implements the Expression interface.
func (*Comparison) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (c *Comparison) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return c.matches(ctx, row)
}

func (c *Comparison) matches(ctx *sql.Context, row sql.Row) (bool, error) {
	v, err := c.Child.Eval(ctx, row)
	if err != nil {
		return false, err
	}

	if !sql.IsNumeric(v) {
		return false, sql.ErrInvalidType.New(fmt.Sprintf("%s is not a number", c.Child))
	}

	cmp, err := sql.Float64.Compare(v, c.Value)
	if err != nil {
		return false, err
	}

	switch c.Op {
	case LessThan:
		return cmp < 0, nil
	case GreaterThan:
		return cmp > 0, nil
	default:
		return cmp == 0, nil
	}
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %v", c.Child, c.Op, c.Value)
}
