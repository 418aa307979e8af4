package aggregation

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// ErrEvalUnsupportedOnAggregation is thrown when an aggregation is
// evaluated on a row instead of through its buffer.
var ErrEvalUnsupportedOnAggregation = errors.NewKind("Unimplemented %s.Eval(). The code should have used AggregationBuffer.Eval(ctx).")

// ErrNotANumber is thrown when a numeric aggregation gets a value that is
// not a number.
var ErrNotANumber = errors.NewKind("%s: %v is not a number")

// Precision is the number of decimal places of SUM and AVG results.
const Precision = 2

type unaryAggBase struct {
	expression.UnaryExpression
	name string
}

// Type implements the Expression interface.
func (a *unaryAggBase) Type() sql.Type {
	return sql.Float64
}

// Eval implements the Expression interface.
func (a *unaryAggBase) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New(a.name)
}

func (a *unaryAggBase) String() string {
	return fmt.Sprintf("%s(%s)", a.name, a.Child)
}

// First returns the value of the child expression for the first row of
// the group.
type First struct {
	unaryAggBase
}

var _ sql.Aggregation = (*First)(nil)

// NewFirst returns a new First aggregation.
func NewFirst(e sql.Expression) *First {
	return &First{unaryAggBase{expression.UnaryExpression{Child: e}, "FIRST"}}
}

// Type implements the Expression interface.
func (f *First) Type() sql.Type {
	return f.Child.Type()
}

// NewBuffer implements the Aggregation interface.
func (f *First) NewBuffer() (sql.AggregationBuffer, error) {
	return &firstBuffer{expr: f.Child}, nil
}

type firstBuffer struct {
	expr  sql.Expression
	value interface{}
	set   bool
}

func (b *firstBuffer) Update(ctx *sql.Context, row sql.Row) error {
	if b.set {
		return nil
	}

	v, err := b.expr.Eval(ctx, row)
	if err != nil {
		return err
	}
	b.value = v
	b.set = true
	return nil
}

func (b *firstBuffer) Eval(ctx *sql.Context) (interface{}, error) {
	return b.value, nil
}

func evalNumber(ctx *sql.Context, name string, expr sql.Expression, row sql.Row) (float64, error) {
	v, err := expr.Eval(ctx, row)
	if err != nil {
		return 0, err
	}

	if !sql.IsNumeric(v) {
		return 0, ErrNotANumber.New(name, v)
	}

	f, err := sql.Float64.Convert(v)
	if err != nil {
		return 0, err
	}
	return f.(float64), nil
}
