package parse

import (
	"fmt"
	"strings"

	"github.com/campusdata/insight/sql/expression"
)

// Query is a query document decoded into its parts. Keys are kept as
// written; the analyzer binds them to dataset fields.
type Query struct {
	// Where is the filter tree of the WHERE block.
	Where expression.Filter
	// Columns are the projected keys and apply labels, in output order.
	Columns []string
	// Order is the ORDER option, nil if absent.
	Order *Order
	// Transformations is the TRANSFORMATIONS block, nil if absent.
	Transformations *Transformations
}

// Direction of an ordering.
type Direction byte

const (
	// Up sorts in ascending order.
	Up Direction = iota
	// Down sorts in descending order.
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "DOWN"
	}
	return "UP"
}

// Order is the ORDER option of a query. A bare string ORDER is an
// ascending order with a single key.
type Order struct {
	Direction Direction
	Keys      []string
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %s", o.Direction, strings.Join(o.Keys, ", "))
}

// Transformations is the TRANSFORMATIONS block of a query.
type Transformations struct {
	Group []string
	Apply []ApplyRule
}

// ApplyOp is an aggregation operator of an apply rule.
type ApplyOp byte

const (
	// Max is the MAX operator.
	Max ApplyOp = iota
	// Min is the MIN operator.
	Min
	// Avg is the AVG operator.
	Avg
	// Sum is the SUM operator.
	Sum
	// Count is the COUNT operator.
	Count
)

var applyOps = map[string]ApplyOp{
	"MAX":   Max,
	"MIN":   Min,
	"AVG":   Avg,
	"SUM":   Sum,
	"COUNT": Count,
}

// ParseApplyOp returns the operator with the given name.
func ParseApplyOp(s string) (ApplyOp, bool) {
	op, ok := applyOps[s]
	return op, ok
}

func (op ApplyOp) String() string {
	switch op {
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	case Avg:
		return "AVG"
	case Sum:
		return "SUM"
	case Count:
		return "COUNT"
	default:
		return "UNKNOWN"
	}
}

// Numeric reports whether the operator only accepts numeric fields.
func (op ApplyOp) Numeric() bool {
	return op != Count
}

// ApplyRule produces the Label column of every group by aggregating the
// field named by Key.
type ApplyRule struct {
	Label string
	Op    ApplyOp
	Key   string
}

func (r ApplyRule) String() string {
	return fmt.Sprintf("%s: %s(%s)", r.Label, r.Op, r.Key)
}
