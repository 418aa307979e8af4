package sql

import (
	"fmt"
)

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Resolvable is something that can be resolved or not.
type Resolvable interface {
	// Resolved returns whether the node is resolved.
	Resolved() bool
}

// Expression is a combination of one or more SQL expressions.
type Expression interface {
	Resolvable
	fmt.Stringer
	// Type returns the expression type.
	Type() Type
	// Eval evaluates the given row and returns a result.
	Eval(*Context, Row) (interface{}, error)
	// Children returns the children expressions of this expression.
	Children() []Expression
}

// Aggregation implements an aggregation expression, where an
// aggregation buffer is created for each grouping (NewBuffer) and rows in the
// grouping are fed to the buffer (Update). Once all rows are consumed, the
// final value is computed with Eval.
type Aggregation interface {
	Expression
	// NewBuffer creates a new aggregation buffer. The buffer holds all the
	// state of a single evaluation and is never shared between groups.
	NewBuffer() (AggregationBuffer, error)
}

// AggregationBuffer accumulates the rows of a single group.
type AggregationBuffer interface {
	// Update the given buffer with the given row.
	Update(ctx *Context, row Row) error
	// Eval the final value of the buffer.
	Eval(ctx *Context) (interface{}, error)
}

// Node is a node in the execution plan tree.
type Node interface {
	Resolvable
	fmt.Stringer
	// Schema of the node.
	Schema() Schema
	// Children nodes.
	Children() []Node
	// RowIter produces a row iterator from this node.
	RowIter(*Context) (RowIter, error)
}

// Expressioner is a node that contains expressions.
type Expressioner interface {
	// Expressions returns the list of expressions contained by the node.
	Expressions() []Expression
}
