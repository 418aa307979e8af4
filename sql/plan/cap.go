package plan

import (
	"io"

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/campusdata/insight/sql"
)

// Cap fails the whole query when its child produces more than Max rows.
// No row is returned until the child has been consumed.
type Cap struct {
	UnaryNode
	Max int
}

// NewCap creates a new Cap node.
func NewCap(max int, child sql.Node) *Cap {
	return &Cap{UnaryNode: UnaryNode{Child: child}, Max: max}
}

// RowIter implements the Node interface.
func (c *Cap) RowIter(ctx *sql.Context) (sql.RowIter, error) {
	span, ctx := ctx.Span("plan.Cap", opentracing.Tag{Key: "max", Value: c.Max})
	i, err := c.Child.RowIter(ctx)
	if err != nil {
		span.Finish()
		return nil, err
	}
	return sql.NewSpanIter(span, &capIter{max: c.Max, childIter: i, idx: -1}), nil
}

func (c *Cap) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Cap(%d)", c.Max)
	_ = pr.WriteChildren(c.Child.String())
	return pr.String()
}

type capIter struct {
	max       int
	childIter sql.RowIter
	rows      []sql.Row
	idx       int
}

func (i *capIter) Next() (sql.Row, error) {
	if i.idx == -1 {
		if err := i.fill(); err != nil {
			return nil, err
		}
		i.idx = 0
	}

	if i.idx >= len(i.rows) {
		return nil, io.EOF
	}
	row := i.rows[i.idx]
	i.idx++
	return row, nil
}

func (i *capIter) fill() error {
	for {
		row, err := i.childIter.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if len(i.rows) == i.max {
			i.rows = nil
			return sql.ErrResultTooLarge.New(i.max)
		}
		i.rows = append(i.rows, row)
	}
}

func (i *capIter) Close() error {
	i.rows = nil
	return i.childIter.Close()
}
