package expression

import (
	"fmt"
	"strings"

	"github.com/campusdata/insight/sql"
)

// Not is the negation of a filter.
type Not struct {
	Child Filter
}

// NewNot returns a new Not node.
func NewNot(child Filter) *Not {
	return &Not{child}
}

// Children implements the Expression interface.
func (n *Not) Children() []sql.Expression { return []sql.Expression{n.Child} }

// Resolved implements the Expression interface.
func (n *Not) Resolved() bool { return n.Child.Resolved() }

// Type implements the Expression interface.
func (*Not) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (n *Not) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return Matches(ctx, n, row)
}

func (n *Not) String() string {
	return fmt.Sprintf("NOT(%s)", n.Child)
}

// And checks whether all of its filters match.
type And struct {
	Filters []Filter
}

// NewAnd creates a new And node.
func NewAnd(filters ...Filter) *And {
	return &And{filters}
}

// Children implements the Expression interface.
func (a *And) Children() []sql.Expression { return filterExpressions(a.Filters) }

// Resolved implements the Expression interface.
func (a *And) Resolved() bool { return allResolved(a.Filters) }

// Type implements the Expression interface.
func (*And) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (a *And) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return Matches(ctx, a, row)
}

func (a *And) String() string {
	return joinFilters(a.Filters, " AND ")
}

// Or checks whether any of its filters match.
type Or struct {
	Filters []Filter
}

// NewOr creates a new Or node.
func NewOr(filters ...Filter) *Or {
	return &Or{filters}
}

// Children implements the Expression interface.
func (o *Or) Children() []sql.Expression { return filterExpressions(o.Filters) }

// Resolved implements the Expression interface.
func (o *Or) Resolved() bool { return allResolved(o.Filters) }

// Type implements the Expression interface.
func (*Or) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (o *Or) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return Matches(ctx, o, row)
}

func (o *Or) String() string {
	return joinFilters(o.Filters, " OR ")
}

func filterExpressions(fs []Filter) []sql.Expression {
	exprs := make([]sql.Expression, len(fs))
	for i, f := range fs {
		exprs[i] = f
	}
	return exprs
}

func allResolved(fs []Filter) bool {
	for _, f := range fs {
		if !f.Resolved() {
			return false
		}
	}
	return true
}

func joinFilters(fs []Filter, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}
