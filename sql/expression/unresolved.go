package expression

import "github.com/campusdata/insight/sql"

// UnresolvedColumn is a key of the query that has not been bound to a
// field of the dataset yet.
type UnresolvedColumn struct {
	name string
}

// NewUnresolvedColumn creates a new UnresolvedColumn expression.
func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{name}
}

// Children implements the Expression interface.
func (*UnresolvedColumn) Children() []sql.Expression {
	return nil
}

// Resolved implements the Expression interface.
func (*UnresolvedColumn) Resolved() bool {
	return false
}

// Type implements the Expression interface.
func (*UnresolvedColumn) Type() sql.Type {
	panic("unresolved column is a placeholder node, but Type was called")
}

// Name implements the Nameable interface.
func (uc *UnresolvedColumn) Name() string { return uc.name }

func (uc *UnresolvedColumn) String() string {
	return uc.name
}

// Eval implements the Expression interface.
func (uc *UnresolvedColumn) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	return nil, sql.ErrUnresolvedExpression.New(uc.name)
}
