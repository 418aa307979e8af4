package expression

import (
	"fmt"

	"github.com/campusdata/insight/sql"
)

// Filter is a node of the WHERE tree of a query. The set of filters is
// closed: Empty, Comparison, Match, Not, And and Or.
type Filter interface {
	sql.Expression
	isFilter()
}

func (*Empty) isFilter()      {}
func (*Comparison) isFilter() {}
func (*Match) isFilter()      {}
func (*Not) isFilter()        {}
func (*And) isFilter()        {}
func (*Or) isFilter()         {}

// Matches reports whether the row satisfies the filter.
func Matches(ctx *sql.Context, f Filter, row sql.Row) (bool, error) {
	switch f := f.(type) {
	case *Empty:
		return true, nil
	case *Comparison:
		return f.matches(ctx, row)
	case *Match:
		return f.matches(ctx, row)
	case *Not:
		ok, err := Matches(ctx, f.Child, row)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case *And:
		for _, c := range f.Filters {
			ok, err := Matches(ctx, c, row)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case *Or:
		for _, c := range f.Filters {
			ok, err := Matches(ctx, c, row)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, sql.ErrInvalidType.New(fmt.Sprintf("%T", f))
	}
}

// Empty is the filter of an empty WHERE. It matches every row.
type Empty struct{}

// NewEmpty creates a filter that matches every row.
func NewEmpty() *Empty { return new(Empty) }

// Children implements the Expression interface.
func (*Empty) Children() []sql.Expression { return nil }

// Resolved implements the Expression interface.
func (*Empty) Resolved() bool { return true }

// Type implements the Expression interface.
func (*Empty) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (*Empty) Eval(*sql.Context, sql.Row) (interface{}, error) { return true, nil }

func (*Empty) String() string { return "TRUE" }
