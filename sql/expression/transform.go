package expression

import (
	"fmt"

	"github.com/campusdata/insight/sql"
)

// TransformOperandFunc is a function that given a comparison or match of a
// filter and its field operand will return a new operand or an error.
type TransformOperandFunc func(op Filter, field sql.Expression) (sql.Expression, error)

// TransformFilter applies f to the field operand of every comparison and
// match in the filter tree, in order, and returns the rebuilt tree. The
// input tree is never modified.
func TransformFilter(flt Filter, f TransformOperandFunc) (Filter, error) {
	switch flt := flt.(type) {
	case *Empty:
		return flt, nil
	case *Comparison:
		child, err := f(flt, flt.Child)
		if err != nil {
			return nil, err
		}
		return NewComparison(flt.Op, child, flt.Value), nil
	case *Match:
		child, err := f(flt, flt.Child)
		if err != nil {
			return nil, err
		}
		m, err := NewMatch(child, flt.Pattern)
		if err != nil {
			return nil, err
		}
		return m, nil
	case *Not:
		child, err := TransformFilter(flt.Child, f)
		if err != nil {
			return nil, err
		}
		return NewNot(child), nil
	case *And:
		fs, err := transformFilters(flt.Filters, f)
		if err != nil {
			return nil, err
		}
		return NewAnd(fs...), nil
	case *Or:
		fs, err := transformFilters(flt.Filters, f)
		if err != nil {
			return nil, err
		}
		return NewOr(fs...), nil
	default:
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("%T", flt))
	}
}

func transformFilters(fs []Filter, f TransformOperandFunc) ([]Filter, error) {
	out := make([]Filter, len(fs))
	for i, c := range fs {
		nc, err := TransformFilter(c, f)
		if err != nil {
			return nil, err
		}
		out[i] = nc
	}
	return out, nil
}
