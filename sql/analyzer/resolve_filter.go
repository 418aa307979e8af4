package analyzer

import (
	"fmt"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// resolveFilter binds every key of the WHERE tree. Comparisons need a
// numeric field and matches a string field.
func resolveFilter(ctx *sql.Context, a *Analyzer, s *scope) error {
	f, err := expression.TransformFilter(s.query.Where, func(op expression.Filter, e sql.Expression) (sql.Expression, error) {
		col, ok := e.(*expression.UnresolvedColumn)
		if !ok {
			return e, nil
		}

		switch op.(type) {
		case *expression.Comparison:
			return s.numericField(col.Name())
		case *expression.Match:
			return s.stringField(col.Name())
		default:
			return nil, sql.ErrInvalidType.New(fmt.Sprintf("%T", op))
		}
	})
	if err != nil {
		return err
	}

	s.filter = f
	return nil
}
