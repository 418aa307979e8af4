package analyzer

import (
	"github.com/campusdata/insight/internal/similartext"
	"github.com/campusdata/insight/sql"
)

// validateColumns checks every column is a field of the dataset or, in
// queries with transformations, a group key or an apply label.
func validateColumns(ctx *sql.Context, a *Analyzer, s *scope) error {
	t := s.transformations()
	for _, col := range s.query.Columns {
		if t == nil {
			if _, err := s.field(col); err != nil {
				return err
			}
			continue
		}

		if _, ok := s.labels[col]; ok {
			continue
		}

		if !sql.IsKey(col) {
			return malformed("unknown apply label %q%s", col, similartext.FindFromMap(labelNames(s), col))
		}

		if _, err := s.field(col); err != nil {
			return err
		}

		if !contains(t.Group, col) {
			return malformed("column %q is not in GROUP", col)
		}
	}

	return nil
}

func labelNames(s *scope) map[string]struct{} {
	names := make(map[string]struct{}, len(s.labels))
	for l := range s.labels {
		names[l] = struct{}{}
	}
	return names
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
