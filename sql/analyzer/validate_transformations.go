package analyzer

import (
	"github.com/campusdata/insight/sql"
)

// validateTransformations checks every group key and apply rule and
// registers the apply labels in the scope.
func validateTransformations(ctx *sql.Context, a *Analyzer, s *scope) error {
	t := s.transformations()
	if t == nil {
		return nil
	}

	if len(t.Group) == 0 {
		return malformed("GROUP must not be empty")
	}
	for _, key := range t.Group {
		if _, err := s.field(key); err != nil {
			return err
		}
	}

	if len(t.Apply) == 0 {
		return malformed("APPLY must not be empty")
	}
	for _, rule := range t.Apply {
		if rule.Label == "" || sql.IsKey(rule.Label) {
			return malformed("invalid apply label %q", rule.Label)
		}

		if _, ok := s.labels[rule.Label]; ok {
			return malformed("duplicate apply label %q", rule.Label)
		}

		if rule.Op.Numeric() {
			if _, err := s.numericField(rule.Key); err != nil {
				return err
			}
		} else if _, err := s.field(rule.Key); err != nil {
			return err
		}

		s.labels[rule.Label] = rule
	}

	return nil
}
