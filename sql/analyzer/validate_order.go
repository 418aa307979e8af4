package analyzer

import "github.com/campusdata/insight/sql"

// validateOrder checks every ORDER key is one of the columns.
func validateOrder(ctx *sql.Context, a *Analyzer, s *scope) error {
	o := s.query.Order
	if o == nil {
		return nil
	}

	for _, key := range o.Keys {
		if !contains(s.query.Columns, key) {
			return malformed("ORDER key %q is not in COLUMNS", key)
		}
	}
	return nil
}
