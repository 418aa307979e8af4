package analyzer

import (
	"github.com/campusdata/insight/internal/similartext"
	"github.com/campusdata/insight/sql"
)

// validateCatalog checks the field the dataset was selected by belongs to
// the catalog of the dataset kind.
func validateCatalog(ctx *sql.Context, a *Analyzer, s *scope) error {
	k, err := sql.ParseKey(s.activeKey)
	if err != nil {
		return sql.ErrMalformedQuery.Wrap(err, err.Error())
	}

	kind, ok := sql.KindOfField(k.Field)
	if !ok {
		return malformed(
			"key %q matches no field catalog%s",
			s.activeKey, similartext.Find(s.schema.Names(), s.activeKey),
		)
	}

	if kind != s.dataset.Kind {
		return malformed(
			"key %q is a %s field but dataset %q holds %s",
			s.activeKey, kind, s.dataset.ID, s.dataset.Kind,
		)
	}

	return nil
}
