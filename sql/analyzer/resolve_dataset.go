package analyzer

import (
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/parse"
)

// resolveDataset finds the dataset the query refers to.
func resolveDataset(ctx *sql.Context, q *parse.Query, datasets sql.DatasetProvider) (*scope, error) {
	span, ctx := ctx.Span("resolve_dataset")
	defer span.Finish()

	var group []string
	if q.Transformations != nil {
		group = q.Transformations.Group
	}

	id, err := sql.ActiveDataset(q.Columns, group)
	if err != nil {
		if sql.ErrMalformedQuery.Is(err) {
			return nil, err
		}
		return nil, sql.ErrMalformedQuery.Wrap(err, err.Error())
	}

	d, err := datasets.Dataset(id)
	if err != nil {
		return nil, err
	}

	ctx.GetLogger().WithField("dataset", id).Debug("resolved dataset")
	return newScope(q, d, activeKey(q.Columns, group)), nil
}

// activeKey returns the key the dataset id is taken from.
func activeKey(columns, group []string) string {
	if len(columns) > 0 && sql.IsKey(columns[0]) {
		return columns[0]
	}
	if len(group) > 0 {
		return group[0]
	}
	return ""
}
