package plan

import (
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/campusdata/insight/sql"
)

// ResolvedDataset represents a resolved dataset. Its rows are produced in
// load order and never modified.
type ResolvedDataset struct {
	*sql.Dataset
}

var _ sql.Node = (*ResolvedDataset)(nil)

// NewResolvedDataset creates a new instance of ResolvedDataset.
func NewResolvedDataset(d *sql.Dataset) *ResolvedDataset {
	return &ResolvedDataset{d}
}

// Schema implements the Node interface. Columns are named by their
// external key.
func (d *ResolvedDataset) Schema() sql.Schema {
	fields := d.Dataset.Schema()
	s := make(sql.Schema, len(fields))
	for i, c := range fields {
		s[i] = &sql.Column{
			Name:   sql.Key{Dataset: d.ID, Field: c.Name}.String(),
			Type:   c.Type,
			Source: d.ID,
		}
	}
	return s
}

// Resolved implements the Resolvable interface.
func (*ResolvedDataset) Resolved() bool {
	return true
}

// Children implements the Node interface.
func (*ResolvedDataset) Children() []sql.Node {
	return nil
}

// RowIter implements the RowIter interface.
func (d *ResolvedDataset) RowIter(ctx *sql.Context) (sql.RowIter, error) {
	span, _ := ctx.Span("plan.ResolvedDataset", opentracing.Tag{Key: "dataset", Value: d.ID})
	return sql.NewSpanIter(span, sql.RowsToRowIter(d.Rows...)), nil
}

func (d *ResolvedDataset) String() string {
	return "ResolvedDataset(" + d.ID + ")"
}
