package insight

import (
	"bytes"
	"encoding/json"

	"github.com/campusdata/insight/sql"
)

// Result is the ordered set of rows produced by a query. Rows follow the
// schema, whose columns are named by their external key or apply label.
type Result struct {
	Schema sql.Schema
	Rows   []sql.Row
}

// Columns returns the names of the columns of the result.
func (r *Result) Columns() []string {
	return r.Schema.Names()
}

// Maps returns every row as a mapping from column name to value.
func (r *Result) Maps() []map[string]interface{} {
	out := make([]map[string]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Map(r.Schema)
	}
	return out
}

// MarshalJSON encodes the result as an array of objects whose keys keep
// the order of the columns.
func (r *Result) MarshalJSON() ([]byte, error) {
	names := r.Columns()
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range r.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, name := range names {
			if j > 0 {
				buf.WriteByte(',')
			}

			k, err := json.Marshal(name)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(row[j])
			if err != nil {
				return nil, err
			}

			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
