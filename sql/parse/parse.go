package parse

import (
	"encoding/json"

	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"

	"github.com/campusdata/insight/sql"
)

// ParseJSON parses a query document encoded as JSON.
func ParseJSON(ctx *sql.Context, data []byte) (*Query, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, sql.ErrMalformedQuery.Wrap(err, err.Error())
	}
	return Parse(ctx, doc)
}

// ParseYAML parses a query document encoded as YAML.
func ParseYAML(ctx *sql.Context, data []byte) (*Query, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sql.ErrMalformedQuery.Wrap(err, err.Error())
	}
	return Parse(ctx, doc)
}

// Parse checks the structure of an untyped query document and decodes it.
// Whether keys exist in the queried dataset is not checked here.
func Parse(ctx *sql.Context, doc interface{}) (*Query, error) {
	span, ctx := ctx.Span("parse")
	defer span.Finish()

	doc = normalize(doc)
	if err := checkShape(doc); err != nil {
		span.SetTag("error", true)
		ctx.GetLogger().WithError(err).Debug("query rejected")
		return nil, err
	}

	root := doc.(map[string]interface{})
	where, err := Filter(cast.ToStringMap(root["WHERE"]))
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}

	options := cast.ToStringMap(root["OPTIONS"])
	q := &Query{
		Where:   where,
		Columns: cast.ToStringSlice(options["COLUMNS"]),
	}

	if order, ok := options["ORDER"]; ok {
		q.Order = decodeOrder(order)
	}

	if t, ok := root["TRANSFORMATIONS"]; ok {
		q.Transformations = decodeTransformations(cast.ToStringMap(t))
	}

	span.LogKV("filter", q.Where.String())
	return q, nil
}

func decodeOrder(v interface{}) *Order {
	if key, ok := v.(string); ok {
		return &Order{Direction: Up, Keys: []string{key}}
	}

	m := cast.ToStringMap(v)
	o := &Order{Direction: Up, Keys: cast.ToStringSlice(m["keys"])}
	if m["dir"] == "DOWN" {
		o.Direction = Down
	}
	return o
}

func decodeTransformations(m map[string]interface{}) *Transformations {
	t := &Transformations{Group: cast.ToStringSlice(m["GROUP"])}
	for _, item := range cast.ToSlice(m["APPLY"]) {
		for label, body := range cast.ToStringMap(item) {
			for op, key := range cast.ToStringMap(body) {
				o, _ := ParseApplyOp(op)
				t.Apply = append(t.Apply, ApplyRule{Label: label, Op: o, Key: cast.ToString(key)})
			}
		}
	}
	return t
}
