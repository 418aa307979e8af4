package analyzer

import (
	"fmt"

	"github.com/campusdata/insight/internal/similartext"
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
	"github.com/campusdata/insight/sql/parse"
	"github.com/campusdata/insight/sql/plan"
)

// scope holds what the rules learn about a single query.
type scope struct {
	query   *parse.Query
	dataset *sql.Dataset
	// schema of the dataset rows, with columns named by key.
	schema sql.Schema
	// activeKey is the key the dataset id was taken from.
	activeKey string
	// labels of the apply rules, by name.
	labels map[string]parse.ApplyRule
	// filter with every key bound to its field.
	filter expression.Filter
}

func newScope(q *parse.Query, d *sql.Dataset, activeKey string) *scope {
	return &scope{
		query:     q,
		dataset:   d,
		schema:    plan.NewResolvedDataset(d).Schema(),
		activeKey: activeKey,
		labels:    make(map[string]parse.ApplyRule),
	}
}

// field binds a key to the field of the dataset it names.
func (s *scope) field(key string) (*expression.GetField, error) {
	k, err := sql.ParseKey(key)
	if err != nil {
		return nil, sql.ErrMalformedQuery.Wrap(err, err.Error())
	}

	if k.Dataset != s.dataset.ID {
		return nil, malformed("key %q does not refer to dataset %q", key, s.dataset.ID)
	}

	idx := s.schema.IndexOf(key)
	if idx < 0 {
		return nil, malformed("unknown key %q%s", key, similartext.Find(s.schema.Names(), key))
	}

	return expression.NewGetField(idx, s.schema[idx].Type, key), nil
}

// numericField binds a key that must name a numeric field.
func (s *scope) numericField(key string) (*expression.GetField, error) {
	f, err := s.field(key)
	if err != nil {
		return nil, err
	}

	if !sql.IsNumber(f.Type()) {
		return nil, malformed("key %q is not numeric", key)
	}
	return f, nil
}

// stringField binds a key that must name a string field.
func (s *scope) stringField(key string) (*expression.GetField, error) {
	f, err := s.field(key)
	if err != nil {
		return nil, err
	}

	if !sql.IsText(f.Type()) {
		return nil, malformed("key %q is not a string", key)
	}
	return f, nil
}

func (s *scope) transformations() *parse.Transformations {
	return s.query.Transformations
}

func malformed(format string, args ...interface{}) error {
	return sql.ErrMalformedQuery.New(fmt.Sprintf(format, args...))
}
