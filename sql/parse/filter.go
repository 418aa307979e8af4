package parse

import (
	"fmt"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

// Filter builds the filter tree of a WHERE block. An empty block matches
// every row. Field operands are left unresolved.
func Filter(where map[string]interface{}) (expression.Filter, error) {
	if len(where) == 0 {
		return expression.NewEmpty(), nil
	}
	return filterNode(where)
}

// filterNode builds a non-empty filter node: an object with exactly one
// operator key.
func filterNode(v interface{}) (expression.Filter, error) {
	node, ok := v.(map[string]interface{})
	if !ok {
		return nil, malformed("filter must be an object, got %T", v)
	}

	op, body, err := single(node, "filter")
	if err != nil {
		return nil, err
	}

	switch op {
	case "AND", "OR":
		children, ok := body.([]interface{})
		if !ok || len(children) == 0 {
			return nil, malformed("%s must be a non-empty array", op)
		}

		filters := make([]expression.Filter, len(children))
		for i, c := range children {
			f, err := filterNode(c)
			if err != nil {
				return nil, err
			}
			filters[i] = f
		}

		if op == "AND" {
			return expression.NewAnd(filters...), nil
		}
		return expression.NewOr(filters...), nil

	case "NOT":
		child, err := filterNode(body)
		if err != nil {
			return nil, err
		}
		return expression.NewNot(child), nil

	case "LT", "GT", "EQ":
		key, value, err := operand(op, body)
		if err != nil {
			return nil, err
		}

		if !sql.IsNumeric(value) {
			return nil, malformed("%s of %s must be a number, got %v", op, key, value)
		}

		n, err := sql.Float64.Convert(value)
		if err != nil {
			return nil, sql.ErrMalformedQuery.Wrap(err, err.Error())
		}

		cmp, _ := expression.ParseComparisonOp(op)
		return expression.NewComparison(cmp, expression.NewUnresolvedColumn(key), n.(float64)), nil

	case "IS":
		key, value, err := operand(op, body)
		if err != nil {
			return nil, err
		}

		pattern, ok := value.(string)
		if !ok {
			return nil, malformed("IS of %s must be a string, got %v", key, value)
		}
		m, err := expression.NewMatch(expression.NewUnresolvedColumn(key), pattern)
		if err != nil {
			return nil, err
		}
		return m, nil

	default:
		return nil, malformed("invalid filter operator %q", op)
	}
}

// operand returns the single key and value of a comparator body.
func operand(op string, body interface{}) (string, interface{}, error) {
	m, ok := body.(map[string]interface{})
	if !ok {
		return "", nil, malformed("%s must be an object, got %T", op, body)
	}
	return single(m, op)
}

func single(m map[string]interface{}, what string) (string, interface{}, error) {
	if len(m) != 1 {
		return "", nil, malformed("%s must have exactly one key, got %d", what, len(m))
	}

	for k, v := range m {
		return k, v, nil
	}
	panic("unreachable")
}

func malformed(format string, args ...interface{}) error {
	return sql.ErrMalformedQuery.New(fmt.Sprintf(format, args...))
}
