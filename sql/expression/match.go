package expression

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/campusdata/insight/sql"
)

// Wildcard can only appear at the start or the end of a pattern.
const Wildcard = "*"

// Match matches a string field against a pattern. A leading wildcard
// matches any prefix and a trailing wildcard any suffix.
type Match struct {
	UnaryExpression
	Pattern  string
	needle   string
	leading  bool
	trailing bool
}

// NewMatch creates a Match of the given field with the pattern. A
// wildcard anywhere but at the ends of the pattern is an error.
func NewMatch(left sql.Expression, pattern string) (*Match, error) {
	if len(pattern) > 2 && strings.Contains(pattern[1:len(pattern)-1], Wildcard) {
		return nil, sql.ErrMalformedQuery.New(
			fmt.Sprintf("invalid pattern %q: wildcards are only allowed at the start or end", pattern),
		)
	}

	m := &Match{UnaryExpression: UnaryExpression{left}, Pattern: pattern}
	needle := pattern
	if strings.HasPrefix(needle, Wildcard) {
		m.leading = true
		needle = needle[1:]
	}
	if strings.HasSuffix(needle, Wildcard) {
		m.trailing = true
		needle = needle[:len(needle)-1]
	}
	m.needle = needle
	return m, nil
}

// Type implements the Expression interface.
func (*Match) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (m *Match) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return m.matches(ctx, row)
}

func (m *Match) matches(ctx *sql.Context, row sql.Row) (bool, error) {
	v, err := m.Child.Eval(ctx, row)
	if err != nil {
		return false, err
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return false, sql.ErrInvalidType.Wrap(err, "TEXT")
	}

	switch {
	case m.leading && m.trailing:
		return strings.Contains(s, m.needle), nil
	case m.leading:
		return strings.HasSuffix(s, m.needle), nil
	case m.trailing:
		return strings.HasPrefix(s, m.needle), nil
	default:
		return s == m.needle, nil
	}
}

func (m *Match) String() string {
	return fmt.Sprintf("%s IS %q", m.Child, m.Pattern)
}
