package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
)

func TestComparison(t *testing.T) {
	avg := NewGetField(0, sql.Float64, "courses_avg")

	testCases := []struct {
		name     string
		op       ComparisonOp
		value    float64
		row      sql.Row
		expected bool
	}{
		{"lt true", LessThan, 80, sql.NewRow(79.99), true},
		{"lt equal", LessThan, 80, sql.NewRow(80.0), false},
		{"gt true", GreaterThan, 75, sql.NewRow(90.0), true},
		{"gt false", GreaterThan, 75, sql.NewRow(70.0), false},
		{"eq true", Equals, 97, sql.NewRow(97.0), true},
		{"eq false", Equals, 97, sql.NewRow(97.01), false},
		{"negative", LessThan, 0, sql.NewRow(-1.5), true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			c := NewComparison(tt.op, avg, tt.value)
			ok, err := Matches(sql.NewEmptyContext(), c, tt.row)
			require.NoError(err)
			require.Equal(tt.expected, ok)

			v, err := c.Eval(sql.NewEmptyContext(), tt.row)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}
}

func TestComparisonNotNumeric(t *testing.T) {
	require := require.New(t)

	c := NewComparison(Equals, NewGetField(0, sql.Text, "courses_dept"), 1)
	_, err := Matches(sql.NewEmptyContext(), c, sql.NewRow("1"))
	require.True(sql.ErrInvalidType.Is(err))
}

func TestParseComparisonOp(t *testing.T) {
	require := require.New(t)

	op, ok := ParseComparisonOp("GT")
	require.True(ok)
	require.Equal(GreaterThan, op)

	_, ok = ParseComparisonOp("GE")
	require.False(ok)
}
