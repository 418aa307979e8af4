package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
)

var logicRows = []sql.Row{
	sql.NewRow("cpsc", 80.0),
	sql.NewRow("cpsc", 90.0),
	sql.NewRow("math", 70.0),
	sql.NewRow("math", 95.0),
}

func logicFilters(t *testing.T) []Filter {
	dept := NewGetField(0, sql.Text, "courses_dept")
	avg := NewGetField(1, sql.Float64, "courses_avg")

	isCpsc, err := NewMatch(dept, "cpsc")
	require.NoError(t, err)

	return []Filter{
		NewEmpty(),
		isCpsc,
		NewComparison(GreaterThan, avg, 85),
		NewComparison(LessThan, avg, 75),
		NewNot(NewComparison(Equals, avg, 80)),
	}
}

func TestNegationLaw(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	for _, f := range logicFilters(t) {
		for _, r := range logicRows {
			a, err := Matches(ctx, f, r)
			require.NoError(err)
			b, err := Matches(ctx, NewNot(f), r)
			require.NoError(err)
			require.Equal(!a, b, "%s %v", f, r)
		}
	}
}

func TestConjunctionDisjunctionLaws(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	fs := logicFilters(t)

	for _, a := range fs {
		for _, b := range fs {
			for _, r := range logicRows {
				ma, err := Matches(ctx, a, r)
				require.NoError(err)
				mb, err := Matches(ctx, b, r)
				require.NoError(err)

				and, err := Matches(ctx, NewAnd(a, b), r)
				require.NoError(err)
				require.Equal(ma && mb, and)

				or, err := Matches(ctx, NewOr(a, b), r)
				require.NoError(err)
				require.Equal(ma || mb, or)
			}
		}
	}
}

func TestShortCircuit(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	// Evaluating the unresolved column fails, so it must never be reached.
	failing := NewComparison(Equals, NewUnresolvedColumn("courses_avg"), 1)
	avg := NewGetField(1, sql.Float64, "courses_avg")

	ok, err := Matches(ctx, NewAnd(NewComparison(LessThan, avg, 0), failing), logicRows[0])
	require.NoError(err)
	require.False(ok)

	ok, err = Matches(ctx, NewOr(NewEmpty(), failing), logicRows[0])
	require.NoError(err)
	require.True(ok)

	_, err = Matches(ctx, NewAnd(NewEmpty(), failing), logicRows[0])
	require.True(sql.ErrUnresolvedExpression.Is(err))
}

func TestFilterString(t *testing.T) {
	require := require.New(t)

	avg := NewGetField(1, sql.Float64, "courses_avg")
	f := NewOr(NewNot(NewComparison(GreaterThan, avg, 90)), NewAnd(NewEmpty(), NewComparison(Equals, avg, 1)))
	require.Equal("(NOT(courses_avg > 90) OR (TRUE AND courses_avg = 1))", f.String())
}
