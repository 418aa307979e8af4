package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/expression"
)

func coursesDataset(t *testing.T) *ResolvedDataset {
	d, err := sql.NewDataset("courses", sql.CoursesKind, []sql.Row{
		sql.NewRow("cpsc", "310", "smith", "sw eng", "1", 80, 100, 3, 0, 2015),
		sql.NewRow("cpsc", "121", "jones", "models", "2", 90, 200, 10, 1, 2016),
		sql.NewRow("math", "100", "lee", "calc", "3", 70, 300, 30, 2, 2015),
		sql.NewRow("cpsc", "310", "wong", "sw eng", "4", 85, 120, 4, 0, 2016),
	})
	require.NoError(t, err)
	return NewResolvedDataset(d)
}

// field returns a GetField bound to the named field of the courses
// dataset.
func field(name string) *expression.GetField {
	idx := sql.CoursesSchema.IndexOf(name)
	return expression.NewGetField(idx, sql.CoursesSchema[idx].Type, "courses_"+name)
}

func TestResolvedDataset(t *testing.T) {
	require := require.New(t)

	d := coursesDataset(t)
	require.True(d.Resolved())
	require.Nil(d.Children())
	require.Equal("courses_dept", d.Schema()[0].Name)
	require.Equal("courses", d.Schema()[0].Source)
	require.Equal(sql.Float64, d.Schema()[5].Type)

	rows, err := sql.NodeToRows(sql.NewEmptyContext(), d)
	require.NoError(err)
	require.Len(rows, 4)
	require.Equal(d.Rows[0], rows[0])
}
