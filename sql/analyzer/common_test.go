package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/parse"
)

func testDatasets(t *testing.T) sql.Datasets {
	courses, err := sql.NewDataset("courses", sql.CoursesKind, []sql.Row{
		sql.NewRow("cpsc", "310", "smith", "sw eng", "1", 80, 100, 3, 0, 2015),
		sql.NewRow("cpsc", "121", "jones", "models", "2", 90, 200, 10, 1, 2016),
		sql.NewRow("math", "100", "lee", "calc", "3", 70, 300, 30, 2, 2015),
	})
	require.NoError(t, err)

	rooms, err := sql.NewDataset("rooms", sql.RoomsKind, []sql.Row{
		sql.NewRow("Hugh Dempster Pavilion", "DMP", "110", "DMP_110", "6245 Agronomy Road V6T 1Z4", "Tiered Large Group", "Classroom-Fixed Tables/Movable Chairs", "http://x/DMP-110", 49.26125, -123.24807, 120),
		sql.NewRow("Hugh Dempster Pavilion", "DMP", "201", "DMP_201", "6245 Agronomy Road V6T 1Z4", "Small Group", "Classroom-Movable Tables & Chairs", "http://x/DMP-201", 49.26125, -123.24807, 40),
	})
	require.NoError(t, err)

	// A courses dataset whose id could be mistaken for a rooms one.
	wrong, err := sql.NewDataset("mixed", sql.CoursesKind, nil)
	require.NoError(t, err)

	return sql.Datasets{courses, rooms, wrong}
}

func analyze(t *testing.T, query string) (sql.Node, error) {
	ctx := sql.NewEmptyContext()
	q, err := parse.ParseJSON(ctx, []byte(query))
	require.NoError(t, err)
	return NewDefault().Analyze(ctx, q, testDatasets(t))
}

func run(t *testing.T, query string) []sql.Row {
	n, err := analyze(t, query)
	require.NoError(t, err)
	require.True(t, n.Resolved())

	rows, err := sql.NodeToRows(sql.NewEmptyContext(), n)
	require.NoError(t, err)
	return rows
}
