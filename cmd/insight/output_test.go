package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight"
	"github.com/campusdata/insight/sql"
)

func testResult() *insight.Result {
	return &insight.Result{
		Schema: sql.Schema{
			{Name: "courses_dept", Type: sql.Text},
			{Name: "maxAvg", Type: sql.Float64},
		},
		Rows: []sql.Row{
			{"cpsc", 90.5},
			{"math", 70.0},
		},
	}
}

func TestWriteResultJSON(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeResult(&buf, formatJSON, testResult()))
	require.JSONEq(`[{"courses_dept":"cpsc","maxAvg":90.5},{"courses_dept":"math","maxAvg":70}]`, buf.String())
}

func TestWriteResultTable(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeResult(&buf, formatTable, testResult()))

	out := buf.String()
	require.Contains(out, "courses_dept")
	require.Contains(out, "maxAvg")
	require.Contains(out, "90.5")
	require.Contains(out, "math")
}

func TestWriteDatasets(t *testing.T) {
	require := require.New(t)

	infos := []sql.DatasetInfo{{ID: "courses", Kind: sql.CoursesKind, NumRows: 3}}

	var buf bytes.Buffer
	require.NoError(writeDatasets(&buf, formatJSON, infos))
	require.JSONEq(`[{"id":"courses","kind":"courses","numRows":3}]`, buf.String())

	buf.Reset()
	require.NoError(writeDatasets(&buf, formatTable, infos))
	require.Contains(buf.String(), "courses")
	require.Contains(buf.String(), "3")
}

func TestWriteUnknownFormat(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.Error(writeIDs(&buf, "xml", []string{"a"}))
	require.Error(writeDatasets(&buf, "xml", nil))
	require.Error(writeResult(&buf, "xml", testResult()))
	require.Empty(buf.String())
}
