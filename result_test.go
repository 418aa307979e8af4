package insight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
)

func TestResult(t *testing.T) {
	require := require.New(t)

	r := &Result{
		Schema: sql.Schema{
			{Name: "courses_title", Type: sql.Text},
			{Name: "courses_avg", Type: sql.Float64},
			{Name: "maxAvg", Type: sql.Float64},
		},
		Rows: []sql.Row{
			sql.NewRow("sw eng", 80.5, 90.0),
			sql.NewRow("algos", 70.0, 75.25),
		},
	}

	require.Equal([]string{"courses_title", "courses_avg", "maxAvg"}, r.Columns())
	require.Equal([]map[string]interface{}{
		{"courses_title": "sw eng", "courses_avg": 80.5, "maxAvg": 90.0},
		{"courses_title": "algos", "courses_avg": 70.0, "maxAvg": 75.25},
	}, r.Maps())

	data, err := json.Marshal(r)
	require.NoError(err)
	require.Equal(
		`[{"courses_title":"sw eng","courses_avg":80.5,"maxAvg":90},`+
			`{"courses_title":"algos","courses_avg":70,"maxAvg":75.25}]`,
		string(data),
	)
}

func TestResultEmpty(t *testing.T) {
	require := require.New(t)

	data, err := json.Marshal(&Result{Schema: sql.Schema{{Name: "a", Type: sql.Text}}})
	require.NoError(err)
	require.Equal("[]", string(data))
}
