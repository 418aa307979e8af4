package analyzer

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/parse"
	"github.com/campusdata/insight/test"
)

func TestAnalyzePlain(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{
		"WHERE": {"GT": {"courses_avg": 75}},
		"OPTIONS": {
			"COLUMNS": ["courses_dept", "courses_id", "courses_avg"],
			"ORDER": {"dir": "DOWN", "keys": ["courses_avg"]}
		}
	}`)
	require.Equal([]sql.Row{
		sql.NewRow("cpsc", "121", 90.0),
		sql.NewRow("cpsc", "310", 80.0),
	}, rows)
}

func TestAnalyzeGrouped(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{
		"WHERE": {},
		"OPTIONS": {"COLUMNS": ["courses_dept", "maxAvg"], "ORDER": "courses_dept"},
		"TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"maxAvg": {"MAX": "courses_avg"}}]}
	}`)
	require.Equal([]sql.Row{
		sql.NewRow("cpsc", 90.0),
		sql.NewRow("math", 70.0),
	}, rows)
}

func TestAnalyzeGroupedByLabelOrder(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{
		"WHERE": {"IS": {"rooms_furniture": "*Tables*"}},
		"OPTIONS": {"COLUMNS": ["rooms_shortname", "seats", "n"], "ORDER": {"dir": "UP", "keys": ["seats"]}},
		"TRANSFORMATIONS": {
			"GROUP": ["rooms_shortname"],
			"APPLY": [{"seats": {"SUM": "rooms_seats"}}, {"n": {"COUNT": "rooms_type"}}]
		}
	}`)
	require.Equal([]sql.Row{sql.NewRow("DMP", 160.0, 2.0)}, rows)
}

func TestAnalyzeActiveDatasetFromGroup(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{
		"WHERE": {},
		"OPTIONS": {"COLUMNS": ["total"]},
		"TRANSFORMATIONS": {"GROUP": ["rooms_shortname"], "APPLY": [{"total": {"SUM": "rooms_seats"}}]}
	}`)
	require.Equal([]sql.Row{sql.NewRow(160.0)}, rows)
}

func TestAnalyzeEmptyFilter(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_uuid"]}}`)
	require.Equal([]sql.Row{sql.NewRow("1"), sql.NewRow("2"), sql.NewRow("3")}, rows)
}

func TestAnalyzeDatasetNotFound(t *testing.T) {
	require := require.New(t)

	_, err := analyze(t, `{"WHERE": {"GT": {"nope_avg": 1}}, "OPTIONS": {"COLUMNS": ["nope_avg", "courses_dept"]}}`)
	require.True(sql.ErrDatasetNotFound.Is(err))
}

func TestAnalyzeMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{"first column not a key", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["avg"]}}`},
		{"empty dataset id", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["_avg"]}}`},
		{"empty field", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_"]}}`},
		{"unknown field", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avgg"]}}`},
		{"wrong catalog", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["rooms_avg"]}}`},
		{"rooms field on courses", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["mixed_seats"]}}`},
		{"unknown catalog field", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_colour"]}}`},
		{"second dataset", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg", "rooms_seats"]}}`},
		{"filter other dataset", `{"WHERE": {"GT": {"rooms_seats": 1}}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`},
		{"GT on string field", `{"WHERE": {"GT": {"courses_dept": 1}}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`},
		{"IS on numeric field", `{"WHERE": {"IS": {"courses_avg": "9*"}}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`},
		{"unknown filter key", `{"WHERE": {"NOT": {"EQ": {"courses_grade": 1}}}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`},
		{"order not in columns", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg"], "ORDER": "courses_dept"}}`},
		{"order keys not in columns", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg"], "ORDER": {"dir": "UP", "keys": ["courses_avg", "courses_id"]}}}`},
		{"label without transformations", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg", "maxAvg"]}}`},
		{"column not grouped", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept", "courses_avg"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"m": {"MAX": "courses_avg"}}]}}`},
		{"unknown label", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept", "maxavg"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"maxAvg": {"MAX": "courses_avg"}}]}}`},
		{"duplicate label", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"m": {"MAX": "courses_avg"}}, {"m": {"MIN": "courses_avg"}}]}}`},
		{"MAX of string", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"m": {"MAX": "courses_title"}}]}}`},
		{"apply key other dataset", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept"], "APPLY": [{"m": {"COUNT": "rooms_seats"}}]}}`},
		{"group key unknown", `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_dept"]}, "TRANSFORMATIONS": {"GROUP": ["courses_dept", "courses_term"], "APPLY": [{"m": {"COUNT": "courses_uuid"}}]}}`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := analyze(t, tt.query)
			require.Error(err)
			require.True(sql.ErrMalformedQuery.Is(err), err.Error())
		})
	}
}

func TestAnalyzeSuggestion(t *testing.T) {
	require := require.New(t)

	_, err := analyze(t, `{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avgg"]}}`)
	require.Error(err)
	require.True(sql.ErrMalformedQuery.Is(err))
	require.Contains(err.Error(), "matches no field catalog")
	require.Contains(err.Error(), "maybe you mean courses_avg?")
}

func TestAnalyzeDebugLogsRule(t *testing.T) {
	require := require.New(t)

	logger, hook := logtest.NewNullLogger()
	ctx := sql.NewContext(context.Background(), sql.WithLogger(logrus.NewEntry(logger)))
	q, err := parse.ParseJSON(ctx, []byte(`{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_id"]}}`))
	require.NoError(err)

	a := NewDefault()
	a.Debug = true
	_, err = a.Analyze(ctx, q, testDatasets(t))
	require.NoError(err)

	var rules []string
	for _, e := range hook.AllEntries() {
		if rule, ok := e.Data["rule"]; ok {
			require.Equal("applying rule", e.Message)
			rules = append(rules, rule.(string))
		}
	}

	var expected []string
	for _, r := range DefaultRules {
		expected = append(expected, r.Name)
	}
	require.Equal(expected, rules)
	require.NotContains(hook.LastEntry().Data, "rule")
}

func TestAnalyzeCountAnyField(t *testing.T) {
	require := require.New(t)

	rows := run(t, `{
		"WHERE": {},
		"OPTIONS": {"COLUMNS": ["courses_year", "depts"], "ORDER": {"dir": "DOWN", "keys": ["courses_year"]}},
		"TRANSFORMATIONS": {"GROUP": ["courses_year"], "APPLY": [{"depts": {"COUNT": "courses_dept"}}]}
	}`)
	require.Equal([]sql.Row{sql.NewRow(2016.0, 1.0), sql.NewRow(2015.0, 2.0)}, rows)
}

func TestAnalyzeCap(t *testing.T) {
	require := require.New(t)

	ctx := sql.NewEmptyContext()
	q, err := parse.ParseJSON(ctx, []byte(`{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`))
	require.NoError(err)

	a := NewDefault()
	a.MaxRows = 2
	n, err := a.Analyze(ctx, q, testDatasets(t))
	require.NoError(err)

	_, err = sql.NodeToRows(ctx, n)
	require.True(sql.ErrResultTooLarge.Is(err))
}

func TestAnalyzeSpans(t *testing.T) {
	require := require.New(t)

	tracer := new(test.MemTracer)
	ctx := sql.NewContext(context.Background(), sql.WithTracer(tracer))
	q, err := parse.ParseJSON(ctx, []byte(`{"WHERE": {}, "OPTIONS": {"COLUMNS": ["courses_avg"]}}`))
	require.NoError(err)

	_, err = NewDefault().Analyze(ctx, q, testDatasets(t))
	require.NoError(err)

	for _, name := range []string{"parse", "analyze", "resolve_dataset", "validate_catalog", "resolve_filter", "build_plan"} {
		require.True(tracer.Has(name), name)
	}
}

func TestAnalyzePlanShape(t *testing.T) {
	require := require.New(t)

	n, err := analyze(t, `{
		"WHERE": {"LT": {"courses_avg": 90}},
		"OPTIONS": {"COLUMNS": ["courses_dept", "courses_avg"], "ORDER": "courses_avg"}
	}`)
	require.NoError(err)
	require.Equal(`Sort(courses_avg ASC)
 └─ Project(courses_dept, courses_avg)
     └─ Cap(5000)
         └─ Filter(courses_avg < 90)
             └─ ResolvedDataset(courses)
`, n.String())
}
