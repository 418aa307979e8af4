package insight_test

import (
	"fmt"

	"github.com/campusdata/insight"
	"github.com/campusdata/insight/mem"
	"github.com/campusdata/insight/sql"
)

func Example() {
	e := insight.NewDefault()
	ctx := sql.NewEmptyContext()

	// Create a test memory database holding one courses dataset.
	db := createTestDatabase()

	r, err := e.QueryJSON(ctx, db, []byte(`{
		"WHERE": {"IS": {"courses_instructor": "*Doe"}},
		"OPTIONS": {"COLUMNS": ["courses_instructor", "sections"]},
		"TRANSFORMATIONS": {
			"GROUP": ["courses_instructor"],
			"APPLY": [{"sections": {"COUNT": "courses_uuid"}}]
		}
	}`))
	checkIfError(err)

	// Print the results.
	for _, row := range r.Rows {
		fmt.Println(row)
	}

	// Output: [John Doe 2]
}

func checkIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func createTestDatabase() *mem.Database {
	d, err := sql.NewDataset("courses", sql.CoursesKind, []sql.Row{
		sql.NewRow("cpsc", "310", "John Doe", "sw eng", "1", 80, 100, 3, 0, 2015),
		sql.NewRow("cpsc", "310", "John Doe", "sw eng", "2", 82, 90, 1, 0, 2016),
		sql.NewRow("cpsc", "121", "Jane Roe", "models", "3", 90, 200, 10, 1, 2016),
	})
	checkIfError(err)

	db := mem.NewDatabase()
	checkIfError(db.AddDataset(d))
	return db
}
