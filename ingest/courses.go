package ingest

import (
	"encoding/json"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/cast"

	"github.com/campusdata/insight/sql"
)

const (
	coursesDir = "courses/"

	// overallSection marks the aggregate section of a course, which is
	// not tied to a year.
	overallSection = "overall"
	overallYear    = 1900
)

type courseFile struct {
	Result []map[string]interface{} `json:"result"`
}

func loadCourses(ctx *sql.Context, id string, archive *zip.Reader) ([]sql.Row, error) {
	var files int
	var rows []sql.Row
	for _, f := range archive.File {
		if !strings.HasPrefix(f.Name, coursesDir) || f.FileInfo().IsDir() {
			continue
		}
		files++

		data, err := readFile(f)
		if err != nil {
			return nil, sql.ErrInvalidDataset.Wrap(err, id, err.Error())
		}

		var cf courseFile
		if err := json.Unmarshal(data, &cf); err != nil {
			ctx.GetLogger().WithField("file", f.Name).WithError(err).Warn("skipping invalid course file")
			continue
		}

		for _, s := range cf.Result {
			rows = append(rows, sectionRow(s))
		}
	}

	if files == 0 {
		return nil, sql.ErrInvalidDataset.New(id, "no "+coursesDir+" folder")
	}

	return rows, nil
}

// sectionRow builds a row following sql.CoursesSchema.
func sectionRow(s map[string]interface{}) sql.Row {
	year := cast.ToFloat64(s["Year"])
	if cast.ToString(s["Section"]) == overallSection {
		year = overallYear
	}

	return sql.NewRow(
		cast.ToString(s["Subject"]),
		cast.ToString(s["Course"]),
		cast.ToString(s["Professor"]),
		cast.ToString(s["Title"]),
		cast.ToString(s["id"]),
		cast.ToFloat64(s["Avg"]),
		cast.ToFloat64(s["Pass"]),
		cast.ToFloat64(s["Fail"]),
		cast.ToFloat64(s["Audit"]),
		year,
	)
}
