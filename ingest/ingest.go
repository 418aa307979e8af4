package ingest

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zip"
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/campusdata/insight/internal/metrics"
	"github.com/campusdata/insight/sql"
)

// DefaultWorkers is the default number of buildings processed at once
// when loading rooms.
const DefaultWorkers = 8

// Loader builds datasets out of zip archives.
type Loader struct {
	// Geocoder locates the buildings of rooms datasets.
	Geocoder Geocoder
	// Workers is the size of the pool processing buildings.
	Workers int
}

// NewLoader creates a Loader using the given geocoder.
func NewLoader(g Geocoder, workers int) *Loader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Loader{Geocoder: g, Workers: workers}
}

// Load reads the zip archive in content and returns a dataset of the given
// kind with the given id.
func (l *Loader) Load(ctx *sql.Context, id string, kind sql.Kind, content []byte) (*sql.Dataset, error) {
	span, ctx := ctx.Span("ingest.Load",
		opentracing.Tag{Key: "dataset", Value: id},
		opentracing.Tag{Key: "kind", Value: kind.String()},
	)
	defer span.Finish()

	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, sql.ErrInvalidDataset.Wrap(err, id, err.Error())
	}

	var rows []sql.Row
	switch kind {
	case sql.CoursesKind:
		rows, err = loadCourses(ctx, id, archive)
	case sql.RoomsKind:
		rows, err = l.loadRooms(ctx, id, archive)
	default:
		err = sql.ErrInvalidKind.New(kind.String())
	}
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}

	if len(rows) == 0 {
		return nil, sql.ErrInvalidDataset.New(id, "no valid "+kind.String()+" found")
	}

	d, err := sql.NewDataset(id, kind, rows)
	if err != nil {
		return nil, err
	}

	span.SetTag("rows", len(rows))
	metrics.IngestedRows.WithLabelValues(kind.String()).Add(float64(len(rows)))
	return d, nil
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func findFile(archive *zip.Reader, name string) *zip.File {
	for _, f := range archive.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
