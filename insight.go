package insight

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/campusdata/insight/ingest"
	"github.com/campusdata/insight/internal/metrics"
	"github.com/campusdata/insight/mem"
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/analyzer"
	"github.com/campusdata/insight/store"
)

// Insight manages the lifecycle of datasets and performs queries over
// them. Added datasets are persisted and loaded again by the next
// instance using the same store.
type Insight struct {
	Engine *Engine

	// mu serializes changes to the set of datasets.
	mu     sync.Mutex
	db     *mem.Database
	store  *store.Store
	loader *ingest.Loader
}

// Open creates an Insight instance from the given configuration.
func Open(cfg *Config) (*Insight, error) {
	if err := SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	a := analyzer.NewDefault()
	a.MaxRows = cfg.MaxRows

	geocoder := ingest.NewHTTPGeocoder(
		cfg.Geocoder.URL,
		cfg.Geocoder.Retries,
		logrus.WithField("component", "geocoder"),
	)

	i, err := NewInsight(New(a), st, ingest.NewLoader(geocoder, cfg.Ingest.Workers))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return i, nil
}

// NewInsight creates an Insight instance and loads every dataset found in
// the store.
func NewInsight(e *Engine, st *store.Store, loader *ingest.Loader) (*Insight, error) {
	i := &Insight{
		Engine: e,
		db:     mem.NewDatabase(),
		store:  st,
		loader: loader,
	}

	datasets, err := st.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, d := range datasets {
		if err := i.db.AddDataset(d); err != nil {
			return nil, err
		}
		metrics.Datasets.WithLabelValues(d.Kind.String()).Inc()
		logrus.WithFields(logrus.Fields{
			DatasetLogField: d.ID,
			"rows":          len(d.Rows),
		}).Debug("dataset loaded from store")
	}

	return i, nil
}

// AddDataset loads the zip archive in content as a dataset of the given
// kind and persists it. It returns the ids of all the datasets, in the
// order they were added.
func (i *Insight) AddDataset(ctx *sql.Context, id string, content []byte, kind sql.Kind) ([]string, error) {
	if err := sql.ValidDatasetID(id); err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.db.Has(id) {
		return nil, sql.ErrDatasetAlreadyExists.New(id)
	}

	ctx = ctx.WithLogFields(logrus.Fields{DatasetLogField: id})
	d, err := i.loader.Load(ctx, id, kind, content)
	if err != nil {
		return nil, err
	}

	if err := i.store.Save(d); err != nil {
		return nil, err
	}

	if err := i.db.AddDataset(d); err != nil {
		return nil, err
	}

	metrics.Datasets.WithLabelValues(kind.String()).Inc()
	ctx.GetLogger().WithField("rows", len(d.Rows)).Infof("%s dataset added", kind)
	return i.db.IDs(), nil
}

// RemoveDataset removes the dataset with the given id from memory and from
// the store.
func (i *Insight) RemoveDataset(ctx *sql.Context, id string) (string, error) {
	if err := sql.ValidDatasetID(id); err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.db.Has(id) {
		return "", sql.ErrDatasetNotFound.New(id)
	}

	if err := i.store.Delete(id); err != nil {
		return "", err
	}

	d, err := i.db.RemoveDataset(id)
	if err != nil {
		return "", err
	}

	metrics.Datasets.WithLabelValues(d.Kind.String()).Dec()
	ctx.GetLogger().WithField(DatasetLogField, id).Info("dataset removed")
	return id, nil
}

// ListDatasets describes the loaded datasets, in the order they were added.
func (i *Insight) ListDatasets(ctx *sql.Context) []sql.DatasetInfo {
	datasets := i.db.Datasets()
	infos := make([]sql.DatasetInfo, len(datasets))
	for j, d := range datasets {
		infos[j] = d.Info()
	}
	return infos
}

// PerformQuery performs a query given as an untyped document.
func (i *Insight) PerformQuery(ctx *sql.Context, query interface{}) (*Result, error) {
	return i.Engine.Query(ctx, i.db, query)
}

// PerformQueryJSON performs a query encoded as JSON.
func (i *Insight) PerformQueryJSON(ctx *sql.Context, data []byte) (*Result, error) {
	return i.Engine.QueryJSON(ctx, i.db, data)
}

// PerformQueryYAML performs a query encoded as YAML.
func (i *Insight) PerformQueryYAML(ctx *sql.Context, data []byte) (*Result, error) {
	return i.Engine.QueryYAML(ctx, i.db, data)
}

// Close releases the store.
func (i *Insight) Close() error {
	return i.store.Close()
}
