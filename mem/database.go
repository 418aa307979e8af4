package mem

import (
	"sync"

	"github.com/campusdata/insight/sql"
)

// Database is an in-memory set of datasets, kept in the order they were
// added. It is safe for concurrent use.
type Database struct {
	mu       sync.RWMutex
	datasets map[string]*sql.Dataset
	order    []string
}

var _ sql.DatasetProvider = (*Database)(nil)

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{datasets: make(map[string]*sql.Dataset)}
}

// AddDataset adds the given dataset. Its id must not be in use.
func (d *Database) AddDataset(ds *sql.Dataset) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.datasets[ds.ID]; ok {
		return sql.ErrDatasetAlreadyExists.New(ds.ID)
	}

	d.datasets[ds.ID] = ds
	d.order = append(d.order, ds.ID)
	return nil
}

// RemoveDataset removes the dataset with the given id.
func (d *Database) RemoveDataset(id string) (*sql.Dataset, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ds, ok := d.datasets[id]
	if !ok {
		return nil, sql.ErrDatasetNotFound.New(id)
	}

	delete(d.datasets, id)
	for i, o := range d.order {
		if o == id {
			d.order = append(d.order[:i:i], d.order[i+1:]...)
			break
		}
	}
	return ds, nil
}

// Dataset implements the sql.DatasetProvider interface.
func (d *Database) Dataset(id string) (*sql.Dataset, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ds, ok := d.datasets[id]
	if !ok {
		return nil, sql.ErrDatasetNotFound.New(id)
	}
	return ds, nil
}

// Has reports whether a dataset with the given id exists.
func (d *Database) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.datasets[id]
	return ok
}

// IDs returns the ids of all datasets, in the order they were added.
func (d *Database) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.order...)
}

// Datasets returns all the datasets, in the order they were added.
func (d *Database) Datasets() sql.Datasets {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ds := make(sql.Datasets, len(d.order))
	for i, id := range d.order {
		ds[i] = d.datasets[id]
	}
	return ds
}
