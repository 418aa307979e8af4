package sql

import (
	"strings"
)

// Dataset is a set of flat records of a single kind, loaded under an id.
// Datasets are immutable once loaded.
type Dataset struct {
	ID   string
	Kind Kind
	Rows []Row
}

// NewDataset creates a dataset, converting every row to the schema of the
// given kind.
func NewDataset(id string, kind Kind, rows []Row) (*Dataset, error) {
	schema := SchemaFor(kind)
	if schema == nil {
		return nil, ErrInvalidKind.New(kind.String())
	}

	converted := make([]Row, len(rows))
	for i, r := range rows {
		cr, err := schema.ConvertRow(r)
		if err != nil {
			return nil, ErrInvalidDataset.Wrap(err, id, err.Error())
		}
		converted[i] = cr
	}

	return &Dataset{ID: id, Kind: kind, Rows: converted}, nil
}

// Schema returns the field catalog of the dataset.
func (d *Dataset) Schema() Schema {
	return SchemaFor(d.Kind)
}

// Info returns the listing information of the dataset.
func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{ID: d.ID, Kind: d.Kind, NumRows: len(d.Rows)}
}

// DatasetInfo describes a loaded dataset.
type DatasetInfo struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"-"`
	NumRows int    `json:"numRows"`
}

// DatasetProvider gives access to the loaded datasets by id.
type DatasetProvider interface {
	// Dataset returns the dataset with the given id, or ErrDatasetNotFound.
	Dataset(id string) (*Dataset, error)
}

// Datasets is a list of datasets that can be used as a DatasetProvider.
type Datasets []*Dataset

// Dataset returns the Dataset with the given id if it exists.
func (ds Datasets) Dataset(id string) (*Dataset, error) {
	for _, d := range ds {
		if d.ID == id {
			return d, nil
		}
	}

	return nil, ErrDatasetNotFound.New(id)
}

// ValidDatasetID checks an id can be used to load a dataset.
func ValidDatasetID(id string) error {
	if strings.TrimSpace(id) == "" || strings.Contains(id, KeySeparator) {
		return ErrInvalidDatasetID.New(id)
	}
	return nil
}
