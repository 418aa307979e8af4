package store

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/boltdb/bolt"

	"github.com/campusdata/insight/sql"
)

const (
	// FileName is the name of the database file inside the data directory.
	FileName = "insight.db"

	datasetsBucket = "datasets"
)

// Store persists datasets on disk so they survive restarts.
//
// buckets:
// - datasets: id []byte -> record (gob encoding)
type Store struct {
	mut sync.RWMutex
	db  *bolt.DB
}

// record is the persisted form of a dataset. Seq keeps the order in which
// datasets were saved.
type record struct {
	Seq  uint64
	ID   string
	Kind string
	Rows [][]interface{}
}

// Open opens, creating it if needed, the store in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	db, err := bolt.Open(filepath.Join(dir, FileName), 0640, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(datasetsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save persists the given dataset, replacing any dataset with the same id.
func (s *Store) Save(d *sql.Dataset) error {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(datasetsBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		r := record{Seq: seq, ID: d.ID, Kind: d.Kind.String()}
		r.Rows = make([][]interface{}, len(d.Rows))
		for i, row := range d.Rows {
			r.Rows[i] = []interface{}(row)
		}

		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(r); err != nil {
			return err
		}

		return b.Put([]byte(d.ID), buf.Bytes())
	})
}

// Delete removes the dataset with the given id. Deleting a dataset that
// is not stored does nothing.
func (s *Store) Delete(id string) error {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(datasetsBucket)).Delete([]byte(id))
	})
}

// LoadAll returns all the stored datasets in the order they were saved.
func (s *Store) LoadAll() ([]*sql.Dataset, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	var records []record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(datasetsBucket)).ForEach(func(k, v []byte) error {
			var r record
			if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&r); err != nil {
				return sql.ErrInvalidDataset.Wrap(err, string(k), err.Error())
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})

	result := make([]*sql.Dataset, len(records))
	for i, r := range records {
		kind, err := sql.ParseKind(r.Kind)
		if err != nil {
			return nil, err
		}

		rows := make([]sql.Row, len(r.Rows))
		for j, row := range r.Rows {
			rows[j] = sql.Row(row)
		}

		result[i], err = sql.NewDataset(r.ID, kind, rows)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}
