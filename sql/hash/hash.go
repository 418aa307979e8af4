package hash

import (
	"reflect"

	"github.com/mitchellh/hashstructure"
)

// HashOf returns a hash of the given values, to be used as a bucket key.
// Two tuples with equal values always get the same hash, but different
// tuples may collide.
func HashOf(values ...interface{}) (uint64, error) {
	return hashstructure.Hash(values, nil)
}

// TupleMap maps tuples of values to a value, keeping the order in which
// tuples were first inserted.
type TupleMap struct {
	buckets map[uint64][]int
	keys    [][]interface{}
	values  []interface{}
}

// NewTupleMap creates an empty TupleMap.
func NewTupleMap() *TupleMap {
	return &TupleMap{buckets: make(map[uint64][]int)}
}

// Get returns the value stored for the tuple, if any.
func (m *TupleMap) Get(key ...interface{}) (interface{}, bool, error) {
	idx, err := m.find(key)
	if err != nil {
		return nil, false, err
	}

	if idx < 0 {
		return nil, false, nil
	}
	return m.values[idx], true, nil
}

// Put stores the value for the tuple. It reports whether the tuple was
// new to the map.
func (m *TupleMap) Put(value interface{}, key ...interface{}) (bool, error) {
	h, err := HashOf(key...)
	if err != nil {
		return false, err
	}

	for _, idx := range m.buckets[h] {
		if reflect.DeepEqual(m.keys[idx], key) {
			m.values[idx] = value
			return false, nil
		}
	}

	m.buckets[h] = append(m.buckets[h], len(m.keys))
	m.keys = append(m.keys, append([]interface{}(nil), key...))
	m.values = append(m.values, value)
	return true, nil
}

// Len returns the number of distinct tuples.
func (m *TupleMap) Len() int {
	return len(m.keys)
}

// Values returns the stored values in insertion order.
func (m *TupleMap) Values() []interface{} {
	return m.values
}

func (m *TupleMap) find(key []interface{}) (int, error) {
	h, err := HashOf(key...)
	if err != nil {
		return -1, err
	}

	for _, idx := range m.buckets[h] {
		if reflect.DeepEqual(m.keys[idx], key) {
			return idx, nil
		}
	}
	return -1, nil
}
