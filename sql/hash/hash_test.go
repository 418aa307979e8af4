package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashOf(t *testing.T) {
	require := require.New(t)

	a, err := HashOf("cpsc", 310.0)
	require.NoError(err)
	b, err := HashOf("cpsc", 310.0)
	require.NoError(err)
	c, err := HashOf("cpsc", 311.0)
	require.NoError(err)

	require.Equal(a, b)
	require.NotEqual(a, c)
}

func TestTupleMap(t *testing.T) {
	require := require.New(t)

	m := NewTupleMap()
	isNew, err := m.Put(1, "math", 100.0)
	require.NoError(err)
	require.True(isNew)

	isNew, err = m.Put(2, "cpsc", 310.0)
	require.NoError(err)
	require.True(isNew)

	isNew, err = m.Put(3, "math", 100.0)
	require.NoError(err)
	require.False(isNew)

	v, ok, err := m.Get("math", 100.0)
	require.NoError(err)
	require.True(ok)
	require.Equal(3, v)

	_, ok, err = m.Get("math", 101.0)
	require.NoError(err)
	require.False(ok)

	require.Equal(2, m.Len())
	require.Equal([]interface{}{3, 2}, m.Values())
}

func TestTupleMapCollision(t *testing.T) {
	require := require.New(t)

	m := NewTupleMap()
	_, err := m.Put(1, "a")
	require.NoError(err)

	// Make "b" land in a bucket holding "a".
	hb, err := HashOf("b")
	require.NoError(err)
	m.buckets[hb] = []int{0}

	_, ok, err := m.Get("b")
	require.NoError(err)
	require.False(ok)

	isNew, err := m.Put(2, "b")
	require.NoError(err)
	require.True(isNew)
	require.Equal(2, m.Len())

	v, ok, err := m.Get("a")
	require.NoError(err)
	require.True(ok)
	require.Equal(1, v)
}
