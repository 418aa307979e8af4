package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
)

func TestStore(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	courses, err := sql.NewDataset("courses", sql.CoursesKind, []sql.Row{
		sql.NewRow("cpsc", "310", "smith", "sw eng", "1", 80.5, 100, 3, 0, 2015),
	})
	require.NoError(err)

	rooms, err := sql.NewDataset("rooms", sql.RoomsKind, []sql.Row{
		sql.NewRow("Pavilion", "DMP", "110", "DMP_110", "addr", "Tiered", "Fixed", "http://x", 49.26, -123.24, 120),
	})
	require.NoError(err)

	s, err := Open(dir)
	require.NoError(err)
	require.NoError(s.Save(rooms))
	require.NoError(s.Save(courses))
	require.NoError(s.Close())
	require.NoError(s.Close())

	s, err = Open(dir)
	require.NoError(err)
	defer s.Close()

	all, err := s.LoadAll()
	require.NoError(err)
	require.Equal([]*sql.Dataset{rooms, courses}, all)

	require.NoError(s.Delete("rooms"))
	require.NoError(s.Delete("missing"))

	all, err = s.LoadAll()
	require.NoError(err)
	require.Equal([]*sql.Dataset{courses}, all)
}

func TestStoreEmpty(t *testing.T) {
	require := require.New(t)

	s, err := Open(t.TempDir())
	require.NoError(err)
	defer s.Close()

	all, err := s.LoadAll()
	require.NoError(err)
	require.Empty(all)
}
