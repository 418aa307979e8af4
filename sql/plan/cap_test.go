package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdata/insight/sql"
)

func bigDataset(t *testing.T, n int) *ResolvedDataset {
	rows := make([]sql.Row, n)
	for i := range rows {
		rows[i] = sql.NewRow("cpsc", fmt.Sprint(i), "x", "y", fmt.Sprint(i), 50, 1, 1, 1, 2000)
	}
	d, err := sql.NewDataset("big", sql.CoursesKind, rows)
	require.NoError(t, err)
	return NewResolvedDataset(d)
}

func TestCap(t *testing.T) {
	require := require.New(t)

	rows, err := sql.NodeToRows(sql.NewEmptyContext(), NewCap(5000, bigDataset(t, 5000)))
	require.NoError(err)
	require.Len(rows, 5000)

	rows, err = sql.NodeToRows(sql.NewEmptyContext(), NewCap(5000, bigDataset(t, 5001)))
	require.Error(err)
	require.True(sql.ErrResultTooLarge.Is(err))
	require.Nil(rows)
}

func TestCapEmpty(t *testing.T) {
	require := require.New(t)

	rows, err := sql.NodeToRows(sql.NewEmptyContext(), NewCap(0, bigDataset(t, 0)))
	require.NoError(err)
	require.Empty(rows)

	_, err = sql.NodeToRows(sql.NewEmptyContext(), NewCap(0, bigDataset(t, 1)))
	require.True(sql.ErrResultTooLarge.Is(err))
}
