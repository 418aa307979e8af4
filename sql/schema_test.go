package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldKind(t *testing.T) {
	require := require.New(t)

	require.Equal(Numeric, CoursesSchema.FieldKind("avg"))
	require.Equal(String, CoursesSchema.FieldKind("dept"))
	require.Equal(Unknown, CoursesSchema.FieldKind("seats"))

	require.Equal(Numeric, RoomsSchema.FieldKind("seats"))
	require.Equal(String, RoomsSchema.FieldKind("furniture"))
	require.Equal(Unknown, RoomsSchema.FieldKind("avg"))
}

func TestKindOfField(t *testing.T) {
	require := require.New(t)

	k, ok := KindOfField("instructor")
	require.True(ok)
	require.Equal(CoursesKind, k)

	k, ok = KindOfField("lat")
	require.True(ok)
	require.Equal(RoomsKind, k)

	_, ok = KindOfField("colour")
	require.False(ok)
}

func TestCatalogsAreDisjoint(t *testing.T) {
	require := require.New(t)
	for _, name := range CoursesSchema.Names() {
		require.False(RoomsSchema.Contains(name), name)
	}
}

func TestParseKind(t *testing.T) {
	require := require.New(t)

	k, err := ParseKind("Rooms")
	require.NoError(err)
	require.Equal(RoomsKind, k)

	k, err = ParseKind("courses")
	require.NoError(err)
	require.Equal(CoursesKind, k)

	_, err = ParseKind("buildings")
	require.True(ErrInvalidKind.Is(err))
}

func TestConvertRow(t *testing.T) {
	require := require.New(t)

	row, err := CoursesSchema.ConvertRow(NewRow("cpsc", 310, "smith", "sw eng", "1234", "85.5", 10, 1, 0, 2015))
	require.NoError(err)
	require.Equal(NewRow("cpsc", "310", "smith", "sw eng", "1234", 85.5, float64(10), float64(1), float64(0), float64(2015)), row)
	require.NoError(CoursesSchema.CheckRow(row))

	_, err = CoursesSchema.ConvertRow(NewRow("cpsc"))
	require.Error(err)

	_, err = CoursesSchema.ConvertRow(NewRow("cpsc", "310", "smith", "sw eng", "1234", "high", 10, 1, 0, 2015))
	require.True(ErrInvalidType.Is(err))
}
