package sql

import (
	"fmt"
	"strings"
)

// Kind is the kind of a dataset. It selects the schema its rows follow.
type Kind byte

const (
	// UnknownKind is the zero Kind.
	UnknownKind Kind = iota
	// CoursesKind datasets hold course sections.
	CoursesKind
	// RoomsKind datasets hold campus rooms.
	RoomsKind
)

func (k Kind) String() string {
	switch k {
	case CoursesKind:
		return "courses"
	case RoomsKind:
		return "rooms"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind with the given name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "courses", "sections":
		return CoursesKind, nil
	case "rooms":
		return RoomsKind, nil
	default:
		return UnknownKind, ErrInvalidKind.New(s)
	}
}

// FieldKind classifies a field of a schema.
type FieldKind byte

const (
	// Unknown fields are not part of the schema.
	Unknown FieldKind = iota
	// Numeric fields hold numbers (MKey).
	Numeric
	// String fields hold strings (SKey).
	String
)

func (k FieldKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Column is the definition of a field of a dataset or of a result set.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the data type of the column.
	Type Type
	// Source is the name of the dataset this column came from, if any.
	Source string
}

// Check ensures the value is correct for this column.
func (c *Column) Check(v interface{}) bool {
	return c.Type.Check(v)
}

// Equals checks whether two columns are equal.
func (c *Column) Equals(c2 *Column) bool {
	return c.Name == c2.Name && c.Source == c2.Source && c.Type == c2.Type
}

// Schema is the definition of a row.
type Schema []*Column

// CoursesSchema is the field catalog of course section datasets.
var CoursesSchema = Schema{
	{Name: "dept", Type: Text},
	{Name: "id", Type: Text},
	{Name: "instructor", Type: Text},
	{Name: "title", Type: Text},
	{Name: "uuid", Type: Text},
	{Name: "avg", Type: Float64},
	{Name: "pass", Type: Float64},
	{Name: "fail", Type: Float64},
	{Name: "audit", Type: Float64},
	{Name: "year", Type: Float64},
}

// RoomsSchema is the field catalog of room datasets.
var RoomsSchema = Schema{
	{Name: "fullname", Type: Text},
	{Name: "shortname", Type: Text},
	{Name: "number", Type: Text},
	{Name: "name", Type: Text},
	{Name: "address", Type: Text},
	{Name: "type", Type: Text},
	{Name: "furniture", Type: Text},
	{Name: "href", Type: Text},
	{Name: "lat", Type: Float64},
	{Name: "lon", Type: Float64},
	{Name: "seats", Type: Float64},
}

// SchemaFor returns the field catalog of the given kind, or nil.
func SchemaFor(kind Kind) Schema {
	switch kind {
	case CoursesKind:
		return CoursesSchema
	case RoomsKind:
		return RoomsSchema
	default:
		return nil
	}
}

// KindOfField returns the kind whose catalog contains the given field.
func KindOfField(field string) (Kind, bool) {
	for _, k := range []Kind{CoursesKind, RoomsKind} {
		if SchemaFor(k).Contains(field) {
			return k, true
		}
	}
	return UnknownKind, false
}

// IndexOf returns the index of the given column in the schema or -1 if it's
// not present.
func (s Schema) IndexOf(column string) int {
	for i, col := range s {
		if col.Name == column {
			return i
		}
	}
	return -1
}

// Contains returns whether the schema contains a column with the given name.
func (s Schema) Contains(column string) bool {
	return s.IndexOf(column) >= 0
}

// FieldKind classifies the named field.
func (s Schema) FieldKind(name string) FieldKind {
	i := s.IndexOf(name)
	if i < 0 {
		return Unknown
	}

	if IsNumber(s[i].Type) {
		return Numeric
	}
	return String
}

// Names returns the names of all the columns.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// CheckRow checks the row conforms to the schema.
func (s Schema) CheckRow(row Row) error {
	expected := len(s)
	got := len(row)
	if expected != got {
		return ErrInvalidType.New(fmt.Sprintf("expected %d values, got %d", expected, got))
	}

	for i, col := range s {
		if !col.Check(row[i]) {
			return ErrInvalidType.New(fmt.Sprintf("%s %s", col.Name, col.Type.Name()))
		}
	}

	return nil
}

// ConvertRow converts every value of the row to the type of its column.
func (s Schema) ConvertRow(row Row) (Row, error) {
	if len(row) != len(s) {
		return nil, ErrInvalidType.New(fmt.Sprintf("expected %d values, got %d", len(s), len(row)))
	}

	out := make(Row, len(row))
	for i, col := range s {
		v, err := col.Type.Convert(row[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Equals checks whether the given schema is equal to this one.
func (s Schema) Equals(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}

	for i := range s {
		if !s[i].Equals(s2[i]) {
			return false
		}
	}

	return true
}
