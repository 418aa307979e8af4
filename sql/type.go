package sql

import (
	"strings"

	"github.com/spf13/cast"
)

// Type represents the type of a column or an expression.
type Type interface {
	// Name of the type.
	Name() string
	// Check whether the given value is of this type without conversion.
	Check(interface{}) bool
	// Convert a value of a compatible type to the internal representation.
	Convert(interface{}) (interface{}, error)
	// Compare returns an integer comparing two values. The result will be
	// 0 if a==b, -1 if a < b, and +1 if a > b.
	Compare(interface{}, interface{}) (int, error)
}

var (
	// Float64 is the type of every numeric field. Numeric values are always
	// stored as float64 once converted.
	Float64 Type = numberT{}
	// Text is the type of every string field.
	Text Type = textT{}
	// Boolean is the type of filter expressions.
	Boolean Type = booleanT{}
)

// IsNumber checks whether the given type is numeric.
func IsNumber(t Type) bool {
	_, ok := t.(numberT)
	return ok
}

// IsText checks whether the given type is a string type.
func IsText(t Type) bool {
	_, ok := t.(textT)
	return ok
}

// IsNumeric reports whether v holds a Go numeric value. Strings that look
// like numbers are not numeric.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

type numberT struct{}

func (numberT) Name() string { return "NUMBER" }

func (numberT) Check(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}

func (numberT) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return float64(0), nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, ErrInvalidType.Wrap(err, "NUMBER")
	}
	return f, nil
}

func (t numberT) Compare(a interface{}, b interface{}) (int, error) {
	fa, err := cast.ToFloat64E(a)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	fb, err := cast.ToFloat64E(b)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	switch {
	case fa < fb:
		return -1, nil
	case fa > fb:
		return 1, nil
	default:
		return 0, nil
	}
}

type textT struct{}

func (textT) Name() string { return "TEXT" }

func (textT) Check(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func (textT) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return "", nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrInvalidType.Wrap(err, "TEXT")
	}
	return s, nil
}

func (t textT) Compare(a interface{}, b interface{}) (int, error) {
	sa, err := cast.ToStringE(a)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	sb, err := cast.ToStringE(b)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	return strings.Compare(sa, sb), nil
}

type booleanT struct{}

func (booleanT) Name() string { return "BOOLEAN" }

func (booleanT) Check(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

func (booleanT) Convert(v interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrInvalidType.Wrap(err, "BOOLEAN")
	}
	return b, nil
}

func (t booleanT) Compare(a interface{}, b interface{}) (int, error) {
	ba, err := cast.ToBoolE(a)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	bb, err := cast.ToBoolE(b)
	if err != nil {
		return 0, ErrInvalidType.Wrap(err, t.Name())
	}

	switch {
	case ba == bb:
		return 0, nil
	case !ba:
		return -1, nil
	default:
		return 1, nil
	}
}
