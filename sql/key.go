package sql

import "strings"

// KeySeparator separates the dataset id from the field in a key.
const KeySeparator = "_"

// Key is a reference to a field of a dataset, written "<dataset>_<field>".
type Key struct {
	Dataset string
	Field   string
}

// ParseKey splits a key token in its dataset id and field. The dataset id
// is everything before the first separator.
func ParseKey(token string) (Key, error) {
	idx := strings.Index(token, KeySeparator)
	if idx < 0 {
		return Key{}, ErrMalformedKey.New(token)
	}

	field := token[idx+len(KeySeparator):]
	if field == "" {
		return Key{}, ErrMalformedKey.New(token)
	}

	return Key{Dataset: token[:idx], Field: field}, nil
}

// IsKey reports whether the token has the shape of a dataset key. Apply
// labels never do.
func IsKey(token string) bool {
	return strings.Contains(token, KeySeparator)
}

func (k Key) String() string {
	return k.Dataset + KeySeparator + k.Field
}

// ActiveDataset returns the dataset id a query refers to. It is taken from
// the first column, or from the first group key when the first column is
// not a key (it's an apply label).
func ActiveDataset(columns []string, group []string) (string, error) {
	var candidates []string
	if len(columns) > 0 {
		candidates = append(candidates, columns[0])
	}
	if len(group) > 0 {
		candidates = append(candidates, group[0])
	}

	for _, c := range candidates {
		if !IsKey(c) {
			continue
		}

		k, err := ParseKey(c)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(k.Dataset) == "" {
			return "", ErrMalformedKey.New(c)
		}
		return k.Dataset, nil
	}

	return "", ErrMalformedQuery.New("unable to find the dataset referenced by the query")
}
