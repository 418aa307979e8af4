package parse

import (
	"github.com/spf13/cast"
)

// normalize turns the maps produced by YAML decoding, keyed by
// interface{}, into the string keyed maps JSON decoding produces.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			m[cast.ToString(k)] = normalize(val)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			m[k] = normalize(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(v))
		for i, val := range v {
			s[i] = normalize(val)
		}
		return s
	case []string:
		s := make([]interface{}, len(v))
		for i, val := range v {
			s[i] = val
		}
		return s
	default:
		return v
	}
}
