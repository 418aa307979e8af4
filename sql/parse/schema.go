package parse

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/campusdata/insight/sql"
)

// querySchema is the shape every query document must have. Keys and
// operands inside WHERE are checked while building the filter tree.
const querySchema = `{
	"type": "object",
	"required": ["WHERE", "OPTIONS"],
	"additionalProperties": false,
	"properties": {
		"WHERE": {"type": "object", "maxProperties": 1},
		"OPTIONS": {
			"type": "object",
			"required": ["COLUMNS"],
			"additionalProperties": false,
			"properties": {
				"COLUMNS": {"type": "array", "minItems": 1, "items": {"type": "string"}},
				"ORDER": {
					"oneOf": [
						{"type": "string"},
						{
							"type": "object",
							"required": ["dir", "keys"],
							"additionalProperties": false,
							"properties": {
								"dir": {"enum": ["UP", "DOWN"]},
								"keys": {"type": "array", "items": {"type": "string"}}
							}
						}
					]
				}
			}
		},
		"TRANSFORMATIONS": {
			"type": "object",
			"required": ["GROUP", "APPLY"],
			"additionalProperties": false,
			"properties": {
				"GROUP": {"type": "array", "minItems": 1, "items": {"type": "string"}},
				"APPLY": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"minProperties": 1,
						"maxProperties": 1,
						"additionalProperties": false,
						"patternProperties": {
							"^[^_]+$": {
								"type": "object",
								"minProperties": 1,
								"maxProperties": 1,
								"additionalProperties": false,
								"properties": {
									"MAX": {"type": "string"},
									"MIN": {"type": "string"},
									"AVG": {"type": "string"},
									"SUM": {"type": "string"},
									"COUNT": {"type": "string"}
								}
							}
						}
					}
				}
			}
		}
	}
}`

var compiledSchema = mustCompile(querySchema)

func mustCompile(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}

// checkShape validates the document against the query schema.
func checkShape(doc interface{}) error {
	result, err := compiledSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return sql.ErrMalformedQuery.Wrap(err, err.Error())
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return sql.ErrMalformedQuery.New(strings.Join(errs, "; "))
	}

	return nil
}
