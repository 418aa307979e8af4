package analyzer

import "github.com/campusdata/insight/sql"

// RuleFunc is the function to be applied in a rule.
type RuleFunc func(*sql.Context, *Analyzer, *scope) error

// Rule to check or complete the scope of a query.
type Rule struct {
	// Name of the rule.
	Name string
	// Apply checks the scope, and may complete it.
	Apply RuleFunc
}

// DefaultRules to apply when analyzing queries.
var DefaultRules = []Rule{
	{"validate_catalog", validateCatalog},
	{"validate_transformations", validateTransformations},
	{"validate_columns", validateColumns},
	{"validate_order", validateOrder},
	{"resolve_filter", resolveFilter},
}
