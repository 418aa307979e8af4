package analyzer

import (
	"os"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/parse"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

// DefaultMaxRows is the maximum number of rows a query may produce.
const DefaultMaxRows = 5000

// Analyzer validates parsed queries against the dataset they refer to and
// builds their execution plans.
type Analyzer struct {
	// Whether to log various debugging messages
	Debug bool
	// MaxRows is the number of rows above which a query fails.
	MaxRows int
	// Rules to apply, in order. The first error stops the analysis.
	Rules []Rule
}

// NewDefault creates a default Analyzer instance with all default Rules.
func NewDefault() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)
	return &Analyzer{
		Debug:   debug,
		MaxRows: DefaultMaxRows,
		Rules:   DefaultRules,
	}
}

// Log prints an INFO message with the given message and args through the
// logger of ctx if the analyzer is in debug mode.
func (a *Analyzer) Log(ctx *sql.Context, msg string, args ...interface{}) {
	if a != nil && a.Debug {
		ctx.GetLogger().Infof(msg, args...)
	}
}

// Analyze resolves the dataset the query refers to, validates the query
// and returns its execution plan. A missing dataset is reported before
// any other problem of the query.
func (a *Analyzer) Analyze(ctx *sql.Context, q *parse.Query, datasets sql.DatasetProvider) (sql.Node, error) {
	span, ctx := ctx.Span("analyze")
	defer span.Finish()

	s, err := resolveDataset(ctx, q, datasets)
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}
	span.SetTag("dataset", s.dataset.ID)
	a.Log(ctx, "analyzing query over dataset %q", s.dataset.ID)

	for _, rule := range a.Rules {
		if err := a.apply(ctx, rule, s); err != nil {
			span.SetTag("error", true)
			return nil, err
		}
	}

	n, err := buildPlan(ctx, a, s)
	if err != nil {
		return nil, err
	}

	span.SetTag("IsResolved", n.Resolved())
	a.Log(ctx, "plan:\n%s", n)
	return n, nil
}

func (a *Analyzer) apply(ctx *sql.Context, rule Rule, s *scope) error {
	span, ctx := ctx.Span(rule.Name, opentracing.Tag{Key: "rule", Value: rule.Name})
	defer span.Finish()

	ctx = ctx.WithLogFields(logrus.Fields{"rule": rule.Name})
	a.Log(ctx, "applying rule")
	err := rule.Apply(ctx, a, s)
	if err != nil {
		a.Log(ctx, "rule failed: %s", err)
	}
	return err
}
