package insight

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/campusdata/insight/internal/metrics"
	"github.com/campusdata/insight/sql"
	"github.com/campusdata/insight/sql/analyzer"
	"github.com/campusdata/insight/sql/parse"
	"github.com/campusdata/insight/sql/plan"
)

// Engine performs queries over loaded datasets.
type Engine struct {
	Analyzer    *analyzer.Analyzer
	ProcessList *ProcessList
}

// New creates a new Engine with the given analyzer.
func New(a *analyzer.Analyzer) *Engine {
	return &Engine{
		Analyzer:    a,
		ProcessList: NewProcessList(),
	}
}

// NewDefault creates a new Engine with the default analyzer.
func NewDefault() *Engine {
	return New(analyzer.NewDefault())
}

// Query performs a query given as an untyped document over the given
// datasets. Either the complete result is returned or an error.
func (e *Engine) Query(
	ctx *sql.Context,
	datasets sql.DatasetProvider,
	doc interface{},
) (*Result, error) {
	return e.query(ctx, datasets, func(ctx *sql.Context) (*parse.Query, error) {
		return parse.Parse(ctx, doc)
	})
}

// QueryJSON performs a query encoded as JSON.
func (e *Engine) QueryJSON(
	ctx *sql.Context,
	datasets sql.DatasetProvider,
	data []byte,
) (*Result, error) {
	return e.query(ctx, datasets, func(ctx *sql.Context) (*parse.Query, error) {
		return parse.ParseJSON(ctx, data)
	})
}

// QueryYAML performs a query encoded as YAML.
func (e *Engine) QueryYAML(
	ctx *sql.Context,
	datasets sql.DatasetProvider,
	data []byte,
) (*Result, error) {
	return e.query(ctx, datasets, func(ctx *sql.Context) (*parse.Query, error) {
		return parse.ParseYAML(ctx, data)
	})
}

func (e *Engine) query(
	ctx *sql.Context,
	datasets sql.DatasetProvider,
	parseQuery func(*sql.Context) (*parse.Query, error),
) (result *Result, err error) {
	start := time.Now()
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	ctx = ctx.WithQueryID(id.String(), QueryIDLogField)
	span, ctx := ctx.Span("engine.Query")
	e.ProcessList.AddProcess(ctx.QueryID())
	defer func() {
		e.ProcessList.Done(ctx.QueryID())
		if err != nil {
			span.SetTag("error", true)
		}
		span.Finish()
		metrics.ObserveQuery(outcomeOf(err), time.Since(start).Seconds())
	}()

	q, err := parseQuery(ctx)
	if err != nil {
		ctx.GetLogger().WithError(err).Debug("unable to parse query")
		return nil, err
	}

	analyzed, err := e.Analyzer.Analyze(ctx, q, datasets)
	if err != nil {
		ctx.GetLogger().WithError(err).Debug("unable to analyze query")
		return nil, err
	}

	if d := datasetOf(analyzed); d != "" {
		e.ProcessList.SetDataset(ctx.QueryID(), d)
		ctx = ctx.WithLogFields(logrus.Fields{DatasetLogField: d})
	}

	rows, err := sql.NodeToRows(ctx, analyzed)
	if err != nil {
		ctx.GetLogger().WithError(err).Debug("query failed")
		return nil, err
	}

	metrics.ResultRows.Observe(float64(len(rows)))
	ctx.GetLogger().WithField("rows", len(rows)).Debug("query performed")
	return &Result{Schema: analyzed.Schema(), Rows: rows}, nil
}

// datasetOf returns the id of the dataset the plan reads from.
func datasetOf(n sql.Node) string {
	if d, ok := n.(*plan.ResolvedDataset); ok {
		return d.ID
	}

	for _, child := range n.Children() {
		if id := datasetOf(child); id != "" {
			return id
		}
	}
	return ""
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case sql.ErrMalformedQuery.Is(err):
		return metrics.OutcomeMalformed
	case sql.ErrDatasetNotFound.Is(err):
		return metrics.OutcomeNotFound
	case sql.ErrResultTooLarge.Is(err):
		return metrics.OutcomeTooLarge
	default:
		return metrics.OutcomeInternalError
	}
}
