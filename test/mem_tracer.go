package test

import (
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
)

// MemTracer implements a simple tracer in memory for testing. It records
// the name of every started span.
type MemTracer struct {
	Spans []string
	sync.Mutex
}

// StartSpan implements opentracing.Tracer interface.
func (t *MemTracer) StartSpan(operationName string, opts ...opentracing.StartSpanOption) opentracing.Span {
	t.Lock()
	t.Spans = append(t.Spans, operationName)
	t.Unlock()
	return opentracing.NoopTracer{}.StartSpan(operationName, opts...)
}

// Inject implements opentracing.Tracer interface.
func (t *MemTracer) Inject(sm opentracing.SpanContext, format interface{}, carrier interface{}) error {
	panic("not implemented")
}

// Extract implements opentracing.Tracer interface.
func (t *MemTracer) Extract(format interface{}, carrier interface{}) (opentracing.SpanContext, error) {
	panic("not implemented")
}

// Has reports whether a span with the given name was started.
func (t *MemTracer) Has(opName string) bool {
	t.Lock()
	defer t.Unlock()
	for _, s := range t.Spans {
		if s == opName {
			return true
		}
	}
	return false
}
