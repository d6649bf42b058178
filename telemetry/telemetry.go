// Package telemetry provides hierarchical timing collection for operations.
// Collectors travel through context so instrumentation stays out of function
// signatures; when no collector is installed, a no-op implementation is
// returned and timing costs nothing.
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("lex main.t")
//	defer timer.End()
//
//	child := timer.Child("render listing")
//	// ... work ...
//	child.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects operation timings.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w. The styles parameter may
	// carry an *output.Styles for terminal styling, or nil.
	Report(w io.Writer, styles interface{})
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector installs a collector into the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector installed in ctx, or a no-op collector
// when none is present. Never returns nil.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
