// Package observability wires OpenTelemetry metrics and tracing into views.
//
// Setup installs OTLP HTTP meter and tracer providers from a Config:
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry, "viewdemo", version.String(), cfg.Environment)
//	defer shutdown(ctx)
//
// Observe is an adapter that passes elements through unchanged while
// counting cursor advances, retreats and dereferences per named stage:
//
//	metrics, _ := observability.NewMetrics(observability.Meter("viewdemo"))
//	r := view.Pipe2(src, observability.Observe[int](metrics, "source"), view.Take[int](3))
//
// CollectTraced collects a range inside a span carrying the element count.
package observability
