package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/viewkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns development defaults.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP HTTP.
// The caller shuts it down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get(logger.ComponentObservability).Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recording view activity.
type Metrics struct {
	advances        metric.Int64Counter
	retreats        metric.Int64Counter
	dereferences    metric.Int64Counter
	collected       metric.Int64Histogram
	collectDuration metric.Float64Histogram
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	advances, err := meter.Int64Counter(MetricAdvances,
		metric.WithDescription("Cursor forward steps"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricAdvances, err)
	}

	retreats, err := meter.Int64Counter(MetricRetreats,
		metric.WithDescription("Cursor backward steps"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRetreats, err)
	}

	dereferences, err := meter.Int64Counter(MetricDereferences,
		metric.WithDescription("Cursor dereferences"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricDereferences, err)
	}

	collected, err := meter.Int64Histogram(MetricCollected,
		metric.WithDescription("Elements produced by a full traversal"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCollected, err)
	}

	collectDuration, err := meter.Float64Histogram(MetricCollectDuration,
		metric.WithDescription("Duration of a full traversal in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCollectDuration, err)
	}

	return &Metrics{
		advances:        advances,
		retreats:        retreats,
		dereferences:    dereferences,
		collected:       collected,
		collectDuration: collectDuration,
	}, nil
}

// RecordCollect records a finished traversal of a named pipeline.
func (m *Metrics) RecordCollect(ctx context.Context, name string, elements int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String(AttrPipeline, name))
	m.collected.Record(ctx, int64(elements), attrs)
	m.collectDuration.Record(ctx, duration.Seconds(), attrs)
}

// Metric names.
const (
	MetricAdvances        = "view.cursor.advances"
	MetricRetreats        = "view.cursor.retreats"
	MetricDereferences    = "view.cursor.dereferences"
	MetricCollected       = "view.collect.elements"
	MetricCollectDuration = "view.collect.duration"
)
