// Package prometheus records pipeline metrics with the Prometheus client.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/curate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "curate"

// Metrics holds the pipeline metrics.
type Metrics struct {
	StageDuration *prometheus.HistogramVec
	StageErrors   *prometheus.CounterVec
	Runs          *prometheus.CounterVec
	SchemaErrors  prometheus.Counter
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// registers with the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"stage"},
		),
		StageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "stage_errors_total",
				Help:      "Total number of failed pipeline stages",
			},
			[]string{"stage", "code"},
		),
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of pipeline runs by resulting capability",
			},
			[]string{"capability"},
		),
		SchemaErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "schema_errors_total",
				Help:      "Total number of malformed JSON-LD blocks",
			},
		),
	}
}

// ObserveRun counts a finished pipeline run. Failed runs are counted under
// the "failed" capability.
func (m *Metrics) ObserveRun(content curate.Content, err error) {
	capability := string(curate.CapabilityOf(content))
	if err != nil || capability == "" {
		capability = "failed"
	}
	m.Runs.WithLabelValues(capability).Inc()
}

// SchemaErrorFunc returns a curate.SchemaErrorFunc counting malformed
// JSON-LD blocks. next, if non-nil, is called afterwards.
func (m *Metrics) SchemaErrorFunc(next curate.SchemaErrorFunc) curate.SchemaErrorFunc {
	return func(malformed *curate.MalformedSchema, index int) {
		m.SchemaErrors.Inc()
		if next != nil {
			next(malformed, index)
		}
	}
}

// Ensure InstrumentedTransformer implements curate.Transformer.
var _ curate.Transformer = (*InstrumentedTransformer)(nil)

// InstrumentedTransformer wraps a pipeline stage and records its duration
// and failures.
type InstrumentedTransformer struct {
	name    string
	next    curate.Transformer
	metrics *Metrics
}

// NewInstrumentedTransformer creates a new InstrumentedTransformer.
func NewInstrumentedTransformer(name string, next curate.Transformer, metrics *Metrics) *InstrumentedTransformer {
	return &InstrumentedTransformer{name: name, next: next, metrics: metrics}
}

// Name returns the name of the wrapped stage.
func (t *InstrumentedTransformer) Name() string {
	return t.name
}

func (t *InstrumentedTransformer) Transform(ctx context.Context, content curate.Content, init *curate.InitContext) (out curate.Content, err error) {
	defer func(begin time.Time) {
		t.metrics.StageDuration.WithLabelValues(t.name).Observe(time.Since(begin).Seconds())
		if err != nil {
			t.metrics.StageErrors.WithLabelValues(t.name, curate.ErrorCode(err)).Inc()
		}
	}(time.Now())
	return t.next.Transform(ctx, content, init)
}

// Instrument wraps every stage of p in an InstrumentedTransformer.
func Instrument(p *curate.Pipeline, metrics *Metrics) *curate.Pipeline {
	stages := p.Stages()
	wrapped := make([]curate.Transformer, len(stages))
	for i, stage := range stages {
		wrapped[i] = NewInstrumentedTransformer(curate.StageName(i, stage), stage, metrics)
	}
	return curate.Pipe(wrapped...)
}
