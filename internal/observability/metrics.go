// Package observability registers the sampler's Prometheus metrics and
// implements usecase.Recorder against them, following the
// register-with-AlreadyRegisteredError-handling idiom used elsewhere in
// the pack for Prometheus collectors.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the sampler's Prometheus metrics and satisfies
// usecase.Recorder directly. All methods are safe for concurrent use by
// multiple worker goroutines, since the underlying prometheus types are.
type Collector struct {
	gatherer prometheus.Gatherer

	BatchesStarted  prometheus.Counter
	BatchesFinished prometheus.Counter
	RowsEmitted     prometheus.Counter
	RowsDiscarded   *prometheus.CounterVec
	BatchDuration   prometheus.Histogram
}

// NewCollector registers the sampler's metrics against reg, defaulting
// to the global Prometheus registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	started, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adk_sampler_batches_started_total",
		Help: "Total number of sampler batches started.",
	}), "adk_sampler_batches_started_total")
	if err != nil {
		return nil, err
	}

	finished, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adk_sampler_batches_finished_total",
		Help: "Total number of sampler batches finished.",
	}), "adk_sampler_batches_finished_total")
	if err != nil {
		return nil, err
	}

	emitted, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adk_sampler_rows_emitted_total",
		Help: "Total number of seed rows emitted across all batches.",
	}), "adk_sampler_rows_emitted_total")
	if err != nil {
		return nil, err
	}

	discarded, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adk_sampler_rows_discarded_total",
		Help: "Total number of candidates discarded, labeled by reason.",
	}, []string{"reason"}), "adk_sampler_rows_discarded_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "adk_sampler_batch_duration_seconds",
		Help:    "Wall-clock duration of a single sampler batch.",
		Buckets: prometheus.DefBuckets,
	}), "adk_sampler_batch_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		BatchesStarted:  started,
		BatchesFinished: finished,
		RowsEmitted:     emitted,
		RowsDiscarded:   discarded,
		BatchDuration:   duration,
	}, nil
}

// BatchStarted implements usecase.Recorder.
func (c *Collector) BatchStarted(index int) {
	if c == nil {
		return
	}
	c.BatchesStarted.Inc()
}

// BatchFinished implements usecase.Recorder.
func (c *Collector) BatchFinished(index, emitted, discarded int, duration time.Duration) {
	if c == nil {
		return
	}
	c.BatchesFinished.Inc()
	c.RowsEmitted.Add(float64(emitted))
	c.BatchDuration.Observe(duration.Seconds())
}

// SampleDiscarded implements usecase.Recorder.
func (c *Collector) SampleDiscarded(reason string) {
	if c == nil {
		return
	}
	c.RowsDiscarded.WithLabelValues(reason).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
