// Package metrics records render statistics in a private Prometheus
// registry and exports them as a node_exporter textfile.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects metrics for one process run.
type Recorder struct {
	registry *prometheus.Registry

	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	activeDays     *prometheus.GaugeVec
	hoursTotal     *prometheus.GaugeVec
	hoursMax       *prometheus.GaugeVec
	lastSuccess    prometheus.Gauge
}

// Option customizes a Recorder.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithDurationBuckets sets the render duration histogram buckets in seconds.
func WithDurationBuckets(buckets []float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

func NewRecorder(opts ...Option) *Recorder {
	o := options{
		namespace: "effortcal",
		buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "renders_total",
			Help:      "Calendar renders by outcome.",
		}, []string{"outcome"}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "render_duration_seconds",
			Help:      "Time to load, compose and write one calendar.",
			Buckets:   o.buckets,
		}),
		activeDays: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "active_days",
			Help:      "Days with any recorded hours.",
		}, []string{"year"}),
		hoursTotal: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "hours_total",
			Help:      "Hours recorded in the year per category.",
		}, []string{"year", "category"}),
		hoursMax: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "hours_daily_max",
			Help:      "Largest single-day hours per category.",
		}, []string{"year", "category"}),
		lastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful render.",
		}),
	}
}

// YearStats is what a finished render reports.
type YearStats struct {
	Year       int
	ActiveDays int
	Hours      map[string]float64
	MaxHours   map[string]float64
}

// ObserveRender records one successful render.
func (r *Recorder) ObserveRender(stats YearStats, took time.Duration, at time.Time) {
	year := strconv.Itoa(stats.Year)
	r.renders.WithLabelValues("success").Inc()
	r.renderDuration.Observe(took.Seconds())
	r.activeDays.WithLabelValues(year).Set(float64(stats.ActiveDays))
	for category, h := range stats.Hours {
		r.hoursTotal.WithLabelValues(year, category).Set(h)
	}
	for category, h := range stats.MaxHours {
		r.hoursMax.WithLabelValues(year, category).Set(h)
	}
	r.lastSuccess.Set(float64(at.Unix()))
}

// ObserveFailure counts a failed render.
func (r *Recorder) ObserveFailure() {
	r.renders.WithLabelValues("failure").Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
