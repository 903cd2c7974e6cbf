// SPDX-License-Identifier: MIT

// Package metrics exposes GA run telemetry as Prometheus collectors on a
// dedicated registry. The command feeds it from engine hooks and writes the
// registry to a node-exporter textfile when a run ends.
package metrics

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gatsp/tsp"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcome label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Recorder owns the collectors of one process.
type Recorder struct {
	reg *prometheus.Registry

	generations  *prometheus.CounterVec
	improvements *prometheus.CounterVec
	runs         *prometheus.CounterVec
	bestLength   *prometheus.GaugeVec
	meanLength   *prometheus.GaugeVec
	stdDev       *prometheus.GaugeVec
	gap          *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "gatsp_generations_total", Help: "Generations evaluated."},
			[]string{"instance"},
		),
		improvements: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "gatsp_improvements_total", Help: "Generations that improved the best tour."},
			[]string{"instance"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "gatsp_runs_total", Help: "Instance runs by outcome."},
			[]string{"instance", "status"},
		),
		bestLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "gatsp_best_length", Help: "Best tour length found so far."},
			[]string{"instance"},
		),
		meanLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "gatsp_population_mean_length", Help: "Mean tour length of the latest generation."},
			[]string{"instance"},
		),
		stdDev: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "gatsp_population_stddev_length", Help: "Standard deviation of tour lengths in the latest generation."},
			[]string{"instance"},
		),
		gap: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "gatsp_optimum_gap_percent", Help: "Percent gap between the best length and the known optimum."},
			[]string{"instance"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gatsp_run_duration_seconds",
				Help:    "Wall-clock time of one instance run.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"instance"},
		),
	}
	r.reg.MustRegister(r.generations, r.improvements, r.runs,
		r.bestLength, r.meanLength, r.stdDev, r.gap, r.duration)

	return r
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveGeneration records one generation of a run on instance.
func (r *Recorder) ObserveGeneration(instance string, s tsp.GenerationStats) {
	r.generations.WithLabelValues(instance).Inc()
	if s.Improved {
		r.improvements.WithLabelValues(instance).Inc()
	}
	r.bestLength.WithLabelValues(instance).Set(s.BestEver)
	r.meanLength.WithLabelValues(instance).Set(s.Mean)
	r.stdDev.WithLabelValues(instance).Set(s.StdDev)
}

// ObserveRun records a finished run. gap is recorded only when known.
func (r *Recorder) ObserveRun(instance string, res tsp.Result, elapsed time.Duration, gap float64, known bool) {
	r.runs.WithLabelValues(instance, StatusOK).Inc()
	r.bestLength.WithLabelValues(instance).Set(res.Length)
	r.duration.WithLabelValues(instance).Observe(elapsed.Seconds())
	if known {
		r.gap.WithLabelValues(instance).Set(gap)
	}
}

// ObserveFailure counts a run that could not load or start.
func (r *Recorder) ObserveFailure(instance string) {
	r.runs.WithLabelValues(instance, StatusFailed).Inc()
}

// WriteTextfile writes the registry in the text exposition format,
// atomically replacing path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
