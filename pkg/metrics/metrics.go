// Package metrics exposes Prometheus instrumentation for optimizer runs.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "raven"
	subsystem = "genetic_algorithm"
)

// Metrics groups the collectors recorded by the genetic algorithm. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	GenerationsTotal       *prometheus.CounterVec
	GenerationDuration     *prometheus.HistogramVec
	EvaluationsTotal       *prometheus.CounterVec
	RepairedChromosomes    *prometheus.CounterVec
	BestFitness            *prometheus.GaugeVec
	ParetoFrontSize        *prometheus.GaugeVec
	SurvivorSelectionError *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "generations_total",
			Help:      "Number of completed generations by problem and survivor selection",
		}, []string{"problem", "survivor_selection"}),
		GenerationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one generation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"problem"}),
		EvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Objective evaluations by feasibility",
		}, []string{"problem", "outcome"}),
		RepairedChromosomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "repaired_chromosomes_total",
			Help:      "Offspring changed by the repair operator",
		}, []string{"problem", "repair"}),
		BestFitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_fitness",
			Help:      "Best fitness in the latest generation",
		}, []string{"problem"}),
		ParetoFrontSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pareto_front_size",
			Help:      "Number of non-dominated individuals in the latest generation",
		}, []string{"problem"}),
		SurvivorSelectionError: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "survivor_selection_errors_total",
			Help:      "Survivor selection failures by mechanism",
		}, []string{"survivor_selection"}),
	}
}

// RecordGeneration marks one completed generation.
func (m *Metrics) RecordGeneration(problem, selector string, elapsed time.Duration, bestFitness float64) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(problem, selector).Inc()
	m.GenerationDuration.WithLabelValues(problem).Observe(elapsed.Seconds())
	m.BestFitness.WithLabelValues(problem).Set(bestFitness)
}

// RecordEvaluations counts a batch of evaluations.
func (m *Metrics) RecordEvaluations(problem string, feasible, infeasible int) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(problem, "feasible").Add(float64(feasible))
	m.EvaluationsTotal.WithLabelValues(problem, "infeasible").Add(float64(infeasible))
}

// RecordRepairs counts offspring the repair operator had to change.
func (m *Metrics) RecordRepairs(problem, repair string, changed int) {
	if m == nil {
		return
	}
	m.RepairedChromosomes.WithLabelValues(problem, repair).Add(float64(changed))
}

// SetParetoFrontSize records the size of the first front.
func (m *Metrics) SetParetoFrontSize(problem string, size int) {
	if m == nil {
		return
	}
	m.ParetoFrontSize.WithLabelValues(problem).Set(float64(size))
}

// RecordSelectionError counts a failed survivor selection.
func (m *Metrics) RecordSelectionError(selector string) {
	if m == nil {
		return
	}
	m.SurvivorSelectionError.WithLabelValues(selector).Inc()
}

// WriteText dumps every family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
