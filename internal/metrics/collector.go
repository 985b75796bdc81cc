package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "subnet_practice"

// Collector is a prometheus.Collector for practice activity.
type Collector struct {
	problemsCreated *prometheus.CounterVec
	answersChecked  *prometheus.CounterVec
	computations    *prometheus.CounterVec
	planTruncations *prometheus.CounterVec
	plannedSubnets  prometheus.Histogram
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		problemsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "problems_created_total",
				Help:      "The number of practice problems generated.",
			}, []string{"kind"},
		),
		answersChecked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "answers_checked_total",
				Help:      "The number of answer sheets checked, by outcome.",
			}, []string{"kind", "result"},
		),
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "computations_total",
				Help:      "The number of direct derive and plan requests.",
			}, []string{"operation", "result"},
		),
		planTruncations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "plan_truncations_total",
				Help:      "The number of plans that stopped before their requirements ran out.",
			}, []string{"reason"},
		),
		plannedSubnets: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "planned_subnets",
				Help:      "The number of subnets in each computed plan.",
				Buckets:   []float64{0, 1, 2, 3, 4, 5, 8, 16},
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.problemsCreated.Describe(ch)
	c.answersChecked.Describe(ch)
	c.computations.Describe(ch)
	c.planTruncations.Describe(ch)
	c.plannedSubnets.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.problemsCreated.Collect(ch)
	c.answersChecked.Collect(ch)
	c.computations.Collect(ch)
	c.planTruncations.Collect(ch)
	c.plannedSubnets.Collect(ch)
}
