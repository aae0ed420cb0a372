// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Recorder with lazily registered collectors.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	plans    *prometheus.CounterVec
	duration prometheus.Histogram
	advisory *prometheus.CounterVec
	unfilled prometheus.Counter
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates a Recorder that registers on reg (the default
// registerer when nil) under namespace ("seatplan" when empty).
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "seatplan"
	}

	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.plans = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Total plan requests by outcome (ok,invalid,cancelled,error).",
		}, []string{"outcome"})

		p.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "Wall time of plan requests in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms .. ~4s
		})

		p.advisory = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "advisories_total",
			Help:      "Advisory notes emitted by kind.",
		}, []string{"kind"})

		p.unfilled = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "seating",
			Name:      "unfilled_seats_total",
			Help:      "Seats left empty because a round ran out of rotators.",
		})

		p.reg.MustRegister(p.plans)
		p.reg.MustRegister(p.duration)
		p.reg.MustRegister(p.advisory)
		p.reg.MustRegister(p.unfilled)
	})
}

// RecordPlan increments the outcome counter and observes seconds.
func (p *Prometheus) RecordPlan(outcome string, seconds float64) {
	p.ensureRegistered()
	p.plans.WithLabelValues(outcome).Inc()
	p.duration.Observe(seconds)
}

// RecordAdvisory increments the advisory counter for kind.
func (p *Prometheus) RecordAdvisory(kind string) {
	p.ensureRegistered()
	p.advisory.WithLabelValues(kind).Inc()
}

// RecordUnfilledSeats adds n to the unfilled seat counter; n <= 0 is ignored.
func (p *Prometheus) RecordUnfilledSeats(n int) {
	if n <= 0 {
		return
	}
	p.ensureRegistered()
	p.unfilled.Add(float64(n))
}
