package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the Prometheus collectors a pibt.Engine reports
// through. Construct one per engine instance (labelled by map, via
// mapLabel) and register it against a shared registry.
type Collector struct {
	planDuration prometheus.Histogram
	replans      prometheus.Counter
	agents       prometheus.Gauge
}

// NewCollector builds and registers a Collector for the given map
// label. Registering the same mapLabel twice against the same
// registerer returns an error from reg.Register, which callers should
// treat as a setup bug (two engines sharing one map label).
func NewCollector(reg prometheus.Registerer, mapLabel string) (*Collector, error) {
	c := &Collector{
		planDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "pibt_plan_duration_seconds",
			Help:        "Wall-clock duration of a single PIBT planning call.",
			ConstLabels: prometheus.Labels{"map": mapLabel},
			Buckets:     prometheus.DefBuckets,
		}),
		replans: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pibt_plan_replans_total",
			Help:        "Number of times funcPIBT's inheritance loop forced an agent to replan.",
			ConstLabels: prometheus.Labels{"map": mapLabel},
		}),
		agents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pibt_plan_agents",
			Help:        "Number of agents in the most recent planning call.",
			ConstLabels: prometheus.Labels{"map": mapLabel},
		}),
	}

	for _, collector := range []prometheus.Collector{c.planDuration, c.replans, c.agents} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveDuration records a completed planning call's wall time.
func (c *Collector) ObserveDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.planDuration.Observe(d.Seconds())
}

// IncReplan records one forced replan inside funcPIBT.
func (c *Collector) IncReplan() {
	if c == nil {
		return
	}
	c.replans.Inc()
}

// SetAgents records the agent count for the most recent call.
func (c *Collector) SetAgents(n int) {
	if c == nil {
		return
	}
	c.agents.Set(float64(n))
}
