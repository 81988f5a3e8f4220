// Package metrics exposes Prometheus instrumentation for a pibt.Engine.
//
// This is ambient infrastructure spec.md never names — the original
// specification deliberately scopes "the core" to the planning
// algorithm alone (§1) — but a complete, runnable service built around
// that core needs visibility into how often it plans, how long a call
// takes, and how often priority inheritance forces a replan.
//
// Grounded on upside-down-research-agentic's internal/o11y package,
// the only github.com/prometheus/client_golang consumer in the
// retrieved example pack. Unlike that package's process-wide globals
// and push-gateway singleton, Collector is registered against a
// caller-supplied prometheus.Registerer so one process can host
// multiple engines (one per map, per spec.md §5) without collector
// name collisions.
package metrics
