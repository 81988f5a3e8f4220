// Package registry implements spec.md §3's persistent Agent model and
// §4.3's per-call request ingestion.
//
// A Registry outlives any single planning call: it is what lets a
// caller re-issue the same agent id tick after tick and have elapsed,
// tie_breaker, and the agent's distance table persist in between, per
// §6 "Agent lifecycle across calls".
//
// Grounded on dijkstra/dijkstra.go's runner struct (bundling mutable
// per-call state with a read-only config/graph reference) for Registry
// itself. tie_breaker draws come from the single *rand.Rand the caller
// supplies to NewRegistry — the same generator pibt.Engine also uses
// for candidate shuffling, per spec.md §5's "a planner-scoped
// deterministic pseudo-random generator seeds both". A known agent's
// tie_breaker is drawn once, at first insertion, and never redrawn, so
// re-ingesting it on a later call does not consume from the shared
// stream or perturb any other agent's draw.
package registry
