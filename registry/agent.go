package registry

import (
	"github.com/katalvlaran/gridpibt/distance"
	"github.com/katalvlaran/gridpibt/grid"
)

// Agent is the persistent, per-id state described in spec.md §3. It
// survives across planning calls; VNext is live only within a single
// call (cleared by the commit phase at the end of Engine.Plan).
type Agent struct {
	ID int32

	VNow  *grid.Node
	VNext *grid.Node // nil when undecided for the current call
	Goal  *grid.Node

	Elapsed    uint32
	InitD      uint32
	TieBreaker float64

	dist *distance.Oracle
}

// PathDist returns the current distance-to-goal for n, per the
// distance oracle built for this agent's goal. Used by the PIBT
// engine's chooseNode as the cost-to-goal metric (spec.md §4.2).
func (a *Agent) PathDist(n *grid.Node) uint32 {
	return a.dist.Dist(n)
}

// Less implements the priority ordering ≺ of spec.md §3: a ≺ b iff
// a.elapsed > b.elapsed, ties broken by init_d (larger first), then by
// tie_breaker (larger first). Less(a, b) reports whether a has strictly
// higher priority than b — i.e. a should be popped first.
func Less(a, b *Agent) bool {
	if a.Elapsed != b.Elapsed {
		return a.Elapsed > b.Elapsed
	}
	if a.InitD != b.InitD {
		return a.InitD > b.InitD
	}
	return a.TieBreaker > b.TieBreaker
}
