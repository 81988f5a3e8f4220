package pibt

import (
	"github.com/katalvlaran/gridpibt/grid"
	"github.com/katalvlaran/gridpibt/registry"
)

// call holds the reservation tables for exactly one Plan invocation.
// occupiedNow[n.ID] is the agent currently sitting on node n; it never
// changes during the call. occupiedNext[n.ID] is the agent that has
// provisionally claimed n for the next step; chooseNode and funcPIBT
// fill it in as agents get decided, and it is what vertex-safety and
// swap-safety are checked against (spec.md §4.4, §3 invariants I-1/I-2).
type call struct {
	e *Engine

	occupiedNow  []*registry.Agent
	occupiedNext []*registry.Agent
}

// funcPIBT resolves a.v_next, recursively bumping any lower-priority
// agent occupying the node a wants off of it first. It mirrors the
// original source's pibt_api.cpp funcPIBT: a busy-wait "retry with the
// next-best candidate" loop rather than a plain recursive return, since
// an agent a displaced may itself fail and force a to fall back further.
//
// Returns false only when a could not move and had to stay put — a's
// caller (a higher-priority agent it was blocking) uses that to decide
// whether its own candidate is actually available.
func (c *call) funcPIBT(a *registry.Agent) bool {
	v := c.planOneStep(a)
	for {
		if v == nil {
			// No viable candidate at all: stay in place. This happens
			// when every neighbour and a.v_now itself are either
			// already claimed in occupiedNext or rejected as a swap
			// with an agent moving into a's cell.
			c.occupiedNext[a.VNow.ID] = a
			a.VNext = a.VNow
			return false
		}

		occupant := c.occupiedNow[v.ID]
		if occupant != nil && occupant != a && occupant.VNext == nil {
			if !c.funcPIBT(occupant) {
				// occupant couldn't vacate v; try a's next-best node.
				v = c.planOneStep(a)
				c.e.metrics.IncReplan()
				continue
			}
		}
		return true
	}
}

// planOneStep runs chooseNode and, if it found a candidate, reserves it
// in occupiedNext and records it as a's provisional v_next.
func (c *call) planOneStep(a *registry.Agent) *grid.Node {
	v := c.chooseNode(a)
	if v != nil {
		c.occupiedNext[v.ID] = a
		a.VNext = v
	}
	return v
}

// chooseNode picks the best not-yet-claimed candidate for a out of its
// neighbours plus a.v_now itself (staying put is always an option),
// shuffled first to break ties without directional bias (spec.md
// §4.4). A candidate is rejected outright if it is already claimed in
// occupiedNext (vertex safety) or if moving there would swap positions
// with another agent (swap safety). Among the survivors: reaching the
// goal wins immediately; otherwise the lower path_dist wins, and on a
// tie a free candidate is preferred over one currently occupied by
// another agent, since displacing nobody is strictly safer than
// forcing a recursive funcPIBT call when either choice makes equal
// progress.
func (c *call) chooseNode(a *registry.Agent) *grid.Node {
	neighbours := a.VNow.Neighbours()
	candidates := make([]*grid.Node, 0, len(neighbours)+1)
	candidates = append(candidates, neighbours...)
	candidates = append(candidates, a.VNow)
	shuffleNodes(candidates, c.e.rng)

	var best *grid.Node
	for _, u := range candidates {
		if c.occupiedNext[u.ID] != nil {
			continue
		}
		if occupant := c.occupiedNow[u.ID]; occupant != nil && occupant != a && occupant.VNext == a.VNow {
			continue // swap conflict: occupant is moving into a's cell
		}

		if u == a.Goal {
			return u
		}
		if best == nil {
			best = u
			continue
		}

		dBest, dU := a.PathDist(best), a.PathDist(u)
		switch {
		case dU < dBest:
			best = u
		case dU == dBest && c.occupiedNow[best.ID] != nil && c.occupiedNow[u.ID] == nil:
			best = u
		}
	}
	return best
}
