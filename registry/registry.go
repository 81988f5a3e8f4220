package registry

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpibt/distance"
	"github.com/katalvlaran/gridpibt/grid"
)

// RequestItem is one agent's position/goal pair for a single planning
// call (spec.md §3 "Request item (transient)").
type RequestItem struct {
	ID           int32
	InitX, InitY int
	GoalX, GoalY int
}

// Registry holds every agent ever seen across planning calls against a
// single grid.Graph (spec.md §2 "Agent registry R"). It is not safe for
// concurrent use by design — spec.md §5 disallows concurrent planning
// calls against one engine instance, and Registry is always owned by
// exactly one.
type Registry struct {
	g   *grid.Graph
	rng *rand.Rand

	agents map[int32]*Agent
}

// NewRegistry creates an empty Registry over g, drawing tie_breaker
// values for newly-seen agents from rng. Callers that also need
// candidate-set shuffling (pibt.Engine) should share the same *rand.Rand
// instance so determinism is a function of (seed, request sequence)
// across both uses, per spec.md §5.
func NewRegistry(g *grid.Graph, rng *rand.Rand) *Registry {
	return &Registry{
		g:      g,
		rng:    rng,
		agents: make(map[int32]*Agent),
	}
}

// Agent returns the persistent state for id, if any. Agents present in
// the registry but absent from the most recent request remain here
// (spec.md §4.3) — they simply didn't participate in that call.
func (r *Registry) Agent(id int32) (*Agent, bool) {
	a, ok := r.agents[id]
	return a, ok
}

// Ingest applies one planning call's request batch (spec.md §4.3):
// known agents have v_now/goal refreshed (rebuilding their distance
// table on goal change); new agents are allocated with elapsed=0 and a
// freshly built distance table. Validation runs entirely before any
// mutation, so a returned error leaves the Registry exactly as it was
// (spec.md §7's ingestion-is-atomic-per-call policy).
//
// The returned slice is in request order; Engine.Plan is responsible
// for building reservation tables and the priority queue from it.
func (r *Registry) Ingest(items []RequestItem) ([]*Agent, error) {
	seen := make(map[int32]struct{}, len(items))
	inits := make([]*grid.Node, len(items))
	goals := make([]*grid.Node, len(items))

	for i, it := range items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: id=%d", ErrDuplicateAgent, it.ID)
		}
		seen[it.ID] = struct{}{}

		init, ok := r.g.GetNode(it.InitX, it.InitY)
		if !ok {
			return nil, fmt.Errorf("%w: init (%d,%d) for agent %d", ErrNodeNotTraversable, it.InitX, it.InitY, it.ID)
		}
		goal, ok := r.g.GetNode(it.GoalX, it.GoalY)
		if !ok {
			return nil, fmt.Errorf("%w: goal (%d,%d) for agent %d", ErrNodeNotTraversable, it.GoalX, it.GoalY, it.ID)
		}
		inits[i] = init
		goals[i] = goal
	}

	// Validation passed for the whole batch; now mutate.
	out := make([]*Agent, len(items))
	for i, it := range items {
		a, known := r.agents[it.ID]
		if known {
			a.VNow = inits[i]
			a.VNext = nil
			if a.Goal != goals[i] {
				a.Goal = goals[i]
				a.dist.Rebuild(r.g, goals[i])
			}
		} else {
			oracle := distance.NewOracle(r.g, goals[i])
			a = &Agent{
				ID:         it.ID,
				VNow:       inits[i],
				Goal:       goals[i],
				Elapsed:    0,
				TieBreaker: r.rng.Float64(),
				dist:       oracle,
			}
			// Resolved open question (spec.md §9): init_d is the real
			// goal distance at insertion, not a flattened 0, so it can
			// actually participate in the priority tie-break.
			a.InitD = oracle.Dist(inits[i])
			r.agents[it.ID] = a
		}
		out[i] = a
	}

	return out, nil
}
