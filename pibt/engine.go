package pibt

import (
	"container/heap"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpibt/grid"
	"github.com/katalvlaran/gridpibt/metrics"
	"github.com/katalvlaran/gridpibt/registry"
)

// Option configures an Engine at construction time, mirroring the
// functional-option idiom used throughout this module's ancestor
// (builder/options.go's BuilderOption).
type Option func(*Engine)

// WithMetrics attaches a metrics.Collector that Plan reports planning
// duration, replan counts, and agent counts through. Without this
// option, Plan simply skips instrumentation (Collector's methods are
// nil-receiver safe).
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// Engine is one PIBT planner instance bound to a single grid.Graph
// (spec.md §5: "the engine is instantiated per map ... Two concurrent
// planning calls against the same engine instance are disallowed").
// It owns the agent registry and the RNG across calls; reservation
// tables and the priority queue are call-scoped and rebuilt by every
// Plan invocation.
type Engine struct {
	g   *grid.Graph
	reg *registry.Registry
	rng *rand.Rand

	metrics *metrics.Collector
}

// NewEngine builds an Engine over g. seed drives the single
// planner-scoped RNG used both for agent tie_breaker draws and for
// chooseNode's candidate shuffling (spec.md §5); seed==0 falls back to
// a fixed default rather than a time-based source, keeping Plan
// reproducible by default.
func NewEngine(g *grid.Graph, seed int64, opts ...Option) *Engine {
	rng := registry.NewRNG(seed)
	e := &Engine{
		g:   g,
		reg: registry.NewRegistry(g, rng),
		rng: rng,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan runs one PIBT planning call: ingests items into the registry,
// resolves every agent's next cell via funcPIBT, and commits the
// result (spec.md §4.4). The returned slice is in priority-pop order.
//
// Errors ingesting the batch (spec.md §7's InvalidRequest kind) abort
// before any mutation. ErrInternalInvariantViolation signals a bug in
// this package, never a caller-reachable condition, per §7.
func (e *Engine) Plan(items []registry.RequestItem) ([]Result, error) {
	start := time.Now()

	agents, err := e.reg.Ingest(items)
	if err != nil {
		return nil, err
	}

	c := &call{
		e:            e,
		occupiedNow:  make([]*registry.Agent, e.g.NumNodes()),
		occupiedNext: make([]*registry.Agent, e.g.NumNodes()),
	}
	for _, a := range agents {
		c.occupiedNow[a.VNow.ID] = a
	}

	pq := newAgentPQ(agents)
	decided := make([]*registry.Agent, 0, len(agents))
	for pq.Len() > 0 {
		a := heap.Pop(&pq).(*registry.Agent)
		if a.VNext == nil {
			c.funcPIBT(a)
		}
		decided = append(decided, a)
	}

	results, err := c.commit(decided)
	if err != nil {
		return nil, err
	}

	e.metrics.ObserveDuration(time.Since(start))
	e.metrics.SetAgents(len(agents))

	return results, nil
}

// commit validates the post-planning invariants of spec.md §3/§8
// (totality, vertex safety — swap safety is enforced earlier, inside
// chooseNode) and then advances every agent's persistent state:
// elapsed resets on goal arrival, v_now becomes v_next, v_next clears.
func (c *call) commit(decided []*registry.Agent) ([]Result, error) {
	results := make([]Result, len(decided))
	claimed := make([]bool, len(c.occupiedNext))
	for i, a := range decided {
		if a.VNext == nil {
			return nil, fmt.Errorf("%w: agent %d has no v_next", ErrInternalInvariantViolation, a.ID)
		}
		if claimed[a.VNext.ID] {
			return nil, fmt.Errorf("%w: vertex conflict at node %d", ErrInternalInvariantViolation, a.VNext.ID)
		}
		claimed[a.VNext.ID] = true
		results[i] = Result{ID: a.ID, X: a.VNext.X, Y: a.VNext.Y}
	}

	for _, a := range decided {
		if a.VNext == a.Goal {
			a.Elapsed = 0
		} else {
			a.Elapsed++
		}
		a.VNow = a.VNext
		a.VNext = nil
	}

	return results, nil
}
