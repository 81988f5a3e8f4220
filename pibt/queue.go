package pibt

import (
	"container/heap"

	"github.com/katalvlaran/gridpibt/registry"
)

// agentPQ is a max-priority queue of *registry.Agent ordered by the
// registry.Less comparator (elapsed desc, init_d desc, tie_breaker
// desc — spec.md §3). Shaped directly on dijkstra/dijkstra.go's nodePQ
// (Len/Less/Swap/Push/Pop over a slice of pointer items backing
// container/heap), with Less inverted: Dijkstra pops smallest-distance
// first, PIBT pops highest-priority first.
type agentPQ []*registry.Agent

func (pq agentPQ) Len() int { return len(pq) }

// Less reports whether i has higher priority than j — container/heap
// builds a min-heap over this ordering, so the agent that is "least"
// by Less is popped first, which is exactly the highest-priority agent
// per registry.Less.
func (pq agentPQ) Less(i, j int) bool { return registry.Less(pq[i], pq[j]) }

func (pq agentPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must
// be a *registry.Agent.
func (pq *agentPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*registry.Agent))
}

// Pop removes and returns the highest-priority agent from the heap.
// Called by heap.Pop.
func (pq *agentPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// newAgentPQ builds and heap-initializes a queue seeded with agents.
func newAgentPQ(agents []*registry.Agent) agentPQ {
	pq := make(agentPQ, len(agents))
	copy(pq, agents)
	heap.Init(&pq)
	return pq
}
