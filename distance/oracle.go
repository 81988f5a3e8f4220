package distance

import (
	"math"

	"github.com/katalvlaran/gridpibt/grid"
)

// Unreachable is the distance value stored for nodes the goal cannot
// reach. It stands in for spec.md §3's "u32 ∪ {∞}".
const Unreachable uint32 = math.MaxUint32

// Oracle holds one agent's distance table: dist[node.ID] is the hop
// count from node to the goal the table was last built from. A zero
// Oracle is valid but must be Rebuilt before Dist is meaningful.
type Oracle struct {
	dist []uint32
	goal *grid.Node
}

// NewOracle allocates an Oracle sized for g and immediately builds the
// table for goal.
func NewOracle(g *grid.Graph, goal *grid.Node) *Oracle {
	o := &Oracle{dist: make([]uint32, g.NumNodes())}
	o.Rebuild(g, goal)
	return o
}

// Goal returns the node the table was last built from.
func (o *Oracle) Goal() *grid.Node {
	return o.goal
}

// Dist returns the hop count from n to the oracle's current goal, or
// Unreachable if no path exists. O(1).
func (o *Oracle) Dist(n *grid.Node) uint32 {
	return o.dist[n.ID]
}

// Rebuild replaces the table with a fresh reverse BFS from goal. Called
// on agent insertion and whenever an agent's goal changes (spec.md
// §4.2/§4.3). Unreachable entries are left at Unreachable.
//
// Complexity: O(V + E) time, O(V) space (reuses the existing slice).
func (o *Oracle) Rebuild(g *grid.Graph, goal *grid.Node) {
	o.goal = goal
	if cap(o.dist) < g.NumNodes() {
		o.dist = make([]uint32, g.NumNodes())
	} else {
		o.dist = o.dist[:g.NumNodes()]
	}
	for i := range o.dist {
		o.dist[i] = Unreachable
	}

	// BFS queue of node pointers only; each node's depth is read back
	// from o.dist rather than carried in the queue item, unlike bfs.go's
	// queueItem{id, depth, parent}.
	queue := make([]*grid.Node, 0, g.NumNodes())
	o.dist[goal.ID] = 0
	queue = append(queue, goal)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nextDepth := o.dist[cur.ID] + 1
		for _, nb := range cur.Neighbours() {
			if o.dist[nb.ID] != Unreachable {
				continue
			}
			o.dist[nb.ID] = nextDepth
			queue = append(queue, nb)
		}
	}
}
