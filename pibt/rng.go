package pibt

import (
	"math/rand"

	"github.com/katalvlaran/gridpibt/grid"
)

// shuffleNodes performs an in-place Fisher-Yates shuffle of nodes using
// rng, adapted from tsp/rng.go's shuffleIntsInPlace (there it shuffles
// a permutation of ints for heuristic restarts; here it is chooseNode's
// symmetry-breaking shuffle of a candidate-node set, spec.md §4.4).
func shuffleNodes(nodes []*grid.Node, rng *rand.Rand) {
	for i := len(nodes) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
