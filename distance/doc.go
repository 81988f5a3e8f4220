// Package distance implements the per-agent distance oracle of
// spec.md §4.2: a reverse breadth-first search from an agent's goal,
// materialised into a dense array keyed by grid.Node.ID.
//
// What
//
//   - Rebuild(goal) performs one BFS from goal and stores hop counts
//     for every node reachable from it.
//   - Dist(node) is an O(1) read used on the PIBT engine's hot path
//     (chooseNode compares path_dist(a, u) for every candidate).
//   - Unreachable nodes read back as Unreachable (math.MaxUint32).
//
// Why a BFS, and why reversed
//
// The grid is undirected, so a BFS rooted at the goal produces exactly
// the same hop counts as "shortest path from node X to goal" would —
// we just get every node's distance in one sweep instead of running a
// fresh search per query.
//
// Grounded on bfs/bfs.go's queue/visited/walker shape, rewritten
// against dense int ids: the teacher's BFSResult.Depth is a
// map[string]int sized for a general string-keyed core.Graph; here the
// walker writes straight into a pre-sized []uint32 indexed by
// grid.Node.ID, since the oracle sits on chooseNode's inner loop and
// the spec's own data model (§3) specifies dist_a as an array, not a
// map.
package distance
