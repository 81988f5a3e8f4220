// Package grid models the 4-connected grid graph a PIBT planner moves
// agents over.
//
// A Graph is built once (by maploader) and never mutated afterwards:
// vertex ids are dense integers in [0,|V|), each Node carries its
// (x,y) position and a precomputed neighbour list, and the neighbour
// relation is symmetric by construction. Everything downstream —
// the distance oracle, the agent registry, the PIBT engine's
// reservation tables — indexes directly by Node.ID into plain slices
// instead of through a map, which is what lets a planning call stay
// allocation-light at fleet scale.
//
// What
//
//   - Node: a traversable cell (id, position, neighbours).
//   - Graph: the set of Nodes plus an (x,y) -> Node lookup.
//   - 4-connectivity is the only supported connectivity (cardinal
//     moves only; "stay" is implicit and handled by callers, not
//     stored here).
//
// Why
//
//   - Dense integer ids let reservation tables and distance tables be
//     plain []T slices sized to len(Nodes), which is what the PIBT
//     engine's per-timestep hot path needs.
package grid
