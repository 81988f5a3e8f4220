// Package pibt implements the PIBT (Priority Inheritance with
// Backtracking) planning engine of spec.md §4.4: the recursive
// one-step conflict resolution procedure that turns a batch of
// {agent, current, goal} triples into a collision-free next-cell
// assignment.
//
// Engine.Plan is the sole public entry point. It owns, for the
// lifetime of one call, two node-indexed reservation arrays
// (occupiedNow, occupiedNext) and a priority queue of undecided
// agents; across calls it owns the registry.Registry and the RNG used
// to shuffle each agent's candidate set.
//
// Grounded on dijkstra/dijkstra.go's container/heap-based nodePQ for
// the priority queue shape, and on
// original_source/subject23/mapf-pibt/mapf/src/pibt_api.cpp for the
// exact recursive control flow of funcPIBT/planOneStep/chooseNode —
// including the "someone occupies v, recurse, and if that recursion
// only managed to stay, replan" loop that is easy to get subtly wrong
// from the prose description alone.
package pibt
