// Package gridpibt is a Multi-Agent Path Finding planner for a shared
// 2D grid, based on Priority Inheritance with Backtracking (PIBT): at
// each discrete timestep, given every agent's current cell and goal,
// it returns a conflict-free assignment of next cells.
//
// The planning core lives in grid (graph model), distance (per-agent
// BFS distance oracle), registry (persistent agent state and request
// ingestion), and pibt (the engine itself). config, server, and
// cmd/pibtd wrap that core into a runnable daemon.
package gridpibt
