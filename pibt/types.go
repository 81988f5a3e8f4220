package pibt

// Result is one agent's next position, as emitted by Engine.Plan
// (spec.md §6 "Result item"). The slice Plan returns is ordered by
// priority-queue pop order, not request order (spec.md §9 "Result
// ordering") — callers needing request order must reindex by ID.
type Result struct {
	ID   int32
	X, Y int
}
