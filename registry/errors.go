package registry

import "errors"

// Sentinel errors for request ingestion (spec.md §6/§7's InvalidRequest
// kind). Any of these aborts the whole call with no mutation to the
// registry, matching §7's "ingestion is atomic per call" policy.
var (
	// ErrNodeNotTraversable indicates an init or goal position is
	// off-grid or sits on an obstacle cell.
	ErrNodeNotTraversable = errors.New("registry: init or goal position is not traversable")
	// ErrDuplicateAgent indicates the same agent id appears twice in one
	// request batch.
	ErrDuplicateAgent = errors.New("registry: duplicate agent id in request")
)
