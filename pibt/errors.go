package pibt

import "errors"

// Sentinel errors for the Planner operation (spec.md §6/§7).
var (
	// ErrInternalInvariantViolation is returned if a planning call ends
	// with the reservation tables in a state the algorithm's own
	// invariants say is impossible (duplicate v_next, an agent left
	// without a v_next). Per §7 this indicates an internal bug, never a
	// reachable caller condition; Plan aborts rather than returning a
	// result it cannot vouch for.
	ErrInternalInvariantViolation = errors.New("pibt: internal invariant violation after planning")
)
