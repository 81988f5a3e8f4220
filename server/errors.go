package server

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/gridpibt/pibt"
	"github.com/katalvlaran/gridpibt/registry"
)

// statusFor classifies an Engine.Plan error per spec.md §7's taxonomy:
// InvalidRequest kinds map to 400, the internal-bug kind maps to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrNodeNotTraversable),
		errors.Is(err, registry.ErrDuplicateAgent):
		return http.StatusBadRequest
	case errors.Is(err, pibt.ErrInternalInvariantViolation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
