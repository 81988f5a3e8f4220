// Package maploader parses the ASCII grid map-file format described in
// spec.md §6 and produces a *grid.Graph.
//
// This package is a peripheral "external collaborator" in the original
// specification's own terms (§1: "the textual map-file loader" is
// explicitly out of scope for the PIBT core) — it exists here so the
// repository is runnable end to end, not because the planning engine
// depends on any particular file format.
//
// Format
//
// Whitespace-separated tokens: a two-token header ("<width> <height>"),
// followed by height rows of width single-character tokens each. The
// FreeToken (default ".") marks a traversable cell; every other token
// is treated as an obstacle.
package maploader
