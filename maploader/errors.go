package maploader

import "errors"

// Sentinel errors for map-file loading. These surface as spec.md §7's
// MapLoadError kind; a load failure never mutates engine state since
// the graph it would have produced never existed.
var (
	// ErrTruncatedHeader indicates the file ended before a width/height
	// header could be read.
	ErrTruncatedHeader = errors.New("maploader: missing or truncated width/height header")
	// ErrBadHeader indicates the header tokens could not be parsed as
	// positive integers.
	ErrBadHeader = errors.New("maploader: width/height header must be two positive integers")
	// ErrTruncatedBody indicates fewer rows or columns were present than
	// the header declared.
	ErrTruncatedBody = errors.New("maploader: body has fewer rows/columns than declared in header")
	// ErrBadToken indicates a cell token was not exactly one character.
	ErrBadToken = errors.New("maploader: cell tokens must be single characters")
)
