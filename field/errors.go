package field

import "errors"

// Sentinel errors for field construction and coordinate access. Callers
// should branch with errors.Is, not string comparison, matching the
// teacher's builder/gridgraph convention.
var (
	// ErrDimensions indicates width or height was not positive.
	ErrDimensions = errors.New("field: width and height must be positive")
	// ErrTileCount indicates an empty tile slice was supplied.
	ErrTileCount = errors.New("field: at least one tile is required")
	// ErrOutOfBounds indicates a coordinate outside the grid was requested.
	ErrOutOfBounds = errors.New("field: coordinate out of bounds")
)
