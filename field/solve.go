package field

import (
	"math/rand"

	"github.com/katalvlaran/wfc/tile"
)

// Solve repeatedly builds a fresh Field over tiles and steps it to
// completion, retrying from scratch up to maxAttempts times if a run
// gets stuck. It is a convenience wrapper around New/CloseEdges/Step for
// callers that don't need to inspect a failed attempt's partial grid and
// would rather restart cheaply than backtrack through one.
//
// It returns the rendered matrix of tile indices on success. If every
// attempt fails, it returns (nil, false); the caller can re-run a single
// New/CloseEdges/Step sequence directly to inspect why.
func Solve(tiles []tile.Tile, width, height int, rng *rand.Rand, maxAttempts int, opts ...Option) ([][]int, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		f, err := New(tiles, width, height, opts...)
		if err != nil {
			return nil, false
		}

		if !f.CloseEdges() {
			continue
		}

		matrix, ok := f.Render()
		for !ok {
			if !f.Step(rng) {
				break
			}
			matrix, ok = f.Render()
		}
		if ok {
			return matrix, true
		}
	}

	return nil, false
}
