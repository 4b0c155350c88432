// Package wfc is a Wave Function Collapse grid solver: given a small
// vocabulary of tiles and their adjacency rules, it fills a width-by-height
// grid one cell at a time, picking the lowest-entropy cell and propagating
// the consequences of each choice until every cell holds exactly one tile
// or the constraints prove unsatisfiable.
//
// Subpackages:
//
//	direction/   — the eight compass directions and their opposites
//	boundary/    — per-tile adjacency codes and the literal string parser
//	tile/        — the externally-supplied tile type (symbol, weight, boundary)
//	changequeue/ — the deduplicated worklist propagation drains each step
//	field/       — the solver itself: New, CloseEdges, ForcePotential, Step,
//	               Render, RenderPartial, Clone, and the bounded-retry Solve helper
//
// A minimal run:
//
//	tiles := []tile.Tile{ /* ... */ }
//	f, err := field.New(tiles, width, height)
//	if err != nil { /* handle */ }
//	if !f.CloseEdges() { /* unsatisfiable */ }
//	rng := rand.New(rand.NewSource(seed))
//	for {
//		if matrix, ok := f.Render(); ok {
//			// matrix is the finished grid, as tile indices
//			break
//		}
//		if !f.Step(rng) {
//			// stuck; inspect f.RenderPartial() or retry with a new Field
//			break
//		}
//	}
package wfc
