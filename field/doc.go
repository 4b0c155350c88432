// Package field implements the Wave Function Collapse solver: a grid of
// cells, each a bitmap of surviving tile choices, collapsed one
// minimum-entropy cell at a time and propagated across neighbors until
// either every cell holds exactly one tile or a contradiction forces a
// backtrack.
//
// What:
//
//   - Cell: per-cell allowed bitmap, cached popcount, and per-choice
//     invalidation step used to checkpoint/restore during backtracking.
//   - Field: owns the grid of Cells, the tile weights/boundaries, and the
//     stack of committed collapse decisions. New, CloseEdges,
//     ForcePotential, Step, Render, RenderPartial, Clone.
//   - observe/choose: lowest-entropy cell selection with a uniform
//     reservoir tie-break, and weighted-random tile choice within a cell.
//
// Errors:
//
//   - ErrDimensions: width or height is not positive.
//   - ErrTileCount: the tile slice is empty.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// Complexity:
//
//   - New: O(W*H*N) where N is the tile count (prototype cell copied
//     into every grid position).
//   - propagate: at most O(W*H*N) dequeues per call (a cell is re-queued
//     only when it shrinks); each of the 8 neighbors of a dequeued
//     coordinate does an O(N^2) compatibility scan.
//   - Step: one observe (O(W*H*N), an entropy sum per cell) + one choose
//     (O(N)) + one propagate,
//     plus, on contradiction with backtracking enabled, however many
//     revert attempts it takes to find a still-viable alternative.
package field
