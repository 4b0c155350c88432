// Package changequeue implements the deduplicated worklist of grid
// coordinates awaiting propagation.
//
// What:
//
//   - Queue: Add is a no-op if the coordinate is already pending; Next
//     pops and returns one pending coordinate; order across Add calls is
//     unspecified but deterministic for a given call sequence.
//
// Why:
//
//   - field.propagate drains this queue once per Step/CloseEdges/
//     ForcePotential call; dedup bounds the number of times any one
//     coordinate can be re-queued to the number of tiles it can shrink by.
//
// Complexity: Add is O(n) in the current queue length (linear scan for
// dedup); for the small grids this solver targets that is not a
// bottleneck. Next and Empty are O(1).
package changequeue
