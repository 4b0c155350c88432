// Package tile defines the externally-supplied tile type the solver
// refers to only by slice index: a display symbol, a scalar weight, and
// a boundary.Boundary.
//
// What:
//
//   - Tile: Symbol (opaque to the solver) + Weight + boundary.Boundary.
//   - New: convenience constructor that parses a boundary literal via
//     boundary.FromLiteral, for callers building tile sets from literals.
//
// Why:
//
//   - Tiles with Weight <= 0 are still given an index slot (field.New
//     disallows them everywhere instead of omitting them) so that caller
//     code referring to tiles by position keeps stable indices.
//
// Complexity: O(1) per tile.
package tile
