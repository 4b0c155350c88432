// Package boundary defines a tile's eight-direction adjacency signature
// and the single predicate the solver uses to decide whether two tiles
// may sit next to each other.
//
// What:
//
//   - Boundary: eight booleans indexed by direction.Direction.
//   - Requires(d): whether this tile demands an outward connection at d.
//   - Fits(other, d): whether other may sit at direction d from this tile.
//   - FromLiteral: parses the compact "BBB|BBB|BBB" adjacency literal into
//     a Boundary. This is the external helper referenced by the solver's
//     tile-construction contract; the solver itself never parses strings.
//
// Why:
//
//   - Boundary.Fits is the sole adjacency predicate field.propagate
//     consumes. Keeping it to one bit-per-direction comparison keeps the
//     tile algebra pluggable: a four-direction tile set is just a
//     Boundary with only the cardinal bits populated.
//
// Errors:
//
//   - ErrLiteralLength: literal is not exactly 11 characters.
//   - ErrLiteralChar: a peripheral position is not '0' or '1'.
//
// Complexity: Requires and Fits are O(1); FromLiteral is O(1) (fixed
// 11-character input).
package boundary
