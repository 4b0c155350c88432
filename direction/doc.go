// Package direction defines the eight compass directions used to address
// a tile's neighbors and the faces of its boundary code.
//
// What:
//
//   - Direction: NW, N, NE, E, SE, S, SW, W, arranged clockwise from
//     north-west starting at index 0.
//   - Opposite: the direction reached by rotating 180 degrees (index+4 mod 8).
//
// Why:
//
//   - boundary.Boundary indexes an 8-element array by Direction and the
//     field package keys its neighbor-offset table by Direction; keeping
//     the enum in its own package lets both depend on it without
//     depending on each other.
//
// Complexity: every operation here is O(1).
package direction
