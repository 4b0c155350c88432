package boundary

import "github.com/katalvlaran/wfc/direction"

// Boundary is a tile's eight-direction adjacency signature: one bit per
// direction.Direction saying whether the tile requires an outward
// connection on that side.
type Boundary struct {
	sides [8]bool
}

// New builds a Boundary directly from a per-direction bit, indexed by
// direction.Direction.Index(). Callers building tiles from hand-written
// Go typically prefer FromLiteral for readability.
func New(sides [8]bool) Boundary {
	return Boundary{sides: sides}
}

// Requires reports whether the tile demands an outward connection at
// direction d.
func (b Boundary) Requires(d direction.Direction) bool {
	return b.sides[d.Index()]
}

// Fits reports whether other may be placed at direction d relative to b:
// the bit b holds on its own d side must agree with the bit other holds
// on its opposite side. The relation is symmetric by construction — if
// a.Fits(b, d) then b.Fits(a, d.Opposite()).
func (b Boundary) Fits(other Boundary, d direction.Direction) bool {
	return b.sides[d.Index()] == other.sides[d.Opposite().Index()]
}
