package tile

import "github.com/katalvlaran/wfc/boundary"

// Tile is one symbol-plus-boundary element the solver may assign to a
// cell. The solver treats Tile as opaque and refers to tiles exclusively
// by their position in a []Tile slice.
type Tile struct {
	// Symbol is display data only; the solver never inspects it.
	Symbol rune
	// Weight is this tile's relative likelihood. Weight <= 0 means the
	// tile is disallowed everywhere but still occupies an index slot.
	Weight float64
	// Boundary is this tile's eight-direction adjacency signature.
	Boundary boundary.Boundary
}

// New builds a Tile from a boundary literal (see boundary.FromLiteral),
// for the common case of hand-written tile sets.
func New(symbol rune, weight float64, literal string) (Tile, error) {
	b, err := boundary.FromLiteral(literal)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Symbol: symbol, Weight: weight, Boundary: b}, nil
}
