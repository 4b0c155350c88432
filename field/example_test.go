package field_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/field"
	"github.com/katalvlaran/wfc/tile"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CloseEdges
////////////////////////////////////////////////////////////////////////////////

// ExampleField_CloseEdges demonstrates using CloseEdges alone, with no
// Step calls, to fully determine a small box-drawing grid: four corner
// tiles on a 2x2 field have exactly one arrangement whose borders never
// require a connection off the edge of the grid.
func ExampleField_CloseEdges() {
	tiles := []tile.Tile{
		mustTile('┌', 1, "000|001|010"), // ┌
		mustTile('┐', 1, "000|100|010"), // ┐
		mustTile('└', 1, "010|001|000"), // └
		mustTile('┘', 1, "010|100|000"), // ┘
	}

	f, err := field.New(tiles, 2, 2)
	if err != nil {
		panic(err)
	}

	if !f.CloseEdges() {
		panic("no closed-edge arrangement exists")
	}

	matrix, ok := f.Render()
	if !ok {
		panic("grid did not fully collapse")
	}
	for _, row := range matrix {
		fmt.Println(row)
	}

	// Output:
	// [0 1]
	// [2 3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ForcePotential
////////////////////////////////////////////////////////////////////////////////

// ExampleField_ForcePotential demonstrates pinning specific cells by hand
// instead of calling Step: two ForcePotential calls are enough to
// propagate the remaining two corners of a 2x2 box.
func ExampleField_ForcePotential() {
	tiles := []tile.Tile{
		mustTile('┌', 1, "000|001|010"), // ┌
		mustTile('┐', 1, "000|100|010"), // ┐
		mustTile('└', 1, "010|001|000"), // └
		mustTile('┘', 1, "010|100|000"), // ┘
	}

	f, err := field.New(tiles, 2, 2)
	if err != nil {
		panic(err)
	}

	if ok, err := f.ForcePotential(0, 0, 0); err != nil || !ok {
		panic("could not place the northwest corner")
	}
	if ok, err := f.ForcePotential(1, 0, 1); err != nil || !ok {
		panic("could not place the northeast corner")
	}

	matrix, ok := f.Render()
	if !ok {
		panic("grid did not fully collapse")
	}
	for _, row := range matrix {
		fmt.Println(row)
	}

	// Output:
	// [0 1]
	// [2 3]
}

func mustTile(symbol rune, weight float64, literal string) tile.Tile {
	tl, err := tile.New(symbol, weight, literal)
	if err != nil {
		panic(err)
	}
	return tl
}
