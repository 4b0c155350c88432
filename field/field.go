package field

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/wfc/boundary"
	"github.com/katalvlaran/wfc/changequeue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/tile"
)

// decision is one committed collapse: at cellIndex, tileIndex was chosen.
// The slice of decisions is the "step stack"; its length is the current
// step number.
type decision struct {
	cellIndex int
	tileIndex int
}

// Field is the grid of cells, the tile boundaries/weights it was built
// from, and the stack of committed collapse decisions used to back out
// of a contradiction.
type Field struct {
	numTiles   int
	boundaries []boundary.Boundary
	weights    []tileWeight

	width, height int
	cells         []Cell

	steps []decision

	allowBacktracking bool
}

// neighborOffset is the (dx, dy) a direction steps by from a cell.
var neighborOffset = map[direction.Direction][2]int{
	direction.NW: {-1, -1},
	direction.N:  {0, -1},
	direction.NE: {1, -1},
	direction.E:  {1, 0},
	direction.SE: {1, 1},
	direction.S:  {0, 1},
	direction.SW: {-1, 1},
	direction.W:  {-1, 0},
}

// New builds a Field of the given dimensions over tiles. Indices into
// tiles are the solver's vocabulary for the rest of the Field's life.
// Tiles with Weight <= 0 are disallowed in every cell of the prototype,
// but still occupy their index slot.
func New(tiles []tile.Tile, width, height int, opts ...Option) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(w=%d, h=%d): %w", width, height, ErrDimensions)
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("New: %w", ErrTileCount)
	}

	n := len(tiles)
	boundaries := make([]boundary.Boundary, n)
	weights := make([]tileWeight, n)
	for i, t := range tiles {
		boundaries[i] = t.Boundary
		weights[i] = newTileWeight(t.Weight)
	}

	prototype := newCell(n)
	for i, t := range tiles {
		if t.Weight <= 0 {
			prototype.Invalidate(i, 0)
		}
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = prototype.clone()
	}

	f := &Field{
		numTiles:   n,
		boundaries: boundaries,
		weights:    weights,
		width:      width,
		height:     height,
		cells:      cells,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Width returns the grid width.
func (f *Field) Width() int { return f.width }

// Height returns the grid height.
func (f *Field) Height() int { return f.height }

// InBounds reports whether (x, y) lies within the grid.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// index maps (x, y) to its row-major position in f.cells.
func (f *Field) index(x, y int) int {
	return y*f.width + x
}

// coordinate maps a row-major index back to (x, y).
func (f *Field) coordinate(idx int) (x, y int) {
	return idx % f.width, idx / f.width
}

// neighbor returns the in-bounds coordinate one step from (x, y) in
// direction d, or ok=false if that step would leave the grid.
func (f *Field) neighbor(x, y int, d direction.Direction) (nx, ny int, ok bool) {
	off := neighborOffset[d]
	nx, ny = x+off[0], y+off[1]
	return nx, ny, f.InBounds(nx, ny)
}

// Clone returns a deep copy of f: an independent grid of cells and step
// stack sharing the same (immutable) tile weights and boundaries. Clone
// before Step to attempt multiple independent runs from the same
// starting constraints.
func (f *Field) Clone() *Field {
	cells := make([]Cell, len(f.cells))
	for i, c := range f.cells {
		cells[i] = c.clone()
	}
	steps := make([]decision, len(f.steps))
	copy(steps, f.steps)

	return &Field{
		numTiles:          f.numTiles,
		boundaries:        f.boundaries,
		weights:           f.weights,
		width:             f.width,
		height:            f.height,
		cells:             cells,
		steps:             steps,
		allowBacktracking: f.allowBacktracking,
	}
}

// CloseEdges eliminates any tile whose boundary requires an outward
// connection on the grid's boundary row/column: a tile requiring a
// connection to the north (or either north diagonal) is removed from row
// 0, and symmetrically for south/east/west. Invalidations are recorded at
// the current step (0 if called before any Step). Returns false if any
// cell is driven to zero choices.
func (f *Field) CloseEdges() bool {
	queue := changequeue.New()
	currentStep := len(f.steps)

	for potentialIndex, b := range f.boundaries {
		if b.Requires(direction.N) || b.Requires(direction.NE) || b.Requires(direction.NW) {
			for x := 0; x < f.width; x++ {
				if !f.invalidateEdgeCell(x, 0, potentialIndex, currentStep, queue) {
					return false
				}
			}
		}
		if b.Requires(direction.E) || b.Requires(direction.NE) || b.Requires(direction.SE) {
			x := f.width - 1
			for y := 0; y < f.height; y++ {
				if !f.invalidateEdgeCell(x, y, potentialIndex, currentStep, queue) {
					return false
				}
			}
		}
		if b.Requires(direction.S) || b.Requires(direction.SE) || b.Requires(direction.SW) {
			y := f.height - 1
			for x := 0; x < f.width; x++ {
				if !f.invalidateEdgeCell(x, y, potentialIndex, currentStep, queue) {
					return false
				}
			}
		}
		if b.Requires(direction.W) || b.Requires(direction.NW) || b.Requires(direction.SW) {
			for y := 0; y < f.height; y++ {
				if !f.invalidateEdgeCell(0, y, potentialIndex, currentStep, queue) {
					return false
				}
			}
		}
	}

	return f.propagate(queue)
}

func (f *Field) invalidateEdgeCell(x, y, potentialIndex, step int, queue *changequeue.Queue) bool {
	idx := f.index(x, y)
	f.cells[idx].Invalidate(potentialIndex, step)

	if f.cells[idx].NumAllowed() == 0 {
		return false
	}
	queue.Add(changequeue.Coord{X: x, Y: y})
	return true
}

// ForcePotential forces cell (x, y) to tile i and propagates the
// consequence. It reports whether propagation succeeded.
func (f *Field) ForcePotential(x, y, i int) (bool, error) {
	if !f.InBounds(x, y) {
		return false, fmt.Errorf("ForcePotential(%d,%d): %w", x, y, ErrOutOfBounds)
	}

	idx := f.index(x, y)
	f.cells[idx].Force(i, len(f.steps))

	queue := changequeue.New()
	queue.Add(changequeue.Coord{X: x, Y: y})
	return f.propagate(queue), nil
}

// Step performs one observe/choose/force/propagate cycle, backtracking
// through previously committed decisions on contradiction if
// allowBacktracking is set. It returns true on progress, false when
// nothing more can be done (the grid may be complete or unsolvable; the
// caller distinguishes via Render).
func (f *Field) Step(rng *rand.Rand) bool {
	cellIndex, ok := f.observe(rng)

	for ok {
		tileIndex, chosen := f.cells[cellIndex].Choose(f.weights, rng)
		if !chosen {
			panic("field: observe selected a cell with no allowed tiles")
		}

		f.steps = append(f.steps, decision{cellIndex: cellIndex, tileIndex: tileIndex})
		f.cells[cellIndex].Force(tileIndex, len(f.steps))

		queue := changequeue.New()
		x, y := f.coordinate(cellIndex)
		queue.Add(changequeue.Coord{X: x, Y: y})

		if f.propagate(queue) {
			return true
		}
		if !f.allowBacktracking {
			return false
		}

		cellIndex, ok = f.revert()
	}

	return false
}

// revert unwinds committed decisions until one whose alternative is still
// viable is found, or the stack empties.
func (f *Field) revert() (int, bool) {
	for len(f.steps) > 0 {
		last := f.steps[len(f.steps)-1]
		f.steps = f.steps[:len(f.steps)-1]
		s := len(f.steps)

		for i := range f.cells {
			f.cells[i].RevertTo(s)
		}

		f.cells[last.cellIndex].Invalidate(last.tileIndex, s)

		queue := changequeue.New()
		x, y := f.coordinate(last.cellIndex)
		queue.Add(changequeue.Coord{X: x, Y: y})

		if f.propagate(queue) {
			return last.cellIndex, true
		}

		for i := range f.cells {
			f.cells[i].RevertTo(s)
		}
	}

	return 0, false
}

// observe scans every cell with more than one allowed tile and returns
// the one of minimum entropy, breaking ties with a uniform reservoir
// over the equal-entropy candidates (|ΔH| < 1e-6 counts as equal). It
// returns ok=false when every cell has at most one allowed tile.
func (f *Field) observe(rng *rand.Rand) (int, bool) {
	const epsilon = 1e-6

	best := -1
	bestEntropy := 0.0
	numEncountered := 0.0

	for idx := range f.cells {
		c := &f.cells[idx]
		if c.NumAllowed() <= 1 {
			continue
		}

		e := c.entropy(f.weights)

		switch {
		case best < 0:
			best = idx
			bestEntropy = e
			numEncountered = 1.0
		case e < bestEntropy-epsilon:
			best = idx
			bestEntropy = e
			numEncountered = 1.0
		case e > bestEntropy+epsilon:
			// strictly worse, reject
		default:
			// equal entropy: this is the numEncountered-th candidate in
			// the equivalence class; replace with probability 1/numEncountered.
			numEncountered++
			if rng.Float64()*numEncountered < 1.0 {
				best = idx
				bestEntropy = e
			}
		}
	}

	return best, best >= 0
}

// propagate drains changes, cascading the consequence of each queued
// coordinate's change to its eight neighbors. It returns false as soon as
// any neighbor is driven to zero allowed tiles.
func (f *Field) propagate(queue *changequeue.Queue) bool {
	currentStep := len(f.steps)

	for {
		coord, ok := queue.Next()
		if !ok {
			return true
		}

		for _, d := range direction.All {
			if !f.propagateDirection(coord.X, coord.Y, currentStep, d, queue) {
				return false
			}
		}
	}
}

// propagateDirection shrinks the allowed set of the neighbor of (x, y) in
// direction d to only tiles some surviving source tile fits. It returns
// false iff the neighbor is driven to zero allowed tiles.
func (f *Field) propagateDirection(x, y, currentStep int, d direction.Direction, queue *changequeue.Queue) bool {
	nx, ny, ok := f.neighbor(x, y, d)
	if !ok {
		return true
	}

	source, neighbor, ok := splitPair(f.cells, f.index(x, y), f.index(nx, ny))
	if !ok {
		return true
	}

	if testDirection(f.boundaries, source, neighbor, currentStep, d) {
		if neighbor.NumAllowed() == 0 {
			return false
		}
		queue.Add(changequeue.Coord{X: nx, Y: ny})
	}

	return true
}

// testDirection invalidates every tile still allowed in neighbor that no
// surviving tile in source fits, in direction d. It reports whether
// neighbor changed.
func testDirection(boundaries []boundary.Boundary, source, neighbor *Cell, currentStep int, d direction.Direction) bool {
	changed := false

	for testIndex := range boundaries {
		if !neighbor.Allowed(testIndex) {
			continue
		}

		fits := false
		for sourceIndex := range boundaries {
			if source.Allowed(sourceIndex) && boundaries[sourceIndex].Fits(boundaries[testIndex], d) {
				fits = true
				break
			}
		}

		if !fits {
			neighbor.Invalidate(testIndex, currentStep)
			changed = true
		}
	}

	return changed
}

// Render produces a width-by-height matrix of tile indices, or
// ok=false if any cell has not yet collapsed to a single tile.
func (f *Field) Render() (matrix [][]int, ok bool) {
	result := make([][]int, f.height)

	for y := 0; y < f.height; y++ {
		row := make([]int, f.width)
		for x := 0; x < f.width; x++ {
			i, selected := f.cells[f.index(x, y)].ExtractSelection()
			if !selected {
				return nil, false
			}
			row[x] = i
		}
		result[y] = row
	}

	return result, true
}

// RenderPartial always produces a width-by-height matrix: collapsed
// cells yield their tile index, cells with more than one survivor yield
// the sentinel numTiles, and cells with no survivor yield math.MaxInt.
// It is a diagnostic for failed or in-progress runs.
func (f *Field) RenderPartial() [][]int {
	result := make([][]int, f.height)

	for y := 0; y < f.height; y++ {
		row := make([]int, f.width)
		for x := 0; x < f.width; x++ {
			c := &f.cells[f.index(x, y)]
			switch {
			case c.NumAllowed() == 1:
				i, _ := c.ExtractSelection()
				row[x] = i
			case c.NumAllowed() > 0:
				row[x] = f.numTiles
			default:
				row[x] = math.MaxInt
			}
		}
		result[y] = row
	}

	return result
}
