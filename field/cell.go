package field

import (
	"math"
	"math/rand"
)

// unset is the sentinel used in place of Option<usize> for invalidateStep
// and maxInvalidateStep: Go has no optional-int, so -1 (steps are never
// negative) stands in for "no invalidation recorded".
const unset = -1

// tileWeight is the solver's own precomputed per-tile data: the raw
// weight plus w*ln(w), cached once so entropy() never recomputes a log.
type tileWeight struct {
	weight          float64
	entropicElement float64
}

// newTileWeight precomputes w*ln(w) for a tile's weight. For non-positive
// weights math.Log produces -Inf/NaN, which is harmless because
// zero-or-negative-weight tiles are invalidated in every cell's prototype
// and so never contribute to a sum over allowed indices.
func newTileWeight(w float64) tileWeight {
	return tileWeight{weight: w, entropicElement: w * math.Log(w)}
}

// Cell is one grid position's bitmap of surviving tile choices (the
// "FieldPoint" of the original design). allowed[i] records whether tile i
// is still possible; numAllowed is a cached popcount; invalidateStep[i]
// records the step at which tile i was disallowed (unset if still
// allowed); maxInvalidateStep is the max over invalidateStep (unset if
// none).
type Cell struct {
	allowed           []bool
	numAllowed        int
	invalidateStep    []int
	maxInvalidateStep int
}

// newCell returns a Cell with all n choices allowed and no invalidations.
func newCell(n int) Cell {
	allowed := make([]bool, n)
	invalidateStep := make([]int, n)
	for i := range allowed {
		allowed[i] = true
		invalidateStep[i] = unset
	}
	return Cell{
		allowed:           allowed,
		numAllowed:        n,
		invalidateStep:    invalidateStep,
		maxInvalidateStep: unset,
	}
}

// clone returns a deep copy of c.
func (c Cell) clone() Cell {
	allowed := make([]bool, len(c.allowed))
	copy(allowed, c.allowed)
	invalidateStep := make([]int, len(c.invalidateStep))
	copy(invalidateStep, c.invalidateStep)
	return Cell{
		allowed:           allowed,
		numAllowed:        c.numAllowed,
		invalidateStep:    invalidateStep,
		maxInvalidateStep: c.maxInvalidateStep,
	}
}

// NumAllowed returns the cached popcount of surviving choices.
func (c *Cell) NumAllowed() int {
	return c.numAllowed
}

// Allowed reports whether tile i is still possible in this cell.
func (c *Cell) Allowed(i int) bool {
	return c.allowed[i]
}

// Invalidate clears tile i if it was still allowed, recording step as its
// invalidation step and raising maxInvalidateStep. Repeating on an
// already-cleared index is a no-op; it must not double-decrement
// numAllowed, since propagation may revisit the same cell/tile pair.
func (c *Cell) Invalidate(i, step int) {
	if !c.allowed[i] {
		return
	}

	c.allowed[i] = false

	if c.numAllowed <= 0 {
		panic("field: Invalidate called on a cell with no allowed tiles")
	}
	c.numAllowed--

	if c.invalidateStep[i] != unset {
		panic("field: Invalidate called twice on the same live tile")
	}
	c.invalidateStep[i] = step
	c.maxInvalidateStep = step
}

// Force clears every choice but i, recording invalidateStep for slots
// that were still unset, then sets tile i as the sole survivor.
func (c *Cell) Force(i, step int) {
	for j := range c.allowed {
		c.allowed[j] = false
	}
	for j := range c.invalidateStep {
		if c.invalidateStep[j] == unset {
			c.invalidateStep[j] = step
		}
	}

	c.allowed[i] = true
	c.numAllowed = 1
	c.invalidateStep[i] = unset
	c.maxInvalidateStep = step
}

// Choose performs a single-pass weighted reservoir selection over the
// currently-allowed indices: it accumulates total weight as it scans,
// and for each allowed index replaces the current pick with probability
// weight/totalWeightSoFar. It is pure; it never mutates the cell. It
// returns (index, true), or (0, false) if no tile is allowed.
func (c *Cell) Choose(weights []tileWeight, rng *rand.Rand) (int, bool) {
	totalWeight := 0.0
	choice := -1

	for i, allow := range c.allowed {
		if !allow {
			continue
		}
		w := weights[i].weight
		totalWeight += w
		if rng.Float64()*totalWeight < w {
			choice = i
		}
	}

	if choice < 0 {
		return 0, false
	}
	return choice, true
}

// RevertTo restores the cell to the state it held immediately after step.
// If nothing was invalidated after step, it is a no-op. Invariant after
// return: maxInvalidateStep <= step.
func (c *Cell) RevertTo(step int) {
	if c.maxInvalidateStep <= step {
		return
	}

	c.maxInvalidateStep = unset
	for p := range c.allowed {
		if c.invalidateStep[p] > step {
			c.allowed[p] = true
			c.invalidateStep[p] = unset
			c.numAllowed++
		} else if c.invalidateStep[p] > c.maxInvalidateStep {
			c.maxInvalidateStep = c.invalidateStep[p]
		}
	}
}

// ExtractSelection returns (i, true) iff numAllowed == 1 and i is the
// sole surviving tile.
func (c *Cell) ExtractSelection() (int, bool) {
	if c.numAllowed != 1 {
		return 0, false
	}
	for i, allow := range c.allowed {
		if allow {
			return i, true
		}
	}
	panic("field: numAllowed == 1 but no tile is allowed")
}

// entropy computes the Shannon entropy of the weight distribution
// restricted to this cell's surviving tiles:
//
//	H = ln(sum w_i) - (sum w_i*ln(w_i)) / (sum w_i)
func (c *Cell) entropy(weights []tileWeight) float64 {
	totalWeight := 0.0
	totalComponent := 0.0

	for i, allow := range c.allowed {
		if !allow {
			continue
		}
		totalWeight += weights[i].weight
		totalComponent += weights[i].entropicElement
	}

	return math.Log(totalWeight) - totalComponent/totalWeight
}
