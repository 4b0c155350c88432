package boundary

import (
	"fmt"

	"github.com/katalvlaran/wfc/direction"
)

// literalPositions maps each of the 11 literal positions to the direction
// it sets, or to direction.Direction(-1) for the two separators (index 3
// and 7) and the center (index 5), which are ignored. The "BBB|BBB|BBB"
// layout reads as NW N NE | W · E | SW S SE.
var literalPositions = [11]direction.Direction{
	direction.NW, direction.N, direction.NE, -1,
	direction.W, -1, direction.E, -1,
	direction.SW, direction.S, direction.SE,
}

const literalLength = 11

// FromLiteral parses an 11-character adjacency literal of the form
// "BBB|BBB|BBB" into a Boundary. The center (position 5) and the two
// separator positions (3 and 7) are ignored and are not checked, so they
// may hold any character; every other position must be '0' or '1'.
//
// The solver never parses literals itself, only the Boundary values this
// function produces.
func FromLiteral(s string) (Boundary, error) {
	if len(s) != literalLength {
		return Boundary{}, fmt.Errorf("FromLiteral(%q): len=%d: %w", s, len(s), ErrLiteralLength)
	}

	var b Boundary
	for i := 0; i < literalLength; i++ {
		d := literalPositions[i]
		if d < 0 {
			continue // separator or center, ignored
		}

		switch s[i] {
		case '0':
			// already false
		case '1':
			b.sides[d.Index()] = true
		default:
			return Boundary{}, fmt.Errorf("FromLiteral(%q): position %d is %q: %w", s, i, s[i], ErrLiteralChar)
		}
	}

	return b, nil
}
