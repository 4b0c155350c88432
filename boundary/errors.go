package boundary

import "errors"

// Sentinel errors for FromLiteral. Callers should branch with errors.Is,
// not string comparison.
var (
	// ErrLiteralLength indicates the literal is not exactly 11 characters.
	ErrLiteralLength = errors.New("boundary: literal must be 11 characters")
	// ErrLiteralChar indicates a peripheral position holds something
	// other than '0' or '1'.
	ErrLiteralChar = errors.New("boundary: peripheral position must be '0' or '1'")
)
