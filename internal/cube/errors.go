package cube

import "errors"

// Sentinel errors for the cube package.
var (
	ErrInvalidNotation = errors.New("cube: invalid move notation")
	ErrUnknownPiece    = errors.New("cube: unknown piece")
)
