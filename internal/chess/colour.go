// Package chess provides the core value types of the engine: colours,
// pieces, squares, moves, and the position itself.
package chess

import (
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// ParseColour converts the character encoding ('w' or 'b') to a Colour.
func ParseColour(c byte) (Colour, error) {
	switch c {
	case 'w':
		return White, nil
	case 'b':
		return Black, nil
	default:
		return 0, errors.Invalid("color")
	}
}

// Char returns the character encoding of a colour: 'w' or 'b'.
func (c Colour) Char() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}
