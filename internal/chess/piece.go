package chess

import (
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// Piece type characters, always lowercase.
const (
	PawnType   = 'p'
	KnightType = 'n'
	BishopType = 'b'
	RookType   = 'r'
	QueenType  = 'q'
	KingType   = 'k'
)

// Piece is an immutable coloured chess piece, encoded by its FEN symbol:
// one of PNBRQK for white, pnbrqk for black. The zero Piece is the null
// piece and represents an empty square; only Valid() may be called on it.
type Piece struct {
	symbol byte
}

// NewPiece returns the piece with the given symbol.
func NewPiece(symbol byte) (Piece, error) {
	switch lower(symbol) {
	case PawnType, KnightType, BishopType, RookType, QueenType, KingType:
		return Piece{symbol: symbol}, nil
	default:
		return Piece{}, errors.Invalid("symbol")
	}
}

// PieceFromColourAndType builds a piece from a colour and a lowercase type
// character.
func PieceFromColourAndType(colour Colour, typ byte) (Piece, error) {
	if colour != White && colour != Black {
		return Piece{}, errors.Invalid("color")
	}
	if colour == White {
		return NewPiece(upper(typ))
	}
	return NewPiece(lower(typ))
}

// Valid reports whether p is a real piece rather than the null piece.
func (p Piece) Valid() bool {
	return p.symbol != 0
}

// Symbol returns the FEN symbol of the piece.
func (p Piece) Symbol() byte {
	if p.symbol == 0 {
		panic(errors.Logic("called Symbol() of the null piece"))
	}
	return p.symbol
}

// Colour returns the colour of the piece.
func (p Piece) Colour() Colour {
	if p.symbol == 0 {
		panic(errors.Logic("called Colour() of the null piece"))
	}
	if p.symbol >= 'A' && p.symbol <= 'Z' {
		return White
	}
	return Black
}

// Type returns the lowercase type character of the piece.
func (p Piece) Type() byte {
	if p.symbol == 0 {
		panic(errors.Logic("called Type() of the null piece"))
	}
	return lower(p.symbol)
}

// FullColour returns the spelled-out colour, "white" or "black".
func (p Piece) FullColour() string {
	return p.Colour().String()
}

// FullType returns the spelled-out type of the piece.
func (p Piece) FullType() string {
	switch p.Type() {
	case PawnType:
		return "pawn"
	case KnightType:
		return "knight"
	case BishopType:
		return "bishop"
	case RookType:
		return "rook"
	case QueenType:
		return "queen"
	case KingType:
		return "king"
	}
	panic(errors.Logic("unknown piece type"))
}

// Hash returns the hash of the piece, its symbol byte.
func (p Piece) Hash() int {
	return int(p.Symbol())
}

// String returns the FEN symbol of the piece as a string.
func (p Piece) String() string {
	return string(p.Symbol())
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
