package engine

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// The classical 0x88 difference-vector tables, indexed by
// source.x88 - target.x88 + 119. Each attackTable entry is a bitmask of
// piece types that could conceivably attack across that displacement
// (bit 0 pawn, 1 knight, 2 bishop, 3 rook, 4 queen, 5 king); the
// rayTable entry is the single step to walk from source toward target.
var attackTable = [239]int{
	20, 0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 20, 0,
	0, 20, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 20, 0, 0,
	0, 0, 20, 0, 0, 0, 0, 24, 0, 0, 0, 0, 20, 0, 0, 0,
	0, 0, 0, 20, 0, 0, 0, 24, 0, 0, 0, 20, 0, 0, 0, 0,
	0, 0, 0, 0, 20, 0, 0, 24, 0, 0, 20, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 20, 2, 24, 2, 20, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 2, 53, 56, 53, 2, 0, 0, 0, 0, 0, 0,
	24, 24, 24, 24, 24, 24, 56, 0, 56, 24, 24, 24, 24, 24, 24, 0,
	0, 0, 0, 0, 0, 2, 53, 56, 53, 2, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 20, 2, 24, 2, 20, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 20, 0, 0, 24, 0, 0, 20, 0, 0, 0, 0, 0,
	0, 0, 0, 20, 0, 0, 0, 24, 0, 0, 0, 20, 0, 0, 0, 0,
	0, 0, 20, 0, 0, 0, 0, 24, 0, 0, 0, 0, 20, 0, 0, 0,
	0, 20, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 20, 0, 0,
	20, 0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 20,
}

var rayTable = [239]int{
	17, 0, 0, 0, 0, 0, 0, 16, 0, 0, 0, 0, 0, 0, 15, 0,
	0, 17, 0, 0, 0, 0, 0, 16, 0, 0, 0, 0, 0, 15, 0, 0,
	0, 0, 17, 0, 0, 0, 0, 16, 0, 0, 0, 0, 15, 0, 0, 0,
	0, 0, 0, 17, 0, 0, 0, 16, 0, 0, 0, 15, 0, 0, 0, 0,
	0, 0, 0, 0, 17, 0, 0, 16, 0, 0, 15, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 17, 0, 16, 0, 15, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 17, 16, 15, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 0, -1, -1, -1, -1, -1, -1, -1, 0,
	0, 0, 0, 0, 0, 0, -15, -16, -17, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, -15, 0, -16, 0, -17, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, -15, 0, 0, -16, 0, 0, -17, 0, 0, 0, 0, 0,
	0, 0, 0, -15, 0, 0, 0, -16, 0, 0, 0, -17, 0, 0, 0, 0,
	0, 0, -15, 0, 0, 0, 0, -16, 0, 0, 0, 0, -17, 0, 0, 0,
	0, -15, 0, 0, 0, 0, 0, -16, 0, 0, 0, 0, 0, -17, 0, 0,
	-15, 0, 0, 0, 0, 0, 0, -16, 0, 0, 0, 0, 0, 0, -17,
}

// attackShift maps a piece type to its bit in attackTable entries.
func attackShift(typ byte) uint {
	switch typ {
	case chess.PawnType:
		return 0
	case chess.KnightType:
		return 1
	case chess.BishopType:
		return 2
	case chess.RookType:
		return 3
	case chess.QueenType:
		return 4
	default:
		return 5
	}
}

// attacksFrom reports whether a piece of the given colour on source
// pseudo-legally attacks target.
func attacksFrom(p *chess.Position, colour chess.Colour, target, source chess.Square) bool {
	piece := p.Get(source)
	if !piece.Valid() || piece.Colour() != colour {
		return false
	}

	difference := source.X88() - target.X88()
	index := difference + 119

	if attackTable[index]&(1<<attackShift(piece.Type())) == 0 {
		return false
	}

	// Pawns attack in one direction only.
	if piece.Type() == chess.PawnType {
		if difference > 0 {
			return piece.Colour() == chess.White
		}
		return piece.Colour() == chess.Black
	}

	// Knight and king attacks cannot be blocked.
	if piece.Type() == chess.KnightType || piece.Type() == chess.KingType {
		return true
	}

	// Walk the ray from source toward target; any piece in between
	// blocks the attack.
	offset := rayTable[index]
	for x88 := source.X88() + offset; x88 != target.X88(); x88 += offset {
		square, _ := chess.SquareFromX88(x88)
		if p.Get(square).Valid() {
			return false
		}
	}
	return true
}

// IsAttacked reports whether any piece of the given colour attacks the
// target square.
func IsAttacked(p *chess.Position, colour chess.Colour, target chess.Square) bool {
	for _, source := range chess.AllSquares() {
		if attacksFrom(p, colour, target, source) {
			return true
		}
	}
	return false
}

// IsKingAttacked reports whether the given colour's king is attacked by
// the opposing side. Without a king on the board it reports false.
func IsKingAttacked(p *chess.Position, colour chess.Colour) bool {
	king := p.King(colour)
	if !king.Valid() {
		return false
	}
	return IsAttacked(p, colour.Opposite(), king)
}

// Attackers enumerates the squares from which pieces of one colour
// attack a target square, in source-square index order. The generator
// is computed eagerly; it keeps no reference to the position.
type Attackers struct {
	squares []chess.Square
	cursor  int
}

// NewAttackers returns the attackers of target by the given colour.
func NewAttackers(p *chess.Position, colour chess.Colour, target chess.Square) (*Attackers, error) {
	if !target.Valid() {
		return nil, errors.Invalid("target")
	}
	if colour != chess.White && colour != chess.Black {
		return nil, errors.Invalid("color")
	}

	a := &Attackers{}
	for _, source := range chess.AllSquares() {
		if attacksFrom(p, colour, target, source) {
			a.squares = append(a.squares, source)
		}
	}
	return a, nil
}

// Len returns the number of attacking squares.
func (a *Attackers) Len() int {
	return len(a.squares)
}

// Any reports whether there is at least one attacker.
func (a *Attackers) Any() bool {
	return len(a.squares) > 0
}

// Contains reports whether the given square is one of the attackers.
func (a *Attackers) Contains(square chess.Square) bool {
	for _, s := range a.squares {
		if s == square {
			return true
		}
	}
	return false
}

// Reset rewinds the iteration cursor.
func (a *Attackers) Reset() {
	a.cursor = 0
}

// Next returns the next attacking square, or ok == false when the
// enumeration is exhausted.
func (a *Attackers) Next() (square chess.Square, ok bool) {
	if a.cursor >= len(a.squares) {
		return chess.Square{}, false
	}
	square = a.squares[a.cursor]
	a.cursor++
	return square, true
}

// Squares returns the attacking squares in source-index order.
func (a *Attackers) Squares() []chess.Square {
	out := make([]chess.Square, len(a.squares))
	copy(out, a.squares)
	return out
}
