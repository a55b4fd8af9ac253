package chess

import (
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// Move is an immutable (source, target, promotion) triple. Castling is
// encoded as the king's two-square move; en-passant as a pawn capture
// onto the en-passant square. The promotion is 0 or one of 'n', 'b',
// 'r', 'q'.
type Move struct {
	source    Square
	target    Square
	promotion byte
}

// NewMove returns the non-promoting move from source to target.
func NewMove(source, target Square) Move {
	return Move{source: source, target: target}
}

// NewPromotionMove returns the move from source to target promoting to
// the given piece type.
func NewPromotionMove(source, target Square, promotion byte) (Move, error) {
	switch promotion {
	case KnightType, BishopType, RookType, QueenType:
		return Move{source: source, target: target, promotion: promotion}, nil
	default:
		return Move{}, errors.Invalid("promotion")
	}
}

// MoveFromUCI parses a move in UCI notation: 4 or 5 characters, such as
// "e2e4" or "e7e8q".
func MoveFromUCI(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return Move{}, errors.Invalid("uci")
	}
	source, err := SquareFromName(uci[0:2])
	if err != nil {
		return Move{}, errors.Invalid("uci")
	}
	target, err := SquareFromName(uci[2:4])
	if err != nil {
		return Move{}, errors.Invalid("uci")
	}
	if len(uci) == 5 {
		move, err := NewPromotionMove(source, target, uci[4])
		if err != nil {
			return Move{}, errors.Invalid("uci")
		}
		return move, nil
	}
	return NewMove(source, target), nil
}

// Source returns the source square of the move.
func (m Move) Source() Square {
	return m.source
}

// Target returns the target square of the move.
func (m Move) Target() Square {
	return m.target
}

// Promotion returns the promotion type character, or 0 for none.
func (m Move) Promotion() byte {
	return m.promotion
}

// IsPromotion reports whether the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.promotion != 0
}

// FullPromotion returns the spelled-out promotion type, or the empty
// string for none.
func (m Move) FullPromotion() string {
	switch m.promotion {
	case KnightType:
		return "knight"
	case BishopType:
		return "bishop"
	case RookType:
		return "rook"
	case QueenType:
		return "queen"
	}
	return ""
}

// UCI returns the move in UCI notation.
func (m Move) UCI() string {
	if m.promotion != 0 {
		return m.source.Name() + m.target.Name() + string(m.promotion)
	}
	return m.source.Name() + m.target.Name()
}

// Hash returns the hash of the move:
// source + 100*target + 10000*promotionCode.
func (m Move) Hash() int {
	return m.source.Hash() + 100*m.target.Hash() + 10000*promotionCode(m.promotion)
}

// String returns the move in UCI notation.
func (m Move) String() string {
	return m.UCI()
}

// promotionCode maps a promotion character to the Polyglot code:
// 0 none, 1 knight, 2 bishop, 3 rook, 4 queen.
func promotionCode(promotion byte) int {
	switch promotion {
	case KnightType:
		return 1
	case BishopType:
		return 2
	case RookType:
		return 3
	case QueenType:
		return 4
	}
	return 0
}
