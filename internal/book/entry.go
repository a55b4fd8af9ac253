// Package book provides the Polyglot opening-book entry value type. The
// engine does not read books from disk; the entry exists so that book
// consumers and producers agree on keys and move packing.
package book

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/errors"
	"github.com/lgbarn/chesskit-go/internal/hashing"
)

// Entry is one Polyglot opening-book record. The move packing is
// bits 0-2 target file, 3-5 target rank, 6-8 source file, 9-11 source
// rank, 12-14 promotion code (0 none, 1 n, 2 b, 3 r, 4 q). Castling is
// recorded as the rook-square destination and rewritten to the king's
// two-square move on decode.
type Entry struct {
	Key     uint64
	RawMove uint16
	Weight  uint16
	Learn   uint32
}

// NewEntry packs a position and a move into a book entry.
func NewEntry(p *chess.Position, move chess.Move, weight uint16, learn uint32) Entry {
	raw := uint16(move.Target().File()) |
		uint16(move.Target().Rank())<<3 |
		uint16(move.Source().File())<<6 |
		uint16(move.Source().Rank())<<9

	switch move.Promotion() {
	case chess.KnightType:
		raw |= 1 << 12
	case chess.BishopType:
		raw |= 2 << 12
	case chess.RookType:
		raw |= 3 << 12
	case chess.QueenType:
		raw |= 4 << 12
	}

	return Entry{
		Key:     hashing.Position(p),
		RawMove: raw,
		Weight:  weight,
		Learn:   learn,
	}
}

// Move unpacks the entry's move, rewriting the four rook-square castling
// encodings (e1h1, e1a1, e8h8, e8a8) to the king's two-square target.
func (e Entry) Move() (chess.Move, error) {
	source, err := chess.SquareFromRankFile(int(e.RawMove>>9&0x7), int(e.RawMove>>6&0x7))
	if err != nil {
		return chess.Move{}, errors.Invalid("move")
	}
	target, err := chess.SquareFromRankFile(int(e.RawMove>>3&0x7), int(e.RawMove&0x7))
	if err != nil {
		return chess.Move{}, errors.Invalid("move")
	}

	switch source.Name() + target.Name() {
	case "e1h1":
		return chess.MoveFromUCI("e1g1")
	case "e1a1":
		return chess.MoveFromUCI("e1c1")
	case "e8h8":
		return chess.MoveFromUCI("e8g8")
	case "e8a8":
		return chess.MoveFromUCI("e8c8")
	}

	switch e.RawMove >> 12 & 0x7 {
	case 1:
		return chess.NewPromotionMove(source, target, chess.KnightType)
	case 2:
		return chess.NewPromotionMove(source, target, chess.BishopType)
	case 3:
		return chess.NewPromotionMove(source, target, chess.RookType)
	case 4:
		return chess.NewPromotionMove(source, target, chess.QueenType)
	default:
		return chess.NewMove(source, target), nil
	}
}
