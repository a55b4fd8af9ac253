package engine

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
)

// Offset tables in 0x88 space. Pawn entries are for black; the sign is
// flipped for white. The first pawn entry is the single push, the second
// the double push, the remaining two the capture diagonals.
var (
	pawnOffsets   = [4]int{16, 32, 17, 15}
	knightOffsets = [8]int{-18, -33, -31, -14, 18, 33, 31, 14}
	bishopOffsets = [4]int{-17, -15, 17, 15}
	rookOffsets   = [4]int{-16, 1, 16, -1}
	royalOffsets  = [8]int{-17, -16, -15, 1, 17, 16, 15, -1}
)

// promotionOrder is the fixed order in which promotion variants are
// emitted.
var promotionOrder = [4]byte{chess.BishopType, chess.KnightType, chess.RookType, chess.QueenType}

// pieceOffsets returns the step offsets and sliding behaviour for a
// non-pawn piece type.
func pieceOffsets(typ byte) (offsets []int, slides bool) {
	switch typ {
	case chess.KnightType:
		return knightOffsets[:], false
	case chess.BishopType:
		return bishopOffsets[:], true
	case chess.RookType:
		return rookOffsets[:], true
	case chess.QueenType:
		return royalOffsets[:], true
	default:
		return royalOffsets[:], false
	}
}

// pseudoLegalMoves enumerates the pseudo-legal moves of the side to move
// in the fixed order: squares 0..63 ascending, pushes before captures,
// promotion variants b, n, r, q, and the castling candidates last.
func pseudoLegalMoves(p *chess.Position) []chess.Move {
	var moves []chess.Move
	for _, square := range chess.AllSquares() {
		moves = append(moves, pseudoLegalFrom(p, square)...)
	}
	return append(moves, castlingCandidates(p)...)
}

// pseudoLegalFrom enumerates the non-castling pseudo-legal moves of the
// side to move from one square.
func pseudoLegalFrom(p *chess.Position, square chess.Square) []chess.Move {
	piece := p.Get(square)
	if !piece.Valid() || piece.Colour() != p.Turn() {
		return nil
	}
	if piece.Type() == chess.PawnType {
		return pawnMovesFrom(p, square)
	}
	return pieceMovesFrom(p, square, piece)
}

// pawnMovesFrom enumerates pawn pushes, captures, and en-passant
// captures from one square.
func pawnMovesFrom(p *chess.Position, square chess.Square) []chess.Move {
	var moves []chess.Move

	sign := 1
	if p.Turn() == chess.White {
		sign = -1
	}

	// Single push, then the double push from the pawn's starting rank.
	if x88 := square.X88() + sign*pawnOffsets[0]; x88&0x88 == 0 {
		target, _ := chess.SquareFromX88(x88)
		if !p.Get(target).Valid() {
			moves = append(moves, pawnVariants(square, target)...)

			onStartRank := (p.Turn() == chess.White && square.Rank() == 1) ||
				(p.Turn() == chess.Black && square.Rank() == 6)
			if onStartRank {
				if x88 := square.X88() + sign*pawnOffsets[1]; x88&0x88 == 0 {
					double, _ := chess.SquareFromX88(x88)
					if !p.Get(double).Valid() {
						moves = append(moves, chess.NewMove(square, double))
					}
				}
			}
		}
	}

	// Capture diagonals, en-passant included.
	epSquare := p.EPSquare()
	for _, offset := range pawnOffsets[2:] {
		x88 := square.X88() + sign*offset
		if x88&0x88 != 0 {
			continue
		}
		target, _ := chess.SquareFromX88(x88)
		victim := p.Get(target)
		switch {
		case victim.Valid() && victim.Colour() != p.Turn():
			moves = append(moves, pawnVariants(square, target)...)
		case !victim.Valid() && target == epSquare:
			moves = append(moves, chess.NewMove(square, target))
		}
	}

	return moves
}

// pawnVariants returns the single move to target, or its four promotion
// variants when target is a backrank square.
func pawnVariants(square, target chess.Square) []chess.Move {
	if !target.IsBackrank() {
		return []chess.Move{chess.NewMove(square, target)}
	}
	moves := make([]chess.Move, 0, 4)
	for _, promotion := range promotionOrder {
		move, _ := chess.NewPromotionMove(square, target, promotion)
		moves = append(moves, move)
	}
	return moves
}

// pieceMovesFrom enumerates knight, bishop, rook, queen, and king moves
// from one square.
func pieceMovesFrom(p *chess.Position, square chess.Square, piece chess.Piece) []chess.Move {
	var moves []chess.Move

	offsets, slides := pieceOffsets(piece.Type())
	for _, offset := range offsets {
		x88 := square.X88()
		for {
			x88 += offset
			if x88&0x88 != 0 {
				break
			}
			target, _ := chess.SquareFromX88(x88)
			victim := p.Get(target)
			if victim.Valid() {
				if victim.Colour() != p.Turn() {
					moves = append(moves, chess.NewMove(square, target))
				}
				break
			}
			moves = append(moves, chess.NewMove(square, target))
			if !slides {
				break
			}
		}
	}

	return moves
}

// castlingCandidates emits the king's two-square castling moves,
// kingside before queenside. Castling requires the transit squares to
// be empty and the king's origin, transit, and arrival squares to be
// unattacked, so castling out of or through check is never emitted.
func castlingCandidates(p *chess.Position) []chess.Move {
	king := p.King(p.Turn())
	if !king.Valid() {
		return nil
	}

	var moves []chess.Move
	opponent := p.Turn().Opposite()

	if p.HasKingsideCastlingRight(p.Turn()) {
		of := king.X88()
		if (of+2)&0x88 == 0 {
			transit, _ := chess.SquareFromX88(of + 1)
			arrival, _ := chess.SquareFromX88(of + 2)
			if !p.Get(transit).Valid() && !p.Get(arrival).Valid() &&
				!IsAttacked(p, opponent, king) &&
				!IsAttacked(p, opponent, transit) &&
				!IsAttacked(p, opponent, arrival) {
				moves = append(moves, chess.NewMove(king, arrival))
			}
		}
	}

	if p.HasQueensideCastlingRight(p.Turn()) {
		of := king.X88()
		if (of-3)&0x88 == 0 {
			transit, _ := chess.SquareFromX88(of - 1)
			arrival, _ := chess.SquareFromX88(of - 2)
			rookPath, _ := chess.SquareFromX88(of - 3)
			if !p.Get(transit).Valid() && !p.Get(arrival).Valid() && !p.Get(rookPath).Valid() &&
				!IsAttacked(p, opponent, king) &&
				!IsAttacked(p, opponent, transit) &&
				!IsAttacked(p, opponent, arrival) {
				moves = append(moves, chess.NewMove(king, arrival))
			}
		}
	}

	return moves
}

// PseudoLegalMoves enumerates the pseudo-legal moves of the side to
// move. The generator is computed eagerly at construction and keeps no
// reference to the position; the enumeration order is fixed.
type PseudoLegalMoves struct {
	moves  []chess.Move
	cursor int
}

// NewPseudoLegalMoves returns the pseudo-legal moves of the side to move.
func NewPseudoLegalMoves(p *chess.Position) *PseudoLegalMoves {
	return &PseudoLegalMoves{moves: pseudoLegalMoves(p)}
}

// Len returns the number of pseudo-legal moves.
func (g *PseudoLegalMoves) Len() int {
	return len(g.moves)
}

// Any reports whether there is at least one pseudo-legal move.
func (g *PseudoLegalMoves) Any() bool {
	return len(g.moves) > 0
}

// Contains reports whether the given move is pseudo-legal.
func (g *PseudoLegalMoves) Contains(move chess.Move) bool {
	for _, m := range g.moves {
		if m == move {
			return true
		}
	}
	return false
}

// Reset rewinds the iteration cursor.
func (g *PseudoLegalMoves) Reset() {
	g.cursor = 0
}

// Next returns the next move, or ok == false when the enumeration is
// exhausted.
func (g *PseudoLegalMoves) Next() (move chess.Move, ok bool) {
	if g.cursor >= len(g.moves) {
		return chess.Move{}, false
	}
	move = g.moves[g.cursor]
	g.cursor++
	return move, true
}

// Moves returns the moves in enumeration order.
func (g *PseudoLegalMoves) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}
