package hashing

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
)

// pieceOrder maps a piece symbol to its Polyglot kind index. The cell
// for a piece on a square is Table[64*kind + 8*rank + file].
var pieceOrder = "pPnNbBrRqQkK"

// Polyglot offsets for the non-piece hash inputs.
const (
	castleOffset    = 768
	enPassantOffset = 772
	turnOffset      = 780
)

// Position returns the Polyglot-compatible Zobrist hash of a position.
// The en-passant file is hashed only when a pawn of the side to move
// stands ready to capture.
func Position(p *chess.Position) uint64 {
	var hash uint64

	for _, square := range chess.AllSquares() {
		piece := p.Get(square)
		if !piece.Valid() {
			continue
		}
		kind := kindIndex(piece.Symbol())
		hash ^= Table[64*kind+8*square.Rank()+square.File()]
	}

	if p.HasKingsideCastlingRight(chess.White) {
		hash ^= Table[castleOffset]
	}
	if p.HasQueensideCastlingRight(chess.White) {
		hash ^= Table[castleOffset+1]
	}
	if p.HasKingsideCastlingRight(chess.Black) {
		hash ^= Table[castleOffset+2]
	}
	if p.HasQueensideCastlingRight(chess.Black) {
		hash ^= Table[castleOffset+3]
	}

	if square := p.RealEPSquare(); square.Valid() {
		hash ^= Table[enPassantOffset+square.File()]
	}

	if p.Turn() == chess.White {
		hash ^= Table[turnOffset]
	}

	return hash
}

// kindIndex returns the index of a piece symbol in the Polyglot piece
// ordering.
func kindIndex(symbol byte) int {
	for i := 0; i < len(pieceOrder); i++ {
		if pieceOrder[i] == symbol {
			return i
		}
	}
	return 0
}
