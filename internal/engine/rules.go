package engine

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
)

// IsCheck reports whether the side to move is in check.
func IsCheck(p *chess.Position) bool {
	return IsKingAttacked(p, p.Turn())
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(p *chess.Position) bool {
	return IsCheck(p) && !NewLegalMoves(p).Any()
}

// IsStalemate reports whether the side to move is stalemated.
func IsStalemate(p *chess.Position) bool {
	return !IsCheck(p) && !NewLegalMoves(p).Any()
}

// IsInsufficientMaterial reports whether neither side can mate: king
// versus king, a lone minor piece versus a bare king, or kings with any
// number of bishops all standing on squares of one colour.
func IsInsufficientMaterial(p *chess.Position) bool {
	pieceCount := 0
	whiteBishops := 0
	blackBishops := 0
	lightSquareBishops := 0
	darkSquareBishops := 0

	for _, square := range chess.AllSquares() {
		piece := p.Get(square)
		if !piece.Valid() {
			continue
		}
		pieceCount++
		switch piece.Type() {
		case chess.PawnType, chess.RookType, chess.QueenType:
			return false
		case chess.BishopType:
			if piece.Colour() == chess.White {
				whiteBishops++
			} else {
				blackBishops++
			}
			if square.IsDark() {
				darkSquareBishops++
			} else {
				lightSquareBishops++
			}
		}
	}

	if pieceCount == 2 {
		// King versus king.
		return true
	}
	if pieceCount == 3 {
		// King and a single knight or bishop versus king.
		return true
	}
	if pieceCount == 2+whiteBishops+blackBishops {
		// Only kings and bishops remain; drawn when every bishop is on
		// the same square colour.
		if lightSquareBishops == 0 || darkSquareBishops == 0 {
			return true
		}
	}

	return false
}

// IsGameOver reports whether the game has ended: checkmate, stalemate,
// or insufficient material.
func IsGameOver(p *chess.Position) bool {
	if IsInsufficientMaterial(p) {
		return true
	}
	return !NewLegalMoves(p).Any()
}
