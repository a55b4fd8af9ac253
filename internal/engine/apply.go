package engine

import (
	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// MoveInfo describes an applied move: the mover, what was captured, and
// the special-move flags. IsCheck, IsCheckmate, and SAN are filled in by
// the validated path only.
type MoveInfo struct {
	Move     chess.Move
	Piece    chess.Piece
	Captured chess.Piece

	IsEnpassant       bool
	IsKingsideCastle  bool
	IsQueensideCastle bool

	IsCheck     bool
	IsCheckmate bool
	SAN         string
}

// IsCastle reports whether the move castled on either side.
func (i MoveInfo) IsCastle() bool {
	return i.IsKingsideCastle || i.IsQueensideCastle
}

// MakeUnvalidatedMoveFast applies a move without a legality check. The
// caller guarantees the move is at least pseudo-legal. A move with no
// piece on its source square fails with "invalid argument: move".
func MakeUnvalidatedMoveFast(p *chess.Position, move chess.Move) (MoveInfo, error) {
	piece := p.Get(move.Source())
	if !piece.Valid() {
		return MoveInfo{}, errors.Invalid("move")
	}

	info := MoveInfo{Move: move, Piece: piece, Captured: p.Get(move.Target())}

	// Move the piece.
	p.Set(move.Target(), piece)
	p.Set(move.Source(), chess.Piece{})

	// It is the next player's turn.
	p.ToggleTurn()

	// Pawn moves.
	p.SetEPFile(0)
	if piece.Type() == chess.PawnType {
		// A diagonal pawn move onto an empty square is en-passant; the
		// captured pawn sits on the rank the moving pawn came from, at
		// the target's file.
		if move.Target().File() != move.Source().File() && !info.Captured.Valid() {
			capturedRank := 3
			if p.Turn() == chess.Black {
				capturedRank = 4
			}
			captureSquare, _ := chess.SquareFromRankFile(capturedRank, move.Target().File())
			info.Captured = p.Get(captureSquare)
			info.IsEnpassant = true
			p.Set(captureSquare, chess.Piece{})
		}

		// A double push opens the en-passant file.
		if abs(move.Target().Rank()-move.Source().Rank()) == 2 {
			p.SetEPFile(move.Target().FileName())
		}
	}

	// Promotion.
	if move.IsPromotion() {
		promoted, _ := chess.PieceFromColourAndType(piece.Colour(), move.Promotion())
		p.Set(move.Target(), promoted)
	}

	// Castling relocates the rook beside the king.
	if piece.Type() == chess.KingType {
		steps := move.Target().File() - move.Source().File()
		backrank := 7
		if p.Turn() == chess.Black {
			backrank = 0
		}
		switch steps {
		case 2:
			info.IsKingsideCastle = true
			from, _ := chess.SquareFromRankFile(backrank, 7)
			to, _ := chess.SquareFromRankFile(backrank, 5)
			p.Set(to, p.Get(from))
			p.Set(from, chess.Piece{})
		case -2:
			info.IsQueensideCastle = true
			from, _ := chess.SquareFromRankFile(backrank, 0)
			to, _ := chess.SquareFromRankFile(backrank, 3)
			p.Set(to, p.Get(from))
			p.Set(from, chess.Piece{})
		}
	}

	// The half-move clock resets on a pawn move or any capture.
	if piece.Type() == chess.PawnType || info.Captured.Valid() {
		p.SetHalfMoves(0)
	} else {
		p.SetHalfMoves(p.HalfMoves() + 1)
	}

	// A full move is complete once it is white's turn again.
	if p.Turn() == chess.White {
		p.SetPly(p.Ply() + 1)
	}

	// Clear the castling rights the mover's side can no longer back up
	// with a king and rook on their home squares.
	mover := p.Turn().Opposite()
	if p.HasKingsideCastlingRight(mover) {
		p.SetKingsideCastlingRight(mover, p.CouldHaveKingsideCastlingRight(mover))
	}
	if p.HasQueensideCastlingRight(mover) {
		p.SetQueensideCastlingRight(mover, p.CouldHaveQueensideCastlingRight(mover))
	}

	return info, nil
}

// MakeMove validates the move against the legal-move set, applies it,
// and fills in the check, checkmate, and SAN fields of the returned
// info. Illegal moves fail with "invalid argument: move".
func MakeMove(p *chess.Position, move chess.Move) (MoveInfo, error) {
	if !NewLegalMoves(p).Contains(move) {
		return MoveInfo{}, errors.Invalid("move")
	}

	before := p.Copy()
	info, err := MakeUnvalidatedMoveFast(p, move)
	if err != nil {
		return MoveInfo{}, err
	}

	info.IsCheck = IsCheck(p)
	info.IsCheckmate = IsCheckmate(p)
	info.SAN = renderSAN(before, info, DefaultSANStyle)

	return info, nil
}

// MakeMoveFast validates and applies the move without composing the SAN
// or the check flags.
func MakeMoveFast(p *chess.Position, move chess.Move) error {
	if !NewLegalMoves(p).Contains(move) {
		return errors.Invalid("move")
	}
	_, err := MakeUnvalidatedMoveFast(p, move)
	return err
}

// MakeMoveFromSAN parses a SAN string against the position and applies
// the resulting move.
func MakeMoveFromSAN(p *chess.Position, san string) (MoveInfo, error) {
	move, err := MoveFromSAN(p, san)
	if err != nil {
		return MoveInfo{}, err
	}
	return MakeMove(p, move)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
