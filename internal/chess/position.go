package chess

import (
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// Position is a chess position: the 0x88 board plus turn, castling
// rights, en-passant file, half-move clock, and full-move number.
// Positions are plain value types; copying one is struct assignment,
// and == compares every field including the full 128-slot board.
type Position struct {
	// The 0x88 mailbox. Slots with bit 0x88 set are sentinel and stay
	// the null piece.
	board [128]Piece

	turn Colour

	// The en-passant file letter 'a'..'h', or 0 for none. The rank is
	// determined by the turn, so only the file is stored.
	epFile byte

	halfMoves int
	ply       int

	whiteCastleKingside  bool
	whiteCastleQueenside bool
	blackCastleKingside  bool
	blackCastleQueenside bool
}

// NewPosition returns a position holding the standard initial array.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// ClearBoard removes every piece from the board. The other properties
// are left untouched.
func (p *Position) ClearBoard() {
	p.board = [128]Piece{}
}

// Reset sets up the standard initial array: white to move, all castling
// rights, no en-passant file, half-move clock 0, full-move number 1.
func (p *Position) Reset() {
	p.ClearBoard()

	p.turn = White
	p.epFile = 0
	p.halfMoves = 0
	p.ply = 1
	p.whiteCastleKingside = true
	p.whiteCastleQueenside = true
	p.blackCastleKingside = true
	p.blackCastleQueenside = true

	backrank := []byte{RookType, KnightType, BishopType, QueenType, KingType, BishopType, KnightType, RookType}
	for file, typ := range backrank {
		p.board[112+file] = Piece{symbol: upper(typ)}
		p.board[96+file] = Piece{symbol: 'P'}
		p.board[file] = Piece{symbol: typ}
		p.board[16+file] = Piece{symbol: 'p'}
	}
}

// Get returns the piece on the given square, or the null piece if the
// square is empty.
func (p *Position) Get(square Square) Piece {
	return p.board[square.X88()]
}

// Set puts a piece on the given square. The null piece clears the square.
func (p *Position) Set(square Square, piece Piece) {
	p.board[square.X88()] = piece
}

// Turn returns the side to move.
func (p *Position) Turn() Colour {
	return p.turn
}

// SetTurn sets the side to move.
func (p *Position) SetTurn(turn Colour) error {
	if turn != White && turn != Black {
		return errors.Invalid("turn")
	}
	p.turn = turn
	return nil
}

// ToggleTurn flips the side to move.
func (p *Position) ToggleTurn() {
	p.turn = p.turn.Opposite()
}

// EPFile returns the en-passant file letter 'a'..'h', or 0 for none.
func (p *Position) EPFile() byte {
	return p.epFile
}

// SetEPFile sets the en-passant file. Accepted values are the file
// letters 'a'..'h' and, meaning none, 0 or '-'.
func (p *Position) SetEPFile(file byte) error {
	switch {
	case file >= 'a' && file <= 'h':
		p.epFile = file
	case file == 0 || file == '-':
		p.epFile = 0
	default:
		return errors.Invalid("ep_file")
	}
	return nil
}

// EPSquare returns the en-passant arrival square derived from the
// en-passant file and the turn. The square must be empty and the passed
// pawn must actually sit on the intermediate rank; otherwise the null
// square is returned.
func (p *Position) EPSquare() Square {
	if p.epFile == 0 {
		return Square{}
	}

	rank, pawnRank := 5, 4
	if p.turn == Black {
		rank, pawnRank = 2, 3
	}
	file := int(p.epFile - 'a')

	square, _ := SquareFromRankFile(rank, file)
	if p.Get(square).Valid() {
		return Square{}
	}

	pawnSquare, _ := SquareFromRankFile(pawnRank, file)
	pawn := p.Get(pawnSquare)
	if !pawn.Valid() || pawn.Type() != PawnType {
		return Square{}
	}

	return square
}

// RealEPSquare returns the en-passant square only if a pawn of the side
// to move stands diagonally adjacent, ready to capture. Only this
// variant contributes to the position hash.
func (p *Position) RealEPSquare() Square {
	square := p.EPSquare()
	if !square.Valid() {
		return Square{}
	}

	for _, offset := range []int{17, 15} {
		if p.turn == Black {
			offset = -offset
		}
		x88 := square.X88() + offset
		if x88&0x88 != 0 {
			continue
		}
		piece := p.board[x88]
		if piece.Valid() && piece.Type() == PawnType && piece.Colour() == p.turn {
			return square
		}
	}

	return Square{}
}

// HalfMoves returns the half-move clock.
func (p *Position) HalfMoves() int {
	return p.halfMoves
}

// SetHalfMoves sets the half-move clock.
func (p *Position) SetHalfMoves(halfMoves int) error {
	if halfMoves < 0 {
		return errors.Invalid("half_moves")
	}
	p.halfMoves = halfMoves
	return nil
}

// Ply returns the full-move number. It starts at 1 and is incremented
// after every black move.
func (p *Position) Ply() int {
	return p.ply
}

// SetPly sets the full-move number.
func (p *Position) SetPly(ply int) error {
	if ply < 1 {
		return errors.Invalid("ply")
	}
	p.ply = ply
	return nil
}

// HasKingsideCastlingRight reports whether the given colour still has
// its kingside castling right. The flag may be true even when the king
// or rook has moved; make-move clears broken rights.
func (p *Position) HasKingsideCastlingRight(colour Colour) bool {
	if colour == White {
		return p.whiteCastleKingside
	}
	return p.blackCastleKingside
}

// HasQueensideCastlingRight reports whether the given colour still has
// its queenside castling right.
func (p *Position) HasQueensideCastlingRight(colour Colour) bool {
	if colour == White {
		return p.whiteCastleQueenside
	}
	return p.blackCastleQueenside
}

// SetKingsideCastlingRight sets the kingside castling right of the given
// colour.
func (p *Position) SetKingsideCastlingRight(colour Colour, castle bool) {
	if colour == White {
		p.whiteCastleKingside = castle
	} else {
		p.blackCastleKingside = castle
	}
}

// SetQueensideCastlingRight sets the queenside castling right of the
// given colour.
func (p *Position) SetQueensideCastlingRight(colour Colour, castle bool) {
	if colour == White {
		p.whiteCastleQueenside = castle
	} else {
		p.blackCastleQueenside = castle
	}
}

// CouldHaveKingsideCastlingRight reports whether the given colour's king
// and h-rook stand on their home squares.
func (p *Position) CouldHaveKingsideCastlingRight(colour Colour) bool {
	rank := 0
	if colour == Black {
		rank = 7
	}
	king, _ := PieceFromColourAndType(colour, KingType)
	rook, _ := PieceFromColourAndType(colour, RookType)
	kingSquare, _ := SquareFromRankFile(rank, 4)
	rookSquare, _ := SquareFromRankFile(rank, 7)
	return p.Get(kingSquare) == king && p.Get(rookSquare) == rook
}

// CouldHaveQueensideCastlingRight reports whether the given colour's
// king and a-rook stand on their home squares.
func (p *Position) CouldHaveQueensideCastlingRight(colour Colour) bool {
	rank := 0
	if colour == Black {
		rank = 7
	}
	king, _ := PieceFromColourAndType(colour, KingType)
	rook, _ := PieceFromColourAndType(colour, RookType)
	kingSquare, _ := SquareFromRankFile(rank, 4)
	rookSquare, _ := SquareFromRankFile(rank, 0)
	return p.Get(kingSquare) == king && p.Get(rookSquare) == rook
}

// King returns the square of the given colour's king, or the null square
// if the board holds none.
func (p *Position) King(colour Colour) Square {
	king, _ := PieceFromColourAndType(colour, KingType)
	for _, square := range AllSquares() {
		if p.Get(square) == king {
			return square
		}
	}
	return Square{}
}

// Copy returns a copy of the position.
func (p *Position) Copy() *Position {
	clone := *p
	return &clone
}

// Equal reports whether two positions hold the same board, turn,
// castling rights, en-passant file, and counters.
func (p *Position) Equal(other *Position) bool {
	return *p == *other
}
