// Package engine implements the rules of chess on top of the core types:
// FEN I/O, pseudo-legal and legal move generation, attacker enumeration,
// move application with SAN, and the game-state predicates.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Validation patterns for the non-board FEN fields.
var (
	castlingPattern  = regexp.MustCompile(`^(KQ?k?q?|Qk?q?|kq?|q|-)$`)
	enPassantPattern = regexp.MustCompile(`^(-|[a-h][36])$`)
	halfMovePattern  = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	fullMovePattern  = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// PositionFromFEN returns a new position parsed from a FEN string.
func PositionFromFEN(fen string) (*chess.Position, error) {
	p := &chess.Position{}
	if err := SetFEN(p, fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFEN replaces the position with the one encoded by the FEN string.
// The parse is atomic: on failure the position is left unchanged.
func SetFEN(p *chess.Position, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return errors.Invalid("fen")
	}

	if err := validateBoardField(parts[0]); err != nil {
		return err
	}
	if parts[1] != "w" && parts[1] != "b" {
		return errors.Invalid("fen")
	}
	if !castlingPattern.MatchString(parts[2]) {
		return errors.Invalid("fen")
	}
	if !enPassantPattern.MatchString(parts[3]) {
		return errors.Invalid("fen")
	}
	if !halfMovePattern.MatchString(parts[4]) {
		return errors.Invalid("fen")
	}
	if !fullMovePattern.MatchString(parts[5]) {
		return errors.Invalid("fen")
	}

	// All fields validated; build into a fresh position so that a
	// failure above never leaves p partially mutated.
	var next chess.Position
	next.ClearBoard()

	x88 := 0
	for i := 0; i < len(parts[0]); i++ {
		c := parts[0][i]
		switch {
		case c == '/':
			x88 += 8
		case c >= '1' && c <= '8':
			x88 += int(c - '0')
		default:
			piece, err := chess.NewPiece(c)
			if err != nil {
				return errors.Invalid("fen")
			}
			square, err := chess.SquareFromX88(x88)
			if err != nil {
				return errors.Invalid("fen")
			}
			next.Set(square, piece)
			x88++
		}
	}

	turn, _ := chess.ParseColour(parts[1][0])
	if err := next.SetTurn(turn); err != nil {
		return err
	}

	next.SetKingsideCastlingRight(chess.White, strings.ContainsRune(parts[2], 'K'))
	next.SetQueensideCastlingRight(chess.White, strings.ContainsRune(parts[2], 'Q'))
	next.SetKingsideCastlingRight(chess.Black, strings.ContainsRune(parts[2], 'k'))
	next.SetQueensideCastlingRight(chess.Black, strings.ContainsRune(parts[2], 'q'))

	if err := next.SetEPFile(parts[3][0]); err != nil {
		return err
	}

	halfMoves, err := strconv.Atoi(parts[4])
	if err != nil {
		return errors.Invalid("fen")
	}
	if err := next.SetHalfMoves(halfMoves); err != nil {
		return err
	}

	ply, err := strconv.Atoi(parts[5])
	if err != nil {
		return errors.Invalid("fen")
	}
	if err := next.SetPly(ply); err != nil {
		return err
	}

	*p = next
	return nil
}

// validateBoardField checks the piece-placement field: eight ranks, each
// summing to exactly eight squares, with no consecutive digits.
func validateBoardField(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return errors.Invalid("fen")
	}
	for _, row := range rows {
		fieldSum := 0
		previousWasNumber := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				if previousWasNumber {
					return errors.Invalid("fen")
				}
				fieldSum += int(c - '0')
				previousWasNumber = true
				continue
			}
			switch c {
			case 'p', 'n', 'b', 'r', 'q', 'k', 'P', 'N', 'B', 'R', 'Q', 'K':
				fieldSum++
				previousWasNumber = false
			default:
				return errors.Invalid("fen")
			}
		}
		if fieldSum != 8 {
			return errors.Invalid("fen")
		}
	}
	return nil
}

// FEN renders the position as a six-field FEN string.
func FEN(p *chess.Position) string {
	var sb strings.Builder

	writeBoardField(&sb, p)
	sb.WriteByte(' ')
	sb.WriteByte(p.Turn().Char())
	sb.WriteByte(' ')
	writeCastlingField(&sb, p)
	sb.WriteByte(' ')
	writeEnPassantField(&sb, p)
	fmt.Fprintf(&sb, " %d %d", p.HalfMoves(), p.Ply())

	return sb.String()
}

// writeBoardField writes the piece placement, rank 8 down to rank 1,
// collapsing runs of empty squares to a digit.
func writeBoardField(sb *strings.Builder, p *chess.Position) {
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			square, _ := chess.SquareFromRankFile(rank, file)
			piece := p.Get(square)
			if !piece.Valid() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingField writes the castling availability, "KQkq" subset or "-".
func writeCastlingField(sb *strings.Builder, p *chess.Position) {
	any := false
	if p.HasKingsideCastlingRight(chess.White) {
		sb.WriteByte('K')
		any = true
	}
	if p.HasQueensideCastlingRight(chess.White) {
		sb.WriteByte('Q')
		any = true
	}
	if p.HasKingsideCastlingRight(chess.Black) {
		sb.WriteByte('k')
		any = true
	}
	if p.HasQueensideCastlingRight(chess.Black) {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}

// writeEnPassantField writes the derived en-passant square name or "-".
// The real-capture check is deliberately not applied here.
func writeEnPassantField(sb *strings.Builder, p *chess.Position) {
	if square := p.EPSquare(); square.Valid() {
		sb.WriteString(square.Name())
	} else {
		sb.WriteByte('-')
	}
}
