package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// SANStyle controls optional parts of rendered SAN.
type SANStyle struct {
	// PromotionSuffix appends "=Q"-style promotion markers. The engine
	// historically omits them, so the default style leaves this off.
	PromotionSuffix bool
}

// DefaultSANStyle renders SAN the way the engine always has: no
// promotion suffix.
var DefaultSANStyle = SANStyle{}

// sanPattern is the accepted SAN shape for non-castling moves.
var sanPattern = regexp.MustCompile(`^([NBKRQ])?([a-h])?([1-8])?x?([a-h][1-8])(=[NBRQ])?(\+|#)?$`)

// SAN renders the SAN of a legal move in the given position without
// applying it.
func SAN(p *chess.Position, move chess.Move) (string, error) {
	return StyledSAN(p, move, DefaultSANStyle)
}

// StyledSAN renders the SAN of a legal move with the given style.
func StyledSAN(p *chess.Position, move chess.Move, style SANStyle) (string, error) {
	if !NewLegalMoves(p).Contains(move) {
		return "", errors.Invalid("move")
	}
	speculative := p.Copy()
	info, err := MakeUnvalidatedMoveFast(speculative, move)
	if err != nil {
		return "", err
	}
	info.IsCheck = IsCheck(speculative)
	info.IsCheckmate = IsCheckmate(speculative)
	return renderSAN(p, info, style), nil
}

// renderSAN composes the SAN of an applied move. The position is the one
// the move started from; the info carries the applied-move facts.
func renderSAN(before *chess.Position, info MoveInfo, style SANStyle) string {
	var sb strings.Builder

	switch {
	case info.IsKingsideCastle:
		sb.WriteString("O-O")
	case info.IsQueensideCastle:
		sb.WriteString("O-O-O")
	default:
		// Pawn moves carry no piece letter and no generic disambiguator;
		// the capture branch below contributes the source file instead.
		if info.Piece.Type() != chess.PawnType {
			sb.WriteByte(upperByte(info.Piece.Type()))
			sb.WriteString(disambiguator(before, info))
		}

		if info.Captured.Valid() {
			if info.Piece.Type() == chess.PawnType {
				sb.WriteByte(info.Move.Source().FileName())
			}
			sb.WriteByte('x')
		}

		sb.WriteString(info.Move.Target().Name())

		if style.PromotionSuffix && info.Move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(upperByte(info.Move.Promotion()))
		}
	}

	if info.IsCheckmate {
		sb.WriteByte('#')
	} else if info.IsCheck {
		sb.WriteByte('+')
	}

	if info.IsEnpassant {
		sb.WriteString(" (e.p.)")
	}

	return sb.String()
}

// disambiguator returns the source-square fragment needed to tell the
// move apart from the other legal moves of the same piece type to the
// same target: nothing, the file letter, the rank digit, or the full
// square name.
func disambiguator(before *chess.Position, info MoveInfo) string {
	move := info.Move

	isAmbiguous := false
	sameRank := false
	sameFile := false
	for _, m := range legalMoves(before) {
		if before.Get(m.Source()) != info.Piece ||
			m.Source() == move.Source() || m.Target() != move.Target() {
			continue
		}
		isAmbiguous = true
		if m.Source().Rank() == move.Source().Rank() {
			sameRank = true
		}
		if m.Source().File() == move.Source().File() {
			sameFile = true
		}
		if sameRank && sameFile {
			break
		}
	}

	switch {
	case sameRank && sameFile:
		return move.Source().Name()
	case sameFile:
		return string(move.Source().RankName())
	case sameRank || isAmbiguous:
		return string(move.Source().FileName())
	default:
		return ""
	}
}

// MoveFromSAN parses a SAN string against the position's legal moves.
// Exactly one legal move must match; zero or several matches fail with
// "invalid argument: san".
func MoveFromSAN(p *chess.Position, san string) (chess.Move, error) {
	legal := legalMoves(p)

	if san == "O-O" || san == "O-O-O" {
		rank := 0
		if p.Turn() == chess.Black {
			rank = 7
		}
		targetFile := 6
		if san == "O-O-O" {
			targetFile = 2
		}
		source, _ := chess.SquareFromRankFile(rank, 4)
		target, _ := chess.SquareFromRankFile(rank, targetFile)
		move := chess.NewMove(source, target)
		for _, m := range legal {
			if m == move {
				return move, nil
			}
		}
		return chess.Move{}, errors.Invalid("san")
	}

	matches := sanPattern.FindStringSubmatch(san)
	if matches == nil {
		return chess.Move{}, errors.Invalid("san")
	}

	pieceType := byte(chess.PawnType)
	if matches[1] != "" {
		pieceType = lowerByte(matches[1][0])
	}
	piece, err := chess.PieceFromColourAndType(p.Turn(), pieceType)
	if err != nil {
		return chess.Move{}, errors.Invalid("san")
	}

	target, err := chess.SquareFromName(matches[4])
	if err != nil {
		return chess.Move{}, errors.Invalid("san")
	}

	file := -1
	if matches[2] != "" {
		file = int(matches[2][0] - 'a')
	}
	rank := -1
	if matches[3] != "" {
		rank = int(matches[3][0] - '1')
	}

	var promotion byte
	if matches[5] != "" {
		promotion = lowerByte(matches[5][1])
	}

	var found chess.Move
	var count int
	for _, m := range legal {
		if m.Promotion() != promotion {
			continue
		}
		if p.Get(m.Source()) != piece || m.Target() != target {
			continue
		}
		if file != -1 && file != m.Source().File() {
			continue
		}
		if rank != -1 && rank != m.Source().Rank() {
			continue
		}
		found = m
		count++
	}

	if count != 1 {
		return chess.Move{}, errors.Invalid("san")
	}
	return found, nil
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
