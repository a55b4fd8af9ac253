package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesskit-go/internal/chess"
)

// MustMove parses a UCI move fixture, failing the test on error.
func MustMove(t *testing.T, uci string) chess.Move {
	t.Helper()
	move, err := chess.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("MoveFromUCI(%q) error = %v", uci, err)
	}
	return move
}

// MustSquare parses a square-name fixture, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	square, err := chess.SquareFromName(name)
	if err != nil {
		t.Fatalf("SquareFromName(%q) error = %v", name, err)
	}
	return square
}

// SortedUCIs returns the UCI strings of the moves in sorted order, for
// order-independent set comparison.
func SortedUCIs(moves []chess.Move) []string {
	ucis := make([]string, 0, len(moves))
	for _, move := range moves {
		ucis = append(ucis, move.UCI())
	}
	slices.Sort(ucis)
	return ucis
}
