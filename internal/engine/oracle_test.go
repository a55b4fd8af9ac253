package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chesskit-go/internal/testutil"
)

// TestLegalMovesAgainstDragontooth cross-checks the legal-move set
// against an independent magic-bitboard move generator.
func TestLegalMovesAgainstDragontooth(t *testing.T) {
	tests := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"r1bqkb1r/pppppppp/2n2n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R w KQkq - 4 3",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/P7/8/8/8/8/8/7K w - - 0 1",
		"8/8/8/2k5/8/4K3/8/8 w - - 0 1",
		"4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1",
		"r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			p := mustPosition(t, fen)
			got := testutil.SortedUCIs(NewLegalMoves(p).Moves())

			board := dragontoothmg.ParseFen(fen)
			oracle := make([]string, 0, 48)
			for _, move := range board.GenerateLegalMoves() {
				oracle = append(oracle, move.String())
			}

			want := testutil.SortedUCIs(mustMoves(t, oracle))
			testutil.AssertEqual(t, got, want)
		})
	}
}
