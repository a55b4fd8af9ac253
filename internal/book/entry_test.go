package book

import (
	"testing"

	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/engine"
	"github.com/lgbarn/chesskit-go/internal/hashing"
	"github.com/lgbarn/chesskit-go/internal/testutil"
)

func TestNewEntryKeyMatchesPositionHash(t *testing.T) {
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	entry := NewEntry(p, testutil.MustMove(t, "e2e4"), 100, 0)
	testutil.AssertEqual(t, entry.Key, hashing.Position(p))
	testutil.AssertEqual(t, entry.Key, uint64(0x463b96181691fc9c))
	testutil.AssertEqual(t, entry.Weight, uint16(100))
	testutil.AssertEqual(t, entry.Learn, uint32(0))
}

func TestEntryMoveRoundTrip(t *testing.T) {
	tests := []string{
		"e2e4",
		"g8f6",
		"a7a8q",
		"h2h1n",
		"b7b8r",
		"c7c8b",
	}

	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	for _, uci := range tests {
		t.Run(uci, func(t *testing.T) {
			move := testutil.MustMove(t, uci)
			entry := NewEntry(p, move, 1, 0)

			decoded, err := entry.Move()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, decoded, move)
		})
	}
}

func TestEntryMovePacking(t *testing.T) {
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	// e2e4: target e4 (file 4, rank 3), source e2 (file 4, rank 1).
	entry := NewEntry(p, testutil.MustMove(t, "e2e4"), 1, 0)
	want := uint16(4) | uint16(3)<<3 | uint16(4)<<6 | uint16(1)<<9
	testutil.AssertEqual(t, entry.RawMove, want)

	// A queen promotion carries code 4 in bits 12-14.
	promo := NewEntry(p, testutil.MustMove(t, "e7e8q"), 1, 0)
	testutil.AssertEqual(t, promo.RawMove>>12&0x7, uint16(4))
}

func TestEntryMoveRewritesCastling(t *testing.T) {
	tests := []struct {
		name string
		rook string
		king string
	}{
		{name: "white kingside", rook: "e1h1", king: "e1g1"},
		{name: "white queenside", rook: "e1a1", king: "e1c1"},
		{name: "black kingside", rook: "e8h8", king: "e8g8"},
		{name: "black queenside", rook: "e8a8", king: "e8c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Polyglot books record castling as the rook-square target.
			move := testutil.MustMove(t, tt.rook)
			raw := uint16(move.Target().File()) |
				uint16(move.Target().Rank())<<3 |
				uint16(move.Source().File())<<6 |
				uint16(move.Source().Rank())<<9

			entry := Entry{RawMove: raw}
			decoded, err := entry.Move()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, decoded, testutil.MustMove(t, tt.king))
		})
	}
}

func TestEntryMoveDecodesPlainSquares(t *testing.T) {
	// d2d4 must not be mistaken for a castling encoding.
	entry := Entry{RawMove: uint16(3) | uint16(3)<<3 | uint16(3)<<6 | uint16(1)<<9}
	decoded, err := entry.Move()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, decoded, testutil.MustMove(t, "d2d4"))
	testutil.AssertEqual(t, decoded, chess.NewMove(decoded.Source(), decoded.Target()))
}
