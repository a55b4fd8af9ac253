package hashing

import (
	"testing"

	"github.com/lgbarn/chesskit-go/internal/chess"
	"github.com/lgbarn/chesskit-go/internal/engine"
	"github.com/lgbarn/chesskit-go/internal/testutil"
)

// applyUCIs replays a move sequence from the starting position.
func applyUCIs(t *testing.T, ucis ...string) *chess.Position {
	t.Helper()
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatalf("PositionFromFEN() error = %v", err)
	}
	for _, uci := range ucis {
		if _, err := engine.MakeMove(p, testutil.MustMove(t, uci)); err != nil {
			t.Fatalf("MakeMove(%s) error = %v", uci, err)
		}
	}
	return p
}

// TestPolyglotReferenceKeys checks the hash against the reference keys
// published with the Polyglot book format.
func TestPolyglotReferenceKeys(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  uint64
	}{
		{
			name: "starting position",
			want: 0x463b96181691fc9c,
		},
		{
			name:  "1.e4 with unusable ep square",
			moves: []string{"e2e4"},
			want:  0x823c9b50fd114196,
		},
		{
			name:  "1.e4 d5",
			moves: []string{"e2e4", "d7d5"},
			want:  0x0756b94461c50fb0,
		},
		{
			name:  "1.e4 d5 2.e5",
			moves: []string{"e2e4", "d7d5", "e4e5"},
			want:  0x662fafb965db29d4,
		},
		{
			name:  "1.e4 d5 2.e5 f5 with capturable ep pawn",
			moves: []string{"e2e4", "d7d5", "e4e5", "f7f5"},
			want:  0x22a48b5a8e47ff78,
		},
		{
			name:  "king move drops both white castling bits",
			moves: []string{"e2e4", "d7d5", "e4e5", "f7f5", "e1e2"},
			want:  0x652a607ca3f242c1,
		},
		{
			name:  "both kings moved",
			moves: []string{"e2e4", "d7d5", "e4e5", "f7f5", "e1e2", "e8f7"},
			want:  0x00fdd303c946bdd9,
		},
		{
			name:  "flank pawn race",
			moves: []string{"a2a4", "b7b5", "h2h4", "b5b4", "c2c4"},
			want:  0x3c8123ea7b067637,
		},
		{
			name:  "rook lift after capture",
			moves: []string{"a2a4", "b7b5", "h2h4", "b5b4", "c2c4", "b4c3", "a1a3"},
			want:  0x5c3f9b829b279560,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := applyUCIs(t, tt.moves...)
			if got := Position(p); got != tt.want {
				t.Errorf("Position() = %#016x, want %#016x", got, tt.want)
			}
		})
	}
}

func TestHashIsPathIndependent(t *testing.T) {
	// The same position reached through different move orders hashes
	// identically.
	a := applyUCIs(t, "g1f3", "g8f6", "b1c3", "b8c6")
	b := applyUCIs(t, "b1c3", "b8c6", "g1f3", "g8f6")
	testutil.AssertEqual(t, Position(a), Position(b))
}

func TestHashDependsOnTurn(t *testing.T) {
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	white := Position(p)
	p.ToggleTurn()
	black := Position(p)
	testutil.AssertTrue(t, white != black, "turn must change the hash")
	testutil.AssertEqual(t, white^black, Table[780])
}

func TestHashDependsOnCastlingRights(t *testing.T) {
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	full := Position(p)
	p.SetKingsideCastlingRight(chess.White, false)
	without := Position(p)
	testutil.AssertEqual(t, full^without, Table[768])
}

func TestUnrealEPFileIsNotHashed(t *testing.T) {
	// After 1.e4 the ep square e3 exists but no black pawn can take it,
	// so the ep file must not contribute.
	p := applyUCIs(t, "e2e4")
	withEP := Position(p)
	p.SetEPFile(0)
	withoutEP := Position(p)
	testutil.AssertEqual(t, withEP, withoutEP)
}

func BenchmarkPosition(b *testing.B) {
	p, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Position(p)
	}
}
