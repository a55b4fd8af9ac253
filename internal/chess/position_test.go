package chess

import (
	"testing"
)

// get is a test shorthand reading a square by name.
func get(t *testing.T, p *Position, name string) Piece {
	t.Helper()
	square, err := SquareFromName(name)
	if err != nil {
		t.Fatalf("SquareFromName(%q) error = %v", name, err)
	}
	return p.Get(square)
}

// put places a piece by square name and symbol.
func put(t *testing.T, p *Position, name string, symbol byte) {
	t.Helper()
	square, err := SquareFromName(name)
	if err != nil {
		t.Fatalf("SquareFromName(%q) error = %v", name, err)
	}
	piece, err := NewPiece(symbol)
	if err != nil {
		t.Fatalf("NewPiece(%q) error = %v", symbol, err)
	}
	p.Set(square, piece)
}

func TestReset(t *testing.T) {
	p := NewPosition()

	tests := []struct {
		square string
		symbol byte
	}{
		{"a1", 'R'}, {"b1", 'N'}, {"c1", 'B'}, {"d1", 'Q'},
		{"e1", 'K'}, {"f1", 'B'}, {"g1", 'N'}, {"h1", 'R'},
		{"e2", 'P'}, {"a7", 'p'}, {"e8", 'k'}, {"d8", 'q'},
		{"a8", 'r'}, {"g8", 'n'},
	}
	for _, tt := range tests {
		piece := get(t, p, tt.square)
		if !piece.Valid() || piece.Symbol() != tt.symbol {
			t.Errorf("%s = %v, want %c", tt.square, piece, tt.symbol)
		}
	}

	if piece := get(t, p, "e4"); piece.Valid() {
		t.Errorf("e4 = %v, want empty", piece)
	}

	if p.Turn() != White {
		t.Errorf("Turn() = %v, want white", p.Turn())
	}
	if p.HalfMoves() != 0 || p.Ply() != 1 {
		t.Errorf("counters = %d, %d, want 0, 1", p.HalfMoves(), p.Ply())
	}
	for _, colour := range []Colour{White, Black} {
		if !p.HasKingsideCastlingRight(colour) || !p.HasQueensideCastlingRight(colour) {
			t.Errorf("missing castling right for %v", colour)
		}
	}
	if p.EPFile() != 0 {
		t.Errorf("EPFile() = %c, want none", p.EPFile())
	}
}

func TestClearBoard(t *testing.T) {
	p := NewPosition()
	p.ClearBoard()
	for _, square := range AllSquares() {
		if p.Get(square).Valid() {
			t.Fatalf("square %s not cleared", square.Name())
		}
	}
}

func TestSettersReject(t *testing.T) {
	p := NewPosition()

	if err := p.SetTurn(Colour(7)); err == nil {
		t.Error("SetTurn(7) expected error")
	}
	if err := p.SetEPFile('i'); err == nil {
		t.Error("SetEPFile('i') expected error")
	}
	if err := p.SetEPFile('1'); err == nil {
		t.Error("SetEPFile('1') expected error")
	}
	if err := p.SetHalfMoves(-1); err == nil {
		t.Error("SetHalfMoves(-1) expected error")
	}
	if err := p.SetPly(0); err == nil {
		t.Error("SetPly(0) expected error")
	}
}

func TestSetEPFile(t *testing.T) {
	p := NewPosition()

	if err := p.SetEPFile('d'); err != nil {
		t.Fatalf("SetEPFile('d') error = %v", err)
	}
	if p.EPFile() != 'd' {
		t.Errorf("EPFile() = %c, want d", p.EPFile())
	}

	// Both 0 and '-' clear the file.
	if err := p.SetEPFile('-'); err != nil {
		t.Fatalf("SetEPFile('-') error = %v", err)
	}
	if p.EPFile() != 0 {
		t.Errorf("EPFile() = %c, want none", p.EPFile())
	}
	p.SetEPFile('d')
	if err := p.SetEPFile(0); err != nil {
		t.Fatalf("SetEPFile(0) error = %v", err)
	}
	if p.EPFile() != 0 {
		t.Errorf("EPFile() = %c, want none", p.EPFile())
	}
}

func TestEPSquare(t *testing.T) {
	// White to move with a black pawn on d5 that just advanced.
	p := &Position{}
	p.Reset()
	p.ClearBoard()
	put(t, p, "d5", 'p')
	put(t, p, "e1", 'K')
	put(t, p, "e8", 'k')
	p.SetEPFile('d')

	square := p.EPSquare()
	if !square.Valid() || square.Name() != "d6" {
		t.Fatalf("EPSquare() = %v, want d6", square)
	}

	// No capturer in place: the real variant yields nothing.
	if real := p.RealEPSquare(); real.Valid() {
		t.Errorf("RealEPSquare() = %v, want null", real)
	}

	// A white pawn on e5 stands ready to capture.
	put(t, p, "e5", 'P')
	real := p.RealEPSquare()
	if !real.Valid() || real.Name() != "d6" {
		t.Errorf("RealEPSquare() = %v, want d6", real)
	}

	// The arrival square must be empty.
	put(t, p, "d6", 'n')
	if square := p.EPSquare(); square.Valid() {
		t.Errorf("EPSquare() with blocked arrival = %v, want null", square)
	}
}

func TestEPSquareWithoutPawn(t *testing.T) {
	p := &Position{}
	p.Reset()
	p.ClearBoard()
	put(t, p, "e1", 'K')
	put(t, p, "e8", 'k')
	p.SetEPFile('d')

	// No pawn on the intermediate rank: no en-passant square.
	if square := p.EPSquare(); square.Valid() {
		t.Errorf("EPSquare() = %v, want null", square)
	}
}

func TestCouldHaveCastlingRights(t *testing.T) {
	p := NewPosition()
	if !p.CouldHaveKingsideCastlingRight(White) ||
		!p.CouldHaveQueensideCastlingRight(White) ||
		!p.CouldHaveKingsideCastlingRight(Black) ||
		!p.CouldHaveQueensideCastlingRight(Black) {
		t.Fatal("initial position backs up all castling rights")
	}

	// Remove the white h-rook.
	square, _ := SquareFromName("h1")
	p.Set(square, Piece{})
	if p.CouldHaveKingsideCastlingRight(White) {
		t.Error("no h1 rook: white kingside right has no backing")
	}
	if !p.CouldHaveQueensideCastlingRight(White) {
		t.Error("white queenside right should still be backed")
	}
}

func TestKing(t *testing.T) {
	p := NewPosition()
	if king := p.King(White); !king.Valid() || king.Name() != "e1" {
		t.Errorf("King(White) = %v, want e1", king)
	}
	if king := p.King(Black); !king.Valid() || king.Name() != "e8" {
		t.Errorf("King(Black) = %v, want e8", king)
	}

	p.ClearBoard()
	if king := p.King(White); king.Valid() {
		t.Errorf("King(White) on empty board = %v, want null", king)
	}
}

func TestCopyAndEqual(t *testing.T) {
	p := NewPosition()
	clone := p.Copy()

	if !p.Equal(clone) {
		t.Fatal("copy should equal the original")
	}

	// Mutating the clone must not affect the original.
	square, _ := SquareFromName("e2")
	clone.Set(square, Piece{})
	if p.Equal(clone) {
		t.Error("positions differing on e2 should not be equal")
	}
	if !get(t, p, "e2").Valid() {
		t.Error("original lost its e2 pawn")
	}

	// Same board but different turn.
	clone = p.Copy()
	clone.ToggleTurn()
	if p.Equal(clone) {
		t.Error("positions differing on turn should not be equal")
	}
}
