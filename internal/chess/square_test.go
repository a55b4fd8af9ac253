package chess

import (
	"testing"
)

func TestSquareProjections(t *testing.T) {
	tests := []struct {
		name  string
		index int
		rank  int
		file  int
		x88   int
	}{
		{name: "a1", index: 0, rank: 0, file: 0, x88: 112},
		{name: "h1", index: 7, rank: 0, file: 7, x88: 119},
		{name: "e4", index: 28, rank: 3, file: 4, x88: 68},
		{name: "a8", index: 56, rank: 7, file: 0, x88: 0},
		{name: "h8", index: 63, rank: 7, file: 7, x88: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			square, err := SquareFromName(tt.name)
			if err != nil {
				t.Fatalf("SquareFromName(%q) error = %v", tt.name, err)
			}
			if square.Index() != tt.index {
				t.Errorf("Index() = %d, want %d", square.Index(), tt.index)
			}
			if square.Rank() != tt.rank {
				t.Errorf("Rank() = %d, want %d", square.Rank(), tt.rank)
			}
			if square.File() != tt.file {
				t.Errorf("File() = %d, want %d", square.File(), tt.file)
			}
			if square.X88() != tt.x88 {
				t.Errorf("X88() = %d, want %d", square.X88(), tt.x88)
			}
			if square.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", square.Name(), tt.name)
			}

			byIndex, err := NewSquare(tt.index)
			if err != nil || byIndex != square {
				t.Errorf("NewSquare(%d) = %v, %v; want %v", tt.index, byIndex, err, square)
			}
			byX88, err := SquareFromX88(tt.x88)
			if err != nil || byX88 != square {
				t.Errorf("SquareFromX88(%d) = %v, %v; want %v", tt.x88, byX88, err, square)
			}
			byRankFile, err := SquareFromRankFile(tt.rank, tt.file)
			if err != nil || byRankFile != square {
				t.Errorf("SquareFromRankFile(%d, %d) = %v, %v; want %v", tt.rank, tt.file, byRankFile, err, square)
			}
		})
	}
}

func TestSquareConstructorsReject(t *testing.T) {
	if _, err := NewSquare(-1); err == nil {
		t.Error("NewSquare(-1) expected error")
	}
	if _, err := NewSquare(64); err == nil {
		t.Error("NewSquare(64) expected error")
	}
	if _, err := SquareFromName("e9"); err == nil {
		t.Error(`SquareFromName("e9") expected error`)
	}
	if _, err := SquareFromName("i4"); err == nil {
		t.Error(`SquareFromName("i4") expected error`)
	}
	if _, err := SquareFromName("e"); err == nil {
		t.Error(`SquareFromName("e") expected error`)
	}
	if _, err := SquareFromRankFile(8, 0); err == nil {
		t.Error("SquareFromRankFile(8, 0) expected error")
	}
	if _, err := SquareFromRankFile(0, -1); err == nil {
		t.Error("SquareFromRankFile(0, -1) expected error")
	}
	// Sentinel 0x88 slots are off the board.
	if _, err := SquareFromX88(8); err == nil {
		t.Error("SquareFromX88(8) expected error")
	}
	if _, err := SquareFromX88(136); err == nil {
		t.Error("SquareFromX88(136) expected error")
	}
}

func TestSquareShades(t *testing.T) {
	a1, _ := SquareFromName("a1")
	if !a1.IsDark() || a1.IsLight() {
		t.Error("a1 should be dark")
	}
	b1, _ := SquareFromName("b1")
	if !b1.IsLight() || b1.IsDark() {
		t.Error("b1 should be light")
	}
}

func TestSquareRanks(t *testing.T) {
	tests := []struct {
		name     string
		backrank bool
		seventh  bool
	}{
		{"a1", true, false},
		{"e8", true, false},
		{"c2", false, true},
		{"g7", false, true},
		{"d4", false, false},
	}

	for _, tt := range tests {
		square, _ := SquareFromName(tt.name)
		if square.IsBackrank() != tt.backrank {
			t.Errorf("%s: IsBackrank() = %v, want %v", tt.name, square.IsBackrank(), tt.backrank)
		}
		if square.IsSeventh() != tt.seventh {
			t.Errorf("%s: IsSeventh() = %v, want %v", tt.name, square.IsSeventh(), tt.seventh)
		}
	}
}

func TestNullSquarePanics(t *testing.T) {
	var square Square
	if square.Valid() {
		t.Fatal("zero square should not be valid")
	}
	assertLogicPanic(t, func() { square.Index() })
	assertLogicPanic(t, func() { square.Rank() })
	assertLogicPanic(t, func() { square.Name() })
}

func TestAllSquares(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d, want 64", len(squares))
	}
	for i, square := range squares {
		if square.Index() != i {
			t.Fatalf("AllSquares()[%d].Index() = %d", i, square.Index())
		}
	}
}
