package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chesskit-go/internal/errors"
)

func TestNewPiece(t *testing.T) {
	tests := []struct {
		name    string
		symbol  byte
		wantErr bool
		colour  Colour
		typ     byte
	}{
		{name: "white pawn", symbol: 'P', colour: White, typ: PawnType},
		{name: "black pawn", symbol: 'p', colour: Black, typ: PawnType},
		{name: "white king", symbol: 'K', colour: White, typ: KingType},
		{name: "black queen", symbol: 'q', colour: Black, typ: QueenType},
		{name: "white knight", symbol: 'N', colour: White, typ: KnightType},
		{name: "digit", symbol: '1', wantErr: true},
		{name: "space", symbol: ' ', wantErr: true},
		{name: "zero", symbol: 0, wantErr: true},
		{name: "letter x", symbol: 'x', wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece, err := NewPiece(tt.symbol)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPiece(%q) error = %v, wantErr %v", tt.symbol, err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidArgument) {
					t.Errorf("NewPiece(%q) error = %v, want ErrInvalidArgument", tt.symbol, err)
				}
				return
			}
			if piece.Colour() != tt.colour {
				t.Errorf("Colour() = %v, want %v", piece.Colour(), tt.colour)
			}
			if piece.Type() != tt.typ {
				t.Errorf("Type() = %c, want %c", piece.Type(), tt.typ)
			}
			if piece.Symbol() != tt.symbol {
				t.Errorf("Symbol() = %c, want %c", piece.Symbol(), tt.symbol)
			}
		})
	}
}

func TestPieceFromColourAndType(t *testing.T) {
	piece, err := PieceFromColourAndType(White, QueenType)
	if err != nil {
		t.Fatalf("PieceFromColourAndType() error = %v", err)
	}
	if piece.Symbol() != 'Q' {
		t.Errorf("Symbol() = %c, want Q", piece.Symbol())
	}

	piece, err = PieceFromColourAndType(Black, RookType)
	if err != nil {
		t.Fatalf("PieceFromColourAndType() error = %v", err)
	}
	if piece.Symbol() != 'r' {
		t.Errorf("Symbol() = %c, want r", piece.Symbol())
	}

	if _, err := PieceFromColourAndType(White, 'z'); err == nil {
		t.Error("PieceFromColourAndType(White, 'z') expected error")
	}
}

func TestPieceFullNames(t *testing.T) {
	tests := []struct {
		symbol     byte
		fullColour string
		fullType   string
	}{
		{'P', "white", "pawn"},
		{'n', "black", "knight"},
		{'B', "white", "bishop"},
		{'r', "black", "rook"},
		{'Q', "white", "queen"},
		{'k', "black", "king"},
	}

	for _, tt := range tests {
		piece, err := NewPiece(tt.symbol)
		if err != nil {
			t.Fatalf("NewPiece(%q) error = %v", tt.symbol, err)
		}
		if got := piece.FullColour(); got != tt.fullColour {
			t.Errorf("FullColour(%c) = %q, want %q", tt.symbol, got, tt.fullColour)
		}
		if got := piece.FullType(); got != tt.fullType {
			t.Errorf("FullType(%c) = %q, want %q", tt.symbol, got, tt.fullType)
		}
	}
}

func TestNullPiecePanics(t *testing.T) {
	var piece Piece
	if piece.Valid() {
		t.Fatal("zero piece should not be valid")
	}

	assertLogicPanic(t, func() { piece.Colour() })
	assertLogicPanic(t, func() { piece.Type() })
	assertLogicPanic(t, func() { piece.Symbol() })
}

func TestPieceHash(t *testing.T) {
	piece, _ := NewPiece('K')
	if piece.Hash() != 'K' {
		t.Errorf("Hash() = %d, want %d", piece.Hash(), 'K')
	}
}

// assertLogicPanic runs fn and checks that it panics with a LogicError.
func assertLogicPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Error("expected panic")
			return
		}
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, errors.ErrLogic) {
			t.Errorf("panic value = %v, want a LogicError", r)
		}
	}()
	fn()
}
