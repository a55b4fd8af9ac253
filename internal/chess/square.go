package chess

import (
	"github.com/lgbarn/chesskit-go/internal/errors"
)

// Square is an immutable board coordinate in 0..63, where
// index = rank*8 + file, file 0 = the a-file and rank 0 = the first rank.
// The zero Square is the null square ("no such square"); only Valid()
// may be called on it.
type Square struct {
	// The index shifted by one, so that 0 means the null square.
	v byte
}

// NewSquare returns the square with the given 0..63 index.
func NewSquare(index int) (Square, error) {
	if index < 0 || index >= 64 {
		return Square{}, errors.Invalid("index")
	}
	return Square{v: byte(index) + 1}, nil
}

// SquareFromName returns the square with the given algebraic name,
// such as "e4".
func SquareFromName(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Invalid("name")
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file >= 8 || rank < 0 || rank >= 8 {
		return Square{}, errors.Invalid("name")
	}
	return Square{v: byte(rank*8+file) + 1}, nil
}

// SquareFromRankFile returns the square at the given rank and file,
// both in 0..7.
func SquareFromRankFile(rank, file int) (Square, error) {
	if rank < 0 || rank >= 8 {
		return Square{}, errors.Invalid("rank")
	}
	if file < 0 || file >= 8 {
		return Square{}, errors.Invalid("file")
	}
	return Square{v: byte(rank*8+file) + 1}, nil
}

// SquareFromX88 returns the square at the given 0x88 mailbox index.
func SquareFromX88(x88 int) (Square, error) {
	if x88 < 0 || x88 > 127 || x88&0x88 != 0 {
		return Square{}, errors.Invalid("x88_index")
	}
	rank := 7 - (x88 >> 4)
	file := x88 & 7
	return Square{v: byte(rank*8+file) + 1}, nil
}

// Valid reports whether s is a real square rather than the null square.
func (s Square) Valid() bool {
	return s.v != 0
}

// Index returns the 0..63 index of the square.
func (s Square) Index() int {
	if s.v == 0 {
		panic(errors.Logic("called Index() of the null square"))
	}
	return int(s.v) - 1
}

// Rank returns the rank of the square in 0..7, rank 0 being the first rank.
func (s Square) Rank() int {
	return s.Index() / 8
}

// File returns the file of the square in 0..7, file 0 being the a-file.
func (s Square) File() int {
	return s.Index() % 8
}

// X88 returns the 0x88 mailbox index of the square, with rank 0 at the
// bottom of the mailbox: file + 16*(7-rank).
func (s Square) X88() int {
	return s.File() + 16*(7-s.Rank())
}

// Name returns the algebraic name of the square, such as "e4".
func (s Square) Name() string {
	return string([]byte{s.FileName(), s.RankName()})
}

// FileName returns the file letter of the square, 'a'..'h'.
func (s Square) FileName() byte {
	return byte(s.File()) + 'a'
}

// RankName returns the rank digit of the square, '1'..'8'.
func (s Square) RankName() byte {
	return byte(s.Rank()) + '1'
}

// IsDark reports whether the square is dark. a1 (index 0) is dark.
func (s Square) IsDark() bool {
	return s.Index()%2 == 0
}

// IsLight reports whether the square is light.
func (s Square) IsLight() bool {
	return s.Index()%2 == 1
}

// IsBackrank reports whether the square is on the first or eighth rank.
func (s Square) IsBackrank() bool {
	r := s.Rank()
	return r == 0 || r == 7
}

// IsSeventh reports whether the square is on either side's pre-promotion
// rank, the second or the seventh.
func (s Square) IsSeventh() bool {
	r := s.Rank()
	return r == 1 || r == 6
}

// Hash returns the hash of the square, its index.
func (s Square) Hash() int {
	return s.Index()
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	return s.Name()
}

// AllSquares yields the 64 squares in index order 0..63. Generators
// enumerate in this order.
func AllSquares() []Square {
	squares := make([]Square, 64)
	for i := range squares {
		squares[i] = Square{v: byte(i) + 1}
	}
	return squares
}
