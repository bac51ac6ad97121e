package types

// Square is a board square, 0..63. Square 0 = a8, square 7 = h8, square 56 =
// a1, square 63 = h1 (little-endian-file, big-endian-rank).
type Square uint8

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(7 - sq/8)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(7-r)*8 + int(f))
}

// MakeSquare parses a two-character algebraic square (e.g. "e4") and
// returns SqNone if it is not well-formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step in direction d from sq, or SqNone if that
// would leave the board (including file wraparound for East/West and the
// diagonals).
func (sq Square) To(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n >= 64 {
		return SqNone
	}
	return Square(n)
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (f File) Bb() Bitboard {
	return fileBb[f]
}

func (r Rank) Bb() Bitboard {
	return rankBb[r]
}
