package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNumbering(t *testing.T) {
	assert.Equal(t, SqA8, Square(0))
	assert.Equal(t, SqH8, Square(7))
	assert.Equal(t, SqA1, Square(56))
	assert.Equal(t, SqH1, Square(63))
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
	assert.Equal(t, FileH, SqH1.FileOf())
	assert.Equal(t, Rank1, SqH1.RankOf())
}

func TestMakeSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a8", "h8", "a1", "h1", "e4", "d5"} {
		sq := MakeSquare(s)
		assert.True(t, sq.IsValid())
		assert.Equal(t, s, sq.String())
	}
	assert.Equal(t, SqNone, MakeSquare("z9"))
}

func TestSquareToDirection(t *testing.T) {
	assert.Equal(t, SqE5, MakeSquare("e4").To(North))
	assert.Equal(t, SqE3, MakeSquare("e4").To(South))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(East))
}
