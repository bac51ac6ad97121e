package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPop(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, BbZero, b)
}

func TestBitboardLsbMsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA8)
	b.PushSquare(SqH1)
	assert.Equal(t, SqA8, b.Lsb())
	assert.Equal(t, SqH1, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqD4)
	b.PushSquare(SqE4)
	first := b.PopLsb()
	assert.Equal(t, SqD4, first)
	assert.Equal(t, 1, b.PopCount())
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileA.Bb().PopCount())
	assert.Equal(t, 8, Rank1.Bb().PopCount())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.False(t, FileA.Bb().Has(SqB1))
}
