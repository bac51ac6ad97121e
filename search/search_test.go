package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
)

func bestMoveAtDepth(t *testing.T, fen string, depth int) string {
	t.Helper()
	p, err := position.LoadFen(fen)
	require.NoError(t, err)

	s := NewSearch()
	s.SetSearchTiming(Limits{Depth: depth})
	result := s.SearchBestMove(p, nil)
	return result.BestMove.StringUci()
}

func TestMateInOneWhite(t *testing.T) {
	for _, depth := range []int{5, 6} {
		assert.Equal(t, "b4e7", bestMoveAtDepth(t, "4k3/8/5K2/8/1Q6/8/8/8 w - - 0 1", depth))
	}
}

func TestMateInOneBlackKingMated(t *testing.T) {
	for _, depth := range []int{5, 6} {
		assert.Equal(t, "g5d2", bestMoveAtDepth(t, "8/8/8/6Q1/8/2K5/8/3k4 w - - 0 1", depth))
	}
}

func TestWhiteForcesStalemate(t *testing.T) {
	for _, depth := range []int{5, 6} {
		assert.Equal(t, "a8g2", bestMoveAtDepth(t, "Q6K/4b3/6q1/8/8/6pp/6pk/8 w - - 0 1", depth))
	}
}

func TestZugzwangWhiteAvoidsNullMoveBlunder(t *testing.T) {
	allowed := map[string]bool{
		"f7f1": true, "f7f2": true, "f7f3": true,
		"f7f4": true, "f7f5": true, "f7f6": true,
	}
	for _, depth := range []int{5, 6} {
		move := bestMoveAtDepth(t, "6k1/5R2/6K1/8/8/8/8/8 w - - 0 1", depth)
		assert.True(t, allowed[move], "unexpected move %s at depth %d", move, depth)
	}
}

func TestBlackForcesStalemate(t *testing.T) {
	for _, depth := range []int{5, 6} {
		assert.Equal(t, "h1b7", bestMoveAtDepth(t, "8/KP6/PP6/8/8/1Q6/3B4/k6q b - - 0 1", depth))
	}
}

func TestZugzwangBlackAvoidsNullMoveBlunder(t *testing.T) {
	allowed := map[string]bool{
		"c2c3": true, "c2c4": true, "c2c5": true,
		"c2c6": true, "c2c7": true, "c2c8": true,
	}
	for _, depth := range []int{5, 6} {
		move := bestMoveAtDepth(t, "8/8/8/8/8/1k6/2r5/1K6 b - - 0 1", depth)
		assert.True(t, allowed[move], "unexpected move %s at depth %d", move, depth)
	}
}
