package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

func moveStrings(ml MoveList) map[string]bool {
	out := make(map[string]bool, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[ml.At(i).StringUci()] = true
	}
	return out
}

func TestPawnDoublePushAndPromotion(t *testing.T) {
	p, err := position.LoadFen("k7/4P3/8/8/8/8/3P4/4K3 w - - 0 1")
	require.NoError(t, err)
	ml := GenerateMoves(&p)
	moves := moveStrings(ml)
	assert.True(t, moves["d2d4"])
	assert.True(t, moves["e7e8q"])
	assert.True(t, moves["e7e8r"])
	assert.True(t, moves["e7e8b"])
	assert.True(t, moves["e7e8n"])
}

func TestEnPassantGenerated(t *testing.T) {
	p, err := position.LoadFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	ml := GenerateMoves(&p)
	moves := moveStrings(ml)
	assert.True(t, moves["e5d6"])
}

func TestCastlingBlockedByCheckIsNotGenerated(t *testing.T) {
	// Black rook on f8 attacks the whole f-file, including f1, which the
	// white king must cross to castle short.
	p, err := position.LoadFen("k4r2/8/8/8/8/8/8/R3K2R w K - 0 1")
	require.NoError(t, err)
	ml := GenerateMoves(&p)
	moves := moveStrings(ml)
	assert.False(t, moves["e1g1"])
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	p, err := position.LoadFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ml := GenerateMoves(&p)
	moves := moveStrings(ml)
	assert.True(t, moves["e1g1"])
	assert.True(t, moves["e1c1"])
}
