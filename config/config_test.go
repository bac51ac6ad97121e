package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/gambit/types"
)

func TestDefaultsMatchSpecifiedThresholds(t *testing.T) {
	d := defaults()
	assert.Equal(t, 50, d.Search.AspirationWindow)
	assert.Equal(t, 3, d.Search.NullMoveMinDepth)
	assert.Equal(t, 3, d.Search.LmrMinDepth)
	assert.Equal(t, 4, d.Search.LmrMinMoveNumber)
	assert.Equal(t, 64, d.Search.MaxDepth)
}

func TestPieceValuesMatchesMaterialTable(t *testing.T) {
	d := defaults()
	values := d.Eval.PieceValues()
	assert.Equal(t, 100, values[types.Pawn])
	assert.Equal(t, 300, values[types.Knight])
	assert.Equal(t, 350, values[types.Bishop])
	assert.Equal(t, 500, values[types.Rook])
	assert.Equal(t, 900, values[types.Queen])
	assert.Equal(t, 10000, values[types.King])
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	assert.NoError(t, Setup(""))
	Settings.Search.MaxDepth = 99
	assert.NoError(t, Setup("./config.toml"))
	assert.Equal(t, 99, Settings.Search.MaxDepth, "second Setup call must be a no-op")
	initialized = false
}
