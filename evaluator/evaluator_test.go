package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
)

func TestMaterialIsZeroAtStartingPosition(t *testing.T) {
	p := position.NewStartPosition()
	assert.Equal(t, 0, int(Material(&p)))
}

func TestMaterialFavorsSideWithExtraQueen(t *testing.T) {
	p, err := position.LoadFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, int(Material(&p)), 0)
}

func TestMaterialIsSideToMoveRelative(t *testing.T) {
	white, err := position.LoadFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	black, err := position.LoadFen("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Material(&white), -Material(&black))
}
