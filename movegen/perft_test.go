package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftStartPositionShallow(t *testing.T) {
	p := position.NewStartPosition()
	assert.Equal(t, uint64(1), Perft(p, 0))
	assert.Equal(t, uint64(20), Perft(p, 1))
	assert.Equal(t, uint64(400), Perft(p, 2))
	assert.Equal(t, uint64(8902), Perft(p, 3))
}

func TestPerftKiwipeteShallow(t *testing.T) {
	p, err := position.LoadFen(kiwipeteFEN)
	require.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(p, 1))
	assert.Equal(t, uint64(2039), Perft(p, 2))
}

// TestPerftStartPositionDeep checks the well-known depth-6 node count
// for the start position.
func TestPerftStartPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 6 is slow; skipped under -short")
	}
	p := position.NewStartPosition()
	assert.Equal(t, uint64(119060324), Perft(p, 6))
}

// TestPerftKiwipeteDeep checks the well-known depth-5 node count for the
// Kiwipete position.
func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 5 is slow; skipped under -short")
	}
	p, err := position.LoadFen(kiwipeteFEN)
	require.NoError(t, err)
	assert.Equal(t, uint64(193690690), Perft(p, 5))
}
