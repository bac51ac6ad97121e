package uci

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
)

func TestUciCommand(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	result := h.Command("uci")
	assert.Contains(t, result, "id name "+engineName)
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestPositionCommandStartpos(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	h.Command("position startpos")
	assert.Equal(t, position.StartFEN, h.myPosition.Fen())
}

func TestPositionCommandFen(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.myPosition.Fen())
}

func TestPositionCommandWithMoves(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", h.myPosition.Fen())
}

func TestPositionCommandRejectsIllegalMove(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	result := h.Command("position startpos moves e2e5")
	assert.Contains(t, result, "illegal move")
}

func TestReadSearchLimits(t *testing.T) {
	l, ok := readSearchLimits(strings.Fields("go depth 6"))
	require.True(t, ok)
	assert.Equal(t, 6, l.Depth)

	l, ok = readSearchLimits(strings.Fields("go wtime 60000 btime 60000 winc 2000 binc 2000 movestogo 20"))
	require.True(t, ok)
	assert.Equal(t, 60000*time.Millisecond, l.WhiteTime)
	assert.Equal(t, 60000*time.Millisecond, l.BlackTime)
	assert.Equal(t, 2000*time.Millisecond, l.WhiteInc)
	assert.Equal(t, 2000*time.Millisecond, l.BlackInc)
	assert.Equal(t, 20, l.MovesToGo)

	l, ok = readSearchLimits(strings.Fields("go infinite"))
	require.True(t, ok)
	assert.True(t, l.Infinite)

	_, ok = readSearchLimits(strings.Fields("go depth notanumber"))
	assert.False(t, ok)
}

func TestLoopQuitsOnQuitCommand(t *testing.T) {
	buffer := new(bytes.Buffer)
	h := NewHandler(strings.NewReader("uci\nquit\n"), buffer)
	err := h.Loop(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "uciok")
}

func TestStopWithoutRunningSearchIsANoop(t *testing.T) {
	h := NewHandler(strings.NewReader(""), new(bytes.Buffer))
	h.Command("stop")
}
