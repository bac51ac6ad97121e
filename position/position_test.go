package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fkopp/gambit/types"
)

func TestStartPositionInvariants(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantTarget())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, 32, p.Occupied().PopCount())
}

func TestLoadFenRejectsGarbage(t *testing.T) {
	_, err := LoadFen("not a fen")
	require.Error(t, err)
}

func TestMakeMoveUpdatesSideAndEpAndKey(t *testing.T) {
	p := NewStartPosition()
	keyBefore := p.Key()
	ok := p.MakeMove(CreateMove(SqE2, SqE4, DoublePawnPush))
	require.True(t, ok)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqE3, p.EnPassantTarget())
	assert.NotEqual(t, keyBefore, p.Key())
	assert.Equal(t, WhitePawn, p.PieceAt(SqE4))
	assert.Equal(t, PieceNone, p.PieceAt(SqE2))
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// Bishop on e2 pinned against the king on e1 by a rook on e8; it is
	// the only piece between them, so moving it off the e-file must be
	// rejected.
	p, err := LoadFen("4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1")
	require.NoError(t, err)
	clone := p.Clone()
	ok := clone.MakeMove(CreateMove(SqE2, SqA6, Quiet))
	assert.False(t, ok)
}

func TestCastlingMovesRook(t *testing.T) {
	p, err := LoadFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ok := p.MakeMove(CreateMove(SqE1, SqG1, Castling))
	require.True(t, ok)
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
}

func TestEnPassantCapture(t *testing.T) {
	p, err := LoadFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	ok := p.MakeMove(CreateMove(SqE5, SqD6, EnPassant))
	require.True(t, ok)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
}

func TestCastlingRightsClearedByRookMove(t *testing.T) {
	p, err := LoadFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ok := p.MakeMove(CreateMove(SqA1, SqB1, Quiet))
	require.True(t, ok)
	assert.False(t, p.CastlingRights().Has(CastlingWhiteLong))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteShort))
}
