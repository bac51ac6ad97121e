package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

func TestMvvLvaQueenTakesPawnBelowKnightTakesQueen(t *testing.T) {
	var killers killerTable
	var history historyTable

	p, err := position.LoadFen("4k3/8/8/3p4/8/8/4Q3/4K3 w - - 0 1")
	require.NoError(t, err)
	qxp := CreateMove(SqE2, SqD5, Capture)

	p2, err := position.LoadFen("4k3/3q4/8/8/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	nxq := CreateMove(SqE2, SqD7, Capture)

	qxpScore := scoreMove(&p, qxp, MoveNone, 0, &killers, &history)
	nxqScore := scoreMove(&p2, nxq, MoveNone, 0, &killers, &history)

	assert.Less(t, qxpScore, nxqScore)
}

func TestPrincipalMoveOutscoresEverything(t *testing.T) {
	var killers killerTable
	var history historyTable
	p, err := position.LoadFen("4k3/8/8/3p4/8/8/4Q3/4K3 w - - 0 1")
	require.NoError(t, err)

	principal := CreateMove(SqE1, SqD1, Quiet)
	score := scoreMove(&p, principal, principal, 0, &killers, &history)
	assert.Equal(t, int32(principalScore), score)
}

func TestKillerOutscoresPlainQuiet(t *testing.T) {
	var killers killerTable
	var history historyTable
	p, err := position.LoadFen("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	require.NoError(t, err)

	killerMove := CreateMove(SqE1, SqD1, Quiet)
	plainMove := CreateMove(SqE1, SqF1, Quiet)
	killers.add(0, killerMove)

	killerScore := scoreMove(&p, killerMove, MoveNone, 0, &killers, &history)
	plainScore := scoreMove(&p, plainMove, MoveNone, 0, &killers, &history)
	assert.Greater(t, killerScore, plainScore)
}
