package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, DoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, DoublePawnPush, m.MoveType())
	assert.False(t, m.HasPromotion())
	assert.Equal(t, "e2e4", m.StringUci())
	assert.True(t, m.IsValid())
}

func TestCreatePromotionMove(t *testing.T) {
	m := CreatePromotionMove(SqE7, SqE8, Quiet, Queen)
	assert.True(t, m.HasPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}

func TestMoveListSortByScore(t *testing.T) {
	var ml MoveList
	ml.PushMove(CreateMove(SqA2, SqA3, Quiet))
	ml.PushMove(CreateMove(SqB2, SqB4, DoublePawnPush))
	ml.PushMove(CreateMove(SqC2, SqC3, Quiet))
	ml.SetScore(0, 10)
	ml.SetScore(1, 9000)
	ml.SetScore(2, 500)
	ml.SortByScore()
	assert.Equal(t, int32(9000), ml.ScoreAt(0))
	assert.Equal(t, "b2b4", ml.At(0).StringUci())
	assert.Equal(t, int32(500), ml.ScoreAt(1))
	assert.Equal(t, int32(10), ml.ScoreAt(2))
}
