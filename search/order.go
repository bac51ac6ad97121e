package search

import (
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

const (
	principalScore = 20000
	captureBase    = 10000
	killerPrimary  = 9000
	killerSecondary = 8000
)

// scoreMove assigns an ordering score to m, higher tried first. principal
// is the move at the previous iteration's PV for this ply, or MoveNone if
// the current path has already left the principal variation.
func scoreMove(p *position.Position, m Move, principal Move, ply int, killers *killerTable, history *historyTable) int32 {
	if m == principal {
		return principalScore
	}

	switch m.MoveType() {
	case Capture, EnPassant:
		var victimRank int
		if m.MoveType() == EnPassant {
			victimRank = int(Pawn)
		} else {
			victimRank = int(p.PieceAt(m.To()).TypeOf())
		}
		attackerRank := int(p.PieceAt(m.From()).TypeOf())
		return int32(captureBase + 100*victimRank - attackerRank)
	}

	if m == killers.primary(ply) {
		return killerPrimary
	}
	if m == killers.secondary(ply) {
		return killerSecondary
	}

	piece := p.PieceAt(m.From())
	return history.score(p.SideToMove(), piece, m.To())
}

// orderMoves scores every move in ml and sorts it by descending score.
func orderMoves(p *position.Position, ml *MoveList, principal Move, ply int, killers *killerTable, history *historyTable) {
	for i := 0; i < ml.Len(); i++ {
		ml.SetScore(i, scoreMove(p, ml.At(i), principal, ply, killers, history))
	}
	ml.SortByScore()
}
