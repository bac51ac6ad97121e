package search

import (
	"github.com/fkopp/gambit/evaluator"
	"github.com/fkopp/gambit/movegen"
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

// quiescence extends the search past the nominal horizon along capturing
// lines only, until the position is quiet. No depth limit: the finite
// supply of captures on the board terminates the recursion.
func (r *run) quiescence(p position.Position, alpha, beta Value, ply int) Value {
	if r.ctl.pollNode() {
		return ValueDraw
	}

	standPat := evaluator.Material(&p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	ml := movegen.GenerateMoves(&p)
	orderMoves(&p, &ml, MoveNone, ply, &r.killers, &r.history)

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !m.IsCapture() {
			continue
		}
		child := p.Clone()
		if !child.MakeMove(m) {
			continue
		}
		score := -r.quiescence(child, -beta, -alpha, ply+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
