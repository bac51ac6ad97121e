package search

import (
	"github.com/fkopp/gambit/config"
	"github.com/fkopp/gambit/evaluator"
	"github.com/fkopp/gambit/movegen"
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

// run carries everything one iterative-deepening iteration's recursion
// needs, apart from the position itself, which is cloned at every level.
type run struct {
	ctl      *control
	pv       *triangularPV
	prevPV   []Move
	killers  killerTable
	history  historyTable
	nodes    uint64
}

func principalAt(prev []Move, ply int, isPV bool) Move {
	if !isPV || ply >= len(prev) {
		return MoveNone
	}
	return prev[ply]
}

// negamax is the recursive search core: cancellation check, PV seeding,
// depth-cutoff eval, check extension, null-move pruning, move generation
// and ordering, PVS with late-move reductions, and terminal detection.
func (r *run) negamax(p position.Position, alpha, beta Value, ply, depth int, isPV bool) Value {
	// 1. cooperative cancellation
	if r.ctl.pollNode() {
		return ValueDraw
	}

	// 2. seed the triangular PV row
	r.pv.seed(ply)

	// 3. ply cap
	if ply >= MaxDepth {
		return evaluator.Material(&p)
	}

	// 4. leaf: drop into quiescence
	if depth == 0 {
		return r.quiescence(p, alpha, beta, ply)
	}

	r.nodes++

	inCheck := p.InCheck()
	if inCheck {
		depth++
	}

	// 7. null-move pruning
	if depth >= config.Settings.Search.NullMoveMinDepth && !inCheck && ply != 0 {
		child := p.Clone()
		child.MakeNullMove()
		score := -r.negamax(child, -beta, -beta+1, ply+1, depth-3, false)
		if score >= beta {
			return beta
		}
	}

	ml := movegen.GenerateMoves(&p)
	principal := principalAt(r.prevPV, ply, isPV)
	orderMoves(&p, &ml, principal, ply, &r.killers, &r.history)

	childIsPV := isPV && ml.Len() > 0 && ml.At(0) == principal && principal != MoveNone

	movesSearched := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		child := p.Clone()
		if !child.MakeMove(m) {
			continue
		}

		var score Value
		switch {
		case movesSearched == 0:
			score = -r.negamax(child, -beta, -alpha, ply+1, depth-1, childIsPV && movesSearched == 0)
		case movesSearched >= config.Settings.Search.LmrMinMoveNumber &&
			depth >= config.Settings.Search.LmrMinDepth &&
			!inCheck && !m.IsCapture() && !m.HasPromotion():
			score = -r.negamax(child, -alpha-1, -alpha, ply+1, depth-3, false)
			if score > alpha {
				score = r.pvsSearch(child, alpha, beta, ply, depth)
			}
		default:
			score = r.pvsSearch(child, alpha, beta, ply, depth)
		}

		movesSearched++

		if r.ctl.state == interrupted {
			return ValueDraw
		}

		if score >= beta {
			if !m.IsCapture() {
				r.killers.add(ply, m)
			}
			return beta
		}
		if score > alpha {
			r.pv.update(ply, m)
			if !m.IsCapture() {
				r.history.add(p.SideToMove(), p.PieceAt(m.From()), m.To(), depth)
			}
			alpha = score
		}
	}

	// 10. terminal detection
	if movesSearched == 0 {
		if inCheck {
			return -CheckMate + Value(ply)
		}
		return ValueDraw
	}

	return alpha
}

// pvsSearch is the zero-window probe shared by the plain-PVS branch and
// the LMR-failed-high re-search: null-window recurse, then re-search at
// full width only if the probe landed strictly inside (alpha, beta).
func (r *run) pvsSearch(child position.Position, alpha, beta Value, ply, depth int) Value {
	score := -r.negamax(child, -alpha-1, -alpha, ply+1, depth-1, false)
	if score > alpha && score < beta {
		score = -r.negamax(child, -beta, -alpha, ply+1, depth-1, false)
	}
	return score
}
