/*
 * Package evaluator implements the leaf static evaluation used by the
 * search: material only. Piece-square tables, mobility, king safety, pawn
 * structure etc. are deliberately left out — the only part of FrankyGo's
 * evaluator/evaluator.go carried over here is the material term, stripped
 * of everything else.
 */
package evaluator

import (
	"github.com/fkopp/gambit/config"
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

// Material returns the side-to-move-relative material score of p: the sum
// of (piece count * piece value) for White minus the same for Black,
// multiplied by the side-to-move's sign, so a higher score always favors
// the side about to move (negamax convention).
func Material(p *position.Position) Value {
	var score int
	values := config.Settings.Eval.PieceValues()
	for pt := Pawn; pt <= Queen; pt++ {
		white := p.PiecesOf(White, pt).PopCount()
		black := p.PiecesOf(Black, pt).PopCount()
		score += (white - black) * values[pt]
	}
	return Value(score * p.SideToMove().Sign())
}
