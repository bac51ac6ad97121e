/*
 * Package movegen enumerates pseudo-legal moves for the side to move.
 * Legality (own king not left in check) is decided later by
 * position.MakeMove, not here.
 *
 * Grounded on movegen/movegen.go's per-piece-kind generation methods,
 * cross-checked against original_source/src/engine/moves.rs for the exact
 * pawn push/double-push/promotion/en-passant preconditions and the
 * castling square/attack preconditions (that file's rank bitmask literals
 * are reprojected here onto this engine's a8=0 numbering).
 */
package movegen

import (
	"github.com/fkopp/gambit/attacks"
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves returns all pseudo-legal moves for the side to move in p.
func GenerateMoves(p *position.Position) MoveList {
	var ml MoveList
	us := p.SideToMove()
	generatePawnMoves(p, us, &ml)
	generatePieceMoves(p, us, Knight, &ml)
	generatePieceMoves(p, us, Bishop, &ml)
	generatePieceMoves(p, us, Rook, &ml)
	generatePieceMoves(p, us, Queen, &ml)
	generatePieceMoves(p, us, King, &ml)
	generateCastlingMoves(p, us, &ml)
	return ml
}

func forwardDir(us Color) Direction {
	if us == White {
		return North
	}
	return South
}

func startRank(us Color) Rank {
	if us == White {
		return Rank2
	}
	return Rank7
}

func promotionRank(us Color) Rank {
	if us == White {
		return Rank8
	}
	return Rank1
}

func pawnCaptureDirs(us Color) [2]Direction {
	if us == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func emitPawnMove(ml *MoveList, from, to Square, t MoveType, promote bool) {
	if !promote {
		ml.PushMove(CreateMove(from, to, t))
		return
	}
	for _, pt := range promotionPieces {
		ml.PushMove(CreatePromotionMove(from, to, t, pt))
	}
}

func generatePawnMoves(p *position.Position, us Color, ml *MoveList) {
	them := us.Flip()
	occ := p.Occupied()
	fwd := forwardDir(us)
	promRank := promotionRank(us)

	pawns := p.PiecesOf(us, Pawn)
	for pawns != BbZero {
		from := pawns.PopLsb()

		if single := from.To(fwd); single != SqNone && !occ.Has(single) {
			emitPawnMove(ml, from, single, Quiet, single.RankOf() == promRank)
			if from.RankOf() == startRank(us) {
				if double := single.To(fwd); double != SqNone && !occ.Has(double) {
					ml.PushMove(CreateMove(from, double, DoublePawnPush))
				}
			}
		}

		for _, d := range pawnCaptureDirs(us) {
			to := from.To(d)
			if to == SqNone {
				continue
			}
			if p.ColorBB(them).Has(to) {
				emitPawnMove(ml, from, to, Capture, to.RankOf() == promRank)
			}
		}

		ep := p.EnPassantTarget()
		if ep != SqNone && attacks.PawnAttacks(us, from).Has(ep) {
			ml.PushMove(CreateMove(from, ep, EnPassant))
		}
	}
}

func generatePieceMoves(p *position.Position, us Color, pt PieceType, ml *MoveList) {
	own := p.ColorBB(us)
	occ := p.Occupied()
	bb := p.PiecesOf(us, pt)
	for bb != BbZero {
		from := bb.PopLsb()
		var att Bitboard
		switch pt {
		case Knight:
			att = attacks.KnightAttacks(from)
		case King:
			att = attacks.KingAttacks(from)
		default:
			att = attacks.AttacksBb(pt, from, occ)
		}
		targets := att &^ own
		for targets != BbZero {
			to := targets.PopLsb()
			t := Quiet
			if occ.Has(to) {
				t = Capture
			}
			ml.PushMove(CreateMove(from, to, t))
		}
	}
}

func generateCastlingMoves(p *position.Position, us Color, ml *MoveList) {
	them := us.Flip()
	occ := p.Occupied()

	type castle struct {
		right                  CastlingRights
		kingFrom, kingTo       Square
		mustBeEmpty            []Square
		kingTraverses          []Square
	}
	var candidates []castle
	if us == White {
		candidates = []castle{
			{CastlingWhiteShort, SqE1, SqG1, []Square{SqF1, SqG1}, []Square{SqE1, SqF1, SqG1}},
			{CastlingWhiteLong, SqE1, SqC1, []Square{SqD1, SqC1, SqB1}, []Square{SqE1, SqD1, SqC1}},
		}
	} else {
		candidates = []castle{
			{CastlingBlackShort, SqE8, SqG8, []Square{SqF8, SqG8}, []Square{SqE8, SqF8, SqG8}},
			{CastlingBlackLong, SqE8, SqC8, []Square{SqD8, SqC8, SqB8}, []Square{SqE8, SqD8, SqC8}},
		}
	}

	for _, c := range candidates {
		if !p.CastlingRights().Has(c.right) {
			continue
		}
		empty := true
		for _, sq := range c.mustBeEmpty {
			if occ.Has(sq) {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		safe := true
		for _, sq := range c.kingTraverses {
			if p.IsSquareAttacked(them, sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		ml.PushMove(CreateMove(c.kingFrom, c.kingTo, Castling))
	}
}
