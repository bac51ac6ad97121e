/*
 * Package attacks precomputes per-square attack bitboards for the six
 * piece kinds.
 *
 * Leaper pieces (pawn, knight, king) get plain 64-entry tables built once
 * at init time. Slider pieces (bishop, rook; queen = bishop ∪ rook) use
 * magic bitboards (magic.go), grounded on FrankyGo's types/magic.go.
 */
package attacks

import (
	. "github.com/fkopp/gambit/types"
)

var (
	pawnAttacks   [2][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	pseudoAttacks [PieceTypeLength][64]Bitboard

	initialized bool
)

func init() {
	if initialized {
		return
	}
	initLeapers()
	initMagics(bishopTable[:], &bishopMagics, &bishopDirections)
	initMagics(rookTable[:], &rookMagics, &rookDirections)
	initialized = true
}

var (
	knightDeltas = [8]Direction{
		Direction(2*int(North) + int(East)), Direction(2*int(North) + int(West)),
		Direction(2*int(South) + int(East)), Direction(2*int(South) + int(West)),
		Direction(2*int(East) + int(North)), Direction(2*int(East) + int(South)),
		Direction(2*int(West) + int(North)), Direction(2*int(West) + int(South)),
	}
	kingDeltas = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections    = [4]Direction{North, South, East, West}
)

func initLeapers() {
	for sq := Square(0); sq < 64; sq++ {
		// Pawn attacks are the diagonal capture squares only; pushes are
		// handled by the move generator, not the attack table.
		var white, black Bitboard
		if t := sq.To(Northeast); t != SqNone {
			white.PushSquare(t)
		}
		if t := sq.To(Northwest); t != SqNone {
			white.PushSquare(t)
		}
		if t := sq.To(Southeast); t != SqNone {
			black.PushSquare(t)
		}
		if t := sq.To(Southwest); t != SqNone {
			black.PushSquare(t)
		}
		pawnAttacks[White][sq] = white
		pawnAttacks[Black][sq] = black

		var knight Bitboard
		for _, d := range knightDeltas {
			if t := knightStep(sq, d); t != SqNone {
				knight.PushSquare(t)
			}
		}
		knightAttacks[sq] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			if t := sq.To(d); t != SqNone {
				king.PushSquare(t)
			}
		}
		kingAttacks[sq] = king

		pseudoAttacks[Knight][sq] = knight
		pseudoAttacks[King][sq] = king
	}
}

// knightStep resolves one of the eight synthetic "2+1" knight deltas,
// rejecting wraparound the same way Square.To does for simple deltas by
// checking the actual file distance moved.
func knightStep(sq Square, d Direction) Square {
	n := int(sq) + int(d)
	if n < 0 || n >= 64 {
		return SqNone
	}
	t := Square(n)
	fd := int(t.FileOf()) - int(sq.FileOf())
	if fd < 0 {
		fd = -fd
	}
	rd := int(t.RankOf()) - int(sq.RankOf())
	if rd < 0 {
		rd = -rd
	}
	if (fd == 1 && rd == 2) || (fd == 2 && rd == 1) {
		return t
	}
	return SqNone
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// AttacksBb returns the bitboard of squares attacked by a piece of type pt
// (not pawn) standing on sq, given board occupancy occupied. For sliders
// this indexes the precomputed magic attack tables; for knight/king it
// returns the precomputed leaper table.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.attacks[mb.index(occupied)] | mr.attacks[mr.index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}
