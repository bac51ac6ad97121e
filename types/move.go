/*
 * Grounded on pkg/types/move.go's packed-move bit layout (CreateMove,
 * From/To/MoveType/PromotionType shifting). Deviates from the teacher in
 * one respect: the teacher also packs a 16-bit sort value into the high
 * half of the same uint32. History scores accumulate by depth*depth for
 * the whole lifetime of one search and are not bounded the way a
 * evaluation-range score is, so folding them into a fixed 16-bit field
 * risks silent wraparound; the sort value here is instead carried
 * alongside the Move by the move orderer (search/order.go), never inside
 * the packed word itself.
 */

package types

import "strings"

// MoveType is the kind of a move, independent of whether it carries a
// promotion (promotion is an orthogonal, optional field on Move).
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	DoublePawnPush
	EnPassant
	Castling
	MoveTypeNone
)

func (t MoveType) IsValid() bool { return t < MoveTypeNone }

func (t MoveType) String() string {
	switch t {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case DoublePawnPush:
		return "double-pawn-push"
	case EnPassant:
		return "en-passant"
	case Castling:
		return "castling"
	default:
		return "none"
	}
}

// Move is a compact encoding of a pseudo-legal chess move:
//
//	bits 0-5:   to square
//	bits 6-11:  from square
//	bits 12-14: move type
//	bit  15:    has-promotion flag
//	bits 16-17: promotion piece type (Knight=0 .. Queen=3, offset by Knight)
type Move uint32

const (
	MoveNone Move = 0xFFFFFFFF

	toShift       uint = 0
	fromShift     uint = 6
	typeShift     uint = 12
	hasPromoShift uint = 15
	promShift     uint = 16

	squareMask Move = 0x3F
	typeMask   Move = 0x7
	promMask   Move = 0x3
)

// CreateMove returns an encoded non-promotion move.
func CreateMove(from, to Square, t MoveType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(t)<<typeShift
}

// CreatePromotionMove returns an encoded move that promotes to promType
// (one of Knight, Bishop, Rook, Queen). t is normally Quiet or Capture.
func CreatePromotionMove(from, to Square, t MoveType, promType PieceType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(t)<<typeShift |
		Move(1)<<hasPromoShift | Move(promType-Knight)<<promShift
}

func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & typeMask)
}

// HasPromotion reports whether this move promotes a pawn.
func (m Move) HasPromotion() bool {
	return (m>>hasPromoShift)&1 == 1
}

// PromotionType returns the promotion piece type; callers must check
// HasPromotion first, it is meaningless otherwise.
func (m Move) PromotionType() PieceType {
	return PieceType((m>>promShift)&promMask) + Knight
}

// IsCapture reports whether the move's type removes an enemy piece
// (ordinary capture or en passant).
func (m Move) IsCapture() bool {
	t := m.MoveType()
	return t == Capture || t == EnPassant
}

// IsValid reports whether m has valid squares, type and (if present)
// promotion piece. MoveNone is never valid.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || !m.MoveType().IsValid() {
		return false
	}
	if m.HasPromotion() && !m.PromotionType().IsValid() {
		return false
	}
	return true
}

// StringUci renders the move in UCI long-algebraic form, e.g. "e2e4" or
// "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.HasPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return "Move{" + m.StringUci() + " " + m.MoveType().String() + "}"
}
