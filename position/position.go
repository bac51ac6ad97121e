/*
 * Package position implements the board representation: twelve piece
 * bitboards, side to move, optional en-passant target, castling rights,
 * and an incrementally maintained Zobrist key, with make-move/
 * make-null-move and the square-attacked query the move generator and
 * search depend on.
 *
 * Grounded on position/position.go's field layout and FEN field order,
 * cross-checked against original_source/src/engine/game.rs for the
 * castling-rights bit values. Deviates from the teacher on one point by
 * design: moves are applied by cloning before recursion rather than
 * make/unmake-with-undo, so MakeMove mutates its receiver directly and a
 * caller that wants to keep the parent position calls Clone first (see
 * search/negamax.go, which does exactly that for every move tried).
 */
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fkopp/gambit/attacks"
	. "github.com/fkopp/gambit/types"
)

// Position is the complete state needed to generate moves and evaluate a
// chess position. It is a small value type (no pointers, no slices) and
// is cheap to copy by value.
type Position struct {
	pieceBB    [PieceLength]Bitboard // indexed by Piece, PieceNone slot unused
	byColor    [2]Bitboard
	occupied   Bitboard
	board      [64]Piece
	kingSq     [2]Square
	sideToMove Color
	epTarget   Square
	castling   CastlingRights
	key        Key
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	// ErrInvalidFen is returned by LoadFen for malformed FEN input.
	ErrInvalidFen = errors.New("invalid fen")
)

// NewStartPosition returns the standard starting position.
func NewStartPosition() Position {
	p, err := LoadFen(StartFEN)
	if err != nil {
		panic("start FEN must always parse: " + err.Error())
	}
	return p
}

// LoadFen deserialises a position from FEN, or from the literal token
// "startpos".
func LoadFen(fen string) (Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == "startpos" {
		fen = StartFEN
	}
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("%w: need at least 4 fields, got %d", ErrInvalidFen, len(fields))
	}

	var p Position
	for i := range p.pieceBB {
		p.pieceBB[i] = BbZero
	}
	for sq := range p.board {
		p.board[sq] = PieceNone
	}

	// Field 1: piece placement, ranks 8 -> 1.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: piece placement must have 8 ranks", ErrInvalidFen)
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			pc := pieceFromFenChar(byte(c))
			if pc == PieceNone {
				return Position{}, fmt.Errorf("%w: bad piece char %q", ErrInvalidFen, c)
			}
			if !file.IsValid() {
				return Position{}, fmt.Errorf("%w: rank overflow", ErrInvalidFen)
			}
			sq := SquareOf(file, rank)
			p.placePiece(pc, sq)
			file++
		}
	}

	// Field 2: side to move.
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.key ^= zobrist.sideToMove
	default:
		return Position{}, fmt.Errorf("%w: bad side to move %q", ErrInvalidFen, fields[1])
	}

	// Field 3: castling rights.
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling |= CastlingWhiteShort
			case 'Q':
				p.castling |= CastlingWhiteLong
			case 'k':
				p.castling |= CastlingBlackShort
			case 'q':
				p.castling |= CastlingBlackLong
			default:
				return Position{}, fmt.Errorf("%w: bad castling field %q", ErrInvalidFen, fields[2])
			}
		}
	}
	p.key ^= zobrist.castlingRights[p.castling]

	// Field 4: en-passant target.
	p.epTarget = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return Position{}, fmt.Errorf("%w: bad en-passant square %q", ErrInvalidFen, fields[3])
		}
		p.epTarget = sq
		p.key ^= zobrist.enPassantFile[sq.FileOf()]
	}

	// Fields 5/6 (halfmove clock, fullmove number) are ignored by the core.
	return p, nil
}

func pieceFromFenChar(c byte) Piece {
	color := White
	lc := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lc = c + ('a' - 'A')
	}
	var pt PieceType
	switch lc {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return PieceNone
	}
	return MakePiece(color, pt)
}

// Clone returns an independent copy of p. Position has no pointers or
// slices, so this is an ordinary value copy.
func (p Position) Clone() Position {
	return p
}

// Fen renders p as a FEN string. The halfmove clock and fullmove number
// are not tracked fields on Position, so they are emitted as fixed
// placeholders "0 1".
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}

	sb.WriteString(" ")
	if p.sideToMove == White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}

	sb.WriteString(" ")
	sb.WriteString(p.castling.String())

	sb.WriteString(" ")
	if p.epTarget == SqNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.epTarget.String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Key returns the current incremental Zobrist key.
func (p *Position) Key() Key { return p.key }

// CastlingRights returns the current castling-rights bitmask.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantTarget returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantTarget() Square { return p.epTarget }

// PieceAt returns the piece (or PieceNone) occupying sq.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Occupied returns the bitboard of all occupied squares.
func (p *Position) Occupied() Bitboard { return p.occupied }

// PiecesOf returns the bitboard of pieces of color c and type pt.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.pieceBB[MakePiece(c, pt)]
}

// ColorBB returns the bitboard of all of color c's pieces.
func (p *Position) ColorBB(c Color) Bitboard { return p.byColor[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSq[c] }

func (p *Position) placePiece(pc Piece, sq Square) {
	p.pieceBB[pc].PushSquare(sq)
	p.byColor[pc.ColorOf()].PushSquare(sq)
	p.occupied.PushSquare(sq)
	p.board[sq] = pc
	p.key ^= zobrist.pieces[pc][sq]
	if pc.TypeOf() == King {
		p.kingSq[pc.ColorOf()] = sq
	}
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.pieceBB[pc].PopSquare(sq)
	p.byColor[pc.ColorOf()].PopSquare(sq)
	p.occupied.PopSquare(sq)
	p.board[sq] = PieceNone
	p.key ^= zobrist.pieces[pc][sq]
}

// IsSquareAttacked reports whether side attacks sq in the current
// position. Leaper attacks are tested via their symmetric reverse
// (the attackers of sq are found at the squares an opposite-facing piece
// on sq would itself attack); slider attacks are tested via the magic
// attack tables against the current occupancy.
func (p *Position) IsSquareAttacked(side Color, sq Square) bool {
	if attacks.PawnAttacks(side.Flip(), sq)&p.PiecesOf(side, Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.PiecesOf(side, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.PiecesOf(side, King) != 0 {
		return true
	}
	bishopsQueens := p.PiecesOf(side, Bishop) | p.PiecesOf(side, Queen)
	if attacks.AttacksBb(Bishop, sq, p.occupied)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.PiecesOf(side, Rook) | p.PiecesOf(side, Queen)
	if attacks.AttacksBb(Rook, sq, p.occupied)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.sideToMove.Flip(), p.kingSq[p.sideToMove])
}

// MakeMove applies m to the receiver and reports whether the move was
// legal (the mover's own king is not left in check). On an illegal move
// the receiver is left in a mutated but unused state — callers always
// operate on a Clone() and discard it when MakeMove returns false.
func (p *Position) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	us := p.sideToMove
	them := us.Flip()
	moving := p.board[from]

	switch m.MoveType() {
	case EnPassant:
		capSq := epCapturedSquare(to, us)
		p.removePiece(p.board[capSq], capSq)
	case Capture:
		p.removePiece(p.board[to], to)
	}

	p.removePiece(moving, from)
	placed := moving
	if m.HasPromotion() {
		placed = MakePiece(us, m.PromotionType())
	}
	p.placePiece(placed, to)

	if m.MoveType() == Castling {
		rookFrom, rookTo := castlingRookSquares(to, us)
		rook := p.board[rookFrom]
		p.removePiece(rook, rookFrom)
		p.placePiece(rook, rookTo)
	}

	if p.epTarget != SqNone {
		p.key ^= zobrist.enPassantFile[p.epTarget.FileOf()]
	}
	if m.MoveType() == DoublePawnPush {
		p.epTarget = jumpedSquare(from, us)
		p.key ^= zobrist.enPassantFile[p.epTarget.FileOf()]
	} else {
		p.epTarget = SqNone
	}

	oldRights := p.castling
	p.updateCastlingRights(from, to)
	if p.castling != oldRights {
		p.key ^= zobrist.castlingRights[oldRights]
		p.key ^= zobrist.castlingRights[p.castling]
	}

	p.key ^= zobrist.sideToMove
	p.sideToMove = them

	return !p.IsSquareAttacked(them, p.kingSq[us])
}

// MakeNullMove flips the side to move, clears the en-passant target, and
// updates the Zobrist key; the caller must never call this while the side
// to move is in check.
func (p *Position) MakeNullMove() {
	if p.epTarget != SqNone {
		p.key ^= zobrist.enPassantFile[p.epTarget.FileOf()]
		p.epTarget = SqNone
	}
	p.key ^= zobrist.sideToMove
	p.sideToMove = p.sideToMove.Flip()
}

func (p *Position) updateCastlingRights(from, to Square) {
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SqA1:
			p.castling = p.castling.Remove(CastlingWhiteLong)
		case SqH1:
			p.castling = p.castling.Remove(CastlingWhiteShort)
		case SqE1:
			p.castling = p.castling.Remove(CastlingWhiteShort | CastlingWhiteLong)
		case SqA8:
			p.castling = p.castling.Remove(CastlingBlackLong)
		case SqH8:
			p.castling = p.castling.Remove(CastlingBlackShort)
		case SqE8:
			p.castling = p.castling.Remove(CastlingBlackShort | CastlingBlackLong)
		}
	}
}

// epCapturedSquare returns the square of the pawn taken by an en-passant
// capture landing on to, for the given mover color.
func epCapturedSquare(to Square, us Color) Square {
	if us == White {
		return to.To(South)
	}
	return to.To(North)
}

// jumpedSquare returns the square a double pawn push from `from` jumps
// over, for the given mover color.
func jumpedSquare(from Square, us Color) Square {
	if us == White {
		return from.To(North)
	}
	return from.To(South)
}

// castlingRookSquares returns the rook's (from, to) squares for a castling
// move whose king lands on `to`.
func castlingRookSquares(kingTo Square, us Color) (Square, Square) {
	if us == White {
		if kingTo == SqG1 {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kingTo == SqG8 {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// String renders a simple ASCII board for debugging.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(p.board[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h  stm=")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" castling=")
	sb.WriteString(p.castling.String())
	sb.WriteString(" ep=")
	sb.WriteString(p.epTarget.String())
	sb.WriteString(" key=")
	sb.WriteString(strconv.FormatUint(uint64(p.key), 16))
	return sb.String()
}
