/*
 * Grounded on position/zobrist.go's struct shape and initZobrist loop
 * order, with a plain splitmix64-style generator in place of FrankyGo's
 * types.Random (same role: seed a fixed table of independent 64-bit keys
 * exactly once at package init).
 */
package position

import (
	. "github.com/fkopp/gambit/types"
)

type zobristTables struct {
	pieces         [PieceLength][64]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [8]Key
	sideToMove     Key
}

var zobrist zobristTables

func init() {
	r := newSplitMix64(1070372)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := Square(0); sq < 64; sq++ {
			zobrist.pieces[pc][sq] = Key(r.next())
		}
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		zobrist.castlingRights[cr] = Key(r.next())
	}
	for f := FileA; f <= FileH; f++ {
		zobrist.enPassantFile[f] = Key(r.next())
	}
	zobrist.sideToMove = Key(r.next())
}

// splitMix64 is a small, fast, good-enough PRNG for one-off table seeding;
// it needs none of xorshift's warm-up and has no correctness requirement
// beyond "looks independent," which is all Zobrist seeding ever needs.
type splitMix64 struct{ s uint64 }

func newSplitMix64(seed uint64) *splitMix64 { return &splitMix64{s: seed} }

func (r *splitMix64) next() uint64 {
	r.s += 0x9E3779B97F4A7C15
	z := r.s
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
