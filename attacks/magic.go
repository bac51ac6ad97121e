/*
 * Magic bitboards for sliding pieces (bishop, rook). Structure and
 * algorithm ("fancy" magics, Carry-Rippler subset enumeration, the
 * xorshift64star sparse-random magic search) are grounded closely on
 * FrankyGo's types/magic.go, itself taken from Stockfish; reprojected here
 * onto this engine's own Square/Bitboard types and a8=0 numbering, which
 * the magic-number search and ray-casting are agnostic to.
 */
package attacks

import (
	. "github.com/fkopp/gambit/types"
)

// magic holds the per-square magic-bitboard parameters and attack table.
type magic struct {
	mask    Bitboard
	magic   Bitboard
	attacks []Bitboard
	shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ = occ * m.magic
	return uint(occ >> m.shift)
}

var (
	bishopTable  [64 * 512]Bitboard
	rookTable    [64 * 4096]Bitboard
	bishopMagics [64]magic
	rookMagics   [64]magic
)

// slidingAttack ray-casts along the given directions from sq, stopping at
// (and including) the first occupied square. Only used at init time to
// build the reference tables and the relevant-blockers masks.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			t := s.To(d)
			if t == SqNone {
				break
			}
			attack.PushSquare(t)
			if occupied.Has(t) {
				break
			}
			s = t
		}
	}
	return attack
}

// edgesOf returns the board-edge squares not relevant to sq's blocker mask
// (a slider on the edge can still be blocked from the far edge, so only
// the edges the piece cannot see past are excluded here, matching
// Stockfish's "mask &^ edges" construction).
func edgesOf(sq Square) Bitboard {
	edges := (Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()
	edges |= (FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb()
	return edges
}

// prng is the xorshift64star PRNG used to search for magic numbers,
// ported from FrankyGo's types.PrnG (itself from Stockfish), based on
// public-domain work by Sebastiano Vigna (2014).
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces candidates with roughly 1/8th of their bits set on
// average, which converge on a valid magic far faster than uniform
// randoms.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(table []Bitboard, magics *[64]magic, directions *[4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := Square(0); sq < 64; sq++ {
		edges := edgesOf(sq)
		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == 0 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		// Carry-Rippler: enumerate every subset of mask, recording the
		// reference (ray-cast) attack set for that exact occupancy.
		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.magic = 0; ; {
				m.magic = Bitboard(rng.sparseRand())
				if ((m.magic * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}
