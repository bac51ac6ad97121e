/*
 * Grounded on moveslice/moveslice.go and movearray/movearray.go: a
 * fixed-capacity, array-backed move container (no heap allocation per
 * generated move). Capacity 256 is a safe upper bound above the known
 * maximum of 218 legal moves in any reachable position, with headroom for
 * pseudo-legal overshoot.
 */

package types

import "sort"

// MoveList is a fixed-capacity ordered sequence of moves, each carrying an
// independent ordering score (see search/order.go) used to sort the list
// before the main recursion and the quiescence loop.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	len    int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.len
}

// Clear empties the list for reuse without reallocating.
func (ml *MoveList) Clear() {
	ml.len = 0
}

// PushMove appends m with ordering score 0.
func (ml *MoveList) PushMove(m Move) {
	if ml.len >= MaxMoves {
		return
	}
	ml.moves[ml.len] = m
	ml.scores[ml.len] = 0
	ml.len++
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// ScoreAt returns the ordering score at index i.
func (ml *MoveList) ScoreAt(i int) int32 {
	return ml.scores[i]
}

// SetScore overwrites the ordering score at index i.
func (ml *MoveList) SetScore(i int, score int32) {
	ml.scores[i] = score
}

// Swap exchanges the moves (and scores) at i and j; used by sort.Interface.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
	ml.scores[i], ml.scores[j] = ml.scores[j], ml.scores[i]
}

// SortByScore orders the list by descending score, stable so that moves
// of equal score keep their generation order.
func (ml *MoveList) SortByScore() {
	// Sort via an index permutation rather than sort.Slice directly on
	// ml.moves, so the parallel scores array is reordered in lockstep.
	idx := make([]int, ml.len)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return ml.scores[idx[i]] > ml.scores[idx[j]]
	})
	var movesCopy [MaxMoves]Move
	var scoresCopy [MaxMoves]int32
	copy(movesCopy[:ml.len], ml.moves[:ml.len])
	copy(scoresCopy[:ml.len], ml.scores[:ml.len])
	for newPos, oldPos := range idx {
		ml.moves[newPos] = movesCopy[oldPos]
		ml.scores[newPos] = scoresCopy[oldPos]
	}
}

// Slice returns a plain slice copy of the moves in current order, mainly
// for tests and perft-style enumeration.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.len)
	copy(out, ml.moves[:ml.len])
	return out
}
