package search

import . "github.com/fkopp/gambit/types"

// triangularPV is the classic 64x64 principal-variation table: row ply
// holds the best line found starting at that ply, pvLength[ply] long. A
// fail-high-avoided raise of alpha at ply copies the child's row (ply+1)
// into the parent's row starting at position ply+1.
type triangularPV struct {
	table  [MaxDepth][MaxDepth]Move
	length [MaxDepth]int
}

func (t *triangularPV) seed(ply int) {
	t.length[ply] = ply
}

func (t *triangularPV) update(ply int, move Move) {
	t.table[ply][ply] = move
	for next := ply + 1; next < t.length[ply+1]; next++ {
		t.table[ply][next] = t.table[ply+1][next]
	}
	t.length[ply] = t.length[ply+1]
}

func (t *triangularPV) line() []Move {
	n := t.length[0]
	out := make([]Move, n)
	copy(out, t.table[0][:n])
	return out
}

func (t *triangularPV) moveAt(ply int) Move {
	if ply >= t.length[0] {
		return MoveNone
	}
	return t.table[0][ply]
}
