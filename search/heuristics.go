package search

import . "github.com/fkopp/gambit/types"

// killerTable holds, per ply, the two most recent quiet moves that caused a
// beta cutoff there. killers[ply][0] is the primary, [1] the secondary.
type killerTable struct {
	killers [MaxDepth][2]Move
}

func (k *killerTable) add(ply int, move Move) {
	if k.killers[ply][0] == move {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = move
}

func (k *killerTable) primary(ply int) Move   { return k.killers[ply][0] }
func (k *killerTable) secondary(ply int) Move { return k.killers[ply][1] }

func (k *killerTable) clear() {
	*k = killerTable{}
}

// historyTable accumulates cutoff weight for quiet moves, indexed by
// color, moving piece and destination square.
type historyTable struct {
	scores [ColorLength][PieceLength][SqLength]int32
}

func (h *historyTable) add(side Color, piece Piece, to Square, depth int) {
	h.scores[side][piece][to] += int32(depth * depth)
}

func (h *historyTable) score(side Color, piece Piece, to Square) int32 {
	return h.scores[side][piece][to]
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
