package search

import (
	"fmt"
	"strings"
	"time"

	. "github.com/fkopp/gambit/types"
)

// Result is what SearchBestMove returns: the move to play, its score, and
// enough bookkeeping to print a final "info" line.
type Result struct {
	BestMove   Move
	Score      Value
	Depth      int
	Nodes      uint64
	PV         []Move
	SearchTime time.Duration
}

// String renders a human-readable summary, not the UCI wire format (see
// uci.infoLine for that).
func (r Result) String() string {
	parts := make([]string, len(r.PV))
	for i, m := range r.PV {
		parts[i] = m.StringUci()
	}
	return fmt.Sprintf("bestmove=%s score=%d depth=%d nodes=%d pv=%s",
		r.BestMove.StringUci(), r.Score, r.Depth, r.Nodes, strings.Join(parts, " "))
}
