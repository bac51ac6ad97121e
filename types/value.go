package types

// Value is a centipawn evaluation score, negamax convention: higher is
// always better for the side to move at that node.
type Value int32

const (
	// CheckMate is the checkmate sentinel; a mate in k plies scores
	// CheckMate-k so shorter mates sort higher than longer ones.
	CheckMate Value = 49000

	// MaxEval is the aspiration-window clamp: no search score may exceed
	// this in absolute value.
	MaxEval Value = 50000

	// ValueDraw is the static evaluation of a drawn/stalemated position.
	ValueDraw Value = 0
)

// IsValid reports whether v is within the sentinel-bounded legal range.
func (v Value) IsValid() bool {
	return v >= -MaxEval && v <= MaxEval
}
