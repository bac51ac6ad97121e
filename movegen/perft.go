/*
 * Perft ("performance test") is the standard correctness oracle for move
 * generators: count leaf nodes reachable by legal moves to a fixed depth
 * and compare against known-correct totals (section 8's test fixtures).
 */
package movegen

import "github.com/fkopp/gambit/position"

// Perft counts the number of legal move sequences of length depth from p.
func Perft(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml := GenerateMoves(&p)
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		child := p.Clone()
		if !child.MakeMove(ml.At(i)) {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}
