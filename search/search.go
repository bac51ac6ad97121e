/*
 * gambit - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 the gambit contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements iterative-deepening negamax with aspiration
// windows, null-move pruning, late-move reductions, principal-variation
// search, killer/history move ordering and a triangular PV table.
package search

import (
	"fmt"
	"time"

	"github.com/fkopp/gambit/config"
	"github.com/fkopp/gambit/logging"
	"github.com/fkopp/gambit/position"
	. "github.com/fkopp/gambit/types"
)

var log = logging.GetSearchLog()

// InfoFunc is called once per completed iterative-deepening iteration,
// the hook the UCI layer uses to stream "info" lines.
type InfoFunc func(Result)

// Search is a single-threaded, synchronous search engine. One instance is
// reused across a game; the killer and history tables live in a per-call
// run value, so every SearchBestMove call starts with empty tables.
type Search struct {
	st    state
	limit Limits
	stop  <-chan struct{}
}

// NewSearch returns an idle Search ready for SearchBestMove.
func NewSearch() *Search {
	return &Search{st: idle}
}

// SetSearchTiming and SetStopReceiver are callable only while the search
// is Idle, per the search-wide state machine.
func (s *Search) SetSearchTiming(limit Limits) {
	if s.st != idle {
		log.Warning("SetSearchTiming called while search is not idle")
		return
	}
	s.limit = limit
}

// SetStopReceiver installs the channel the protocol layer closes to
// request cancellation of the in-flight search.
func (s *Search) SetStopReceiver(stop <-chan struct{}) {
	if s.st != idle {
		log.Warning("SetStopReceiver called while search is not idle")
		return
	}
	s.stop = stop
}

// SearchBestMove runs iterative deepening on p until the limits installed
// by SetSearchTiming are reached, the stop channel closes, or depth runs
// out. infoFn, if non-nil, is invoked once per completed iteration.
func (s *Search) SearchBestMove(p position.Position, infoFn InfoFunc) Result {
	s.st = searching
	defer func() {
		s.st = idle
	}()

	start := time.Now()
	budget, hasDeadline := s.limit.timeBudget(p.SideToMove() == White)
	var deadline time.Time
	if hasDeadline {
		deadline = start.Add(budget)
	}
	stop := s.stop
	if stop == nil {
		stop = make(chan struct{})
	}
	ctl := newControl(deadline, hasDeadline, stop)

	maxDepth := config.Settings.Search.MaxDepth
	if s.limit.Depth > 0 && s.limit.Depth < maxDepth {
		maxDepth = s.limit.Depth
	}

	window := Value(config.Settings.Search.AspirationWindow)

	var best Result
	var prevPV []Move
	var prevScore Value

	r := &run{ctl: ctl}

	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -MaxEval, MaxEval
		if depth > 1 {
			alpha, beta = prevScore-window, prevScore+window
		}

		var score Value
		for {
			r.pv = &triangularPV{}
			r.prevPV = prevPV
			r.nodes = 0

			score = r.negamax(p, alpha, beta, 0, depth, true)

			if ctl.state == interrupted {
				break
			}
			if score <= alpha && alpha > -MaxEval {
				alpha, beta = -MaxEval, MaxEval
				continue
			}
			if score >= beta && beta < MaxEval {
				alpha, beta = -MaxEval, MaxEval
				continue
			}
			break
		}

		if ctl.state == interrupted {
			break
		}

		pv := r.pv.line()
		if len(pv) == 0 {
			break
		}

		prevPV = pv
		prevScore = score

		best = Result{
			BestMove:   pv[0],
			Score:      score,
			Depth:      depth,
			Nodes:      r.nodes,
			PV:         pv,
			SearchTime: time.Since(start),
		}
		if infoFn != nil {
			infoFn(best)
		}
	}

	if best.PV == nil {
		best.BestMove = MoveNone
	}
	best.SearchTime = time.Since(start)
	log.Info(fmt.Sprintf("search finished: %s", best.String()))
	return best
}
