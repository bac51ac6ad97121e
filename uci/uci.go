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

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	gologging "github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/gambit/logging"
	"github.com/fkopp/gambit/movegen"
	"github.com/fkopp/gambit/position"
	"github.com/fkopp/gambit/search"
	. "github.com/fkopp/gambit/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog()

const engineName = "gambit"
const engineAuthor = "the gambit contributors"

// Handler owns the engine-side state of one UCI session: the current
// position, the search engine, and the i/o streams. Create one with
// NewHandler and drive it with Loop.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	mySearch   *search.Search
	myPosition position.Position
	uciLog     *gologging.Logger

	stopCh chan struct{}
}

// NewHandler creates a Handler reading from in and writing to out.
func NewHandler(in io.Reader, out io.Writer) *Handler {
	return &Handler{
		InIo:       bufio.NewScanner(in),
		OutIo:      bufio.NewWriter(out),
		mySearch:   search.NewSearch(),
		myPosition: position.NewStartPosition(),
		uciLog:     logging.GetUciLog(),
	}
}

// Loop runs the read-dispatch loop until "quit" or EOF. One goroutine reads
// lines and a second dispatches them; the two are joined with an errgroup
// so that "quit" (or EOF) brings the whole session down with one exit code.
// "go" starts the search on a separate goroutine that is not part of the
// errgroup, and "quit" does not stop a search that is still running.
func (u *Handler) Loop(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	g.Go(func() error {
		defer close(lines)
		for u.InIo.Scan() {
			select {
			case lines <- u.InIo.Text():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return u.InIo.Err()
	})

	g.Go(func() error {
		for {
			select {
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if u.handleReceivedCommand(line) {
					return nil
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return g.Wait()
}

// Command runs a single line through the dispatcher and returns whatever
// it wrote, for tests and debugging.
func (u *Handler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one line. It returns true when the
// session should end (the "quit" command or EOF handling upstream).
func (u *Handler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	u.uciLog.Info("<< " + cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.myPosition = position.NewStartPosition()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	default:
		log.Warningf("invalid command: %s", cmd)
	}
	return false
}

func (u *Handler) uciCommand() {
	u.send("id name " + engineName)
	u.send("id author " + engineAuthor)
	u.send("uciok")
}

func (u *Handler) stopCommand() {
	if u.stopCh != nil {
		close(u.stopCh)
		u.stopCh = nil
	}
}

// positionCommand sets u.myPosition from "position [startpos|fen ...] [moves ...]".
// Earlier move tokens are applied even if a later one is rejected; the
// position is left as it was before the offending token.
func (u *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.sendInfoString(out.Sprintf("position malformed: %v", tokens))
		return
	}
	i := 1
	switch tokens[1] {
	case "startpos":
		u.myPosition = position.NewStartPosition()
		i = 2
	case "fen":
		i = 2
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		p, err := position.LoadFen(strings.TrimSpace(fenb.String()))
		if err != nil {
			u.sendInfoString(out.Sprintf("position malformed fen: %s", err))
			return
		}
		u.myPosition = p
	default:
		u.sendInfoString(out.Sprintf("position malformed: %v", tokens))
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := parseUciMove(&u.myPosition, tokens[i])
			if !m.IsValid() {
				u.sendInfoString(out.Sprintf("position: illegal move %s", tokens[i]))
				return
			}
			child := u.myPosition.Clone()
			if !child.MakeMove(m) {
				u.sendInfoString(out.Sprintf("position: illegal move %s", tokens[i]))
				return
			}
			u.myPosition = child
		}
	}
}

// parseUciMove matches a long-algebraic move string against the
// pseudo-legal moves generated for p, returning MoveNone if none matches.
func parseUciMove(p *position.Position, s string) Move {
	ml := movegen.GenerateMoves(p)
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).StringUci() == s {
			return ml.At(i)
		}
	}
	return MoveNone
}

func (u *Handler) goCommand(tokens []string) {
	limits, ok := readSearchLimits(tokens)
	if !ok {
		u.sendInfoString(out.Sprintf("go malformed: %v", tokens))
		return
	}
	u.stopCh = make(chan struct{})
	u.mySearch.SetSearchTiming(limits)
	u.mySearch.SetStopReceiver(u.stopCh)

	p := u.myPosition
	go func() {
		result := u.mySearch.SearchBestMove(p, u.infoLine)
		u.send(bestMoveLine(result))
	}()
}

func (u *Handler) infoLine(r search.Result) {
	var pv strings.Builder
	for i, m := range r.PV {
		if i > 0 {
			pv.WriteString(" ")
		}
		pv.WriteString(m.StringUci())
	}
	nps := uint64(0)
	if r.SearchTime > 0 {
		nps = r.Nodes * uint64(time.Second) / uint64(r.SearchTime)
	}
	u.send(out.Sprintf("info score cp %d depth %d nodes %d nps %d pv %s",
		int(r.Score), r.Depth, r.Nodes, nps, pv.String()))
}

func bestMoveLine(r search.Result) string {
	if r.BestMove == MoveNone || !r.BestMove.IsValid() {
		return "bestmove (none)"
	}
	return "bestmove " + r.BestMove.StringUci()
}

func readSearchLimits(tokens []string) (search.Limits, bool) {
	var l search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			l.Infinite = true
			i++
		case "depth":
			i++
			if i >= len(tokens) {
				return l, false
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				return l, false
			}
			l.Depth = d
			i++
		case "nodes":
			i++
			if i >= len(tokens) {
				return l, false
			}
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.Nodes = n
			i++
		case "movetime":
			i++
			if i >= len(tokens) {
				return l, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.MoveTime = time.Duration(ms) * time.Millisecond
			i++
		case "wtime":
			i++
			if i >= len(tokens) {
				return l, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.WhiteTime = time.Duration(ms) * time.Millisecond
			i++
		case "btime":
			i++
			if i >= len(tokens) {
				return l, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.BlackTime = time.Duration(ms) * time.Millisecond
			i++
		case "winc":
			i++
			if i >= len(tokens) {
				return l, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			if i >= len(tokens) {
				return l, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return l, false
			}
			l.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		case "movestogo":
			i++
			if i >= len(tokens) {
				return l, false
			}
			n, err := strconv.Atoi(tokens[i])
			if err != nil {
				return l, false
			}
			l.MovesToGo = n
			i++
		default:
			i++
		}
	}
	return l, true
}

func (u *Handler) sendInfoString(s string) {
	log.Warning(s)
	u.send(out.Sprintf("info string %s", s))
}

func (u *Handler) send(s string) {
	u.uciLog.Info(">> " + s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
