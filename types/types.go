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

// Package types contains the board representation primitives shared by the
// move generator, position model and search: squares, bitboards, pieces,
// moves and the fixed-capacity move list. Square 0 is a8, square 63 is h1
// (little-endian-file, big-endian-rank).
package types

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search ply the triangular PV table and
	// killer/history tables are sized for.
	MaxDepth = 64

	// MaxMoves is the safe upper bound on moves in a single MoveList.
	MaxMoves = 256
)

var initialized = false

func init() {
	if initialized {
		return
	}
	initBitboards()
	initialized = true
}
