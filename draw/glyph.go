/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package draw

import (
	"errors"
	"fmt"
)

// Glyph geometry
const (
	// Rows is the height of every glyph
	Rows = 5
	// OpsPerRow is the maximum number of runs in a glyph row
	OpsPerRow = 3
	// DigitWidth is the cell width of a digit
	DigitWidth = 5
	// ColonWidth is the cell width of the colon
	ColonWidth = 1
	// Separator is the blank cell emitted after every glyph
	Separator = 1
	// GlyphCount is the number of glyphs in HH:MM:SS
	GlyphCount = 8
	// GridWidth is the width of a rendered time, separators included
	GridWidth = 6*(DigitWidth+Separator) + 2*(ColonWidth+Separator)
	// GridHeight is the height of a rendered time
	GridHeight = Rows
)

// ErrTooManyRuns is returned by CompileRow when a row does not fit OpsPerRow runs
var ErrTooManyRuns = errors.New("row needs more runs than a glyph row holds")

// Op is a run of cells: N > 0 draws N filled cells, N < 0 draws -N blank cells, 0 does nothing
type Op int8

// On returns a run of n filled cells
func On(n uint8) Op { return Op(n) }

// Off returns a run of n blank cells
func Off(n uint8) Op { return -Op(n) }

// Len returns the number of cells the op covers
func (o Op) Len() int {
	if o < 0 {
		return int(-o)
	}
	return int(o)
}

// Filled reports whether the run is drawn in the "on" colour
func (o Op) Filled() bool {
	return o > 0
}

// Row is one glyph row. Unused trailing slots are zero.
type Row [OpsPerRow]Op

// Glyph is the draw program of one clock character
type Glyph struct {
	Width int
	Rows  [Rows]Row
}

var (
	long      = Row{On(5)}
	left      = Row{On(2), Off(3)}
	right     = Row{Off(3), On(2)}
	leftRight = Row{On(2), Off(1), On(2)}
	one       = Row{Off(2), On(2), Off(1)}
)

var digits = [10]Glyph{
	{Width: DigitWidth, Rows: [Rows]Row{long, leftRight, leftRight, leftRight, long}},
	{Width: DigitWidth, Rows: [Rows]Row{one, one, one, one, one}},
	{Width: DigitWidth, Rows: [Rows]Row{long, right, long, left, long}},
	{Width: DigitWidth, Rows: [Rows]Row{long, right, long, right, long}},
	{Width: DigitWidth, Rows: [Rows]Row{leftRight, leftRight, long, right, right}},
	{Width: DigitWidth, Rows: [Rows]Row{long, left, long, right, long}},
	{Width: DigitWidth, Rows: [Rows]Row{long, left, long, leftRight, long}},
	{Width: DigitWidth, Rows: [Rows]Row{long, right, right, right, right}},
	{Width: DigitWidth, Rows: [Rows]Row{long, leftRight, long, leftRight, long}},
	{Width: DigitWidth, Rows: [Rows]Row{long, leftRight, long, right, long}},
}

var colon = Glyph{
	Width: ColonWidth,
	Rows:  [Rows]Row{{Off(1)}, {On(1)}, {Off(1)}, {On(1)}, {Off(1)}},
}

// Fault is the panic value for a broken internal invariant
type Fault struct {
	What  string
	Value int
}

func (f Fault) Error() string {
	return fmt.Sprintf("internal fault: %s: %d", f.What, f.Value)
}

// Digit returns the glyph of d. It panics with a Fault outside 0-9.
func Digit(d int) *Glyph {
	if d < 0 || d >= len(digits) {
		panic(Fault{What: "digit out of range", Value: d})
	}
	return &digits[d]
}

// Colon returns the separator glyph
func Colon() *Glyph {
	return &colon
}

// Cells expands one row into per-cell fill flags, Width of them are meaningful
func (g *Glyph) Cells(row int) [DigitWidth]bool {
	var cells [DigitWidth]bool
	x := 0
	for _, op := range g.Rows[row] {
		for i := 0; i < op.Len() && x < len(cells); i++ {
			cells[x] = op.Filled()
			x++
		}
	}
	return cells
}

// CompileRow run-length encodes cells into a Row
func CompileRow(cells []bool) (Row, error) {
	var row Row
	n := 0
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		if n == OpsPerRow {
			return Row{}, fmt.Errorf("%w: %v", ErrTooManyRuns, cells)
		}
		if cells[i] {
			row[n] = On(uint8(j - i))
		} else {
			row[n] = Off(uint8(j - i))
		}
		n++
		i = j
	}
	return row, nil
}
