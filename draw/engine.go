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
	"github.com/facebook/ttyclock/ansi"
	"github.com/facebook/ttyclock/sink"
)

// MarginSize is the capacity of a margin preamble
const MarginSize = 32

// preambleSize bounds the bytes written by a frame before the first row
const preambleSize = 2*len("\x1b[?1049h") + len("\x1b[H") + ansi.SequenceSize + MarginSize

// FrameSize bounds the bytes of one Frame for any pair of colours,
// assuming every run switches colour.
const FrameSize = preambleSize + Rows*(MarginSize+GlyphCount*(OpsPerRow+Separator)*(ansi.SequenceSize+DigitWidth)+1)

// State is the colour currently selected in the output stream
type State uint8

// Render states
const (
	StateUnknown State = iota
	StateOn
	StateOff
)

var (
	blanks  = [DigitWidth]byte{' ', ' ', ' ', ' ', ' '}
	newline = []byte{'\n'}
)

// Engine renders glyphs into a sink, switching colours only when the run polarity changes
type Engine struct {
	out   sink.Sink
	cache ansi.Cache
	fg    [ansi.SequenceSize]byte
	fgLen int
	state State
}

// NewEngine returns an Engine drawing filled cells with on and blank cells with off
func NewEngine(out sink.Sink, on, off ansi.Color) *Engine {
	e := &Engine{
		out:   out,
		cache: ansi.NewCache(on, off, ansi.Background),
	}
	e.fgLen = ansi.Encode(on, ansi.Foreground, &e.fg)
	return e
}

// State returns the colour last written
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) write(p []byte) error {
	_, err := e.out.Write(p)
	return err
}

func (e *Engine) switchTo(on bool) error {
	want := StateOff
	if on {
		want = StateOn
	}
	if e.state == want {
		return nil
	}
	if err := e.write(e.cache.Seq(on)); err != nil {
		return err
	}
	e.state = want
	return nil
}

func (e *Engine) run(op Op) error {
	if op == 0 {
		return nil
	}
	if err := e.switchTo(op.Filled()); err != nil {
		return err
	}
	return e.write(blanks[:op.Len()])
}

// Render draws glyphs row by row. left, when not empty, is written at the start of every row.
func (e *Engine) Render(glyphs []*Glyph, left []byte) error {
	for row := 0; row < Rows; row++ {
		if len(left) > 0 {
			if err := e.write(left); err != nil {
				return err
			}
		}
		for _, g := range glyphs {
			for _, op := range g.Rows[row] {
				if err := e.run(op); err != nil {
					return err
				}
			}
			if err := e.run(Off(Separator)); err != nil {
				return err
			}
		}
		if err := e.write(newline); err != nil {
			return err
		}
	}
	return nil
}

// Frame draws a complete clock for seconds and flushes it.
// The alternate screen is left and re-entered to clear it, then the cursor is moved
// down by top and every row is shifted right by left.
func (e *Engine) Frame(seconds int64, top, left []byte) error {
	glyphs := CompileTime(seconds)
	// the terminal restores its saved attributes with the screen
	e.state = StateUnknown
	for _, p := range [...][]byte{ansi.AltScreenExit, ansi.AltScreenEnter, ansi.CursorHome, e.fg[:e.fgLen], top} {
		if len(p) == 0 {
			continue
		}
		if err := e.write(p); err != nil {
			return err
		}
	}
	if err := e.Render(glyphs[:], left); err != nil {
		return err
	}
	return e.out.Flush()
}
