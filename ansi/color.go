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

package ansi

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// SequenceSize is the length of the longest colour sequence, "\x1b[48;2;255;255;255m"
const SequenceSize = 19

// ErrInvalidSequence is returned by Decode for anything Encode would not produce
var ErrInvalidSequence = errors.New("invalid colour sequence")

// Kind of colour descriptor
type Kind uint8

// Colour kinds. The zero Color is Clear.
const (
	KindClear Kind = iota
	KindNamed
	KindBright
	KindIndex
	KindRGB
)

// Literal is one of the eight basic terminal colours
type Literal uint8

// Basic colours in SGR order
const (
	Black Literal = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var literalNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the colour name
func (l Literal) String() string {
	return literalNames[l&7]
}

// Plane selects which side of the cell a sequence colours
type Plane uint8

// Planes
const (
	Foreground Plane = iota
	Background
)

// Color is an abstract colour descriptor
type Color struct {
	Kind Kind
	// N is the Literal for Named/Bright or the palette index for Index
	N       uint8
	R, G, B uint8
}

// Clear resets the plane to the terminal default
var Clear = Color{}

// Named returns a basic colour
func Named(l Literal) Color { return Color{Kind: KindNamed, N: uint8(l & 7)} }

// Bright returns a bright basic colour
func Bright(l Literal) Color { return Color{Kind: KindBright, N: uint8(l & 7)} }

// Index returns a 256-colour palette entry
func Index(n uint8) Color { return Color{Kind: KindIndex, N: n} }

// RGB returns a 24-bit colour
func RGB(r, g, b uint8) Color { return Color{Kind: KindRGB, R: r, G: g, B: b} }

// SGR parameter bases per plane, taken from the attribute table of fatih/color
func bases(p Plane) (named, bright, extended, reset uint64) {
	if p == Background {
		return uint64(color.BgBlack), uint64(color.BgHiBlack), 48, 49
	}
	return uint64(color.FgBlack), uint64(color.FgHiBlack), 38, 39
}

// Encode writes the SGR sequence selecting c on plane p into buf and returns its length.
// It never allocates and never writes past SequenceSize bytes.
func Encode(c Color, p Plane, buf *[SequenceSize]byte) int {
	named, bright, extended, reset := bases(p)
	b := append(buf[:0], csi...)
	switch c.Kind {
	case KindNamed:
		b = strconv.AppendUint(b, named+uint64(c.N&7), 10)
	case KindBright:
		b = strconv.AppendUint(b, bright+uint64(c.N&7), 10)
	case KindIndex:
		b = strconv.AppendUint(b, extended, 10)
		b = append(b, ";5;"...)
		b = strconv.AppendUint(b, uint64(c.N), 10)
	case KindRGB:
		b = strconv.AppendUint(b, extended, 10)
		b = append(b, ";2;"...)
		b = strconv.AppendUint(b, uint64(c.R), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(c.G), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(c.B), 10)
	default:
		b = strconv.AppendUint(b, reset, 10)
	}
	b = append(b, 'm')
	return len(b)
}

// Decode parses a sequence produced by Encode back into its descriptor and plane
func Decode(seq []byte) (Color, Plane, error) {
	if !bytes.HasPrefix(seq, csi) || !bytes.HasSuffix(seq, []byte("m")) || len(seq) > SequenceSize {
		return Clear, Foreground, fmt.Errorf("%w: %q", ErrInvalidSequence, seq)
	}
	fields := strings.Split(string(seq[len(csi):len(seq)-1]), ";")
	params := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Clear, Foreground, fmt.Errorf("%w: %q: %w", ErrInvalidSequence, seq, err)
		}
		params = append(params, v)
	}
	for _, p := range []Plane{Foreground, Background} {
		named, bright, extended, reset := bases(p)
		switch {
		case len(params) == 1 && params[0] == reset:
			return Clear, p, nil
		case len(params) == 1 && params[0] >= named && params[0] < named+8:
			return Named(Literal(params[0] - named)), p, nil
		case len(params) == 1 && params[0] >= bright && params[0] < bright+8:
			return Bright(Literal(params[0] - bright)), p, nil
		case len(params) == 3 && params[0] == extended && params[1] == 5:
			return Index(uint8(params[2])), p, nil
		case len(params) == 5 && params[0] == extended && params[1] == 2:
			return RGB(uint8(params[2]), uint8(params[3]), uint8(params[4])), p, nil
		}
	}
	return Clear, Foreground, fmt.Errorf("%w: %q", ErrInvalidSequence, seq)
}

// Parse reads a colour from its command line form:
// "clear", a colour name, "bright-" plus a name, a palette index 0-255 or "#rrggbb"
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "clear" || s == "default":
		return Clear, nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return Clear, fmt.Errorf("colour %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Clear, fmt.Errorf("colour %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case strings.HasPrefix(s, "bright-"):
		l, ok := literal(strings.TrimPrefix(s, "bright-"))
		if !ok {
			return Clear, fmt.Errorf("unknown colour %q", s)
		}
		return Bright(l), nil
	}
	if l, ok := literal(s); ok {
		return Named(l), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Clear, fmt.Errorf("unknown colour %q", s)
	}
	return Index(uint8(n)), nil
}

func literal(name string) (Literal, bool) {
	for i, n := range literalNames {
		if n == name {
			return Literal(i), true
		}
	}
	return 0, false
}

// String is the inverse of Parse
func (c Color) String() string {
	switch c.Kind {
	case KindNamed:
		return Literal(c.N).String()
	case KindBright:
		return "bright-" + Literal(c.N).String()
	case KindIndex:
		return strconv.Itoa(int(c.N))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return "clear"
}

// Set implements pflag.Value
func (c *Color) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements pflag.Value
func (c *Color) Type() string {
	return "color"
}

// Cache holds the precomputed sequences switching between the "on" and "off" colours
type Cache struct {
	on, off       [SequenceSize]byte
	onLen, offLen uint8
}

// NewCache encodes both colours for plane p once
func NewCache(on, off Color, p Plane) Cache {
	var c Cache
	c.onLen = uint8(Encode(on, p, &c.on))
	c.offLen = uint8(Encode(off, p, &c.off))
	return c
}

// Seq returns the sequence entering the "on" colour when on is true, the "off" colour otherwise
func (c *Cache) Seq(on bool) []byte {
	if on {
		return c.on[:c.onLen]
	}
	return c.off[:c.offLen]
}
