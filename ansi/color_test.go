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
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func encode(c Color, p Plane) string {
	var buf [SequenceSize]byte
	n := Encode(c, p, &buf)
	return string(buf[:n])
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		color Color
		plane Plane
		want  string
	}{
		{Named(Black), Foreground, "\x1b[30m"},
		{Named(White), Background, "\x1b[47m"},
		{Bright(Blue), Foreground, "\x1b[94m"},
		{Bright(Blue), Background, "\x1b[104m"},
		{Index(0), Foreground, "\x1b[38;5;0m"},
		{Index(231), Background, "\x1b[48;5;231m"},
		{RGB(1, 22, 255), Foreground, "\x1b[38;2;1;22;255m"},
		{RGB(255, 255, 255), Background, "\x1b[48;2;255;255;255m"},
		{Clear, Foreground, "\x1b[39m"},
		{Clear, Background, "\x1b[49m"},
	}
	for _, tc := range testCases {
		t.Run(tc.want[1:], func(t *testing.T) {
			require.Equal(t, tc.want, encode(tc.color, tc.plane))
		})
	}
}

func TestEncodeDecodeAllDescriptors(t *testing.T) {
	var colors []Color
	colors = append(colors, Clear)
	for l := Black; l <= White; l++ {
		colors = append(colors, Named(l), Bright(l))
	}
	for n := 0; n < 256; n++ {
		colors = append(colors, Index(uint8(n)))
	}
	for _, v := range []uint8{0, 9, 10, 99, 100, 255} {
		colors = append(colors, RGB(v, 255-v, v), RGB(255, 255, v))
	}

	for _, c := range colors {
		for _, p := range []Plane{Foreground, Background} {
			var buf [SequenceSize]byte
			n := Encode(c, p, &buf)
			require.LessOrEqual(t, n, SequenceSize)

			got, plane, err := Decode(buf[:n])
			require.NoError(t, err)
			require.Equal(t, c, got)
			require.Equal(t, p, plane)
		}
	}
}

func TestEncodeMaskedLiteral(t *testing.T) {
	require.Equal(t, "\x1b[31m", encode(Color{Kind: KindNamed, N: 9}, Foreground))
}

func TestEncodeNoAllocs(t *testing.T) {
	var buf [SequenceSize]byte
	allocs := testing.AllocsPerRun(100, func() {
		Encode(RGB(255, 255, 255), Background, &buf)
	})
	require.Zero(t, allocs)
}

func TestDecodeInvalid(t *testing.T) {
	for _, seq := range []string{"", "\x1b[", "\x1b[m", "[31m", "\x1b[31", "\x1b[38m", "\x1b[38;5m", "\x1b[1m", "\x1b[38;2;1;2m", "\x1b[300m"} {
		_, _, err := Decode([]byte(seq))
		require.ErrorIs(t, err, ErrInvalidSequence, "%q", seq)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Color
	}{
		{"clear", Clear},
		{"default", Clear},
		{"red", Named(Red)},
		{" Cyan ", Named(Cyan)},
		{"bright-blue", Bright(Blue)},
		{"208", Index(208)},
		{"#ff8000", RGB(255, 128, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			back, err := Parse(got.String())
			require.NoError(t, err)
			require.Equal(t, got, back)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "purple", "bright-", "bright-pink", "256", "-1", "#fff", "#gggggg"} {
		_, err := Parse(in)
		require.Error(t, err, in)
	}
}

func TestColorFlag(t *testing.T) {
	c := Bright(Blue)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&c, "color", "colour")
	require.Equal(t, "bright-blue", fs.Lookup("color").DefValue)

	require.NoError(t, fs.Parse([]string{"--color", "#010203"}))
	require.Equal(t, RGB(1, 2, 3), c)
	require.Equal(t, "color", fs.Lookup("color").Value.Type())

	require.Error(t, fs.Parse([]string{"--color", "nope"}))
}

func TestCache(t *testing.T) {
	c := NewCache(Bright(Blue), Clear, Background)
	require.Equal(t, "\x1b[104m", string(c.Seq(true)))
	require.Equal(t, "\x1b[49m", string(c.Seq(false)))
}

func TestAppendCursorMove(t *testing.T) {
	var buf [MaxMoveSize]byte
	require.Equal(t, "\x1b[20C", string(AppendCursorMove(buf[:0], 20, Right)))
	require.Equal(t, "\x1b[9B", string(AppendCursorMove(buf[:0], 9, Down)))
	require.Equal(t, "\x1b[1A", string(AppendCursorMove(buf[:0], 1, Up)))
	require.Empty(t, AppendCursorMove(buf[:0], 0, Left))
	require.Len(t, AppendCursorMove(buf[:0], ^uint64(0), Left), MaxMoveSize)
}
