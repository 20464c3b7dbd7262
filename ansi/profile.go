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
	"fmt"

	"github.com/muesli/termenv"
)

// Fit converts c to the closest colour the profile p can display.
// Colours are never dropped: on a profile without colours c is returned as is,
// the clock is drawn with background cells and would vanish otherwise.
func Fit(c Color, p termenv.Profile) Color {
	var tc termenv.Color
	switch c.Kind {
	case KindRGB:
		tc = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	case KindIndex:
		tc = termenv.ANSI256Color(c.N)
	default:
		return c
	}
	switch v := p.Convert(tc).(type) {
	case termenv.ANSI256Color:
		return Index(uint8(v))
	case termenv.ANSIColor:
		if v < 8 {
			return Named(Literal(v))
		}
		return Bright(Literal(v - 8))
	}
	return c
}
