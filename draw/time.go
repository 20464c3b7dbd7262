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

const secondsPerDay = 24 * 3600

// TimeValue is a time of day
type TimeValue struct {
	Hours   int
	Minutes int
	Seconds int
}

// Decompose splits seconds since midnight (or since the epoch, days are discarded) into a time of day
func Decompose(seconds int64) TimeValue {
	s := seconds % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return TimeValue{
		Hours:   int(s/3600) % 24,
		Minutes: int(s/60) % 60,
		Seconds: int(s % 60),
	}
}

// CompileTime returns the glyphs of HH:MM:SS for seconds
func CompileTime(seconds int64) [GlyphCount]*Glyph {
	t := Decompose(seconds)
	return [GlyphCount]*Glyph{
		Digit(t.Hours / 10),
		Digit(t.Hours % 10),
		Colon(),
		Digit(t.Minutes / 10),
		Digit(t.Minutes % 10),
		Colon(),
		Digit(t.Seconds / 10),
		Digit(t.Seconds % 10),
	}
}
