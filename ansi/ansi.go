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
	"strconv"
)

// Control sequences written by the clock. Never modify these slices.
var (
	AltScreenEnter = []byte("\x1b[?1049h")
	AltScreenExit  = []byte("\x1b[?1049l")
	CursorHide     = []byte("\x1b[?25l")
	CursorShow     = []byte("\x1b[?25h")
	CursorHome     = []byte("\x1b[H")
)

// Direction of a relative cursor movement, the final byte of CUU/CUD/CUF/CUB
type Direction byte

// Supported directions
const (
	Up    Direction = 'A'
	Down  Direction = 'B'
	Right Direction = 'C'
	Left  Direction = 'D'
)

// MaxMoveSize is the longest sequence AppendCursorMove can produce
const MaxMoveSize = len("\x1b[") + len("18446744073709551615") + 1

// AppendCursorMove appends a sequence moving the cursor n cells in direction d.
// Nothing is appended for n == 0: terminals treat a zero count as one.
func AppendCursorMove(dst []byte, n uint64, d Direction) []byte {
	if n == 0 {
		return dst
	}
	dst = append(dst, csi...)
	dst = strconv.AppendUint(dst, n, 10)
	return append(dst, byte(d))
}

var csi = []byte("\x1b[")
