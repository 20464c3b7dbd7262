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

package session

import (
	"sync"

	"github.com/facebook/ttyclock/ansi"
	"github.com/facebook/ttyclock/draw"
)

// Offsets returns how far the clock grid must move right and down to be centred
// in a rows x cols window. A window smaller than the grid gets no offset.
func Offsets(rows, cols int) (left, top int) {
	if cols > draw.GridWidth {
		left = (cols - draw.GridWidth) / 2
	}
	if rows > draw.GridHeight {
		top = (rows - draw.GridHeight) / 2
	}
	return left, top
}

// Margins holds the cursor movements centring the clock.
// Update is called from the resize path, Read from the redraw path.
type Margins struct {
	mu      sync.Mutex
	left    [draw.MarginSize]byte
	top     [draw.MarginSize]byte
	leftLen int
	topLen  int
}

// Update recomputes both margins for a rows x cols window
func (m *Margins) Update(rows, cols int) {
	l, t := Offsets(rows, cols)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leftLen = len(ansi.AppendCursorMove(m.left[:0], uint64(l), ansi.Right))
	m.topLen = len(ansi.AppendCursorMove(m.top[:0], uint64(t), ansi.Down))
}

// Read copies the current margins into the caller's buffers and returns the used parts
func (m *Margins) Read(left, top *[draw.MarginSize]byte) (l, t []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*left = m.left
	*top = m.top
	return left[:m.leftLen], top[:m.topLen]
}
