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
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/facebook/ttyclock/sink"
)

// Terminal is the TTY behind a pair of file descriptors
type Terminal struct {
	in  int
	out *sink.Fd
}

// NewTerminal returns a Terminal reading attributes and size from in and writing to out.
// in must be a terminal.
func NewTerminal(in int, out *sink.Fd) (*Terminal, error) {
	if !term.IsTerminal(in) {
		return nil, fmt.Errorf("fd %d is not a terminal", in)
	}
	return &Terminal{in: in, out: out}, nil
}

// Termios implements TTY with TCGETS
func (t *Terminal) Termios() (*unix.Termios, error) {
	return unix.IoctlGetTermios(t.in, unix.TCGETS)
}

// SetTermios implements TTY with TCSETS
func (t *Terminal) SetTermios(tios *unix.Termios) error {
	return unix.IoctlSetTermios(t.in, unix.TCSETS, tios)
}

// WindowSize implements TTY with TIOCGWINSZ
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(t.in, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// Write implements TTY
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Seal implements TTY
func (t *Terminal) Seal(final []byte) error {
	return t.out.Seal(final)
}
