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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/facebook/ttyclock/ansi"
)

// TTY is the terminal control a Session needs
type TTY interface {
	// Termios returns the current terminal attributes
	Termios() (*unix.Termios, error)
	// SetTermios installs terminal attributes
	SetTermios(t *unix.Termios) error
	// WindowSize returns the window dimensions in cells
	WindowSize() (rows, cols int, err error)
	// Write writes control sequences
	Write(p []byte) (int, error)
	// Seal writes final and rejects every later write
	Seal(final []byte) error
}

// Waker is told when the clock must be redrawn outside of the regular ticks
type Waker interface {
	Interrupt() error
}

var (
	enterSeq    = concat(ansi.CursorHide, ansi.AltScreenEnter)
	teardownSeq = concat(ansi.AltScreenExit, ansi.CursorShow)
)

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

// Session owns the terminal state that must be restored before the process exits
type Session struct {
	tty      TTY
	snapshot unix.Termios
	margins  Margins

	once        sync.Once
	teardownErr error

	// exit terminates the process, replaced in tests
	exit func(code int)
}

// Open snapshots the terminal attributes, switches to raw mode, computes the margins,
// hides the cursor and enters the alternate screen
func Open(tty TTY) (*Session, error) {
	orig, err := tty.Termios()
	if err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}
	s := &Session{
		tty:      tty,
		snapshot: *orig,
		exit:     os.Exit,
	}
	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON
	if err := tty.SetTermios(&raw); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	if err := s.Resize(); err != nil {
		return nil, errors.Join(err, s.Teardown())
	}
	if _, err := tty.Write(enterSeq); err != nil {
		return nil, errors.Join(err, s.Teardown())
	}
	log.Debugf("terminal session opened, lflag %#x -> %#x", orig.Lflag, raw.Lflag)
	return s, nil
}

// Margins returns the margins kept up to date by Resize
func (s *Session) Margins() *Margins {
	return &s.margins
}

// Snapshot returns the terminal attributes captured by Open
func (s *Session) Snapshot() unix.Termios {
	return s.snapshot
}

// Resize recomputes the margins from the current window size. It does no other I/O.
func (s *Session) Resize() error {
	rows, cols, err := s.tty.WindowSize()
	if err != nil {
		return fmt.Errorf("reading window size: %w", err)
	}
	s.margins.Update(rows, cols)
	return nil
}

// Teardown leaves the alternate screen, shows the cursor and restores the attributes captured by Open.
// Only the first call does anything; later calls return the first result.
func (s *Session) Teardown() error {
	s.once.Do(func() {
		werr := s.tty.Seal(teardownSeq)
		terr := s.tty.SetTermios(&s.snapshot)
		s.teardownErr = errors.Join(werr, terr)
	})
	return s.teardownErr
}

// Watch relays signals until ctx is done. SIGWINCH recomputes the margins and wakes w,
// SIGINT and SIGTERM tear the session down and exit with status 0.
func (s *Session) Watch(ctx context.Context, w Waker) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGINT, unix.SIGTERM, unix.SIGWINCH)
	defer signal.Stop(sigs)
	return s.watch(ctx, w, sigs)
}

func (s *Session) watch(ctx context.Context, w Waker, sigs <-chan os.Signal) error {
	defer func() {
		if r := recover(); r != nil {
			_ = s.Teardown()
			log.Errorf("signal handler crashed: %v\n%s", r, debug.Stack())
			s.exit(1)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigs:
			if sig != unix.SIGWINCH {
				err := s.Teardown()
				log.Infof("received %v, exiting", sig)
				if err != nil {
					log.Errorf("restoring terminal: %v", err)
				}
				s.exit(0)
				return nil
			}
			if err := s.Resize(); err != nil {
				_ = s.Teardown()
				log.Error(err)
				s.exit(ExitCode(err))
				return err
			}
			if err := w.Interrupt(); err != nil {
				log.Warningf("redraw after resize: %v", err)
			}
		}
	}
}

// ExitCode maps err to a process exit status: the errno it wraps, or 1
func ExitCode(err error) int {
	var errno unix.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return 1
}
