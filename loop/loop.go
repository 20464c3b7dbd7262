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

/*
Package loop drives the clock: it redraws on every timer tick and after every resize,
and stops when the user asks to quit.
*/
package loop

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/facebook/ttyclock/draw"
	"github.com/facebook/ttyclock/uring"
)

// InputSize is the size of the keyboard read buffer
const InputSize = 32

// Keys that stop the clock when read on their own
const (
	KeyQuit = 'q'
	KeyETX  = 0x03 // ^C with ISIG off
)

// Ring is the completion ring the loop waits on
type Ring interface {
	PrepareRead(fd int, buf []byte, token uring.Token) error
	PrepareTimeout(d time.Duration, token uring.Token, multishot bool) error
	Submit(n uint32) error
	// Wait returns unix.EINTR when the wait was interrupted
	Wait() error
	Complete() (uring.Completion, bool)
}

// Renderer draws one complete frame
type Renderer interface {
	Redraw() error
}

// Loop multiplexes the periodic timer and keyboard input on a Ring
type Loop struct {
	ring     Ring
	render   Renderer
	input    int
	interval time.Duration
	buf      [InputSize]byte
}

// New returns a Loop reading keys from input and redrawing every interval
func New(ring Ring, render Renderer, input int, interval time.Duration) *Loop {
	return &Loop{
		ring:     ring,
		render:   render,
		input:    input,
		interval: interval,
	}
}

// Run arms the timer and the keyboard read and processes completions until
// a quit key or end of input is read. The first frame is expected to be drawn already.
func (l *Loop) Run() error {
	if err := l.ring.PrepareRead(l.input, l.buf[:], uring.TokenRead); err != nil {
		return fmt.Errorf("arming input read: %w", err)
	}
	if err := l.ring.PrepareTimeout(l.interval, uring.TokenTimeout, true); err != nil {
		return fmt.Errorf("arming timer: %w", err)
	}
	if err := l.ring.Submit(2); err != nil {
		return err
	}
	for {
		if err := l.ring.Wait(); err != nil {
			if !errors.Is(err, unix.EINTR) {
				return err
			}
			log.Debug("wait interrupted, redrawing")
			if err := l.render.Redraw(); err != nil {
				return err
			}
			continue
		}
		var queued uint32
		for {
			c, ok := l.ring.Complete()
			if !ok {
				break
			}
			n, quit, err := l.dispatch(c)
			if err != nil || quit {
				return err
			}
			queued += n
		}
		if queued == 0 {
			continue
		}
		if err := l.ring.Submit(queued); err != nil {
			return err
		}
	}
}

// dispatch handles one completion and returns how many operations it queued again
func (l *Loop) dispatch(c uring.Completion) (uint32, bool, error) {
	switch c.Token {
	case uring.TokenTimeout:
		return l.tick(c)
	case uring.TokenRead:
		return l.key(c)
	}
	panic(draw.Fault{What: "unexpected completion token", Value: int(c.Token)})
}

func (l *Loop) tick(c uring.Completion) (uint32, bool, error) {
	if err := c.Err(); err != nil && !errors.Is(err, unix.ETIME) {
		return 0, false, fmt.Errorf("timer: %w", err)
	}
	if err := l.render.Redraw(); err != nil {
		return 0, false, err
	}
	if c.More() {
		return 0, false, nil
	}
	log.Debug("timer retired by the kernel, re-arming")
	if err := l.ring.PrepareTimeout(l.interval, uring.TokenTimeout, true); err != nil {
		return 0, false, fmt.Errorf("re-arming timer: %w", err)
	}
	return 1, false, nil
}

func (l *Loop) key(c uring.Completion) (uint32, bool, error) {
	switch err := c.Err(); {
	case c.Res == 0:
		log.Debug("end of input")
		return 0, true, nil
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
	case err != nil:
		return 0, false, fmt.Errorf("reading input: %w", err)
	case c.Res == 1 && (l.buf[0] == KeyQuit || l.buf[0] == KeyETX):
		log.Debugf("quit key %#x", l.buf[0])
		return 0, true, nil
	}
	if err := l.ring.PrepareRead(l.input, l.buf[:], uring.TokenRead); err != nil {
		return 0, false, fmt.Errorf("re-arming input read: %w", err)
	}
	return 1, false, nil
}
