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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/facebook/ttyclock/ansi"
	"github.com/facebook/ttyclock/clock"
	"github.com/facebook/ttyclock/draw"
	"github.com/facebook/ttyclock/loop"
	"github.com/facebook/ttyclock/session"
	"github.com/facebook/ttyclock/sink"
	"github.com/facebook/ttyclock/uring"
)

// ringEntries covers the keyboard read, the timer and the ring's own wake read
const ringEntries = 4

// flags
var (
	colorFlag      = ansi.Bright(ansi.Blue)
	backgroundFlag = ansi.Clear
	utcOffsetFlag  time.Duration
	intervalFlag   time.Duration
)

func init() {
	RootCmd.Flags().VarP(&colorFlag, "color", "c", "colour of the digits: a name, bright-<name>, 0-255, #rrggbb or clear")
	RootCmd.Flags().Var(&backgroundFlag, "background", "colour behind the digits")
	RootCmd.Flags().DurationVarP(&utcOffsetFlag, "utc-offset", "u", clock.LocalOffset(time.Now()), "offset from UTC of the displayed time")
	RootCmd.Flags().DurationVarP(&intervalFlag, "interval", "i", time.Second, "redraw interval")
}

type config struct {
	in       int
	out      int
	on       ansi.Color
	off      ansi.Color
	offset   time.Duration
	interval time.Duration

	// profile is what the terminal can display, colours are fitted to it
	profile termenv.Profile
}

func currentConfig() config {
	return config{
		in:       int(os.Stdin.Fd()),
		out:      int(os.Stdout.Fd()),
		on:       colorFlag,
		off:      backgroundFlag,
		offset:   utcOffsetFlag,
		interval: intervalFlag,
		profile:  termenv.EnvColorProfile(),
	}
}

func (c config) validate() error {
	if c.interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.interval)
	}
	if c.offset%time.Second != 0 {
		return fmt.Errorf("utc offset %v is not a whole number of seconds", c.offset)
	}
	for _, fd := range []int{c.in, c.out} {
		if !term.IsTerminal(fd) {
			return fmt.Errorf("fd %d: %w", fd, unix.ENOTTY)
		}
	}
	return nil
}

func run(c config) error {
	if err := c.validate(); err != nil {
		return err
	}
	ring, err := uring.New(ringEntries)
	if err != nil {
		return err
	}
	defer ring.Close()

	out := sink.NewFd(c.out)
	tty, err := session.NewTerminal(c.in, out)
	if err != nil {
		return err
	}
	s, err := session.Open(tty)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Teardown(); err != nil {
			log.Errorf("restoring terminal: %v", err)
		}
	}()

	on, off := ansi.Fit(c.on, c.profile), ansi.Fit(c.off, c.profile)
	log.Debugf("colours %v on %v, profile %v", on, off, c.profile)
	engine := draw.NewEngine(sink.NewBuffered(out, draw.FrameSize), on, off)
	src := clock.Realtime{ID: unix.CLOCK_REALTIME, Offset: c.offset}
	display := loop.NewDisplay(src, engine, s.Margins())
	if err := display.Redraw(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.Watch(ctx, ring)
	})
	eg.Go(func() (err error) {
		defer cancel()
		defer recoverFault(s, &err)
		return loop.New(ring, display, c.in, c.interval).Run()
	})
	return eg.Wait()
}

// recoverFault turns a panic into an error once the terminal is restored
func recoverFault(s *session.Session, err *error) {
	r := recover()
	if r == nil {
		return
	}
	terr := s.Teardown()
	log.Errorf("%v\n%s", r, debug.Stack())
	perr, ok := r.(error)
	if !ok {
		perr = fmt.Errorf("%v", r)
	}
	*err = errors.Join(perr, terr)
}
