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
Package sink provides the byte sinks the clock renders into.

A frame is accumulated in a fixed-capacity Buffered sink and handed to the terminal
descriptor in a single write on Flush, so the terminal never shows half a frame.
*/
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrSealed is returned by writes to an Fd after Seal
var ErrSealed = errors.New("output sealed")

// Sink is a byte sink that buffers writes until Flush
type Sink interface {
	io.Writer
	Flush() error
}

// NewBuffered returns a Sink with a fixed capacity of size bytes in front of w.
// Writes that would overflow the buffer flush it first.
func NewBuffered(w io.Writer, size int) Sink {
	return bufio.NewWriterSize(w, size)
}

// Fd writes directly to a file descriptor.
// It is safe for concurrent use: a write is never interleaved with another one.
type Fd struct {
	mu     sync.Mutex
	fd     int
	sealed bool
}

// NewFd returns an Fd writing to fd
func NewFd(fd int) *Fd {
	return &Fd{fd: fd}
}

// Write writes all of p
func (f *Fd) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sealed {
		return 0, ErrSealed
	}
	return writeAll(f.fd, p)
}

// Seal writes final and rejects every write after it.
// Only the first call writes.
func (f *Fd) Seal(final []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sealed {
		return nil
	}
	f.sealed = true
	_, err := writeAll(f.fd, final)
	return err
}

func writeAll(fd int, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := unix.Write(fd, p[n:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, fmt.Errorf("writing to fd %d: %w", fd, err)
		}
		n += m
	}
	return n, nil
}
