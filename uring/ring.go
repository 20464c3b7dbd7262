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

package uring

import (
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrFull is returned when no submission slot is free
var ErrFull = errors.New("submission queue full")

// Token tags a submitted operation and its completion
type Token uint64

// Tokens used by the clock
const (
	TokenTimeout Token = 1
	TokenRead    Token = 2

	// tokenWake is the ring's own eventfd read, never returned by Complete
	tokenWake Token = ^Token(0)
)

func (t Token) String() string {
	switch t {
	case TokenTimeout:
		return "timeout"
	case TokenRead:
		return "read"
	case tokenWake:
		return "wake"
	}
	return fmt.Sprintf("token(%d)", uint64(t))
}

// Completion is one finished operation
type Completion struct {
	Token Token
	// Res is the operation result: bytes read, or a negated errno
	Res   int32
	Flags uint32
}

// More reports whether a multishot operation stays armed after this completion
func (c Completion) More() bool {
	return c.Flags&cqeFMore != 0
}

// Err returns the errno carried by a negative result
func (c Completion) Err() error {
	if c.Res < 0 {
		return unix.Errno(-c.Res)
	}
	return nil
}

// Ring is an io_uring instance.
// Everything but Interrupt must be called from a single goroutine.
type Ring struct {
	fd     int
	p      params
	sqRing []byte
	cqRing []byte
	sqes   []byte

	sqHead  *uint32
	sqTail  *uint32
	sqMask  uint32
	sqArray unsafe.Pointer
	cqHead  *uint32
	cqTail  *uint32
	cqMask  uint32

	// tail of prepared entries, published to sqTail on Submit
	tail uint32

	timeout kernelTimespec
	// read buffers owned by the kernel, per token
	pins map[Token]*runtime.Pinner

	wakeFd      int
	wakeBuf     [8]byte
	wakeErr     error
	interrupted bool
}

// New sets up a ring with room for entries submissions.
// One entry is used by the ring itself for Interrupt.
func New(entries uint32) (*Ring, error) {
	r := &Ring{fd: -1, wakeFd: -1, pins: map[Token]*runtime.Pinner{}}
	fd, err := setup(entries, &r.p)
	if err != nil {
		return nil, fmt.Errorf("io_uring_setup: %w", err)
	}
	r.fd = fd
	if err := r.mmap(); err != nil {
		r.Close()
		return nil, err
	}
	r.wakeFd, err = unix.Eventfd(0, unix.EFD_CLOEXEC)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("eventfd: %w", err)
	}
	if err := r.armWake(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Ring) mmap() error {
	var err error
	sqSize := int(r.p.SQOff.Array + r.p.SQEntries*4)
	r.sqRing, err = unix.Mmap(r.fd, offSQRing, sqSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_POPULATE)
	if err != nil {
		return fmt.Errorf("mmap sq ring: %w", err)
	}
	cqSize := int(r.p.CQOff.Cqes) + int(r.p.CQEntries)*int(cqeSize)
	r.cqRing, err = unix.Mmap(r.fd, offCQRing, cqSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_POPULATE)
	if err != nil {
		return fmt.Errorf("mmap cq ring: %w", err)
	}
	r.sqes, err = unix.Mmap(r.fd, offSQEs, int(r.p.SQEntries)*int(sqeSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_POPULATE)
	if err != nil {
		return fmt.Errorf("mmap sqes: %w", err)
	}

	r.sqHead = (*uint32)(unsafe.Pointer(&r.sqRing[r.p.SQOff.Head]))
	r.sqTail = (*uint32)(unsafe.Pointer(&r.sqRing[r.p.SQOff.Tail]))
	r.sqMask = *(*uint32)(unsafe.Pointer(&r.sqRing[r.p.SQOff.RingMask]))
	r.sqArray = unsafe.Pointer(&r.sqRing[r.p.SQOff.Array])
	r.cqHead = (*uint32)(unsafe.Pointer(&r.cqRing[r.p.CQOff.Head]))
	r.cqTail = (*uint32)(unsafe.Pointer(&r.cqRing[r.p.CQOff.Tail]))
	r.cqMask = *(*uint32)(unsafe.Pointer(&r.cqRing[r.p.CQOff.RingMask]))
	r.tail = atomic.LoadUint32(r.sqTail)
	return nil
}

// Close releases the ring. Outstanding operations are dropped by the kernel.
func (r *Ring) Close() error {
	var errs []error
	for _, m := range [][]byte{r.sqes, r.cqRing, r.sqRing} {
		if m != nil {
			errs = append(errs, unix.Munmap(m))
		}
	}
	r.sqes, r.cqRing, r.sqRing = nil, nil, nil
	if r.wakeFd >= 0 {
		errs = append(errs, unix.Close(r.wakeFd))
		r.wakeFd = -1
	}
	if r.fd >= 0 {
		errs = append(errs, unix.Close(r.fd))
		r.fd = -1
	}
	for _, p := range r.pins {
		p.Unpin()
	}
	return errors.Join(errs...)
}

// next returns a zeroed submission entry, queued but not yet visible to the kernel
func (r *Ring) next() (*sqe, error) {
	head := atomic.LoadUint32(r.sqHead)
	if r.tail-head >= r.p.SQEntries {
		return nil, ErrFull
	}
	idx := r.tail & r.sqMask
	e := (*sqe)(unsafe.Pointer(&r.sqes[uintptr(idx)*sqeSize]))
	*e = sqe{}
	*(*uint32)(unsafe.Add(r.sqArray, uintptr(idx)*4)) = idx
	r.tail++
	return e, nil
}

// PrepareRead queues a single read of up to len(buf) bytes from fd.
// buf must stay untouched until the completion for token is returned.
func (r *Ring) PrepareRead(fd int, buf []byte, token Token) error {
	if len(buf) == 0 {
		return fmt.Errorf("read for %s: empty buffer", token)
	}
	e, err := r.next()
	if err != nil {
		return err
	}
	r.pin(token, buf)
	e.Opcode = opRead
	e.Fd = int32(fd)
	e.Addr = uint64(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	e.Len = uint32(len(buf))
	// current file position, the only choice for ttys and pipes
	e.Off = ^uint64(0)
	e.UserData = uint64(token)
	return nil
}

func (r *Ring) pin(token Token, buf []byte) {
	p, ok := r.pins[token]
	if !ok {
		p = &runtime.Pinner{}
		r.pins[token] = p
	}
	p.Unpin()
	p.Pin(unsafe.SliceData(buf))
}

// PrepareTimeout queues a timer firing after d. A multishot timer completes every d until the ring is closed.
func (r *Ring) PrepareTimeout(d time.Duration, token Token, multishot bool) error {
	e, err := r.next()
	if err != nil {
		return err
	}
	// read by the kernel during submission
	r.timeout = kernelTimespec{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
	e.Opcode = opTimeout
	e.Fd = -1
	e.Addr = uint64(uintptr(unsafe.Pointer(&r.timeout)))
	e.Len = 1
	e.UserData = uint64(token)
	if multishot {
		e.OpFlags = timeoutMultishot
	}
	return nil
}

// Submit hands n prepared operations to the kernel
func (r *Ring) Submit(n uint32) error {
	atomic.StoreUint32(r.sqTail, r.tail)
	for n > 0 {
		done, err := enter(r.fd, n, 0, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("io_uring_enter: %w", err)
		}
		if done == 0 {
			return fmt.Errorf("io_uring_enter: %d operations not consumed", n)
		}
		n -= uint32(done)
	}
	return nil
}

func (r *Ring) peek() (cqe, bool) {
	head := *r.cqHead
	if head == atomic.LoadUint32(r.cqTail) {
		return cqe{}, false
	}
	off := uintptr(r.p.CQOff.Cqes) + uintptr(head&r.cqMask)*cqeSize
	return *(*cqe)(unsafe.Pointer(&r.cqRing[off])), true
}

func (r *Ring) advance() {
	atomic.StoreUint32(r.cqHead, *r.cqHead+1)
}

// Wait blocks until a completion is available. It returns unix.EINTR when a signal
// interrupted the wait or Interrupt was called since the last Wait.
func (r *Ring) Wait() error {
	for {
		if r.wakeErr != nil {
			return r.wakeErr
		}
		if r.interrupted {
			r.interrupted = false
			return unix.EINTR
		}
		c, ok := r.peek()
		if ok && Token(c.UserData) != tokenWake {
			return nil
		}
		if ok {
			r.advance()
			if err := r.armWake(); err != nil {
				return err
			}
			r.interrupted = true
			continue
		}
		_, err := enter(r.fd, 0, 1, enterGetEvents)
		if err == unix.EINTR {
			return unix.EINTR
		}
		if err != nil {
			return fmt.Errorf("io_uring_enter: %w", err)
		}
	}
}

// Complete dequeues one completion. ok is false when none is pending.
func (r *Ring) Complete() (Completion, bool) {
	for {
		e, ok := r.peek()
		if !ok {
			return Completion{}, false
		}
		r.advance()
		if Token(e.UserData) == tokenWake {
			r.interrupted = true
			r.wakeErr = r.armWake()
			continue
		}
		return Completion{Token: Token(e.UserData), Res: e.Res, Flags: e.Flags}, true
	}
}

// Interrupt makes the pending or next Wait return unix.EINTR.
// It is safe to call from any goroutine.
func (r *Ring) Interrupt() error {
	var one [8]byte
	binary.NativeEndian.PutUint64(one[:], 1)
	if _, err := unix.Write(r.wakeFd, one[:]); err != nil {
		return fmt.Errorf("waking ring: %w", err)
	}
	return nil
}

func (r *Ring) armWake() error {
	if err := r.PrepareRead(r.wakeFd, r.wakeBuf[:], tokenWake); err != nil {
		return err
	}
	return r.Submit(1)
}

