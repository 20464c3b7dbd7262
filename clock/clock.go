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

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Source returns the number of seconds to display
type Source interface {
	Seconds() (int64, error)
}

// Realtime reads a system clock through clock_gettime
type Realtime struct {
	// ID is the clock id, such as unix.CLOCK_REALTIME
	ID int32
	// Offset is added to UTC, sub-second parts are dropped
	Offset time.Duration
}

// Seconds returns whole seconds since the epoch on the clock, shifted by Offset
func (r Realtime) Seconds() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(r.ID, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime(%d): %w", r.ID, err)
	}
	return int64(ts.Sec) + int64(r.Offset/time.Second), nil
}

// LocalOffset returns the offset from UTC of the zone t is in
func LocalOffset(t time.Time) time.Duration {
	_, off := t.Zone()
	return time.Duration(off) * time.Second
}
