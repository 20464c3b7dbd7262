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

package loop

import (
	"github.com/facebook/ttyclock/clock"
	"github.com/facebook/ttyclock/draw"
	"github.com/facebook/ttyclock/session"
)

// Display redraws the clock centred by the session margins
type Display struct {
	clock   clock.Source
	engine  *draw.Engine
	margins *session.Margins
	left    [draw.MarginSize]byte
	top     [draw.MarginSize]byte
}

// NewDisplay returns a Renderer drawing src through e
func NewDisplay(src clock.Source, e *draw.Engine, m *session.Margins) *Display {
	return &Display{clock: src, engine: e, margins: m}
}

// Redraw implements Renderer
func (d *Display) Redraw() error {
	secs, err := d.clock.Seconds()
	if err != nil {
		return err
	}
	left, top := d.margins.Read(&d.left, &d.top)
	return d.engine.Frame(secs, top, left)
}
