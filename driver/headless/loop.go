// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless renders a scene without a display, into a
// series of still images or one animated GIF, using the software
// rasterizer in [soft].
package headless

import (
	"context"
	"time"
)

// Loop is a display loop that runs a fixed number of frames,
// paced by a ticker when Hz is positive.
type Loop struct {

	// Ctx stops the loop early when done; nil means never.
	Ctx context.Context

	// Frames is the number of frames to run.
	Frames int

	// Hz is the frame rate; 0 runs as fast as possible.
	Hz float64

	// Before, if set, is called with the frame index before each frame.
	Before func(frame int) error

	// After, if set, is called with the frame index after each frame.
	After func(frame int) error
}

// RunLoop implements [spincube.Loop].
func (l *Loop) RunLoop(frame func()) error {
	ctx := l.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	var tick <-chan time.Time
	if l.Hz > 0 {
		t := time.NewTicker(time.Duration(float64(time.Second) / l.Hz))
		defer t.Stop()
		tick = t.C
	}
	for i := range l.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if l.Before != nil {
			if err := l.Before(i); err != nil {
				return err
			}
		}
		frame()
		if l.After != nil {
			if err := l.After(i); err != nil {
				return err
			}
		}
	}
	return nil
}
