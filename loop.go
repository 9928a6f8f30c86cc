// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spincube renders a rotating cube, optionally over a
// ground grid, with interactive zoom, scale, rotation and recolor
// controls. A [Scene] holds the state and draws through a
// [render.Context]; hosts provide the context and a [Loop].
package spincube

// Loop is a host display loop. RunLoop calls frame once per display
// refresh on the render thread, until the host stops. The interactive
// hosts never return except on error.
type Loop interface {
	RunLoop(frame func()) error
}

// Run runs the scene on the given loop.
func Run(loop Loop, sc *Scene) error {
	return loop.RunLoop(sc.Frame)
}
