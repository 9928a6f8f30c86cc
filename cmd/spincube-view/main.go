// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spincube-view is spincube with the window drawn by the
// software rasterizer in an ebiten window, for systems without
// OpenGL 2.1.
package main

import (
	"cogentcore.org/spincube/cmd/spincube/cmd"
	"cogentcore.org/spincube/driver/ebitenview"
)

func main() {
	cmd.Execute("spincube-view", ebitenview.Run)
}
