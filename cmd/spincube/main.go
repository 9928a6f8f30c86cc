// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spincube shows a rotating cube in a glfw window, or
// renders it to image files without a display.
package main

import (
	"cogentcore.org/spincube/cmd/spincube/cmd"
	"cogentcore.org/spincube/driver/desktop"
)

func main() {
	cmd.Execute("spincube", desktop.Run)
}
