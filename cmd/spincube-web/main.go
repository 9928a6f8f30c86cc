// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command spincube-web runs spincube in the browser. Build it with
// GOOS=js GOARCH=wasm and serve it with index.html and wasm_exec.js.
// The preset comes from the page's ?preset= query parameter.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/driver/web"
	"cogentcore.org/spincube/logx"
)

func main() {
	logx.InitLogger(os.Stderr)
	cfg := config.Default()
	query := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if q := query.Call("get", "preset"); q.Truthy() {
		var p config.Presets
		err := p.SetString(q.String())
		if err == nil {
			cfg, err = config.New(p)
		}
		if err != nil {
			slog.Error("bad preset", "preset", q.String(), "err", err)
			cfg = config.Default()
		}
	}
	if err := web.Run(cfg); err != nil {
		slog.Error("spincube", "err", err)
	}
}
