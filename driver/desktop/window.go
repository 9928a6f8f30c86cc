// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop runs a scene in a glfw window with an OpenGL 2.1
// context, with keyboard input.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/spincube"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/render"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and GL calls must happen on the main thread
	runtime.LockOSThread()
}

// Window is a glfw window with a current GL context.
type Window struct {
	Window  *glfw.Window
	Context *Context

	// Key, if set, is called with the name of each pressed key.
	Key func(key string) bool
}

// NewWindow initializes glfw and GL and opens a window per the config.
// Errors are wrapped in [render.ErrContextUnavailable].
func NewWindow(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %w", render.ErrContextUnavailable, err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", render.ErrContextUnavailable, err)
	}
	glw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl: %w", render.ErrContextUnavailable, err)
	}
	glfw.SwapInterval(1)
	slog.Info("opened window", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "width", cfg.Width, "height", cfg.Height)

	w := &Window{Window: glw, Context: &Context{Window: glw}}
	glw.SetKeyCallback(w.keyEvent)
	glw.SetCharCallback(w.charEvent)
	return w, nil
}

var keyNames = map[glfw.Key]string{
	glfw.KeySpace: spincube.KeySpace,
	glfw.KeyLeft:  spincube.KeyLeft,
	glfw.KeyRight: spincube.KeyRight,
}

// keyEvent handles the non-printing keys and space; everything
// else arrives as characters.
func (w *Window) keyEvent(glw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release || w.Key == nil {
		return
	}
	if key == glfw.KeyEscape {
		glw.SetShouldClose(true)
		return
	}
	if name, ok := keyNames[key]; ok {
		w.Key(name)
	}
}

func (w *Window) charEvent(glw *glfw.Window, char rune) {
	if w.Key == nil || char == ' ' {
		return
	}
	w.Key(string(char))
}

// RunLoop implements [spincube.Loop]: it calls frame once per
// vertical sync until the window is closed.
func (w *Window) RunLoop(frame func()) error {
	for !w.Window.ShouldClose() {
		frame()
		w.Window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Terminate destroys the window and terminates glfw.
func (w *Window) Terminate() {
	w.Window.Destroy()
	glfw.Terminate()
}

// Run opens a window and runs a scene of the config in it until
// the window is closed. The scene applies configs from updates, if any.
func Run(cfg *config.Config, updates <-chan *config.Config) error {
	w, err := NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer w.Terminate()
	sc, err := spincube.NewScene(cfg, w.Context)
	if err != nil {
		return err
	}
	defer sc.Release()
	sc.Watch(updates)
	w.Key = sc.Key
	return spincube.Run(w, sc)
}
