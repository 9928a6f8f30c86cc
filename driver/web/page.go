// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package web

import (
	"log/slog"
	"strings"
	"syscall/js"

	"cogentcore.org/spincube"
	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/config"
)

// Loop is the requestAnimationFrame display loop.
type Loop struct{}

// RunLoop implements [spincube.Loop]. It never returns.
func (Loop) RunLoop(frame func()) error {
	var raf js.Func
	raf = js.FuncOf(func(this js.Value, args []js.Value) any {
		frame()
		js.Global().Call("requestAnimationFrame", raf)
		return nil
	})
	js.Global().Call("requestAnimationFrame", raf)
	select {}
}

// Page is the document the scene is bound to.
type Page struct {
	Document js.Value
	Scene    *spincube.Scene

	funcs []js.Func
}

func (p *Page) element(id string) (js.Value, bool) {
	el := p.Document.Call("getElementById", id)
	if !el.Truthy() {
		slog.Debug("missing page element", "id", id)
		return el, false
	}
	return el, true
}

func (p *Page) listen(el js.Value, event string, fn func(this js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(this)
		return nil
	})
	p.funcs = append(p.funcs, f)
	el.Call("addEventListener", event, f)
}

// hide hides el, or its label when it is inside one.
func hide(el js.Value) {
	if parent := el.Get("parentElement"); parent.Truthy() && parent.Get("tagName").String() == "LABEL" {
		el = parent
	}
	el.Get("style").Set("display", "none")
}

func (p *Page) dispatch(name, value string) {
	a, err := anim.ParseAction(name, value, p.Scene.State.NudgeStep)
	if errors.Log(err) != nil {
		return
	}
	errors.Log(p.Scene.Dispatch(a))
}

// Bind binds the sliders and buttons present on the page to the
// scene, and keeps the start/stop label in sync with the scene.
// Scale sliders that do not apply to the scene are hidden, with
// their labels.
func (p *Page) Bind() {
	bound, hidden := Sliders(p.Scene.Config.Scene.PerAxisScale)
	for id, name := range bound {
		if el, ok := p.element(id); ok {
			p.listen(el, "input", func(this js.Value) {
				p.dispatch(name, this.Get("value").String())
			})
		}
	}
	for _, id := range hidden {
		if el, ok := p.element(id); ok {
			hide(el)
		}
	}
	for id, action := range buttons {
		if el, ok := p.element(id); ok {
			name, value, _ := strings.Cut(action, "=")
			p.listen(el, "click", func(this js.Value) {
				p.dispatch(name, value)
			})
		}
	}
	p.Scene.OnChange = func(a anim.Action) {
		if a.Kind == anim.ToggleRotation {
			p.updateLabel()
		}
	}
	p.updateLabel()
}

func (p *Page) updateLabel() {
	el, ok := p.element(StartStopID)
	if !ok {
		return
	}
	label := StartLabel
	if p.Scene.State.Enabled {
		label = StopLabel
	}
	el.Set("textContent", label)
}

// Release releases the event listener functions.
func (p *Page) Release() {
	for _, f := range p.funcs {
		f.Release()
	}
	p.funcs = nil
}

// Run binds a scene of the config to the page and runs it. If the
// browser has no WebGL it alerts the user and returns the error
// without scheduling any frames.
func Run(cfg *config.Config) error {
	doc := js.Global().Get("document")
	ctx, err := NewContext(doc.Call("getElementById", CanvasID))
	if err != nil {
		js.Global().Call("alert", ContextAlertText)
		return err
	}
	sc, err := spincube.NewScene(cfg, ctx)
	if err != nil {
		return err
	}
	p := &Page{Document: doc, Scene: sc}
	p.Bind()
	return spincube.Run(Loop{}, sc)
}
