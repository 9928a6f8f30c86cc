// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitenview shows a scene rendered by the software
// rasterizer in an ebiten window, with keyboard input.
package ebitenview

import (
	"cogentcore.org/spincube"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/driver/soft"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var specialKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeySpace, spincube.KeySpace},
	{ebiten.KeyArrowLeft, spincube.KeyLeft},
	{ebiten.KeyArrowRight, spincube.KeyRight},
}

// keyNames returns the key names of this update: the special keys
// just pressed, then the typed characters other than space.
func keyNames(justPressed func(ebiten.Key) bool, chars []rune) []string {
	var names []string
	for _, k := range specialKeys {
		if justPressed(k.key) {
			names = append(names, k.name)
		}
	}
	for _, r := range chars {
		if r != ' ' {
			names = append(names, string(r))
		}
	}
	return names
}

// Game is an [ebiten.Game] that runs one frame per update, with the
// update rate synced to the display.
type Game struct {

	// Context is the software context the scene draws into.
	Context *soft.Context

	// Key, if set, is called with the name of each pressed key.
	Key func(key string) bool

	frame func()
	img   *ebiten.Image
	chars []rune
}

// NewGame returns a new game with a software context of the given size.
func NewGame(width, height int) *Game {
	return &Game{Context: soft.NewContext(width, height)}
}

func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if g.Key != nil {
		for _, k := range keyNames(inpututil.IsKeyJustPressed, g.chars) {
			g.Key(k)
		}
	}
	if g.frame != nil {
		g.frame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	src := g.Context.Image()
	b := src.Bounds()
	if g.img == nil || g.img.Bounds() != b {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(src.Pix)
	screen.DrawImage(g.img, nil)
}

// Layout keeps the software context size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Context.Size()
}

// RunLoop implements [spincube.Loop]: it runs the game until the
// window is closed.
func (g *Game) RunLoop(frame func()) error {
	g.frame = frame
	return ebiten.RunGame(g)
}

// Run opens a window and runs a scene of the config in it until
// the window is closed. The scene applies configs from updates, if any.
func Run(cfg *config.Config, updates <-chan *config.Config) error {
	g := NewGame(cfg.Window.Width, cfg.Window.Height)
	sc, err := spincube.NewScene(cfg, g.Context)
	if err != nil {
		return err
	}
	defer sc.Release()
	sc.Watch(updates)
	g.Key = sc.Key
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return spincube.Run(g, sc)
}
