// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spincube"
	"cogentcore.org/spincube/base/imagex"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/driver/soft"
	"github.com/nfnt/resize"
)

// GIF is the animated output format; all other formats are
// written as one still image per frame.
const GIF = "gif"

// Renderer renders a scene into images.
type Renderer struct {

	// Config is the configuration being rendered.
	Config *config.Config

	// Scene is the scene being rendered.
	Scene *spincube.Scene

	// Context is the software context the scene draws into,
	// Supersample times the output size.
	Context *soft.Context

	// Script is the parsed action script.
	Script []Step

	// Width and Height are the output image size.
	Width, Height int

	next int
}

// NewRenderer returns a new renderer for the given configuration.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	steps, err := ParseScript(cfg.Render.Script, cfg.Anim.Nudge)
	if err != nil {
		return nil, err
	}
	ss := max(cfg.Render.Supersample, 1)
	r := &Renderer{
		Config:  cfg,
		Script:  steps,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Context: soft.NewContext(cfg.Window.Width*ss, cfg.Window.Height*ss),
	}
	r.Scene, err = spincube.NewScene(cfg, r.Context)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// dispatch dispatches the script steps for the given frame.
func (r *Renderer) dispatch(frame int) error {
	for r.next < len(r.Script) && r.Script[r.next].Frame <= frame {
		st := r.Script[r.next]
		slog.Debug("script", "step", st)
		if err := r.Scene.Dispatch(st.Action); err != nil {
			return err
		}
		r.next++
	}
	return nil
}

// Image returns the current frame at the output size.
func (r *Renderer) Image() image.Image {
	img := r.Context.Image()
	if img.Bounds().Dx() == r.Width && img.Bounds().Dy() == r.Height {
		return img
	}
	return resize.Resize(uint(r.Width), uint(r.Height), img, resize.Bilinear)
}

// Run renders the configured number of frames, calling fn with
// each output image.
func (r *Renderer) Run(ctx context.Context, fn func(frame int, img image.Image) error) error {
	loop := &Loop{
		Ctx:    ctx,
		Frames: r.Config.Render.Frames,
		Hz:     r.Config.Render.Hz,
		Before: r.dispatch,
		After: func(frame int) error {
			return fn(frame, r.Image())
		},
	}
	return spincube.Run(loop, r.Scene)
}

// FrameFile returns the file name of the given frame of a still
// image sequence: out with the frame number before its extension.
func FrameFile(out string, frame int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(out, ext), frame, ext)
}

// Render renders the frames of the given configuration into
// Render.Out, as one animated gif or as numbered still images
// in any other format [imagex] supports.
func Render(ctx context.Context, cfg *config.Config) error {
	format, err := imagex.ExtToFormat(cfg.Render.Format)
	if err != nil {
		return err
	}
	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Scene.Release()
	out := cfg.Render.Out
	if format == imagex.GIF {
		var anim gif.GIF
		err = r.Run(ctx, func(frame int, img image.Image) error {
			AddFrame(&anim, img, cfg.Render.Hz)
			return nil
		})
		if err == nil {
			err = SaveGIF(&anim, out)
		}
	} else {
		err = r.Run(ctx, func(frame int, img image.Image) error {
			return imagex.Save(img, FrameFile(out, frame), format)
		})
	}
	if err != nil {
		return err
	}
	slog.Info("rendered", "frames", r.Scene.Frames, "out", out, "format", cfg.Render.Format)
	return nil
}

// AddFrame adds the image as a paletted frame of the gif, shown
// for one frame at hz, or 1/50 s when hz is 0.
func AddFrame(g *gif.GIF, img image.Image, hz float64) {
	delay := 2
	if hz > 0 {
		delay = max(int(100/hz+0.5), 1)
	}
	pm := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pm, img.Bounds(), img, image.Point{})
	g.Image = append(g.Image, pm)
	g.Delay = append(g.Delay, delay)
}

// WriteGIF writes the gif, looping forever.
func WriteGIF(g *gif.GIF, w io.Writer) error {
	g.LoopCount = 0
	return gif.EncodeAll(w, g)
}

// SaveGIF saves the gif to the given file.
func SaveGIF(g *gif.GIF, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteGIF(g, f); err != nil {
		return err
	}
	return f.Close()
}
