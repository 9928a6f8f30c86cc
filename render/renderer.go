// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws vertex sets through an injected, GL-shaped
// graphics [Context]. The [Renderer] sets up fixed pipeline state and
// a single program once, uploads each [geom.VertexSet] into buffers,
// and issues one draw per [Drawable] per frame.
package render

import (
	"log/slog"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/geom"
	"cogentcore.org/spincube/math32"
)

// Drawable is a vertex set uploaded to GPU buffers.
type Drawable struct {
	Name string

	// Set is the source vertex data.
	Set *geom.VertexSet

	Position Buffer
	Color    Buffer
	Normal   Buffer
	Index    Buffer
}

// Renderer draws drawables with one program.
type Renderer struct {
	Context Context

	// Lighting selects the lit program, which needs normals and
	// uploads LightPosition with every draw.
	Lighting bool

	// LightPosition is the view-space light position.
	LightPosition math32.Vector3

	// Background is the clear color.
	Background geom.Color

	// Info is the program and its resolved locations.
	Info ProgramInfo
}

// NewRenderer returns a renderer on the given context, clearing to black.
func NewRenderer(ctx Context, lighting bool, light math32.Vector3) *Renderer {
	return &Renderer{Context: ctx, Lighting: lighting, LightPosition: light, Background: geom.RGBA(0, 0, 0, 1)}
}

// Init sets the fixed pipeline state (clear color, depth test with
// less-or-equal, blending off), builds the program and resolves its
// locations. A build failure is logged and returned, but the renderer
// remains usable: draws with the null program do nothing.
func (r *Renderer) Init() error {
	ctx := r.Context
	bg := r.Background
	ctx.ClearColor(bg.R, bg.G, bg.B, bg.A)
	ctx.Enable(DepthTest)
	ctx.DepthFunc(LessEqual)
	ctx.Disable(Blend)

	vsrc, fsrc := Sources(r.Lighting)
	p, err := BuildProgram(ctx, vsrc, fsrc)
	errors.Log(err)
	r.Info = NewProgramInfo(ctx, p)
	slog.Debug("render: program ready", "program", p, "lighting", r.Lighting,
		"position", r.Info.VertexPosition, "color", r.Info.VertexColor, "normal", r.Info.VertexNormal)
	return err
}

// Upload creates and fills the buffers for the given vertex set.
// Normals are only uploaded for the lit program.
func (r *Renderer) Upload(name string, vs *geom.VertexSet) *Drawable {
	ctx := r.Context
	d := &Drawable{Name: name, Set: vs}
	d.Position = r.arrayBuffer(vs.Positions)
	d.Color = r.arrayBuffer(vs.Colors)
	if r.Lighting && len(vs.Normals) > 0 {
		d.Normal = r.arrayBuffer(vs.Normals)
	}
	if vs.Indexed() {
		d.Index = ctx.CreateBuffer()
		ctx.BindBuffer(ElementArrayBuffer, d.Index)
		ctx.BufferDataUint16(ElementArrayBuffer, vs.Indices, StaticDraw)
	}
	return d
}

func (r *Renderer) arrayBuffer(data []float32) Buffer {
	ctx := r.Context
	b := ctx.CreateBuffer()
	ctx.BindBuffer(ArrayBuffer, b)
	ctx.BufferDataFloat32(ArrayBuffer, data, StaticDraw)
	return b
}

// UpdateColors replaces the color storage of the drawable wholesale
// with the current colors of its vertex set.
func (r *Renderer) UpdateColors(d *Drawable) {
	ctx := r.Context
	ctx.BindBuffer(ArrayBuffer, d.Color)
	ctx.BufferDataFloat32(ArrayBuffer, d.Set.Colors, StaticDraw)
}

// Release deletes the buffers of the drawable.
func (r *Renderer) Release(d *Drawable) {
	for _, b := range []Buffer{d.Position, d.Color, d.Normal, d.Index} {
		if b != 0 {
			r.Context.DeleteBuffer(b)
		}
	}
	*d = Drawable{Name: d.Name, Set: d.Set}
}

// BeginFrame clears color and depth, sets the viewport to the
// current context size, and returns the aspect ratio.
func (r *Renderer) BeginFrame() float32 {
	ctx := r.Context
	w, h := ctx.Size()
	ctx.Viewport(0, 0, w, h)
	ctx.Clear(ColorBufferBit | DepthBufferBit)
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Draw draws the drawable with the given projection and model-view.
// It does nothing if the program is null.
func (r *Renderer) Draw(d *Drawable, proj, mv *math32.Matrix4) {
	ctx := r.Context
	pi := &r.Info
	if pi.Program == 0 {
		return
	}
	ctx.UseProgram(pi.Program)
	r.attrib(pi.VertexPosition, d.Position, 3)
	r.attrib(pi.VertexColor, d.Color, 4)
	if r.Lighting {
		r.attrib(pi.VertexNormal, d.Normal, 3)
	}
	if pi.ProjectionMatrix != NoLocation {
		ctx.UniformMatrix4(pi.ProjectionMatrix, proj)
	}
	if pi.ModelViewMatrix != NoLocation {
		ctx.UniformMatrix4(pi.ModelViewMatrix, mv)
	}
	if r.Lighting && pi.LightPosition != NoLocation {
		ctx.Uniform3(pi.LightPosition, r.LightPosition)
	}
	vs := d.Set
	switch vs.Topology {
	case geom.Lines:
		ctx.DrawArrays(Lines, 0, vs.DrawCount())
	default:
		if d.Index == 0 {
			ctx.DrawArrays(Triangles, 0, vs.DrawCount())
			return
		}
		ctx.BindBuffer(ElementArrayBuffer, d.Index)
		ctx.DrawElements(Triangles, vs.DrawCount())
	}
}

func (r *Renderer) attrib(a Attrib, b Buffer, size int) {
	if a == NoLocation || b == 0 {
		return
	}
	ctx := r.Context
	ctx.BindBuffer(ArrayBuffer, b)
	ctx.VertexAttribPointer(a, size)
	ctx.EnableVertexAttribArray(a)
}
