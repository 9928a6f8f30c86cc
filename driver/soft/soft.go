// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package soft provides a software [render.Context] that rasterizes
// with fauxgl into an in-memory image. Programs are not compiled: the
// shader text is checked with [render.ParseShader], and the vertex
// stage of the flat and lit programs is evaluated in Go.
package soft

import (
	"image"
	"slices"

	"cogentcore.org/spincube/geom"
	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
	"github.com/fogleman/fauxgl"
)

var _ render.Context = (*Context)(nil)

type buffer struct {
	floats  []float32
	indices []uint16
}

type shader struct {
	typ      render.ShaderType
	src      string
	compiled bool
	log      string
	decls    []render.Declaration
}

type program struct {
	attached []render.Shader
	linked   bool
	log      string
	attribs  []string
	uniforms []string
	mats     map[render.Uniform]math32.Matrix4
	vec3s    map[render.Uniform]math32.Vector3
}

// lit returns whether the program is the lit program.
func (p *program) lit() bool {
	return slices.Contains(p.attribs, render.VertexNormalName) && slices.Contains(p.uniforms, render.LightPositionName)
}

// vertexShader passes vertices through; the vertex stage has already
// filled in Output and the shaded color.
type vertexShader struct{}

func (vertexShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex  { return v }
func (vertexShader) Fragment(v fauxgl.Vertex) fauxgl.Color { return v.Color }

type pointer struct {
	buffer  render.Buffer
	size    int
	enabled bool
}

// Context is a software graphics context of a fixed size.
type Context struct {

	// FB is the fauxgl context holding the color and depth buffers.
	FB *fauxgl.Context

	clear    fauxgl.Color
	depth    bool
	nextID   uint32
	buffers  map[render.Buffer]*buffer
	bound    map[render.BufferTarget]render.Buffer
	shaders  map[render.Shader]*shader
	programs map[render.Program]*program
	current  render.Program
	pointers map[render.Attrib]*pointer
}

// NewContext returns a new software context of the given size.
func NewContext(width, height int) *Context {
	c := &Context{
		buffers:  map[render.Buffer]*buffer{},
		bound:    map[render.BufferTarget]render.Buffer{},
		shaders:  map[render.Shader]*shader{},
		programs: map[render.Program]*program{},
		pointers: map[render.Attrib]*pointer{},
	}
	c.resize(width, height)
	return c
}

func (c *Context) resize(width, height int) {
	fb := fauxgl.NewContext(width, height)
	fb.Shader = vertexShader{}
	fb.Cull = fauxgl.CullNone
	fb.AlphaBlend = false
	fb.ReadDepth = c.depth
	fb.WriteDepth = c.depth
	fb.ClearColor = c.clear
	c.FB = fb
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

// Image returns the color buffer.
func (c *Context) Image() *image.NRGBA {
	return c.FB.ColorBuffer
}

// Resize sets the drawable size, discarding the current contents.
func (c *Context) Resize(width, height int) {
	if width != c.FB.Width || height != c.FB.Height {
		c.resize(width, height)
	}
}

func (c *Context) Size() (int, int) {
	return c.FB.Width, c.FB.Height
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clear = fauxgl.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
	c.FB.ClearColor = c.clear
}

func (c *Context) Clear(mask render.ClearMask) {
	if mask&render.ColorBufferBit != 0 {
		c.FB.ClearColorBufferWith(c.clear)
	}
	if mask&render.DepthBufferBit != 0 {
		c.FB.ClearDepthBuffer()
	}
}

// Viewport resizes the buffers when the size changes; the origin is ignored.
func (c *Context) Viewport(x, y, width, height int) {
	c.Resize(width, height)
}

func (c *Context) setCap(cp render.Capability, on bool) {
	switch cp {
	case render.DepthTest:
		c.depth = on
		c.FB.ReadDepth = on
		c.FB.WriteDepth = on
	case render.Blend:
		c.FB.AlphaBlend = on
	case render.CullFace:
		if on {
			c.FB.Cull = fauxgl.CullBack
		} else {
			c.FB.Cull = fauxgl.CullNone
		}
	}
}

func (c *Context) Enable(cp render.Capability)  { c.setCap(cp, true) }
func (c *Context) Disable(cp render.Capability) { c.setCap(cp, false) }

// DepthFunc is accepted for any function; fauxgl always keeps the nearer fragment.
func (c *Context) DepthFunc(f render.DepthFunc) {}

func (c *Context) CreateBuffer() render.Buffer {
	b := render.Buffer(c.id())
	c.buffers[b] = &buffer{}
	return b
}

func (c *Context) BindBuffer(target render.BufferTarget, b render.Buffer) {
	c.bound[target] = b
}

func (c *Context) BufferDataFloat32(target render.BufferTarget, data []float32, usage render.Usage) {
	if b := c.buffers[c.bound[target]]; b != nil {
		b.floats = slices.Clone(data)
	}
}

func (c *Context) BufferDataUint16(target render.BufferTarget, data []uint16, usage render.Usage) {
	if b := c.buffers[c.bound[target]]; b != nil {
		b.indices = slices.Clone(data)
	}
}

func (c *Context) DeleteBuffer(b render.Buffer) {
	delete(c.buffers, b)
}

func (c *Context) CreateShader(t render.ShaderType) render.Shader {
	s := render.Shader(c.id())
	c.shaders[s] = &shader{typ: t}
	return s
}

func (c *Context) ShaderSource(s render.Shader, src string) {
	if sh := c.shaders[s]; sh != nil {
		sh.src = src
	}
}

func (c *Context) CompileShader(s render.Shader) {
	sh := c.shaders[s]
	if sh == nil {
		return
	}
	ds, err := render.ParseShader(sh.src)
	if err != nil {
		sh.log = err.Error()
		sh.compiled = false
		return
	}
	sh.decls = ds
	sh.compiled = true
}

func (c *Context) ShaderCompiled(s render.Shader) bool {
	sh := c.shaders[s]
	return sh != nil && sh.compiled
}

func (c *Context) ShaderInfoLog(s render.Shader) string {
	if sh := c.shaders[s]; sh != nil {
		return sh.log
	}
	return ""
}

func (c *Context) DeleteShader(s render.Shader) {
	delete(c.shaders, s)
}

func (c *Context) CreateProgram() render.Program {
	p := render.Program(c.id())
	c.programs[p] = &program{}
	return p
}

func (c *Context) AttachShader(p render.Program, s render.Shader) {
	if pr := c.programs[p]; pr != nil {
		pr.attached = append(pr.attached, s)
	}
}

func (c *Context) LinkProgram(p render.Program) {
	pr := c.programs[p]
	if pr == nil {
		return
	}
	var vs, fs *shader
	for _, s := range pr.attached {
		sh := c.shaders[s]
		if sh == nil || !sh.compiled {
			continue
		}
		if sh.typ == render.VertexShader {
			vs = sh
		} else {
			fs = sh
		}
	}
	if vs == nil || fs == nil {
		pr.linked = false
		pr.log = "Attached vertex and fragment shaders are required"
		return
	}
	pr.attribs, pr.uniforms = nil, nil
	for _, d := range vs.decls {
		if !d.Uniform {
			pr.attribs = append(pr.attribs, d.Name)
		}
	}
	for _, sh := range []*shader{vs, fs} {
		for _, d := range sh.decls {
			if d.Uniform && !slices.Contains(pr.uniforms, d.Name) {
				pr.uniforms = append(pr.uniforms, d.Name)
			}
		}
	}
	pr.mats = map[render.Uniform]math32.Matrix4{}
	pr.vec3s = map[render.Uniform]math32.Vector3{}
	pr.linked = true
}

func (c *Context) ProgramLinked(p render.Program) bool {
	pr := c.programs[p]
	return pr != nil && pr.linked
}

func (c *Context) ProgramInfoLog(p render.Program) string {
	if pr := c.programs[p]; pr != nil {
		return pr.log
	}
	return ""
}

func (c *Context) DeleteProgram(p render.Program) {
	delete(c.programs, p)
	if c.current == p {
		c.current = 0
	}
}

func (c *Context) UseProgram(p render.Program) {
	c.current = p
}

func (c *Context) AttribLocation(p render.Program, name string) render.Attrib {
	pr := c.programs[p]
	if pr == nil || !pr.linked {
		return render.NoLocation
	}
	return render.Attrib(slices.Index(pr.attribs, name))
}

func (c *Context) UniformLocation(p render.Program, name string) render.Uniform {
	pr := c.programs[p]
	if pr == nil || !pr.linked {
		return render.NoLocation
	}
	return render.Uniform(slices.Index(pr.uniforms, name))
}

func (c *Context) VertexAttribPointer(a render.Attrib, size int) {
	if a < 0 {
		return
	}
	p := c.pointers[a]
	if p == nil {
		p = &pointer{}
		c.pointers[a] = p
	}
	p.buffer = c.bound[render.ArrayBuffer]
	p.size = size
}

func (c *Context) EnableVertexAttribArray(a render.Attrib) {
	if p := c.pointers[a]; p != nil {
		p.enabled = true
	}
}

func (c *Context) UniformMatrix4(u render.Uniform, m *math32.Matrix4) {
	if pr := c.programs[c.current]; pr != nil && pr.linked && u >= 0 {
		pr.mats[u] = *m
	}
}

func (c *Context) Uniform3(u render.Uniform, v math32.Vector3) {
	if pr := c.programs[c.current]; pr != nil && pr.linked && u >= 0 {
		pr.vec3s[u] = v
	}
}

func (c *Context) DrawArrays(mode render.Primitive, first, count int) {
	vs := c.vertices(first + count)
	if vs == nil {
		return
	}
	c.draw(mode, vs, func(i int) int { return first + i }, count)
}

func (c *Context) DrawElements(mode render.Primitive, count int) {
	eb := c.buffers[c.bound[render.ElementArrayBuffer]]
	if eb == nil || len(eb.indices) < count {
		return
	}
	n := 0
	for _, ix := range eb.indices[:count] {
		if int(ix) >= n {
			n = int(ix) + 1
		}
	}
	vs := c.vertices(n)
	if vs == nil {
		return
	}
	c.draw(mode, vs, func(i int) int { return int(eb.indices[i]) }, count)
}

func (c *Context) draw(mode render.Primitive, vs []fauxgl.Vertex, index func(i int) int, count int) {
	switch mode {
	case render.Lines:
		for i := 0; i+1 < count; i += 2 {
			c.FB.DrawLine(fauxgl.NewLine(vs[index(i)], vs[index(i+1)]))
		}
	default:
		for i := 0; i+2 < count; i += 3 {
			c.FB.DrawTriangle(fauxgl.NewTriangle(vs[index(i)], vs[index(i+1)], vs[index(i+2)]))
		}
	}
}

// attrib returns the data of the named attribute of the current
// program, if its pointer is enabled and covers n vertices.
func (c *Context) attrib(pr *program, name string, n int) ([]float32, int) {
	loc := slices.Index(pr.attribs, name)
	p := c.pointers[render.Attrib(loc)]
	if loc < 0 || p == nil || !p.enabled {
		return nil, 0
	}
	b := c.buffers[p.buffer]
	if b == nil || len(b.floats) < n*p.size {
		return nil, 0
	}
	return b.floats, p.size
}

// vertices runs the vertex stage of the current program for the
// first n vertices. It returns nil if nothing can be drawn.
func (c *Context) vertices(n int) []fauxgl.Vertex {
	pr := c.programs[c.current]
	if pr == nil || !pr.linked {
		return nil
	}
	pos, psz := c.attrib(pr, render.VertexPositionName, n)
	if pos == nil || psz < 3 {
		return nil
	}
	col, csz := c.attrib(pr, render.VertexColorName, n)
	lit := pr.lit()
	var nrm []float32
	if lit {
		nrm, _ = c.attrib(pr, render.VertexNormalName, n)
	}
	mv := pr.mats[render.Uniform(slices.Index(pr.uniforms, render.ModelViewMatrixName))]
	proj := pr.mats[render.Uniform(slices.Index(pr.uniforms, render.ProjectionMatrixName))]
	light := pr.vec3s[render.Uniform(slices.Index(pr.uniforms, render.LightPositionName))]
	mvp := proj.Mul(&mv)
	fmvp := Matrix(mvp)

	vs := make([]fauxgl.Vertex, n)
	for i := range n {
		p := math32.Vec3(pos[i*psz], pos[i*psz+1], pos[i*psz+2])
		clr := geom.RGBA(0, 0, 0, 1)
		if col != nil && csz == 4 {
			clr = geom.RGBA(col[i*4], col[i*4+1], col[i*4+2], col[i*4+3])
		}
		if lit && nrm != nil {
			eye := p.MulMatrix4AsPoint(&mv)
			nv := math32.Vec3(nrm[i*3], nrm[i*3+1], nrm[i*3+2]).MulMatrix4AsNormal(&mv)
			clr = render.Shade(clr, eye, nv, light)
		}
		v := fauxgl.Vertex{
			Position: fauxgl.V(float64(p.X), float64(p.Y), float64(p.Z)),
			Color:    fauxgl.Color{R: float64(clr.R), G: float64(clr.G), B: float64(clr.B), A: float64(clr.A)},
		}
		v.Output = fmvp.MulPositionW(v.Position)
		vs[i] = v
	}
	return vs
}

// Matrix converts a column-major matrix to a fauxgl matrix.
func Matrix(m *math32.Matrix4) fauxgl.Matrix {
	f := func(r, c int) float64 { return float64(m.At(r, c)) }
	return fauxgl.Matrix{
		X00: f(0, 0), X01: f(0, 1), X02: f(0, 2), X03: f(0, 3),
		X10: f(1, 0), X11: f(1, 1), X12: f(1, 2), X13: f(1, 3),
		X20: f(2, 0), X21: f(2, 1), X22: f(2, 2), X23: f(2, 3),
		X30: f(3, 0), X31: f(3, 1), X32: f(3, 2), X33: f(3, 3),
	}
}
