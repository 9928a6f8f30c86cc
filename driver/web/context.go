// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package web

import (
	"encoding/binary"
	"math"
	"syscall/js"

	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
)

// FragmentPrecision is prepended to fragment shader sources.
const FragmentPrecision = "precision mediump float;\n"

// glConsts are the WebGL enum values, read once from the context.
type glConsts struct {
	colorBufferBit, depthBufferBit             int
	depthTest, blend, cullFace                 int
	less, lequal, always                       int
	arrayBuffer, elementArrayBuffer            int
	staticDraw, dynamicDraw                    int
	vertexShader, fragmentShader               int
	compileStatus, linkStatus                  int
	floatType, unsignedShort, triangles, lines int
}

func loadConsts(gl js.Value) glConsts {
	i := func(name string) int { return gl.Get(name).Int() }
	return glConsts{
		colorBufferBit: i("COLOR_BUFFER_BIT"), depthBufferBit: i("DEPTH_BUFFER_BIT"),
		depthTest: i("DEPTH_TEST"), blend: i("BLEND"), cullFace: i("CULL_FACE"),
		less: i("LESS"), lequal: i("LEQUAL"), always: i("ALWAYS"),
		arrayBuffer: i("ARRAY_BUFFER"), elementArrayBuffer: i("ELEMENT_ARRAY_BUFFER"),
		staticDraw: i("STATIC_DRAW"), dynamicDraw: i("DYNAMIC_DRAW"),
		vertexShader: i("VERTEX_SHADER"), fragmentShader: i("FRAGMENT_SHADER"),
		compileStatus: i("COMPILE_STATUS"), linkStatus: i("LINK_STATUS"),
		floatType: i("FLOAT"), unsignedShort: i("UNSIGNED_SHORT"),
		triangles: i("TRIANGLES"), lines: i("LINES"),
	}
}

// Context is a [render.Context] on the WebGL context of a canvas.
// WebGL objects are kept in tables keyed by the handles given out.
type Context struct {
	Canvas js.Value
	GL     js.Value

	consts   glConsts
	nextID   uint32
	objects  map[uint32]js.Value
	shaders  map[render.Shader]render.ShaderType
	uniforms map[render.Uniform]js.Value
}

var _ render.Context = (*Context)(nil)

// NewContext returns the WebGL context of the canvas, or
// [render.ErrContextUnavailable] if the browser has none.
func NewContext(canvas js.Value) (*Context, error) {
	if !canvas.Truthy() {
		return nil, render.ErrContextUnavailable
	}
	gl := canvas.Call("getContext", "webgl")
	if !gl.Truthy() {
		gl = canvas.Call("getContext", "experimental-webgl")
	}
	if !gl.Truthy() {
		return nil, render.ErrContextUnavailable
	}
	return &Context{
		Canvas:   canvas,
		GL:       gl,
		consts:   loadConsts(gl),
		objects:  map[uint32]js.Value{},
		shaders:  map[render.Shader]render.ShaderType{},
		uniforms: map[render.Uniform]js.Value{},
	}, nil
}

func (c *Context) add(v js.Value) uint32 {
	if !v.Truthy() {
		return 0
	}
	c.nextID++
	c.objects[c.nextID] = v
	return c.nextID
}

func (c *Context) object(h uint32) js.Value {
	if v, ok := c.objects[h]; ok {
		return v
	}
	return js.Null()
}

// Size returns the drawing buffer size of the canvas.
func (c *Context) Size() (int, int) {
	return c.GL.Get("drawingBufferWidth").Int(), c.GL.Get("drawingBufferHeight").Int()
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.GL.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask render.ClearMask) {
	m := 0
	if mask&render.ColorBufferBit != 0 {
		m |= c.consts.colorBufferBit
	}
	if mask&render.DepthBufferBit != 0 {
		m |= c.consts.depthBufferBit
	}
	c.GL.Call("clear", m)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.GL.Call("viewport", x, y, width, height)
}

func (c *Context) capability(cp render.Capability) int {
	switch cp {
	case render.Blend:
		return c.consts.blend
	case render.CullFace:
		return c.consts.cullFace
	}
	return c.consts.depthTest
}

func (c *Context) Enable(cp render.Capability)  { c.GL.Call("enable", c.capability(cp)) }
func (c *Context) Disable(cp render.Capability) { c.GL.Call("disable", c.capability(cp)) }

func (c *Context) DepthFunc(f render.DepthFunc) {
	v := c.consts.lequal
	switch f {
	case render.Less:
		v = c.consts.less
	case render.Always:
		v = c.consts.always
	}
	c.GL.Call("depthFunc", v)
}

func (c *Context) target(t render.BufferTarget) int {
	if t == render.ElementArrayBuffer {
		return c.consts.elementArrayBuffer
	}
	return c.consts.arrayBuffer
}

func (c *Context) usage(u render.Usage) int {
	if u == render.DynamicDraw {
		return c.consts.dynamicDraw
	}
	return c.consts.staticDraw
}

func (c *Context) CreateBuffer() render.Buffer {
	return render.Buffer(c.add(c.GL.Call("createBuffer")))
}

func (c *Context) BindBuffer(target render.BufferTarget, b render.Buffer) {
	c.GL.Call("bindBuffer", c.target(target), c.object(uint32(b)))
}

// typedArray copies the little-endian bytes into a new JS typed array
// of the given constructor.
func typedArray(ctor string, b []byte, n int) js.Value {
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get(ctor).New(u8.Get("buffer"), 0, n)
}

func (c *Context) BufferDataFloat32(target render.BufferTarget, data []float32, usage render.Usage) {
	b := make([]byte, 4*len(data))
	for i, f := range data {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	c.GL.Call("bufferData", c.target(target), typedArray("Float32Array", b, len(data)), c.usage(usage))
}

func (c *Context) BufferDataUint16(target render.BufferTarget, data []uint16, usage render.Usage) {
	b := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	c.GL.Call("bufferData", c.target(target), typedArray("Uint16Array", b, len(data)), c.usage(usage))
}

func (c *Context) DeleteBuffer(b render.Buffer) {
	c.GL.Call("deleteBuffer", c.object(uint32(b)))
	delete(c.objects, uint32(b))
}

func (c *Context) CreateShader(t render.ShaderType) render.Shader {
	typ := c.consts.vertexShader
	if t == render.FragmentShader {
		typ = c.consts.fragmentShader
	}
	s := render.Shader(c.add(c.GL.Call("createShader", typ)))
	c.shaders[s] = t
	return s
}

// ShaderSource sets the source, with [FragmentPrecision] prepended
// for fragment shaders.
func (c *Context) ShaderSource(s render.Shader, src string) {
	if c.shaders[s] == render.FragmentShader {
		src = FragmentPrecision + src
	}
	c.GL.Call("shaderSource", c.object(uint32(s)), src)
}

func (c *Context) CompileShader(s render.Shader) {
	c.GL.Call("compileShader", c.object(uint32(s)))
}

func (c *Context) ShaderCompiled(s render.Shader) bool {
	return c.GL.Call("getShaderParameter", c.object(uint32(s)), c.consts.compileStatus).Truthy()
}

func (c *Context) ShaderInfoLog(s render.Shader) string {
	return c.GL.Call("getShaderInfoLog", c.object(uint32(s))).String()
}

func (c *Context) DeleteShader(s render.Shader) {
	c.GL.Call("deleteShader", c.object(uint32(s)))
	delete(c.objects, uint32(s))
	delete(c.shaders, s)
}

func (c *Context) CreateProgram() render.Program {
	return render.Program(c.add(c.GL.Call("createProgram")))
}

func (c *Context) AttachShader(p render.Program, s render.Shader) {
	c.GL.Call("attachShader", c.object(uint32(p)), c.object(uint32(s)))
}

func (c *Context) LinkProgram(p render.Program) {
	c.GL.Call("linkProgram", c.object(uint32(p)))
}

func (c *Context) ProgramLinked(p render.Program) bool {
	return c.GL.Call("getProgramParameter", c.object(uint32(p)), c.consts.linkStatus).Truthy()
}

func (c *Context) ProgramInfoLog(p render.Program) string {
	return c.GL.Call("getProgramInfoLog", c.object(uint32(p))).String()
}

func (c *Context) DeleteProgram(p render.Program) {
	c.GL.Call("deleteProgram", c.object(uint32(p)))
	delete(c.objects, uint32(p))
}

func (c *Context) UseProgram(p render.Program) {
	c.GL.Call("useProgram", c.object(uint32(p)))
}

func (c *Context) AttribLocation(p render.Program, name string) render.Attrib {
	return render.Attrib(c.GL.Call("getAttribLocation", c.object(uint32(p)), name).Int())
}

// UniformLocation returns a handle to the WebGLUniformLocation object,
// or [render.NoLocation] if the program has no such uniform.
func (c *Context) UniformLocation(p render.Program, name string) render.Uniform {
	loc := c.GL.Call("getUniformLocation", c.object(uint32(p)), name)
	if !loc.Truthy() {
		return render.NoLocation
	}
	u := render.Uniform(c.add(loc))
	c.uniforms[u] = loc
	return u
}

func (c *Context) VertexAttribPointer(a render.Attrib, size int) {
	c.GL.Call("vertexAttribPointer", int(a), size, c.consts.floatType, false, 0, 0)
}

func (c *Context) EnableVertexAttribArray(a render.Attrib) {
	c.GL.Call("enableVertexAttribArray", int(a))
}

func (c *Context) UniformMatrix4(u render.Uniform, m *math32.Matrix4) {
	loc, ok := c.uniforms[u]
	if !ok {
		return
	}
	arr := js.Global().Get("Float32Array").New(16)
	for i, v := range m {
		arr.SetIndex(i, v)
	}
	c.GL.Call("uniformMatrix4fv", loc, false, arr)
}

func (c *Context) Uniform3(u render.Uniform, v math32.Vector3) {
	if loc, ok := c.uniforms[u]; ok {
		c.GL.Call("uniform3f", loc, v.X, v.Y, v.Z)
	}
}

func (c *Context) primitive(p render.Primitive) int {
	if p == render.Lines {
		return c.consts.lines
	}
	return c.consts.triangles
}

func (c *Context) DrawArrays(mode render.Primitive, first, count int) {
	c.GL.Call("drawArrays", c.primitive(mode), first, count)
}

func (c *Context) DrawElements(mode render.Primitive, count int) {
	c.GL.Call("drawElements", c.primitive(mode), count, c.consts.unsignedShort, 0)
}
