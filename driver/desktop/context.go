// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"strings"

	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLSLVersion is prepended to all shader sources.
const GLSLVersion = "#version 120\n"

var glCaps = map[render.Capability]uint32{
	render.DepthTest: gl.DEPTH_TEST,
	render.Blend:     gl.BLEND,
	render.CullFace:  gl.CULL_FACE,
}

var glDepthFuncs = map[render.DepthFunc]uint32{
	render.Less:      gl.LESS,
	render.LessEqual: gl.LEQUAL,
	render.Always:    gl.ALWAYS,
}

var glTargets = map[render.BufferTarget]uint32{
	render.ArrayBuffer:        gl.ARRAY_BUFFER,
	render.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var glUsages = map[render.Usage]uint32{
	render.StaticDraw:  gl.STATIC_DRAW,
	render.DynamicDraw: gl.DYNAMIC_DRAW,
}

var glShaders = map[render.ShaderType]uint32{
	render.VertexShader:   gl.VERTEX_SHADER,
	render.FragmentShader: gl.FRAGMENT_SHADER,
}

var glPrimitives = map[render.Primitive]uint32{
	render.Triangles: gl.TRIANGLES,
	render.Lines:     gl.LINES,
}

// Context is a [render.Context] on the OpenGL 2.1 context of a glfw
// window. It must only be used on the thread the context is current on.
type Context struct {
	Window *glfw.Window
}

var _ render.Context = (*Context)(nil)

// Size returns the framebuffer size, which differs from the window
// size on high-DPI displays.
func (c *Context) Size() (int, int) {
	return c.Window.GetFramebufferSize()
}

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask render.ClearMask) {
	var m uint32
	if mask&render.ColorBufferBit != 0 {
		m |= gl.COLOR_BUFFER_BIT
	}
	if mask&render.DepthBufferBit != 0 {
		m |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(m)
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) Enable(cp render.Capability)  { gl.Enable(glCaps[cp]) }
func (c *Context) Disable(cp render.Capability) { gl.Disable(glCaps[cp]) }
func (c *Context) DepthFunc(f render.DepthFunc) { gl.DepthFunc(glDepthFuncs[f]) }

func (c *Context) CreateBuffer() render.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return render.Buffer(b)
}

func (c *Context) BindBuffer(target render.BufferTarget, b render.Buffer) {
	gl.BindBuffer(glTargets[target], uint32(b))
}

func (c *Context) BufferDataFloat32(target render.BufferTarget, data []float32, usage render.Usage) {
	if len(data) == 0 {
		gl.BufferData(glTargets[target], 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(glTargets[target], len(data)*4, gl.Ptr(data), glUsages[usage])
}

func (c *Context) BufferDataUint16(target render.BufferTarget, data []uint16, usage render.Usage) {
	if len(data) == 0 {
		gl.BufferData(glTargets[target], 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(glTargets[target], len(data)*2, gl.Ptr(data), glUsages[usage])
}

func (c *Context) DeleteBuffer(b render.Buffer) {
	h := uint32(b)
	gl.DeleteBuffers(1, &h)
}

func (c *Context) CreateShader(t render.ShaderType) render.Shader {
	return render.Shader(gl.CreateShader(glShaders[t]))
}

// ShaderSource sets the source with [GLSLVersion] prepended.
func (c *Context) ShaderSource(s render.Shader, src string) {
	csources, free := gl.Strs(GLSLVersion + src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s render.Shader) { gl.CompileShader(uint32(s)) }

func (c *Context) ShaderCompiled(s render.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(s render.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(s), n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) DeleteShader(s render.Shader) { gl.DeleteShader(uint32(s)) }

func (c *Context) CreateProgram() render.Program { return render.Program(gl.CreateProgram()) }

func (c *Context) AttachShader(p render.Program, s render.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p render.Program) { gl.LinkProgram(uint32(p)) }

func (c *Context) ProgramLinked(p render.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p render.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(p), n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) DeleteProgram(p render.Program) { gl.DeleteProgram(uint32(p)) }
func (c *Context) UseProgram(p render.Program)    { gl.UseProgram(uint32(p)) }

func (c *Context) AttribLocation(p render.Program, name string) render.Attrib {
	return render.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *Context) UniformLocation(p render.Program, name string) render.Uniform {
	return render.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

// VertexAttribPointer points a at tightly packed floats in the bound array buffer.
func (c *Context) VertexAttribPointer(a render.Attrib, size int) {
	gl.VertexAttribPointer(uint32(a), int32(size), gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (c *Context) EnableVertexAttribArray(a render.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (c *Context) UniformMatrix4(u render.Uniform, m *math32.Matrix4) {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

func (c *Context) Uniform3(u render.Uniform, v math32.Vector3) {
	gl.Uniform3f(int32(u), v.X, v.Y, v.Z)
}

func (c *Context) DrawArrays(mode render.Primitive, first, count int) {
	gl.DrawArrays(glPrimitives[mode], int32(first), int32(count))
}

func (c *Context) DrawElements(mode render.Primitive, count int) {
	gl.DrawElements(glPrimitives[mode], int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}
