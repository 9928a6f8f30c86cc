// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/math32"
)

// ErrContextUnavailable is returned by hosts that cannot obtain
// a graphics context. No frames are rendered in that case.
var ErrContextUnavailable = errors.New("render: unable to initialize graphics context; the host may not support it")

// Buffer is a GPU buffer handle. Zero is the null buffer.
type Buffer uint32

// Shader is a shader object handle. Zero is the null shader.
type Shader uint32

// Program is a linked program handle. Zero is the null program,
// on which draws do nothing.
type Program uint32

// Attrib is a vertex attribute location, or [NoLocation].
type Attrib int32

// Uniform is a uniform location, or [NoLocation].
type Uniform int32

// NoLocation is the location of attributes and uniforms
// that are not active in a program.
const NoLocation = -1

// ClearMask selects the buffers cleared by [Context.Clear].
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Capability is a server-side capability toggled with
// [Context.Enable] and [Context.Disable].
type Capability int32

const (
	DepthTest Capability = iota
	Blend
	CullFace
)

// DepthFunc is a depth comparison function.
type DepthFunc int32

const (
	Less DepthFunc = iota
	LessEqual
	Always
)

// BufferTarget is a buffer binding point.
type BufferTarget int32

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Usage is a buffer usage hint.
type Usage int32

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// ShaderType is the stage of a shader.
type ShaderType int32

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	if t == FragmentShader {
		return "fragment"
	}
	return "vertex"
}

// Primitive is the primitive type of a draw call.
type Primitive int32

const (
	Triangles Primitive = iota
	Lines
)

// Context is the graphics capability provided by a host: a small,
// GL-shaped subset of WebGL 1 / OpenGL 2.1. All calls happen on the
// host's render thread. Index buffers are always uint16.
type Context interface {

	// Size returns the current drawable size in pixels.
	Size() (width, height int)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int)
	Enable(c Capability)
	Disable(c Capability)
	DepthFunc(f DepthFunc)

	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)

	// BufferDataFloat32 replaces the storage of the buffer bound to target.
	BufferDataFloat32(target BufferTarget, data []float32, usage Usage)

	// BufferDataUint16 replaces the storage of the buffer bound to target.
	BufferDataUint16(target BufferTarget, data []uint16, usage Usage)
	DeleteBuffer(b Buffer)

	// CreateShader returns a new shader, or 0 on failure.
	CreateShader(t ShaderType) Shader

	// ShaderSource sets the source of the shader. Hosts prepend
	// their version or precision header.
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	// CreateProgram returns a new program, or 0 on failure.
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	// AttribLocation returns the location of the named attribute,
	// or [NoLocation] if it is not active.
	AttribLocation(p Program, name string) Attrib

	// UniformLocation returns the location of the named uniform,
	// or [NoLocation] if it is not active.
	UniformLocation(p Program, name string) Uniform

	// VertexAttribPointer sources the attribute from the currently
	// bound array buffer as size floats per vertex, tightly packed.
	VertexAttribPointer(a Attrib, size int)
	EnableVertexAttribArray(a Attrib)

	UniformMatrix4(u Uniform, m *math32.Matrix4)
	Uniform3(u Uniform, v math32.Vector3)

	DrawArrays(mode Primitive, first, count int)

	// DrawElements draws count uint16 indices from the bound
	// element array buffer.
	DrawElements(mode Primitive, count int)
}
