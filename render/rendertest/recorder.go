// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides a recording [render.Context] for tests.
package rendertest

import (
	"fmt"
	"slices"

	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
)

// Call is one recorded context call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprint(c.Name, c.Args)
}

type shader struct {
	typ      render.ShaderType
	src      string
	compiled bool
	log      string
	decls    []render.Declaration
}

type program struct {
	shaders  []render.Shader
	linked   bool
	log      string
	attribs  []string
	uniforms []string
}

var _ render.Context = (*Recorder)(nil)

// Recorder is a [render.Context] that records every call and keeps
// just enough state to answer status and location queries. Shaders
// are checked with [render.ParseShader].
type Recorder struct {

	// Width and Height are returned by Size.
	Width, Height int

	// FailCompile makes compilation of the given shader types fail.
	FailCompile map[render.ShaderType]bool

	// FailLink makes every link fail.
	FailLink bool

	// Calls are the recorded calls in order.
	Calls []Call

	// Buffers holds the current contents of each buffer.
	Buffers map[render.Buffer][]float32

	// Indices holds the current contents of each index buffer.
	Indices map[render.Buffer][]uint16

	nextID   uint32
	shaders  map[render.Shader]*shader
	programs map[render.Program]*program
	bound    map[render.BufferTarget]render.Buffer
}

// NewRecorder returns a recorder with the given drawable size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		Width:       width,
		Height:      height,
		FailCompile: map[render.ShaderType]bool{},
		Buffers:     map[render.Buffer][]float32{},
		Indices:     map[render.Buffer][]uint16{},
		shaders:     map[render.Shader]*shader{},
		programs:    map[render.Program]*program{},
		bound:       map[render.BufferTarget]render.Buffer{},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// Names returns the names of the recorded calls.
func (r *Recorder) Names() []string {
	ns := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ns[i] = c.Name
	}
	return ns
}

// Find returns the recorded calls with the given name.
func (r *Recorder) Find(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Count returns the number of recorded calls with the given name.
func (r *Recorder) Count(name string) int {
	return len(r.Find(name))
}

// Reset clears the recorded calls, keeping all state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// LiveShaders returns the number of shaders not yet deleted.
func (r *Recorder) LiveShaders() int { return len(r.shaders) }

// LivePrograms returns the number of programs not yet deleted.
func (r *Recorder) LivePrograms() int { return len(r.programs) }

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) { r.record("ClearColor", cr, cg, cb, ca) }
func (r *Recorder) Clear(mask render.ClearMask)       { r.record("Clear", mask) }
func (r *Recorder) Viewport(x, y, w, h int)           { r.record("Viewport", x, y, w, h) }
func (r *Recorder) Enable(c render.Capability)        { r.record("Enable", c) }
func (r *Recorder) Disable(c render.Capability)       { r.record("Disable", c) }
func (r *Recorder) DepthFunc(f render.DepthFunc)      { r.record("DepthFunc", f) }

func (r *Recorder) CreateBuffer() render.Buffer {
	b := render.Buffer(r.id())
	r.record("CreateBuffer", b)
	return b
}

func (r *Recorder) BindBuffer(target render.BufferTarget, b render.Buffer) {
	r.bound[target] = b
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferDataFloat32(target render.BufferTarget, data []float32, usage render.Usage) {
	b := r.bound[target]
	r.Buffers[b] = slices.Clone(data)
	r.record("BufferDataFloat32", target, b, len(data))
}

func (r *Recorder) BufferDataUint16(target render.BufferTarget, data []uint16, usage render.Usage) {
	b := r.bound[target]
	r.Indices[b] = slices.Clone(data)
	r.record("BufferDataUint16", target, b, len(data))
}

func (r *Recorder) DeleteBuffer(b render.Buffer) {
	delete(r.Buffers, b)
	delete(r.Indices, b)
	r.record("DeleteBuffer", b)
}

func (r *Recorder) CreateShader(t render.ShaderType) render.Shader {
	s := render.Shader(r.id())
	r.shaders[s] = &shader{typ: t}
	r.record("CreateShader", t, s)
	return s
}

func (r *Recorder) ShaderSource(s render.Shader, src string) {
	if sh := r.shaders[s]; sh != nil {
		sh.src = src
	}
	r.record("ShaderSource", s)
}

func (r *Recorder) CompileShader(s render.Shader) {
	r.record("CompileShader", s)
	sh := r.shaders[s]
	if sh == nil {
		return
	}
	if r.FailCompile[sh.typ] {
		sh.log = "ERROR: 0:1: forced failure"
		return
	}
	ds, err := render.ParseShader(sh.src)
	if err != nil {
		sh.log = err.Error()
		return
	}
	sh.decls = ds
	sh.compiled = true
}

func (r *Recorder) ShaderCompiled(s render.Shader) bool {
	sh := r.shaders[s]
	return sh != nil && sh.compiled
}

func (r *Recorder) ShaderInfoLog(s render.Shader) string {
	if sh := r.shaders[s]; sh != nil {
		return sh.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s render.Shader) {
	delete(r.shaders, s)
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() render.Program {
	p := render.Program(r.id())
	r.programs[p] = &program{}
	r.record("CreateProgram", p)
	return p
}

func (r *Recorder) AttachShader(p render.Program, s render.Shader) {
	if pr := r.programs[p]; pr != nil {
		pr.shaders = append(pr.shaders, s)
	}
	r.record("AttachShader", p, s)
}

// LinkProgram links when exactly one compiled vertex and one compiled
// fragment shader are attached. Attributes come from the vertex shader
// and uniforms from both, numbered in declaration order.
func (r *Recorder) LinkProgram(p render.Program) {
	r.record("LinkProgram", p)
	pr := r.programs[p]
	if pr == nil {
		return
	}
	if r.FailLink {
		pr.log = "forced link failure"
		return
	}
	var vs, fs *shader
	for _, s := range pr.shaders {
		sh := r.shaders[s]
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
		pr.log = "missing compiled vertex or fragment shader"
		return
	}
	pr.attribs, pr.uniforms = nil, nil
	for _, sh := range []*shader{vs, fs} {
		for _, d := range sh.decls {
			switch {
			case d.Uniform && !slices.Contains(pr.uniforms, d.Name):
				pr.uniforms = append(pr.uniforms, d.Name)
			case !d.Uniform && sh == vs:
				pr.attribs = append(pr.attribs, d.Name)
			}
		}
	}
	pr.linked = true
}

func (r *Recorder) ProgramLinked(p render.Program) bool {
	pr := r.programs[p]
	return pr != nil && pr.linked
}

func (r *Recorder) ProgramInfoLog(p render.Program) string {
	if pr := r.programs[p]; pr != nil {
		return pr.log
	}
	return ""
}

func (r *Recorder) DeleteProgram(p render.Program) {
	delete(r.programs, p)
	r.record("DeleteProgram", p)
}

func (r *Recorder) UseProgram(p render.Program) { r.record("UseProgram", p) }

func (r *Recorder) AttribLocation(p render.Program, name string) render.Attrib {
	pr := r.programs[p]
	if pr == nil || !pr.linked {
		return render.NoLocation
	}
	return render.Attrib(slices.Index(pr.attribs, name))
}

func (r *Recorder) UniformLocation(p render.Program, name string) render.Uniform {
	pr := r.programs[p]
	if pr == nil || !pr.linked {
		return render.NoLocation
	}
	return render.Uniform(slices.Index(pr.uniforms, name))
}

func (r *Recorder) VertexAttribPointer(a render.Attrib, size int) {
	r.record("VertexAttribPointer", a, r.bound[render.ArrayBuffer], size)
}

func (r *Recorder) EnableVertexAttribArray(a render.Attrib) { r.record("EnableVertexAttribArray", a) }

func (r *Recorder) UniformMatrix4(u render.Uniform, m *math32.Matrix4) {
	r.record("UniformMatrix4", u, *m)
}

func (r *Recorder) Uniform3(u render.Uniform, v math32.Vector3) { r.record("Uniform3", u, v) }

func (r *Recorder) DrawArrays(mode render.Primitive, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode render.Primitive, count int) {
	r.record("DrawElements", mode, r.bound[render.ElementArrayBuffer], count)
}
