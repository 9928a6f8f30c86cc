// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"cogentcore.org/spincube/base/errors"
)

// ProgramInfo is a program together with its attribute and uniform
// locations, resolved once after linking. Locations of inputs that a
// program does not use are [NoLocation].
type ProgramInfo struct {
	Program Program

	VertexPosition Attrib
	VertexColor    Attrib
	VertexNormal   Attrib

	ProjectionMatrix Uniform
	ModelViewMatrix  Uniform
	LightPosition    Uniform
}

// NewProgramInfo resolves the locations for the given program.
// All locations are [NoLocation] for the null program.
func NewProgramInfo(ctx Context, p Program) ProgramInfo {
	pi := ProgramInfo{
		Program:          p,
		VertexPosition:   NoLocation,
		VertexColor:      NoLocation,
		VertexNormal:     NoLocation,
		ProjectionMatrix: NoLocation,
		ModelViewMatrix:  NoLocation,
		LightPosition:    NoLocation,
	}
	if p == 0 {
		return pi
	}
	pi.VertexPosition = ctx.AttribLocation(p, VertexPositionName)
	pi.VertexColor = ctx.AttribLocation(p, VertexColorName)
	pi.VertexNormal = ctx.AttribLocation(p, VertexNormalName)
	pi.ProjectionMatrix = ctx.UniformLocation(p, ProjectionMatrixName)
	pi.ModelViewMatrix = ctx.UniformLocation(p, ModelViewMatrixName)
	pi.LightPosition = ctx.UniformLocation(p, LightPositionName)
	return pi
}

// CompileShader creates and compiles a shader of the given type.
// If compilation fails, the shader is deleted and 0 is returned
// with an error holding the info log.
func CompileShader(ctx Context, t ShaderType, src string) (Shader, error) {
	s := ctx.CreateShader(t)
	if s == 0 {
		return 0, fmt.Errorf("render: unable to create %s shader", t)
	}
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if !ctx.ShaderCompiled(s) {
		log := strings.TrimSpace(ctx.ShaderInfoLog(s))
		ctx.DeleteShader(s)
		return 0, fmt.Errorf("render: an error occurred compiling the %s shader: %s", t, log)
	}
	return s, nil
}

// BuildProgram compiles both shaders and links them into a program.
// Failures do not stop the build: a failed shader is released and
// skipped, and a program that fails to link is released and 0 is
// returned. The returned error joins the info logs of every failure.
// The shaders are deleted once linked.
func BuildProgram(ctx Context, vertexSrc, fragmentSrc string) (Program, error) {
	vs, verr := CompileShader(ctx, VertexShader, vertexSrc)
	fs, ferr := CompileShader(ctx, FragmentShader, fragmentSrc)
	defer func() {
		if vs != 0 {
			ctx.DeleteShader(vs)
		}
		if fs != 0 {
			ctx.DeleteShader(fs)
		}
	}()

	p := ctx.CreateProgram()
	if p == 0 {
		return 0, errors.Join(verr, ferr, errors.New("render: unable to create program"))
	}
	if vs != 0 {
		ctx.AttachShader(p, vs)
	}
	if fs != 0 {
		ctx.AttachShader(p, fs)
	}
	ctx.LinkProgram(p)
	if !ctx.ProgramLinked(p) {
		log := strings.TrimSpace(ctx.ProgramInfoLog(p))
		ctx.DeleteProgram(p)
		return 0, errors.Join(verr, ferr, fmt.Errorf("render: unable to initialize the shader program: %s", log))
	}
	return p, errors.Join(verr, ferr)
}
