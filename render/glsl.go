// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"regexp"
)

var (
	declRE = regexp.MustCompile(`(?m)^\s*(attribute|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;`)
	mainRE = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(?:void)?\s*\)\s*\{`)
)

// Declaration is one attribute or uniform declared by a shader.
type Declaration struct {
	Uniform bool
	Type    string
	Name    string
}

// ParseShader does a light syntactic check of GLSL source for hosts
// that do not run a real compiler, returning its top-level attribute
// and uniform declarations in source order. It fails when there is
// no main function or the braces do not balance.
func ParseShader(src string) ([]Declaration, error) {
	if !mainRE.MatchString(src) {
		return nil, fmt.Errorf("ERROR: 0:1: missing main function")
	}
	depth := 0
	for _, r := range src {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 {
			break
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("ERROR: unbalanced braces")
	}
	var ds []Declaration
	for _, m := range declRE.FindAllStringSubmatch(src, -1) {
		ds = append(ds, Declaration{Uniform: m[1] == "uniform", Type: m[2], Name: m[3]})
	}
	return ds, nil
}
