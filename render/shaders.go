// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "fmt"

// Attribute and uniform names shared by all programs.
const (
	VertexPositionName   = "aVertexPosition"
	VertexColorName      = "aVertexColor"
	VertexNormalName     = "aVertexNormal"
	ProjectionMatrixName = "uProjectionMatrix"
	ModelViewMatrixName  = "uModelViewMatrix"
	LightPositionName    = "uLightPosition"
)

// FlatVertexSource passes the per-vertex color through and
// transforms the position by the two matrices.
const FlatVertexSource = `attribute vec4 aVertexPosition;
attribute vec4 aVertexColor;
uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;
varying vec4 vColor;

void main(void) {
	vColor = aVertexColor;
	gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
}
`

// FragmentSource writes the interpolated vertex color.
const FragmentSource = `varying vec4 vColor;

void main(void) {
	gl_FragColor = vColor;
}
`

// LitVertexSource shades each vertex with [Ambient] plus a Lambert
// term toward the view-space light position. It matches [Shade].
// Normals are transformed by the cofactors of the model-view, as in
// [math32.Vector3.MulMatrix4AsNormal], since GLSL 1.00 has no inverse.
var LitVertexSource = fmt.Sprintf(`attribute vec4 aVertexPosition;
attribute vec4 aVertexColor;
attribute vec3 aVertexNormal;
uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;
uniform vec3 uLightPosition;
varying vec4 vColor;

void main(void) {
	vec4 pos = uModelViewMatrix * aVertexPosition;
	vec3 c0 = uModelViewMatrix[0].xyz;
	vec3 c1 = uModelViewMatrix[1].xyz;
	vec3 c2 = uModelViewMatrix[2].xyz;
	vec3 n = aVertexNormal.x * cross(c1, c2) + aVertexNormal.y * cross(c2, c0) + aVertexNormal.z * cross(c0, c1);
	n = normalize(n * sign(dot(c0, cross(c1, c2))));
	vec3 l = normalize(uLightPosition - pos.xyz);
	float d = max(dot(n, l), 0.0);
	vColor = vec4(aVertexColor.rgb * (%.4f + %.4f * d), aVertexColor.a);
	gl_Position = uProjectionMatrix * pos;
}
`, Ambient, Diffuse)

// Sources returns the vertex and fragment sources for the flat
// or lit program.
func Sources(lighting bool) (vertex, fragment string) {
	if lighting {
		return LitVertexSource, FragmentSource
	}
	return FlatVertexSource, FragmentSource
}
