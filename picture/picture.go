// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picture has the fixed 2D picture drawn by glpicture:
// flat-colored triangles in normalized device coordinates,
// with pass-through color shaders.
package picture

import (
	_ "embed"

	"cogentcore.org/glpicture/gpu"
	"cogentcore.org/glpicture/math32"
)

//go:embed shaders/picture.vert
var VertexShader string

//go:embed shaders/picture.frag
var FragmentShader string

// Part is a named group of triangles of the picture.
type Part struct {
	Name     string
	Vertices []gpu.Vertex
}

// Triangles returns the number of triangles in the part.
func (pt *Part) Triangles() int {
	return len(pt.Vertices) / 3
}

// Parts returns the parts of the picture in drawing order.
// Later parts are drawn over earlier ones.
func Parts() []Part {
	return []Part{
		{"tail", tail},
		{"hair", hair},
		{"body", body},
		{"back leg 1", backLeg1},
		{"back leg 2", backLeg2},
		{"front leg 1", frontLeg1},
		{"front leg 2", frontLeg2},
		{"face", face},
	}
}

// Vertices returns all the vertices of the picture in drawing order.
func Vertices() []gpu.Vertex {
	var vs []gpu.Vertex
	for _, pt := range Parts() {
		vs = append(vs, pt.Vertices...)
	}
	return vs
}

// Scene returns the picture as a [gpu.Scene].
func Scene() *gpu.Scene {
	return &gpu.Scene{Vertices: Vertices(), VertexShader: VertexShader, FragmentShader: FragmentShader}
}

// v returns a vertex at x, y in the z = 0 plane with color r, g, b.
func v(x, y, r, g, b float32) gpu.Vertex {
	return gpu.Vertex{Pos: math32.Vec3(x, y, 0), Color: math32.Vec3(r, g, b)}
}
