// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/glpicture/math32"

// Vertex is one point of the picture, with a position and an RGB color.
// Color components are in the range [0, 1].
type Vertex struct {
	Pos   math32.Vector3
	Color math32.Vector3
}

// Append appends the interleaved position and color of the vertex
// to the given slice and returns the result.
func (v Vertex) Append(a []float32) []float32 {
	return v.Color.Append(v.Pos.Append(a))
}

// Attrib describes one vertex attribute in an interleaved buffer.
type Attrib struct {

	// Name is the name of the shader input.
	Name string

	// Location is the shader input location.
	Location uint32

	// Type is the vector type of the attribute.
	Type VectorType

	// Offset is the byte offset of the attribute within a vertex.
	Offset int
}

// Layout describes the attributes and stride of an interleaved vertex buffer.
type Layout struct {
	Attribs []Attrib

	// Stride is the number of bytes between consecutive vertices.
	Stride int
}

// Floats returns the number of float32 values per vertex.
func (l *Layout) Floats() int {
	return l.Stride / TypeBytes(Float32)
}

// VertexLayout is the [Layout] of [Vertex] data: position at location 0,
// followed by color at location 1, 24 bytes per vertex.
var VertexLayout = Layout{
	Attribs: []Attrib{
		{Name: "aPos", Location: 0, Type: Float32Vector3, Offset: 0},
		{Name: "aColor", Location: 1, Type: Float32Vector3, Offset: 12},
	},
	Stride: 24,
}
