// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/glpicture/math32"
)

// VertexBuffer is a fixed list of vertices that is uploaded to the
// device once with [StaticDraw] usage and drawn as triangles.
type VertexBuffer struct {
	dev       Device
	vao       uint32
	vbo       uint32
	data      []float32
	triangles int
}

// NewVertexBuffer interleaves the given vertices according to [VertexLayout],
// uploads them and configures the attribute layout. The triangle count is
// the number of vertices divided by 3; any trailing vertices that do not
// make up a whole triangle are uploaded but never drawn.
func NewVertexBuffer(dev Device, verts []Vertex) *VertexBuffer {
	data := make([]float32, 0, len(verts)*VertexLayout.Floats())
	for _, v := range verts {
		data = v.Append(data)
	}
	vb := &VertexBuffer{dev: dev, data: data, triangles: len(verts) / 3}
	if rem := len(verts) % 3; rem != 0 {
		slog.Warn("gpu: vertex count is not a multiple of 3", "vertices", len(verts), "ignored", rem)
	}

	vb.vao = dev.CreateVertexArray()
	dev.BindVertexArray(vb.vao)
	vb.vbo = dev.CreateBuffer()
	dev.BindBuffer(vb.vbo)
	dev.BufferData(vb.data, StaticDraw)
	for _, at := range VertexLayout.Attribs {
		dev.VertexAttrib(at.Location, at.Type.Vec, VertexLayout.Stride, at.Offset)
	}
	return vb
}

// Triangles returns the number of triangles drawn by [VertexBuffer.Draw].
func (vb *VertexBuffer) Triangles() int {
	return vb.triangles
}

// Vertices returns the number of vertices in the buffer.
func (vb *VertexBuffer) Vertices() int {
	return len(vb.data) / VertexLayout.Floats()
}

// Data returns the interleaved vertex data as uploaded.
// It must not be modified.
func (vb *VertexBuffer) Data() []float32 {
	return vb.data
}

// Triangle returns the positions of the i'th triangle.
func (vb *VertexBuffer) Triangle(i int) math32.Triangle {
	n := VertexLayout.Floats()
	pos := func(v int) math32.Vector3 {
		d := vb.data[v*n:]
		return math32.Vec3(d[0], d[1], d[2])
	}
	return math32.NewTriangle(pos(3*i), pos(3*i+1), pos(3*i+2))
}

// Draw binds the buffer and draws all of its triangles in one call.
func (vb *VertexBuffer) Draw() {
	vb.dev.BindVertexArray(vb.vao)
	vb.dev.DrawTriangles(0, vb.triangles*3)
}

// Release deletes the vertex array and buffer on the device.
// It is safe to call more than once.
func (vb *VertexBuffer) Release() {
	if vb.vao != 0 {
		vb.dev.DeleteVertexArray(vb.vao)
		vb.vao = 0
	}
	if vb.vbo != 0 {
		vb.dev.DeleteBuffer(vb.vbo)
		vb.vbo = 0
	}
}
