// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/glpicture/math32"
	"github.com/stretchr/testify/assert"
)

// testVertices returns n vertices along a line, with distinct colors.
func testVertices(n int) []Vertex {
	vs := make([]Vertex, n)
	for i := range vs {
		f := float32(i) / float32(n)
		vs[i] = Vertex{Pos: math32.Vec3(f, -f, 0), Color: math32.Vec3(f, 1-f, 0.5)}
	}
	return vs
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, 24, VertexLayout.Stride)
	assert.Equal(t, 6, VertexLayout.Floats())
	pos, clr := VertexLayout.Attribs[0], VertexLayout.Attribs[1]
	assert.Equal(t, 0, pos.Offset)
	assert.Equal(t, pos.Type.Bytes(), clr.Offset)
	assert.Equal(t, VertexLayout.Stride, clr.Offset+clr.Type.Bytes())

	v := Vertex{Pos: math32.Vec3(-0.95, -0.1, 0), Color: math32.Vec3(1, 0.5, 0)}
	assert.Equal(t, []float32{-0.95, -0.1, 0, 1, 0.5, 0}, v.Append(nil))
}

func TestVertexBufferTriangles(t *testing.T) {
	for _, n := range []int{0, 3, 6, 318, 3000} {
		dev := newFakeDevice()
		vb := NewVertexBuffer(dev, testVertices(n))
		assert.Equal(t, n/3, vb.Triangles())
		assert.Equal(t, n, vb.Vertices())
		vb.Draw()
		assert.Equal(t, [][2]int{{0, n}}, dev.draws)
	}
}

func TestVertexBufferUpload(t *testing.T) {
	dev := newFakeDevice()
	verts := testVertices(6)
	vb := NewVertexBuffer(dev, verts)
	assert.Equal(t, []string{
		"create vertexarray 1", "bind vertexarray 1",
		"create buffer 2", "bind buffer 2",
		"bufferdata 36 0",
		"attrib 0 3 24 0", "attrib 1 3 24 12",
	}, dev.calls)
	assert.Len(t, dev.uploads, 1)
	assert.Equal(t, vb.Data(), dev.uploads[0])
	assert.Equal(t, verts[4].Append(nil), vb.Data()[24:30])

	tri := vb.Triangle(1)
	assert.Equal(t, verts[3].Pos, tri.A)
	assert.Equal(t, verts[5].Pos, tri.C)

	vb.Draw()
	vb.Draw()
	assert.Len(t, dev.uploads, 1)

	vb.Release()
	vb.Release()
	assert.Equal(t, 1, dev.count("delete vertexarray"))
	assert.Equal(t, 1, dev.count("delete buffer"))
	assert.Empty(t, dev.live)
}

func TestVertexBufferPartialTriangle(t *testing.T) {
	dev := newFakeDevice()
	vb := NewVertexBuffer(dev, testVertices(7))
	assert.Equal(t, 2, vb.Triangles())
	assert.Equal(t, 7, vb.Vertices())
	vb.Draw()
	assert.Equal(t, [][2]int{{0, 6}}, dev.draws)
}
